// Package constants holds shared provider names and workflow constants.
package constants

// Storage provider names selected via config.
const (
	StorageProviderLocal = "local"
	StorageProviderGCS   = "gcs"
)

// PubSub provider names selected via config.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// PublicMenuPath is the path segment of the public menu page. The QR target
// URL is always {base}/menu/{menuId}; printed codes depend on this shape.
const PublicMenuPath = "/menu/"
