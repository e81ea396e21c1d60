package service

import (
	"context"
)

// ImageStore defines the interface for persisting generated QR images.
// Implementations are selected once at startup by configuration; the contract
// is identical regardless of backend: persisting the same key overwrites the
// previous object, and the returned URL is immediately usable by a client.
type ImageStore interface {
	// Persist writes the image under the given key and returns its public URL.
	Persist(ctx context.Context, key string, image []byte) (string, error)
}
