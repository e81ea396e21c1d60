// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Menu is the aggregate root for a restaurant's digital menu. It exclusively
// owns its categories and items; they are persisted and deleted with it.
type Menu struct {
	ID            uuid.UUID  `json:"id"`              // The Global Unique Identifier (GUID) for the menu.
	OwnerID       uuid.UUID  `json:"owner_id"`        // The ID of the account that owns this menu. Immutable.
	Name          string     `json:"name"`            // Display name of the menu.
	Description   string     `json:"description"`     // Optional free-text description.
	Template      string     `json:"template"`        // Presentation template hint for the public menu page.
	IsActive      bool       `json:"is_active"`       // When false, public retrieval of the menu is denied.
	QRImageInline string     `json:"qr_image_inline"` // Base64 data URL of the QR image; never empty after creation.
	QRImageURL    string     `json:"qr_image_url"`    // Stored-file URL of the QR image; empty when the placeholder is in use.
	QRTargetURL   string     `json:"qr_target_url"`   // The canonical public URL the QR code encodes.
	Version       int64      `json:"version"`         // Optimistic-concurrency counter, bumped on every update.
	Categories    []Category `json:"categories"`      // Ordered list of owned categories.
	CreatedAt     time.Time  `json:"created_at"`      // Timestamp of when the menu was created.
	UpdatedAt     time.Time  `json:"updated_at"`      // Timestamp of the last modification.
}

// Category is a named, ordered section of a menu, owned by exactly one menu.
type Category struct {
	ID        uuid.UUID `json:"id"`
	MenuID    uuid.UUID `json:"menu_id"` // Back-reference to the owning menu.
	Name      string    `json:"name"`
	SortOrder int       `json:"sort_order"` // Explicit sort key; persistence has no inherent ordering.
	Items     []Item    `json:"items"`
}

// Item is a single dish or product inside a category.
type Item struct {
	ID          uuid.UUID `json:"id"`
	CategoryID  uuid.UUID `json:"category_id"` // Back-reference to the owning category.
	Name        string    `json:"name"`
	Price       *float64  `json:"price,omitempty"` // Optional non-negative currency amount.
	Description string    `json:"description"`
	Ingredients []string  `json:"ingredients,omitempty"`
	IsAvailable bool      `json:"is_available"` // Gates public visibility of the item.
	SortOrder   int       `json:"sort_order"`
}
