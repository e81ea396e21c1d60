// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"menuqr/internal/domain/entity"

	"github.com/google/uuid"
)

// MenuUsecase defines the interface for menu-related business operations.
type MenuUsecase interface {
	// CreateMenu runs the full creation workflow: it persists the menu draft,
	// generates and stores the QR code pointing at the public menu page, and
	// initializes the analytics record. QR or storage failures degrade to a
	// placeholder image instead of failing the creation.
	CreateMenu(ctx context.Context, ownerID uuid.UUID, input *CreateMenuInput) (*entity.Menu, error)

	// GetMenu retrieves a menu owned by the caller.
	GetMenu(ctx context.Context, ownerID, menuID uuid.UUID) (*entity.Menu, error)

	// ListMenus retrieves all menus owned by the caller.
	ListMenus(ctx context.Context, ownerID uuid.UUID) ([]*entity.Menu, error)

	// UpdateMenu applies partial updates to a menu owned by the caller.
	UpdateMenu(ctx context.Context, ownerID, menuID uuid.UUID, input *UpdateMenuInput) (*entity.Menu, error)

	// DeleteMenu removes a menu owned by the caller together with its QR assets.
	DeleteMenu(ctx context.Context, ownerID, menuID uuid.UUID) error

	// RegenerateQR rebuilds and re-stores the menu's QR code. Unlike creation,
	// failures here surface to the caller.
	RegenerateQR(ctx context.Context, ownerID, menuID uuid.UUID) (*entity.Menu, error)

	// GetPublicMenu retrieves an active menu for unauthenticated diners.
	GetPublicMenu(ctx context.Context, menuID uuid.UUID) (*entity.Menu, error)
}

// --- Input DTOs ---

// CreateMenuInput defines the data required to create a menu.
type CreateMenuInput struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Template    string          `json:"template,omitempty"`
	Categories  []CategoryInput `json:"categories,omitempty"`
}

// CategoryInput defines one category of the incoming menu structure.
// Display order follows slice order.
type CategoryInput struct {
	Name  string      `json:"name"`
	Items []ItemInput `json:"items,omitempty"`
}

// ItemInput defines one item of the incoming menu structure.
type ItemInput struct {
	Name        string   `json:"name"`
	Price       *float64 `json:"price,omitempty"`
	Description string   `json:"description,omitempty"`
	Ingredients []string `json:"ingredients,omitempty"`
	IsAvailable *bool    `json:"is_available,omitempty"`
}

// UpdateMenuInput defines the data for a partial menu update. Nil fields are
// left untouched; a non-nil Categories slice replaces the whole structure.
// Version carries the version the caller last read; zero skips the
// concurrency check.
type UpdateMenuInput struct {
	Name        *string         `json:"name,omitempty"`
	Description *string         `json:"description,omitempty"`
	Template    *string         `json:"template,omitempty"`
	IsActive    *bool           `json:"is_active,omitempty"`
	Categories  []CategoryInput `json:"categories,omitempty"`
	Version     int64           `json:"version,omitempty"`
}
