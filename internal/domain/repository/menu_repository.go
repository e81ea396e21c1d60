// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"menuqr/internal/domain/entity"
	"menuqr/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for menu persistence.
var (
	// ErrMenuNotFound is returned when a menu is not found.
	ErrMenuNotFound = errors.New("menu not found")
	// ErrMenuVersionConflict is returned when an update carries a stale version.
	ErrMenuVersionConflict = errors.New("menu version conflict")
)

// MenuRepository defines the interface for menu-aggregate database operations.
// A menu is persisted together with its categories and items as one unit.
type MenuRepository interface {
	// CreateMenu persists a new menu aggregate in a single write.
	// Category and item back-references must already point at their parents.
	CreateMenu(ctx context.Context, menu *entity.Menu) error

	// FindMenuByID retrieves a menu with its categories and items, ordered by sort key.
	FindMenuByID(ctx context.Context, id uuid.UUID) (*entity.Menu, error)

	// FindMenusByOwner retrieves all menus owned by the given account.
	FindMenusByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Menu, error)

	// UpdateMenu replaces the menu's top-level fields and, when the entity carries
	// categories, its full nested collections. expectedVersion enables optimistic
	// concurrency: a non-zero value that does not match the stored version fails
	// with ErrMenuVersionConflict; zero skips the check (last write wins).
	UpdateMenu(ctx context.Context, menu *entity.Menu, expectedVersion int64) error

	// UpdateMenuQR writes back the QR fields produced by the creation workflow.
	UpdateMenuQR(ctx context.Context, id uuid.UUID, inlineImage, fileURL, targetURL string) error

	// DeleteMenu removes the aggregate including categories and items.
	DeleteMenu(ctx context.Context, id uuid.UUID) error
}
