// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"menuqr/internal/domain/entity"
	domainerrors "menuqr/internal/domain/errors"
	"menuqr/internal/domain/repository"
	"menuqr/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// menuRepository implements the repository.MenuRepository interface using GORM.
type menuRepository struct {
	db *gorm.DB
}

// NewMenuRepository is the constructor for menuRepository.
// It returns the repository as a repository.MenuRepository interface, adhering to dependency inversion.
func NewMenuRepository(db *gorm.DB) repository.MenuRepository {
	return &menuRepository{db: db}
}

// CreateMenu persists a new menu aggregate, including its categories and items.
// GORM's Create with associations inserts into menus, menu_categories and
// menu_items within a single transaction.
func (repo *menuRepository) CreateMenu(ctx context.Context, menu *entity.Menu) error {
	// Map the pure domain entity to a GORM persistence model.
	menuM := model.FromMenuDomain(menu)

	if err := repo.db.WithContext(ctx).Create(menuM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrMenuCreationFailed.WrapMessage("menu id already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrMenuCreationFailed.WrapMessage("invalid owner reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create menu")
	}

	// Update the menu entity with the generated timestamps and stored version.
	menu.Version = menuM.Version
	menu.CreatedAt = menuM.CreatedAt
	menu.UpdatedAt = menuM.UpdatedAt

	return nil
}

// FindMenuByID retrieves a menu by its unique ID, preloading categories and
// items in their display order.
func (repo *menuRepository) FindMenuByID(ctx context.Context, id uuid.UUID) (*entity.Menu, error) {
	var menuM model.MenuModel
	err := repo.db.WithContext(ctx).
		Preload("Categories", func(db *gorm.DB) *gorm.DB {
			return db.Order("menu_categories.sort_order ASC")
		}).
		Preload("Categories.Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("menu_items.sort_order ASC")
		}).
		Where("id = ?", id).
		First(&menuM).Error

	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMenuNotFound
		}

		return nil, errors.Wrap(err, "failed to find menu by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return model.ToMenuDomain(&menuM), nil
}

// FindMenusByOwner retrieves all menus belonging to the given owner, newest first.
func (repo *menuRepository) FindMenusByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Menu, error) {
	var menuMs []*model.MenuModel
	err := repo.db.WithContext(ctx).
		Preload("Categories", func(db *gorm.DB) *gorm.DB {
			return db.Order("menu_categories.sort_order ASC")
		}).
		Preload("Categories.Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("menu_items.sort_order ASC")
		}).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&menuMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to find menus by owner")
	}

	menus := make([]*entity.Menu, 0, len(menuMs))
	for _, menuM := range menuMs {
		menus = append(menus, model.ToMenuDomain(menuM))
	}

	return menus, nil
}

// UpdateMenu replaces the menu's top-level fields and, when the entity carries
// categories, its full nested collections. All writes happen in one transaction
// so readers never observe a half-replaced menu.
func (repo *menuRepository) UpdateMenu(ctx context.Context, menu *entity.Menu, expectedVersion int64) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]any{
			"name":        menu.Name,
			"description": menu.Description,
			"template":    menu.Template,
			"is_active":   menu.IsActive,
			"version":     gorm.Expr("version + 1"),
		}

		query := tx.Model(&model.MenuModel{}).Where("id = ?", menu.ID)
		if expectedVersion > 0 {
			// Optimistic concurrency: the update only lands when the stored
			// version still matches the one the caller read.
			query = query.Where("version = ?", expectedVersion)
		}

		result := query.Updates(updates)
		if result.Error != nil {
			return errors.Wrap(result.Error, "failed to update menu")
		}
		if result.RowsAffected == 0 {
			// Distinguish a missing menu from a stale version.
			var count int64
			if err := tx.Model(&model.MenuModel{}).Where("id = ?", menu.ID).Count(&count).Error; err != nil {
				return errors.Wrap(err, "failed to check menu existence")
			}
			if count == 0 {
				return repository.ErrMenuNotFound
			}

			return repository.ErrMenuVersionConflict
		}

		// A nil Categories slice means "leave the collections alone"; an empty
		// slice means "remove them all".
		if menu.Categories == nil {
			return nil
		}

		// Replace the nested collections wholesale: items first (they hang off
		// the old categories), then the categories, then the new tree.
		itemSubquery := tx.Model(&model.CategoryModel{}).Select("id").Where("menu_id = ?", menu.ID)
		if err := tx.Where("category_id IN (?)", itemSubquery).Delete(&model.ItemModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to delete menu items")
		}
		if err := tx.Where("menu_id = ?", menu.ID).Delete(&model.CategoryModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to delete menu categories")
		}

		if len(menu.Categories) == 0 {
			return nil
		}

		categoryMs := model.FromCategoryDomains(menu.Categories)
		if err := tx.Create(&categoryMs).Error; err != nil {
			return errors.Wrap(err, "failed to insert menu categories")
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, repository.ErrMenuNotFound) || errors.Is(err, repository.ErrMenuVersionConflict) {
			return err
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update menu")
	}

	// Reflect the bumped version on the entity for callers that keep using it.
	if expectedVersion > 0 {
		menu.Version = expectedVersion + 1
	} else {
		menu.Version++
	}

	return nil
}

// UpdateMenuQR writes back the QR fields produced after the menu row exists.
func (repo *menuRepository) UpdateMenuQR(ctx context.Context, id uuid.UUID, inlineImage, fileURL, targetURL string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MenuModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"qr_image_inline": inlineImage,
			"qr_image_url":    fileURL,
			"qr_target_url":   targetURL,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update menu qr fields")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMenuNotFound
	}

	return nil
}

// DeleteMenu removes the aggregate. Categories and items go with it through
// the ON DELETE CASCADE constraints on their foreign keys.
func (repo *menuRepository) DeleteMenu(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.MenuModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete menu")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMenuNotFound
	}

	return nil
}
