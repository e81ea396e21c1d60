// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"menuqr/config"
	"menuqr/internal/domain/constants"
	"menuqr/internal/domain/entity"
	domainerrors "menuqr/internal/domain/errors"
	"menuqr/internal/domain/repository"
	"menuqr/internal/domain/service"
	"menuqr/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// qrImageKeyPattern yields a deterministic storage key per menu, so a
// regenerated code overwrites the previous object instead of piling up.
const qrImageKeyPattern = "qr/menu-%s.png"

// menuService implements the MenuUsecase interface.
type menuService struct {
	menuRepo      repository.MenuRepository
	analyticsRepo repository.AnalyticsRepository
	qrSvc         service.QRCodeService
	imageStore    service.ImageStore
	cfg           *config.Config
	logger        *slog.Logger
}

// NewMenuService is the constructor for menuService.
func NewMenuService(
	menuRepo repository.MenuRepository,
	analyticsRepo repository.AnalyticsRepository,
	qrSvc service.QRCodeService,
	imageStore service.ImageStore,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.MenuUsecase {
	return &menuService{
		menuRepo:      menuRepo,
		analyticsRepo: analyticsRepo,
		qrSvc:         qrSvc,
		imageStore:    imageStore,
		cfg:           cfg,
		logger:        logger,
	}
}

// CreateMenu runs the creation workflow. Once the draft row is persisted the
// menu is committed to exist: QR generation or image storage failures degrade
// to the shared placeholder image and the creation still succeeds.
func (srv *menuService) CreateMenu(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateMenuInput) (*entity.Menu, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "menu name is required")
	}
	if len(input.Categories) == 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "at least one category is required")
	}

	// 1. Build the aggregate with all IDs minted up front, so category and
	// item back-references are final before the first write.
	menu := srv.buildMenuAggregate(ownerID, input)

	// 2. Persist the draft. Failures here are the only ones that abort creation.
	if err := srv.menuRepo.CreateMenu(ctx, menu); err != nil {
		return nil, errors.Wrap(err, "failed to persist menu draft")
	}

	// 3. Generate the QR code for the public menu page and store the image.
	targetURL := srv.publicMenuURL(menu.ID)
	inlineImage, fileURL := srv.generateAndStoreQR(ctx, menu.ID, targetURL)

	// 4. Write the QR fields back onto the menu row.
	if err := srv.menuRepo.UpdateMenuQR(ctx, menu.ID, inlineImage, fileURL, targetURL); err != nil {
		return nil, errors.Wrap(err, "failed to attach qr code to menu")
	}

	// 5. Initialize the analytics record so dashboards see the menu immediately.
	if err := srv.analyticsRepo.CreateRecord(ctx, menu.ID); err != nil {
		return nil, errors.Wrap(err, "failed to initialize menu analytics")
	}

	menu.QRImageInline = inlineImage
	menu.QRImageURL = fileURL
	menu.QRTargetURL = targetURL

	srv.logger.Info("Menu created", "menuID", menu.ID, "ownerID", ownerID)

	return menu, nil
}

// GetMenu retrieves a menu and verifies the caller owns it.
func (srv *menuService) GetMenu(ctx context.Context, ownerID, menuID uuid.UUID) (*entity.Menu, error) {
	return srv.findOwnedMenu(ctx, ownerID, menuID)
}

// ListMenus retrieves all menus owned by the caller.
func (srv *menuService) ListMenus(ctx context.Context, ownerID uuid.UUID) ([]*entity.Menu, error) {
	menus, err := srv.menuRepo.FindMenusByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list menus")
	}

	return menus, nil
}

// UpdateMenu applies a partial update to an owned menu. When the input carries
// a version the write only lands against that version.
func (srv *menuService) UpdateMenu(ctx context.Context, ownerID, menuID uuid.UUID, input *usecase.UpdateMenuInput) (*entity.Menu, error) {
	menu, err := srv.findOwnedMenu(ctx, ownerID, menuID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "menu name cannot be empty")
		}
		menu.Name = *input.Name
	}
	if input.Description != nil {
		menu.Description = *input.Description
	}
	if input.Template != nil {
		menu.Template = *input.Template
	}
	if input.IsActive != nil {
		menu.IsActive = *input.IsActive
	}
	if input.Categories != nil {
		menu.Categories = buildCategories(menu.ID, input.Categories)
	} else {
		// Leave the nested collections untouched on a fields-only update.
		menu.Categories = nil
	}

	if err := srv.menuRepo.UpdateMenu(ctx, menu, input.Version); err != nil {
		switch {
		case errors.Is(err, repository.ErrMenuNotFound):
			return nil, domainerrors.ErrMenuNotFound
		case errors.Is(err, repository.ErrMenuVersionConflict):
			return nil, domainerrors.ErrMenuVersionConflict
		}

		return nil, errors.Wrap(err, "failed to update menu")
	}

	// Return the stored state, with ordering applied by the read path.
	updated, err := srv.menuRepo.FindMenuByID(ctx, menuID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload updated menu")
	}

	return updated, nil
}

// DeleteMenu removes an owned menu. The analytics record follows unless
// configured to be retained for historical reporting.
func (srv *menuService) DeleteMenu(ctx context.Context, ownerID, menuID uuid.UUID) error {
	if _, err := srv.findOwnedMenu(ctx, ownerID, menuID); err != nil {
		return err
	}

	if err := srv.menuRepo.DeleteMenu(ctx, menuID); err != nil {
		if errors.Is(err, repository.ErrMenuNotFound) {
			return domainerrors.ErrMenuNotFound
		}

		return errors.Wrap(err, "failed to delete menu")
	}

	if srv.cfg.Analytics != nil && srv.cfg.Analytics.RetainOnMenuDelete {
		srv.logger.Info("Menu deleted, analytics retained", "menuID", menuID)

		return nil
	}

	// The menu itself is gone; a failed analytics cascade only leaves orphaned
	// rows behind, so it is logged rather than surfaced.
	if err := srv.analyticsRepo.DeleteByMenuID(ctx, menuID); err != nil {
		srv.logger.Warn("Failed to delete analytics for removed menu", "menuID", menuID, "error", err)
	}

	srv.logger.Info("Menu deleted", "menuID", menuID, "ownerID", ownerID)

	return nil
}

// RegenerateQR rebuilds the QR code against the current base URL and replaces
// the stored image. Unlike creation, failures surface to the caller.
func (srv *menuService) RegenerateQR(ctx context.Context, ownerID, menuID uuid.UUID) (*entity.Menu, error) {
	menu, err := srv.findOwnedMenu(ctx, ownerID, menuID)
	if err != nil {
		return nil, err
	}

	targetURL := srv.publicMenuURL(menuID)

	qrImage, err := srv.qrSvc.GenerateMenuQR(targetURL)
	if err != nil {
		return nil, domainerrors.ErrQRGenerationFailed.WrapMessage(err.Error())
	}

	fileURL, err := srv.imageStore.Persist(ctx, fmt.Sprintf(qrImageKeyPattern, menuID), qrImage.PNG)
	if err != nil {
		return nil, domainerrors.ErrQRGenerationFailed.WrapMessage("failed to store qr image")
	}

	if err := srv.menuRepo.UpdateMenuQR(ctx, menuID, qrImage.DataURL, fileURL, targetURL); err != nil {
		return nil, errors.Wrap(err, "failed to save regenerated qr code")
	}

	menu.QRImageInline = qrImage.DataURL
	menu.QRImageURL = fileURL
	menu.QRTargetURL = targetURL

	srv.logger.Info("Menu QR regenerated", "menuID", menuID)

	return menu, nil
}

// GetPublicMenu retrieves a menu for unauthenticated diners. Deactivated menus
// are reported as unavailable, not as missing, so printed codes stay honest.
func (srv *menuService) GetPublicMenu(ctx context.Context, menuID uuid.UUID) (*entity.Menu, error) {
	menu, err := srv.menuRepo.FindMenuByID(ctx, menuID)
	if err != nil {
		if errors.Is(err, repository.ErrMenuNotFound) {
			return nil, domainerrors.ErrMenuNotFound
		}

		return nil, errors.Wrap(err, "failed to find public menu")
	}

	if !menu.IsActive {
		return nil, domainerrors.ErrMenuUnavailable
	}

	return menu, nil
}

// findOwnedMenu loads a menu and enforces that the caller owns it.
func (srv *menuService) findOwnedMenu(ctx context.Context, ownerID, menuID uuid.UUID) (*entity.Menu, error) {
	menu, err := srv.menuRepo.FindMenuByID(ctx, menuID)
	if err != nil {
		if errors.Is(err, repository.ErrMenuNotFound) {
			return nil, domainerrors.ErrMenuNotFound
		}

		return nil, errors.Wrap(err, "failed to find menu")
	}

	if menu.OwnerID != ownerID {
		return nil, domainerrors.ErrMenuOwnershipViolation
	}

	return menu, nil
}

// generateAndStoreQR returns the inline image and stored-file URL for a menu's
// QR code. Any failure falls back to the placeholder with an empty file URL.
func (srv *menuService) generateAndStoreQR(ctx context.Context, menuID uuid.UUID, targetURL string) (inlineImage, fileURL string) {
	qrImage, err := srv.qrSvc.GenerateMenuQR(targetURL)
	if err != nil {
		srv.logger.Warn("QR generation failed, using placeholder", "menuID", menuID, "error", err)

		return service.PlaceholderQRDataURL, ""
	}

	fileURL, err = srv.imageStore.Persist(ctx, fmt.Sprintf(qrImageKeyPattern, menuID), qrImage.PNG)
	if err != nil {
		srv.logger.Warn("QR image storage failed, keeping inline image only", "menuID", menuID, "error", err)

		return qrImage.DataURL, ""
	}

	return qrImage.DataURL, fileURL
}

// publicMenuURL derives the canonical public menu page URL for a menu.
func (srv *menuService) publicMenuURL(menuID uuid.UUID) string {
	base := strings.TrimSuffix(srv.cfg.QRCode.BaseURL, "/")

	return base + constants.PublicMenuPath + menuID.String()
}

// buildMenuAggregate assembles a new menu entity from the creation input.
// Menus start active at version 1 with all back-references already set.
func (srv *menuService) buildMenuAggregate(ownerID uuid.UUID, input *usecase.CreateMenuInput) *entity.Menu {
	menuID := uuid.New()

	return &entity.Menu{
		ID:          menuID,
		OwnerID:     ownerID,
		Name:        input.Name,
		Description: input.Description,
		Template:    input.Template,
		IsActive:    true,
		Version:     1,
		Categories:  buildCategories(menuID, input.Categories),
	}
}

// buildCategories mints identities for an incoming category tree. Sort order
// follows slice order; item availability defaults to true.
func buildCategories(menuID uuid.UUID, inputs []usecase.CategoryInput) []entity.Category {
	categories := make([]entity.Category, 0, len(inputs))
	for idx, categoryInput := range inputs {
		categoryID := uuid.New()

		items := make([]entity.Item, 0, len(categoryInput.Items))
		for itemIdx, itemInput := range categoryInput.Items {
			isAvailable := true
			if itemInput.IsAvailable != nil {
				isAvailable = *itemInput.IsAvailable
			}

			items = append(items, entity.Item{
				ID:          uuid.New(),
				CategoryID:  categoryID,
				Name:        itemInput.Name,
				Price:       itemInput.Price,
				Description: itemInput.Description,
				Ingredients: itemInput.Ingredients,
				IsAvailable: isAvailable,
				SortOrder:   itemIdx,
			})
		}

		categories = append(categories, entity.Category{
			ID:        categoryID,
			MenuID:    menuID,
			Name:      categoryInput.Name,
			SortOrder: idx,
			Items:     items,
		})
	}

	return categories
}
