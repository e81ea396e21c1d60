package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"menuqr/config"
	"menuqr/internal/domain/entity"
	domainerrors "menuqr/internal/domain/errors"
	"menuqr/internal/domain/repository"
	"menuqr/internal/domain/service"
	mockRepo "menuqr/internal/mocks/repository"
	mockSvc "menuqr/internal/mocks/service"
	"menuqr/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// menuServiceFixtures holds all test dependencies for menu service tests.
type menuServiceFixtures struct {
	service       usecase.MenuUsecase
	menuRepo      *mockRepo.MockMenuRepository
	analyticsRepo *mockRepo.MockAnalyticsRepository
	qrSvc         *mockSvc.MockQRCodeService
	imageStore    *mockSvc.MockImageStore
	cfg           *config.Config
}

func createTestMenuService(t *testing.T, retainAnalytics bool) menuServiceFixtures {
	menuRepo := mockRepo.NewMockMenuRepository(t)
	analyticsRepo := mockRepo.NewMockAnalyticsRepository(t)
	qrSvc := mockSvc.NewMockQRCodeService(t)
	imageStore := mockSvc.NewMockImageStore(t)
	cfg := &config.Config{
		QRCode:    &config.QRCodeConfig{BaseURL: "https://menu.example.com"},
		Analytics: &config.AnalyticsConfig{RetainOnMenuDelete: retainAnalytics},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewMenuService(menuRepo, analyticsRepo, qrSvc, imageStore, cfg, logger)

	return menuServiceFixtures{
		service:       svc,
		menuRepo:      menuRepo,
		analyticsRepo: analyticsRepo,
		qrSvc:         qrSvc,
		imageStore:    imageStore,
		cfg:           cfg,
	}
}

func boolPtr(b bool) *bool { return &b }

func floatPtr(f float64) *float64 { return &f }

func strPtr(s string) *string { return &s }

func TestMenuService_CreateMenu_Success(t *testing.T) {
	fx := createTestMenuService(t, false)

	ctx := context.Background()
	ownerID := uuid.New()
	input := &usecase.CreateMenuInput{
		Name:        "Dinner Menu",
		Description: "Evening service",
		Template:    "classic",
		Categories: []usecase.CategoryInput{
			{
				Name: "Mains",
				Items: []usecase.ItemInput{
					{Name: "Beef Noodles", Price: floatPtr(180), Ingredients: []string{"beef", "noodles"}},
					{Name: "Fried Rice", Price: floatPtr(120), IsAvailable: boolPtr(false)},
				},
			},
			{Name: "Drinks"},
		},
	}

	fx.menuRepo.EXPECT().
		CreateMenu(ctx, mock.AnythingOfType("*entity.Menu")).
		Return(nil)

	fx.qrSvc.EXPECT().
		GenerateMenuQR(mock.AnythingOfType("string")).
		Return(&service.QRImage{PNG: []byte("png-bytes"), DataURL: "data:image/png;base64,abc"}, nil)

	fx.imageStore.EXPECT().
		Persist(ctx, mock.AnythingOfType("string"), []byte("png-bytes")).
		Return("https://cdn.example.com/qr/menu.png", nil)

	fx.menuRepo.EXPECT().
		UpdateMenuQR(ctx, mock.AnythingOfType("uuid.UUID"), "data:image/png;base64,abc", "https://cdn.example.com/qr/menu.png", mock.AnythingOfType("string")).
		Return(nil)

	fx.analyticsRepo.EXPECT().
		CreateRecord(ctx, mock.AnythingOfType("uuid.UUID")).
		Return(nil)

	menu, err := fx.service.CreateMenu(ctx, ownerID, input)
	require.NoError(t, err)
	require.NotNil(t, menu)

	assert.NotEqual(t, uuid.Nil, menu.ID)
	assert.Equal(t, ownerID, menu.OwnerID)
	assert.True(t, menu.IsActive)
	assert.Equal(t, int64(1), menu.Version)
	assert.Equal(t, "https://menu.example.com/menu/"+menu.ID.String(), menu.QRTargetURL)
	assert.Equal(t, "data:image/png;base64,abc", menu.QRImageInline)
	assert.Equal(t, "https://cdn.example.com/qr/menu.png", menu.QRImageURL)

	// Back-references and ordering are fixed before the first write.
	require.Len(t, menu.Categories, 2)
	mains := menu.Categories[0]
	assert.Equal(t, menu.ID, mains.MenuID)
	assert.Equal(t, 0, mains.SortOrder)
	require.Len(t, mains.Items, 2)
	assert.Equal(t, mains.ID, mains.Items[0].CategoryID)
	assert.True(t, mains.Items[0].IsAvailable) // defaults to true
	assert.False(t, mains.Items[1].IsAvailable)
	assert.Equal(t, 1, mains.Items[1].SortOrder)
	assert.Equal(t, 1, menu.Categories[1].SortOrder)
}

func TestMenuService_CreateMenu_EmptyName(t *testing.T) {
	fx := createTestMenuService(t, false)

	menu, err := fx.service.CreateMenu(context.Background(), uuid.New(), &usecase.CreateMenuInput{Name: "   "})
	require.Error(t, err)
	assert.Nil(t, menu)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestMenuService_CreateMenu_NoCategories(t *testing.T) {
	fx := createTestMenuService(t, false)

	menu, err := fx.service.CreateMenu(context.Background(), uuid.New(), &usecase.CreateMenuInput{Name: "Lunch"})
	require.Error(t, err)
	assert.Nil(t, menu)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestMenuService_CreateMenu_DraftPersistFails(t *testing.T) {
	fx := createTestMenuService(t, false)
	ctx := context.Background()

	fx.menuRepo.EXPECT().
		CreateMenu(ctx, mock.AnythingOfType("*entity.Menu")).
		Return(errors.New("connection refused"))

	// No QR, storage or analytics calls may happen after a failed draft write;
	// the mocks fail the test on any unexpected call.
	menu, err := fx.service.CreateMenu(ctx, uuid.New(), &usecase.CreateMenuInput{
		Name:       "Lunch",
		Categories: []usecase.CategoryInput{{Name: "Mains"}},
	})
	require.Error(t, err)
	assert.Nil(t, menu)
}

func TestMenuService_CreateMenu_QRFailureFallsBackToPlaceholder(t *testing.T) {
	fx := createTestMenuService(t, false)
	ctx := context.Background()

	fx.menuRepo.EXPECT().
		CreateMenu(ctx, mock.AnythingOfType("*entity.Menu")).
		Return(nil)

	fx.qrSvc.EXPECT().
		GenerateMenuQR(mock.AnythingOfType("string")).
		Return(nil, errors.New("encode failed"))

	fx.menuRepo.EXPECT().
		UpdateMenuQR(ctx, mock.AnythingOfType("uuid.UUID"), service.PlaceholderQRDataURL, "", mock.AnythingOfType("string")).
		Return(nil)

	fx.analyticsRepo.EXPECT().
		CreateRecord(ctx, mock.AnythingOfType("uuid.UUID")).
		Return(nil)

	menu, err := fx.service.CreateMenu(ctx, uuid.New(), &usecase.CreateMenuInput{
		Name:       "Lunch",
		Categories: []usecase.CategoryInput{{Name: "Mains"}},
	})
	require.NoError(t, err)
	assert.Equal(t, service.PlaceholderQRDataURL, menu.QRImageInline)
	assert.Empty(t, menu.QRImageURL)
	assert.NotEmpty(t, menu.QRTargetURL)
}

func TestMenuService_CreateMenu_StorageFailureKeepsInlineImage(t *testing.T) {
	fx := createTestMenuService(t, false)
	ctx := context.Background()

	fx.menuRepo.EXPECT().
		CreateMenu(ctx, mock.AnythingOfType("*entity.Menu")).
		Return(nil)

	fx.qrSvc.EXPECT().
		GenerateMenuQR(mock.AnythingOfType("string")).
		Return(&service.QRImage{PNG: []byte("png-bytes"), DataURL: "data:image/png;base64,real"}, nil)

	fx.imageStore.EXPECT().
		Persist(ctx, mock.AnythingOfType("string"), []byte("png-bytes")).
		Return("", errors.New("bucket unavailable"))

	fx.menuRepo.EXPECT().
		UpdateMenuQR(ctx, mock.AnythingOfType("uuid.UUID"), "data:image/png;base64,real", "", mock.AnythingOfType("string")).
		Return(nil)

	fx.analyticsRepo.EXPECT().
		CreateRecord(ctx, mock.AnythingOfType("uuid.UUID")).
		Return(nil)

	menu, err := fx.service.CreateMenu(ctx, uuid.New(), &usecase.CreateMenuInput{
		Name:       "Lunch",
		Categories: []usecase.CategoryInput{{Name: "Mains"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,real", menu.QRImageInline)
	assert.Empty(t, menu.QRImageURL)
}

func TestMenuService_GetMenu_OwnershipViolation(t *testing.T) {
	fx := createTestMenuService(t, false)
	ctx := context.Background()
	menuID := uuid.New()

	fx.menuRepo.EXPECT().
		FindMenuByID(ctx, menuID).
		Return(&entity.Menu{ID: menuID, OwnerID: uuid.New()}, nil)

	menu, err := fx.service.GetMenu(ctx, uuid.New(), menuID)
	require.Error(t, err)
	assert.Nil(t, menu)
	assert.True(t, errors.Is(err, domainerrors.ErrMenuOwnershipViolation))
}

func TestMenuService_GetMenu_NotFound(t *testing.T) {
	fx := createTestMenuService(t, false)
	ctx := context.Background()
	menuID := uuid.New()

	fx.menuRepo.EXPECT().
		FindMenuByID(ctx, menuID).
		Return(nil, repository.ErrMenuNotFound)

	_, err := fx.service.GetMenu(ctx, uuid.New(), menuID)
	assert.True(t, errors.Is(err, domainerrors.ErrMenuNotFound))
}

func TestMenuService_UpdateMenu_FieldsOnlyLeavesCategories(t *testing.T) {
	fx := createTestMenuService(t, false)
	ctx := context.Background()
	ownerID := uuid.New()
	menuID := uuid.New()

	stored := &entity.Menu{
		ID:      menuID,
		OwnerID: ownerID,
		Name:    "Old Name",
		Version: 3,
		Categories: []entity.Category{
			{ID: uuid.New(), MenuID: menuID, Name: "Mains"},
		},
	}

	fx.menuRepo.EXPECT().
		FindMenuByID(ctx, menuID).
		Return(stored, nil).
		Once()

	fx.menuRepo.EXPECT().
		UpdateMenu(ctx, mock.AnythingOfType("*entity.Menu"), int64(3)).
		Run(func(_ context.Context, menu *entity.Menu, _ int64) {
			assert.Equal(t, "New Name", menu.Name)
			// A fields-only update must not touch the nested collections.
			assert.Nil(t, menu.Categories)
		}).
		Return(nil).
		Once()

	reloaded := &entity.Menu{ID: menuID, OwnerID: ownerID, Name: "New Name", Version: 4}
	fx.menuRepo.EXPECT().
		FindMenuByID(ctx, menuID).
		Return(reloaded, nil).
		Once()

	menu, err := fx.service.UpdateMenu(ctx, ownerID, menuID, &usecase.UpdateMenuInput{
		Name:    strPtr("New Name"),
		Version: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, "New Name", menu.Name)
	assert.Equal(t, int64(4), menu.Version)
}

func TestMenuService_UpdateMenu_VersionConflict(t *testing.T) {
	fx := createTestMenuService(t, false)
	ctx := context.Background()
	ownerID := uuid.New()
	menuID := uuid.New()

	fx.menuRepo.EXPECT().
		FindMenuByID(ctx, menuID).
		Return(&entity.Menu{ID: menuID, OwnerID: ownerID, Version: 5}, nil)

	fx.menuRepo.EXPECT().
		UpdateMenu(ctx, mock.AnythingOfType("*entity.Menu"), int64(4)).
		Return(repository.ErrMenuVersionConflict)

	_, err := fx.service.UpdateMenu(ctx, ownerID, menuID, &usecase.UpdateMenuInput{
		IsActive: boolPtr(false),
		Version:  4,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMenuVersionConflict))
}

func TestMenuService_UpdateMenu_ReplacesCategories(t *testing.T) {
	fx := createTestMenuService(t, false)
	ctx := context.Background()
	ownerID := uuid.New()
	menuID := uuid.New()

	fx.menuRepo.EXPECT().
		FindMenuByID(ctx, menuID).
		Return(&entity.Menu{ID: menuID, OwnerID: ownerID, Version: 1}, nil).
		Once()

	fx.menuRepo.EXPECT().
		UpdateMenu(ctx, mock.AnythingOfType("*entity.Menu"), int64(0)).
		Run(func(_ context.Context, menu *entity.Menu, _ int64) {
			require.Len(t, menu.Categories, 1)
			assert.Equal(t, menuID, menu.Categories[0].MenuID)
			assert.Equal(t, "Desserts", menu.Categories[0].Name)
		}).
		Return(nil).
		Once()

	fx.menuRepo.EXPECT().
		FindMenuByID(ctx, menuID).
		Return(&entity.Menu{ID: menuID, OwnerID: ownerID, Version: 2}, nil).
		Once()

	_, err := fx.service.UpdateMenu(ctx, ownerID, menuID, &usecase.UpdateMenuInput{
		Categories: []usecase.CategoryInput{{Name: "Desserts"}},
	})
	require.NoError(t, err)
}

func TestMenuService_DeleteMenu_CascadesAnalytics(t *testing.T) {
	fx := createTestMenuService(t, false)
	ctx := context.Background()
	ownerID := uuid.New()
	menuID := uuid.New()

	fx.menuRepo.EXPECT().
		FindMenuByID(ctx, menuID).
		Return(&entity.Menu{ID: menuID, OwnerID: ownerID}, nil)

	fx.menuRepo.EXPECT().
		DeleteMenu(ctx, menuID).
		Return(nil)

	fx.analyticsRepo.EXPECT().
		DeleteByMenuID(ctx, menuID).
		Return(nil)

	err := fx.service.DeleteMenu(ctx, ownerID, menuID)
	require.NoError(t, err)
}

func TestMenuService_DeleteMenu_RetainsAnalyticsWhenConfigured(t *testing.T) {
	fx := createTestMenuService(t, true)
	ctx := context.Background()
	ownerID := uuid.New()
	menuID := uuid.New()

	fx.menuRepo.EXPECT().
		FindMenuByID(ctx, menuID).
		Return(&entity.Menu{ID: menuID, OwnerID: ownerID}, nil)

	fx.menuRepo.EXPECT().
		DeleteMenu(ctx, menuID).
		Return(nil)

	// No DeleteByMenuID expectation: the record must survive the menu.
	err := fx.service.DeleteMenu(ctx, ownerID, menuID)
	require.NoError(t, err)
}

func TestMenuService_RegenerateQR_Success(t *testing.T) {
	fx := createTestMenuService(t, false)
	ctx := context.Background()
	ownerID := uuid.New()
	menuID := uuid.New()
	targetURL := "https://menu.example.com/menu/" + menuID.String()

	fx.menuRepo.EXPECT().
		FindMenuByID(ctx, menuID).
		Return(&entity.Menu{ID: menuID, OwnerID: ownerID, QRImageInline: service.PlaceholderQRDataURL}, nil)

	fx.qrSvc.EXPECT().
		GenerateMenuQR(targetURL).
		Return(&service.QRImage{PNG: []byte("fresh"), DataURL: "data:image/png;base64,fresh"}, nil)

	fx.imageStore.EXPECT().
		Persist(ctx, "qr/menu-"+menuID.String()+".png", []byte("fresh")).
		Return("https://cdn.example.com/qr/menu-x.png", nil)

	fx.menuRepo.EXPECT().
		UpdateMenuQR(ctx, menuID, "data:image/png;base64,fresh", "https://cdn.example.com/qr/menu-x.png", targetURL).
		Return(nil)

	menu, err := fx.service.RegenerateQR(ctx, ownerID, menuID)
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,fresh", menu.QRImageInline)
	assert.True(t, strings.HasSuffix(menu.QRTargetURL, "/menu/"+menuID.String()))
}

func TestMenuService_RegenerateQR_GenerationFails(t *testing.T) {
	fx := createTestMenuService(t, false)
	ctx := context.Background()
	ownerID := uuid.New()
	menuID := uuid.New()

	fx.menuRepo.EXPECT().
		FindMenuByID(ctx, menuID).
		Return(&entity.Menu{ID: menuID, OwnerID: ownerID}, nil)

	fx.qrSvc.EXPECT().
		GenerateMenuQR(mock.AnythingOfType("string")).
		Return(nil, errors.New("encode failed"))

	_, err := fx.service.RegenerateQR(ctx, ownerID, menuID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrQRGenerationFailed))
}

func TestMenuService_GetPublicMenu_Inactive(t *testing.T) {
	fx := createTestMenuService(t, false)
	ctx := context.Background()
	menuID := uuid.New()

	fx.menuRepo.EXPECT().
		FindMenuByID(ctx, menuID).
		Return(&entity.Menu{ID: menuID, IsActive: false}, nil)

	menu, err := fx.service.GetPublicMenu(ctx, menuID)
	require.Error(t, err)
	assert.Nil(t, menu)
	assert.True(t, errors.Is(err, domainerrors.ErrMenuUnavailable))
}

func TestMenuService_GetPublicMenu_Active(t *testing.T) {
	fx := createTestMenuService(t, false)
	ctx := context.Background()
	menuID := uuid.New()

	fx.menuRepo.EXPECT().
		FindMenuByID(ctx, menuID).
		Return(&entity.Menu{ID: menuID, IsActive: true, Name: "Dinner"}, nil)

	menu, err := fx.service.GetPublicMenu(ctx, menuID)
	require.NoError(t, err)
	assert.Equal(t, "Dinner", menu.Name)
}
