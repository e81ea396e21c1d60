package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"menuqr/internal/domain/entity"
	domainerrors "menuqr/internal/domain/errors"
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

// analyticsServiceFixtures holds all test dependencies for analytics service tests.
type analyticsServiceFixtures struct {
	service       usecase.AnalyticsUsecase
	analyticsRepo *mockRepo.MockAnalyticsRepository
	menuRepo      *mockRepo.MockMenuRepository
	publisher     *mockSvc.MockEventPublisher
}

func createTestAnalyticsService(t *testing.T) analyticsServiceFixtures {
	analyticsRepo := mockRepo.NewMockAnalyticsRepository(t)
	menuRepo := mockRepo.NewMockMenuRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewAnalyticsService(analyticsRepo, menuRepo, publisher, logger)

	return analyticsServiceFixtures{
		service:       svc,
		analyticsRepo: analyticsRepo,
		menuRepo:      menuRepo,
		publisher:     publisher,
	}
}

func TestAnalyticsService_RecordScan_Success(t *testing.T) {
	fx := createTestAnalyticsService(t)
	ctx := context.Background()
	menuID := uuid.New()

	fx.analyticsRepo.EXPECT().
		IncrementScan(ctx, menuID, entity.DeviceMobile, mock.AnythingOfType("time.Time")).
		Return(nil)

	fx.publisher.EXPECT().
		PublishScanEvent(ctx, mock.AnythingOfType("*service.ScanEventMessage")).
		Run(func(_ context.Context, event *service.ScanEventMessage) {
			assert.Equal(t, menuID.String(), event.MenuID)
			assert.Equal(t, "mobile", event.DeviceClass)
			assert.False(t, event.OccurredAt.IsZero())
		}).
		Return(nil)

	err := fx.service.RecordScan(ctx, menuID, "mobile")
	require.NoError(t, err)
}

func TestAnalyticsService_RecordScan_InvalidDevice(t *testing.T) {
	fx := createTestAnalyticsService(t)

	err := fx.service.RecordScan(context.Background(), uuid.New(), "smartwatch")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidDeviceType))
}

func TestAnalyticsService_RecordScan_PublishFailureIsSwallowed(t *testing.T) {
	fx := createTestAnalyticsService(t)
	ctx := context.Background()
	menuID := uuid.New()

	fx.analyticsRepo.EXPECT().
		IncrementScan(ctx, menuID, entity.DeviceTablet, mock.AnythingOfType("time.Time")).
		Return(nil)

	fx.publisher.EXPECT().
		PublishScanEvent(ctx, mock.AnythingOfType("*service.ScanEventMessage")).
		Return(errors.New("broker down"))

	// A broker outage must not fail the scan.
	err := fx.service.RecordScan(ctx, menuID, "tablet")
	require.NoError(t, err)
}

func TestAnalyticsService_RecordScan_IncrementFails(t *testing.T) {
	fx := createTestAnalyticsService(t)
	ctx := context.Background()
	menuID := uuid.New()

	fx.analyticsRepo.EXPECT().
		IncrementScan(ctx, menuID, entity.DeviceDesktop, mock.AnythingOfType("time.Time")).
		Return(errors.New("deadlock detected"))

	err := fx.service.RecordScan(ctx, menuID, "desktop")
	require.Error(t, err)
}

func TestAnalyticsService_InitializeAnalytics(t *testing.T) {
	fx := createTestAnalyticsService(t)
	ctx := context.Background()
	menuID := uuid.New()

	fx.analyticsRepo.EXPECT().
		CreateRecord(ctx, menuID).
		Return(nil)

	require.NoError(t, fx.service.InitializeAnalytics(ctx, menuID))
}

func TestAnalyticsService_GetOwnerSummary(t *testing.T) {
	fx := createTestAnalyticsService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	scannedMenuID := uuid.New()
	freshMenuID := uuid.New()

	fx.menuRepo.EXPECT().
		FindMenusByOwner(ctx, ownerID).
		Return([]*entity.Menu{
			{ID: scannedMenuID, OwnerID: ownerID, Name: "Dinner", IsActive: true},
			{ID: freshMenuID, OwnerID: ownerID, Name: "Brunch", IsActive: false},
		}, nil)

	fx.analyticsRepo.EXPECT().
		FindRecordsByMenuIDs(ctx, []uuid.UUID{scannedMenuID, freshMenuID}, mock.AnythingOfType("time.Time")).
		Return([]*entity.AnalyticsRecord{
			{
				MenuID:         scannedMenuID,
				TotalScans:     42,
				UniqueScans:    5,
				ScansToday:     3,
				ScansThisWeek:  17,
				ScansThisMonth: 42,
				Breakdown:      entity.DeviceBreakdown{Mobile: 30, Tablet: 2, Desktop: 10},
			},
		}, nil)

	summaries, err := fx.service.GetOwnerSummary(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, "Dinner", summaries[0].MenuName)
	assert.Equal(t, int64(42), summaries[0].Analytics.TotalScans)
	assert.Equal(t, int64(42), summaries[0].Analytics.Breakdown.Total())

	// A menu that was never scanned still shows up with zeroed counters.
	assert.Equal(t, "Brunch", summaries[1].MenuName)
	assert.False(t, summaries[1].IsActive)
	assert.Equal(t, int64(0), summaries[1].Analytics.TotalScans)
	assert.Equal(t, freshMenuID, summaries[1].Analytics.MenuID)
}

func TestAnalyticsService_GetOwnerSummary_NoMenus(t *testing.T) {
	fx := createTestAnalyticsService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	fx.menuRepo.EXPECT().
		FindMenusByOwner(ctx, ownerID).
		Return([]*entity.Menu{}, nil)

	summaries, err := fx.service.GetOwnerSummary(ctx, ownerID)
	require.NoError(t, err)
	assert.Empty(t, summaries)
}
