package impl

import (
	"context"
	"log/slog"
	"time"

	"menuqr/internal/domain/entity"
	domainerrors "menuqr/internal/domain/errors"
	"menuqr/internal/domain/repository"
	"menuqr/internal/domain/service"
	"menuqr/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// analyticsService implements the AnalyticsUsecase interface.
type analyticsService struct {
	analyticsRepo repository.AnalyticsRepository
	menuRepo      repository.MenuRepository
	publisher     service.EventPublisher
	logger        *slog.Logger
}

// NewAnalyticsService is the constructor for analyticsService.
func NewAnalyticsService(
	analyticsRepo repository.AnalyticsRepository,
	menuRepo repository.MenuRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.AnalyticsUsecase {
	return &analyticsService{
		analyticsRepo: analyticsRepo,
		menuRepo:      menuRepo,
		publisher:     publisher,
		logger:        logger,
	}
}

// InitializeAnalytics creates the zeroed analytics record for a new menu.
func (srv *analyticsService) InitializeAnalytics(ctx context.Context, menuID uuid.UUID) error {
	if err := srv.analyticsRepo.CreateRecord(ctx, menuID); err != nil {
		return errors.Wrap(err, "failed to initialize analytics")
	}

	return nil
}

// RecordScan validates the device type, persists the scan and bumps the
// counters. The downstream event publish is best effort: a broker outage must
// never break diners loading a menu.
func (srv *analyticsService) RecordScan(ctx context.Context, menuID uuid.UUID, deviceType string) error {
	device, ok := entity.ParseDeviceClass(deviceType)
	if !ok {
		return domainerrors.ErrInvalidDeviceType.WrapMessage(deviceType)
	}

	occurredAt := time.Now()
	if err := srv.analyticsRepo.IncrementScan(ctx, menuID, device, occurredAt); err != nil {
		return errors.Wrap(err, "failed to record scan")
	}

	event := &service.ScanEventMessage{
		MenuID:      menuID.String(),
		DeviceClass: string(device),
		OccurredAt:  occurredAt,
	}
	if err := srv.publisher.PublishScanEvent(ctx, event); err != nil {
		srv.logger.Warn("Failed to publish scan event", "menuID", menuID, "error", err)
	}

	return nil
}

// GetOwnerSummary returns per-menu scan statistics for all of the owner's
// menus, in the owner's menu listing order. Menus that have not accumulated a
// record yet report zeroed counters.
func (srv *analyticsService) GetOwnerSummary(ctx context.Context, ownerID uuid.UUID) ([]*usecase.MenuAnalyticsSummary, error) {
	menus, err := srv.menuRepo.FindMenusByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list menus for analytics summary")
	}
	if len(menus) == 0 {
		return []*usecase.MenuAnalyticsSummary{}, nil
	}

	menuIDs := make([]uuid.UUID, 0, len(menus))
	for _, menu := range menus {
		menuIDs = append(menuIDs, menu.ID)
	}

	records, err := srv.analyticsRepo.FindRecordsByMenuIDs(ctx, menuIDs, time.Now())
	if err != nil {
		return nil, errors.Wrap(err, "failed to load analytics records")
	}

	recordsByMenu := make(map[uuid.UUID]*entity.AnalyticsRecord, len(records))
	for _, record := range records {
		recordsByMenu[record.MenuID] = record
	}

	summaries := make([]*usecase.MenuAnalyticsSummary, 0, len(menus))
	for _, menu := range menus {
		record, ok := recordsByMenu[menu.ID]
		if !ok {
			record = &entity.AnalyticsRecord{MenuID: menu.ID}
		}

		summaries = append(summaries, &usecase.MenuAnalyticsSummary{
			MenuID:    menu.ID,
			MenuName:  menu.Name,
			IsActive:  menu.IsActive,
			Analytics: record,
		})
	}

	return summaries, nil
}
