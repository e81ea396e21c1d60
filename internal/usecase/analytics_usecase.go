package usecase

import (
	"context"

	"menuqr/internal/domain/entity"

	"github.com/google/uuid"
)

// AnalyticsUsecase defines the interface for scan-analytics business operations.
type AnalyticsUsecase interface {
	// InitializeAnalytics creates the zeroed analytics record for a new menu.
	InitializeAnalytics(ctx context.Context, menuID uuid.UUID) error

	// RecordScan validates the device type, appends a scan event and bumps the
	// counters. Publishing the event downstream is best effort.
	RecordScan(ctx context.Context, menuID uuid.UUID, deviceType string) error

	// GetOwnerSummary returns per-menu scan statistics for all of the owner's menus.
	GetOwnerSummary(ctx context.Context, ownerID uuid.UUID) ([]*MenuAnalyticsSummary, error)
}

// MenuAnalyticsSummary pairs a menu with its scan statistics for owner dashboards.
type MenuAnalyticsSummary struct {
	MenuID    uuid.UUID               `json:"menu_id"`
	MenuName  string                  `json:"menu_name"`
	IsActive  bool                    `json:"is_active"`
	Analytics *entity.AnalyticsRecord `json:"analytics"`
}
