package repository

import (
	"context"
	"time"

	"menuqr/internal/domain/entity"
	"menuqr/internal/errors"

	"github.com/google/uuid"
)

// ErrAnalyticsNotFound is returned when a menu has no analytics record.
var ErrAnalyticsNotFound = errors.New("analytics record not found")

// AnalyticsRepository defines the interface for scan analytics persistence.
type AnalyticsRepository interface {
	// CreateRecord creates a zeroed analytics record for a menu.
	// Safe to call more than once per menu; repeated calls are no-ops.
	CreateRecord(ctx context.Context, menuID uuid.UUID) error

	// IncrementScan appends a scan event and atomically bumps the total and
	// device counters. Creates the record lazily if it does not exist yet.
	IncrementScan(ctx context.Context, menuID uuid.UUID, device entity.DeviceClass, occurredAt time.Time) error

	// FindRecordsByMenuIDs loads analytics records for the given menus with
	// trailing-window counters computed from the scan event log as of now.
	FindRecordsByMenuIDs(ctx context.Context, menuIDs []uuid.UUID, now time.Time) ([]*entity.AnalyticsRecord, error)

	// DeleteByMenuID removes a menu's analytics record and its scan events.
	DeleteByMenuID(ctx context.Context, menuID uuid.UUID) error
}
