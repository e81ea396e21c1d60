package model

import (
	"time"

	"menuqr/internal/domain/entity"

	"github.com/google/uuid"
)

// AnalyticsModel is the GORM-specific struct for the 'menu_analytics' table.
// It holds the denormalized total and per-device counters for one menu; the
// trailing windows are computed from scan events on read.
type AnalyticsModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	MenuID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	TotalScans   int64     `gorm:"not null;default:0"`
	MobileScans  int64     `gorm:"not null;default:0"`
	TabletScans  int64     `gorm:"not null;default:0"`
	DesktopScans int64     `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AnalyticsModel) TableName() string {
	return "menu_analytics"
}

// ScanEventModel is the GORM-specific struct for the 'menu_scan_events' table.
// Append-only; the menu_id+occurred_at index serves the window queries.
type ScanEventModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	MenuID      uuid.UUID `gorm:"type:uuid;not null;index:idx_scan_events_menu_time"`
	DeviceClass string    `gorm:"not null"`
	OccurredAt  time.Time `gorm:"not null;index:idx_scan_events_menu_time"`
}

// TableName explicitly sets the table name for GORM.
func (ScanEventModel) TableName() string {
	return "menu_scan_events"
}

// ToAnalyticsDomain converts a GORM analytics model into the domain record.
// Window counters are filled in separately by the repository.
func ToAnalyticsDomain(recordM *AnalyticsModel) *entity.AnalyticsRecord {
	return &entity.AnalyticsRecord{
		ID:         recordM.ID,
		MenuID:     recordM.MenuID,
		TotalScans: recordM.TotalScans,
		Breakdown: entity.DeviceBreakdown{
			Mobile:  recordM.MobileScans,
			Tablet:  recordM.TabletScans,
			Desktop: recordM.DesktopScans,
		},
		CreatedAt: recordM.CreatedAt,
		UpdatedAt: recordM.UpdatedAt,
	}
}
