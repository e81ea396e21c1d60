package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeviceClass is the coarse device category inferred from a scanning client.
type DeviceClass string

const (
	DeviceMobile  DeviceClass = "mobile"
	DeviceTablet  DeviceClass = "tablet"
	DeviceDesktop DeviceClass = "desktop"
)

// ParseDeviceClass validates a raw device type string against the closed set.
func ParseDeviceClass(raw string) (DeviceClass, bool) {
	switch DeviceClass(raw) {
	case DeviceMobile, DeviceTablet, DeviceDesktop:
		return DeviceClass(raw), true
	default:
		return "", false
	}
}

// DeviceBreakdown maps each device class to its scan count.
type DeviceBreakdown struct {
	Mobile  int64 `json:"mobile"`
	Tablet  int64 `json:"tablet"`
	Desktop int64 `json:"desktop"`
}

// Total returns the sum of all device buckets.
func (b DeviceBreakdown) Total() int64 {
	return b.Mobile + b.Tablet + b.Desktop
}

// AnalyticsRecord holds scan statistics for a single menu. Total and device
// counters are denormalized; the trailing windows and unique approximation are
// computed from the scan event log on read.
type AnalyticsRecord struct {
	ID             uuid.UUID       `json:"id"`
	MenuID         uuid.UUID       `json:"menu_id"`
	TotalScans     int64           `json:"total_scans"`
	UniqueScans    int64           `json:"unique_scans"` // Approximated as the number of distinct scan days.
	ScansToday     int64           `json:"scans_today"`
	ScansThisWeek  int64           `json:"scans_this_week"`  // Trailing 7 days.
	ScansThisMonth int64           `json:"scans_this_month"` // Trailing 30 days.
	Breakdown      DeviceBreakdown `json:"device_breakdown"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ScanEvent is one recorded scan of a menu's QR code. Events are append-only
// and are the source of truth for the window counters.
type ScanEvent struct {
	ID          uuid.UUID   `json:"id"`
	MenuID      uuid.UUID   `json:"menu_id"`
	DeviceClass DeviceClass `json:"device_class"`
	OccurredAt  time.Time   `json:"occurred_at"`
}
