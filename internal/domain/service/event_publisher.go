package service

import (
	"context"
	"time"
)

// ScanEventMessage is the payload published for each recorded QR scan so
// downstream consumers can process raw scan traffic independently of the
// denormalized counters.
type ScanEventMessage struct {
	RequestID   string    `json:"request_id,omitempty"` // For distributed tracing
	MenuID      string    `json:"menu_id"`
	DeviceClass string    `json:"device_class"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing scan events to a message queue.
type EventPublisher interface {
	// PublishScanEvent publishes a scan event for async processing.
	PublishScanEvent(ctx context.Context, event *ScanEventMessage) error

	// Close releases any resources held by the publisher.
	Close() error
}
