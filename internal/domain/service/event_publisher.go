package service

import (
	"context"
	"time"
)

// EventTypeAccountRegistered is emitted after a registration commits.
const EventTypeAccountRegistered = "account.registered"

// AccountEvent describes a change to an account for downstream consumers.
type AccountEvent struct {
	RequestID   string    `json:"request_id,omitempty"` // For distributed tracing
	EventID     string    `json:"event_id"`
	Type        string    `json:"type"`
	UserID      string    `json:"user_id"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	InstituteID string    `json:"institute_id,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAccountEvent publishes an account event for async processing
	PublishAccountEvent(ctx context.Context, event *AccountEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
