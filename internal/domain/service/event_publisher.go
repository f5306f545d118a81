package service

import (
	"context"
	"time"
)

// AccountEventType names an account lifecycle transition.
type AccountEventType string

const (
	// AccountRegistered is published after a successful signup.
	AccountRegistered AccountEventType = "account.registered"
	// AccountDeleted is published after an account removes itself.
	AccountDeleted AccountEventType = "account.deleted"
)

// AccountEvent is consumed downstream, e.g. by a mailer sending welcome and
// cancellation messages.
type AccountEvent struct {
	RequestID  string           `json:"request_id,omitempty"` // For distributed tracing
	Type       AccountEventType `json:"type"`
	UserID     string           `json:"user_id"`
	Email      string           `json:"email"`
	FirstName  string           `json:"first_name,omitempty"`
	OccurredAt time.Time        `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAccountEvent publishes an account lifecycle event
	PublishAccountEvent(ctx context.Context, event *AccountEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
