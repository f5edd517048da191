package service

import (
	"context"
	"time"
)

// Account event types published to content services.
const (
	EventAccountRegistered        = "account.registered"
	EventAccountUsernameChanged   = "account.username_changed"
	EventAccountModerationChanged = "account.moderation_changed"
)

// AccountEvent describes a change to an account that other services may follow.
type AccountEvent struct {
	RequestID        string    `json:"request_id,omitempty"` // For distributed tracing
	Type             string    `json:"type"`
	AccountID        int64     `json:"account_id"`
	Username         string    `json:"username"`
	PreviousUsername string    `json:"previous_username,omitempty"`
	Flag             string    `json:"flag,omitempty"`
	Value            *bool     `json:"value,omitempty"`
	OccurredAt       time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAccountEvent publishes an account lifecycle event
	PublishAccountEvent(ctx context.Context, event *AccountEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
