package service

import (
	"context"
	"time"
)

// Ledger event kinds.
const (
	LedgerEventTransactionCreated  = "transaction.created"
	LedgerEventSuspiciousChanged   = "transaction.suspicious_changed"
	LedgerEventRedemptionProcessed = "redemption.processed"
	LedgerEventEventPointsAwarded  = "event.points_awarded"
)

// LedgerEvent describes a committed change to the ledger. Consumers use it to
// keep derived state (balance caches, reporting) in sync.
type LedgerEvent struct {
	ID            string    `json:"id"`
	RequestID     string    `json:"request_id,omitempty"` // For distributed tracing
	Kind          string    `json:"kind"`
	TransactionID int64     `json:"transaction_id,omitempty"`
	UserIDs       []int64   `json:"user_ids"` // Users whose balance may have changed
	Utorid        string    `json:"utorid,omitempty"`
	Type          string    `json:"type,omitempty"`
	Amount        int64     `json:"amount"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing ledger events to a message queue
type EventPublisher interface {
	// PublishLedgerEvent publishes a ledger event for async processing
	PublishLedgerEvent(ctx context.Context, event *LedgerEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
