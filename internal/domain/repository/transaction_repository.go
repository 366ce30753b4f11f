package repository

import (
	"context"

	"loyalty/internal/domain/entity"
)

// Amount comparison operators accepted by TransactionFilter.
const (
	OperatorGTE = "gte"
	OperatorLTE = "lte"
)

// TransactionFilter narrows a transaction listing.
type TransactionFilter struct {
	Utorid      string // Exact owner.
	Name        string // Owner utorid or name contains.
	CreatedBy   string
	Suspicious  *bool
	PromotionID *int64
	Type        *entity.TransactionType
	RelatedID   *int64
	Amount      *int64
	Operator    string
	Pagination
}

// TransactionRepository persists ledger transactions.
type TransactionRepository interface {
	// Create inserts the transaction and its applied promotions, filling ID and CreatedAt.
	Create(ctx context.Context, tx *entity.Transaction) error

	// FindByID retrieves a single transaction.
	FindByID(ctx context.Context, id int64) (*entity.Transaction, error)

	// LockByID retrieves a transaction and holds a row lock until the transaction ends.
	LockByID(ctx context.Context, id int64) (*entity.Transaction, error)

	// List returns one page of transactions, newest first, and the total number of matches.
	List(ctx context.Context, filter TransactionFilter) ([]*entity.Transaction, int64, error)

	// UpdateSuspicious sets the suspicious flag.
	UpdateSuspicious(ctx context.Context, id int64, suspicious bool) error

	// MarkProcessed records who fulfilled a redemption.
	MarkProcessed(ctx context.Context, id int64, processedBy string) error
}
