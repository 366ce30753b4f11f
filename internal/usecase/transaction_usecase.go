package usecase

import (
	"context"

	"loyalty/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// --- Input DTOs ---

// PurchaseInput records a purchase made by Utorid.
type PurchaseInput struct {
	Utorid       string
	Spent        decimal.Decimal
	PromotionIDs []int64
	Remark       string
}

// AdjustmentInput corrects a user's balance with reference to an earlier transaction.
type AdjustmentInput struct {
	Utorid       string
	Amount       int64
	RelatedID    int64
	PromotionIDs []int64
	Remark       string
}

// TransferInput moves points from the actor to RecipientID.
type TransferInput struct {
	RecipientID int64
	Amount      int64
	Remark      string
}

// RedemptionInput asks for Amount points to be redeemed.
type RedemptionInput struct {
	Amount int64
	Remark string
}

// ListTransactionsInput filters a transaction listing.
type ListTransactionsInput struct {
	Name        string
	CreatedBy   string
	Suspicious  *bool
	PromotionID *int64
	Type        *entity.TransactionType
	RelatedID   *int64
	Amount      *int64
	Operator    string
	PageInput
}

// --- Output DTOs ---

// PurchaseResult is the recorded purchase and the points it is worth.
type PurchaseResult struct {
	Transaction *entity.Transaction
	Earned      int64
}

// TransferResult holds the two rows written by a transfer.
type TransferResult struct {
	Sent     *entity.Transaction
	Received *entity.Transaction
}

// TransactionUsecase defines the point accounting operations.
type TransactionUsecase interface {
	CreatePurchase(ctx context.Context, actor Actor, input PurchaseInput) (*PurchaseResult, error)
	CreateAdjustment(ctx context.Context, actor Actor, input AdjustmentInput) (*entity.Transaction, error)
	CreateTransfer(ctx context.Context, actor Actor, input TransferInput) (*TransferResult, error)

	// RequestRedemption debits the actor immediately and leaves the row pending.
	RequestRedemption(ctx context.Context, actor Actor, input RedemptionInput) (*entity.Transaction, error)

	// ProcessRedemption marks a pending redemption as fulfilled by the actor.
	ProcessRedemption(ctx context.Context, actor Actor, transactionID int64) (*entity.Transaction, error)

	// SetSuspicious flags or clears a transaction, reversing or restoring its point effect.
	SetSuspicious(ctx context.Context, transactionID int64, suspicious bool) (*entity.Transaction, error)

	GetTransaction(ctx context.Context, transactionID int64) (*entity.Transaction, error)
	ListTransactions(ctx context.Context, input ListTransactionsInput) (*ListResult[*entity.Transaction], error)

	// ListMyTransactions lists the actor's own transactions; Name is ignored.
	ListMyTransactions(ctx context.Context, actor Actor, input ListTransactionsInput) (*ListResult[*entity.Transaction], error)
}
