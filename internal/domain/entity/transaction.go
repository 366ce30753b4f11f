package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the kind of ledger movement a transaction records.
type TransactionType string

const (
	TransactionPurchase   TransactionType = "purchase"
	TransactionAdjustment TransactionType = "adjustment"
	TransactionTransfer   TransactionType = "transfer"
	TransactionRedemption TransactionType = "redemption"
	TransactionEvent      TransactionType = "event"
)

// IsValid checks if the TransactionType is a valid value.
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionPurchase, TransactionAdjustment, TransactionTransfer, TransactionRedemption, TransactionEvent:
		return true
	default:
		return false
	}
}

// Transaction is an append-mostly record of one change to a user's balance.
// Only Suspicious and ProcessedBy change after creation.
type Transaction struct {
	ID           int64            `json:"id"`
	Utorid       string           `json:"utorid"`
	Type         TransactionType  `json:"type"`
	Amount       int64            `json:"amount"` // Positive credits, negative debits.
	Spent        *decimal.Decimal `json:"spent,omitempty"`
	Redeemed     *int64           `json:"redeemed,omitempty"`
	RelatedID    *int64           `json:"relatedId,omitempty"`
	PromotionIDs []int64          `json:"promotionIds"`
	Suspicious   bool             `json:"suspicious"`
	ProcessedBy  *string          `json:"processedBy"`
	Remark       string           `json:"remark"`
	CreatedBy    string           `json:"createdBy"`
	CreatedAt    time.Time        `json:"createdAt"`
}

// IsProcessed reports whether a redemption has already been fulfilled.
func (t *Transaction) IsProcessed() bool {
	return t.ProcessedBy != nil
}
