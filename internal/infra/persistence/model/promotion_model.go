package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PromotionModel mirrors the 'promotions' table.
type PromotionModel struct {
	ID          int64            `gorm:"primaryKey;autoIncrement"`
	Name        string           `gorm:"type:varchar(255);not null"`
	Description string           `gorm:"type:text;not null"`
	Type        string           `gorm:"type:varchar(16);index;not null"`
	StartTime   time.Time        `gorm:"index;not null"`
	EndTime     time.Time        `gorm:"index;not null"`
	MinSpending *decimal.Decimal `gorm:"type:numeric(12,2)"`
	Rate        *decimal.Decimal `gorm:"type:numeric(8,4)"`
	Points      int64            `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (PromotionModel) TableName() string {
	return "promotions"
}

// All lists every ledger model in migration order.
func All() []any {
	return []any{
		&UserModel{},
		&UserPromotionUsageModel{},
		&PromotionModel{},
		&TransactionModel{},
		&TransactionPromotionModel{},
		&EventModel{},
		&EventGuestModel{},
		&EventOrganizerModel{},
	}
}
