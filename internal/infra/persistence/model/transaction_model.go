package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionModel mirrors the 'transactions' table.
type TransactionModel struct {
	ID          int64            `gorm:"primaryKey;autoIncrement"`
	Utorid      string           `gorm:"type:varchar(8);index;not null"`
	Type        string           `gorm:"type:varchar(16);index;not null"`
	Amount      int64            `gorm:"not null"`
	Spent       *decimal.Decimal `gorm:"type:numeric(12,2)"`
	Redeemed    *int64
	RelatedID   *int64  `gorm:"index"`
	Suspicious  bool    `gorm:"not null"`
	ProcessedBy *string `gorm:"type:varchar(8)"`
	Remark      string  `gorm:"type:text"`
	CreatedBy   string  `gorm:"type:varchar(8);index;not null"`
	CreatedAt   time.Time

	Promotions []TransactionPromotionModel `gorm:"foreignKey:TransactionID"`
}

// TableName explicitly sets the table name for GORM.
func (TransactionModel) TableName() string {
	return "transactions"
}

// TransactionPromotionModel mirrors 'transaction_promotions', the promotions
// applied to a transaction.
type TransactionPromotionModel struct {
	TransactionID int64 `gorm:"primaryKey;autoIncrement:false"`
	PromotionID   int64 `gorm:"primaryKey;autoIncrement:false;index"`
}

// TableName explicitly sets the table name for GORM.
func (TransactionPromotionModel) TableName() string {
	return "transaction_promotions"
}
