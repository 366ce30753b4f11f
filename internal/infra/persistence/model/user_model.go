// Package model holds the GORM persistence models of the ledger.
package model

import (
	"time"
)

// UserModel mirrors the 'users' table.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID         int64   `gorm:"primaryKey;autoIncrement"`
	Utorid     string  `gorm:"type:varchar(8);uniqueIndex;not null"`
	Name       string  `gorm:"type:varchar(50);not null"`
	Email      string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	Birthday   *string `gorm:"type:varchar(10)"`
	Role       string  `gorm:"type:varchar(16);index;not null"`
	Points     int64   `gorm:"not null"`
	Verified   bool    `gorm:"not null"`
	Suspicious bool    `gorm:"not null"`
	LastLogin  *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	PromotionUsages []UserPromotionUsageModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// UserPromotionUsageModel mirrors 'user_promotion_usages'. The composite primary
// key makes a second consumption of the same one-time promotion fail.
type UserPromotionUsageModel struct {
	UserID      int64 `gorm:"primaryKey;autoIncrement:false"`
	PromotionID int64 `gorm:"primaryKey;autoIncrement:false"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserPromotionUsageModel) TableName() string {
	return "user_promotion_usages"
}
