package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PromotionType distinguishes consumable promotions from standing ones.
type PromotionType string

const (
	// PromotionOneTime may be applied once per user and must be requested explicitly.
	PromotionOneTime PromotionType = "one-time"
	// PromotionAutomatic applies to every eligible purchase inside its window.
	PromotionAutomatic PromotionType = "automatic"
)

// IsValid checks if the PromotionType is a valid value.
func (t PromotionType) IsValid() bool {
	return t == PromotionOneTime || t == PromotionAutomatic
}

// Promotion grants bonus points on purchases within [StartTime, EndTime).
type Promotion struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Type        PromotionType    `json:"type"`
	StartTime   time.Time        `json:"startTime"`
	EndTime     time.Time        `json:"endTime"`
	MinSpending *decimal.Decimal `json:"minSpending"`
	Rate        *decimal.Decimal `json:"rate"`   // Fraction of the spend in cents.
	Points      int64            `json:"points"` // Flat bonus.
	CreatedAt   time.Time        `json:"createdAt"`
}

// IsActive reports whether now falls inside the promotion window.
func (p *Promotion) IsActive(now time.Time) bool {
	return !now.Before(p.StartTime) && now.Before(p.EndTime)
}

// HasStarted reports whether now is at or after the start of the window.
func (p *Promotion) HasStarted(now time.Time) bool {
	return !now.Before(p.StartTime)
}

// HasEnded reports whether now is at or after the end of the window.
func (p *Promotion) HasEnded(now time.Time) bool {
	return !now.Before(p.EndTime)
}

// MeetsMinSpending reports whether spent satisfies the promotion threshold.
func (p *Promotion) MeetsMinSpending(spent decimal.Decimal) bool {
	return p.MinSpending == nil || spent.GreaterThanOrEqual(*p.MinSpending)
}
