// Package ledger holds the pure point-accounting rules: how spends and awards
// become point deltas, how promotions compose, and how event rosters and
// budgets are guarded. Nothing here touches storage.
package ledger

import (
	"fmt"

	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"

	"github.com/shopspring/decimal"
)

// MaxTransactionPoints caps the points a single ledger transaction may move.
const MaxTransactionPoints int64 = 1_000_000_000

var (
	// spendPerPoint is the spend needed for one base point.
	spendPerPoint        = decimal.RequireFromString("0.25")
	centsPerDollar       = decimal.NewFromInt(100)
	maxTransactionPoints = decimal.NewFromInt(MaxTransactionPoints)
)

// BasePoints converts a spend into base points, one point per 25 cents, rounded half up.
func BasePoints(spent decimal.Decimal) decimal.Decimal {
	return spent.Div(spendPerPoint).Round(0)
}

// PromotionBonus returns the bonus a promotion grants on a spend:
// round(spent in cents × rate) plus the flat points.
func PromotionBonus(spent decimal.Decimal, promotion *entity.Promotion) decimal.Decimal {
	bonus := decimal.NewFromInt(promotion.Points)
	if promotion.Rate != nil {
		bonus = bonus.Add(spent.Mul(centsPerDollar).Mul(*promotion.Rate).Round(0))
	}

	return bonus
}

func errTooManyPoints(what string) error {
	return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("%s exceeds %d points", what, MaxTransactionPoints))
}

// PurchaseOutcome is the point effect of one purchase.
type PurchaseOutcome struct {
	Base       int64 // Recorded as the transaction amount.
	Bonus      int64 // Sum over applied promotions.
	Credited   int64 // Actually added to the balance.
	Suspicious bool
}

// Earned is the number of points the purchase is worth, credited or not.
func (o PurchaseOutcome) Earned() int64 {
	return o.Base + o.Bonus
}

// ComputePurchase prices a purchase. A suspicious buyer earns nothing until the
// transaction is cleared, but the amount is still recorded.
func ComputePurchase(buyer *entity.User, spent decimal.Decimal, applied []*entity.Promotion) (PurchaseOutcome, error) {
	if !spent.IsPositive() {
		return PurchaseOutcome{}, domainerrors.ErrValidationFailed.WithDetails("spent must be positive")
	}

	base := BasePoints(spent)
	bonus := decimal.Zero
	for _, promotion := range applied {
		bonus = bonus.Add(PromotionBonus(spent, promotion))
	}
	if base.GreaterThan(maxTransactionPoints) || bonus.Abs().GreaterThan(maxTransactionPoints) ||
		base.Add(bonus).GreaterThan(maxTransactionPoints) {
		return PurchaseOutcome{}, errTooManyPoints("purchase")
	}

	outcome := PurchaseOutcome{Base: base.IntPart(), Bonus: bonus.IntPart()}

	if buyer.Suspicious {
		outcome.Suspicious = true
		return outcome, nil
	}

	outcome.Credited = outcome.Earned()

	return outcome, nil
}

// ValidateAdjustment checks an adjustment against the transaction it corrects.
func ValidateAdjustment(owner *entity.User, amount int64, related *entity.Transaction) error {
	if amount == 0 {
		return domainerrors.ErrValidationFailed.WithDetails("amount must be non-zero")
	}
	if amount > MaxTransactionPoints || amount < -MaxTransactionPoints {
		return errTooManyPoints("adjustment")
	}
	if related == nil || related.Utorid != owner.Utorid {
		return domainerrors.ErrTransactionNotFound.WithDetails("related transaction does not belong to this user")
	}

	return nil
}

// ValidateTransfer checks that sender may move amount points to recipient.
func ValidateTransfer(sender, recipient *entity.User, amount int64) error {
	if amount <= 0 {
		return domainerrors.ErrValidationFailed.WithDetails("amount must be a positive integer")
	}
	if !sender.Verified {
		return domainerrors.ErrUnverifiedUser
	}
	if sender.ID == recipient.ID {
		return domainerrors.ErrValidationFailed.WithDetails("cannot transfer points to yourself")
	}
	if !sender.CanAfford(amount) {
		return domainerrors.ErrInsufficientBalance
	}

	return nil
}
