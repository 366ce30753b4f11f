package ledger

import (
	"math"
	"testing"

	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestBasePoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		spent    string
		expected int64
	}{
		{name: "whole dollars", spent: "40.00", expected: 160},
		{name: "rounds down below half", spent: "10.10", expected: 40},
		{name: "rounds half up", spent: "0.125", expected: 1},
		{name: "rounds up above half", spent: "12.38", expected: 50},
		{name: "single quarter", spent: "0.25", expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, BasePoints(dec(tt.spent)).IntPart())
		})
	}
}

func TestPromotionBonus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		spent     string
		promotion *entity.Promotion
		expected  int64
	}{
		{name: "rate only", spent: "40.00", promotion: &entity.Promotion{Rate: decPtr("0.05")}, expected: 200},
		{name: "rate and flat points", spent: "40.00", promotion: &entity.Promotion{Rate: decPtr("0.05"), Points: 10}, expected: 210},
		{name: "flat points only", spent: "3.00", promotion: &entity.Promotion{Points: 25}, expected: 25},
		{name: "rate rounds to nearest point", spent: "10.10", promotion: &entity.Promotion{Rate: decPtr("0.01")}, expected: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, PromotionBonus(dec(tt.spent), tt.promotion).IntPart())
		})
	}
}

func TestComputePurchase_AutomaticRatePromotion(t *testing.T) {
	buyer := &entity.User{ID: 1, Utorid: "buyer001"}
	promotions := []*entity.Promotion{{ID: 7, Type: entity.PromotionAutomatic, Rate: decPtr("0.05")}}

	outcome, err := ComputePurchase(buyer, dec("40.00"), promotions)
	require.NoError(t, err)
	assert.Equal(t, int64(160), outcome.Base)
	assert.Equal(t, int64(200), outcome.Bonus)
	assert.Equal(t, int64(360), outcome.Credited)
	assert.Equal(t, int64(360), outcome.Earned())
	assert.False(t, outcome.Suspicious)
}

func TestComputePurchase_SuspiciousBuyerEarnsNothing(t *testing.T) {
	buyer := &entity.User{ID: 1, Utorid: "buyer001", Suspicious: true}

	outcome, err := ComputePurchase(buyer, dec("10.00"), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(40), outcome.Base)
	assert.Equal(t, int64(0), outcome.Credited)
	assert.True(t, outcome.Suspicious)
}

func TestComputePurchase_RejectsPointsBeyondTransactionCap(t *testing.T) {
	buyer := &entity.User{ID: 1}

	tests := []struct {
		name       string
		spent      string
		promotions []*entity.Promotion
	}{
		{name: "spend beyond int64 points", spent: "10000000000000000000"},
		{name: "base just over the cap", spent: "250000000.25"},
		{name: "bonus pushes total over the cap", spent: "250000000", promotions: []*entity.Promotion{{Points: 1}}},
		{name: "rate bonus beyond int64", spent: "1000", promotions: []*entity.Promotion{{Rate: decPtr("100000000000000000")}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, err := ComputePurchase(buyer, dec(tt.spent), tt.promotions)

			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			assert.Zero(t, outcome.Credited)
		})
	}

	outcome, err := ComputePurchase(buyer, dec("250000000"), nil)
	require.NoError(t, err)
	assert.Equal(t, MaxTransactionPoints, outcome.Credited)
}

func TestComputePurchase_RejectsNonPositiveSpend(t *testing.T) {
	buyer := &entity.User{ID: 1}

	for _, spent := range []string{"0", "-1.50"} {
		_, err := ComputePurchase(buyer, dec(spent), nil)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed, "spent=%s", spent)
	}
}

func TestValidateAdjustment(t *testing.T) {
	owner := &entity.User{ID: 1, Utorid: "owner001"}
	related := &entity.Transaction{ID: 9, Utorid: "owner001"}

	assert.NoError(t, ValidateAdjustment(owner, -20, related))
	assert.ErrorIs(t, ValidateAdjustment(owner, 0, related), domainerrors.ErrValidationFailed)
	assert.NoError(t, ValidateAdjustment(owner, -MaxTransactionPoints, related))
	assert.ErrorIs(t, ValidateAdjustment(owner, MaxTransactionPoints+1, related), domainerrors.ErrValidationFailed)
	assert.ErrorIs(t, ValidateAdjustment(owner, math.MinInt64, related), domainerrors.ErrValidationFailed)
	assert.ErrorIs(t, ValidateAdjustment(owner, 5, nil), domainerrors.ErrTransactionNotFound)
	assert.ErrorIs(t, ValidateAdjustment(owner, 5, &entity.Transaction{ID: 9, Utorid: "other001"}), domainerrors.ErrTransactionNotFound)
}

func TestValidateTransfer(t *testing.T) {
	sender := &entity.User{ID: 1, Verified: true, Points: 100}
	recipient := &entity.User{ID: 2}

	tests := []struct {
		name      string
		sender    *entity.User
		recipient *entity.User
		amount    int64
		expected  error
	}{
		{name: "valid", sender: sender, recipient: recipient, amount: 100},
		{name: "zero amount", sender: sender, recipient: recipient, amount: 0, expected: domainerrors.ErrValidationFailed},
		{name: "unverified sender", sender: &entity.User{ID: 1, Points: 100}, recipient: recipient, amount: 10, expected: domainerrors.ErrUnverifiedUser},
		{name: "self transfer", sender: sender, recipient: sender, amount: 10, expected: domainerrors.ErrValidationFailed},
		{name: "insufficient balance", sender: sender, recipient: recipient, amount: 101, expected: domainerrors.ErrInsufficientBalance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTransfer(tt.sender, tt.recipient, tt.amount)
			if tt.expected == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}
