package ledger

import (
	"strings"
	"time"

	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"

	"github.com/shopspring/decimal"
)

// ValidateNewPromotion checks a freshly submitted promotion.
func ValidateNewPromotion(promotion *entity.Promotion, now time.Time) error {
	if strings.TrimSpace(promotion.Name) == "" || strings.TrimSpace(promotion.Description) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("name and description are required")
	}
	if !promotion.Type.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("type must be one-time or automatic")
	}
	if promotion.StartTime.Before(now) || !promotion.StartTime.Before(promotion.EndTime) {
		return domainerrors.ErrInvalidTimeWindow
	}

	return validatePromotionAmounts(promotion.MinSpending, promotion.Rate, promotion.Points)
}

func validatePromotionAmounts(minSpending, rate *decimal.Decimal, points int64) error {
	if minSpending != nil && minSpending.IsNegative() {
		return domainerrors.ErrValidationFailed.WithDetails("minSpending cannot be negative")
	}
	if rate != nil && rate.IsNegative() {
		return domainerrors.ErrValidationFailed.WithDetails("rate cannot be negative")
	}
	if points < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("points cannot be negative")
	}

	return nil
}

// CanDeletePromotion only allows deleting promotions that have not started.
func CanDeletePromotion(promotion *entity.Promotion, now time.Time) error {
	if promotion.HasStarted(now) {
		return domainerrors.ErrPromotionStarted
	}

	return nil
}

// PromotionPatch holds the optional fields of a promotion update.
type PromotionPatch struct {
	Name        *string
	Description *string
	Type        *entity.PromotionType
	StartTime   *time.Time
	EndTime     *time.Time
	MinSpending *decimal.Decimal
	Rate        *decimal.Decimal
	Points      *int64
}

// ApplyPromotionPatch validates patch against the promotion window and applies it.
func ApplyPromotionPatch(promotion *entity.Promotion, patch PromotionPatch, now time.Time) error {
	startedFieldSet := patch.Name != nil || patch.Description != nil || patch.Type != nil ||
		patch.StartTime != nil || patch.MinSpending != nil || patch.Rate != nil || patch.Points != nil
	if startedFieldSet && promotion.HasStarted(now) {
		return domainerrors.ErrPromotionStarted
	}
	if patch.EndTime != nil && promotion.HasEnded(now) {
		return domainerrors.ErrPromotionEndedEdit
	}

	start, end := promotion.StartTime, promotion.EndTime
	if patch.StartTime != nil {
		if patch.StartTime.Before(now) {
			return domainerrors.ErrInvalidTimeWindow
		}
		start = *patch.StartTime
	}
	if patch.EndTime != nil {
		if patch.EndTime.Before(now) {
			return domainerrors.ErrInvalidTimeWindow
		}
		end = *patch.EndTime
	}
	if !start.Before(end) {
		return domainerrors.ErrInvalidTimeWindow
	}

	if patch.Type != nil && !patch.Type.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("type must be one-time or automatic")
	}
	points := promotion.Points
	if patch.Points != nil {
		points = *patch.Points
	}
	if err := validatePromotionAmounts(patch.MinSpending, patch.Rate, points); err != nil {
		return err
	}

	if patch.Name != nil {
		promotion.Name = *patch.Name
	}
	if patch.Description != nil {
		promotion.Description = *patch.Description
	}
	if patch.Type != nil {
		promotion.Type = *patch.Type
	}
	promotion.StartTime, promotion.EndTime = start, end
	if patch.MinSpending != nil {
		promotion.MinSpending = patch.MinSpending
	}
	if patch.Rate != nil {
		promotion.Rate = patch.Rate
	}
	promotion.Points = points

	return nil
}
