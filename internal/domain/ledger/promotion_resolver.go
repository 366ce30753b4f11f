package ledger

import (
	"fmt"
	"time"

	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"

	"github.com/shopspring/decimal"
)

// PromotionContext carries everything needed to decide which promotions apply.
type PromotionContext struct {
	Buyer        *entity.User
	Spent        *decimal.Decimal // Nil for adjustments, which skip the minimum-spend check.
	RequestedIDs []int64
	Found        []*entity.Promotion // Requested promotions that exist.
	Automatic    []*entity.Promotion // Candidate automatic promotions.
	Now          time.Time
}

// Resolution is the outcome of promotion resolution.
type Resolution struct {
	Applied  []*entity.Promotion // Explicit first, then automatic.
	Consumed []int64             // One-time promotions to mark as used.
}

// AppliedIDs returns the ids of the applied promotions in order.
func (r Resolution) AppliedIDs() []int64 {
	ids := make([]int64, 0, len(r.Applied))
	for _, p := range r.Applied {
		ids = append(ids, p.ID)
	}

	return ids
}

// ResolvePromotions decides which promotions a purchase or adjustment gets.
// The first invalid requested id rejects the whole request.
func ResolvePromotions(pc PromotionContext) (Resolution, error) {
	seen := make(map[int64]struct{}, len(pc.RequestedIDs))
	for _, id := range pc.RequestedIDs {
		if _, dup := seen[id]; dup {
			return Resolution{}, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("promotion %d requested more than once", id))
		}
		seen[id] = struct{}{}
	}

	// Reuse is reported before anything else about the promotion.
	for _, id := range pc.RequestedIDs {
		if pc.Buyer.HasUsed(id) {
			return Resolution{}, domainerrors.ErrPromotionAlreadyUsed.WithDetails(fmt.Sprintf("promotion %d", id))
		}
	}

	found := make(map[int64]*entity.Promotion, len(pc.Found))
	for _, p := range pc.Found {
		found[p.ID] = p
	}

	var res Resolution
	for _, id := range pc.RequestedIDs {
		promotion, ok := found[id]
		if !ok || !promotion.IsActive(pc.Now) {
			return Resolution{}, domainerrors.ErrInvalidPromotion.WithDetails(fmt.Sprintf("promotion %d", id))
		}
		if pc.Spent != nil && !promotion.MeetsMinSpending(*pc.Spent) {
			return Resolution{}, domainerrors.ErrMinSpendNotMet.WithDetails(fmt.Sprintf("promotion %d requires %s", id, promotion.MinSpending.String()))
		}

		res.Applied = append(res.Applied, promotion)
		if promotion.Type == entity.PromotionOneTime {
			res.Consumed = append(res.Consumed, promotion.ID)
		}
	}

	if pc.Spent == nil {
		return res, nil
	}

	for _, promotion := range pc.Automatic {
		if _, requested := seen[promotion.ID]; requested {
			continue
		}
		if promotion.Type != entity.PromotionAutomatic || !promotion.IsActive(pc.Now) {
			continue
		}
		if !promotion.MeetsMinSpending(*pc.Spent) {
			continue
		}
		res.Applied = append(res.Applied, promotion)
	}

	return res, nil
}
