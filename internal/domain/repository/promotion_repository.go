package repository

import (
	"context"
	"time"

	"loyalty/internal/domain/entity"
)

// PromotionFilter narrows a promotion listing.
type PromotionFilter struct {
	Name       string
	Type       *entity.PromotionType
	Started    *bool
	Ended      *bool
	ActiveOnly bool
	Now        time.Time
	Pagination
}

// PromotionRepository persists promotions.
type PromotionRepository interface {
	// Create inserts the promotion, filling ID and CreatedAt.
	Create(ctx context.Context, promotion *entity.Promotion) error

	// FindByID retrieves a single promotion.
	FindByID(ctx context.Context, id int64) (*entity.Promotion, error)

	// FindByIDs returns the promotions that exist among ids. Missing ids are simply absent.
	FindByIDs(ctx context.Context, ids []int64) ([]*entity.Promotion, error)

	// FindActive returns promotions of the given type whose window contains now.
	FindActive(ctx context.Context, now time.Time, promotionType entity.PromotionType) ([]*entity.Promotion, error)

	// List returns one page of promotions and the total number of matches.
	List(ctx context.Context, filter PromotionFilter) ([]*entity.Promotion, int64, error)

	// Update writes every column of the promotion.
	Update(ctx context.Context, promotion *entity.Promotion) error

	// Delete removes a promotion.
	Delete(ctx context.Context, id int64) error
}
