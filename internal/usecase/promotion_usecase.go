package usecase

import (
	"context"
	"time"

	"loyalty/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// CreatePromotionInput describes a new promotion.
type CreatePromotionInput struct {
	Name        string
	Description string
	Type        entity.PromotionType
	StartTime   time.Time
	EndTime     time.Time
	MinSpending *decimal.Decimal
	Rate        *decimal.Decimal
	Points      int64
}

// UpdatePromotionInput holds the optional fields of a promotion update.
type UpdatePromotionInput struct {
	Name        *string
	Description *string
	Type        *entity.PromotionType
	StartTime   *time.Time
	EndTime     *time.Time
	MinSpending *decimal.Decimal
	Rate        *decimal.Decimal
	Points      *int64
}

// ListPromotionsInput filters a promotion listing. Started and Ended are only
// honoured for managers; everyone else sees active promotions.
type ListPromotionsInput struct {
	Name    string
	Type    *entity.PromotionType
	Started *bool
	Ended   *bool
	PageInput
}

// PromotionUsecase defines promotion administration.
type PromotionUsecase interface {
	CreatePromotion(ctx context.Context, input CreatePromotionInput) (*entity.Promotion, error)
	ListPromotions(ctx context.Context, actor Actor, input ListPromotionsInput) (*ListResult[*entity.Promotion], error)
	GetPromotion(ctx context.Context, actor Actor, promotionID int64) (*entity.Promotion, error)
	UpdatePromotion(ctx context.Context, promotionID int64, input UpdatePromotionInput) (*entity.Promotion, error)
	DeletePromotion(ctx context.Context, promotionID int64) error
}
