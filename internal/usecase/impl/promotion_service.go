package impl

import (
	"context"
	"log/slog"

	"loyalty/config"
	deliverycontext "loyalty/internal/delivery/context"
	"loyalty/internal/domain/authz"
	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/domain/ledger"
	"loyalty/internal/domain/repository"
	"loyalty/internal/domain/service"
	"loyalty/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// promotionService implements the PromotionUsecase interface.
type promotionService struct {
	txManager     repository.TransactionManager
	promotionRepo repository.PromotionRepository
	clock         service.Clock
	defaultLimit  int
	logger        *slog.Logger
}

// PromotionServiceParams holds dependencies for PromotionService, injected by Fx.
type PromotionServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	PromotionRepo repository.PromotionRepository
	Clock         service.Clock
	Config        *config.Config
	Logger        *slog.Logger
}

// NewPromotionService is the constructor for promotionService.
func NewPromotionService(params PromotionServiceParams) usecase.PromotionUsecase {
	srv := &promotionService{
		txManager:     params.TxManager,
		promotionRepo: params.PromotionRepo,
		clock:         params.Clock,
		defaultLimit:  fallbackPageLimit,
		logger:        params.Logger,
	}
	if params.Config != nil {
		srv.defaultLimit = params.Config.Ledger.DefaultPageLimit
	}

	return srv
}

func (srv *promotionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreatePromotion validates and stores a promotion that starts in the future.
func (srv *promotionService) CreatePromotion(ctx context.Context, input usecase.CreatePromotionInput) (*entity.Promotion, error) {
	promotion := &entity.Promotion{
		Name:        input.Name,
		Description: input.Description,
		Type:        input.Type,
		StartTime:   input.StartTime.UTC(),
		EndTime:     input.EndTime.UTC(),
		MinSpending: input.MinSpending,
		Rate:        input.Rate,
		Points:      input.Points,
	}
	if err := ledger.ValidateNewPromotion(promotion, srv.clock.Now()); err != nil {
		return nil, err
	}

	if err := srv.promotionRepo.Create(ctx, promotion); err != nil {
		return nil, errors.Wrap(err, "failed to create promotion")
	}

	srv.log(ctx).Info("Promotion created", slog.Int64("promotionID", promotion.ID), slog.String("type", string(promotion.Type)))

	return promotion, nil
}

// ListPromotions returns one page of promotions. Non-managers only see active ones.
func (srv *promotionService) ListPromotions(ctx context.Context, actor usecase.Actor, input usecase.ListPromotionsInput) (*usecase.ListResult[*entity.Promotion], error) {
	page, err := toPagination(input.PageInput, srv.defaultLimit)
	if err != nil {
		return nil, err
	}
	if input.Type != nil && !input.Type.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("type must be one-time or automatic")
	}

	filter := repository.PromotionFilter{
		Name:       input.Name,
		Type:       input.Type,
		Now:        srv.clock.Now(),
		Pagination: page,
	}
	if authz.Allowed(actor.Role, authz.OpFilterPromotionAll) {
		if input.Started != nil && input.Ended != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("started and ended cannot be used together")
		}
		filter.Started = input.Started
		filter.Ended = input.Ended
	} else {
		filter.ActiveOnly = true
	}

	promotions, count, err := srv.promotionRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list promotions")
	}

	return &usecase.ListResult[*entity.Promotion]{Count: count, Results: promotions}, nil
}

// GetPromotion returns a promotion. Non-managers cannot see inactive promotions.
func (srv *promotionService) GetPromotion(ctx context.Context, actor usecase.Actor, promotionID int64) (*entity.Promotion, error) {
	promotion, err := srv.promotionRepo.FindByID(ctx, promotionID)
	if err != nil {
		return nil, translateRepoError(err)
	}
	if !authz.Allowed(actor.Role, authz.OpFilterPromotionAll) && !promotion.IsActive(srv.clock.Now()) {
		return nil, domainerrors.ErrPromotionNotFound
	}

	return promotion, nil
}

// UpdatePromotion applies a partial update under the promotion window rules.
func (srv *promotionService) UpdatePromotion(ctx context.Context, promotionID int64, input usecase.UpdatePromotionInput) (*entity.Promotion, error) {
	now := srv.clock.Now()
	patch := ledger.PromotionPatch{
		Name:        input.Name,
		Description: input.Description,
		Type:        input.Type,
		StartTime:   utcPtr(input.StartTime),
		EndTime:     utcPtr(input.EndTime),
		MinSpending: input.MinSpending,
		Rate:        input.Rate,
		Points:      input.Points,
	}

	var updated *entity.Promotion
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		promotionRepo := repoFactory.NewPromotionRepository()

		promotion, err := promotionRepo.FindByID(ctx, promotionID)
		if err != nil {
			return translateRepoError(err)
		}
		if err := ledger.ApplyPromotionPatch(promotion, patch, now); err != nil {
			return err
		}
		if err := promotionRepo.Update(ctx, promotion); err != nil {
			return translateRepoError(err)
		}

		updated = promotion

		return nil
	})
	if err != nil {
		return nil, finishTx(err, "failed to update promotion")
	}

	return updated, nil
}

// DeletePromotion removes a promotion that has not started yet.
func (srv *promotionService) DeletePromotion(ctx context.Context, promotionID int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		promotionRepo := repoFactory.NewPromotionRepository()

		promotion, err := promotionRepo.FindByID(ctx, promotionID)
		if err != nil {
			return translateRepoError(err)
		}
		if err := ledger.CanDeletePromotion(promotion, srv.clock.Now()); err != nil {
			return err
		}

		return translateRepoError(promotionRepo.Delete(ctx, promotionID))
	})

	return finishTx(err, "failed to delete promotion")
}
