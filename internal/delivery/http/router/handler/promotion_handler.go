package handler

import (
	"log/slog"
	"net/http"
	"time"

	"loyalty/internal/delivery/http/response"
	"loyalty/internal/domain/entity"
	"loyalty/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// PromotionHandlerParams holds dependencies for PromotionHandler, injected by Fx.
type PromotionHandlerParams struct {
	fx.In

	PromotionUC usecase.PromotionUsecase
	Logger      *slog.Logger
}

// PromotionHandler serves promotion administration and browsing.
type PromotionHandler struct {
	promotionUC usecase.PromotionUsecase
	logger      *slog.Logger
}

// NewPromotionHandler is the constructor for PromotionHandler.
func NewPromotionHandler(params PromotionHandlerParams) *PromotionHandler {
	return &PromotionHandler{
		promotionUC: params.PromotionUC,
		logger:      params.Logger,
	}
}

// CreatePromotionRequest is the body of POST /promotions.
type CreatePromotionRequest struct {
	Name        string           `json:"name" validate:"required"`
	Description string           `json:"description" validate:"required"`
	Type        string           `json:"type" validate:"required,oneof=automatic one-time"`
	StartTime   time.Time        `json:"startTime" validate:"required"`
	EndTime     time.Time        `json:"endTime" validate:"required"`
	MinSpending *decimal.Decimal `json:"minSpending"`
	Rate        *decimal.Decimal `json:"rate"`
	Points      int64            `json:"points" validate:"gte=0"`
}

// UpdatePromotionRequest is the body of PATCH /promotions/:promotionId.
type UpdatePromotionRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Type        *string          `json:"type" validate:"omitnil,oneof=automatic one-time"`
	StartTime   *time.Time       `json:"startTime"`
	EndTime     *time.Time       `json:"endTime"`
	MinSpending *decimal.Decimal `json:"minSpending"`
	Rate        *decimal.Decimal `json:"rate"`
	Points      *int64           `json:"points" validate:"omitnil,gte=0"`
}

type listPromotionsQuery struct {
	Name  string `query:"name"`
	Type  string `query:"type"`
	Page  int    `query:"page"`
	Limit int    `query:"limit"`
}

// CreatePromotion creates a promotion.
func (h *PromotionHandler) CreatePromotion(c echo.Context) error {
	var req CreatePromotionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	promotion, err := h.promotionUC.CreatePromotion(c.Request().Context(), usecase.CreatePromotionInput{
		Name:        req.Name,
		Description: req.Description,
		Type:        entity.PromotionType(req.Type),
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		MinSpending: req.MinSpending,
		Rate:        req.Rate,
		Points:      req.Points,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, promotion, "Promotion created")
}

// ListPromotions lists promotions; regular users only see active ones.
func (h *PromotionHandler) ListPromotions(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	var query listPromotionsQuery
	if err := c.Bind(&query); err != nil {
		return errors.WithStack(err)
	}

	input := usecase.ListPromotionsInput{
		Name:      query.Name,
		PageInput: usecase.PageInput{Page: query.Page, Limit: query.Limit},
	}
	if query.Type != "" {
		promotionType := entity.PromotionType(query.Type)
		input.Type = &promotionType
	}
	if input.Started, err = optionalBool(c, "started"); err != nil {
		return err
	}
	if input.Ended, err = optionalBool(c, "ended"); err != nil {
		return err
	}

	result, err := h.promotionUC.ListPromotions(c.Request().Context(), actor, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "")
}

// GetPromotion returns one promotion.
func (h *PromotionHandler) GetPromotion(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	promotionID, err := pathID(c, "promotionId")
	if err != nil {
		return err
	}

	promotion, err := h.promotionUC.GetPromotion(c.Request().Context(), actor, promotionID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, promotion, "")
}

// UpdatePromotion edits a promotion within its time rules.
func (h *PromotionHandler) UpdatePromotion(c echo.Context) error {
	promotionID, err := pathID(c, "promotionId")
	if err != nil {
		return err
	}

	var req UpdatePromotionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input := usecase.UpdatePromotionInput{
		Name:        req.Name,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		MinSpending: req.MinSpending,
		Rate:        req.Rate,
		Points:      req.Points,
	}
	if req.Type != nil {
		promotionType := entity.PromotionType(*req.Type)
		input.Type = &promotionType
	}

	promotion, err := h.promotionUC.UpdatePromotion(c.Request().Context(), promotionID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, promotion, "Promotion updated")
}

// DeletePromotion removes a promotion that has not started.
func (h *PromotionHandler) DeletePromotion(c echo.Context) error {
	promotionID, err := pathID(c, "promotionId")
	if err != nil {
		return err
	}

	if err := h.promotionUC.DeletePromotion(c.Request().Context(), promotionID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
