package handler

import (
	"log/slog"
	"net/http"

	"loyalty/internal/delivery/http/response"
	"loyalty/internal/domain/authz"
	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// TransactionHandlerParams holds dependencies for TransactionHandler, injected by Fx.
type TransactionHandlerParams struct {
	fx.In

	TransactionUC usecase.TransactionUsecase
	Logger        *slog.Logger
}

// TransactionHandler serves the ledger endpoints.
type TransactionHandler struct {
	transactionUC usecase.TransactionUsecase
	logger        *slog.Logger
}

// NewTransactionHandler is the constructor for TransactionHandler.
func NewTransactionHandler(params TransactionHandlerParams) *TransactionHandler {
	return &TransactionHandler{
		transactionUC: params.TransactionUC,
		logger:        params.Logger,
	}
}

// CreateTransactionRequest is the body of POST /transactions. The fields that
// apply depend on type.
type CreateTransactionRequest struct {
	Type         string           `json:"type" validate:"required,oneof=purchase adjustment"`
	Utorid       string           `json:"utorid" validate:"required"`
	Spent        *decimal.Decimal `json:"spent"`
	Amount       *int64           `json:"amount"`
	RelatedID    *int64           `json:"relatedId"`
	PromotionIDs []int64          `json:"promotionIds"`
	Remark       string           `json:"remark"`
}

// SelfTransactionRequest is the body of the self-service transfer and redemption endpoints.
type SelfTransactionRequest struct {
	Type   string `json:"type" validate:"required"`
	Amount int64  `json:"amount" validate:"required,gt=0,max=1000000000"`
	Remark string `json:"remark"`
}

// SuspiciousRequest is the body of PATCH /transactions/:transactionId/suspicious.
type SuspiciousRequest struct {
	Suspicious *bool `json:"suspicious" validate:"required"`
}

// ProcessedRequest is the body of PATCH /transactions/:transactionId/processed.
type ProcessedRequest struct {
	Processed *bool `json:"processed" validate:"required"`
}

type listTransactionsQuery struct {
	Name      string `query:"name"`
	CreatedBy string `query:"createdBy"`
	Type      string `query:"type"`
	Operator  string `query:"operator"`
	Page      int    `query:"page"`
	Limit     int    `query:"limit"`
}

// PurchaseResponse is a purchase with the points it earned.
type PurchaseResponse struct {
	*entity.Transaction
	Earned int64 `json:"earned"`
}

// CreateTransaction records a purchase (cashier) or an adjustment (manager).
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	var req CreateTransactionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()

	switch entity.TransactionType(req.Type) {
	case entity.TransactionPurchase:
		if req.Amount != nil || req.RelatedID != nil {
			return domainerrors.ErrUnexpectedFields.WithDetails("purchases take spent, not amount or relatedId")
		}
		if req.Spent == nil {
			return domainerrors.ErrValidationFailed.WithDetails("spent is required")
		}

		result, err := h.transactionUC.CreatePurchase(ctx, actor, usecase.PurchaseInput{
			Utorid:       req.Utorid,
			Spent:        *req.Spent,
			PromotionIDs: req.PromotionIDs,
			Remark:       req.Remark,
		})
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusCreated, PurchaseResponse{Transaction: result.Transaction, Earned: result.Earned}, "Purchase recorded")

	default:
		if !authz.Allowed(actor.Role, authz.OpCreateAdjustment) {
			return domainerrors.ErrForbidden.WithDetails("adjustments require a manager")
		}
		if req.Spent != nil {
			return domainerrors.ErrUnexpectedFields.WithDetails("adjustments take amount, not spent")
		}
		if req.Amount == nil || req.RelatedID == nil {
			return domainerrors.ErrValidationFailed.WithDetails("amount and relatedId are required")
		}

		tx, err := h.transactionUC.CreateAdjustment(ctx, actor, usecase.AdjustmentInput{
			Utorid:       req.Utorid,
			Amount:       *req.Amount,
			RelatedID:    *req.RelatedID,
			PromotionIDs: req.PromotionIDs,
			Remark:       req.Remark,
		})
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusCreated, tx, "Adjustment recorded")
	}
}

// ListTransactions lists every transaction matching the filters.
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	input, err := h.listInput(c)
	if err != nil {
		return err
	}

	result, err := h.transactionUC.ListTransactions(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "")
}

// ListMyTransactions lists the caller's own transactions.
func (h *TransactionHandler) ListMyTransactions(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	input, err := h.listInput(c)
	if err != nil {
		return err
	}

	result, err := h.transactionUC.ListMyTransactions(c.Request().Context(), actor, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "")
}

func (h *TransactionHandler) listInput(c echo.Context) (usecase.ListTransactionsInput, error) {
	var query listTransactionsQuery
	if err := c.Bind(&query); err != nil {
		return usecase.ListTransactionsInput{}, errors.WithStack(err)
	}

	input := usecase.ListTransactionsInput{
		Name:      query.Name,
		CreatedBy: query.CreatedBy,
		Operator:  query.Operator,
		PageInput: usecase.PageInput{Page: query.Page, Limit: query.Limit},
	}
	if query.Type != "" {
		txType := entity.TransactionType(query.Type)
		input.Type = &txType
	}

	var err error
	if input.Suspicious, err = optionalBool(c, "suspicious"); err != nil {
		return input, err
	}
	if input.PromotionID, err = optionalInt64(c, "promotionId"); err != nil {
		return input, err
	}
	if input.RelatedID, err = optionalInt64(c, "relatedId"); err != nil {
		return input, err
	}
	if input.Amount, err = optionalInt64(c, "amount"); err != nil {
		return input, err
	}

	return input, nil
}

// GetTransaction returns a single transaction.
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	transactionID, err := pathID(c, "transactionId")
	if err != nil {
		return err
	}

	tx, err := h.transactionUC.GetTransaction(c.Request().Context(), transactionID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tx, "")
}

// SetSuspicious flags or clears a transaction.
func (h *TransactionHandler) SetSuspicious(c echo.Context) error {
	transactionID, err := pathID(c, "transactionId")
	if err != nil {
		return err
	}

	var req SuspiciousRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	tx, err := h.transactionUC.SetSuspicious(c.Request().Context(), transactionID, *req.Suspicious)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tx, "Transaction updated")
}

// ProcessRedemption fulfils a pending redemption.
func (h *TransactionHandler) ProcessRedemption(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	transactionID, err := pathID(c, "transactionId")
	if err != nil {
		return err
	}

	var req ProcessedRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if !*req.Processed {
		return domainerrors.ErrValidationFailed.WithDetails("processed can only be set to true")
	}

	tx, err := h.transactionUC.ProcessRedemption(c.Request().Context(), actor, transactionID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tx, "Redemption processed")
}

// CreateTransfer sends points from the caller to the user in the path.
func (h *TransactionHandler) CreateTransfer(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	recipientID, err := pathID(c, "userId")
	if err != nil {
		return err
	}

	var req SelfTransactionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if entity.TransactionType(req.Type) != entity.TransactionTransfer {
		return domainerrors.ErrValidationFailed.WithDetails("type must be transfer")
	}

	result, err := h.transactionUC.CreateTransfer(c.Request().Context(), actor, usecase.TransferInput{
		RecipientID: recipientID,
		Amount:      req.Amount,
		Remark:      req.Remark,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, result.Sent, "Transfer recorded")
}

// CreateRedemption asks for the caller's points to be redeemed.
func (h *TransactionHandler) CreateRedemption(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	var req SelfTransactionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if entity.TransactionType(req.Type) != entity.TransactionRedemption {
		return domainerrors.ErrValidationFailed.WithDetails("type must be redemption")
	}

	tx, err := h.transactionUC.RequestRedemption(c.Request().Context(), actor, usecase.RedemptionInput{
		Amount: req.Amount,
		Remark: req.Remark,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, tx, "Redemption requested")
}
