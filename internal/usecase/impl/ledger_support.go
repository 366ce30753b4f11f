// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"slices"
	"time"

	deliverycontext "loyalty/internal/delivery/context"
	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/domain/repository"
	"loyalty/internal/domain/service"
	"loyalty/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const fallbackPageLimit = 10

// translateRepoError turns repository sentinels into user-facing errors.
// Anything else is returned unchanged.
func translateRepoError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrUserNotFound):
		return domainerrors.ErrUserNotFound
	case errors.Is(err, repository.ErrTransactionNotFound):
		return domainerrors.ErrTransactionNotFound
	case errors.Is(err, repository.ErrEventNotFound):
		return domainerrors.ErrEventNotFound
	case errors.Is(err, repository.ErrPromotionNotFound):
		return domainerrors.ErrPromotionNotFound
	case errors.Is(err, repository.ErrDuplicateUser):
		return domainerrors.ErrUserAlreadyExists
	case errors.Is(err, repository.ErrPromotionAlreadyUsed):
		return domainerrors.ErrPromotionAlreadyUsed
	case errors.Is(err, repository.ErrDuplicateGuest):
		return domainerrors.ErrAlreadyGuest
	case errors.Is(err, repository.ErrDuplicateOrganizer):
		return domainerrors.ErrAlreadyOrganizer
	default:
		return err
	}
}

// finishTx unwraps the error returned by TransactionManager.Execute: domain
// errors pass through untouched, infrastructure failures get context.
func finishTx(err error, message string) error {
	if err == nil {
		return nil
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if _, isDB := appErr.(*domainerrors.DatabaseExecuteError); !isDB {
			return err
		}
	}

	return errors.Wrap(err, message)
}

// toPagination applies the configured default limit and rejects negative values.
func toPagination(page usecase.PageInput, defaultLimit int) (repository.Pagination, error) {
	if page.Page < 0 || page.Limit < 0 {
		return repository.Pagination{}, domainerrors.ErrValidationFailed.WithDetails("page and limit must be positive integers")
	}

	p := repository.Pagination{Page: page.Page, Limit: page.Limit}
	if p.Page == 0 {
		p.Page = 1
	}
	if p.Limit == 0 {
		p.Limit = defaultLimit
	}
	if p.Limit <= 0 {
		p.Limit = fallbackPageLimit
	}

	return p, nil
}

// ledgerEffects runs the side effects of a committed ledger change. Failures
// are logged and never surface to the caller; the database already holds the truth.
type ledgerEffects struct {
	cache     service.BalanceCache
	publisher service.EventPublisher
	metrics   service.LedgerMetrics
	clock     service.Clock
	logger    *slog.Logger
}

func (eff *ledgerEffects) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, eff.logger)
}

// recorded reports committed transaction rows to metrics.
func (eff *ledgerEffects) recorded(txs ...*entity.Transaction) {
	if eff.metrics == nil {
		return
	}
	for _, tx := range txs {
		eff.metrics.TransactionRecorded(string(tx.Type), tx.Amount)
	}
}

// committed invalidates the cached balances of userIDs and publishes one ledger event.
func (eff *ledgerEffects) committed(ctx context.Context, kind string, tx *entity.Transaction, userIDs ...int64) {
	userIDs = uniqueIDs(userIDs)

	if eff.cache != nil && len(userIDs) > 0 {
		if err := eff.cache.Invalidate(ctx, userIDs...); err != nil {
			eff.log(ctx).Warn("Failed to invalidate cached balances",
				slog.Any("userIDs", userIDs),
				slog.Any("error", err))
		}
	}

	if eff.publisher == nil {
		return
	}

	event := &service.LedgerEvent{
		ID:         uuid.New().String(),
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Kind:       kind,
		UserIDs:    userIDs,
		OccurredAt: eff.clock.Now(),
	}
	if tx != nil {
		event.TransactionID = tx.ID
		event.Utorid = tx.Utorid
		event.Type = string(tx.Type)
		event.Amount = tx.Amount
	}

	if err := eff.publisher.PublishLedgerEvent(ctx, event); err != nil {
		eff.log(ctx).Warn("Failed to publish ledger event",
			slog.String("kind", kind),
			slog.String("eventID", event.ID),
			slog.Any("error", err))
	}
}

// uniqueIDs sorts ids and drops duplicates.
func uniqueIDs(ids []int64) []int64 {
	out := slices.Clone(ids)
	slices.Sort(out)

	return slices.Compact(out)
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	utc := t.UTC()

	return &utc
}
