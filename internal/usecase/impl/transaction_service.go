package impl

import (
	"context"
	"log/slog"
	"time"

	"loyalty/config"
	deliverycontext "loyalty/internal/delivery/context"
	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/domain/ledger"
	"loyalty/internal/domain/repository"
	"loyalty/internal/domain/service"
	"loyalty/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// transactionService implements the TransactionUsecase interface.
type transactionService struct {
	txManager        repository.TransactionManager
	txRepo           repository.TransactionRepository
	clock            service.Clock
	limiter          service.RateLimiter
	metrics          service.LedgerMetrics
	effects          *ledgerEffects
	restoreOnProcess bool
	defaultLimit     int
	logger           *slog.Logger
}

// TransactionServiceParams holds dependencies for TransactionService, injected by Fx.
type TransactionServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	TxRepo    repository.TransactionRepository
	Clock     service.Clock
	Cache     service.BalanceCache
	Publisher service.EventPublisher
	Metrics   service.LedgerMetrics
	Limiter   service.RateLimiter
	Config    *config.Config
	Logger    *slog.Logger
}

// NewTransactionService is the constructor for transactionService.
func NewTransactionService(params TransactionServiceParams) usecase.TransactionUsecase {
	srv := &transactionService{
		txManager: params.TxManager,
		txRepo:    params.TxRepo,
		clock:     params.Clock,
		limiter:   params.Limiter,
		metrics:   params.Metrics,
		effects: &ledgerEffects{
			cache:     params.Cache,
			publisher: params.Publisher,
			metrics:   params.Metrics,
			clock:     params.Clock,
			logger:    params.Logger,
		},
		defaultLimit: fallbackPageLimit,
		logger:       params.Logger,
	}
	if params.Config != nil {
		srv.restoreOnProcess = params.Config.Ledger.Redemption.RestoreOnProcess
		srv.defaultLimit = params.Config.Ledger.DefaultPageLimit
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *transactionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreatePurchase records a purchase, credits base points plus promotion
// bonuses and consumes one-time promotions, all in one database transaction.
func (srv *transactionService) CreatePurchase(ctx context.Context, actor usecase.Actor, input usecase.PurchaseInput) (*usecase.PurchaseResult, error) {
	if !input.Spent.IsPositive() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("spent must be a positive number")
	}

	now := srv.clock.Now()
	spent := input.Spent

	var (
		result   *usecase.PurchaseResult
		buyerID  int64
		consumed int
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		promotionRepo := repoFactory.NewPromotionRepository()

		buyer, err := userRepo.LockByUtorid(ctx, input.Utorid)
		if err != nil {
			return translateRepoError(err)
		}

		resolution, err := srv.resolvePromotions(ctx, promotionRepo, buyer, &spent, input.PromotionIDs, now)
		if err != nil {
			return err
		}

		outcome, err := ledger.ComputePurchase(buyer, spent, resolution.Applied)
		if err != nil {
			return err
		}

		if err := userRepo.MarkPromotionsUsed(ctx, buyer.ID, resolution.Consumed); err != nil {
			return translateRepoError(err)
		}
		if outcome.Credited != 0 {
			if err := userRepo.AddPoints(ctx, buyer.ID, outcome.Credited); err != nil {
				return translateRepoError(err)
			}
		}

		tx := &entity.Transaction{
			Utorid:       buyer.Utorid,
			Type:         entity.TransactionPurchase,
			Amount:       outcome.Base,
			Spent:        &spent,
			PromotionIDs: resolution.AppliedIDs(),
			Suspicious:   outcome.Suspicious,
			Remark:       input.Remark,
			CreatedBy:    actor.Utorid,
		}
		if err := repoFactory.NewTransactionRepository().Create(ctx, tx); err != nil {
			return err
		}

		result = &usecase.PurchaseResult{Transaction: tx, Earned: outcome.Credited}
		buyerID = buyer.ID
		consumed = len(resolution.Consumed)

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Purchase rejected", slog.String("utorid", input.Utorid), slog.Any("error", err))

		return nil, finishTx(err, "failed to record purchase")
	}

	srv.effects.recorded(result.Transaction)
	if consumed > 0 && srv.metrics != nil {
		srv.metrics.PromotionsConsumed(consumed)
	}
	srv.effects.committed(ctx, service.LedgerEventTransactionCreated, result.Transaction, buyerID)

	srv.log(ctx).Info("Purchase recorded",
		slog.Int64("transactionID", result.Transaction.ID),
		slog.String("utorid", result.Transaction.Utorid),
		slog.Int64("earned", result.Earned))

	return result, nil
}

// resolvePromotions loads the requested and automatic promotions and applies the eligibility rules.
// A nil spent marks an adjustment.
func (srv *transactionService) resolvePromotions(
	ctx context.Context,
	promotionRepo repository.PromotionRepository,
	buyer *entity.User,
	spent *decimal.Decimal,
	requested []int64,
	now time.Time,
) (ledger.Resolution, error) {
	found, err := promotionRepo.FindByIDs(ctx, requested)
	if err != nil {
		return ledger.Resolution{}, errors.Wrap(err, "failed to load requested promotions")
	}

	var automatic []*entity.Promotion
	if spent != nil {
		automatic, err = promotionRepo.FindActive(ctx, now, entity.PromotionAutomatic)
		if err != nil {
			return ledger.Resolution{}, errors.Wrap(err, "failed to load automatic promotions")
		}
	}

	return ledger.ResolvePromotions(ledger.PromotionContext{
		Buyer:        buyer,
		Spent:        spent,
		RequestedIDs: requested,
		Found:        found,
		Automatic:    automatic,
		Now:          now,
	})
}

// CreateAdjustment applies a signed correction to a user's balance.
func (srv *transactionService) CreateAdjustment(ctx context.Context, actor usecase.Actor, input usecase.AdjustmentInput) (*entity.Transaction, error) {
	now := srv.clock.Now()

	var (
		adjustment *entity.Transaction
		ownerID    int64
		consumed   int
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		txRepo := repoFactory.NewTransactionRepository()

		owner, err := userRepo.LockByUtorid(ctx, input.Utorid)
		if err != nil {
			return translateRepoError(err)
		}

		related, err := txRepo.FindByID(ctx, input.RelatedID)
		if err != nil && !errors.Is(err, repository.ErrTransactionNotFound) {
			return errors.Wrap(err, "failed to load related transaction")
		}
		if err := ledger.ValidateAdjustment(owner, input.Amount, related); err != nil {
			return err
		}

		resolution, err := srv.resolvePromotions(ctx, repoFactory.NewPromotionRepository(), owner, nil, input.PromotionIDs, now)
		if err != nil {
			return err
		}
		if err := userRepo.MarkPromotionsUsed(ctx, owner.ID, resolution.Consumed); err != nil {
			return translateRepoError(err)
		}
		if err := userRepo.AddPoints(ctx, owner.ID, input.Amount); err != nil {
			return translateRepoError(err)
		}

		relatedID := related.ID
		adjustment = &entity.Transaction{
			Utorid:       owner.Utorid,
			Type:         entity.TransactionAdjustment,
			Amount:       input.Amount,
			RelatedID:    &relatedID,
			PromotionIDs: resolution.AppliedIDs(),
			Remark:       input.Remark,
			CreatedBy:    actor.Utorid,
		}
		if err := txRepo.Create(ctx, adjustment); err != nil {
			return err
		}

		ownerID = owner.ID
		consumed = len(resolution.Consumed)

		return nil
	})
	if err != nil {
		return nil, finishTx(err, "failed to record adjustment")
	}

	srv.effects.recorded(adjustment)
	if consumed > 0 && srv.metrics != nil {
		srv.metrics.PromotionsConsumed(consumed)
	}
	srv.effects.committed(ctx, service.LedgerEventTransactionCreated, adjustment, ownerID)

	return adjustment, nil
}

// CreateTransfer moves points from the actor to another user. Both users are
// locked in ascending id order so opposite transfers cannot deadlock.
func (srv *transactionService) CreateTransfer(ctx context.Context, actor usecase.Actor, input usecase.TransferInput) (*usecase.TransferResult, error) {
	if input.Amount <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("amount must be a positive integer")
	}
	if err := srv.throttle(actor, "transfer"); err != nil {
		return nil, err
	}

	var result *usecase.TransferResult
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		txRepo := repoFactory.NewTransactionRepository()

		sender, recipient, err := lockPair(ctx, userRepo, actor.ID, input.RecipientID)
		if err != nil {
			return err
		}
		if err := ledger.ValidateTransfer(sender, recipient, input.Amount); err != nil {
			return err
		}

		if err := userRepo.AddPoints(ctx, sender.ID, -input.Amount); err != nil {
			return translateRepoError(err)
		}
		if err := userRepo.AddPoints(ctx, recipient.ID, input.Amount); err != nil {
			return translateRepoError(err)
		}

		recipientID, senderID := recipient.ID, sender.ID
		sent := &entity.Transaction{
			Utorid:    sender.Utorid,
			Type:      entity.TransactionTransfer,
			Amount:    -input.Amount,
			RelatedID: &recipientID,
			Remark:    input.Remark,
			CreatedBy: sender.Utorid,
		}
		received := &entity.Transaction{
			Utorid:    recipient.Utorid,
			Type:      entity.TransactionTransfer,
			Amount:    input.Amount,
			RelatedID: &senderID,
			Remark:    input.Remark,
			CreatedBy: sender.Utorid,
		}
		if err := txRepo.Create(ctx, sent); err != nil {
			return err
		}
		if err := txRepo.Create(ctx, received); err != nil {
			return err
		}

		result = &usecase.TransferResult{Sent: sent, Received: received}

		return nil
	})
	if err != nil {
		return nil, finishTx(err, "failed to transfer points")
	}

	srv.effects.recorded(result.Sent, result.Received)
	srv.effects.committed(ctx, service.LedgerEventTransactionCreated, result.Sent, actor.ID, input.RecipientID)

	return result, nil
}

// lockPair locks the sender and the recipient, lowest id first.
func lockPair(ctx context.Context, userRepo repository.UserRepository, senderID, recipientID int64) (*entity.User, *entity.User, error) {
	if senderID == recipientID {
		sender, err := userRepo.LockByID(ctx, senderID)
		if err != nil {
			return nil, nil, translateRepoError(err)
		}

		return sender, sender, nil
	}

	firstID, secondID := senderID, recipientID
	if secondID < firstID {
		firstID, secondID = secondID, firstID
	}

	first, err := userRepo.LockByID(ctx, firstID)
	if err != nil {
		return nil, nil, translateRepoError(err)
	}
	second, err := userRepo.LockByID(ctx, secondID)
	if err != nil {
		return nil, nil, translateRepoError(err)
	}

	if first.ID == senderID {
		return first, second, nil
	}

	return second, first, nil
}

// RequestRedemption debits the actor and records a pending redemption.
func (srv *transactionService) RequestRedemption(ctx context.Context, actor usecase.Actor, input usecase.RedemptionInput) (*entity.Transaction, error) {
	if input.Amount <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("amount must be a positive integer")
	}
	if err := srv.throttle(actor, "redemption"); err != nil {
		return nil, err
	}

	var redemption *entity.Transaction
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.LockByID(ctx, actor.ID)
		if err != nil {
			return translateRepoError(err)
		}
		if err := ledger.ValidateRedemptionRequest(user, input.Amount); err != nil {
			return err
		}
		if err := userRepo.AddPoints(ctx, user.ID, -input.Amount); err != nil {
			return translateRepoError(err)
		}

		redeemed := input.Amount
		redemption = &entity.Transaction{
			Utorid:    user.Utorid,
			Type:      entity.TransactionRedemption,
			Amount:    -input.Amount,
			Redeemed:  &redeemed,
			Remark:    input.Remark,
			CreatedBy: user.Utorid,
		}

		return repoFactory.NewTransactionRepository().Create(ctx, redemption)
	})
	if err != nil {
		return nil, finishTx(err, "failed to request redemption")
	}

	srv.effects.recorded(redemption)
	srv.effects.committed(ctx, service.LedgerEventTransactionCreated, redemption, actor.ID)

	return redemption, nil
}

// ProcessRedemption marks a pending redemption as fulfilled. The balance was
// debited at request time; it is only credited back when restoreOnProcess is set.
func (srv *transactionService) ProcessRedemption(ctx context.Context, actor usecase.Actor, transactionID int64) (*entity.Transaction, error) {
	var (
		redemption *entity.Transaction
		ownerID    int64
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		txRepo := repoFactory.NewTransactionRepository()

		tx, err := txRepo.LockByID(ctx, transactionID)
		if err != nil {
			return translateRepoError(err)
		}

		credit, err := ledger.ProcessRedemption(tx, srv.restoreOnProcess)
		if err != nil {
			return err
		}

		owner, err := userRepo.FindByUtorid(ctx, tx.Utorid)
		if err != nil {
			return translateRepoError(err)
		}
		if err := txRepo.MarkProcessed(ctx, tx.ID, actor.Utorid); err != nil {
			return translateRepoError(err)
		}
		if credit != 0 {
			if err := userRepo.AddPoints(ctx, owner.ID, credit); err != nil {
				return translateRepoError(err)
			}
		}

		processedBy := actor.Utorid
		tx.ProcessedBy = &processedBy
		redemption = tx
		ownerID = owner.ID

		return nil
	})
	if err != nil {
		return nil, finishTx(err, "failed to process redemption")
	}

	srv.effects.committed(ctx, service.LedgerEventRedemptionProcessed, redemption, ownerID)

	return redemption, nil
}

// SetSuspicious flags or clears a transaction. Flagging withdraws the amount
// from the owner, clearing gives it back, and repeating the current value is a no-op.
func (srv *transactionService) SetSuspicious(ctx context.Context, transactionID int64, suspicious bool) (*entity.Transaction, error) {
	var (
		updated *entity.Transaction
		ownerID int64
		changed bool
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		txRepo := repoFactory.NewTransactionRepository()

		tx, err := txRepo.LockByID(ctx, transactionID)
		if err != nil {
			return translateRepoError(err)
		}

		var delta int64
		delta, changed = ledger.SuspiciousDelta(tx, suspicious)
		updated = tx
		if !changed {
			return nil
		}

		owner, err := userRepo.FindByUtorid(ctx, tx.Utorid)
		if err != nil {
			return translateRepoError(err)
		}
		if err := userRepo.AddPoints(ctx, owner.ID, delta); err != nil {
			return translateRepoError(err)
		}
		if err := txRepo.UpdateSuspicious(ctx, tx.ID, suspicious); err != nil {
			return translateRepoError(err)
		}

		tx.Suspicious = suspicious
		ownerID = owner.ID

		return nil
	})
	if err != nil {
		return nil, finishTx(err, "failed to update suspicious flag")
	}

	if changed {
		srv.effects.committed(ctx, service.LedgerEventSuspiciousChanged, updated, ownerID)
	}

	return updated, nil
}

// GetTransaction retrieves a single transaction.
func (srv *transactionService) GetTransaction(ctx context.Context, transactionID int64) (*entity.Transaction, error) {
	tx, err := srv.txRepo.FindByID(ctx, transactionID)
	if err != nil {
		return nil, translateRepoError(err)
	}

	return tx, nil
}

// ListTransactions returns one page of transactions matching the filter.
func (srv *transactionService) ListTransactions(ctx context.Context, input usecase.ListTransactionsInput) (*usecase.ListResult[*entity.Transaction], error) {
	filter, err := srv.buildFilter(input)
	if err != nil {
		return nil, err
	}

	return srv.list(ctx, filter)
}

// ListMyTransactions returns one page of the actor's own transactions.
func (srv *transactionService) ListMyTransactions(ctx context.Context, actor usecase.Actor, input usecase.ListTransactionsInput) (*usecase.ListResult[*entity.Transaction], error) {
	input.Name = ""
	filter, err := srv.buildFilter(input)
	if err != nil {
		return nil, err
	}
	filter.Utorid = actor.Utorid

	return srv.list(ctx, filter)
}

func (srv *transactionService) list(ctx context.Context, filter repository.TransactionFilter) (*usecase.ListResult[*entity.Transaction], error) {
	txs, count, err := srv.txRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list transactions")
	}

	return &usecase.ListResult[*entity.Transaction]{Count: count, Results: txs}, nil
}

func (srv *transactionService) buildFilter(input usecase.ListTransactionsInput) (repository.TransactionFilter, error) {
	page, err := toPagination(input.PageInput, srv.defaultLimit)
	if err != nil {
		return repository.TransactionFilter{}, err
	}
	if input.Type != nil && !input.Type.IsValid() {
		return repository.TransactionFilter{}, domainerrors.ErrValidationFailed.WithDetails("unknown transaction type")
	}
	if input.RelatedID != nil && input.Type == nil {
		return repository.TransactionFilter{}, domainerrors.ErrValidationFailed.WithDetails("relatedId must be used with type")
	}
	if (input.Amount == nil) != (input.Operator == "") {
		return repository.TransactionFilter{}, domainerrors.ErrValidationFailed.WithDetails("amount and operator must be used together")
	}
	if input.Operator != "" && input.Operator != repository.OperatorGTE && input.Operator != repository.OperatorLTE {
		return repository.TransactionFilter{}, domainerrors.ErrValidationFailed.WithDetails("operator must be gte or lte")
	}

	return repository.TransactionFilter{
		Name:        input.Name,
		CreatedBy:   input.CreatedBy,
		Suspicious:  input.Suspicious,
		PromotionID: input.PromotionID,
		Type:        input.Type,
		RelatedID:   input.RelatedID,
		Amount:      input.Amount,
		Operator:    input.Operator,
		Pagination:  page,
	}, nil
}

// throttle consults the per-user rate limiter for self-service mutations.
func (srv *transactionService) throttle(actor usecase.Actor, operation string) error {
	if srv.limiter == nil || srv.limiter.Allow(actor.Utorid) {
		return nil
	}
	if srv.metrics != nil {
		srv.metrics.RateLimited(operation)
	}

	return domainerrors.ErrTooManyRequests
}
