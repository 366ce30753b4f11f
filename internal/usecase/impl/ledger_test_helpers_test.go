package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"loyalty/config"
	"loyalty/internal/domain/repository"
	"loyalty/internal/domain/service"
	mockRepo "loyalty/internal/mocks/repository"
	mockSvc "loyalty/internal/mocks/service"

	"github.com/stretchr/testify/mock"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(restoreOnProcess bool) *config.Config {
	cfg := &config.Config{}
	cfg.Ledger.EmailDomain = "mail.utoronto.ca"
	cfg.Ledger.DefaultPageLimit = 10
	cfg.Ledger.Redemption.RestoreOnProcess = restoreOnProcess

	return cfg
}

// ledgerMocks wires one transaction manager whose Execute runs the callback
// against a factory handing out the mocked repositories.
type ledgerMocks struct {
	txManager     *mockRepo.MockTransactionManager
	factory       *mockRepo.MockRepositoryFactory
	userRepo      *mockRepo.MockUserRepository
	txRepo        *mockRepo.MockTransactionRepository
	eventRepo     *mockRepo.MockEventRepository
	promotionRepo *mockRepo.MockPromotionRepository
	clock         *mockSvc.MockClock
	cache         *mockSvc.MockBalanceCache
	publisher     *mockSvc.MockEventPublisher
	metrics       *mockSvc.MockLedgerMetrics
	limiter       *mockSvc.MockRateLimiter
}

func newLedgerMocks(t *testing.T) *ledgerMocks {
	m := &ledgerMocks{
		txManager:     mockRepo.NewMockTransactionManager(t),
		factory:       mockRepo.NewMockRepositoryFactory(t),
		userRepo:      mockRepo.NewMockUserRepository(t),
		txRepo:        mockRepo.NewMockTransactionRepository(t),
		eventRepo:     mockRepo.NewMockEventRepository(t),
		promotionRepo: mockRepo.NewMockPromotionRepository(t),
		clock:         mockSvc.NewMockClock(t),
		cache:         mockSvc.NewMockBalanceCache(t),
		publisher:     mockSvc.NewMockEventPublisher(t),
		metrics:       mockSvc.NewMockLedgerMetrics(t),
		limiter:       mockSvc.NewMockRateLimiter(t),
	}

	m.clock.EXPECT().Now().Return(testNow).Maybe()
	m.factory.EXPECT().NewUserRepository().Return(m.userRepo).Maybe()
	m.factory.EXPECT().NewTransactionRepository().Return(m.txRepo).Maybe()
	m.factory.EXPECT().NewEventRepository().Return(m.eventRepo).Maybe()
	m.factory.EXPECT().NewPromotionRepository().Return(m.promotionRepo).Maybe()

	return m
}

// runsInTx makes the next Execute call run its callback against the mocked factory.
func (m *ledgerMocks) runsInTx() {
	m.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(m.factory)
		}).
		Once()
}

// expectCommitted expects the post-commit cache invalidation and ledger event for userIDs.
func (m *ledgerMocks) expectCommitted(kind string, userIDs ...int64) {
	args := make([]interface{}, 0, len(userIDs))
	for _, id := range userIDs {
		args = append(args, id)
	}
	m.cache.EXPECT().Invalidate(mock.Anything, args...).Return(nil).Once()
	m.publisher.EXPECT().
		PublishLedgerEvent(mock.Anything, mock.MatchedBy(func(e *service.LedgerEvent) bool { return e.Kind == kind })).
		Return(nil).
		Once()
}

func (m *ledgerMocks) transactionService(cfg *config.Config) *transactionService {
	return NewTransactionService(TransactionServiceParams{
		TxManager: m.txManager,
		TxRepo:    m.txRepo,
		Clock:     m.clock,
		Cache:     m.cache,
		Publisher: m.publisher,
		Metrics:   m.metrics,
		Limiter:   m.limiter,
		Config:    cfg,
		Logger:    newDiscardLogger(),
	}).(*transactionService)
}

func (m *ledgerMocks) userService(cfg *config.Config) *userService {
	return NewUserService(UserServiceParams{
		TxManager:     m.txManager,
		UserRepo:      m.userRepo,
		PromotionRepo: m.promotionRepo,
		Cache:         m.cache,
		Clock:         m.clock,
		Config:        cfg,
		Logger:        newDiscardLogger(),
	}).(*userService)
}

func (m *ledgerMocks) eventService(cfg *config.Config) *eventService {
	return NewEventService(EventServiceParams{
		TxManager: m.txManager,
		EventRepo: m.eventRepo,
		Clock:     m.clock,
		Cache:     m.cache,
		Publisher: m.publisher,
		Metrics:   m.metrics,
		Config:    cfg,
		Logger:    newDiscardLogger(),
	}).(*eventService)
}

func (m *ledgerMocks) promotionService(cfg *config.Config) *promotionService {
	return NewPromotionService(PromotionServiceParams{
		TxManager:     m.txManager,
		PromotionRepo: m.promotionRepo,
		Clock:         m.clock,
		Config:        cfg,
		Logger:        newDiscardLogger(),
	}).(*promotionService)
}

// allowMetrics accepts any ledger counter updates.
func (m *ledgerMocks) allowMetrics() {
	m.metrics.EXPECT().TransactionRecorded(mock.Anything, mock.Anything).Return().Maybe()
	m.metrics.EXPECT().PromotionsConsumed(mock.Anything).Return().Maybe()
	m.metrics.EXPECT().RateLimited(mock.Anything).Return().Maybe()
}
