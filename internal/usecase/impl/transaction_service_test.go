package impl

import (
	"context"
	"testing"
	"time"

	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/domain/repository"
	"loyalty/internal/domain/service"
	"loyalty/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var cashier = usecase.Actor{ID: 90, Utorid: "cashier1", Role: entity.RoleCashier}

func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func activePromotion(id int64, kind entity.PromotionType) *entity.Promotion {
	return &entity.Promotion{
		ID:        id,
		Name:      "promo",
		Type:      kind,
		StartTime: testNow.Add(-24 * time.Hour),
		EndTime:   testNow.Add(24 * time.Hour),
	}
}

// createdWithID makes txRepo.Create assign sequential ids starting at first.
func createdWithID(first int64) func(context.Context, *entity.Transaction) error {
	next := first
	return func(_ context.Context, tx *entity.Transaction) error {
		tx.ID = next
		next++
		return nil
	}
}

func TestTransactionService_CreatePurchase(t *testing.T) {
	t.Run("credits base points and every applied promotion", func(t *testing.T) {
		m := newLedgerMocks(t)
		srv := m.transactionService(newTestConfig(false))
		m.runsInTx()

		buyer := &entity.User{ID: 1, Utorid: "buyer001", Verified: true}
		oneTime := activePromotion(2, entity.PromotionOneTime)
		oneTime.Points = 100
		automatic := activePromotion(3, entity.PromotionAutomatic)
		automatic.Rate = decimalPtr("0.01")
		automatic.Points = 60

		m.userRepo.EXPECT().LockByUtorid(mock.Anything, "buyer001").Return(buyer, nil).Once()
		m.promotionRepo.EXPECT().FindByIDs(mock.Anything, []int64{2}).Return([]*entity.Promotion{oneTime}, nil).Once()
		m.promotionRepo.EXPECT().FindActive(mock.Anything, testNow, entity.PromotionAutomatic).Return([]*entity.Promotion{automatic}, nil).Once()
		m.userRepo.EXPECT().MarkPromotionsUsed(mock.Anything, int64(1), []int64{2}).Return(nil).Once()
		m.userRepo.EXPECT().AddPoints(mock.Anything, int64(1), int64(360)).Return(nil).Once()
		m.txRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Transaction")).RunAndReturn(createdWithID(11)).Once()
		m.metrics.EXPECT().TransactionRecorded("purchase", int64(160)).Return().Once()
		m.metrics.EXPECT().PromotionsConsumed(1).Return().Once()
		m.expectCommitted(service.LedgerEventTransactionCreated, 1)

		result, err := srv.CreatePurchase(context.Background(), cashier, usecase.PurchaseInput{
			Utorid:       "buyer001",
			Spent:        decimal.RequireFromString("40.00"),
			PromotionIDs: []int64{2},
			Remark:       "coffee",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(360), result.Earned)
		assert.Equal(t, int64(11), result.Transaction.ID)
		assert.Equal(t, int64(160), result.Transaction.Amount)
		assert.Equal(t, []int64{2, 3}, result.Transaction.PromotionIDs)
		assert.Equal(t, "cashier1", result.Transaction.CreatedBy)
		assert.Equal(t, entity.TransactionPurchase, result.Transaction.Type)
		assert.False(t, result.Transaction.Suspicious)
	})

	t.Run("suspicious buyer earns nothing but the purchase is recorded", func(t *testing.T) {
		m := newLedgerMocks(t)
		srv := m.transactionService(newTestConfig(false))
		m.runsInTx()

		buyer := &entity.User{ID: 1, Utorid: "buyer001", Suspicious: true}
		m.userRepo.EXPECT().LockByUtorid(mock.Anything, "buyer001").Return(buyer, nil).Once()
		m.promotionRepo.EXPECT().FindByIDs(mock.Anything, mock.Anything).Return(nil, nil).Once()
		m.promotionRepo.EXPECT().FindActive(mock.Anything, testNow, entity.PromotionAutomatic).Return(nil, nil).Once()
		m.userRepo.EXPECT().MarkPromotionsUsed(mock.Anything, int64(1), mock.Anything).Return(nil).Once()
		m.txRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Transaction")).RunAndReturn(createdWithID(12)).Once()
		m.metrics.EXPECT().TransactionRecorded("purchase", int64(40)).Return().Once()
		m.expectCommitted(service.LedgerEventTransactionCreated, 1)

		result, err := srv.CreatePurchase(context.Background(), cashier, usecase.PurchaseInput{
			Utorid: "buyer001",
			Spent:  decimal.RequireFromString("10"),
		})

		require.NoError(t, err)
		assert.Equal(t, int64(0), result.Earned)
		assert.Equal(t, int64(40), result.Transaction.Amount)
		assert.True(t, result.Transaction.Suspicious)
		m.userRepo.AssertNotCalled(t, "AddPoints", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("minimum spend not met rejects the purchase", func(t *testing.T) {
		m := newLedgerMocks(t)
		srv := m.transactionService(newTestConfig(false))
		m.runsInTx()

		promotion := activePromotion(5, entity.PromotionOneTime)
		promotion.MinSpending = decimalPtr("50")
		promotion.Points = 500

		m.userRepo.EXPECT().LockByUtorid(mock.Anything, "buyer001").Return(&entity.User{ID: 1, Utorid: "buyer001"}, nil).Once()
		m.promotionRepo.EXPECT().FindByIDs(mock.Anything, []int64{5}).Return([]*entity.Promotion{promotion}, nil).Once()
		m.promotionRepo.EXPECT().FindActive(mock.Anything, testNow, entity.PromotionAutomatic).Return(nil, nil).Once()

		result, err := srv.CreatePurchase(context.Background(), cashier, usecase.PurchaseInput{
			Utorid:       "buyer001",
			Spent:        decimal.RequireFromString("49.99"),
			PromotionIDs: []int64{5},
		})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, domainerrors.ErrMinSpendNotMet)
		m.userRepo.AssertNotCalled(t, "AddPoints", mock.Anything, mock.Anything, mock.Anything)
		m.txRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("one-time promotion cannot be used twice", func(t *testing.T) {
		m := newLedgerMocks(t)
		srv := m.transactionService(newTestConfig(false))
		m.runsInTx()

		buyer := &entity.User{ID: 1, Utorid: "buyer001", Used: []int64{2}}
		m.userRepo.EXPECT().LockByUtorid(mock.Anything, "buyer001").Return(buyer, nil).Once()
		m.promotionRepo.EXPECT().FindByIDs(mock.Anything, []int64{2}).Return([]*entity.Promotion{activePromotion(2, entity.PromotionOneTime)}, nil).Once()
		m.promotionRepo.EXPECT().FindActive(mock.Anything, testNow, entity.PromotionAutomatic).Return(nil, nil).Once()

		_, err := srv.CreatePurchase(context.Background(), cashier, usecase.PurchaseInput{
			Utorid:       "buyer001",
			Spent:        decimal.RequireFromString("20"),
			PromotionIDs: []int64{2},
		})

		assert.ErrorIs(t, err, domainerrors.ErrPromotionAlreadyUsed)
	})

	t.Run("unknown buyer", func(t *testing.T) {
		m := newLedgerMocks(t)
		srv := m.transactionService(newTestConfig(false))
		m.runsInTx()

		m.userRepo.EXPECT().LockByUtorid(mock.Anything, "nobody00").Return(nil, repository.ErrUserNotFound).Once()

		_, err := srv.CreatePurchase(context.Background(), cashier, usecase.PurchaseInput{
			Utorid: "nobody00",
			Spent:  decimal.RequireFromString("20"),
		})

		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})

	t.Run("non-positive spend is rejected before the database", func(t *testing.T) {
		m := newLedgerMocks(t)
		srv := m.transactionService(newTestConfig(false))

		_, err := srv.CreatePurchase(context.Background(), cashier, usecase.PurchaseInput{
			Utorid: "buyer001",
			Spent:  decimal.Zero,
		})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestTransactionService_CreateAdjustment(t *testing.T) {
	t.Run("applies the signed amount to the owner", func(t *testing.T) {
		m := newLedgerMocks(t)
		srv := m.transactionService(newTestConfig(false))
		m.runsInTx()
		m.allowMetrics()

		owner := &entity.User{ID: 1, Utorid: "buyer001"}
		related := &entity.Transaction{ID: 11, Utorid: "buyer001", Type: entity.TransactionPurchase, Amount: 160}

		m.userRepo.EXPECT().LockByUtorid(mock.Anything, "buyer001").Return(owner, nil).Once()
		m.txRepo.EXPECT().FindByID(mock.Anything, int64(11)).Return(related, nil).Once()
		m.promotionRepo.EXPECT().FindByIDs(mock.Anything, mock.Anything).Return(nil, nil).Once()
		m.userRepo.EXPECT().MarkPromotionsUsed(mock.Anything, int64(1), mock.Anything).Return(nil).Once()
		m.userRepo.EXPECT().AddPoints(mock.Anything, int64(1), int64(-40)).Return(nil).Once()
		m.txRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Transaction")).RunAndReturn(createdWithID(20)).Once()
		m.expectCommitted(service.LedgerEventTransactionCreated, 1)

		adjustment, err := srv.CreateAdjustment(context.Background(), usecase.Actor{ID: 99, Utorid: "manager1", Role: entity.RoleManager}, usecase.AdjustmentInput{
			Utorid:    "buyer001",
			Amount:    -40,
			RelatedID: 11,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(20), adjustment.ID)
		assert.Equal(t, int64(-40), adjustment.Amount)
		require.NotNil(t, adjustment.RelatedID)
		assert.Equal(t, int64(11), *adjustment.RelatedID)
		assert.Equal(t, "manager1", adjustment.CreatedBy)
	})

	t.Run("related transaction must belong to the owner", func(t *testing.T) {
		m := newLedgerMocks(t)
		srv := m.transactionService(newTestConfig(false))
		m.runsInTx()

		m.userRepo.EXPECT().LockByUtorid(mock.Anything, "buyer001").Return(&entity.User{ID: 1, Utorid: "buyer001"}, nil).Once()
		m.txRepo.EXPECT().FindByID(mock.Anything, int64(11)).Return(&entity.Transaction{ID: 11, Utorid: "someone1"}, nil).Once()

		_, err := srv.CreateAdjustment(context.Background(), cashier, usecase.AdjustmentInput{Utorid: "buyer001", Amount: 5, RelatedID: 11})

		assert.ErrorIs(t, err, domainerrors.ErrTransactionNotFound)
	})

	t.Run("missing related transaction", func(t *testing.T) {
		m := newLedgerMocks(t)
		srv := m.transactionService(newTestConfig(false))
		m.runsInTx()

		m.userRepo.EXPECT().LockByUtorid(mock.Anything, "buyer001").Return(&entity.User{ID: 1, Utorid: "buyer001"}, nil).Once()
		m.txRepo.EXPECT().FindByID(mock.Anything, int64(404)).Return(nil, repository.ErrTransactionNotFound).Once()

		_, err := srv.CreateAdjustment(context.Background(), cashier, usecase.AdjustmentInput{Utorid: "buyer001", Amount: 5, RelatedID: 404})

		assert.ErrorIs(t, err, domainerrors.ErrTransactionNotFound)
	})
}

func TestTransactionService_CreateTransfer(t *testing.T) {
	sender := usecase.Actor{ID: 7, Utorid: "sender01", Role: entity.RoleRegular}

	t.Run("moves points and writes both sides", func(t *testing.T) {
		m := newLedgerMocks(t)
		srv := m.transactionService(newTestConfig(false))
		m.runsInTx()

		from := &entity.User{ID: 7, Utorid: "sender01", Points: 500, Verified: true}
		to := &entity.User{ID: 3, Utorid: "recv0001", Points: 10}

		m.limiter.EXPECT().Allow("sender01").Return(true).Once()
		mock.InOrder(
			m.userRepo.EXPECT().LockByID(mock.Anything, int64(3)).Return(to, nil).Once(),
			m.userRepo.EXPECT().LockByID(mock.Anything, int64(7)).Return(from, nil).Once(),
		)
		m.userRepo.EXPECT().AddPoints(mock.Anything, int64(7), int64(-200)).Return(nil).Once()
		m.userRepo.EXPECT().AddPoints(mock.Anything, int64(3), int64(200)).Return(nil).Once()
		m.txRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Transaction")).RunAndReturn(createdWithID(30)).Times(2)
		m.metrics.EXPECT().TransactionRecorded("transfer", int64(-200)).Return().Once()
		m.metrics.EXPECT().TransactionRecorded("transfer", int64(200)).Return().Once()
		m.expectCommitted(service.LedgerEventTransactionCreated, 3, 7)

		result, err := srv.CreateTransfer(context.Background(), sender, usecase.TransferInput{RecipientID: 3, Amount: 200, Remark: "lunch"})

		require.NoError(t, err)
		assert.Equal(t, int64(30), result.Sent.ID)
		assert.Equal(t, int64(31), result.Received.ID)
		assert.Equal(t, int64(0), result.Sent.Amount+result.Received.Amount)
		assert.Equal(t, "sender01", result.Sent.Utorid)
		assert.Equal(t, "recv0001", result.Received.Utorid)
		assert.Equal(t, int64(3), *result.Sent.RelatedID)
		assert.Equal(t, int64(7), *result.Received.RelatedID)
		assert.Equal(t, "sender01", result.Received.CreatedBy)
	})

	t.Run("insufficient balance writes nothing", func(t *testing.T) {
		m := newLedgerMocks(t)
		srv := m.transactionService(newTestConfig(false))
		m.runsInTx()

		m.limiter.EXPECT().Allow("sender01").Return(true).Once()
		m.userRepo.EXPECT().LockByID(mock.Anything, int64(7)).Return(&entity.User{ID: 7, Utorid: "sender01", Points: 50, Verified: true}, nil).Once()
		m.userRepo.EXPECT().LockByID(mock.Anything, int64(8)).Return(&entity.User{ID: 8, Utorid: "recv0001"}, nil).Once()

		_, err := srv.CreateTransfer(context.Background(), sender, usecase.TransferInput{RecipientID: 8, Amount: 51})

		assert.ErrorIs(t, err, domainerrors.ErrInsufficientBalance)
		m.userRepo.AssertNotCalled(t, "AddPoints", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("transfer to self", func(t *testing.T) {
		m := newLedgerMocks(t)
		srv := m.transactionService(newTestConfig(false))
		m.runsInTx()

		m.limiter.EXPECT().Allow("sender01").Return(true).Once()
		m.userRepo.EXPECT().LockByID(mock.Anything, int64(7)).Return(&entity.User{ID: 7, Utorid: "sender01", Points: 50, Verified: true}, nil).Once()

		_, err := srv.CreateTransfer(context.Background(), sender, usecase.TransferInput{RecipientID: 7, Amount: 5})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("rate limited", func(t *testing.T) {
		m := newLedgerMocks(t)
		srv := m.transactionService(newTestConfig(false))

		m.limiter.EXPECT().Allow("sender01").Return(false).Once()
		m.metrics.EXPECT().RateLimited("transfer").Return().Once()

		_, err := srv.CreateTransfer(context.Background(), sender, usecase.TransferInput{RecipientID: 3, Amount: 5})

		assert.ErrorIs(t, err, domainerrors.ErrTooManyRequests)
	})
}

func TestTransactionService_Redemption(t *testing.T) {
	owner := usecase.Actor{ID: 4, Utorid: "redeem01", Role: entity.RoleRegular}

	t.Run("request debits the balance", func(t *testing.T) {
		m := newLedgerMocks(t)
		srv := m.transactionService(newTestConfig(false))
		m.runsInTx()

		m.limiter.EXPECT().Allow("redeem01").Return(true).Once()
		m.userRepo.EXPECT().LockByID(mock.Anything, int64(4)).Return(&entity.User{ID: 4, Utorid: "redeem01", Points: 1000, Verified: true}, nil).Once()
		m.userRepo.EXPECT().AddPoints(mock.Anything, int64(4), int64(-300)).Return(nil).Once()
		m.txRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Transaction")).RunAndReturn(createdWithID(40)).Once()
		m.metrics.EXPECT().TransactionRecorded("redemption", int64(-300)).Return().Once()
		m.expectCommitted(service.LedgerEventTransactionCreated, 4)

		redemption, err := srv.RequestRedemption(context.Background(), owner, usecase.RedemptionInput{Amount: 300})

		require.NoError(t, err)
		assert.Equal(t, int64(-300), redemption.Amount)
		require.NotNil(t, redemption.Redeemed)
		assert.Equal(t, int64(300), *redemption.Redeemed)
		assert.Nil(t, redemption.ProcessedBy)
	})

	t.Run("unverified users cannot redeem", func(t *testing.T) {
		m := newLedgerMocks(t)
		srv := m.transactionService(newTestConfig(false))
		m.runsInTx()

		m.limiter.EXPECT().Allow("redeem01").Return(true).Once()
		m.userRepo.EXPECT().LockByID(mock.Anything, int64(4)).Return(&entity.User{ID: 4, Utorid: "redeem01", Points: 1000}, nil).Once()

		_, err := srv.RequestRedemption(context.Background(), owner, usecase.RedemptionInput{Amount: 300})

		assert.ErrorIs(t, err, domainerrors.ErrUnverifiedUser)
	})

	processTests := []struct {
		name    string
		restore bool
	}{
		{name: "processing leaves the balance alone", restore: false},
		{name: "processing credits the amount back when configured", restore: true},
	}
	for _, tt := range processTests {
		t.Run(tt.name, func(t *testing.T) {
			m := newLedgerMocks(t)
			srv := m.transactionService(newTestConfig(tt.restore))
			m.runsInTx()

			redeemed := int64(300)
			pending := &entity.Transaction{ID: 40, Utorid: "redeem01", Type: entity.TransactionRedemption, Amount: -300, Redeemed: &redeemed}

			m.txRepo.EXPECT().LockByID(mock.Anything, int64(40)).Return(pending, nil).Once()
			m.userRepo.EXPECT().FindByUtorid(mock.Anything, "redeem01").Return(&entity.User{ID: 4, Utorid: "redeem01"}, nil).Once()
			m.txRepo.EXPECT().MarkProcessed(mock.Anything, int64(40), "cashier1").Return(nil).Once()
			if tt.restore {
				m.userRepo.EXPECT().AddPoints(mock.Anything, int64(4), int64(300)).Return(nil).Once()
			}
			m.expectCommitted(service.LedgerEventRedemptionProcessed, 4)

			processed, err := srv.ProcessRedemption(context.Background(), cashier, 40)

			require.NoError(t, err)
			require.NotNil(t, processed.ProcessedBy)
			assert.Equal(t, "cashier1", *processed.ProcessedBy)
			if !tt.restore {
				m.userRepo.AssertNotCalled(t, "AddPoints", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}

	t.Run("processing twice is rejected", func(t *testing.T) {
		m := newLedgerMocks(t)
		srv := m.transactionService(newTestConfig(false))
		m.runsInTx()

		by := "cashier2"
		done := &entity.Transaction{ID: 40, Utorid: "redeem01", Type: entity.TransactionRedemption, Amount: -300, ProcessedBy: &by}
		m.txRepo.EXPECT().LockByID(mock.Anything, int64(40)).Return(done, nil).Once()

		_, err := srv.ProcessRedemption(context.Background(), cashier, 40)

		assert.ErrorIs(t, err, domainerrors.ErrRedemptionAlreadyProcessed)
	})

	t.Run("only redemptions can be processed", func(t *testing.T) {
		m := newLedgerMocks(t)
		srv := m.transactionService(newTestConfig(false))
		m.runsInTx()

		m.txRepo.EXPECT().LockByID(mock.Anything, int64(11)).Return(&entity.Transaction{ID: 11, Type: entity.TransactionPurchase}, nil).Once()

		_, err := srv.ProcessRedemption(context.Background(), cashier, 11)

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestTransactionService_SetSuspicious(t *testing.T) {
	t.Run("flagging withdraws the amount", func(t *testing.T) {
		m := newLedgerMocks(t)
		srv := m.transactionService(newTestConfig(false))
		m.runsInTx()

		tx := &entity.Transaction{ID: 11, Utorid: "buyer001", Type: entity.TransactionPurchase, Amount: 160}
		m.txRepo.EXPECT().LockByID(mock.Anything, int64(11)).Return(tx, nil).Once()
		m.userRepo.EXPECT().FindByUtorid(mock.Anything, "buyer001").Return(&entity.User{ID: 1, Utorid: "buyer001"}, nil).Once()
		m.userRepo.EXPECT().AddPoints(mock.Anything, int64(1), int64(-160)).Return(nil).Once()
		m.txRepo.EXPECT().UpdateSuspicious(mock.Anything, int64(11), true).Return(nil).Once()
		m.expectCommitted(service.LedgerEventSuspiciousChanged, 1)

		updated, err := srv.SetSuspicious(context.Background(), 11, true)

		require.NoError(t, err)
		assert.True(t, updated.Suspicious)
	})

	t.Run("clearing gives the amount back", func(t *testing.T) {
		m := newLedgerMocks(t)
		srv := m.transactionService(newTestConfig(false))
		m.runsInTx()

		tx := &entity.Transaction{ID: 11, Utorid: "buyer001", Type: entity.TransactionPurchase, Amount: 160, Suspicious: true}
		m.txRepo.EXPECT().LockByID(mock.Anything, int64(11)).Return(tx, nil).Once()
		m.userRepo.EXPECT().FindByUtorid(mock.Anything, "buyer001").Return(&entity.User{ID: 1, Utorid: "buyer001"}, nil).Once()
		m.userRepo.EXPECT().AddPoints(mock.Anything, int64(1), int64(160)).Return(nil).Once()
		m.txRepo.EXPECT().UpdateSuspicious(mock.Anything, int64(11), false).Return(nil).Once()
		m.expectCommitted(service.LedgerEventSuspiciousChanged, 1)

		updated, err := srv.SetSuspicious(context.Background(), 11, false)

		require.NoError(t, err)
		assert.False(t, updated.Suspicious)
	})

	t.Run("repeating the current value changes nothing", func(t *testing.T) {
		m := newLedgerMocks(t)
		srv := m.transactionService(newTestConfig(false))
		m.runsInTx()

		tx := &entity.Transaction{ID: 11, Utorid: "buyer001", Amount: 160, Suspicious: true}
		m.txRepo.EXPECT().LockByID(mock.Anything, int64(11)).Return(tx, nil).Once()

		updated, err := srv.SetSuspicious(context.Background(), 11, true)

		require.NoError(t, err)
		assert.True(t, updated.Suspicious)
		m.userRepo.AssertNotCalled(t, "AddPoints", mock.Anything, mock.Anything, mock.Anything)
		m.txRepo.AssertNotCalled(t, "UpdateSuspicious", mock.Anything, mock.Anything, mock.Anything)
		m.publisher.AssertNotCalled(t, "PublishLedgerEvent", mock.Anything, mock.Anything)
	})
}

func TestTransactionService_ListTransactions(t *testing.T) {
	amount := int64(100)
	purchase := entity.TransactionPurchase
	related := int64(3)

	tests := []struct {
		name    string
		input   usecase.ListTransactionsInput
		wantErr error
	}{
		{name: "unknown type", input: usecase.ListTransactionsInput{Type: func() *entity.TransactionType { v := entity.TransactionType("gift"); return &v }()}, wantErr: domainerrors.ErrValidationFailed},
		{name: "relatedId without type", input: usecase.ListTransactionsInput{RelatedID: &related}, wantErr: domainerrors.ErrValidationFailed},
		{name: "amount without operator", input: usecase.ListTransactionsInput{Amount: &amount}, wantErr: domainerrors.ErrValidationFailed},
		{name: "bad operator", input: usecase.ListTransactionsInput{Amount: &amount, Operator: "eq"}, wantErr: domainerrors.ErrValidationFailed},
		{name: "negative page", input: usecase.ListTransactionsInput{PageInput: usecase.PageInput{Page: -1}}, wantErr: domainerrors.ErrValidationFailed},
		{name: "full filter", input: usecase.ListTransactionsInput{Type: &purchase, RelatedID: &related, Amount: &amount, Operator: repository.OperatorGTE}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newLedgerMocks(t)
			srv := m.transactionService(newTestConfig(false))

			if tt.wantErr == nil {
				m.txRepo.EXPECT().
					List(mock.Anything, mock.MatchedBy(func(f repository.TransactionFilter) bool {
						return f.Operator == repository.OperatorGTE && *f.Amount == 100 && f.Pagination.Limit == 10
					})).
					Return([]*entity.Transaction{{ID: 1}}, int64(1), nil).
					Once()
			}

			result, err := srv.ListTransactions(context.Background(), tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(1), result.Count)
			assert.Len(t, result.Results, 1)
		})
	}
}

func TestTransactionService_ListMyTransactions(t *testing.T) {
	m := newLedgerMocks(t)
	srv := m.transactionService(newTestConfig(false))
	me := usecase.Actor{ID: 4, Utorid: "redeem01", Role: entity.RoleRegular}

	m.txRepo.EXPECT().
		List(mock.Anything, mock.MatchedBy(func(f repository.TransactionFilter) bool {
			return f.Utorid == "redeem01" && f.Name == ""
		})).
		Return(nil, int64(0), nil).
		Once()

	result, err := srv.ListMyTransactions(context.Background(), me, usecase.ListTransactionsInput{Name: "someone"})

	require.NoError(t, err)
	assert.Equal(t, int64(0), result.Count)
}

func TestTransactionService_GetTransaction(t *testing.T) {
	m := newLedgerMocks(t)
	srv := m.transactionService(newTestConfig(false))

	m.txRepo.EXPECT().FindByID(mock.Anything, int64(404)).Return(nil, repository.ErrTransactionNotFound).Once()

	_, err := srv.GetTransaction(context.Background(), 404)

	assert.ErrorIs(t, err, domainerrors.ErrTransactionNotFound)
}

func TestTransactionService_DatabaseFailureIsWrapped(t *testing.T) {
	m := newLedgerMocks(t)
	srv := m.transactionService(newTestConfig(false))
	dbErr := errors.New("connection reset")

	m.txManager.EXPECT().Execute(mock.Anything, mock.Anything).Return(dbErr).Once()

	_, err := srv.SetSuspicious(context.Background(), 11, true)

	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.Contains(t, err.Error(), "failed to update suspicious flag")
}
