package postgres_test

import (
	"context"
	"testing"
	"time"

	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/domain/repository"
	"loyalty/internal/infra/persistence/postgres"
	"loyalty/internal/infra/persistence/sqlitetest"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var repoNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func createUser(t *testing.T, db *gorm.DB, utorid, name string, points int64) *entity.User {
	t.Helper()

	user := &entity.User{
		Utorid: utorid,
		Name:   name,
		Email:  utorid + "@mail.utoronto.ca",
		Role:   entity.RoleRegular,
		Points: points,
	}
	require.NoError(t, postgres.NewUserRepository(db).Create(context.Background(), user))

	return user
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := sqlitetest.Open(t)
	repo := postgres.NewUserRepository(db)
	ctx := context.Background()

	user := createUser(t, db, "alice001", "Alice", 10)
	assert.NotZero(t, user.ID)

	found, err := repo.FindByUtorid(ctx, "alice001")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, int64(10), found.Points)
	assert.Empty(t, found.Used)

	_, err = repo.FindByID(ctx, user.ID+100)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	duplicate := &entity.User{Utorid: "alice001", Name: "Other", Email: "other@mail.utoronto.ca", Role: entity.RoleRegular}
	assert.ErrorIs(t, repo.Create(ctx, duplicate), repository.ErrDuplicateUser)
}

func TestUserRepository_UpdateKeepsCallerTimestamp(t *testing.T) {
	db := sqlitetest.Open(t)
	repo := postgres.NewUserRepository(db)
	ctx := context.Background()

	user := createUser(t, db, "carol001", "Carol", 0)
	user.Verified = true
	user.UpdatedAt = repoNow.Add(time.Hour)
	require.NoError(t, repo.Update(ctx, user))

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, found.Verified)
	assert.True(t, found.UpdatedAt.Equal(repoNow.Add(time.Hour)), "updatedAt = %s", found.UpdatedAt)

	user.ID += 100
	assert.ErrorIs(t, repo.Update(ctx, user), repository.ErrUserNotFound)
}

func TestUserRepository_AddPoints(t *testing.T) {
	db := sqlitetest.Open(t)
	repo := postgres.NewUserRepository(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice001", "Alice", 10)
	bob := createUser(t, db, "bob00001", "Bob", 0)

	require.NoError(t, repo.AddPoints(ctx, alice.ID, -4))
	require.NoError(t, repo.AddPointsToMany(ctx, []int64{alice.ID, bob.ID}, 5))

	found, err := repo.FindByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(11), found.Points)

	found, err = repo.FindByID(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), found.Points)

	assert.ErrorIs(t, repo.AddPoints(ctx, 999, 1), repository.ErrUserNotFound)
	assert.ErrorIs(t, repo.AddPointsToMany(ctx, []int64{alice.ID, 999}, 1), repository.ErrUserNotFound)
}

func TestUserRepository_MarkPromotionsUsed(t *testing.T) {
	db := sqlitetest.Open(t)
	repo := postgres.NewUserRepository(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice001", "Alice", 0)

	require.NoError(t, repo.MarkPromotionsUsed(ctx, alice.ID, []int64{3, 7}))

	found, err := repo.FindByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{3, 7}, found.Used)
	assert.True(t, found.HasUsed(7))

	err = repo.MarkPromotionsUsed(ctx, alice.ID, []int64{7})
	assert.ErrorIs(t, err, repository.ErrPromotionAlreadyUsed)
}

func TestUserRepository_List(t *testing.T) {
	db := sqlitetest.Open(t)
	repo := postgres.NewUserRepository(db)
	ctx := context.Background()

	createUser(t, db, "alice001", "Alice Smith", 0)
	createUser(t, db, "bob00001", "Bob Stone", 0)
	createUser(t, db, "carol001", "Carol 100%", 0)

	tests := []struct {
		name      string
		filter    repository.UserFilter
		wantCount int64
		wantLen   int
	}{
		{name: "all", filter: repository.UserFilter{}, wantCount: 3, wantLen: 3},
		{name: "by name", filter: repository.UserFilter{Name: "smith"}, wantCount: 1, wantLen: 1},
		{name: "by utorid", filter: repository.UserFilter{Name: "BOB"}, wantCount: 1, wantLen: 1},
		{name: "wildcard is literal", filter: repository.UserFilter{Name: "0%"}, wantCount: 1, wantLen: 1},
		{name: "paged", filter: repository.UserFilter{Pagination: repository.Pagination{Page: 2, Limit: 2}}, wantCount: 3, wantLen: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users, count, err := repo.List(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, count)
			assert.Len(t, users, tt.wantLen)
		})
	}
}

func TestTransactionRepository_CreateListAndProcess(t *testing.T) {
	db := sqlitetest.Open(t)
	repo := postgres.NewTransactionRepository(db)
	ctx := context.Background()

	createUser(t, db, "alice001", "Alice", 0)
	createUser(t, db, "bob00001", "Bob", 0)

	spent := decimal.RequireFromString("40.00")
	purchase := &entity.Transaction{
		Utorid:       "alice001",
		Type:         entity.TransactionPurchase,
		Amount:       160,
		Spent:        &spent,
		PromotionIDs: []int64{4},
		CreatedBy:    "cash0001",
	}
	require.NoError(t, repo.Create(ctx, purchase))

	redeemed := int64(50)
	redemption := &entity.Transaction{
		Utorid:    "bob00001",
		Type:      entity.TransactionRedemption,
		Amount:    -50,
		Redeemed:  &redeemed,
		CreatedBy: "bob00001",
	}
	require.NoError(t, repo.Create(ctx, redemption))

	found, err := repo.FindByID(ctx, purchase.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{4}, found.PromotionIDs)
	require.NotNil(t, found.Spent)
	assert.True(t, spent.Equal(*found.Spent))

	promotionID := int64(4)
	purchaseType := entity.TransactionPurchase
	amount := int64(0)

	tests := []struct {
		name    string
		filter  repository.TransactionFilter
		wantIDs []int64
	}{
		{name: "newest first", filter: repository.TransactionFilter{}, wantIDs: []int64{redemption.ID, purchase.ID}},
		{name: "by promotion", filter: repository.TransactionFilter{PromotionID: &promotionID}, wantIDs: []int64{purchase.ID}},
		{name: "by type", filter: repository.TransactionFilter{Type: &purchaseType}, wantIDs: []int64{purchase.ID}},
		{name: "by owner name", filter: repository.TransactionFilter{Name: "bob"}, wantIDs: []int64{redemption.ID}},
		{name: "amount lte", filter: repository.TransactionFilter{Amount: &amount, Operator: repository.OperatorLTE}, wantIDs: []int64{redemption.ID}},
		{name: "amount gte", filter: repository.TransactionFilter{Amount: &amount}, wantIDs: []int64{purchase.ID}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txs, count, err := repo.List(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, int64(len(tt.wantIDs)), count)

			ids := make([]int64, 0, len(txs))
			for _, tx := range txs {
				ids = append(ids, tx.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}

	require.NoError(t, repo.MarkProcessed(ctx, redemption.ID, "cash0001"))
	err = repo.MarkProcessed(ctx, redemption.ID, "cash0002")
	assert.True(t, errors.Is(err, domainerrors.ErrRedemptionAlreadyProcessed))

	processed, err := repo.FindByID(ctx, redemption.ID)
	require.NoError(t, err)
	require.NotNil(t, processed.ProcessedBy)
	assert.Equal(t, "cash0001", *processed.ProcessedBy)

	require.NoError(t, repo.UpdateSuspicious(ctx, purchase.ID, true))
	flagged, err := repo.FindByID(ctx, purchase.ID)
	require.NoError(t, err)
	assert.True(t, flagged.Suspicious)

	assert.ErrorIs(t, repo.UpdateSuspicious(ctx, 999, true), repository.ErrTransactionNotFound)
}

func TestEventRepository_Rosters(t *testing.T) {
	db := sqlitetest.Open(t)
	repo := postgres.NewEventRepository(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice001", "Alice", 0)
	bob := createUser(t, db, "bob00001", "Bob", 0)

	capacity := 1
	event := &entity.Event{
		Name:         "Hackathon",
		Description:  "Overnight build",
		Location:     "BA 1160",
		StartTime:    repoNow.Add(24 * time.Hour),
		EndTime:      repoNow.Add(48 * time.Hour),
		Capacity:     &capacity,
		PointsRemain: 100,
	}
	require.NoError(t, repo.Create(ctx, event))

	require.NoError(t, repo.AddOrganizer(ctx, event.ID, alice.ID))
	require.NoError(t, repo.AddGuest(ctx, event.ID, bob.ID))
	assert.ErrorIs(t, repo.AddGuest(ctx, event.ID, bob.ID), repository.ErrDuplicateGuest)
	assert.ErrorIs(t, repo.AddOrganizer(ctx, event.ID, alice.ID), repository.ErrDuplicateOrganizer)

	found, err := repo.LockByID(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, []entity.UserRef{alice.Ref()}, found.Organizers)
	assert.Equal(t, []entity.UserRef{bob.Ref()}, found.Guests)

	found.Full = true
	found.Published = true
	require.NoError(t, repo.Update(ctx, found))

	_, count, err := repo.List(ctx, repository.EventFilter{Now: repoNow})
	require.NoError(t, err)
	assert.Zero(t, count)

	events, count, err := repo.List(ctx, repository.EventFilter{Now: repoNow, ShowFull: true})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	require.Len(t, events, 1)
	assert.Len(t, events[0].Guests, 1)

	started := true
	_, count, err = repo.List(ctx, repository.EventFilter{Now: repoNow, ShowFull: true, Started: &started})
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, repo.RemoveGuest(ctx, event.ID, bob.ID))
	assert.ErrorIs(t, repo.RemoveGuest(ctx, event.ID, bob.ID), repository.ErrUserNotFound)

	require.NoError(t, repo.Delete(ctx, event.ID))
	_, err = repo.FindByID(ctx, event.ID)
	assert.ErrorIs(t, err, repository.ErrEventNotFound)
}

func TestPromotionRepository_ActiveAndList(t *testing.T) {
	db := sqlitetest.Open(t)
	repo := postgres.NewPromotionRepository(db)
	ctx := context.Background()

	rate := decimal.RequireFromString("0.05")
	minSpending := decimal.RequireFromString("50")
	active := &entity.Promotion{
		Name:      "Double Dip",
		Type:      entity.PromotionAutomatic,
		StartTime: repoNow.Add(-time.Hour),
		EndTime:   repoNow.Add(time.Hour),
		Rate:      &rate,
	}
	upcoming := &entity.Promotion{
		Name:        "Spring Bonus",
		Type:        entity.PromotionOneTime,
		StartTime:   repoNow.Add(time.Hour),
		EndTime:     repoNow.Add(2 * time.Hour),
		MinSpending: &minSpending,
		Points:      20,
	}
	require.NoError(t, repo.Create(ctx, active))
	require.NoError(t, repo.Create(ctx, upcoming))

	automatic, err := repo.FindActive(ctx, repoNow, entity.PromotionAutomatic)
	require.NoError(t, err)
	require.Len(t, automatic, 1)
	assert.Equal(t, active.ID, automatic[0].ID)
	require.NotNil(t, automatic[0].Rate)
	assert.True(t, rate.Equal(*automatic[0].Rate))

	found, err := repo.FindByIDs(ctx, []int64{upcoming.ID, 999})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, int64(20), found[0].Points)

	listed, count, err := repo.List(ctx, repository.PromotionFilter{Now: repoNow, ActiveOnly: true})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, active.ID, listed[0].ID)

	started := false
	listed, _, err = repo.List(ctx, repository.PromotionFilter{Now: repoNow, Started: &started})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, upcoming.ID, listed[0].ID)

	upcoming.Points = 30
	require.NoError(t, repo.Update(ctx, upcoming))
	reloaded, err := repo.FindByID(ctx, upcoming.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(30), reloaded.Points)

	require.NoError(t, repo.Delete(ctx, upcoming.ID))
	assert.ErrorIs(t, repo.Delete(ctx, upcoming.ID), repository.ErrPromotionNotFound)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := sqlitetest.Open(t)
	txManager := postgres.NewTransactionManager(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice001", "Alice", 10)
	boom := errors.New("boom")

	err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewUserRepository().AddPoints(ctx, alice.ID, 90); err != nil {
			return err
		}

		return boom
	})
	assert.ErrorIs(t, err, boom)

	found, err := postgres.NewUserRepository(db).FindByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), found.Points)

	err = txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.NewUserRepository().AddPoints(ctx, alice.ID, 5)
	})
	require.NoError(t, err)

	found, err = postgres.NewUserRepository(db).FindByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(15), found.Points)
}
