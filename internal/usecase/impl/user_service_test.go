package impl

import (
	"context"
	"testing"

	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/domain/repository"
	"loyalty/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var manager = usecase.Actor{ID: 99, Utorid: "manager1", Role: entity.RoleManager}

func TestUserService_RegisterUser(t *testing.T) {
	tests := []struct {
		name      string
		input     usecase.RegisterUserInput
		createErr error
		wantErr   error
	}{
		{
			name:  "creates a regular unverified user",
			input: usecase.RegisterUserInput{Utorid: "newuser1", Name: "New User", Email: "new.user@mail.utoronto.ca"},
		},
		{
			name:      "duplicate utorid",
			input:     usecase.RegisterUserInput{Utorid: "newuser1", Name: "New User", Email: "new.user@mail.utoronto.ca"},
			createErr: repository.ErrDuplicateUser,
			wantErr:   domainerrors.ErrUserAlreadyExists,
		},
		{
			name:    "email outside the university domain",
			input:   usecase.RegisterUserInput{Utorid: "newuser1", Name: "New User", Email: "new.user@gmail.com"},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "short utorid",
			input:   usecase.RegisterUserInput{Utorid: "abc", Name: "New User", Email: "new.user@mail.utoronto.ca"},
			wantErr: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newLedgerMocks(t)
			srv := m.userService(newTestConfig(false))

			if tt.createErr != nil || tt.wantErr == nil {
				m.userRepo.EXPECT().
					Create(mock.Anything, mock.AnythingOfType("*entity.User")).
					RunAndReturn(func(_ context.Context, u *entity.User) error {
						if tt.createErr != nil {
							return tt.createErr
						}
						u.ID = 5
						return nil
					}).
					Once()
			}

			user, err := srv.RegisterUser(context.Background(), tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(5), user.ID)
			assert.Equal(t, entity.RoleRegular, user.Role)
			assert.False(t, user.Verified)
			assert.Equal(t, int64(0), user.Points)
		})
	}
}

func TestUserService_ListUsers(t *testing.T) {
	t.Run("passes filters and default page", func(t *testing.T) {
		m := newLedgerMocks(t)
		srv := m.userService(newTestConfig(false))
		role := entity.RoleCashier

		m.userRepo.EXPECT().
			List(mock.Anything, mock.MatchedBy(func(f repository.UserFilter) bool {
				return f.Name == "ali" && *f.Role == entity.RoleCashier && f.Page == 1 && f.Limit == 10
			})).
			Return([]*entity.User{{ID: 1}, {ID: 2}}, int64(12), nil).
			Once()

		result, err := srv.ListUsers(context.Background(), usecase.ListUsersInput{Name: "ali", Role: &role})

		require.NoError(t, err)
		assert.Equal(t, int64(12), result.Count)
		assert.Len(t, result.Results, 2)
	})

	t.Run("unknown role", func(t *testing.T) {
		m := newLedgerMocks(t)
		srv := m.userService(newTestConfig(false))
		role := entity.Role("admin")

		_, err := srv.ListUsers(context.Background(), usecase.ListUsersInput{Role: &role})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestUserService_GetUser(t *testing.T) {
	m := newLedgerMocks(t)
	srv := m.userService(newTestConfig(false))

	user := &entity.User{ID: 1, Utorid: "buyer001", Used: []int64{2}}
	m.userRepo.EXPECT().FindByID(mock.Anything, int64(1)).Return(user, nil).Once()
	m.promotionRepo.EXPECT().
		FindActive(mock.Anything, testNow, entity.PromotionOneTime).
		Return([]*entity.Promotion{activePromotion(2, entity.PromotionOneTime), activePromotion(4, entity.PromotionOneTime)}, nil).
		Once()

	detail, err := srv.GetUser(context.Background(), 1)

	require.NoError(t, err)
	assert.Same(t, user, detail.User)
	require.Len(t, detail.Promotions, 1)
	assert.Equal(t, int64(4), detail.Promotions[0].ID)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	m := newLedgerMocks(t)
	srv := m.userService(newTestConfig(false))

	m.userRepo.EXPECT().FindByID(mock.Anything, int64(404)).Return(nil, repository.ErrUserNotFound).Once()

	_, err := srv.GetUser(context.Background(), 404)

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_UpdateUser(t *testing.T) {
	promote := entity.RoleManager
	toCashier := entity.RoleCashier
	yes := true

	t.Run("manager verifies and promotes to cashier", func(t *testing.T) {
		m := newLedgerMocks(t)
		srv := m.userService(newTestConfig(false))
		m.runsInTx()

		m.userRepo.EXPECT().LockByID(mock.Anything, int64(1)).Return(&entity.User{ID: 1, Utorid: "buyer001", Role: entity.RoleRegular}, nil).Once()
		m.userRepo.EXPECT().
			Update(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
				return u.Verified && u.Role == entity.RoleCashier && u.UpdatedAt.Equal(testNow)
			})).
			Return(nil).
			Once()

		updated, err := srv.UpdateUser(context.Background(), manager, 1, usecase.UpdateUserInput{Verified: &yes, Role: &toCashier})

		require.NoError(t, err)
		assert.Equal(t, entity.RoleCashier, updated.Role)
	})

	t.Run("manager cannot create managers", func(t *testing.T) {
		m := newLedgerMocks(t)
		srv := m.userService(newTestConfig(false))
		m.runsInTx()

		m.userRepo.EXPECT().LockByID(mock.Anything, int64(1)).Return(&entity.User{ID: 1, Role: entity.RoleRegular}, nil).Once()

		_, err := srv.UpdateUser(context.Background(), manager, 1, usecase.UpdateUserInput{Role: &promote})

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
		m.userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("superuser can create managers", func(t *testing.T) {
		m := newLedgerMocks(t)
		srv := m.userService(newTestConfig(false))
		m.runsInTx()

		m.userRepo.EXPECT().LockByID(mock.Anything, int64(1)).Return(&entity.User{ID: 1, Role: entity.RoleRegular}, nil).Once()
		m.userRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Once()

		superuser := usecase.Actor{ID: 100, Utorid: "superusr", Role: entity.RoleSuperuser}
		updated, err := srv.UpdateUser(context.Background(), superuser, 1, usecase.UpdateUserInput{Role: &promote})

		require.NoError(t, err)
		assert.Equal(t, entity.RoleManager, updated.Role)
	})

	t.Run("unknown user", func(t *testing.T) {
		m := newLedgerMocks(t)
		srv := m.userService(newTestConfig(false))
		m.runsInTx()

		m.userRepo.EXPECT().LockByID(mock.Anything, int64(404)).Return(nil, repository.ErrUserNotFound).Once()

		_, err := srv.UpdateUser(context.Background(), manager, 404, usecase.UpdateUserInput{Verified: &yes})

		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})
}

func TestUserService_UpdateMe(t *testing.T) {
	me := usecase.Actor{ID: 1, Utorid: "buyer001", Role: entity.RoleRegular}

	t.Run("updates the given fields", func(t *testing.T) {
		m := newLedgerMocks(t)
		srv := m.userService(newTestConfig(false))
		m.runsInTx()

		name := "Renamed"
		birthday := "2000-02-29"
		m.userRepo.EXPECT().LockByID(mock.Anything, int64(1)).Return(&entity.User{ID: 1, Utorid: "buyer001", Name: "Old"}, nil).Once()
		m.userRepo.EXPECT().Update(mock.Anything, mock.AnythingOfType("*entity.User")).Return(nil).Once()

		updated, err := srv.UpdateMe(context.Background(), me, usecase.UpdateMeInput{Name: &name, Birthday: &birthday})

		require.NoError(t, err)
		assert.Equal(t, "Renamed", updated.Name)
		require.NotNil(t, updated.Birthday)
		assert.Equal(t, "2000-02-29", *updated.Birthday)
	})

	invalid := []struct {
		name  string
		input usecase.UpdateMeInput
	}{
		{name: "empty body", input: usecase.UpdateMeInput{}},
		{name: "impossible birthday", input: usecase.UpdateMeInput{Birthday: func() *string { s := "2001-02-29"; return &s }()}},
		{name: "foreign email", input: usecase.UpdateMeInput{Email: func() *string { s := "me@example.com"; return &s }()}},
		{name: "empty name", input: usecase.UpdateMeInput{Name: func() *string { s := ""; return &s }()}},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			m := newLedgerMocks(t)
			srv := m.userService(newTestConfig(false))

			_, err := srv.UpdateMe(context.Background(), me, tt.input)

			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestUserService_GetBalance(t *testing.T) {
	me := usecase.Actor{ID: 1, Utorid: "buyer001", Role: entity.RoleRegular}

	t.Run("cache hit", func(t *testing.T) {
		m := newLedgerMocks(t)
		srv := m.userService(newTestConfig(false))

		m.cache.EXPECT().Get(mock.Anything, int64(1)).Return(int64(250), true, nil).Once()

		balance, err := srv.GetBalance(context.Background(), me)

		require.NoError(t, err)
		assert.Equal(t, int64(250), balance.Points)
		assert.True(t, balance.Cached)
		m.userRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("cache miss fills the cache", func(t *testing.T) {
		m := newLedgerMocks(t)
		srv := m.userService(newTestConfig(false))

		m.cache.EXPECT().Get(mock.Anything, int64(1)).Return(int64(0), false, nil).Once()
		m.userRepo.EXPECT().FindByID(mock.Anything, int64(1)).Return(&entity.User{ID: 1, Utorid: "buyer001", Points: 300}, nil).Once()
		m.cache.EXPECT().Set(mock.Anything, int64(1), int64(300)).Return(nil).Once()

		balance, err := srv.GetBalance(context.Background(), me)

		require.NoError(t, err)
		assert.Equal(t, int64(300), balance.Points)
		assert.False(t, balance.Cached)
	})

	t.Run("cache failures fall back to the database", func(t *testing.T) {
		m := newLedgerMocks(t)
		srv := m.userService(newTestConfig(false))

		m.cache.EXPECT().Get(mock.Anything, int64(1)).Return(int64(0), false, errors.New("redis down")).Once()
		m.userRepo.EXPECT().FindByID(mock.Anything, int64(1)).Return(&entity.User{ID: 1, Utorid: "buyer001", Points: 300}, nil).Once()
		m.cache.EXPECT().Set(mock.Anything, int64(1), int64(300)).Return(errors.New("redis down")).Once()

		balance, err := srv.GetBalance(context.Background(), me)

		require.NoError(t, err)
		assert.Equal(t, int64(300), balance.Points)
	})
}
