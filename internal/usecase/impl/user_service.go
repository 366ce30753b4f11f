package impl

import (
	"context"
	"log/slog"

	"loyalty/config"
	deliverycontext "loyalty/internal/delivery/context"
	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/domain/ledger"
	"loyalty/internal/domain/repository"
	"loyalty/internal/domain/service"
	"loyalty/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager     repository.TransactionManager
	userRepo      repository.UserRepository
	promotionRepo repository.PromotionRepository
	cache         service.BalanceCache
	clock         service.Clock
	emailDomain   string
	defaultLimit  int
	logger        *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	UserRepo      repository.UserRepository
	PromotionRepo repository.PromotionRepository
	Cache         service.BalanceCache
	Clock         service.Clock
	Config        *config.Config
	Logger        *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	srv := &userService{
		txManager:     params.TxManager,
		userRepo:      params.UserRepo,
		promotionRepo: params.PromotionRepo,
		cache:         params.Cache,
		clock:         params.Clock,
		defaultLimit:  fallbackPageLimit,
		logger:        params.Logger,
	}
	if params.Config != nil {
		srv.emailDomain = params.Config.Ledger.EmailDomain
		srv.defaultLimit = params.Config.Ledger.DefaultPageLimit
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser creates an unverified regular account.
func (srv *userService) RegisterUser(ctx context.Context, input usecase.RegisterUserInput) (*entity.User, error) {
	user, err := ledger.NewRegisteredUser(input.Utorid, input.Name, input.Email, srv.emailDomain)
	if err != nil {
		return nil, err
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		srv.log(ctx).Error("Failed to register user", slog.String("utorid", input.Utorid), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to register user")
	}

	srv.log(ctx).Info("User registered", slog.Int64("userID", user.ID), slog.String("utorid", user.Utorid))

	return user, nil
}

// ListUsers returns one page of users.
func (srv *userService) ListUsers(ctx context.Context, input usecase.ListUsersInput) (*usecase.ListResult[*entity.User], error) {
	page, err := toPagination(input.PageInput, srv.defaultLimit)
	if err != nil {
		return nil, err
	}
	if input.Role != nil && !input.Role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role")
	}

	users, count, err := srv.userRepo.List(ctx, repository.UserFilter{
		Name:       input.Name,
		Role:       input.Role,
		Verified:   input.Verified,
		Activated:  input.Activated,
		Pagination: page,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return &usecase.ListResult[*entity.User]{Count: count, Results: users}, nil
}

// GetUser returns a user and the one-time promotions they can still use.
func (srv *userService) GetUser(ctx context.Context, userID int64) (*usecase.UserDetail, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, translateRepoError(err)
	}

	return srv.detail(ctx, user)
}

// GetMe returns the actor's own account.
func (srv *userService) GetMe(ctx context.Context, actor usecase.Actor) (*usecase.UserDetail, error) {
	return srv.GetUser(ctx, actor.ID)
}

func (srv *userService) detail(ctx context.Context, user *entity.User) (*usecase.UserDetail, error) {
	active, err := srv.promotionRepo.FindActive(ctx, srv.clock.Now(), entity.PromotionOneTime)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load promotions")
	}

	return &usecase.UserDetail{User: user, Promotions: ledger.AvailablePromotions(user, active)}, nil
}

// UpdateUser applies a manager's changes to another account.
func (srv *userService) UpdateUser(ctx context.Context, actor usecase.Actor, userID int64, input usecase.UpdateUserInput) (*entity.User, error) {
	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.LockByID(ctx, userID)
		if err != nil {
			return translateRepoError(err)
		}

		patch := ledger.UserPatch{
			Email:      input.Email,
			Verified:   input.Verified,
			Suspicious: input.Suspicious,
			Role:       input.Role,
		}
		if err := ledger.ApplyUserPatch(user, patch, actor.Role, srv.emailDomain); err != nil {
			return err
		}
		user.UpdatedAt = srv.clock.Now()
		if err := userRepo.Update(ctx, user); err != nil {
			return translateRepoError(err)
		}

		updated = user

		return nil
	})
	if err != nil {
		return nil, finishTx(err, "failed to update user")
	}

	srv.log(ctx).Info("User updated",
		slog.Int64("userID", updated.ID),
		slog.String("by", actor.Utorid),
		slog.String("role", updated.Role.String()))

	return updated, nil
}

// UpdateMe changes the actor's own profile fields.
func (srv *userService) UpdateMe(ctx context.Context, actor usecase.Actor, input usecase.UpdateMeInput) (*entity.User, error) {
	if input.Name == nil && input.Email == nil && input.Birthday == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("request body cannot be empty")
	}
	if input.Name != nil {
		if err := ledger.ValidateName(*input.Name); err != nil {
			return nil, err
		}
	}
	if input.Email != nil {
		if err := ledger.ValidateEmail(*input.Email, srv.emailDomain); err != nil {
			return nil, err
		}
	}
	if input.Birthday != nil {
		if err := ledger.ValidateBirthday(*input.Birthday); err != nil {
			return nil, err
		}
	}

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.LockByID(ctx, actor.ID)
		if err != nil {
			return translateRepoError(err)
		}
		if input.Name != nil {
			user.Name = *input.Name
		}
		if input.Email != nil {
			user.Email = *input.Email
		}
		if input.Birthday != nil {
			birthday := *input.Birthday
			user.Birthday = &birthday
		}
		user.UpdatedAt = srv.clock.Now()
		if err := userRepo.Update(ctx, user); err != nil {
			return translateRepoError(err)
		}

		updated = user

		return nil
	})
	if err != nil {
		return nil, finishTx(err, "failed to update profile")
	}

	return updated, nil
}

// GetBalance serves the balance from the cache, filling it from the database on a miss.
func (srv *userService) GetBalance(ctx context.Context, actor usecase.Actor) (*usecase.Balance, error) {
	if srv.cache != nil {
		points, ok, err := srv.cache.Get(ctx, actor.ID)
		if err != nil {
			srv.log(ctx).Warn("Balance cache read failed", slog.Int64("userID", actor.ID), slog.Any("error", err))
		}
		if ok {
			return &usecase.Balance{UserID: actor.ID, Utorid: actor.Utorid, Points: points, Cached: true}, nil
		}
	}

	user, err := srv.userRepo.FindByID(ctx, actor.ID)
	if err != nil {
		return nil, translateRepoError(err)
	}

	if srv.cache != nil {
		if err := srv.cache.Set(ctx, user.ID, user.Points); err != nil {
			srv.log(ctx).Warn("Balance cache write failed", slog.Int64("userID", user.ID), slog.Any("error", err))
		}
	}

	return &usecase.Balance{UserID: user.ID, Utorid: user.Utorid, Points: user.Points}, nil
}
