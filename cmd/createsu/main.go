// Command createsu creates (or promotes) a superuser and prints an access token for it.
//
//	createsu <utorid> <email> [name]
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"loyalty/config"
	"loyalty/internal/domain/entity"
	"loyalty/internal/domain/ledger"
	"loyalty/internal/domain/repository"
	"loyalty/internal/domain/service"
	"loyalty/internal/infra/auth"
	logs "loyalty/internal/infra/log"
	"loyalty/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "usage: createsu <utorid> <email> [name]")
		os.Exit(2)
	}
	utorid, email := os.Args[1], os.Args[2]
	name := utorid
	if len(os.Args) > 3 {
		name = os.Args[3]
	}

	var (
		cfg      *config.Config
		logger   *slog.Logger
		users    repository.UserRepository
		tokenSvc service.TokenService
		clock    service.Clock
	)
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
			postgres.NewUserRepository,
			service.NewSystemClock,
			auth.NewJWTService,
		),
		fx.Populate(&cfg, &logger, &users, &tokenSvc, &clock),
	)
	if err := app.Err(); err != nil {
		slog.Error("Failed to build app", slog.Any("error", err))
		os.Exit(1)
	}

	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		slog.Error("Failed to start app", slog.Any("error", err))
		os.Exit(1)
	}

	token, err := createSuperuser(ctx, cfg, users, tokenSvc, clock, utorid, name, email)
	if stopErr := app.Stop(ctx); stopErr != nil {
		logger.Warn("Failed to stop app", slog.Any("error", stopErr))
	}
	if err != nil {
		logger.Error("Failed to create superuser", slog.Any("error", err))
		os.Exit(1)
	}

	fmt.Println(token)
}

func createSuperuser(
	ctx context.Context,
	cfg *config.Config,
	users repository.UserRepository,
	tokenSvc service.TokenService,
	clock service.Clock,
	utorid, name, email string,
) (string, error) {
	user, err := ledger.NewRegisteredUser(utorid, name, email, cfg.Ledger.EmailDomain)
	if err != nil {
		return "", err
	}
	user.Role = entity.RoleSuperuser
	user.Verified = true

	err = users.Create(ctx, user)
	if errors.Is(err, repository.ErrDuplicateUser) {
		// Promote the existing account instead.
		user, err = users.FindByUtorid(ctx, utorid)
		if err != nil {
			return "", errors.Wrap(err, "failed to load existing user")
		}
		user.Role = entity.RoleSuperuser
		user.Verified = true
		user.UpdatedAt = clock.Now()
		err = users.Update(ctx, user)
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to store superuser")
	}

	token, _, err := tokenSvc.GenerateAccessToken(user.ID, user.Utorid, user.Role.String())
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return token, nil
}
