package usecase

import (
	"context"

	"loyalty/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	Utorid string
	Name   string
	Email  string
}

// ListUsersInput filters a user listing.
type ListUsersInput struct {
	Name      string
	Role      *entity.Role
	Verified  *bool
	Activated *bool
	PageInput
}

// UpdateUserInput holds the fields a manager may change on another user.
type UpdateUserInput struct {
	Email      *string
	Verified   *bool
	Suspicious *bool
	Role       *entity.Role
}

// UpdateMeInput holds the profile fields users may change on themselves.
type UpdateMeInput struct {
	Name     *string
	Email    *string
	Birthday *string
}

// --- Output DTOs ---

// UserDetail is a user together with the one-time promotions still available to them.
type UserDetail struct {
	User       *entity.User
	Promotions []*entity.Promotion
}

// Balance is a user's point balance, possibly served from the cache.
type Balance struct {
	UserID int64  `json:"id"`
	Utorid string `json:"utorid"`
	Points int64  `json:"points"`
	Cached bool   `json:"cached"`
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	RegisterUser(ctx context.Context, input RegisterUserInput) (*entity.User, error)
	ListUsers(ctx context.Context, input ListUsersInput) (*ListResult[*entity.User], error)
	GetUser(ctx context.Context, userID int64) (*UserDetail, error)
	UpdateUser(ctx context.Context, actor Actor, userID int64, input UpdateUserInput) (*entity.User, error)

	GetMe(ctx context.Context, actor Actor) (*UserDetail, error)
	UpdateMe(ctx context.Context, actor Actor, input UpdateMeInput) (*entity.User, error)
	GetBalance(ctx context.Context, actor Actor) (*Balance, error)
}
