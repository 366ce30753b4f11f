// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"loyalty/internal/domain/entity"
)

// UserFilter narrows a user listing.
type UserFilter struct {
	Name      string // Matches utorid or name.
	Role      *entity.Role
	Verified  *bool
	Activated *bool // Has logged in at least once.
	Pagination
}

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single user by their unique ID, including consumed promotions.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByUtorid retrieves a single user by utorid.
	FindByUtorid(ctx context.Context, utorid string) (*entity.User, error)

	// LockByID retrieves a user and holds a row lock until the transaction ends.
	LockByID(ctx context.Context, id int64) (*entity.User, error)

	// LockByUtorid retrieves a user by utorid and holds a row lock until the transaction ends.
	LockByUtorid(ctx context.Context, utorid string) (*entity.User, error)

	// List returns one page of users and the total number of matches.
	List(ctx context.Context, filter UserFilter) ([]*entity.User, int64, error)

	// Update modifies the mutable profile and status fields. Points are never written here.
	Update(ctx context.Context, user *entity.User) error

	// AddPoints atomically adds delta (which may be negative) to the balance.
	AddPoints(ctx context.Context, id int64, delta int64) error

	// AddPointsToMany adds delta to the balance of every listed user.
	AddPointsToMany(ctx context.Context, ids []int64, delta int64) error

	// MarkPromotionsUsed records one-time promotions as consumed by the user.
	// Returns ErrPromotionAlreadyUsed when any of them was already consumed.
	MarkPromotionsUsed(ctx context.Context, userID int64, promotionIDs []int64) error
}
