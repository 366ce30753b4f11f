package service

import "context"

// BalanceCache keeps recently read point balances. It is a read-through
// optimisation only; the database stays the source of truth.
type BalanceCache interface {
	// Get returns the cached balance and whether it was present.
	Get(ctx context.Context, userID int64) (int64, bool, error)

	// Set stores the balance for the user.
	Set(ctx context.Context, userID int64, points int64) error

	// Invalidate drops the cached balances of the given users.
	Invalidate(ctx context.Context, userIDs ...int64) error
}
