package persistence

import (
	"context"

	"github.com/parkspot-io/parkspot-api/internal/domain/entity"
)

// UserRepository defines the operations of the account ledger store
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: if no user with the given ID exists
	// - ErrDatabaseConnection: if the store is unreachable
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByIdentifier retrieves a user by their unique identifier (email or
	// username). Used to detect duplicate registrations.
	//
	// Possible errors:
	// - ErrUserNotFound: if no user with the given identifier exists
	// - ErrDatabaseConnection: if the store is unreachable
	GetByIdentifier(ctx context.Context, identifier string) (*entity.User, error)

	// Create persists a new user and assigns its ID
	//
	// Possible errors:
	// - ErrDuplicateUser: if the identifier is already taken
	// - ErrDatabaseConnection: if the store is unreachable
	Create(ctx context.Context, user *entity.User) error

	// AdjustBalance atomically applies a balance change in cents. Negative
	// deltas are debits and fail rather than driving the balance below zero.
	// Returns the updated user.
	//
	// Possible errors:
	// - ErrUserNotFound: if no user with the given ID exists
	// - ErrInsufficientBalance: if a debit exceeds the current balance
	// - ErrDatabaseConnection: if the store is unreachable
	AdjustBalance(ctx context.Context, id uint64, deltaInCents int64) (*entity.User, error)
}
