package usecase

import (
	"context"

	"github.com/parkspot-io/parkspot-api/internal/domain/entity"
)

// RegisterRequest carries the inputs for a registration
type RegisterRequest struct {
	Identifier  string
	Credential  string
	PlateNumber string
}

// UserBalanceResponse represents a user's balance in the standardized format
type UserBalanceResponse struct {
	UserID  uint64
	Balance string
}

// UserUseCase defines the user-facing account operations
type UserUseCase interface {
	// Register creates a new account with a hashed credential and the
	// configured initial balance
	Register(ctx context.Context, req RegisterRequest) (*entity.User, error)

	// GetBalance returns a user's balance formatted with two decimal places
	GetBalance(ctx context.Context, userID uint64) (*UserBalanceResponse, error)

	// UserExists checks if a user exists with the given ID
	UserExists(ctx context.Context, userID uint64) (bool, error)
}
