package user

import (
	"context"
	"errors"

	errs "github.com/parkspot-io/parkspot-api/internal/domain/error"
	coreport "github.com/parkspot-io/parkspot-api/internal/domain/port/core"
	"github.com/parkspot-io/parkspot-api/internal/domain/port/persistence"
	"github.com/parkspot-io/parkspot-api/internal/domain/port/usecase"
)

// UserUseCase implements the user business logic
type UserUseCase struct {
	userRepo       persistence.UserRepository
	hasher         coreport.PasswordHasher
	timeProvider   coreport.TimeProvider
	logger         coreport.Logger
	initialBalance string
}

// NewUserUseCase creates a new user use case instance. Every new account
// starts with initialBalance, taken from the marketplace configuration.
func NewUserUseCase(
	userRepo persistence.UserRepository,
	hasher coreport.PasswordHasher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	initialBalance string,
) usecase.UserUseCase {
	return &UserUseCase{
		userRepo:       userRepo,
		hasher:         hasher,
		timeProvider:   timeProvider,
		logger:         logger,
		initialBalance: initialBalance,
	}
}

// GetBalance retrieves a user's balance in the standardized format
func (u *UserUseCase) GetBalance(ctx context.Context, userID uint64) (*usecase.UserBalanceResponse, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		u.logger.Error("Failed to get user", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
		return nil, err
	}

	return &usecase.UserBalanceResponse{
		UserID:  user.ID,
		Balance: user.FormattedBalance(),
	}, nil
}

// UserExists checks if a user exists with the given ID
func (u *UserUseCase) UserExists(ctx context.Context, userID uint64) (bool, error) {
	if userID == 0 {
		return false, errs.ErrInvalidUserID
	}

	_, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
