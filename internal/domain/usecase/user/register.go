package user

import (
	"context"
	"errors"
	"strings"

	"github.com/parkspot-io/parkspot-api/internal/domain/entity"
	errs "github.com/parkspot-io/parkspot-api/internal/domain/error"
	"github.com/parkspot-io/parkspot-api/internal/domain/port/usecase"
)

// Register creates a new account. The credential is hashed before it reaches
// the store; the plaintext is never persisted or logged.
func (u *UserUseCase) Register(ctx context.Context, req usecase.RegisterRequest) (*entity.User, error) {
	if strings.TrimSpace(req.Identifier) == "" ||
		req.Credential == "" ||
		strings.TrimSpace(req.PlateNumber) == "" {
		return nil, errs.ErrMissingFields
	}

	// Duplicate identifier check
	if _, err := u.userRepo.GetByIdentifier(ctx, req.Identifier); err == nil {
		return nil, errs.ErrDuplicateUser
	} else if !errors.Is(err, errs.ErrUserNotFound) {
		return nil, err
	}

	credentialHash, err := u.hasher.Hash(req.Credential)
	if err != nil {
		u.logger.Error("Failed to hash credential", map[string]any{
			"identifier": req.Identifier,
			"error":      err.Error(),
		})
		return nil, errs.ErrInternalServer
	}

	user, err := entity.NewUser(req.Identifier, credentialHash, req.PlateNumber, u.initialBalance, u.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		u.logger.Error("Failed to create user", map[string]any{
			"identifier": req.Identifier,
			"error":      err.Error(),
		})
		return nil, err
	}

	u.logger.Info("User registered", map[string]any{
		"userId":     user.ID,
		"identifier": user.Identifier,
	})

	return user, nil
}
