package repository

import (
	"context"
	"fmt"

	"github.com/parkspot-io/parkspot-api/internal/domain/entity"
	errs "github.com/parkspot-io/parkspot-api/internal/domain/error"
	coreport "github.com/parkspot-io/parkspot-api/internal/domain/port/core"
	"github.com/parkspot-io/parkspot-api/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository implements the UserRepository interface using GORM
type UserRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// modelToEntity converts a user model to an entity
func (r *UserRepository) modelToEntity(userModel *model.User) (*entity.User, error) {
	user, err := entity.NewUser(
		userModel.Identifier,
		userModel.CredentialHash,
		userModel.PlateNumber,
		entity.FormatCents(userModel.Balance),
		r.timeProvider,
	)
	if err != nil {
		r.logger.Error("Failed to build user entity", map[string]any{
			"user_id": userModel.ID,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("%w: failed to build user entity: %s", errs.ErrInternalServer, err.Error())
	}

	user.ID = userModel.ID
	user.CreatedAt = userModel.CreatedAt
	user.UpdatedAt = userModel.UpdatedAt

	return user, nil
}

func (r *UserRepository) entityToModel(user *entity.User) *model.User {
	return &model.User{
		ID:             user.ID,
		Identifier:     user.Identifier,
		CredentialHash: user.CredentialHash,
		PlateNumber:    user.PlateNumber,
		Balance:        user.Balance(),
		CreatedAt:      user.CreatedAt,
		UpdatedAt:      user.UpdatedAt,
	}
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	var userModel model.User
	if result := r.db.WithContext(ctx).First(&userModel, id); result.Error != nil {
		return nil, mapError(result.Error, errs.ErrUserNotFound)
	}

	return r.modelToEntity(&userModel)
}

// GetByIdentifier retrieves a user by their unique identifier
func (r *UserRepository) GetByIdentifier(ctx context.Context, identifier string) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).Where("identifier = ?", identifier).First(&userModel)
	if result.Error != nil {
		return nil, mapError(result.Error, errs.ErrUserNotFound)
	}

	return r.modelToEntity(&userModel)
}

// Create persists a new user and assigns its ID
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := r.entityToModel(user)
	userModel.ID = 0 // Let the database assign the ID

	if result := r.db.WithContext(ctx).Create(userModel); result.Error != nil {
		return mapError(result.Error, errs.ErrUserNotFound)
	}

	user.ID = userModel.ID
	return nil
}

// lockForUpdate takes a row lock held until the surrounding transaction ends.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// AdjustBalance atomically applies a balance change in cents. Runs inside a
// database transaction with a row lock so concurrent adjustments on the same
// account serialize.
func (r *UserRepository) AdjustBalance(ctx context.Context, id uint64, deltaInCents int64) (*entity.User, error) {
	var updated *entity.User

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var userModel model.User
		if result := lockForUpdate(tx).First(&userModel, id); result.Error != nil {
			return mapError(result.Error, errs.ErrUserNotFound)
		}

		newBalance := userModel.Balance + deltaInCents
		if newBalance < 0 {
			return errs.ErrInsufficientBalance
		}

		userModel.Balance = newBalance
		userModel.UpdatedAt = r.timeProvider.Now()
		if result := tx.Model(&model.User{}).Where("id = ?", id).
			Updates(map[string]any{"balance": newBalance, "updated_at": userModel.UpdatedAt}); result.Error != nil {
			return mapError(result.Error, errs.ErrUserNotFound)
		}

		var err error
		updated, err = r.modelToEntity(&userModel)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}
