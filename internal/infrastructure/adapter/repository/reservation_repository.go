package repository

import (
	"context"

	"github.com/parkspot-io/parkspot-api/internal/domain/entity"
	errs "github.com/parkspot-io/parkspot-api/internal/domain/error"
	coreport "github.com/parkspot-io/parkspot-api/internal/domain/port/core"
	"github.com/parkspot-io/parkspot-api/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// ReservationRepository implements the ReservationRepository interface using GORM
type ReservationRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewReservationRepository creates a new ReservationRepository instance
func NewReservationRepository(db *gorm.DB, logger coreport.Logger) *ReservationRepository {
	return &ReservationRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists a new reservation and assigns its ID
func (r *ReservationRepository) Create(ctx context.Context, reservation *entity.Reservation) error {
	reservationModel := &model.Reservation{
		UserID:    reservation.UserID,
		SlotID:    reservation.SlotID,
		CreatedAt: reservation.CreatedAt,
	}

	if result := r.db.WithContext(ctx).Create(reservationModel); result.Error != nil {
		return mapError(result.Error, errs.ErrReservationNotFound)
	}

	reservation.ID = reservationModel.ID
	return nil
}

// GetByID retrieves a reservation by ID
func (r *ReservationRepository) GetByID(ctx context.Context, id uint64) (*entity.Reservation, error) {
	var reservationModel model.Reservation
	if result := r.db.WithContext(ctx).First(&reservationModel, id); result.Error != nil {
		return nil, mapError(result.Error, errs.ErrReservationNotFound)
	}

	return &entity.Reservation{
		ID:        reservationModel.ID,
		UserID:    reservationModel.UserID,
		SlotID:    reservationModel.SlotID,
		CreatedAt: reservationModel.CreatedAt,
	}, nil
}

// Delete removes a reservation
func (r *ReservationRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&model.Reservation{}, id)
	if result.Error != nil {
		return mapError(result.Error, errs.ErrReservationNotFound)
	}
	if result.RowsAffected == 0 {
		return errs.ErrReservationNotFound
	}
	return nil
}
