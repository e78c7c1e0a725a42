package repository

import (
	"context"

	"github.com/parkspot-io/parkspot-api/internal/domain/entity"
	errs "github.com/parkspot-io/parkspot-api/internal/domain/error"
	coreport "github.com/parkspot-io/parkspot-api/internal/domain/port/core"
	"github.com/parkspot-io/parkspot-api/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// SlotRepository implements the SlotRepository interface using GORM
type SlotRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewSlotRepository creates a new SlotRepository instance
func NewSlotRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *SlotRepository {
	return &SlotRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

func modelToSlot(slotModel *model.Slot) *entity.Slot {
	return &entity.Slot{
		ID:          slotModel.ID,
		Latitude:    slotModel.Latitude,
		Longitude:   slotModel.Longitude,
		Description: slotModel.Description,
		Status:      entity.SlotStatus(slotModel.Status),
		OwnerID:     slotModel.OwnerID,
		CreatedAt:   slotModel.CreatedAt,
		UpdatedAt:   slotModel.UpdatedAt,
	}
}

func slotToModel(slot *entity.Slot) *model.Slot {
	return &model.Slot{
		ID:          slot.ID,
		Latitude:    slot.Latitude,
		Longitude:   slot.Longitude,
		Description: slot.Description,
		Status:      string(slot.Status),
		OwnerID:     slot.OwnerID,
		CreatedAt:   slot.CreatedAt,
		UpdatedAt:   slot.UpdatedAt,
	}
}

// Create persists a new slot and assigns its ID
func (r *SlotRepository) Create(ctx context.Context, slot *entity.Slot) error {
	slotModel := slotToModel(slot)
	slotModel.ID = 0 // Let the database assign the ID

	if result := r.db.WithContext(ctx).Create(slotModel); result.Error != nil {
		return mapError(result.Error, errs.ErrSlotNotFound)
	}

	slot.ID = slotModel.ID
	return nil
}

// GetByID retrieves a slot by ID
func (r *SlotRepository) GetByID(ctx context.Context, id uint64) (*entity.Slot, error) {
	var slotModel model.Slot
	if result := r.db.WithContext(ctx).First(&slotModel, id); result.Error != nil {
		return nil, mapError(result.Error, errs.ErrSlotNotFound)
	}

	return modelToSlot(&slotModel), nil
}

// List returns all slots in creation order
func (r *SlotRepository) List(ctx context.Context) ([]*entity.Slot, error) {
	var slotModels []model.Slot
	if result := r.db.WithContext(ctx).Order("id").Find(&slotModels); result.Error != nil {
		return nil, mapError(result.Error, errs.ErrSlotNotFound)
	}

	slots := make([]*entity.Slot, 0, len(slotModels))
	for i := range slotModels {
		slots = append(slots, modelToSlot(&slotModels[i]))
	}

	return slots, nil
}

// TryReserve atomically transitions a slot from available to reserved. The
// conditional UPDATE with a status guard is the atomic check-and-set: when
// zero rows are affected the slot is either missing or already reserved.
func (r *SlotRepository) TryReserve(ctx context.Context, id uint64) (*entity.Slot, error) {
	now := r.timeProvider.Now()
	result := r.db.WithContext(ctx).Model(&model.Slot{}).
		Where("id = ? AND status = ?", id, string(entity.StatusAvailable)).
		Updates(map[string]any{"status": string(entity.StatusReserved), "updated_at": now})
	if result.Error != nil {
		return nil, mapError(result.Error, errs.ErrSlotNotFound)
	}

	if result.RowsAffected == 0 {
		// Distinguish a missing slot from a reserved one
		if _, err := r.GetByID(ctx, id); err != nil {
			return nil, err
		}
		return nil, errs.ErrSlotAlreadyReserved
	}

	return r.GetByID(ctx, id)
}

// Release transitions a slot back to available. Idempotent.
func (r *SlotRepository) Release(ctx context.Context, id uint64) error {
	now := r.timeProvider.Now()
	result := r.db.WithContext(ctx).Model(&model.Slot{}).
		Where("id = ? AND status = ?", id, string(entity.StatusReserved)).
		Updates(map[string]any{"status": string(entity.StatusAvailable), "updated_at": now})
	if result.Error != nil {
		return mapError(result.Error, errs.ErrSlotNotFound)
	}

	if result.RowsAffected == 0 {
		// Already available is fine, missing slot is not
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
	}

	return nil
}
