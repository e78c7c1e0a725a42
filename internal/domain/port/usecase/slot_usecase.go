package usecase

import (
	"context"

	"github.com/parkspot-io/parkspot-api/internal/domain/entity"
)

// CreateSlotRequest carries the inputs for publishing a slot
type CreateSlotRequest struct {
	Latitude    float64
	Longitude   float64
	Description string
	OwnerID     *uint64
}

// SlotUseCase defines the slot registry operations
type SlotUseCase interface {
	// CreateSlot publishes a new available slot after validating coordinates
	// and resolving the owner
	CreateSlot(ctx context.Context, req CreateSlotRequest) (*entity.Slot, error)

	// ListNear returns all slots within radiusKm of the given point,
	// regardless of status
	ListNear(ctx context.Context, latitude, longitude, radiusKm float64) ([]*entity.Slot, error)

	// ListAvailableNear returns only the available slots within radiusKm of
	// the given point
	ListAvailableNear(ctx context.Context, latitude, longitude, radiusKm float64) ([]*entity.Slot, error)
}
