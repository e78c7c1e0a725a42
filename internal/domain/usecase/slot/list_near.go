package slot

import (
	"context"

	"github.com/parkspot-io/parkspot-api/internal/domain/entity"
	errs "github.com/parkspot-io/parkspot-api/internal/domain/error"
	"github.com/parkspot-io/parkspot-api/internal/domain/geo"
)

// ListNear returns all slots within radiusKm of the given point, regardless
// of status
func (s *SlotUseCase) ListNear(ctx context.Context, latitude, longitude, radiusKm float64) ([]*entity.Slot, error) {
	return s.listNear(ctx, latitude, longitude, radiusKm, false)
}

// ListAvailableNear returns only the available slots within radiusKm of the
// given point
func (s *SlotUseCase) ListAvailableNear(ctx context.Context, latitude, longitude, radiusKm float64) ([]*entity.Slot, error) {
	return s.listNear(ctx, latitude, longitude, radiusKm, true)
}

// listNear filters a lock-free snapshot of the registry by great-circle
// distance
func (s *SlotUseCase) listNear(ctx context.Context, latitude, longitude, radiusKm float64, availableOnly bool) ([]*entity.Slot, error) {
	if !geo.ValidLatitude(latitude) || !geo.ValidLongitude(longitude) {
		return nil, errs.ErrInvalidCoordinates
	}

	slots, err := s.slotRepo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list slots", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}

	nearby := make([]*entity.Slot, 0, len(slots))
	for _, slot := range slots {
		if availableOnly && !slot.IsAvailable() {
			continue
		}
		if slot.DistanceFrom(latitude, longitude) <= radiusKm {
			nearby = append(nearby, slot)
		}
	}

	return nearby, nil
}
