package slot

import (
	"context"
	"errors"

	"github.com/parkspot-io/parkspot-api/internal/domain/entity"
	errs "github.com/parkspot-io/parkspot-api/internal/domain/error"
	coreport "github.com/parkspot-io/parkspot-api/internal/domain/port/core"
	"github.com/parkspot-io/parkspot-api/internal/domain/port/persistence"
	"github.com/parkspot-io/parkspot-api/internal/domain/port/usecase"
)

// SlotUseCase implements the slot registry business logic
type SlotUseCase struct {
	slotRepo     persistence.SlotRepository
	userRepo     persistence.UserRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewSlotUseCase creates a new slot use case instance
func NewSlotUseCase(
	slotRepo persistence.SlotRepository,
	userRepo persistence.UserRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.SlotUseCase {
	return &SlotUseCase{
		slotRepo:     slotRepo,
		userRepo:     userRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// CreateSlot publishes a new available slot
func (s *SlotUseCase) CreateSlot(ctx context.Context, req usecase.CreateSlotRequest) (*entity.Slot, error) {
	// Owner must resolve to an existing user when ownership is tracked
	if req.OwnerID != nil {
		if _, err := s.userRepo.GetByID(ctx, *req.OwnerID); err != nil {
			if errors.Is(err, errs.ErrUserNotFound) {
				return nil, errs.ErrOwnerNotFound
			}
			return nil, err
		}
	}

	slot, err := entity.NewSlot(req.Latitude, req.Longitude, req.Description, req.OwnerID, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.slotRepo.Create(ctx, slot); err != nil {
		s.logger.Error("Failed to create slot", map[string]any{
			"latitude":  req.Latitude,
			"longitude": req.Longitude,
			"error":     err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Slot published", map[string]any{
		"slotId":    slot.ID,
		"latitude":  slot.Latitude,
		"longitude": slot.Longitude,
	})

	return slot, nil
}
