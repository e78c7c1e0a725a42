package slot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/parkspot-io/parkspot-api/internal/domain/entity"
	errs "github.com/parkspot-io/parkspot-api/internal/domain/error"
	domainusecase "github.com/parkspot-io/parkspot-api/internal/domain/port/usecase"
	"github.com/parkspot-io/parkspot-api/mocks/port/core"
	"github.com/parkspot-io/parkspot-api/mocks/port/persistence"
)

func newFixedTimeProvider() *core.MockTimeProvider {
	tp := new(core.MockTimeProvider)
	tp.On("Now").Return(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	return tp
}

func TestSlotUseCase_CreateSlot(t *testing.T) {
	t.Run("should publish slot with owner", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		ownerID := uint64(7)

		mockSlotRepo := new(persistence.MockSlotRepository)
		mockUserRepo := new(persistence.MockUserRepository)
		mockLogger := new(core.MockLogger)

		mockUserRepo.On("GetByID", ctx, ownerID).Return(&entity.User{ID: ownerID}, nil)
		mockSlotRepo.On("Create", ctx, mock.AnythingOfType("*entity.Slot")).Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Slot).ID = 1
		}).Return(nil)
		mockLogger.On("Info", "Slot published", mock.Anything).Return()

		useCase := NewSlotUseCase(mockSlotRepo, mockUserRepo, newFixedTimeProvider(), mockLogger)

		// Act
		slot, err := useCase.CreateSlot(ctx, domainusecase.CreateSlotRequest{
			Latitude:    48.8566,
			Longitude:   2.3522,
			Description: "Covered spot near the river",
			OwnerID:     &ownerID,
		})

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, uint64(1), slot.ID)
		assert.Equal(t, entity.StatusAvailable, slot.Status)
		assert.Equal(t, ownerID, *slot.OwnerID)

		mockSlotRepo.AssertExpectations(t)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("should reject unknown owner", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		ownerID := uint64(999)

		mockSlotRepo := new(persistence.MockSlotRepository)
		mockUserRepo := new(persistence.MockUserRepository)
		mockLogger := new(core.MockLogger)

		mockUserRepo.On("GetByID", ctx, ownerID).Return(nil, errs.ErrUserNotFound)

		useCase := NewSlotUseCase(mockSlotRepo, mockUserRepo, newFixedTimeProvider(), mockLogger)

		// Act
		slot, err := useCase.CreateSlot(ctx, domainusecase.CreateSlotRequest{
			Latitude:  48.8566,
			Longitude: 2.3522,
			OwnerID:   &ownerID,
		})

		// Assert
		assert.Nil(t, slot)
		assert.ErrorIs(t, err, errs.ErrOwnerNotFound)

		mockSlotRepo.AssertNotCalled(t, "Create")
	})

	t.Run("should reject out of range coordinates", func(t *testing.T) {
		// Arrange
		ctx := context.Background()

		mockSlotRepo := new(persistence.MockSlotRepository)
		mockUserRepo := new(persistence.MockUserRepository)
		mockLogger := new(core.MockLogger)

		useCase := NewSlotUseCase(mockSlotRepo, mockUserRepo, newFixedTimeProvider(), mockLogger)

		// Act
		slot, err := useCase.CreateSlot(ctx, domainusecase.CreateSlotRequest{
			Latitude:  91,
			Longitude: 0,
		})

		// Assert
		assert.Nil(t, slot)
		assert.ErrorIs(t, err, errs.ErrInvalidCoordinates)

		mockSlotRepo.AssertNotCalled(t, "Create")
	})
}

func TestSlotUseCase_ListNear(t *testing.T) {
	// Slots around the center of Paris. The Versailles slot sits roughly
	// 17 km away from the center and must fall outside a 5 km radius.
	newRegistry := func(t *testing.T, tp *core.MockTimeProvider) []*entity.Slot {
		t.Helper()

		center, err := entity.NewSlot(48.8566, 2.3522, "city center", nil, tp)
		assert.NoError(t, err)
		center.ID = 1

		nearby, err := entity.NewSlot(48.8606, 2.3376, "louvre", nil, tp)
		assert.NoError(t, err)
		nearby.ID = 2

		far, err := entity.NewSlot(48.8049, 2.1204, "versailles", nil, tp)
		assert.NoError(t, err)
		far.ID = 3

		reserved, err := entity.NewSlot(48.8530, 2.3499, "notre dame", nil, tp)
		assert.NoError(t, err)
		reserved.ID = 4
		assert.NoError(t, reserved.Reserve(tp))

		return []*entity.Slot{center, nearby, far, reserved}
	}

	t.Run("should return all slots within the radius", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		tp := newFixedTimeProvider()

		mockSlotRepo := new(persistence.MockSlotRepository)
		mockUserRepo := new(persistence.MockUserRepository)
		mockLogger := new(core.MockLogger)

		mockSlotRepo.On("List", ctx).Return(newRegistry(t, tp), nil)

		useCase := NewSlotUseCase(mockSlotRepo, mockUserRepo, tp, mockLogger)

		// Act
		slots, err := useCase.ListNear(ctx, 48.8566, 2.3522, 5.0)

		// Assert
		assert.NoError(t, err)
		assert.Len(t, slots, 3)
		ids := []uint64{slots[0].ID, slots[1].ID, slots[2].ID}
		assert.Equal(t, []uint64{1, 2, 4}, ids)
	})

	t.Run("should filter reserved slots when listing available", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		tp := newFixedTimeProvider()

		mockSlotRepo := new(persistence.MockSlotRepository)
		mockUserRepo := new(persistence.MockUserRepository)
		mockLogger := new(core.MockLogger)

		mockSlotRepo.On("List", ctx).Return(newRegistry(t, tp), nil)

		useCase := NewSlotUseCase(mockSlotRepo, mockUserRepo, tp, mockLogger)

		// Act
		slots, err := useCase.ListAvailableNear(ctx, 48.8566, 2.3522, 5.0)

		// Assert
		assert.NoError(t, err)
		assert.Len(t, slots, 2)
		for _, slot := range slots {
			assert.True(t, slot.IsAvailable())
		}
	})

	t.Run("should reject invalid query coordinates", func(t *testing.T) {
		// Arrange
		ctx := context.Background()

		mockSlotRepo := new(persistence.MockSlotRepository)
		mockUserRepo := new(persistence.MockUserRepository)
		mockLogger := new(core.MockLogger)

		useCase := NewSlotUseCase(mockSlotRepo, mockUserRepo, newFixedTimeProvider(), mockLogger)

		// Act
		slots, err := useCase.ListNear(ctx, -95, 0, 5.0)

		// Assert
		assert.Nil(t, slots)
		assert.ErrorIs(t, err, errs.ErrInvalidCoordinates)

		mockSlotRepo.AssertNotCalled(t, "List")
	})

	t.Run("should return empty slice when nothing is close", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		tp := newFixedTimeProvider()

		mockSlotRepo := new(persistence.MockSlotRepository)
		mockUserRepo := new(persistence.MockUserRepository)
		mockLogger := new(core.MockLogger)

		mockSlotRepo.On("List", ctx).Return(newRegistry(t, tp), nil)

		useCase := NewSlotUseCase(mockSlotRepo, mockUserRepo, tp, mockLogger)

		// Act: query from London, far from every registered slot
		slots, err := useCase.ListNear(ctx, 51.5074, -0.1278, 5.0)

		// Assert
		assert.NoError(t, err)
		assert.Empty(t, slots)
	})
}
