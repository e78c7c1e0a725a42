package reservation

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkspot-io/parkspot-api/internal/domain/entity"
	errs "github.com/parkspot-io/parkspot-api/internal/domain/error"
	coreport "github.com/parkspot-io/parkspot-api/internal/domain/port/core"
	"github.com/parkspot-io/parkspot-api/internal/domain/port/usecase"
	"github.com/parkspot-io/parkspot-api/internal/infrastructure/adapter/logger"
	"github.com/parkspot-io/parkspot-api/internal/infrastructure/adapter/memory"
	"github.com/parkspot-io/parkspot-api/mocks/port/core"
)

// engineFixture wires the engine against real in-memory stores so the tests
// exercise the same atomicity guarantees the running service relies on.
type engineFixture struct {
	engine          usecase.ReservationUseCase
	userRepo        *memory.UserRepository
	slotRepo        *memory.SlotRepository
	reservationRepo *memory.ReservationRepository
	transactionRepo *memory.TransactionRepository
	timeProvider    coreport.TimeProvider
}

func newEngineFixture(t *testing.T) *engineFixture {
	t.Helper()

	tp := new(core.MockTimeProvider)
	tp.On("Now").Return(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	userRepo := memory.NewUserRepository(tp)
	slotRepo := memory.NewSlotRepository(tp)
	reservationRepo := memory.NewReservationRepository()
	transactionRepo := memory.NewTransactionRepository()

	engine := NewEngine(
		userRepo,
		slotRepo,
		reservationRepo,
		transactionRepo,
		tp,
		logger.NewNoopLogger(),
		FeePolicy{AmountInCents: 200, ApplicationFeeInCents: 100},
	)

	return &engineFixture{
		engine:          engine,
		userRepo:        userRepo,
		slotRepo:        slotRepo,
		reservationRepo: reservationRepo,
		transactionRepo: transactionRepo,
		timeProvider:    tp,
	}
}

func (f *engineFixture) createUser(t *testing.T, identifier, balance string) *entity.User {
	t.Helper()

	user, err := entity.NewUser(identifier, "$2a$10$hash", "AB-123-CD", balance, f.timeProvider)
	require.NoError(t, err)
	require.NoError(t, f.userRepo.Create(context.Background(), user))
	return user
}

func (f *engineFixture) createSlot(t *testing.T, ownerID *uint64) *entity.Slot {
	t.Helper()

	slot, err := entity.NewSlot(48.8566, 2.3522, "test slot", ownerID, f.timeProvider)
	require.NoError(t, err)
	require.NoError(t, f.slotRepo.Create(context.Background(), slot))
	return slot
}

func (f *engineFixture) balanceOf(t *testing.T, userID uint64) string {
	t.Helper()

	user, err := f.userRepo.GetByID(context.Background(), userID)
	require.NoError(t, err)
	return user.FormattedBalance()
}

func TestEngine_Reserve(t *testing.T) {
	t.Run("charges the driver and credits the owner", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		f := newEngineFixture(t)

		driver := f.createUser(t, "driver@example.com", "10.00")
		owner := f.createUser(t, "owner@example.com", "10.00")
		slot := f.createSlot(t, &owner.ID)

		// Act
		result, err := f.engine.Reserve(ctx, driver.ID, slot.ID)

		// Assert
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, driver.ID, result.Reservation.UserID)
		assert.Equal(t, slot.ID, result.Reservation.SlotID)
		assert.NotZero(t, result.Reservation.ID)

		assert.Equal(t, "8.00", f.balanceOf(t, driver.ID))
		assert.Equal(t, "11.00", f.balanceOf(t, owner.ID))

		updatedSlot, err := f.slotRepo.GetByID(ctx, slot.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.StatusReserved, updatedSlot.Status)

		transactions, err := f.transactionRepo.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, transactions, 1)
		assert.Equal(t, "2.00", transactions[0].Amount())
		assert.Equal(t, "1.00", transactions[0].ApplicationFee())
		assert.Equal(t, "1.00", transactions[0].OwnerCredit())
		assert.NotEmpty(t, transactions[0].Reference)
	})

	t.Run("keeps the whole fee when the slot has no owner", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		f := newEngineFixture(t)

		driver := f.createUser(t, "driver@example.com", "10.00")
		slot := f.createSlot(t, nil)

		// Act
		_, err := f.engine.Reserve(ctx, driver.ID, slot.ID)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "8.00", f.balanceOf(t, driver.ID))
	})

	t.Run("rejects a driver who cannot pay and mutates nothing", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		f := newEngineFixture(t)

		driver := f.createUser(t, "driver@example.com", "1.00")
		owner := f.createUser(t, "owner@example.com", "10.00")
		slot := f.createSlot(t, &owner.ID)

		// Act
		result, err := f.engine.Reserve(ctx, driver.ID, slot.ID)

		// Assert
		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)

		var typed *errs.InsufficientBalanceError
		require.ErrorAs(t, err, &typed)
		assert.Equal(t, "2.00", typed.Amount)
		assert.Equal(t, "1.00", typed.CurrBalance)

		// No state was touched
		assert.Equal(t, "1.00", f.balanceOf(t, driver.ID))
		assert.Equal(t, "10.00", f.balanceOf(t, owner.ID))

		updatedSlot, err := f.slotRepo.GetByID(ctx, slot.ID)
		require.NoError(t, err)
		assert.True(t, updatedSlot.IsAvailable())

		transactions, err := f.transactionRepo.ListAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, transactions)
	})

	t.Run("rejects a second reservation of the same slot", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		f := newEngineFixture(t)

		first := f.createUser(t, "first@example.com", "10.00")
		second := f.createUser(t, "second@example.com", "10.00")
		slot := f.createSlot(t, nil)

		_, err := f.engine.Reserve(ctx, first.ID, slot.ID)
		require.NoError(t, err)

		// Act
		result, err := f.engine.Reserve(ctx, second.ID, slot.ID)

		// Assert
		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrSlotAlreadyReserved)

		// The losing driver was not charged
		assert.Equal(t, "10.00", f.balanceOf(t, second.ID))

		transactions, err := f.transactionRepo.ListAll(ctx)
		require.NoError(t, err)
		assert.Len(t, transactions, 1)
	})

	t.Run("rejects unknown users and slots", func(t *testing.T) {
		ctx := context.Background()
		f := newEngineFixture(t)

		driver := f.createUser(t, "driver@example.com", "10.00")
		slot := f.createSlot(t, nil)

		_, err := f.engine.Reserve(ctx, 999, slot.ID)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)

		_, err = f.engine.Reserve(ctx, driver.ID, 999)
		assert.ErrorIs(t, err, errs.ErrSlotNotFound)

		_, err = f.engine.Reserve(ctx, 0, slot.ID)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})
}

func TestEngine_Cancel(t *testing.T) {
	t.Run("releases the slot without refunding", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		f := newEngineFixture(t)

		driver := f.createUser(t, "driver@example.com", "10.00")
		slot := f.createSlot(t, nil)

		result, err := f.engine.Reserve(ctx, driver.ID, slot.ID)
		require.NoError(t, err)

		// Act
		err = f.engine.Cancel(ctx, result.Reservation.ID)

		// Assert
		require.NoError(t, err)

		updatedSlot, err := f.slotRepo.GetByID(ctx, slot.ID)
		require.NoError(t, err)
		assert.True(t, updatedSlot.IsAvailable())

		_, err = f.reservationRepo.GetByID(ctx, result.Reservation.ID)
		assert.ErrorIs(t, err, errs.ErrReservationNotFound)

		// No refund, and the payment record survives
		assert.Equal(t, "8.00", f.balanceOf(t, driver.ID))

		transactions, err := f.transactionRepo.ListAll(ctx)
		require.NoError(t, err)
		assert.Len(t, transactions, 1)
	})

	t.Run("fails on unknown reservation", func(t *testing.T) {
		ctx := context.Background()
		f := newEngineFixture(t)

		err := f.engine.Cancel(ctx, 999)
		assert.ErrorIs(t, err, errs.ErrReservationNotFound)
	})

	t.Run("released slot can be reserved again", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		f := newEngineFixture(t)

		driver := f.createUser(t, "driver@example.com", "10.00")
		slot := f.createSlot(t, nil)

		first, err := f.engine.Reserve(ctx, driver.ID, slot.ID)
		require.NoError(t, err)
		require.NoError(t, f.engine.Cancel(ctx, first.Reservation.ID))

		// Act
		second, err := f.engine.Reserve(ctx, driver.ID, slot.ID)

		// Assert
		require.NoError(t, err)
		assert.NotEqual(t, first.Reservation.ID, second.Reservation.ID)
		assert.Equal(t, "6.00", f.balanceOf(t, driver.ID))

		transactions, err := f.transactionRepo.ListAll(ctx)
		require.NoError(t, err)
		assert.Len(t, transactions, 2)
	})

	t.Run("stale cancel does not release a slot re-reserved by someone else", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		f := newEngineFixture(t)

		first := f.createUser(t, "first@example.com", "10.00")
		second := f.createUser(t, "second@example.com", "10.00")
		slot := f.createSlot(t, nil)

		result, err := f.engine.Reserve(ctx, first.ID, slot.ID)
		require.NoError(t, err)

		// The stale cancel looks up its reservation, then a concurrent cancel
		// and a fresh reservation by another user both complete before it
		// resumes.
		var secondReservationID uint64
		staleRepo := &staleReservationRepo{ReservationRepository: f.reservationRepo}
		staleRepo.interleave = func() {
			require.NoError(t, f.engine.Cancel(ctx, result.Reservation.ID))
			fresh, err := f.engine.Reserve(ctx, second.ID, slot.ID)
			require.NoError(t, err)
			secondReservationID = fresh.Reservation.ID
		}

		staleEngine := NewEngine(
			f.userRepo,
			f.slotRepo,
			staleRepo,
			f.transactionRepo,
			f.timeProvider,
			logger.NewNoopLogger(),
			FeePolicy{AmountInCents: 200, ApplicationFeeInCents: 100},
		)

		// Act
		err = staleEngine.Cancel(ctx, result.Reservation.ID)

		// Assert
		assert.ErrorIs(t, err, errs.ErrReservationNotFound)

		updatedSlot, err := f.slotRepo.GetByID(ctx, slot.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.StatusReserved, updatedSlot.Status)

		_, err = f.reservationRepo.GetByID(ctx, secondReservationID)
		assert.NoError(t, err)
	})
}

// staleReservationRepo pauses the first GetByID so racing operations can run
// between a cancel's lookup and its slot lock.
type staleReservationRepo struct {
	*memory.ReservationRepository
	interleave func()
	once       sync.Once
}

func (r *staleReservationRepo) GetByID(ctx context.Context, id uint64) (*entity.Reservation, error) {
	reservation, err := r.ReservationRepository.GetByID(ctx, id)
	r.once.Do(r.interleave)
	return reservation, err
}

func TestEngine_ConcurrentReserve(t *testing.T) {
	t.Run("only one of many concurrent attempts wins a slot", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		f := newEngineFixture(t)

		const drivers = 32

		slot := f.createSlot(t, nil)
		userIDs := make([]uint64, drivers)
		for i := range userIDs {
			user := f.createUser(t, fmt.Sprintf("driver%d@example.com", i), "10.00")
			userIDs[i] = user.ID
		}

		// Act: all drivers race for the same slot
		var wg sync.WaitGroup
		errored := make([]error, drivers)
		for i := 0; i < drivers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errored[i] = f.engine.Reserve(ctx, userIDs[i], slot.ID)
			}(i)
		}
		wg.Wait()

		// Assert: exactly one winner, everyone else sees the conflict
		winners := 0
		for _, err := range errored {
			if err == nil {
				winners++
			} else {
				assert.ErrorIs(t, err, errs.ErrSlotAlreadyReserved)
			}
		}
		assert.Equal(t, 1, winners)

		// Exactly one driver was charged
		charged := 0
		for _, id := range userIDs {
			switch f.balanceOf(t, id) {
			case "8.00":
				charged++
			case "10.00":
			default:
				t.Fatalf("unexpected balance for user %d", id)
			}
		}
		assert.Equal(t, 1, charged)

		transactions, err := f.transactionRepo.ListAll(ctx)
		require.NoError(t, err)
		assert.Len(t, transactions, 1)
	})

	t.Run("concurrent reservations on distinct slots all succeed", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		f := newEngineFixture(t)

		const pairs = 16

		userIDs := make([]uint64, pairs)
		slotIDs := make([]uint64, pairs)
		for i := 0; i < pairs; i++ {
			user := f.createUser(t, fmt.Sprintf("driver%d@example.com", i), "10.00")
			userIDs[i] = user.ID
			slotIDs[i] = f.createSlot(t, nil).ID
		}

		// Act
		var wg sync.WaitGroup
		errored := make([]error, pairs)
		for i := 0; i < pairs; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errored[i] = f.engine.Reserve(ctx, userIDs[i], slotIDs[i])
			}(i)
		}
		wg.Wait()

		// Assert
		for i, err := range errored {
			assert.NoError(t, err, "pair %d", i)
		}

		transactions, err := f.transactionRepo.ListAll(ctx)
		require.NoError(t, err)
		assert.Len(t, transactions, pairs)
	})
}

func TestEngine_ListTransactions(t *testing.T) {
	t.Run("returns payments in creation order", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		f := newEngineFixture(t)

		driver := f.createUser(t, "driver@example.com", "10.00")
		slotA := f.createSlot(t, nil)
		slotB := f.createSlot(t, nil)

		first, err := f.engine.Reserve(ctx, driver.ID, slotA.ID)
		require.NoError(t, err)
		second, err := f.engine.Reserve(ctx, driver.ID, slotB.ID)
		require.NoError(t, err)

		// Act
		transactions, err := f.engine.ListTransactions(ctx)

		// Assert
		require.NoError(t, err)
		require.Len(t, transactions, 2)
		assert.Equal(t, first.Transaction.Reference, transactions[0].Reference)
		assert.Equal(t, second.Transaction.Reference, transactions[1].Reference)
		assert.Less(t, transactions[0].ID, transactions[1].ID)
	})

	t.Run("returns empty log for a fresh marketplace", func(t *testing.T) {
		ctx := context.Background()
		f := newEngineFixture(t)

		transactions, err := f.engine.ListTransactions(ctx)
		require.NoError(t, err)
		assert.Empty(t, transactions)
	})
}
