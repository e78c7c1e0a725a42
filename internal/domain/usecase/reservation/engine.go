package reservation

import (
	"context"
	"sync"

	"github.com/parkspot-io/parkspot-api/internal/domain/entity"
	coreport "github.com/parkspot-io/parkspot-api/internal/domain/port/core"
	"github.com/parkspot-io/parkspot-api/internal/domain/port/persistence"
	"github.com/parkspot-io/parkspot-api/internal/domain/port/usecase"
)

// FeePolicy describes how a reservation fee is split. The application fee is
// retained by the platform; the remainder is credited to the slot owner.
type FeePolicy struct {
	AmountInCents         int64
	ApplicationFeeInCents int64
}

// OwnerCreditInCents returns the portion of the fee credited to the slot owner
func (p FeePolicy) OwnerCreditInCents() int64 {
	return p.AmountInCents - p.ApplicationFeeInCents
}

// Engine orchestrates the reserve/cancel workflow across the account ledger,
// the slot registry and the transaction log. All balance and status mutations
// for one slot happen under that slot's mutex so that concurrent reservation
// attempts serialize instead of double-booking.
type Engine struct {
	userRepo        persistence.UserRepository
	slotRepo        persistence.SlotRepository
	reservationRepo persistence.ReservationRepository
	transactionRepo persistence.TransactionRepository
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	fee             FeePolicy

	// Per-slot mutexes, created on first use
	slotLocks sync.Map // map[uint64]*sync.Mutex
}

// NewEngine creates a new reservation engine
func NewEngine(
	userRepo persistence.UserRepository,
	slotRepo persistence.SlotRepository,
	reservationRepo persistence.ReservationRepository,
	transactionRepo persistence.TransactionRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	fee FeePolicy,
) usecase.ReservationUseCase {
	if fee.AmountInCents < fee.ApplicationFeeInCents {
		panic("reservation fee cannot be smaller than the application fee")
	}

	return &Engine{
		userRepo:        userRepo,
		slotRepo:        slotRepo,
		reservationRepo: reservationRepo,
		transactionRepo: transactionRepo,
		timeProvider:    timeProvider,
		logger:          logger,
		fee:             fee,
	}
}

// lockSlot acquires the mutex guarding the given slot and returns its unlock
// function. Lock scope is short: in-memory state mutation only, no I/O waits.
func (e *Engine) lockSlot(slotID uint64) func() {
	muIface, _ := e.slotLocks.LoadOrStore(slotID, &sync.Mutex{})
	mu := muIface.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// ListTransactions returns the full payment log in creation order
func (e *Engine) ListTransactions(ctx context.Context) ([]*entity.Transaction, error) {
	return e.transactionRepo.ListAll(ctx)
}
