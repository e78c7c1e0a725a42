package memory

import (
	"context"
	"sync"

	"github.com/parkspot-io/parkspot-api/internal/domain/entity"
	errs "github.com/parkspot-io/parkspot-api/internal/domain/error"
	coreport "github.com/parkspot-io/parkspot-api/internal/domain/port/core"
)

// SlotRepository is an in-memory, mutex-guarded slot registry. TryReserve is a
// single atomic check-and-set under the mutex, so two concurrent reserve
// attempts on the same slot cannot both succeed.
type SlotRepository struct {
	mu           sync.RWMutex
	slots        map[uint64]*entity.Slot
	order        []uint64
	nextID       uint64
	timeProvider coreport.TimeProvider
}

// NewSlotRepository creates an empty in-memory slot repository
func NewSlotRepository(timeProvider coreport.TimeProvider) *SlotRepository {
	return &SlotRepository{
		slots:        make(map[uint64]*entity.Slot),
		timeProvider: timeProvider,
	}
}

// Create persists a new slot and assigns its ID
func (r *SlotRepository) Create(_ context.Context, slot *entity.Slot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	slot.ID = r.nextID

	clone := *slot
	r.slots[slot.ID] = &clone
	r.order = append(r.order, slot.ID)

	return nil
}

// GetByID retrieves a slot by ID
func (r *SlotRepository) GetByID(_ context.Context, id uint64) (*entity.Slot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	slot, ok := r.slots[id]
	if !ok {
		return nil, errs.ErrSlotNotFound
	}

	clone := *slot
	return &clone, nil
}

// List returns a snapshot of all slots in creation order. Callers iterate the
// copy without holding the registry lock.
func (r *SlotRepository) List(_ context.Context) ([]*entity.Slot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]*entity.Slot, 0, len(r.order))
	for _, id := range r.order {
		clone := *r.slots[id]
		snapshot = append(snapshot, &clone)
	}

	return snapshot, nil
}

// TryReserve atomically transitions a slot from available to reserved
func (r *SlotRepository) TryReserve(_ context.Context, id uint64) (*entity.Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	slot, ok := r.slots[id]
	if !ok {
		return nil, errs.ErrSlotNotFound
	}

	if err := slot.Reserve(r.timeProvider); err != nil {
		return nil, err
	}

	clone := *slot
	return &clone, nil
}

// Release transitions a slot back to available. Idempotent.
func (r *SlotRepository) Release(_ context.Context, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	slot, ok := r.slots[id]
	if !ok {
		return errs.ErrSlotNotFound
	}

	slot.Release(r.timeProvider)
	return nil
}
