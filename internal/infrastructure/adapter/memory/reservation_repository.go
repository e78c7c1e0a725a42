package memory

import (
	"context"
	"sync"

	"github.com/parkspot-io/parkspot-api/internal/domain/entity"
	errs "github.com/parkspot-io/parkspot-api/internal/domain/error"
)

// ReservationRepository is an in-memory, mutex-guarded reservation store.
// IDs are allocated from a monotonic counter and stay unique even after
// cancellation deletes a record.
type ReservationRepository struct {
	mu           sync.RWMutex
	reservations map[uint64]*entity.Reservation
	nextID       uint64
}

// NewReservationRepository creates an empty in-memory reservation repository
func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{
		reservations: make(map[uint64]*entity.Reservation),
	}
}

// Create persists a new reservation and assigns its ID
func (r *ReservationRepository) Create(_ context.Context, reservation *entity.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	reservation.ID = r.nextID

	clone := *reservation
	r.reservations[reservation.ID] = &clone

	return nil
}

// GetByID retrieves a reservation by ID
func (r *ReservationRepository) GetByID(_ context.Context, id uint64) (*entity.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reservation, ok := r.reservations[id]
	if !ok {
		return nil, errs.ErrReservationNotFound
	}

	clone := *reservation
	return &clone, nil
}

// Delete removes a reservation
func (r *ReservationRepository) Delete(_ context.Context, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.reservations[id]; !ok {
		return errs.ErrReservationNotFound
	}

	delete(r.reservations, id)
	return nil
}
