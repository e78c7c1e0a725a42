package persistence

import (
	"context"

	"github.com/parkspot-io/parkspot-api/internal/domain/entity"
)

// ReservationRepository defines the operations of the reservation store
type ReservationRepository interface {
	// Create persists a new reservation and assigns its ID
	//
	// Possible errors:
	// - ErrDatabaseConnection: if the store is unreachable
	Create(ctx context.Context, reservation *entity.Reservation) error

	// GetByID retrieves a reservation by ID
	//
	// Possible errors:
	// - ErrReservationNotFound: if no reservation with the given ID exists
	// - ErrDatabaseConnection: if the store is unreachable
	GetByID(ctx context.Context, id uint64) (*entity.Reservation, error)

	// Delete removes a reservation. Cancellation is a hard delete; the
	// payment record stays in the transaction log.
	//
	// Possible errors:
	// - ErrReservationNotFound: if no reservation with the given ID exists
	// - ErrDatabaseConnection: if the store is unreachable
	Delete(ctx context.Context, id uint64) error
}
