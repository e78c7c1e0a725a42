package entity

import (
	"time"

	errs "github.com/parkspot-io/parkspot-api/internal/domain/error"
	coreport "github.com/parkspot-io/parkspot-api/internal/domain/port/core"
)

// Reservation is an active binding of one user to one slot. It is removed on
// cancellation; the payment record survives in the transaction log.
type Reservation struct {
	ID        uint64    // Unique identifier for the reservation
	UserID    uint64    // Reserving user
	SlotID    uint64    // Reserved slot
	CreatedAt time.Time // When the reservation was made
}

// NewReservation creates a new reservation. The ID is assigned later by the
// repository.
func NewReservation(userID, slotID uint64, timeProvider coreport.TimeProvider) (*Reservation, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if slotID == 0 {
		return nil, errs.ErrSlotNotFound
	}

	return &Reservation{
		UserID:    userID,
		SlotID:    slotID,
		CreatedAt: timeProvider.Now(),
	}, nil
}
