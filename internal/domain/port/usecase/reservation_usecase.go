package usecase

import (
	"context"

	"github.com/parkspot-io/parkspot-api/internal/domain/entity"
)

// ReservationResult bundles the reservation and the payment it produced
type ReservationResult struct {
	Reservation *entity.Reservation
	Transaction *entity.Transaction
}

// ReservationUseCase defines the reserve/cancel workflow
type ReservationUseCase interface {
	// Reserve atomically charges the user, credits the slot owner, flips the
	// slot to reserved and records the payment. A failed reserve leaves all
	// state untouched.
	Reserve(ctx context.Context, userID, slotID uint64) (*ReservationResult, error)

	// Cancel releases the slot back to available and removes the reservation.
	// The payment is not refunded and the transaction log is not touched.
	Cancel(ctx context.Context, reservationID uint64) error

	// ListTransactions returns the full payment log in creation order
	ListTransactions(ctx context.Context) ([]*entity.Transaction, error)
}
