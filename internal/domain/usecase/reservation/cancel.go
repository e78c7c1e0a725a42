package reservation

import (
	"context"
	"errors"

	errs "github.com/parkspot-io/parkspot-api/internal/domain/error"
)

// Cancel releases the reserved slot back to available and removes the
// reservation record. The payment is intentionally not refunded and the
// transaction log is not touched; cancellation is purely an availability
// rollback.
func (e *Engine) Cancel(ctx context.Context, reservationID uint64) error {
	reservation, err := e.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return err
	}

	unlock := e.lockSlot(reservation.SlotID)
	defer unlock()

	// Re-read under the slot lock. A concurrent cancel may have removed the
	// reservation between the lookup and the lock, in which case the slot may
	// already belong to a newer reservation and must not be touched.
	if _, err := e.reservationRepo.GetByID(ctx, reservationID); err != nil {
		return err
	}

	// Release is a no-op when the slot is already available and cancellation
	// still proceeds if the slot record is gone.
	if err := e.slotRepo.Release(ctx, reservation.SlotID); err != nil && !errors.Is(err, errs.ErrSlotNotFound) {
		return err
	}

	if err := e.reservationRepo.Delete(ctx, reservationID); err != nil {
		return err
	}

	e.logger.Info("Reservation cancelled", map[string]any{
		"reservationId": reservationID,
		"slotId":        reservation.SlotID,
		"userId":        reservation.UserID,
	})

	return nil
}
