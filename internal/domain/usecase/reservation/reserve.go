package reservation

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/parkspot-io/parkspot-api/internal/domain/entity"
	errs "github.com/parkspot-io/parkspot-api/internal/domain/error"
	"github.com/parkspot-io/parkspot-api/internal/domain/port/usecase"
)

// Reserve charges the user the reservation fee, credits the slot owner the
// owner portion, flips the slot to reserved, creates the reservation and
// appends a payment record. The whole sequence runs under the slot's mutex
// and every failure path rolls back the mutations made so far, so a failed
// reserve leaves balances and slot status exactly as before the call.
func (e *Engine) Reserve(ctx context.Context, userID, slotID uint64) (*usecase.ReservationResult, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	unlock := e.lockSlot(slotID)
	defer unlock()

	user, err := e.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	slot, err := e.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		return nil, err
	}

	if !slot.IsAvailable() {
		return nil, errs.ErrSlotAlreadyReserved
	}

	// Balance pre-check before any mutation
	if !user.CanPay(e.fee.AmountInCents) {
		return nil, errs.NewInsufficientBalanceError(
			user.ID,
			entity.FormatCents(e.fee.AmountInCents),
			user.FormattedBalance(),
		)
	}

	// Debit the driver
	if _, err := e.userRepo.AdjustBalance(ctx, userID, -e.fee.AmountInCents); err != nil {
		if errors.Is(err, errs.ErrInsufficientBalance) {
			return nil, errs.NewInsufficientBalanceError(
				user.ID,
				entity.FormatCents(e.fee.AmountInCents),
				user.FormattedBalance(),
			)
		}
		return nil, err
	}

	// Credit the owner their portion. The application fee stays with the
	// platform and is not credited to any account.
	ownerCredited := false
	if slot.OwnerID != nil {
		if _, err := e.userRepo.AdjustBalance(ctx, *slot.OwnerID, e.fee.OwnerCreditInCents()); err != nil {
			e.rollback(ctx, userID, slot, false, ownerCredited, nil)
			return nil, errs.NewReservationError(userID, slotID, "owner credit failed", err)
		}
		ownerCredited = true
	}

	// Flip the slot. Cannot race: we hold the slot mutex and checked the
	// status above, but TryReserve still performs its own atomic check-and-set.
	if _, err := e.slotRepo.TryReserve(ctx, slotID); err != nil {
		e.rollback(ctx, userID, slot, false, ownerCredited, nil)
		return nil, err
	}

	reservation, err := entity.NewReservation(userID, slotID, e.timeProvider)
	if err != nil {
		e.rollback(ctx, userID, slot, true, ownerCredited, nil)
		return nil, err
	}
	if err := e.reservationRepo.Create(ctx, reservation); err != nil {
		e.rollback(ctx, userID, slot, true, ownerCredited, nil)
		return nil, errs.NewReservationError(userID, slotID, "reservation create failed", err)
	}

	transaction, err := entity.NewTransaction(
		uuid.NewString(),
		userID,
		slotID,
		e.fee.AmountInCents,
		e.fee.ApplicationFeeInCents,
		e.fee.OwnerCreditInCents(),
		e.timeProvider,
	)
	if err != nil {
		e.rollback(ctx, userID, slot, true, ownerCredited, reservation)
		return nil, err
	}
	if err := e.transactionRepo.Append(ctx, transaction); err != nil {
		e.rollback(ctx, userID, slot, true, ownerCredited, reservation)
		return nil, errs.NewReservationError(userID, slotID, "transaction append failed", err)
	}

	e.logger.Info("Slot reserved", map[string]any{
		"userId":        userID,
		"slotId":        slotID,
		"reservationId": reservation.ID,
		"transactionId": transaction.Reference,
		"amount":        transaction.Amount(),
	})

	return &usecase.ReservationResult{
		Reservation: reservation,
		Transaction: transaction,
	}, nil
}

// rollback undoes the mutations of a partially completed reserve, in reverse
// order. Called with the slot mutex held.
func (e *Engine) rollback(
	ctx context.Context,
	userID uint64,
	slot *entity.Slot,
	slotFlipped bool,
	ownerCredited bool,
	reservation *entity.Reservation,
) {
	if reservation != nil {
		if err := e.reservationRepo.Delete(ctx, reservation.ID); err != nil {
			e.logger.Error("Rollback: failed to delete reservation", map[string]any{
				"reservationId": reservation.ID,
				"error":         err.Error(),
			})
		}
	}

	if slotFlipped {
		if err := e.slotRepo.Release(ctx, slot.ID); err != nil {
			e.logger.Error("Rollback: failed to release slot", map[string]any{
				"slotId": slot.ID,
				"error":  err.Error(),
			})
		}
	}

	if ownerCredited && slot.OwnerID != nil {
		if _, err := e.userRepo.AdjustBalance(ctx, *slot.OwnerID, -e.fee.OwnerCreditInCents()); err != nil {
			e.logger.Error("Rollback: failed to reverse owner credit", map[string]any{
				"ownerId": *slot.OwnerID,
				"error":   err.Error(),
			})
		}
	}

	if _, err := e.userRepo.AdjustBalance(ctx, userID, e.fee.AmountInCents); err != nil {
		e.logger.Error("Rollback: failed to refund debit", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
	}
}
