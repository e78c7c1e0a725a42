package entity

import (
	"fmt"
	"time"

	errs "github.com/parkspot-io/parkspot-api/internal/domain/error"
	coreport "github.com/parkspot-io/parkspot-api/internal/domain/port/core"
)

// Transaction is an immutable record of a completed reservation payment.
// The charged amount always equals the application fee plus the owner credit;
// the application fee is retained by the platform and not credited to any
// account. Transactions are append-only and survive cancellation.
type Transaction struct {
	ID                    uint64    // Unique identifier assigned by the log
	Reference             string    // Stable external reference (UUID)
	UserID                uint64    // Paying user
	SlotID                uint64    // Reserved slot
	AmountInCents         int64     // Total amount charged
	ApplicationFeeInCents int64     // Portion retained by the platform
	OwnerCreditInCents    int64     // Portion credited to the slot owner
	CreatedAt             time.Time // When the payment completed
}

// NewTransaction creates a payment record and enforces the fee split invariant
func NewTransaction(
	reference string,
	userID uint64,
	slotID uint64,
	amountInCents int64,
	applicationFeeInCents int64,
	ownerCreditInCents int64,
	timeProvider coreport.TimeProvider,
) (*Transaction, error) {
	if reference == "" {
		return nil, fmt.Errorf("%w: empty transaction reference", errs.ErrInvalidRequest)
	}
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if amountInCents < 0 || applicationFeeInCents < 0 || ownerCreditInCents < 0 {
		return nil, errs.ErrNegativeAmount
	}
	if amountInCents != applicationFeeInCents+ownerCreditInCents {
		return nil, fmt.Errorf("%w: fee split %d + %d does not add up to amount %d",
			errs.ErrInternalServer, applicationFeeInCents, ownerCreditInCents, amountInCents)
	}

	return &Transaction{
		Reference:             reference,
		UserID:                userID,
		SlotID:                slotID,
		AmountInCents:         amountInCents,
		ApplicationFeeInCents: applicationFeeInCents,
		OwnerCreditInCents:    ownerCreditInCents,
		CreatedAt:             timeProvider.Now(),
	}, nil
}

// Amount returns the total charged amount as a decimal string
func (t *Transaction) Amount() string {
	return FormatCents(t.AmountInCents)
}

// ApplicationFee returns the platform fee as a decimal string
func (t *Transaction) ApplicationFee() string {
	return FormatCents(t.ApplicationFeeInCents)
}

// OwnerCredit returns the owner credit as a decimal string
func (t *Transaction) OwnerCredit() string {
	return FormatCents(t.OwnerCreditInCents)
}
