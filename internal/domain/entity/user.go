package entity

import (
	"strings"
	"time"

	errs "github.com/parkspot-io/parkspot-api/internal/domain/error"
	coreport "github.com/parkspot-io/parkspot-api/internal/domain/port/core"
)

// User represents a marketplace account. A user can act both as a driver who
// reserves slots and as an owner who publishes them.
type User struct {
	ID             uint64    // Unique identifier for the user
	Identifier     string    // Email or username, unique across the marketplace
	CredentialHash string    // Hashed credential, never exposed through the API
	PlateNumber    string    // Vehicle plate number
	balance        int64     // Balance stored in cents (private)
	CreatedAt      time.Time // When the user was created
	UpdatedAt      time.Time // When the user was last updated
}

// NewUser creates a new user with the given initial balance. The ID is
// assigned later by the repository.
func NewUser(identifier, credentialHash, plateNumber, initialBalance string, timeProvider coreport.TimeProvider) (*User, error) {
	if strings.TrimSpace(identifier) == "" || credentialHash == "" || strings.TrimSpace(plateNumber) == "" {
		return nil, errs.ErrMissingFields
	}

	balanceInCents, err := ParseAmount(initialBalance)
	if err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &User{
		Identifier:     identifier,
		CredentialHash: credentialHash,
		PlateNumber:    plateNumber,
		balance:        balanceInCents,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// Balance returns the current balance in cents (for internal use)
func (u *User) Balance() int64 {
	return u.balance
}

// FormattedBalance returns the balance as a string with 2 decimal places
func (u *User) FormattedBalance() string {
	return FormatCents(u.balance)
}

// SetBalance updates the balance directly (for internal use, like repositories)
func (u *User) SetBalance(balanceInCents int64, timeProvider coreport.TimeProvider) {
	u.balance = balanceInCents
	u.UpdatedAt = timeProvider.Now()
}

// CanPay checks if the user has enough balance for a deduction
func (u *User) CanPay(amountInCents int64) bool {
	return u.balance >= amountInCents
}

// ApplyCredit adds the amount to the balance
func (u *User) ApplyCredit(amountInCents int64, timeProvider coreport.TimeProvider) {
	u.balance += amountInCents
	u.UpdatedAt = timeProvider.Now()
}

// ApplyDebit subtracts the amount from balance if sufficient balance exists.
// Returns ErrInsufficientBalance otherwise; the balance never goes negative.
func (u *User) ApplyDebit(amountInCents int64, timeProvider coreport.TimeProvider) error {
	if u.balance < amountInCents {
		return errs.ErrInsufficientBalance
	}

	u.balance -= amountInCents
	u.UpdatedAt = timeProvider.Now()
	return nil
}
