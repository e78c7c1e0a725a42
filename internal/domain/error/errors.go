package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest      = 4000
	CodeInsufficientBalance = 4001
	CodeInvalidAmount       = 4002
	CodeInvalidUserID       = 4003
	CodeInvalidCoordinates  = 4004
	CodeMissingFields       = 4005
	CodeUserNotFound        = 4040
	CodeSlotNotFound        = 4041
	CodeOwnerNotFound       = 4042
	CodeReservationNotFound = 4043
	CodeDuplicateUser       = 4090
	CodeSlotReserved        = 4091

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrMissingFields is returned when a required request field is absent or empty
	ErrMissingFields = errors.New("missing required fields")

	// ErrInvalidCoordinates is returned when latitude or longitude is out of range
	ErrInvalidCoordinates = errors.New("coordinates out of range")

	// ErrInvalidAmount is returned when a monetary amount has an invalid format
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrNegativeAmount is returned when a monetary amount is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrInsufficientBalance is returned when a user cannot cover the reservation fee
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrOwnerNotFound is returned when a slot references a non-existent owner
	ErrOwnerNotFound = errors.New("owner not found")

	// ErrSlotNotFound is returned when the requested parking slot doesn't exist
	ErrSlotNotFound = errors.New("parking slot not found")

	// ErrReservationNotFound is returned when the requested reservation doesn't exist
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrSlotAlreadyReserved is returned when a slot is not available for reservation
	ErrSlotAlreadyReserved = errors.New("parking slot already reserved")

	// ErrDuplicateUser is returned when registering an identifier that already exists
	ErrDuplicateUser = errors.New("user already exists")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem reaching the database
	ErrDatabaseConnection = errors.New("database connection error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNegativeAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrInvalidCoordinates):
		return CodeInvalidCoordinates
	case errors.Is(err, ErrMissingFields):
		return CodeMissingFields
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrOwnerNotFound):
		return CodeOwnerNotFound
	case errors.Is(err, ErrSlotNotFound):
		return CodeSlotNotFound
	case errors.Is(err, ErrReservationNotFound):
		return CodeReservationNotFound
	case errors.Is(err, ErrDuplicateUser):
		return CodeDuplicateUser
	case errors.Is(err, ErrSlotAlreadyReserved):
		return CodeSlotReserved
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	default:
		return CodeInternalServer
	}
}

// InsufficientBalanceError provides detailed error information for insufficient balance
type InsufficientBalanceError struct {
	UserID      uint64
	Amount      string
	CurrBalance string
}

// Error implements the error interface
func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance for user %d: required %s, available %s",
		e.UserID, e.Amount, e.CurrBalance)
}

// Is checks if the target error is an ErrInsufficientBalance
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientBalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "insufficient_balance",
		"user_id":         e.UserID,
		"amount":          e.Amount,
		"current_balance": e.CurrBalance,
		"error_code":      CodeInsufficientBalance,
	}
}

// NewInsufficientBalanceError creates a new detailed insufficient balance error
func NewInsufficientBalanceError(userID uint64, amount, currentBalance string) error {
	return &InsufficientBalanceError{
		UserID:      userID,
		Amount:      amount,
		CurrBalance: currentBalance,
	}
}

// ReservationError represents an error raised while reserving or cancelling a slot
type ReservationError struct {
	UserID uint64
	SlotID uint64
	Reason string
	Err    error
}

// Error implements the error interface for ReservationError
func (e *ReservationError) Error() string {
	return fmt.Sprintf("reservation failed for slot %d (user: %d): %s - %v",
		e.SlotID, e.UserID, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *ReservationError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *ReservationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "reservation_error",
		"user_id":    e.UserID,
		"slot_id":    e.SlotID,
		"reason":     e.Reason,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewReservationError creates a detailed reservation error
func NewReservationError(userID, slotID uint64, reason string, err error) error {
	return &ReservationError{
		UserID: userID,
		SlotID: slotID,
		Reason: reason,
		Err:    err,
	}
}

// IsInsufficientBalanceError checks if the error is related to insufficient balance
func IsInsufficientBalanceError(err error) bool {
	return errors.Is(err, ErrInsufficientBalance)
}

// IsConflictError checks if the error should surface as an HTTP conflict
func IsConflictError(err error) bool {
	return errors.Is(err, ErrDuplicateUser) || errors.Is(err, ErrSlotAlreadyReserved)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrOwnerNotFound) ||
		errors.Is(err, ErrSlotNotFound) ||
		errors.Is(err, ErrReservationNotFound)
}

// IsValidationError checks if the error stems from malformed or missing input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidRequest) ||
		errors.Is(err, ErrMissingFields) ||
		errors.Is(err, ErrInvalidCoordinates) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrNegativeAmount) ||
		errors.Is(err, ErrInvalidUserID)
}
