package apperrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the caller does not own the resource.
var ErrForbidden = errors.New("forbidden")

// Ledger errors. Sizing errors carry numbers, see InsufficientFundsError and InsufficientQuantityError.
var (
	ErrNotHalalApproved     = errors.New("symbol is not halal approved")
	ErrAccountNotFound      = fmt.Errorf("account %w", ErrNotFound)
	ErrHoldingNotFound      = fmt.Errorf("holding %w", ErrNotFound)
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrInsufficientQuantity = errors.New("insufficient quantity")

	// ErrConcurrencyConflict is returned when the store could not commit an atomic unit
	// because of a concurrent write. The order executor retries it.
	ErrConcurrencyConflict = errors.New("concurrent modification conflict")

	// ErrTransientStore means the store is unavailable. Nothing was committed.
	ErrTransientStore = errors.New("store temporarily unavailable")

	ErrPriceUnavailable = errors.New("price unavailable")
)

// AppError is an infrastructure error with an HTTP-like code.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewValidationError wraps ErrValidation with a message.
func NewValidationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// InsufficientFundsError reports the shortfall of a debit.
type InsufficientFundsError struct {
	RequiredCents  int64
	AvailableCents int64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: required %d cents, available %d cents", e.RequiredCents, e.AvailableCents)
}

func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// ShortfallCents is how much more the account needs.
func (e *InsufficientFundsError) ShortfallCents() int64 {
	return e.RequiredCents - e.AvailableCents
}

// InsufficientQuantityError reports a sell larger than the holding.
type InsufficientQuantityError struct {
	Available decimal.Decimal
	Requested decimal.Decimal
}

func (e *InsufficientQuantityError) Error() string {
	return fmt.Sprintf("insufficient quantity: available %s, requested %s", e.Available.String(), e.Requested.String())
}

func (e *InsufficientQuantityError) Is(target error) bool {
	return target == ErrInsufficientQuantity
}
