package domain

import (
	"errors"
	"fmt"
)

var (
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrInvalidTransaction  = errors.New("invalid transaction")
	ErrIneligiblePromotion = errors.New("promotion is not eligible for this purchase")
	ErrAlreadyUsed         = errors.New("promotion already used")
	ErrExpired             = errors.New("promotion is not active")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrAlreadyProcessed    = errors.New("redemption already processed")
	ErrConflict            = errors.New("concurrent modification detected")
)

// InsufficientFundsError carries the figures behind a rejected debit or award.
type InsufficientFundsError struct {
	Available int
	Requested int
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: available %d, requested %d", e.Available, e.Requested)
}

func (e *InsufficientFundsError) Unwrap() error {
	return ErrInsufficientFunds
}

// Invalid wraps ErrInvalidTransaction with a reason.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidTransaction, fmt.Sprintf(format, args...))
}

// NotFound wraps ErrNotFound with the missing entity.
func NotFound(entity string, id int) error {
	return fmt.Errorf("%w: %s %d", ErrNotFound, entity, id)
}

// IsClientError reports whether err is caused by the request rather than the system.
func IsClientError(err error) bool {
	return errors.Is(err, ErrForbidden) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrInvalidTransaction) ||
		errors.Is(err, ErrIneligiblePromotion) ||
		errors.Is(err, ErrAlreadyUsed) ||
		errors.Is(err, ErrExpired) ||
		errors.Is(err, ErrInsufficientFunds) ||
		errors.Is(err, ErrAlreadyProcessed)
}
