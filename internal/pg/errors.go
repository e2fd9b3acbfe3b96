package pg

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/GlebRadaev/pointsledger/internal/domain"
)

const (
	codeUniqueViolation      = "23505"
	codeNumericOutOfRange    = "22003"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeLockNotAvailable     = "55P03"
)

// MapError turns lock and deadlock failures reported by PostgreSQL into
// domain.ErrConflict and a stored figure pushed out of its column range into
// domain.ErrInvalidTransaction. Other errors pass through unchanged.
func MapError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case codeSerializationFailure, codeDeadlockDetected, codeLockNotAvailable:
		return fmt.Errorf("%w: %s", domain.ErrConflict, pgErr.Message)
	case codeNumericOutOfRange:
		return fmt.Errorf("%w: %s", domain.ErrInvalidTransaction, pgErr.Message)
	}
	return err
}

// IsUniqueViolation reports whether err was raised by the named unique constraint.
// An empty constraint matches any unique violation.
func IsUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != codeUniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}
