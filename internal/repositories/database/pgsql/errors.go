package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/amanah_ledger/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
)

const balanceCheckConstraint = "accounts_balance_non_negative"

// mapPgError translates driver failures into the ledger's error vocabulary.
func mapPgError(err error, msg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", msg, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "40001", "40P01": // serialization_failure, deadlock_detected
			return fmt.Errorf("%s: %w: %s", msg, apperrors.ErrConcurrencyConflict, pgErr.Message)
		case "23514": // check_violation
			if pgErr.ConstraintName == balanceCheckConstraint {
				return fmt.Errorf("%s: %w", msg, apperrors.ErrInsufficientFunds)
			}
			return fmt.Errorf("%s: %w: %s", msg, apperrors.ErrValidation, pgErr.Message)
		case "23505": // unique_violation
			return fmt.Errorf("%s: %w: %s", msg, apperrors.ErrDuplicate, pgErr.ConstraintName)
		case "57P01", "57P02", "57P03", "53300": // admin shutdown, crash shutdown, cannot connect now, too many connections
			return fmt.Errorf("%s: %w: %s", msg, apperrors.ErrTransientStore, pgErr.Message)
		}
		return fmt.Errorf("%s: %w", msg, err)
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) || pgconn.Timeout(err) {
		return fmt.Errorf("%s: %w: %v", msg, apperrors.ErrTransientStore, err)
	}
	return fmt.Errorf("%s: %w", msg, err)
}
