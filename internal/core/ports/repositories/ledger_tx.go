package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/amanah_ledger/internal/core/domain"
)

// LedgerTx is the unit-of-work handle passed through one atomic ledger operation.
// Every row read through it is locked until the unit ends.
type LedgerTx interface {
	// LockAccounts selects and locks accounts, in ascending ID order. Missing IDs are absent from the map.
	LockAccounts(ctx context.Context, accountIDs ...string) (map[string]domain.Account, error)

	// LockDefaultAccount locks the user's oldest account of the given type.
	// Returns apperrors.ErrAccountNotFound when the user has none.
	LockDefaultAccount(ctx context.Context, userID string, accountType domain.AccountType) (*domain.Account, error)

	// ApplyBalanceDelta adds deltaCents to the account balance and returns the new balance.
	ApplyBalanceDelta(ctx context.Context, accountID string, deltaCents int64, userID string, now time.Time) (int64, error)

	// InsertTransaction appends an audit record.
	InsertTransaction(ctx context.Context, txn domain.Transaction) error

	// LockHolding selects and locks the (account, symbol) holding.
	// Returns apperrors.ErrHoldingNotFound when there is none.
	LockHolding(ctx context.Context, accountID string, symbol string) (*domain.Holding, error)

	// InsertHolding creates a position.
	InsertHolding(ctx context.Context, holding domain.Holding) error

	// UpdateHolding stores a new quantity and average cost.
	UpdateHolding(ctx context.Context, holding domain.Holding) error

	// DeleteHolding removes a liquidated position.
	DeleteHolding(ctx context.Context, holdingID string) error

	// InsertOrder records an execution.
	InsertOrder(ctx context.Context, order domain.Order) error
}
