package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/amanah_ledger/internal/apperrors"
	"github.com/SscSPs/amanah_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/amanah_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/amanah_ledger/internal/models"
	"github.com/SscSPs/amanah_ledger/internal/utils/mapping"
)

// sqlLedgerTx runs every ledger statement inside one immediate transaction.
// The write lock is taken at BEGIN, so plain SELECTs act as locking reads.
type sqlLedgerTx struct {
	tx *sql.Tx
}

var _ portsrepo.LedgerTx = (*sqlLedgerTx)(nil)

func (t *sqlLedgerTx) LockAccounts(ctx context.Context, accountIDs ...string) (map[string]domain.Account, error) {
	ids := uniqueSorted(accountIDs)
	result := make(map[string]domain.Account, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id IN (` + placeholders(len(ids)) + `) ORDER BY account_id`
	rows, err := t.tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapSQLiteError(err, "failed to lock accounts")
	}
	defer rows.Close()

	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, mapSQLiteError(err, "failed to scan locked account")
		}
		result[m.AccountID] = mapping.ToDomainAccount(m)
	}
	if err := rows.Err(); err != nil {
		return nil, mapSQLiteError(err, "failed to iterate locked accounts")
	}
	return result, nil
}

func (t *sqlLedgerTx) LockDefaultAccount(ctx context.Context, userID string, accountType domain.AccountType) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts
		WHERE user_id = ? AND account_type = ?
		ORDER BY created_at, account_id
		LIMIT 1`
	m, err := scanAccount(t.tx.QueryRowContext(ctx, query, userID, string(accountType)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, mapSQLiteError(err, "failed to lock default account")
	}
	acc := mapping.ToDomainAccount(m)
	return &acc, nil
}

func (t *sqlLedgerTx) ApplyBalanceDelta(ctx context.Context, accountID string, deltaCents int64, userID string, now time.Time) (int64, error) {
	query := `UPDATE accounts
		SET balance_cents = balance_cents + ?, last_updated_at = ?, last_updated_by = ?
		WHERE account_id = ?
		RETURNING balance_cents`
	var balance int64
	if err := t.tx.QueryRowContext(ctx, query, deltaCents, now.UTC(), userID, accountID).Scan(&balance); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, apperrors.ErrAccountNotFound
		}
		return 0, mapSQLiteError(err, fmt.Sprintf("failed to update balance of account %s", accountID))
	}
	return balance, nil
}

func (t *sqlLedgerTx) InsertTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `INSERT INTO transactions (` + transactionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := t.tx.ExecContext(ctx, query,
		m.TransactionID, m.UserID, m.Type, m.FromAccountID, m.ToAccountID,
		m.AmountCents, m.CurrencyCode, m.Symbol, m.Quantity, m.PriceCents,
		m.Status, m.Description, m.CreatedAt.UTC(),
	)
	if err != nil {
		return mapSQLiteError(err, fmt.Sprintf("failed to insert transaction %s", m.TransactionID))
	}
	return nil
}

func (t *sqlLedgerTx) LockHolding(ctx context.Context, accountID string, symbol string) (*domain.Holding, error) {
	query := `SELECT ` + holdingColumns + ` FROM portfolio_holdings WHERE account_id = ? AND symbol = ?`
	m, err := scanHolding(t.tx.QueryRowContext(ctx, query, accountID, symbol))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrHoldingNotFound
		}
		return nil, mapSQLiteError(err, "failed to lock holding")
	}
	h := mapping.ToDomainHolding(m)
	return &h, nil
}

func (t *sqlLedgerTx) InsertHolding(ctx context.Context, holding domain.Holding) error {
	m := mapping.ToModelHolding(holding)
	query := `INSERT INTO portfolio_holdings (` + holdingColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := t.tx.ExecContext(ctx, query,
		m.HoldingID, m.UserID, m.AccountID, m.Symbol, m.Quantity,
		m.AvgCostCents, m.Source, m.CreatedAt.UTC(), m.UpdatedAt.UTC(),
	)
	if err != nil {
		return mapSQLiteError(err, "failed to insert holding")
	}
	return nil
}

func (t *sqlLedgerTx) UpdateHolding(ctx context.Context, holding domain.Holding) error {
	m := mapping.ToModelHolding(holding)
	res, err := t.tx.ExecContext(ctx, `UPDATE portfolio_holdings
		SET quantity = ?, avg_cost_cents = ?, updated_at = ?
		WHERE holding_id = ?`, m.Quantity, m.AvgCostCents, m.UpdatedAt.UTC(), m.HoldingID)
	if err != nil {
		return mapSQLiteError(err, "failed to update holding")
	}
	return requireRow(res, apperrors.ErrHoldingNotFound)
}

func (t *sqlLedgerTx) DeleteHolding(ctx context.Context, holdingID string) error {
	res, err := t.tx.ExecContext(ctx, `DELETE FROM portfolio_holdings WHERE holding_id = ?`, holdingID)
	if err != nil {
		return mapSQLiteError(err, "failed to delete holding")
	}
	return requireRow(res, apperrors.ErrHoldingNotFound)
}

func (t *sqlLedgerTx) InsertOrder(ctx context.Context, order domain.Order) error {
	m := mapping.ToModelOrder(order)
	if m.CompletedAt.Valid {
		m.CompletedAt.Time = m.CompletedAt.Time.UTC()
	}
	query := `INSERT INTO orders (` + orderColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := t.tx.ExecContext(ctx, query,
		m.OrderID, m.UserID, m.AccountID, m.Symbol, m.Side, m.OrderType, m.Quantity,
		m.Status, m.ExecutionPriceCents, m.ExecutionQuantity, m.TransactionID,
		m.CreatedAt.UTC(), m.CompletedAt,
	)
	if err != nil {
		return mapSQLiteError(err, fmt.Sprintf("failed to insert order %s", m.OrderID))
	}
	return nil
}

func requireRow(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return mapSQLiteError(err, "failed to read affected rows")
	}
	if n == 0 {
		return notFound
	}
	return nil
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

func uniqueSorted(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

const accountColumns = `account_id, user_id, account_type, name, balance_cents, currency_code,
	created_at, created_by, last_updated_at, last_updated_by`

func scanAccount(row rowScanner) (models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.UserID,
		&m.AccountType,
		&m.Name,
		&m.BalanceCents,
		&m.CurrencyCode,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

const transactionColumns = `transaction_id, user_id, type, from_account_id, to_account_id, amount_cents,
	currency_code, symbol, quantity, price_cents, status, description, created_at`

func scanTransaction(row rowScanner) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.UserID,
		&m.Type,
		&m.FromAccountID,
		&m.ToAccountID,
		&m.AmountCents,
		&m.CurrencyCode,
		&m.Symbol,
		&m.Quantity,
		&m.PriceCents,
		&m.Status,
		&m.Description,
		&m.CreatedAt,
	)
	return m, err
}

const holdingColumns = `holding_id, user_id, account_id, symbol, quantity, avg_cost_cents, source, created_at, updated_at`

func scanHolding(row rowScanner) (models.Holding, error) {
	var m models.Holding
	err := row.Scan(
		&m.HoldingID,
		&m.UserID,
		&m.AccountID,
		&m.Symbol,
		&m.Quantity,
		&m.AvgCostCents,
		&m.Source,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

const orderColumns = `order_id, user_id, account_id, symbol, side, order_type, quantity, status,
	execution_price_cents, execution_quantity, transaction_id, created_at, completed_at`

func scanOrder(row rowScanner) (models.Order, error) {
	var m models.Order
	err := row.Scan(
		&m.OrderID,
		&m.UserID,
		&m.AccountID,
		&m.Symbol,
		&m.Side,
		&m.OrderType,
		&m.Quantity,
		&m.Status,
		&m.ExecutionPriceCents,
		&m.ExecutionQuantity,
		&m.TransactionID,
		&m.CreatedAt,
		&m.CompletedAt,
	)
	return m, err
}
