package pgsql

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/amanah_ledger/internal/apperrors"
	"github.com/SscSPs/amanah_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/amanah_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/amanah_ledger/internal/models"
	"github.com/SscSPs/amanah_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

// pgxLedgerTx runs every ledger statement inside one pgx transaction.
// Reads take row locks with SELECT ... FOR UPDATE.
type pgxLedgerTx struct {
	tx pgx.Tx
}

var _ portsrepo.LedgerTx = (*pgxLedgerTx)(nil)

func (t *pgxLedgerTx) LockAccounts(ctx context.Context, accountIDs ...string) (map[string]domain.Account, error) {
	ids := uniqueSorted(accountIDs)
	result := make(map[string]domain.Account, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = ANY($1) ORDER BY account_id FOR UPDATE`
	rows, err := t.tx.Query(ctx, query, ids)
	if err != nil {
		return nil, mapPgError(err, "failed to lock accounts")
	}
	defer rows.Close()

	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, mapPgError(err, "failed to scan locked account")
		}
		result[m.AccountID] = mapping.ToDomainAccount(m)
	}
	if err := rows.Err(); err != nil {
		return nil, mapPgError(err, "failed to iterate locked accounts")
	}
	return result, nil
}

func (t *pgxLedgerTx) LockDefaultAccount(ctx context.Context, userID string, accountType domain.AccountType) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts
		WHERE user_id = $1 AND account_type = $2
		ORDER BY created_at, account_id
		LIMIT 1
		FOR UPDATE`
	m, err := scanAccount(t.tx.QueryRow(ctx, query, userID, string(accountType)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, mapPgError(err, "failed to lock default account")
	}
	acc := mapping.ToDomainAccount(m)
	return &acc, nil
}

func (t *pgxLedgerTx) ApplyBalanceDelta(ctx context.Context, accountID string, deltaCents int64, userID string, now time.Time) (int64, error) {
	query := `UPDATE accounts
		SET balance_cents = balance_cents + $2, last_updated_at = $3, last_updated_by = $4
		WHERE account_id = $1
		RETURNING balance_cents`
	var balance int64
	if err := t.tx.QueryRow(ctx, query, accountID, deltaCents, now, userID).Scan(&balance); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrAccountNotFound
		}
		return 0, mapPgError(err, fmt.Sprintf("failed to update balance of account %s", accountID))
	}
	return balance, nil
}

func (t *pgxLedgerTx) InsertTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := t.tx.Exec(ctx, query,
		m.TransactionID, m.UserID, m.Type, m.FromAccountID, m.ToAccountID,
		m.AmountCents, m.CurrencyCode, m.Symbol, m.Quantity, m.PriceCents,
		m.Status, m.Description, m.CreatedAt,
	)
	if err != nil {
		return mapPgError(err, fmt.Sprintf("failed to insert transaction %s", m.TransactionID))
	}
	return nil
}

func (t *pgxLedgerTx) LockHolding(ctx context.Context, accountID string, symbol string) (*domain.Holding, error) {
	query := `SELECT ` + holdingColumns + ` FROM portfolio_holdings
		WHERE account_id = $1 AND symbol = $2
		FOR UPDATE`
	m, err := scanHolding(t.tx.QueryRow(ctx, query, accountID, symbol))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrHoldingNotFound
		}
		return nil, mapPgError(err, "failed to lock holding")
	}
	h := mapping.ToDomainHolding(m)
	return &h, nil
}

func (t *pgxLedgerTx) InsertHolding(ctx context.Context, holding domain.Holding) error {
	m := mapping.ToModelHolding(holding)
	query := `INSERT INTO portfolio_holdings (` + holdingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := t.tx.Exec(ctx, query,
		m.HoldingID, m.UserID, m.AccountID, m.Symbol, m.Quantity,
		m.AvgCostCents, m.Source, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return mapPgError(err, "failed to insert holding")
	}
	return nil
}

func (t *pgxLedgerTx) UpdateHolding(ctx context.Context, holding domain.Holding) error {
	m := mapping.ToModelHolding(holding)
	query := `UPDATE portfolio_holdings
		SET quantity = $2, avg_cost_cents = $3, updated_at = $4
		WHERE holding_id = $1`
	tag, err := t.tx.Exec(ctx, query, m.HoldingID, m.Quantity, m.AvgCostCents, m.UpdatedAt)
	if err != nil {
		return mapPgError(err, "failed to update holding")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrHoldingNotFound
	}
	return nil
}

func (t *pgxLedgerTx) DeleteHolding(ctx context.Context, holdingID string) error {
	tag, err := t.tx.Exec(ctx, `DELETE FROM portfolio_holdings WHERE holding_id = $1`, holdingID)
	if err != nil {
		return mapPgError(err, "failed to delete holding")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrHoldingNotFound
	}
	return nil
}

func (t *pgxLedgerTx) InsertOrder(ctx context.Context, order domain.Order) error {
	m := mapping.ToModelOrder(order)
	query := `INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := t.tx.Exec(ctx, query,
		m.OrderID, m.UserID, m.AccountID, m.Symbol, m.Side, m.OrderType, m.Quantity,
		m.Status, m.ExecutionPriceCents, m.ExecutionQuantity, m.TransactionID,
		m.CreatedAt, m.CompletedAt,
	)
	if err != nil {
		return mapPgError(err, fmt.Sprintf("failed to insert order %s", m.OrderID))
	}
	return nil
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

// rowScanner is satisfied by pgx.Row and pgx.Rows.
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
