package sqlite

import (
	"context"
	"database/sql"

	"github.com/SscSPs/amanah_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/amanah_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/amanah_ledger/internal/models"
	"github.com/SscSPs/amanah_ledger/internal/utils/mapping"
)

// SQLiteHistoryRepository reads transactions, holdings and orders outside of a ledger unit.
type SQLiteHistoryRepository struct {
	BaseRepository
}

func newSQLiteHistoryRepository(db *sql.DB) *SQLiteHistoryRepository {
	return &SQLiteHistoryRepository{BaseRepository: BaseRepository{DB: db}}
}

var (
	_ portsrepo.TransactionReader = (*SQLiteHistoryRepository)(nil)
	_ portsrepo.HoldingReader     = (*SQLiteHistoryRepository)(nil)
	_ portsrepo.OrderReader       = (*SQLiteHistoryRepository)(nil)
)

func (r *SQLiteHistoryRepository) ListTransactions(ctx context.Context, userID string, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE user_id = ?`
	args := []any{userID}
	if filter.AccountID != nil {
		query += ` AND (from_account_id = ? OR to_account_id = ?)`
		args = append(args, *filter.AccountID, *filter.AccountID)
	}
	if filter.After != nil {
		query += ` AND (created_at, transaction_id) < (?, ?)`
		args = append(args, filter.After.CreatedAt.UTC(), filter.After.TransactionID)
	}
	query += ` ORDER BY created_at DESC, transaction_id DESC`
	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapSQLiteError(err, "failed to list transactions")
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, mapSQLiteError(err, "failed to scan transaction row")
		}
		txns = append(txns, mapping.ToDomainTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, mapSQLiteError(err, "error iterating transaction rows")
	}
	return txns, nil
}

func (r *SQLiteHistoryRepository) ListHoldings(ctx context.Context, userID string, accountID *string) ([]domain.HoldingWithAccount, error) {
	query := `
		SELECT h.holding_id, h.user_id, h.account_id, h.symbol, h.quantity, h.avg_cost_cents, h.source,
			h.created_at, h.updated_at, a.account_type, a.name
		FROM portfolio_holdings h
		JOIN accounts a ON a.account_id = h.account_id
		WHERE h.user_id = ?`
	args := []any{userID}
	if accountID != nil {
		query += ` AND h.account_id = ?`
		args = append(args, *accountID)
	}
	query += ` ORDER BY h.symbol, a.account_type`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapSQLiteError(err, "failed to list holdings")
	}
	defer rows.Close()

	holdings := []domain.HoldingWithAccount{}
	for rows.Next() {
		var m models.HoldingWithAccount
		if err := rows.Scan(
			&m.HoldingID,
			&m.UserID,
			&m.AccountID,
			&m.Symbol,
			&m.Quantity,
			&m.AvgCostCents,
			&m.Source,
			&m.CreatedAt,
			&m.UpdatedAt,
			&m.AccountType,
			&m.AccountName,
		); err != nil {
			return nil, mapSQLiteError(err, "failed to scan holding row")
		}
		holdings = append(holdings, mapping.ToDomainHoldingWithAccount(m))
	}
	if err := rows.Err(); err != nil {
		return nil, mapSQLiteError(err, "error iterating holding rows")
	}
	return holdings, nil
}

func (r *SQLiteHistoryRepository) ListOrders(ctx context.Context, userID string, filter domain.OrderFilter) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id = ?`
	args := []any{userID}
	if filter.AccountID != nil {
		query += ` AND account_id = ?`
		args = append(args, *filter.AccountID)
	}
	if filter.Status != nil {
		query += ` AND status = ?`
		args = append(args, string(*filter.Status))
	}
	query += ` ORDER BY created_at DESC, order_id DESC`
	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapSQLiteError(err, "failed to list orders")
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		m, err := scanOrder(rows)
		if err != nil {
			return nil, mapSQLiteError(err, "failed to scan order row")
		}
		orders = append(orders, mapping.ToDomainOrder(m))
	}
	if err := rows.Err(); err != nil {
		return nil, mapSQLiteError(err, "error iterating order rows")
	}
	return orders, nil
}
