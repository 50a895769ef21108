package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SscSPs/amanah_ledger/internal/apperrors"
	"github.com/SscSPs/amanah_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/amanah_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/amanah_ledger/internal/utils/mapping"
)

type SQLiteAccountRepository struct {
	BaseRepository
}

func newSQLiteAccountRepository(db *sql.DB) *SQLiteAccountRepository {
	return &SQLiteAccountRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.AccountRepositoryFacade = (*SQLiteAccountRepository)(nil)

// SaveAccounts inserts new accounts in one transaction.
func (r *SQLiteAccountRepository) SaveAccounts(ctx context.Context, accounts []domain.Account) error {
	if len(accounts) == 0 {
		return nil
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return mapSQLiteError(err, "failed to begin transaction")
	}
	defer func() { _ = tx.Rollback() }()

	query := `INSERT INTO accounts (` + accountColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for _, acc := range accounts {
		m := mapping.ToModelAccount(acc)
		if _, err := tx.ExecContext(ctx, query,
			m.AccountID, m.UserID, m.AccountType, m.Name, m.BalanceCents, m.CurrencyCode,
			m.CreatedAt.UTC(), m.CreatedBy, m.LastUpdatedAt.UTC(), m.LastUpdatedBy,
		); err != nil {
			return mapSQLiteError(err, "failed to save account")
		}
	}
	if err := tx.Commit(); err != nil {
		return mapSQLiteError(err, "failed to commit accounts")
	}
	return nil
}

// FindAccountByID retrieves an account by its ID.
func (r *SQLiteAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = ?`
	m, err := scanAccount(r.DB.QueryRowContext(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, mapSQLiteError(err, fmt.Sprintf("failed to find account by ID %s", accountID))
	}
	acc := mapping.ToDomainAccount(m)
	return &acc, nil
}

// ListAccountsByUser retrieves all accounts of a user, oldest first.
func (r *SQLiteAccountRepository) ListAccountsByUser(ctx context.Context, userID string) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE user_id = ? ORDER BY created_at, account_id`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, mapSQLiteError(err, "failed to list accounts")
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, mapSQLiteError(err, "failed to scan account row")
		}
		accounts = append(accounts, mapping.ToDomainAccount(m))
	}
	if err := rows.Err(); err != nil {
		return nil, mapSQLiteError(err, "error iterating account rows")
	}
	return accounts, nil
}
