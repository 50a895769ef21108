package pgsql

import (
	"context"

	"github.com/SscSPs/amanah_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/amanah_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/amanah_ledger/internal/models"
	"github.com/SscSPs/amanah_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxHoldingRepository struct {
	BaseRepository
}

func newPgxHoldingRepository(pool *pgxpool.Pool) *PgxHoldingRepository {
	return &PgxHoldingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.HoldingReader = (*PgxHoldingRepository)(nil)

// ListHoldings returns holdings joined with their account, ordered by symbol.
func (r *PgxHoldingRepository) ListHoldings(ctx context.Context, userID string, accountID *string) ([]domain.HoldingWithAccount, error) {
	query := `
		SELECT h.holding_id, h.user_id, h.account_id, h.symbol, h.quantity, h.avg_cost_cents, h.source,
			h.created_at, h.updated_at, a.account_type, a.name
		FROM portfolio_holdings h
		JOIN accounts a ON a.account_id = h.account_id
		WHERE h.user_id = $1`
	args := []any{userID}
	if accountID != nil {
		query += ` AND h.account_id = $2`
		args = append(args, *accountID)
	}
	query += ` ORDER BY h.symbol, a.account_type`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, mapPgError(err, "failed to list holdings")
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
			return nil, mapPgError(err, "failed to scan holding row")
		}
		holdings = append(holdings, mapping.ToDomainHoldingWithAccount(m))
	}
	if err := rows.Err(); err != nil {
		return nil, mapPgError(err, "error iterating holding rows")
	}
	return holdings, nil
}
