package pgsql

import (
	"context"
	"strconv"

	"github.com/SscSPs/amanah_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/amanah_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/amanah_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxOrderRepository struct {
	BaseRepository
}

func newPgxOrderRepository(pool *pgxpool.Pool) *PgxOrderRepository {
	return &PgxOrderRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.OrderReader = (*PgxOrderRepository)(nil)

func (r *PgxOrderRepository) ListOrders(ctx context.Context, userID string, filter domain.OrderFilter) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1`
	args := []any{userID}
	if filter.AccountID != nil {
		args = append(args, *filter.AccountID)
		query += ` AND account_id = $` + strconv.Itoa(len(args))
	}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		query += ` AND status = $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY created_at DESC, order_id DESC`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += ` LIMIT $` + strconv.Itoa(len(args))
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, mapPgError(err, "failed to list orders")
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		m, err := scanOrder(rows)
		if err != nil {
			return nil, mapPgError(err, "failed to scan order row")
		}
		orders = append(orders, mapping.ToDomainOrder(m))
	}
	if err := rows.Err(); err != nil {
		return nil, mapPgError(err, "error iterating order rows")
	}
	return orders, nil
}
