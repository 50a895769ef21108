package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/amanah_ledger/internal/apperrors"
	"github.com/SscSPs/amanah_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/amanah_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/amanah_ledger/internal/models"
	"github.com/SscSPs/amanah_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxCatalogRepository stores the halal universe, watchlists and investment profiles.
type PgxCatalogRepository struct {
	BaseRepository
}

func newPgxCatalogRepository(pool *pgxpool.Pool) *PgxCatalogRepository {
	return &PgxCatalogRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var (
	_ portsrepo.HalalSymbolRepositoryFacade = (*PgxCatalogRepository)(nil)
	_ portsrepo.WatchlistRepositoryFacade   = (*PgxCatalogRepository)(nil)
	_ portsrepo.ProfileRepositoryFacade     = (*PgxCatalogRepository)(nil)
)

func (r *PgxCatalogRepository) ListHalalSymbols(ctx context.Context) ([]domain.HalalSymbol, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT symbol_id, symbol, name, asset_type, last_verified_at, created_at
		FROM halal_symbols
		ORDER BY symbol`)
	if err != nil {
		return nil, mapPgError(err, "failed to list halal symbols")
	}
	defer rows.Close()

	symbols := []domain.HalalSymbol{}
	for rows.Next() {
		var m models.HalalSymbol
		if err := rows.Scan(&m.SymbolID, &m.Symbol, &m.Name, &m.AssetType, &m.LastVerifiedAt, &m.CreatedAt); err != nil {
			return nil, mapPgError(err, "failed to scan halal symbol row")
		}
		symbols = append(symbols, mapping.ToDomainHalalSymbol(m))
	}
	if err := rows.Err(); err != nil {
		return nil, mapPgError(err, "error iterating halal symbol rows")
	}
	return symbols, nil
}

// UpsertHalalSymbols inserts new tickers and refreshes the name, type and verification time of existing ones.
func (r *PgxCatalogRepository) UpsertHalalSymbols(ctx context.Context, symbols []domain.HalalSymbol) (int, error) {
	if len(symbols) == 0 {
		return 0, nil
	}

	query := `
		INSERT INTO halal_symbols (symbol_id, symbol, name, asset_type, last_verified_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (symbol) DO UPDATE
		SET name = EXCLUDED.name, asset_type = EXCLUDED.asset_type, last_verified_at = EXCLUDED.last_verified_at`

	batch := &pgx.Batch{}
	for _, s := range symbols {
		m := mapping.ToModelHalalSymbol(s)
		batch.Queue(query, m.SymbolID, m.Symbol, m.Name, m.AssetType, m.LastVerifiedAt, m.CreatedAt)
	}

	written := 0
	err := pgx.BeginFunc(ctx, r.Pool, func(tx pgx.Tx) error {
		br := tx.SendBatch(ctx, batch)
		for range symbols {
			tag, err := br.Exec()
			if err != nil {
				_ = br.Close()
				return mapPgError(err, "failed to upsert halal symbol")
			}
			written += int(tag.RowsAffected())
		}
		return br.Close()
	})
	if err != nil {
		return 0, err
	}
	return written, nil
}

func (r *PgxCatalogRepository) ListWatchlist(ctx context.Context, userID string) ([]domain.WatchlistItem, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT item_id, user_id, symbol, created_at
		FROM watchlist_items
		WHERE user_id = $1
		ORDER BY created_at, symbol`, userID)
	if err != nil {
		return nil, mapPgError(err, "failed to list watchlist")
	}
	defer rows.Close()

	items := []domain.WatchlistItem{}
	for rows.Next() {
		var m models.WatchlistItem
		if err := rows.Scan(&m.ItemID, &m.UserID, &m.Symbol, &m.CreatedAt); err != nil {
			return nil, mapPgError(err, "failed to scan watchlist row")
		}
		items = append(items, mapping.ToDomainWatchlistItem(m))
	}
	if err := rows.Err(); err != nil {
		return nil, mapPgError(err, "error iterating watchlist rows")
	}
	return items, nil
}

// UpsertWatchlistItem adds the symbol. An existing row is returned unchanged.
func (r *PgxCatalogRepository) UpsertWatchlistItem(ctx context.Context, item domain.WatchlistItem) (*domain.WatchlistItem, error) {
	var m models.WatchlistItem
	err := r.Pool.QueryRow(ctx, `
		INSERT INTO watchlist_items (item_id, user_id, symbol, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, symbol) DO UPDATE SET symbol = EXCLUDED.symbol
		RETURNING item_id, user_id, symbol, created_at`,
		item.ItemID, item.UserID, item.Symbol, item.CreatedAt,
	).Scan(&m.ItemID, &m.UserID, &m.Symbol, &m.CreatedAt)
	if err != nil {
		return nil, mapPgError(err, "failed to add watchlist item")
	}
	saved := mapping.ToDomainWatchlistItem(m)
	return &saved, nil
}

func (r *PgxCatalogRepository) DeleteWatchlistItem(ctx context.Context, userID string, symbol string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM watchlist_items WHERE user_id = $1 AND symbol = $2`, userID, symbol)
	if err != nil {
		return mapPgError(err, "failed to delete watchlist item")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCatalogRepository) FindInvestmentProfile(ctx context.Context, userID string) (*domain.InvestmentProfile, error) {
	var m models.InvestmentProfile
	err := r.Pool.QueryRow(ctx, `
		SELECT user_id, risk_profile, rebalance_logic, updated_at
		FROM investment_profiles
		WHERE user_id = $1`, userID,
	).Scan(&m.UserID, &m.RiskProfile, &m.RebalanceLogic, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, mapPgError(err, "failed to find investment profile")
	}
	p := mapping.ToDomainInvestmentProfile(m)
	return &p, nil
}

func (r *PgxCatalogRepository) UpsertInvestmentProfile(ctx context.Context, profile domain.InvestmentProfile) (*domain.InvestmentProfile, error) {
	in := mapping.ToModelInvestmentProfile(profile)
	var m models.InvestmentProfile
	err := r.Pool.QueryRow(ctx, `
		INSERT INTO investment_profiles (user_id, risk_profile, rebalance_logic, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE
		SET risk_profile = EXCLUDED.risk_profile,
			rebalance_logic = COALESCE(EXCLUDED.rebalance_logic, investment_profiles.rebalance_logic),
			updated_at = EXCLUDED.updated_at
		RETURNING user_id, risk_profile, rebalance_logic, updated_at`,
		in.UserID, in.RiskProfile, in.RebalanceLogic, in.UpdatedAt,
	).Scan(&m.UserID, &m.RiskProfile, &m.RebalanceLogic, &m.UpdatedAt)
	if err != nil {
		return nil, mapPgError(err, "failed to save investment profile")
	}
	p := mapping.ToDomainInvestmentProfile(m)
	return &p, nil
}
