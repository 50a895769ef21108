package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/SscSPs/amanah_ledger/internal/apperrors"
	"github.com/SscSPs/amanah_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/amanah_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/amanah_ledger/internal/models"
	"github.com/SscSPs/amanah_ledger/internal/utils/mapping"
)

// SQLiteCatalogRepository stores the halal universe, watchlists and investment profiles.
type SQLiteCatalogRepository struct {
	BaseRepository
}

func newSQLiteCatalogRepository(db *sql.DB) *SQLiteCatalogRepository {
	return &SQLiteCatalogRepository{BaseRepository: BaseRepository{DB: db}}
}

var (
	_ portsrepo.HalalSymbolRepositoryFacade = (*SQLiteCatalogRepository)(nil)
	_ portsrepo.WatchlistRepositoryFacade   = (*SQLiteCatalogRepository)(nil)
	_ portsrepo.ProfileRepositoryFacade     = (*SQLiteCatalogRepository)(nil)
)

func (r *SQLiteCatalogRepository) ListHalalSymbols(ctx context.Context) ([]domain.HalalSymbol, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT symbol_id, symbol, name, asset_type, last_verified_at, created_at
		FROM halal_symbols
		ORDER BY symbol`)
	if err != nil {
		return nil, mapSQLiteError(err, "failed to list halal symbols")
	}
	defer rows.Close()

	symbols := []domain.HalalSymbol{}
	for rows.Next() {
		var m models.HalalSymbol
		if err := rows.Scan(&m.SymbolID, &m.Symbol, &m.Name, &m.AssetType, &m.LastVerifiedAt, &m.CreatedAt); err != nil {
			return nil, mapSQLiteError(err, "failed to scan halal symbol row")
		}
		symbols = append(symbols, mapping.ToDomainHalalSymbol(m))
	}
	if err := rows.Err(); err != nil {
		return nil, mapSQLiteError(err, "error iterating halal symbol rows")
	}
	return symbols, nil
}

func (r *SQLiteCatalogRepository) UpsertHalalSymbols(ctx context.Context, symbols []domain.HalalSymbol) (int, error) {
	if len(symbols) == 0 {
		return 0, nil
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, mapSQLiteError(err, "failed to begin transaction")
	}
	defer func() { _ = tx.Rollback() }()

	written := 0
	for _, s := range symbols {
		m := mapping.ToModelHalalSymbol(s)
		if m.LastVerifiedAt.Valid {
			m.LastVerifiedAt.Time = m.LastVerifiedAt.Time.UTC()
		}
		res, err := tx.ExecContext(ctx, `
			INSERT INTO halal_symbols (symbol_id, symbol, name, asset_type, last_verified_at, created_at)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT (symbol) DO UPDATE
			SET name = excluded.name, asset_type = excluded.asset_type, last_verified_at = excluded.last_verified_at`,
			m.SymbolID, m.Symbol, m.Name, m.AssetType, m.LastVerifiedAt, m.CreatedAt.UTC(),
		)
		if err != nil {
			return 0, mapSQLiteError(err, "failed to upsert halal symbol")
		}
		n, _ := res.RowsAffected()
		written += int(n)
	}
	if err := tx.Commit(); err != nil {
		return 0, mapSQLiteError(err, "failed to commit halal symbols")
	}
	return written, nil
}

func (r *SQLiteCatalogRepository) ListWatchlist(ctx context.Context, userID string) ([]domain.WatchlistItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT item_id, user_id, symbol, created_at
		FROM watchlist_items
		WHERE user_id = ?
		ORDER BY created_at, symbol`, userID)
	if err != nil {
		return nil, mapSQLiteError(err, "failed to list watchlist")
	}
	defer rows.Close()

	items := []domain.WatchlistItem{}
	for rows.Next() {
		var m models.WatchlistItem
		if err := rows.Scan(&m.ItemID, &m.UserID, &m.Symbol, &m.CreatedAt); err != nil {
			return nil, mapSQLiteError(err, "failed to scan watchlist row")
		}
		items = append(items, mapping.ToDomainWatchlistItem(m))
	}
	if err := rows.Err(); err != nil {
		return nil, mapSQLiteError(err, "error iterating watchlist rows")
	}
	return items, nil
}

// UpsertWatchlistItem adds the symbol. An existing row is returned unchanged.
func (r *SQLiteCatalogRepository) UpsertWatchlistItem(ctx context.Context, item domain.WatchlistItem) (*domain.WatchlistItem, error) {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO watchlist_items (item_id, user_id, symbol, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (user_id, symbol) DO NOTHING`,
		item.ItemID, item.UserID, item.Symbol, item.CreatedAt.UTC(),
	)
	if err != nil {
		return nil, mapSQLiteError(err, "failed to add watchlist item")
	}

	var m models.WatchlistItem
	err = r.DB.QueryRowContext(ctx, `
		SELECT item_id, user_id, symbol, created_at
		FROM watchlist_items
		WHERE user_id = ? AND symbol = ?`, item.UserID, item.Symbol,
	).Scan(&m.ItemID, &m.UserID, &m.Symbol, &m.CreatedAt)
	if err != nil {
		return nil, mapSQLiteError(err, "failed to read watchlist item")
	}
	saved := mapping.ToDomainWatchlistItem(m)
	return &saved, nil
}

func (r *SQLiteCatalogRepository) DeleteWatchlistItem(ctx context.Context, userID string, symbol string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM watchlist_items WHERE user_id = ? AND symbol = ?`, userID, symbol)
	if err != nil {
		return mapSQLiteError(err, "failed to delete watchlist item")
	}
	return requireRow(res, apperrors.ErrNotFound)
}

func (r *SQLiteCatalogRepository) FindInvestmentProfile(ctx context.Context, userID string) (*domain.InvestmentProfile, error) {
	var m models.InvestmentProfile
	err := r.DB.QueryRowContext(ctx, `
		SELECT user_id, risk_profile, rebalance_logic, updated_at
		FROM investment_profiles
		WHERE user_id = ?`, userID,
	).Scan(&m.UserID, &m.RiskProfile, &m.RebalanceLogic, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, mapSQLiteError(err, "failed to find investment profile")
	}
	p := mapping.ToDomainInvestmentProfile(m)
	return &p, nil
}

func (r *SQLiteCatalogRepository) UpsertInvestmentProfile(ctx context.Context, profile domain.InvestmentProfile) (*domain.InvestmentProfile, error) {
	in := mapping.ToModelInvestmentProfile(profile)
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO investment_profiles (user_id, risk_profile, rebalance_logic, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE
		SET risk_profile = excluded.risk_profile,
			rebalance_logic = COALESCE(excluded.rebalance_logic, investment_profiles.rebalance_logic),
			updated_at = excluded.updated_at`,
		in.UserID, in.RiskProfile, in.RebalanceLogic, in.UpdatedAt.UTC(),
	)
	if err != nil {
		return nil, mapSQLiteError(err, "failed to save investment profile")
	}
	return r.FindInvestmentProfile(ctx, profile.UserID)
}
