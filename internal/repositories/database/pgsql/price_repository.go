package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/gcash_pos_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/gcash_pos_backend/internal/core/ports/repositories"
	"github.com/SscSPs/gcash_pos_backend/internal/models"
	"github.com/SscSPs/gcash_pos_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPriceRepository struct {
	BaseRepository
}

func newPgxPriceRepository(pool *pgxpool.Pool) *PgxPriceRepository {
	return &PgxPriceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PriceRepositoryFacade = (*PgxPriceRepository)(nil)

func (r *PgxPriceRepository) listRows(ctx context.Context) ([]models.ServicePrice, error) {
	query := `
		SELECT price_key, price, last_updated_at, last_updated_by
		FROM service_prices
		ORDER BY price_key;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query service prices: %w", err)
	}
	defer rows.Close()

	var ms []models.ServicePrice
	for rows.Next() {
		var m models.ServicePrice
		if err := rows.Scan(&m.PriceKey, &m.Price, &m.LastUpdatedAt, &m.LastUpdatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan service price row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating service price rows: %w", err)
	}
	return ms, nil
}

// LoadCatalog returns every configured price keyed by price_key.
func (r *PgxPriceRepository) LoadCatalog(ctx context.Context) (domain.PriceCatalog, error) {
	ms, err := r.listRows(ctx)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainCatalog(ms), nil
}

// ListPrices returns every price row with its audit fields.
func (r *PgxPriceRepository) ListPrices(ctx context.Context) ([]domain.ServicePrice, error) {
	ms, err := r.listRows(ctx)
	if err != nil {
		return nil, err
	}
	prices := make([]domain.ServicePrice, len(ms))
	for i, m := range ms {
		prices[i] = mapping.ToDomainServicePrice(m)
	}
	return prices, nil
}

// UpsertPrices writes all prices in a single transaction.
func (r *PgxPriceRepository) UpsertPrices(ctx context.Context, prices domain.PriceCatalog, userID string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = r.Rollback(ctx, tx) // no-op after commit
	}()

	query := `
		INSERT INTO service_prices (price_key, price, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (price_key) DO UPDATE
		SET price = EXCLUDED.price,
		    last_updated_at = EXCLUDED.last_updated_at,
		    last_updated_by = EXCLUDED.last_updated_by;
	`
	batch := &pgx.Batch{}
	for _, key := range prices.Keys() {
		batch.Queue(query, key, mapping.ToModelDecimal(prices[key]), now, userID)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to upsert service prices: %w", err)
	}

	return r.Commit(ctx, tx)
}
