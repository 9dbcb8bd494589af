package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/gcash_pos_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/gcash_pos_backend/internal/core/ports/repositories"
	"github.com/SscSPs/gcash_pos_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// reportingRepository implements the ReportingRepositoryFacade interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) *reportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ReportingRepositoryFacade = (*reportingRepository)(nil)

// SummarizeTransactions totals transactions in [from, to), reading service
// sales and GCash fees out of the stored line items.
func (r *reportingRepository) SummarizeTransactions(ctx context.Context, userID string, from, to time.Time) (*domain.TransactionTotals, error) {
	q := &listQuery{}
	q.timeRange("t.created_at", from, to)
	if userID != "" {
		q.where("t.user_id = " + q.arg(userID))
	}

	query := `
		SELECT
			COUNT(*) AS transaction_count,
			COALESCE(SUM(s.service_sales), 0) AS service_sales,
			COALESCE(SUM(s.gcash_fees), 0) AS gcash_fees
		FROM pos_transactions t
		CROSS JOIN LATERAL (
			SELECT
				COALESCE(SUM(CASE WHEN item->>'type' = 'service' THEN (item->>'total')::numeric ELSE 0 END), 0) AS service_sales,
				COALESCE(SUM(CASE WHEN item->>'type' IN ('gcash_in', 'gcash_out') THEN (item->>'fee')::numeric ELSE 0 END), 0) AS gcash_fees
			FROM jsonb_array_elements(t.items) AS item
		) s`
	if len(q.conds) > 0 {
		query += "\n\t\tWHERE " + joinConds(q.conds)
	}

	var count int
	var serviceSales, gcashFees decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, q.args...).Scan(&count, &serviceSales, &gcashFees); err != nil {
		return nil, fmt.Errorf("error summarizing transactions: %w", err)
	}

	return &domain.TransactionTotals{
		TransactionCount: count,
		ServiceSales:     mapping.ToDomainCents(serviceSales),
		GCashFees:        mapping.ToDomainCents(gcashFees),
	}, nil
}

// SaveBalanceSnapshot upserts the snapshot row for its date.
func (r *reportingRepository) SaveBalanceSnapshot(ctx context.Context, snapshot domain.BalanceSnapshot) error {
	m := mapping.ToModelBalanceSnapshot(snapshot)
	query := `
		INSERT INTO balance_snapshots (snapshot_date, gcash_float, cash_on_hand, service_revenue,
			transaction_count, service_sales, gcash_fees, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (snapshot_date) DO UPDATE
		SET gcash_float = EXCLUDED.gcash_float,
		    cash_on_hand = EXCLUDED.cash_on_hand,
		    service_revenue = EXCLUDED.service_revenue,
		    transaction_count = EXCLUDED.transaction_count,
		    service_sales = EXCLUDED.service_sales,
		    gcash_fees = EXCLUDED.gcash_fees,
		    created_at = EXCLUDED.created_at;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.SnapshotDate,
		m.GCashFloat,
		m.CashOnHand,
		m.ServiceRevenue,
		m.TransactionCount,
		m.ServiceSales,
		m.GCashFees,
		m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save balance snapshot for %s: %w", m.SnapshotDate.Format(time.DateOnly), err)
	}
	return nil
}
