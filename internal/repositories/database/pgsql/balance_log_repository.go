package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/gcash_pos_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/gcash_pos_backend/internal/core/ports/repositories"
	"github.com/SscSPs/gcash_pos_backend/internal/models"
	"github.com/SscSPs/gcash_pos_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBalanceLogRepository struct {
	BaseRepository
}

func newPgxBalanceLogRepository(pool *pgxpool.Pool) *PgxBalanceLogRepository {
	return &PgxBalanceLogRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BalanceLogRepositoryFacade = (*PgxBalanceLogRepository)(nil)

const balanceLogColumns = `log_id, transaction_id, stream, log_type, amount, cash_impact, gcash_principal_impact,
	fee_collected, new_gcash_balance, new_cash_balance, new_balance, reference, user_id, created_at`

// SaveLogsInTx appends logs in one batch inside tx.
func (r *PgxBalanceLogRepository) SaveLogsInTx(ctx context.Context, tx pgx.Tx, logs []domain.BalanceChangeLog) error {
	if len(logs) == 0 {
		return nil
	}

	query := `
		INSERT INTO balance_change_logs (` + balanceLogColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	batch := &pgx.Batch{}
	for _, l := range logs {
		m := mapping.ToModelBalanceLog(l)
		batch.Queue(query,
			m.LogID,
			m.TransactionID,
			m.Stream,
			m.LogType,
			m.Amount,
			m.CashImpact,
			m.GCashPrincipalImpact,
			m.FeeCollected,
			m.NewGCashBalance,
			m.NewCashBalance,
			m.NewBalance,
			m.Reference,
			m.UserID,
			m.CreatedAt,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil { // Close surfaces the first failed insert
		return fmt.Errorf("failed to insert balance change logs: %w", err)
	}
	return nil
}

// ListLogs returns matching logs, newest first.
func (r *PgxBalanceLogRepository) ListLogs(ctx context.Context, filter domain.LogFilter) ([]domain.BalanceChangeLog, error) {
	q := &listQuery{}
	if filter.Stream != "" {
		q.where("stream = " + q.arg(string(filter.Stream)))
	}
	q.timeRange("created_at", filter.From, filter.To)
	q.before("created_at", "log_id", filter.Before)

	query := q.build(
		`SELECT log_id::text, transaction_id::text, stream, log_type, amount, cash_impact, gcash_principal_impact,
			fee_collected, new_gcash_balance, new_cash_balance, new_balance, reference, user_id, created_at
		FROM balance_change_logs`,
		`created_at DESC, log_id DESC`,
		filter.Limit,
	)

	rows, err := r.Pool.Query(ctx, query, q.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query balance change logs: %w", err)
	}
	defer rows.Close()

	logs := []domain.BalanceChangeLog{}
	for rows.Next() {
		var m models.BalanceChangeLog
		err := rows.Scan(
			&m.LogID,
			&m.TransactionID,
			&m.Stream,
			&m.LogType,
			&m.Amount,
			&m.CashImpact,
			&m.GCashPrincipalImpact,
			&m.FeeCollected,
			&m.NewGCashBalance,
			&m.NewCashBalance,
			&m.NewBalance,
			&m.Reference,
			&m.UserID,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan balance change log row: %w", err)
		}
		m.CreatedAt = m.CreatedAt.UTC()
		logs = append(logs, mapping.ToDomainBalanceLog(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating balance change log rows: %w", err)
	}
	return logs, nil
}
