package repositories

import (
	"context"

	"github.com/SscSPs/gcash_pos_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// BalanceLogReader reads the append-only balance change audit trail
type BalanceLogReader interface {
	// ListLogs returns matching logs ordered by (timestamp, id) descending.
	ListLogs(ctx context.Context, filter domain.LogFilter) ([]domain.BalanceChangeLog, error)
}

// BalanceLogWriter appends balance change logs
type BalanceLogWriter interface {
	SaveLogsInTx(ctx context.Context, tx pgx.Tx, logs []domain.BalanceChangeLog) error
}

// BalanceLogRepositoryFacade combines balance log read and write access
type BalanceLogRepositoryFacade interface {
	BalanceLogReader
	BalanceLogWriter
}
