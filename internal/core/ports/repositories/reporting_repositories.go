package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/gcash_pos_backend/internal/core/domain"
)

// ReportingRepositoryFacade runs aggregate queries over committed records
type ReportingRepositoryFacade interface {
	// SummarizeTransactions totals transactions in [from, to). An empty
	// userID covers every operator.
	SummarizeTransactions(ctx context.Context, userID string, from, to time.Time) (*domain.TransactionTotals, error)

	// SaveBalanceSnapshot upserts the snapshot for its date.
	SaveBalanceSnapshot(ctx context.Context, snapshot domain.BalanceSnapshot) error
}
