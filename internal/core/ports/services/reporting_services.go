package services

import (
	"context"
	"time"

	"github.com/SscSPs/gcash_pos_backend/internal/core/domain"
)

// ReportingSvcFacade defines read-only views over committed ledger state
type ReportingSvcFacade interface {
	// Balances returns the current account balances; missing accounts read as zero.
	Balances(ctx context.Context) (domain.Balances, error)

	// ListOperatorTransactions returns the operator's transactions on day, newest first.
	ListOperatorTransactions(ctx context.Context, operatorID string, day time.Time) ([]domain.Transaction, error)

	// DailySummary is the end-of-shift summary for operator on day.
	DailySummary(ctx context.Context, operatorID string, day time.Time) (*domain.DailySummary, error)

	// AuditTimeline merges transactions and balance logs in [from, to), newest first.
	AuditTimeline(ctx context.Context, from, to time.Time, limit int, nextToken *string) ([]domain.AuditEntry, *string, error)

	// TakeBalanceSnapshot records balances and the day's totals.
	TakeBalanceSnapshot(ctx context.Context, day time.Time) (*domain.BalanceSnapshot, error)
}
