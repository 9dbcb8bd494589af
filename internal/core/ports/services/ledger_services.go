package services

import (
	"context"

	"github.com/SscSPs/gcash_pos_backend/internal/core/domain"
)

// LedgerCommitter commits a finalized cart against the shop's balances
type LedgerCommitter interface {
	// Commit applies items atomically: balances, balance logs and the
	// transaction record are written together or not at all.
	Commit(ctx context.Context, operatorID string, items []domain.LineItem) (*domain.CommitResult, error)
}

// LedgerAdjuster applies administrative balance changes
type LedgerAdjuster interface {
	Adjust(ctx context.Context, adminID string, adj domain.Adjustment) (*domain.CommitResult, error)
}

// LedgerSvcFacade combines all ledger operations
type LedgerSvcFacade interface {
	LedgerCommitter
	LedgerAdjuster
}
