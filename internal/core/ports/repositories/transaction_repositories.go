package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/gcash_pos_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// TransactionReader reads committed POS transactions
type TransactionReader interface {
	// ListTransactions returns matching transactions ordered by
	// (timestamp, id) descending.
	ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error)
}

// TransactionWriter appends POS transactions
type TransactionWriter interface {
	// SaveTransactionInTx inserts txn and returns the server-assigned timestamp.
	SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) (time.Time, error)
}

// TransactionRepositoryFacade combines transaction read and write access
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
