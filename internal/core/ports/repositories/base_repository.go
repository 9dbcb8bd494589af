package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager opens the database transaction a ledger write runs in.
// Repositories with an InTx method take the returned pgx.Tx.
type TransactionManager interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Commit(ctx context.Context, tx pgx.Tx) error
	// Rollback must tolerate a transaction that was already committed.
	Rollback(ctx context.Context, tx pgx.Tx) error
}
