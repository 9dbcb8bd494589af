package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/gcash_pos_backend/internal/apperrors"
	"github.com/SscSPs/gcash_pos_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/gcash_pos_backend/internal/core/ports/repositories"
	"github.com/SscSPs/gcash_pos_backend/internal/models"
	"github.com/SscSPs/gcash_pos_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// insertTransactionSQL stamps created_at with clock_timestamp(). now() is
// frozen at BEGIN, so a checkout that waited on row locks would otherwise be
// stamped before the checkout it queued behind.
const insertTransactionSQL = `
		INSERT INTO pos_transactions (transaction_id, user_id, total_amount, items, created_at)
		VALUES ($1, $2, $3, $4, clock_timestamp())
		RETURNING created_at;
	`

// SaveTransactionInTx appends txn and returns the database-assigned
// created_at, which the caller copies onto the transaction's balance logs.
func (r *PgxTransactionRepository) SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) (time.Time, error) {
	m, err := mapping.ToModelTransaction(txn)
	if err != nil {
		return time.Time{}, err
	}

	var createdAt time.Time
	err = tx.QueryRow(ctx, insertTransactionSQL, m.TransactionID, m.UserID, m.TotalAmount, m.Items).Scan(&createdAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return time.Time{}, fmt.Errorf("%w: transaction %s already exists", apperrors.ErrDuplicate, m.TransactionID)
		}
		return time.Time{}, fmt.Errorf("failed to save transaction %s: %w", m.TransactionID, err)
	}
	return createdAt.UTC(), nil
}

// ListTransactions returns matching transactions, newest first.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	q := &listQuery{}
	if filter.UserID != "" {
		q.where("user_id = " + q.arg(filter.UserID))
	}
	q.timeRange("created_at", filter.From, filter.To)
	q.before("created_at", "transaction_id", filter.Before)

	query := q.build(
		`SELECT transaction_id::text, user_id, total_amount, items, created_at FROM pos_transactions`,
		`created_at DESC, transaction_id DESC`,
		filter.Limit,
	)

	rows, err := r.Pool.Query(ctx, query, q.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		var m models.PosTransaction
		if err := rows.Scan(&m.TransactionID, &m.UserID, &m.TotalAmount, &m.Items, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		m.CreatedAt = m.CreatedAt.UTC()
		txn, err := mapping.ToDomainTransaction(m)
		if err != nil {
			return nil, err
		}
		txns = append(txns, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return txns, nil
}
