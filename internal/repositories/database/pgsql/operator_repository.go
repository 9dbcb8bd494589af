package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/gcash_pos_backend/internal/apperrors"
	"github.com/SscSPs/gcash_pos_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/gcash_pos_backend/internal/core/ports/repositories"
	"github.com/SscSPs/gcash_pos_backend/internal/models"
	"github.com/SscSPs/gcash_pos_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxOperatorRepository struct {
	BaseRepository
}

func newPgxOperatorRepository(pool *pgxpool.Pool) *PgxOperatorRepository {
	return &PgxOperatorRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.OperatorRepositoryFacade = (*PgxOperatorRepository)(nil)

// FindOperatorByUsername retrieves an operator and their password hash.
func (r *PgxOperatorRepository) FindOperatorByUsername(ctx context.Context, username string) (*domain.Operator, error) {
	query := `SELECT username, password_hash, role FROM operators WHERE username = $1;`

	var m models.Operator
	err := r.Pool.QueryRow(ctx, query, username).Scan(&m.Username, &m.PasswordHash, &m.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find operator %s: %w", username, err)
	}

	op := mapping.ToDomainOperator(m)
	return &op, nil
}

// CreateOperatorIfAbsent inserts op, leaving an existing operator untouched.
func (r *PgxOperatorRepository) CreateOperatorIfAbsent(ctx context.Context, op domain.Operator) (bool, error) {
	m := mapping.ToModelOperator(op)
	query := `
		INSERT INTO operators (username, password_hash, role)
		VALUES ($1, $2, $3)
		ON CONFLICT (username) DO NOTHING;
	`
	tag, err := r.Pool.Exec(ctx, query, m.Username, m.PasswordHash, m.Role)
	if err != nil {
		return false, fmt.Errorf("failed to create operator %s: %w", op.Username, err)
	}
	return tag.RowsAffected() == 1, nil
}
