package repositories

import (
	"context"

	"github.com/SscSPs/gcash_pos_backend/internal/core/domain"
)

// OperatorReader looks up terminal operators
type OperatorReader interface {
	FindOperatorByUsername(ctx context.Context, username string) (*domain.Operator, error)
}

// OperatorWriter provisions terminal operators
type OperatorWriter interface {
	// CreateOperatorIfAbsent inserts op unless the username exists and
	// reports whether a row was written.
	CreateOperatorIfAbsent(ctx context.Context, op domain.Operator) (bool, error)
}

// OperatorRepositoryFacade combines operator reads and writes
type OperatorRepositoryFacade interface {
	OperatorReader
	OperatorWriter
}
