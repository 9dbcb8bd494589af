package services

import (
	"context"
	"time"

	"github.com/SscSPs/gcash_pos_backend/internal/core/domain"
)

// AuthSvcFacade signs operators in
type AuthSvcFacade interface {
	// Login checks credentials and returns a signed access token.
	Login(ctx context.Context, username, password string) (token string, expiresAt time.Time, operator *domain.Operator, err error)

	// EnsureOperator creates the operator when the username is free. An
	// existing operator keeps its password and role.
	EnsureOperator(ctx context.Context, username, password string, role domain.OperatorRole) (created bool, err error)
}
