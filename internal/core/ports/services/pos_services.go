package services

import (
	"context"

	"github.com/SscSPs/gcash_pos_backend/internal/core/domain"
)

// POSSessionSvc opens and closes operator sessions
type POSSessionSvc interface {
	OpenSession(ctx context.Context, operatorID string) (*domain.Session, error)
	GetSession(ctx context.Context, operatorID, sessionID string) (*domain.Session, error)
	CloseSession(ctx context.Context, operatorID, sessionID string) error
}

// POSCartSvc edits the cart of an open session
type POSCartSvc interface {
	AddService(ctx context.Context, operatorID, sessionID string, req domain.ServiceRequest) (*domain.Session, error)
	AddGCash(ctx context.Context, operatorID, sessionID string, kind domain.LineItemType, amount domain.Cents, reference string, split *domain.FeeSplit) (*domain.Session, error)
	RemoveItem(ctx context.Context, operatorID, sessionID string, index int) (*domain.Session, error)
	ClearCart(ctx context.Context, operatorID, sessionID string) (*domain.Session, error)
	QuoteFee(amount domain.Cents) (domain.Cents, error)
}

// POSCheckoutSvc completes payment for a session's cart
type POSCheckoutSvc interface {
	// Checkout commits the cart. The cart is cleared only on success.
	Checkout(ctx context.Context, operatorID, sessionID string) (*domain.CommitResult, error)
}

// POSSvcFacade combines all POS terminal operations
type POSSvcFacade interface {
	POSSessionSvc
	POSCartSvc
	POSCheckoutSvc
}
