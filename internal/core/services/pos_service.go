package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/gcash_pos_backend/internal/apperrors"
	"github.com/SscSPs/gcash_pos_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/gcash_pos_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/gcash_pos_backend/internal/core/ports/services"
)

const defaultSessionLockTTL = 30 * time.Second

type posService struct {
	BaseService
	sessions       portsrepo.SessionStore
	catalog        portssvc.CatalogReaderSvc
	ledger         portssvc.LedgerCommitter
	sessionLockTTL time.Duration
}

// POSServiceOption configures the POS service
type POSServiceOption func(*posService)

// WithSessionLockTTL bounds how long a crashed writer can block its session.
func WithSessionLockTTL(ttl time.Duration) POSServiceOption {
	return func(s *posService) {
		if ttl > 0 {
			s.sessionLockTTL = ttl
		}
	}
}

// WithPOSBaseOptions applies shared clock and id options.
func WithPOSBaseOptions(options ...Option) POSServiceOption {
	return func(s *posService) {
		s.apply(options)
	}
}

// NewPOSService creates a new POS terminal service
func NewPOSService(
	sessions portsrepo.SessionStore,
	catalog portssvc.CatalogReaderSvc,
	ledger portssvc.LedgerCommitter,
	options ...POSServiceOption,
) portssvc.POSSvcFacade {
	svc := &posService{
		sessions:       sessions,
		catalog:        catalog,
		ledger:         ledger,
		sessionLockTTL: defaultSessionLockTTL,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.POSSvcFacade = (*posService)(nil)

// OpenSession snapshots the current catalog into a new session.
func (s *posService) OpenSession(ctx context.Context, operatorID string) (*domain.Session, error) {
	catalog, err := s.catalog.LoadCatalog(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load price catalog for session")
		return nil, err
	}

	session := domain.NewSession(s.NewID(), operatorID, catalog, s.Now())
	if err := s.sessions.SaveSession(ctx, session); err != nil {
		s.LogError(ctx, err, "Failed to save new session")
		return nil, fmt.Errorf("failed to open session: %w", err)
	}

	s.LogInfo(ctx, "POS session opened",
		slog.String("session_id", session.SessionID),
		slog.Int("catalog_size", len(session.Catalog)))
	return session, nil
}

func (s *posService) GetSession(ctx context.Context, operatorID, sessionID string) (*domain.Session, error) {
	return s.loadSession(ctx, operatorID, sessionID)
}

func (s *posService) CloseSession(ctx context.Context, operatorID, sessionID string) error {
	return s.withSessionLock(ctx, sessionID, func() error {
		if _, err := s.loadSession(ctx, operatorID, sessionID); err != nil {
			return err
		}
		if err := s.sessions.DeleteSession(ctx, sessionID); err != nil {
			s.LogError(ctx, err, "Failed to delete session", slog.String("session_id", sessionID))
			return fmt.Errorf("failed to close session: %w", err)
		}
		s.LogInfo(ctx, "POS session closed", slog.String("session_id", sessionID))
		return nil
	})
}

func (s *posService) AddService(ctx context.Context, operatorID, sessionID string, req domain.ServiceRequest) (*domain.Session, error) {
	return s.mutateCart(ctx, operatorID, sessionID, func(session *domain.Session) error {
		_, err := session.Cart.AddService(session.Catalog, req)
		return err
	})
}

func (s *posService) AddGCash(ctx context.Context, operatorID, sessionID string, kind domain.LineItemType, amount domain.Cents, reference string, split *domain.FeeSplit) (*domain.Session, error) {
	return s.mutateCart(ctx, operatorID, sessionID, func(session *domain.Session) error {
		switch kind {
		case domain.LineItemGCashIn:
			_, err := session.Cart.AddGCashCashIn(amount, reference, split)
			return err
		case domain.LineItemGCashOut:
			_, err := session.Cart.AddGCashCashOut(amount, reference, split)
			return err
		}
		return fmt.Errorf("%w: unknown gcash transaction type %q", apperrors.ErrValidation, kind)
	})
}

func (s *posService) RemoveItem(ctx context.Context, operatorID, sessionID string, index int) (*domain.Session, error) {
	return s.mutateCart(ctx, operatorID, sessionID, func(session *domain.Session) error {
		return session.Cart.Remove(index)
	})
}

func (s *posService) ClearCart(ctx context.Context, operatorID, sessionID string) (*domain.Session, error) {
	return s.mutateCart(ctx, operatorID, sessionID, func(session *domain.Session) error {
		session.Cart.Clear()
		return nil
	})
}

// QuoteFee returns the fee a GCash transaction of amount would carry.
func (s *posService) QuoteFee(amount domain.Cents) (domain.Cents, error) {
	return domain.GCashFee(amount)
}

// Checkout commits the session's cart. Checkout holds the session lock from
// the read of the cart to the save of the cleared cart, so a concurrent
// checkout or cart edit fails instead of being lost or double-committed.
func (s *posService) Checkout(ctx context.Context, operatorID, sessionID string) (*domain.CommitResult, error) {
	var result *domain.CommitResult
	err := s.withSessionLock(ctx, sessionID, func() error {
		session, err := s.loadSession(ctx, operatorID, sessionID)
		if err != nil {
			return err
		}
		if session.Cart.Len() == 0 {
			return &apperrors.EmptyTransactionError{}
		}

		result, err = s.ledger.Commit(ctx, operatorID, session.Cart.Items())
		if err != nil {
			return err
		}

		// The sale is committed; the cart must be cleared even if the caller has gone.
		session.Cart.Clear()
		if err := s.sessions.SaveSession(context.WithoutCancel(ctx), session); err != nil {
			// A stale cart is recoverable by the operator.
			s.LogError(ctx, err, "Failed to clear cart after checkout",
				slog.String("session_id", sessionID),
				slog.String("transaction_id", result.Transaction.TransactionID))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// withSessionLock runs fn as the only writer of the session.
func (s *posService) withSessionLock(ctx context.Context, sessionID string, fn func() error) error {
	token := s.NewID()
	acquired, err := s.sessions.AcquireSessionLock(ctx, sessionID, token, s.sessionLockTTL)
	if err != nil {
		s.LogError(ctx, err, "Failed to acquire session lock", slog.String("session_id", sessionID))
		return fmt.Errorf("failed to acquire session lock: %w", err)
	}
	if !acquired {
		return &apperrors.CheckoutInProgressError{SessionID: sessionID}
	}
	defer func() {
		if err := s.sessions.ReleaseSessionLock(context.WithoutCancel(ctx), sessionID, token); err != nil {
			s.LogError(ctx, err, "Failed to release session lock", slog.String("session_id", sessionID))
		}
	}()
	return fn()
}

func (s *posService) loadSession(ctx context.Context, operatorID, sessionID string) (*domain.Session, error) {
	session, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := session.AuthorizeOperator(operatorID); err != nil {
		s.LogInfo(ctx, "Rejected session access by another operator", slog.String("session_id", sessionID))
		return nil, err
	}
	return session, nil
}

func (s *posService) mutateCart(ctx context.Context, operatorID, sessionID string, fn func(*domain.Session) error) (*domain.Session, error) {
	var session *domain.Session
	err := s.withSessionLock(ctx, sessionID, func() error {
		var err error
		session, err = s.loadSession(ctx, operatorID, sessionID)
		if err != nil {
			return err
		}
		if err := fn(session); err != nil {
			return err
		}
		if err := s.sessions.SaveSession(ctx, session); err != nil {
			s.LogError(ctx, err, "Failed to save session", slog.String("session_id", sessionID))
			return fmt.Errorf("failed to save session: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}
