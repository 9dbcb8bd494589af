package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/gcash_pos_backend/internal/core/domain"
)

// SessionStore keeps open POS sessions between requests
type SessionStore interface {
	// GetSession returns apperrors.ErrNotFound for unknown or expired sessions.
	GetSession(ctx context.Context, sessionID string) (*domain.Session, error)

	// SaveSession stores the session and refreshes its expiry.
	SaveSession(ctx context.Context, session *domain.Session) error

	DeleteSession(ctx context.Context, sessionID string) error

	// AcquireSessionLock claims the session for one writer and returns false
	// while another holder's lock is live. The lock expires after ttl; token
	// identifies the holder.
	AcquireSessionLock(ctx context.Context, sessionID, token string, ttl time.Duration) (bool, error)

	// ReleaseSessionLock drops the lock only if token still holds it.
	ReleaseSessionLock(ctx context.Context, sessionID, token string) error
}
