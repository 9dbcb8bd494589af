package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/gcash_pos_backend/internal/apperrors"
	"github.com/SscSPs/gcash_pos_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/gcash_pos_backend/internal/core/ports/repositories"
	"github.com/go-redis/redis/v8"
)

const (
	sessionKeyPrefix = "pos:session:"
	lockKeyPrefix    = "pos:session-lock:"
)

// releaseLockScript deletes the lock only when it still carries the caller's token.
const releaseLockScript = `if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`

func sessionKey(id string) string { return sessionKeyPrefix + id }
func lockKey(id string) string    { return lockKeyPrefix + id }

// RedisSessionStore keeps sessions as JSON documents with a sliding expiry.
type RedisSessionStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisSessionStore creates a session store on rdb. Each save extends the
// session's lifetime to ttl.
func NewRedisSessionStore(rdb *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{rdb: rdb, ttl: ttl}
}

var _ portsrepo.SessionStore = (*RedisSessionStore)(nil)

func (s *RedisSessionStore) GetSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	raw, err := s.rdb.Get(ctx, sessionKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: session %s", apperrors.ErrNotFound, sessionID)
		}
		return nil, fmt.Errorf("failed to read session %s: %w", sessionID, err)
	}
	return decodeSession(raw)
}

func (s *RedisSessionStore) SaveSession(ctx context.Context, session *domain.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session %s: %w", session.SessionID, err)
	}
	if err := s.rdb.Set(ctx, sessionKey(session.SessionID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write session %s: %w", session.SessionID, err)
	}
	return nil
}

func (s *RedisSessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	if err := s.rdb.Del(ctx, sessionKey(sessionID), lockKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete session %s: %w", sessionID, err)
	}
	return nil
}

// AcquireSessionLock uses SET NX so exactly one caller wins until release or ttl.
func (s *RedisSessionStore) AcquireSessionLock(ctx context.Context, sessionID, token string, ttl time.Duration) (bool, error) {
	ok, err := s.rdb.SetNX(ctx, lockKey(sessionID), token, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire session lock for %s: %w", sessionID, err)
	}
	return ok, nil
}

// ReleaseSessionLock is a compare-and-delete, so a holder whose lock already
// expired cannot drop the lock of the next holder.
func (s *RedisSessionStore) ReleaseSessionLock(ctx context.Context, sessionID, token string) error {
	if err := s.rdb.Eval(ctx, releaseLockScript, []string{lockKey(sessionID)}, token).Err(); err != nil {
		return fmt.Errorf("failed to release session lock for %s: %w", sessionID, err)
	}
	return nil
}

func decodeSession(raw []byte) (*domain.Session, error) {
	var session domain.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	if session.Cart == nil {
		session.Cart = domain.NewCart()
	}
	if session.Catalog == nil {
		session.Catalog = domain.PriceCatalog{}
	}
	return &session, nil
}
