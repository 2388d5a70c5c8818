// Package session implements the Redis-backed login session store. A session
// is created on login, resolved by the middleware on every request, and
// destroyed on logout.
package session

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// CookieName is the cookie carrying the session id.
const CookieName = "session_id"

type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

func (s *Store) TTL() time.Duration {
	return s.ttl
}

// Create stores a new session mapping a fresh session id to userID.
func (s *Store) Create(ctx context.Context, userID uint) (string, error) {
	sid := uuid.New().String()
	if err := s.rdb.Set(ctx, key(sid), strconv.FormatUint(uint64(userID), 10), s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}
	return sid, nil
}

// Get returns the user id for a session, or 0 if the session is missing or
// expired.
func (s *Store) Get(ctx context.Context, sessionID string) (uint, error) {
	val, err := s.rdb.Get(ctx, key(sessionID)).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to look up session: %w", err)
	}
	userID, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt session value %q: %w", val, err)
	}
	return uint(userID), nil
}

// Destroy removes a session. Destroying a session that no longer exists is
// not an error.
func (s *Store) Destroy(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, key(sessionID)).Err()
}

func key(sessionID string) string {
	return "session:" + sessionID
}
