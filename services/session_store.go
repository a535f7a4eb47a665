package services

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const SessionTTL = 24 * time.Hour

// Session is the server-held record a session cookie points at. It never
// carries more than the admin's public identity.
type Session struct {
	AdminID  string `json:"admin_id"`
	Username string `json:"username"`
}

type localSession struct {
	session   Session
	expiresAt time.Time
}

// SessionStore keeps sessions in redis when a client is available and in a
// mutex-guarded map otherwise. Sessions expire after SessionTTL or when
// destroyed by logout, whichever comes first.
type SessionStore struct {
	rdb   *redis.Client
	mu    sync.Mutex
	local map[string]localSession
	now   func() time.Time
}

func NewSessionStore(rdb *redis.Client) *SessionStore {
	return &SessionStore{
		rdb:   rdb,
		local: make(map[string]localSession),
		now:   time.Now,
	}
}

func sessionKey(id string) string {
	return "session:" + id
}

func (s *SessionStore) Create(ctx context.Context, adminID, username string) (string, error) {
	id := uuid.NewString()
	session := Session{AdminID: adminID, Username: username}

	if s.rdb != nil {
		payload, err := json.Marshal(session)
		if err != nil {
			return "", err
		}
		if err := s.rdb.Set(ctx, sessionKey(id), payload, SessionTTL).Err(); err != nil {
			return "", err
		}
		return id, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.local[id] = localSession{session: session, expiresAt: s.now().Add(SessionTTL)}
	return id, nil
}

// Get returns (nil, nil) for unknown or expired session ids.
func (s *SessionStore) Get(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		return nil, nil
	}

	if s.rdb != nil {
		payload, err := s.rdb.Get(ctx, sessionKey(id)).Result()
		if err == redis.Nil {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		session := &Session{}
		if err := json.Unmarshal([]byte(payload), session); err != nil {
			return nil, err
		}
		return session, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.local[id]
	if !ok {
		return nil, nil
	}
	if s.now().After(entry.expiresAt) {
		delete(s.local, id)
		return nil, nil
	}
	session := entry.session
	return &session, nil
}

// Destroy is idempotent; destroying a session that never existed is fine.
func (s *SessionStore) Destroy(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}

	if s.rdb != nil {
		return s.rdb.Del(ctx, sessionKey(id)).Err()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.local, id)
	return nil
}
