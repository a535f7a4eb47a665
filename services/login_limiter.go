package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	loginWindow      = 15 * time.Minute
	loginMaxAttempts = 5
)

// LoginLimiter caps login attempts per caller at loginMaxAttempts within a
// loginWindow. Redis-backed when available (INCR with window expiry, the
// express-rate-limit scheme); rolling in-memory window otherwise.
type LoginLimiter struct {
	rdb      *redis.Client
	mu       sync.Mutex
	attempts map[string][]time.Time
	now      func() time.Time
}

func NewLoginLimiter(rdb *redis.Client) *LoginLimiter {
	return &LoginLimiter{
		rdb:      rdb,
		attempts: make(map[string][]time.Time),
		now:      time.Now,
	}
}

// Allow records an attempt for key and reports whether it may proceed.
func (l *LoginLimiter) Allow(ctx context.Context, key string) bool {
	if l.rdb != nil {
		count, err := l.rdb.Incr(ctx, "login_attempts:"+key).Result()
		if err == nil {
			if count == 1 {
				l.rdb.Expire(ctx, "login_attempts:"+key, loginWindow)
			}
			return count <= loginMaxAttempts
		}
		log.Printf("rate limiter redis error, falling back to memory: %v", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-loginWindow)

	recent := l.attempts[key][:0]
	for _, t := range l.attempts[key] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}

	if len(recent) >= loginMaxAttempts {
		l.attempts[key] = recent
		return false
	}

	l.attempts[key] = append(recent, now)
	return true
}
