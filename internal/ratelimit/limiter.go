// Package ratelimit - ограничение частоты действий на пользователя (token bucket).
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const evictEvery = 512

// UserLimiter держит отдельный бакет на каждого пользователя
// и периодически выбрасывает давно неактивные.
type UserLimiter struct {
	limit   rate.Limit
	burst   int
	idleTTL time.Duration

	mu     sync.Mutex
	byUser map[uint]*entry
	hits   uint64
}

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewPerMinute возвращает nil, если лимит выключен (perMinute <= 0).
// nil-лимитер пропускает всё.
func NewPerMinute(perMinute, burst int, idleTTL time.Duration) *UserLimiter {
	if perMinute <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = 1
	}
	if idleTTL <= 0 {
		idleTTL = 10 * time.Minute
	}
	return &UserLimiter{
		limit:   rate.Limit(float64(perMinute) / 60.0),
		burst:   burst,
		idleTTL: idleTTL,
		byUser:  make(map[uint]*entry),
	}
}

// Allow списывает один токен пользователя на момент now
func (l *UserLimiter) Allow(userID uint, now time.Time) bool {
	if l == nil || userID == 0 {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.byUser[userID]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.byUser[userID] = e
	}
	e.lastSeen = now
	allowed := e.limiter.AllowN(now, 1)

	l.hits++
	if l.hits%evictEvery == 0 {
		cutoff := now.Add(-l.idleTTL)
		for id, v := range l.byUser {
			if v.lastSeen.Before(cutoff) {
				delete(l.byUser, id)
			}
		}
	}
	return allowed
}

// Size - число отслеживаемых пользователей
func (l *UserLimiter) Size() int {
	if l == nil {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.byUser)
}
