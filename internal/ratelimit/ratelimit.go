// Package ratelimit bounds how often a client may perform an action.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter reports whether the caller identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

const maxTrackedKeys = 10000

// Memory keeps one token bucket per key in process memory. Each bucket holds
// limit tokens refilled evenly over window.
type Memory struct {
	mu       sync.RWMutex
	limiters map[string]*rate.Limiter
	rate     rate.Limit
	burst    int
}

func NewMemory(limit int, window time.Duration) *Memory {
	if limit <= 0 {
		limit = 1
	}
	if window <= 0 {
		window = time.Hour
	}
	return &Memory{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Every(window / time.Duration(limit)),
		burst:    limit,
	}
}

func (m *Memory) Allow(_ context.Context, key string) (bool, error) {
	return m.get(key).Allow(), nil
}

func (m *Memory) get(key string) *rate.Limiter {
	m.mu.RLock()
	limiter, exists := m.limiters[key]
	m.mu.RUnlock()

	if exists {
		return limiter
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if limiter, exists = m.limiters[key]; exists {
		return limiter
	}
	if len(m.limiters) >= maxTrackedKeys {
		m.limiters = make(map[string]*rate.Limiter)
	}

	limiter = rate.NewLimiter(m.rate, m.burst)
	m.limiters[key] = limiter
	return limiter
}

var _ Limiter = (*Memory)(nil)
