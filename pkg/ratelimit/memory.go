package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryLimiter keeps a log of request times per key. It is only correct within a single process.
type MemoryLimiter struct {
	config Config
	now    func() time.Time

	mu   sync.Mutex
	logs map[string][]time.Time
}

func NewMemoryLimiter(config Config) *MemoryLimiter {
	return NewMemoryLimiterWithClock(config, time.Now)
}

func NewMemoryLimiterWithClock(config Config, now func() time.Time) *MemoryLimiter {
	return &MemoryLimiter{config: config, now: now, logs: make(map[string][]time.Time)}
}

func (m *MemoryLimiter) Allow(_ context.Context, key string) (Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	log := trim(m.logs[key], now.Add(-m.config.Window))

	if len(log) >= m.config.Requests {
		m.logs[key] = log

		return Result{Allowed: false, RetryAfter: log[0].Add(m.config.Window).Sub(now)}, nil
	}

	log = append(log, now)
	m.logs[key] = log

	return Result{Allowed: true, Remaining: m.config.Requests - len(log)}, nil
}

// Cleanup drops keys with no requests inside the current window.
func (m *MemoryLimiter) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := m.now().Add(-m.config.Window)

	for key, log := range m.logs {
		if len(trim(log, cutoff)) == 0 {
			delete(m.logs, key)
		}
	}
}

// trim drops entries at or before cutoff. The log is sorted oldest first.
func trim(log []time.Time, cutoff time.Time) []time.Time {
	index := 0
	for index < len(log) && !log[index].After(cutoff) {
		index++
	}

	return log[index:]
}
