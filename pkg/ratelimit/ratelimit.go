// Package ratelimit implements sliding-window request limits keyed by an arbitrary string,
// usually the client IP address.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"pouringat.com/PouringAt/configs"
)

type Config struct {
	// Requests is the number of requests allowed in any window.
	Requests int
	Window   time.Duration
}

func FromConfig(conf configs.RateLimit) Config {
	return Config{Requests: conf.Requests, Window: conf.Window}
}

func (c Config) Validate() error {
	if c.Requests <= 0 {
		return fmt.Errorf("requests must be > 0 (got %d)", c.Requests)
	}

	if c.Window <= 0 {
		return fmt.Errorf("window must be > 0 (got %s)", c.Window)
	}

	return nil
}

type Result struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// Limiter checks and records a request for a key in one atomic step.
type Limiter interface {
	Allow(ctx context.Context, key string) (Result, error)
}
