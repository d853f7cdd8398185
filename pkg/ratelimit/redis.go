package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "ratelimit:"

// slidingWindow trims entries older than the window, then records the request only when the
// window still has room. Running it as a script makes check-and-increment atomic per key.
var slidingWindow = redis.NewScript(`
local key = KEYS[1]
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])
local member = ARGV[4]

redis.call('ZREMRANGEBYSCORE', key, '-inf', now - window)

local count = redis.call('ZCARD', key)
if count < limit then
	redis.call('ZADD', key, now, member)
	redis.call('PEXPIRE', key, window)
	return {1, limit - count - 1, 0}
end

local oldest = redis.call('ZRANGE', key, 0, 0, 'WITHSCORES')
local retry = window
if oldest[2] then
	retry = tonumber(oldest[2]) + window - now
end
return {0, 0, retry}
`)

type RedisLimiter struct {
	client redis.Scripter
	config Config
	now    func() time.Time
}

func NewRedisLimiter(client redis.Scripter, config Config) *RedisLimiter {
	return &RedisLimiter{client: client, config: config, now: time.Now}
}

func (r *RedisLimiter) Allow(ctx context.Context, key string) (Result, error) {
	values, err := slidingWindow.Run(ctx, r.client, []string{keyPrefix + key},
		r.now().UnixMilli(),
		r.config.Window.Milliseconds(),
		r.config.Requests,
		uuid.NewString(),
	).Int64Slice()
	if err != nil {
		return Result{}, fmt.Errorf("rate limit script: %w", err)
	}

	if len(values) != 3 {
		return Result{}, fmt.Errorf("rate limit script: unexpected reply %v", values)
	}

	return Result{
		Allowed:    values[0] == 1,
		Remaining:  int(values[1]),
		RetryAfter: time.Duration(values[2]) * time.Millisecond,
	}, nil
}
