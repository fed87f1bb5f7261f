package ratelimit

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// The first hit in a window starts its expiry; later hits only count.
var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
local ttl = redis.call("PTTL", KEYS[1])
return {current, ttl}
`)

// Redis shares counters between instances through Redis. When Redis is
// unreachable it degrades to a per-process Memory limiter.
type Redis struct {
	client   redis.Scripter
	limit    int
	window   time.Duration
	prefix   string
	timeout  time.Duration
	fallback *Memory
	log      *slog.Logger
}

// NewRedis creates a Redis-backed limiter allowing limit requests per window.
func NewRedis(log *slog.Logger, client redis.Scripter, limit int, win time.Duration, prefix string) *Redis {
	fallback := NewMemory(limit, win)
	return &Redis{
		client:   client,
		limit:    fallback.limit,
		window:   fallback.window,
		prefix:   prefix,
		timeout:  2 * time.Second,
		fallback: fallback,
		log:      log.With("component", "ratelimit"),
	}
}

// Allow counts one request for key.
func (l *Redis) Allow(ctx context.Context, key string) Decision {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	res, err := fixedWindowScript.Run(ctx, l.client, []string{l.prefix + key}, l.window.Milliseconds()).Int64Slice()
	if err != nil || len(res) < 2 {
		l.log.WarnContext(ctx, "redis rate limit unavailable, using memory", slog.Any("error", err))
		return l.fallback.Allow(ctx, key)
	}

	count, ttl := res[0], res[1]
	if ttl < 0 {
		ttl = l.window.Milliseconds()
	}
	return decide(int(count), l.limit, time.Now().UTC().Add(time.Duration(ttl)*time.Millisecond))
}
