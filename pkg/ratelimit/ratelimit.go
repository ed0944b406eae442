// Package ratelimit implements a fixed window request limiter on redis.
package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Options configure the redis connection and the default window.
type Options struct {
	// URL is a redis:// connection string. New returns a nil limiter when empty.
	URL          string
	PoolSize     int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	Window    time.Duration
	Limit     int64
	KeyPrefix string
}

// Result describes the state of a key after a request was counted.
type Result struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetAt   time.Time
}

// Redis counts requests per key in fixed windows. Each window has its own key
// expiring together with the window.
type Redis struct {
	client *redis.Client
	window time.Duration
	limit  int64
	prefix string
	now    func() time.Time
}

// New connects to redis and verifies the connection. It returns nil without
// error when no URL is configured.
func New(ctx context.Context, opts Options) (*Redis, error) {
	if opts.URL == "" {
		return nil, nil //nolint: nilnil
	}

	redisOpts, err := redis.ParseURL(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("could not parse redis URL: %w", err)
	}
	if opts.PoolSize > 0 {
		redisOpts.PoolSize = opts.PoolSize
	}
	if opts.DialTimeout > 0 {
		redisOpts.DialTimeout = opts.DialTimeout
	}
	if opts.ReadTimeout > 0 {
		redisOpts.ReadTimeout = opts.ReadTimeout
	}
	if opts.WriteTimeout > 0 {
		redisOpts.WriteTimeout = opts.WriteTimeout
	}

	client := redis.NewClient(redisOpts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, fmt.Errorf("could not ping redis: %w", err)
	}

	return NewWithClient(client, opts), nil
}

// NewWithClient builds a limiter on an existing client.
func NewWithClient(client *redis.Client, opts Options) *Redis {
	window := opts.Window
	if window <= 0 {
		window = time.Minute
	}

	return &Redis{
		client: client,
		window: window,
		limit:  opts.Limit,
		prefix: opts.KeyPrefix,
		now:    time.Now,
	}
}

// WithLimit returns a limiter sharing the connection but counting in its own
// namespace with a different limit.
func (r *Redis) WithLimit(namespace string, limit int64) *Redis {
	c := *r
	c.prefix = r.prefix + ":" + namespace
	c.limit = limit

	return &c
}

// Allow counts one request for key and reports whether it fits the window.
func (r *Redis) Allow(ctx context.Context, key string) (Result, error) {
	windowStart := r.now().Truncate(r.window)
	redisKey := r.prefix + ":" + key + ":" + strconv.FormatInt(windowStart.Unix(), 10)

	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, r.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return Result{}, fmt.Errorf("could not count request: %w", err)
	}

	count := incr.Val()

	return Result{
		Allowed:   count <= r.limit,
		Limit:     r.limit,
		Remaining: max(r.limit-count, 0),
		ResetAt:   windowStart.Add(r.window),
	}, nil
}

// Close releases the redis connection.
func (r *Redis) Close() error {
	return r.client.Close() //nolint: wrapcheck
}
