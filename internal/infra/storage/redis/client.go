// Package redis persists walletfeed state that must outlive the process.
package redis

import (
	"context"
	"time"

	"github.com/gabapcia/walletfeed/internal/pkg/logger"
	"github.com/gabapcia/walletfeed/internal/pkg/resilience/retry"

	redis "github.com/redis/go-redis/v9"
)

// keyPrefix namespaces every key written by walletfeed.
const keyPrefix = "walletfeed"

type client struct {
	conn *redis.Client
}

func (c *client) Close() error {
	return c.conn.Close()
}

// Option configures NewClient.
type Option func(*options)

type options struct {
	retry retry.Retry
}

// WithRetry sets the policy used for the initial ping.
// Default: 3 attempts starting at 500ms.
func WithRetry(r retry.Retry) Option {
	return func(o *options) {
		o.retry = r
	}
}

// NewClient connects to the Redis server at addr and pings it until it
// answers or the retry policy gives up.
func NewClient(ctx context.Context, addr, username, password string, db int, opts ...Option) (*client, error) {
	o := options{
		retry: retry.New(retry.WithAttempts(3), retry.WithDelay(500*time.Millisecond)),
	}
	for _, opt := range opts {
		opt(&o)
	}

	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})

	err := o.retry.Execute(ctx, func() error {
		err := conn.Ping(ctx).Err()
		if err != nil {
			logger.Warn(ctx, "redis ping failed", "redis.addr", addr, "error", err)
		}
		return err
	})
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	return &client{
		conn: conn,
	}, nil
}
