package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"

	"github.com/klwxsrx/adoption-portal/pkg/log"
)

const (
	defaultConnectionTimeout = 20 * time.Second
	defaultDialTimeout       = 3 * time.Second
	defaultReadTimeout       = 2 * time.Second
	defaultPoolSize          = 20
)

type Config struct {
	Address           string
	Password          string
	DB                int
	ConnectionTimeout time.Duration
}

type Client struct {
	*redis.Client
	logger log.Logger
}

// NewClient connects to Redis and pings it with exponential backoff until
// ConnectionTimeout elapses.
func NewClient(ctx context.Context, config Config, logger log.Logger) (*Client, error) {
	if config.Address == "" {
		return nil, errors.New("redis address is required")
	}
	if config.ConnectionTimeout <= 0 {
		config.ConnectionTimeout = defaultConnectionTimeout
	}

	impl := redis.NewClient(&redis.Options{
		Addr:         config.Address,
		Password:     config.Password,
		DB:           config.DB,
		DialTimeout:  defaultDialTimeout,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultReadTimeout,
		PoolSize:     defaultPoolSize,
	})

	err := backoff.Retry(func() error {
		return impl.Ping(ctx).Err()
	}, backoff.WithContext(connectionBackOff(config.ConnectionTimeout), ctx))
	if err != nil {
		_ = impl.Close()
		return nil, fmt.Errorf("ping redis %s: %w", config.Address, err)
	}

	return &Client{
		Client: impl,
		logger: logger,
	}, nil
}

func (c *Client) Close(ctx context.Context) {
	err := c.Client.Close()
	if err != nil {
		c.logger.WithError(err).Error(ctx, "failed to close redis client")
	}
}

func connectionBackOff(timeout time.Duration) backoff.BackOff {
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = time.Second
	eb.RandomizationFactor = 0
	eb.Multiplier = 2
	eb.MaxInterval = timeout / 4
	eb.MaxElapsedTime = timeout
	return eb
}
