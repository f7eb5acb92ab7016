package redis

import (
	"context"

	goredis "github.com/redis/go-redis/v9"
)

// NewClient returns nil when addr is empty so callers can run without a hot cache.
func NewClient(ctx context.Context, addr, password string) (*goredis.Client, error) {
	if addr == "" {
		return nil, nil
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	return client, nil
}
