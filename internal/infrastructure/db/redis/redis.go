package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Open creates a client for the given address and logical database index and
// verifies connectivity with a ping before handing it out. A non-positive
// connectTimeout falls back to 5s.
func Open(ctx context.Context, addr string, db int, connectTimeout time.Duration) (*redis.Client, error) {
	if connectTimeout <= 0 {
		connectTimeout = 5 * time.Second
	}

	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return client, nil
}
