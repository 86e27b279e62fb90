package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"study-assistant/internal/config"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient creates a client and pings the server. Address may be a
// host:port pair or a redis:// URL.
func NewRedisClient(redisCfg config.RedisConfig) (*redis.Client, error) {
	if redisCfg.Address == "" {
		return nil, fmt.Errorf("redis configuration is missing or address is empty")
	}

	opt := &redis.Options{
		Addr:     redisCfg.Address,
		Password: redisCfg.Password,
		DB:       redisCfg.DB,
	}
	if strings.HasPrefix(redisCfg.Address, "redis://") || strings.HasPrefix(redisCfg.Address, "rediss://") {
		parsed, err := redis.ParseURL(redisCfg.Address)
		if err != nil {
			return nil, fmt.Errorf("invalid redis URL: %w", err)
		}
		opt = parsed
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", opt.Addr, err)
	}

	return client, nil
}
