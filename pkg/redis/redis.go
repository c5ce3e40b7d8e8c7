package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/geofence_monitoring/internal/config"
)

const (
	dialTimeout = 5 * time.Second
	pingTimeout = 3 * time.Second
)

// NewRedisClient подключается к Redis: кэш зон, очередь push-уведомлений и канал изменений журнала
func NewRedisClient(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        cfg.RedisAddr,
		Password:    cfg.RedisPass,
		DB:          cfg.RedisDB,
		PoolSize:    10,
		DialTimeout: dialTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis unreachable at %s: %w", cfg.RedisAddr, err)
	}

	return client, nil
}
