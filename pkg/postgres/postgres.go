package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/geofence_monitoring/internal/config"
)

const (
	pingTimeout     = 5 * time.Second
	maxConnIdleTime = 5 * time.Minute
)

// NewPostgresDB открывает пул соединений с хранилищем подопечных и журналом тревог
func NewPostgresDB(ctx context.Context, appCfg *config.Config) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(appCfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres config: %w", err)
	}
	poolCfg.MaxConns = appCfg.DBMaxConns
	poolCfg.MaxConnIdleTime = maxConnIdleTime
	// Трекеры пишут в базу по таймеру, одно соединение держим всегда
	poolCfg.MinConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres unreachable at startup: %w", err)
	}

	return pool, nil
}
