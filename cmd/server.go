package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/geofence_monitoring/internal/config"
	"github.com/shenikar/geofence_monitoring/internal/notify"
	"github.com/sirupsen/logrus"
)

// newHTTPServer создаёт сервер, контексты запросов которого отменяются вместе с ctx.
// Иначе открытые SSE-потоки держат Shutdown до истечения его таймаута.
func newHTTPServer(ctx context.Context, port string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%s", port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}
}

// newChangeFeed выбирает ленту изменений журнала: Redis Pub/Sub для нескольких экземпляров
// или лента в памяти процесса
func newChangeFeed(cfg *config.Config, redisClient *redis.Client, log *logrus.Logger) notify.Feed {
	if cfg.ChangeFeed == "local" {
		log.Info("Alert changes are relayed in-process")
		return notify.NewLocalFeed()
	}
	return notify.NewRedisFeed(redisClient, log)
}
