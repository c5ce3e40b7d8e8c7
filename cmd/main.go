package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	amqp "github.com/rabbitmq/amqp091-go"
	"golang.org/x/sync/errgroup"

	"github.com/shenikar/geofence_monitoring/internal/config"
	"github.com/shenikar/geofence_monitoring/internal/device"
	v1 "github.com/shenikar/geofence_monitoring/internal/handler/http/v1"
	"github.com/shenikar/geofence_monitoring/internal/notify"
	"github.com/shenikar/geofence_monitoring/internal/repository"
	"github.com/shenikar/geofence_monitoring/internal/service"
	"github.com/shenikar/geofence_monitoring/internal/tracking"
	"github.com/shenikar/geofence_monitoring/internal/webhook"
	"github.com/shenikar/geofence_monitoring/pkg/logger"
	"github.com/shenikar/geofence_monitoring/pkg/postgres"
	redisclient "github.com/shenikar/geofence_monitoring/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/geofence_monitoring/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Geofence Monitoring API
// @version 1.0
// @description Location monitoring for caregivers: safe zones, graded alerts and live notifications.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(cfg.MigrationsPath, migrationURL)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	if err := run(cfg, log); err != nil {
		log.Errorf("Service stopped with error: %v", err)
		os.Exit(1)
	}
	log.Info("Server gracefully stopped")
}

// run поднимает зависимости и работает до сигнала остановки.
// Все ресурсы закрываются отложенными вызовами до выхода из процесса.
func run(cfg *config.Config, log *logrus.Logger) error {
	// Контекст для graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		return fmt.Errorf("database migrations: %w", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect to PostgreSQL: %w", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect to Redis: %w", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Издатель push-уведомлений
	var publisher webhook.Publisher
	switch cfg.PushTransport {
	case "rabbitmq":
		conn, err := amqp.Dial(cfg.RabbitMQURL)
		if err != nil {
			return fmt.Errorf("connect to RabbitMQ: %w", err)
		}
		defer conn.Close()

		rabbitPublisher, err := webhook.NewRabbitPublisher(conn)
		if err != nil {
			return fmt.Errorf("init RabbitMQ publisher: %w", err)
		}
		defer rabbitPublisher.Close()
		publisher = rabbitPublisher
		log.Info("Push notifications published to RabbitMQ")
	default:
		publisher = webhook.NewRedisPublisher(redisClient)
	}

	// Инициализация репозиториев
	subjectRepo := repository.NewSubjectRepository(dbpool, redisClient, cfg.GeofenceCacheTTL)
	alertRepo := repository.NewAlertRepository(dbpool)

	feed := newChangeFeed(cfg, redisClient, log)

	// Инициализация сервисов
	subjectService := service.NewSubjectService(subjectRepo, log)
	geofenceService := service.NewGeofenceService(subjectRepo, log)
	alertService := service.NewAlertService(alertRepo, log, cfg, feed, publisher)
	evaluator := service.NewEvaluator(alertService, log)

	// Устройства, отслеживание и живая лента уведомлений
	hub := device.NewHub(log, cfg)
	trackingManager := tracking.NewManager(hub, subjectService, geofenceService, evaluator, log, cfg)
	defer trackingManager.StopAll()
	relay := notify.NewRelay(alertService, log, cfg)

	if cfg.MQTTBroker != "" {
		mqttClient, err := device.NewMQTTClient(cfg)
		if err != nil {
			return fmt.Errorf("connect to MQTT broker: %w", err)
		}
		subscriber := device.NewMQTTSubscriber(mqttClient, cfg.MQTTTopic, hub, log)
		if err := subscriber.Start(); err != nil {
			return fmt.Errorf("subscribe to device positions: %w", err)
		}
		defer subscriber.Stop()
	}

	// Инициализация хэндлеров
	handler := v1.NewHandler(v1.Deps{
		Subjects:  subjectService,
		Geofences: geofenceService,
		Alerts:    alertService,
		Evaluator: evaluator,
		Tracking:  trackingManager,
		Devices:   hub,
		Relay:     relay,
	}, log, cfg)

	// Настройка Gin роутера
	router := gin.New()
	router.Use(gin.Recovery())
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	g, gctx := errgroup.WithContext(ctx)
	srv := newHTTPServer(gctx, cfg.HTTPPort, router)

	g.Go(func() error {
		log.Infof("HTTP server started on port %s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return relay.Run(gctx, feed)
	})

	if cfg.PushTransport != "rabbitmq" {
		worker := webhook.NewWorker(redisClient, log, cfg)
		g.Go(func() error {
			return worker.Run(gctx)
		})
	}

	// Graceful shutdown
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Received shutdown signal, shutting down server...")

		trackingManager.StopAll()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
