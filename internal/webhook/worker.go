package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/geofence_monitoring/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker/v2"
)

const popTimeout = 5 * time.Second

// Worker - доставляет push-события из очереди Redis на вебхук опекунского приложения
type Worker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
	breaker     *gobreaker.CircuitBreaker[*http.Response]
	sleep       func(time.Duration)
}

// NewWorker создает новый Worker
func NewWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *Worker {
	return &Worker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
		breaker: gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
			Name:        "push-webhook",
			MaxRequests: 1,
			Interval:    60 * time.Second,
			Timeout:     30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures > 5
			},
		}),
		sleep: time.Sleep,
	}
}

// Run обрабатывает очередь до отмены контекста
func (w *Worker) Run(ctx context.Context) error {
	w.logger.Info("Starting webhook worker...")
	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Stopping webhook worker.")
			return nil
		default:
		}

		// BRPOP с таймаутом, чтобы периодически проверять контекст
		result, err := w.redisClient.BRPop(ctx, popTimeout, webhookQueueKey).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) || errors.Is(err, context.Canceled) {
				continue
			}
			w.logger.WithError(err).Error("Failed to pop alert event from Redis")
			w.sleep(w.cfg.WebhookBaseDelay)
			continue
		}

		// result[0] - ключ, result[1] - значение
		w.processEvent(ctx, []byte(result[1]))
	}
}

func (w *Worker) processEvent(ctx context.Context, payload []byte) {
	var event AlertEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		w.logger.WithError(err).Error("Failed to unmarshal alert event from Redis")
		return
	}

	log := w.logger.WithField("caregiver_id", event.CaregiverID)
	if event.Alert != nil {
		log = log.WithField("alert_id", event.Alert.ID)
	}
	log.Debug("Processing alert event...")

	if w.cfg.WebhookURL == "" {
		log.Warn("Webhook URL is not configured. Skipping push delivery.")
		return
	}

	if err := w.deliver(ctx, payload); err != nil {
		log.WithError(err).Error("Failed to deliver push notification")
		return
	}
	log.Info("Push notification delivered successfully.")
}

func (w *Worker) deliver(ctx context.Context, payload []byte) error {
	maxRetries := w.cfg.WebhookMaxRetries
	delay := w.cfg.WebhookBaseDelay

	var lastErr error
	for i := 0; i < maxRetries; i++ {
		if i > 0 {
			w.sleep(delay)
			delay *= 2 // Экспоненциальная задержка
		}

		resp, err := w.breaker.Execute(func() (*http.Response, error) {
			return w.send(ctx, payload)
		})
		if err != nil {
			lastErr = err
			if errors.Is(err, gobreaker.ErrOpenState) {
				return fmt.Errorf("webhook circuit open: %w", err)
			}
			w.logger.WithError(err).Warnf("Push delivery failed. Retries left: %d", maxRetries-1-i)
			continue
		}
		_ = resp.Body.Close()
		return nil
	}
	return fmt.Errorf("failed after %d attempts: %w", maxRetries, lastErr)
}

// send выполняет один POST; ответ вне 2xx считается ошибкой
func (w *Worker) send(ctx context.Context, payload []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Добавляем HMAC подпись, если WEBHOOK_SECRET задан
	if w.cfg.WebhookSecret != "" {
		req.Header.Set("X-Webhook-Signature", generateHMACSHA256(payload, w.cfg.WebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
		return nil, fmt.Errorf("webhook responded with status %d", resp.StatusCode)
	}
	return resp, nil
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data []byte, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
