package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/geofence_monitoring/internal/models"
)

const (
	webhookQueueKey = "geofence_alert_events"
)

// AlertEvent - структура для push-уведомления опекуну о нарушении зоны
type AlertEvent struct {
	Type        string                `json:"type"`
	Title       string                `json:"title"`
	Message     string                `json:"message"`
	CaregiverID string                `json:"caregiver_id"`
	Alert       *models.GeofenceAlert `json:"alert"`
	PublishedAt time.Time             `json:"published_at"`
}

// NewAlertEvent собирает событие для алерта
func NewAlertEvent(alert *models.GeofenceAlert, now time.Time) AlertEvent {
	return AlertEvent{
		Type:        "geofence_alert",
		Title:       "Safety Alert",
		Message:     AlertMessage(alert),
		CaregiverID: alert.CaregiverID,
		Alert:       alert,
		PublishedAt: now,
	}
}

// AlertMessage - человекочитаемый текст алерта
func AlertMessage(alert *models.GeofenceAlert) string {
	return fmt.Sprintf("%s is outside the safe zone (%dm away)",
		alert.SubjectName, int64(math.Round(alert.DistanceFromCenterMeters)))
}

//go:generate mockgen -source=publisher.go -destination=mocks/mocks.go -package=mocks

// Publisher - интерфейс для публикации push-событий
type Publisher interface {
	Publish(ctx context.Context, event AlertEvent) error
}

// RedisPublisher - реализация Publisher, использующая очередь Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish публикует событие в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, event AlertEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal alert event: %w", err)
	}

	// LPUSH в левую часть списка, воркер забирает справа
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish alert event to Redis: %w", err)
	}
	return nil
}
