// Package notify поддерживает живое представление последних алертов для подписанных опекунов.
package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/geofence_monitoring/internal/config"
	"github.com/shenikar/geofence_monitoring/internal/models"
	"github.com/shenikar/geofence_monitoring/internal/webhook"
	"github.com/sirupsen/logrus"
)

const (
	defaultViewLimit = 20
	notificationLink = "/caregiver/patients"
)

// Notification - элемент ленты уведомлений опекуна
type Notification struct {
	ID        uuid.UUID             `json:"id"`
	Type      string                `json:"type"`
	Title     string                `json:"title"`
	Message   string                `json:"message"`
	Timestamp time.Time             `json:"timestamp"`
	IsRead    bool                  `json:"is_read"`
	Link      string                `json:"link"`
	Alert     *models.GeofenceAlert `json:"alert"`
}

// Snapshot - полное пересчитанное представление, а не разница с предыдущим
type Snapshot struct {
	CaregiverID   string         `json:"caregiver_id"`
	Notifications []Notification `json:"notifications"`
	UnreadCount   int            `json:"unread_count"`
}

// AlertReader - часть журнала алертов, нужная ретранслятору
type AlertReader interface {
	ListForCaregiver(ctx context.Context, caregiverID string, unreadOnly bool, limit int) ([]*models.GeofenceAlert, error)
	UnreadCount(ctx context.Context, caregiverID string) (int, error)
}

// Relay рассылает снимки подписчикам при каждом изменении журнала их опекуна.
// Обработчик не должен блокироваться.
type Relay struct {
	alerts AlertReader
	logger *logrus.Logger
	limit  int

	mu      sync.Mutex
	watches map[string]*watch
	nextID  uint64
}

// watch - подписчики одного опекуна. delivery удерживается на время пересчёта
// и рассылки снимка: более старый снимок не может прийти после более нового.
type watch struct {
	delivery    sync.Mutex
	subscribers map[uint64]func(Snapshot)
}

func NewRelay(alerts AlertReader, logger *logrus.Logger, cfg *config.Config) *Relay {
	limit := cfg.NotificationViewLimit
	if limit <= 0 {
		limit = defaultViewLimit
	}
	return &Relay{
		alerts:  alerts,
		logger:  logger,
		limit:   limit,
		watches: make(map[string]*watch),
	}
}

// Subscribe регистрирует fn и сразу отдаёт текущий снимок.
// Возвращённая функция снимает только эту подписку, повторный вызов безопасен.
func (r *Relay) Subscribe(ctx context.Context, caregiverID string, fn func(Snapshot)) (func(), error) {
	r.mu.Lock()
	id := r.nextID
	r.nextID++
	w, ok := r.watches[caregiverID]
	if !ok {
		w = &watch{subscribers: make(map[uint64]func(Snapshot))}
		r.watches[caregiverID] = w
	}
	w.subscribers[id] = fn
	r.mu.Unlock()

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			r.mu.Lock()
			defer r.mu.Unlock()
			delete(w.subscribers, id)
			if len(w.subscribers) == 0 && r.watches[caregiverID] == w {
				delete(r.watches, caregiverID)
			}
		})
	}

	w.delivery.Lock()
	snapshot, err := r.Snapshot(ctx, caregiverID)
	if err == nil {
		fn(snapshot)
	}
	w.delivery.Unlock()
	if err != nil {
		unsubscribe()
		return nil, err
	}

	r.logger.WithFields(logrus.Fields{
		"service":      "relay",
		"caregiver_id": caregiverID,
	}).Debug("Notification subscriber registered")
	return unsubscribe, nil
}

// Snapshot пересчитывает представление опекуна из журнала
func (r *Relay) Snapshot(ctx context.Context, caregiverID string) (Snapshot, error) {
	alerts, err := r.alerts.ListForCaregiver(ctx, caregiverID, false, r.limit)
	if err != nil {
		return Snapshot{}, fmt.Errorf("relay: could not list alerts: %w", err)
	}
	unread, err := r.alerts.UnreadCount(ctx, caregiverID)
	if err != nil {
		return Snapshot{}, fmt.Errorf("relay: could not count unread alerts: %w", err)
	}

	notifications := make([]Notification, 0, len(alerts))
	for _, alert := range alerts {
		notifications = append(notifications, Notification{
			ID:        alert.ID,
			Type:      "geofence_alert",
			Title:     "Safety Alert",
			Message:   webhook.AlertMessage(alert),
			Timestamp: alert.Timestamp,
			IsRead:    alert.IsRead,
			Link:      notificationLink,
			Alert:     alert,
		})
	}

	return Snapshot{
		CaregiverID:   caregiverID,
		Notifications: notifications,
		UnreadCount:   unread,
	}, nil
}

// Refresh пересчитывает снимок и отправляет его всем подписчикам опекуна
func (r *Relay) Refresh(ctx context.Context, caregiverID string) {
	r.mu.Lock()
	w, ok := r.watches[caregiverID]
	r.mu.Unlock()
	if !ok {
		return
	}

	w.delivery.Lock()
	defer w.delivery.Unlock()

	log := r.logger.WithFields(logrus.Fields{
		"service":      "relay",
		"method":       "Refresh",
		"caregiver_id": caregiverID,
	})

	snapshot, err := r.Snapshot(ctx, caregiverID)
	if err != nil {
		log.WithError(err).Error("Failed to recompute notifications snapshot")
		return
	}

	subscribers := r.subscribers(w)
	for _, fn := range subscribers {
		fn(snapshot)
	}
	log.WithField("subscribers", len(subscribers)).Debug("Notifications snapshot delivered")
}

// Run обрабатывает ленту изменений до отмены ctx
func (r *Relay) Run(ctx context.Context, feed Feed) error {
	r.logger.Info("Notification relay started")
	changes := feed.Listen(ctx)
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("Notification relay stopped")
			return nil
		case caregiverID, ok := <-changes:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("relay: change feed closed")
			}
			r.Refresh(ctx, caregiverID)
		}
	}
}

// ActiveWatches возвращает число опекунов с живыми подписками
func (r *Relay) ActiveWatches() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.watches)
}

// Subscribers возвращает число подписчиков опекуна
func (r *Relay) Subscribers(caregiverID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if w, ok := r.watches[caregiverID]; ok {
		return len(w.subscribers)
	}
	return 0
}

func (r *Relay) subscribers(w *watch) []func(Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	fns := make([]func(Snapshot), 0, len(w.subscribers))
	for _, fn := range w.subscribers {
		fns = append(fns, fn)
	}
	return fns
}
