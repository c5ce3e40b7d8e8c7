package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/geofence_monitoring/internal/config"
	"github.com/shenikar/geofence_monitoring/internal/models"
	"github.com/shenikar/geofence_monitoring/internal/webhook"
	"github.com/sirupsen/logrus"
)

const defaultAlertListLimit = 50

type alertService struct {
	repo      AlertRepository
	logger    *logrus.Logger
	feed      ChangeFeed
	publisher webhook.Publisher
	listLimit int
	now       func() time.Time
}

// NewAlertService создаёт сервис журнала алертов. feed и publisher могут быть nil.
func NewAlertService(repo AlertRepository, logger *logrus.Logger, cfg *config.Config, feed ChangeFeed, publisher webhook.Publisher) AlertService {
	limit := cfg.AlertListLimit
	if limit <= 0 {
		limit = defaultAlertListLimit
	}
	return &alertService{
		repo:      repo,
		logger:    logger,
		feed:      feed,
		publisher: publisher,
		listLimit: limit,
		now:       time.Now,
	}
}

// Append сохраняет алерт и оповещает опекуна.
// Ошибки оповещения не отменяют запись: алерт уже сохранён.
func (s *alertService) Append(ctx context.Context, alert *models.GeofenceAlert) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "alert",
		"method":       "Append",
		"subject_id":   alert.SubjectID,
		"caregiver_id": alert.CaregiverID,
		"severity":     alert.Severity,
	})

	if err := s.repo.Append(ctx, alert); err != nil {
		log.WithError(err).Error("Failed to append alert in repository")
		return fmt.Errorf("service: could not append alert: %w", err)
	}
	log = log.WithField("alert_id", alert.ID)
	log.Info("Alert appended")

	s.publishChange(ctx, log, alert.CaregiverID)

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, webhook.NewAlertEvent(alert, s.now().UTC())); err != nil {
			log.WithError(err).Error("Failed to publish push notification")
		}
	}
	return nil
}

// ListForCaregiver возвращает алерты опекуна от новых к старым
func (s *alertService) ListForCaregiver(ctx context.Context, caregiverID string, unreadOnly bool, limit int) ([]*models.GeofenceAlert, error) {
	if limit < 1 || limit > s.listLimit {
		limit = s.listLimit
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":      "alert",
		"method":       "ListForCaregiver",
		"caregiver_id": caregiverID,
		"unread_only":  unreadOnly,
		"limit":        limit,
	})

	alerts, err := s.repo.ListForCaregiver(ctx, caregiverID, unreadOnly, limit)
	if err != nil {
		log.WithError(err).Error("Failed to list alerts from repository")
		return nil, fmt.Errorf("service: could not list alerts: %w", err)
	}

	log.WithField("count", len(alerts)).Debug("Alerts listed successfully")
	return alerts, nil
}

// MarkRead помечает один алерт прочитанным
func (s *alertService) MarkRead(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "MarkRead",
		"alert_id": id,
	})

	caregiverID, err := s.repo.MarkRead(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to mark alert read")
		return fmt.Errorf("service: could not mark alert read: %w", err)
	}

	s.publishChange(ctx, log, caregiverID)
	return nil
}

// MarkAllRead помечает прочитанными все непрочитанные алерты опекуна (без снимка-транзакции)
func (s *alertService) MarkAllRead(ctx context.Context, caregiverID string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "alert",
		"method":       "MarkAllRead",
		"caregiver_id": caregiverID,
	})

	updated, err := s.repo.MarkAllRead(ctx, caregiverID)
	if err != nil {
		log.WithError(err).Error("Failed to mark all alerts read")
		return fmt.Errorf("service: could not mark all alerts read: %w", err)
	}

	log.WithField("updated", updated).Info("Alerts marked read")
	if updated > 0 {
		s.publishChange(ctx, log, caregiverID)
	}
	return nil
}

func (s *alertService) UnreadCount(ctx context.Context, caregiverID string) (int, error) {
	count, err := s.repo.CountUnread(ctx, caregiverID)
	if err != nil {
		return 0, fmt.Errorf("service: could not count unread alerts: %w", err)
	}
	return count, nil
}

func (s *alertService) publishChange(ctx context.Context, log *logrus.Entry, caregiverID string) {
	if s.feed == nil {
		return
	}
	if err := s.feed.Publish(ctx, caregiverID); err != nil {
		log.WithError(err).Error("Failed to publish alert change")
	}
}
