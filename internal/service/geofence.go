package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/geofence_monitoring/internal/models"
	"github.com/sirupsen/logrus"
)

type geofenceService struct {
	repo   SubjectRepository
	logger *logrus.Logger
	now    func() time.Time
}

func NewGeofenceService(repo SubjectRepository, logger *logrus.Logger) GeofenceService {
	return &geofenceService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// CreateGeofence создаёт зону, заменяя предыдущую целиком
func (s *geofenceService) CreateGeofence(ctx context.Context, geofence *models.Geofence) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "geofence",
		"method":     "CreateGeofence",
		"subject_id": geofence.SubjectID,
	})
	log.Info("Attempting to create a new geofence")

	if err := validateGeofence(geofence); err != nil {
		log.WithError(err).Warn("Rejected invalid geofence")
		return err
	}

	now := s.now().UTC()
	geofence.ID = uuid.New()
	geofence.CreatedAt = now
	geofence.UpdatedAt = now

	if err := s.repo.SaveGeofence(ctx, geofence); err != nil {
		log.WithError(err).Error("Failed to create geofence in repository")
		return fmt.Errorf("service: could not create geofence: %w", err)
	}
	s.storeCache(ctx, log, geofence.SubjectID, geofence, now)

	log.WithField("geofence_id", geofence.ID).Info("Geofence created successfully")
	return nil
}

// UpdateGeofence применяет частичное обновление к существующей зоне.
// Чтение-изменение-запись без блокировок: при гонке побеждает последняя запись.
func (s *geofenceService) UpdateGeofence(ctx context.Context, subjectID string, patch models.GeofencePatch) (*models.Geofence, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "geofence",
		"method":     "UpdateGeofence",
		"subject_id": subjectID,
	})
	log.Info("Attempting to update geofence")

	existing, err := s.repo.GetGeofence(ctx, subjectID)
	if err != nil {
		log.WithError(err).Error("Failed to load geofence for update")
		return nil, fmt.Errorf("service: could not load geofence: %w", err)
	}
	if existing == nil {
		log.Warn("Attempted to update a non-existent geofence")
		return nil, fmt.Errorf("service: geofence for subject %s not found for update: %w", subjectID, models.ErrNotFound)
	}

	patch.Apply(existing)
	if err := validateGeofence(existing); err != nil {
		log.WithError(err).Warn("Rejected invalid geofence update")
		return nil, err
	}
	existing.UpdatedAt = s.now().UTC()

	if err := s.repo.SaveGeofence(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update geofence in repository")
		return nil, fmt.Errorf("service: could not update geofence: %w", err)
	}
	s.storeCache(ctx, log, subjectID, existing, existing.UpdatedAt)

	log.Info("Geofence updated successfully")
	return existing, nil
}

// GetGeofence возвращает активную зону подопечного или nil
func (s *geofenceService) GetGeofence(ctx context.Context, subjectID string) (*models.Geofence, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "geofence",
		"method":     "GetGeofence",
		"subject_id": subjectID,
	})

	cached, hit, err := s.repo.GetGeofenceFromCache(ctx, subjectID)
	if err != nil {
		log.WithError(err).Warn("Failed to read geofence cache, falling back to database")
	}
	if hit {
		log.Debug("Geofence served from cache")
		return cached, nil
	}

	geofence, err := s.repo.GetGeofence(ctx, subjectID)
	if err != nil {
		log.WithError(err).Error("Failed to get geofence in repository")
		return nil, fmt.Errorf("service: could not get geofence: %w", err)
	}

	// Пустой слот тоже кэшируется: трекер читает зону на каждом замере
	if err := s.repo.FillGeofenceCache(ctx, subjectID, geofence); err != nil {
		log.WithError(err).Warn("Failed to cache geofence")
	}
	return geofence, nil
}

// DeleteGeofence очищает слот зоны. Повторное удаление не является ошибкой.
func (s *geofenceService) DeleteGeofence(ctx context.Context, subjectID string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "geofence",
		"method":     "DeleteGeofence",
		"subject_id": subjectID,
	})
	log.Info("Attempting to delete geofence")

	if err := s.repo.ClearGeofence(ctx, subjectID); err != nil {
		log.WithError(err).Error("Failed to delete geofence in repository")
		return fmt.Errorf("service: could not delete geofence: %w", err)
	}
	s.storeCache(ctx, log, subjectID, nil, s.now().UTC())

	log.Info("Geofence deleted successfully")
	return nil
}

// storeCache фиксирует новое состояние слота в кэше. Если записать не вышло,
// ключ удаляется, чтобы следующий замер прочитал зону из базы.
func (s *geofenceService) storeCache(ctx context.Context, log *logrus.Entry, subjectID string, geofence *models.Geofence, version time.Time) {
	err := s.repo.StoreGeofenceCache(ctx, subjectID, geofence, version)
	if err == nil {
		return
	}
	log.WithError(err).Warn("Failed to store geofence in cache")
	if err := s.repo.InvalidateGeofenceCache(ctx, subjectID); err != nil {
		log.WithError(err).Warn("Failed to invalidate geofence cache")
	}
}

func validateGeofence(g *models.Geofence) error {
	if strings.TrimSpace(g.SubjectID) == "" {
		return fmt.Errorf("%w: subject id is required", models.ErrInvalidGeofence)
	}
	if !(g.RadiusMeters > 0) {
		return fmt.Errorf("%w: radius must be positive", models.ErrInvalidGeofence)
	}
	return nil
}
