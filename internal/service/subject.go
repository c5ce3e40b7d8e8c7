package service

import (
	"context"
	"fmt"

	"github.com/shenikar/geofence_monitoring/internal/models"
	"github.com/sirupsen/logrus"
)

type subjectService struct {
	repo   SubjectRepository
	logger *logrus.Logger
}

func NewSubjectService(repo SubjectRepository, logger *logrus.Logger) SubjectService {
	return &subjectService{
		repo:   repo,
		logger: logger,
	}
}

// UpsertSubject регистрирует подопечного или меняет его имя
func (s *subjectService) UpsertSubject(ctx context.Context, subject *models.Subject) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "subject",
		"method":     "UpsertSubject",
		"subject_id": subject.ID,
	})

	if err := s.repo.UpsertSubject(ctx, subject); err != nil {
		log.WithError(err).Error("Failed to upsert subject in repository")
		return fmt.Errorf("service: could not upsert subject: %w", err)
	}
	log.Info("Subject upserted successfully")
	return nil
}

func (s *subjectService) GetSubject(ctx context.Context, id string) (*models.Subject, error) {
	subject, err := s.repo.GetSubject(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get subject: %w", err)
	}
	return subject, nil
}

// RecordLocation обновляет указатель "последнее известное местоположение"
func (s *subjectService) RecordLocation(ctx context.Context, update models.LocationUpdate) error {
	if err := s.repo.SaveLastKnownLocation(ctx, update.SubjectID, update.Location, update.Timestamp); err != nil {
		s.logger.WithFields(logrus.Fields{
			"service":    "subject",
			"method":     "RecordLocation",
			"subject_id": update.SubjectID,
		}).WithError(err).Error("Failed to save last known location")
		return fmt.Errorf("service: could not record location: %w", err)
	}
	return nil
}
