package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shenikar/geofence_monitoring/internal/geo"
	"github.com/shenikar/geofence_monitoring/internal/models"
	"github.com/sirupsen/logrus"
)

// AlertAppender - часть журнала, нужная оценщику
type AlertAppender interface {
	Append(ctx context.Context, alert *models.GeofenceAlert) error
}

// Evaluator проверяет замер относительно зоны и фиксирует нарушение.
// Состояния не хранит, безопасен для конкурентного вызова.
type Evaluator struct {
	alerts AlertAppender
	logger *logrus.Logger
	now    func() time.Time
}

func NewEvaluator(alerts AlertAppender, logger *logrus.Logger) *Evaluator {
	return &Evaluator{
		alerts: alerts,
		logger: logger,
		now:    time.Now,
	}
}

// Evaluate возвращает новый алерт, если точка вне активной зоны, иначе nil.
// Повторные нарушения не подавляются: каждый замер вне зоны даёт новый алерт.
func (e *Evaluator) Evaluate(ctx context.Context, subjectID, subjectName string, location models.LocationPoint, geofence *models.Geofence) (*models.GeofenceAlert, error) {
	if geofence == nil || !geofence.IsActive {
		return nil, nil
	}

	distance := geo.Distance(location, geofence.Center)
	log := e.logger.WithFields(logrus.Fields{
		"service":     "evaluator",
		"method":      "Evaluate",
		"subject_id":  subjectID,
		"geofence_id": geofence.ID,
		"distance":    distance,
		"radius":      geofence.RadiusMeters,
	})

	if distance <= geofence.RadiusMeters {
		log.Debug("Subject is inside the safe zone")
		return nil, nil
	}

	alert := &models.GeofenceAlert{
		SubjectID:                subjectID,
		SubjectName:              subjectName,
		CaregiverID:              geofence.CreatedBy,
		GeofenceID:               geofence.ID,
		GeofenceName:             geofence.Name,
		Location:                 location,
		DistanceFromCenterMeters: distance,
		Timestamp:                e.now().UTC(),
		IsRead:                   false,
		Severity:                 models.ClassifySeverity(distance, geofence.RadiusMeters),
	}

	if err := e.alerts.Append(ctx, alert); err != nil {
		log.WithError(err).Error("Failed to record geofence violation")
		return nil, fmt.Errorf("service: could not record violation: %w", err)
	}

	log.WithField("severity", alert.Severity).Warn("Subject is outside the safe zone")
	return alert, nil
}
