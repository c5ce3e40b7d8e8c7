// Package tracking периодически снимает местоположение подопечного и передаёт его оценщику зоны.
package tracking

import (
	"context"
	"time"

	"github.com/shenikar/geofence_monitoring/internal/models"
)

// LocationSource - источник координат одного подопечного
type LocationSource interface {
	// CurrentPosition возвращает свежую точку или ошибку по истечении ctx
	CurrentPosition(ctx context.Context) (models.LocationUpdate, error)
	// WatchPosition подписывает fn на значимые перемещения. Возвращает функцию отписки.
	WatchPosition(fn func(models.LocationUpdate)) (cancel func())
}

// Device выдаёт источники координат и состояние доступа к геолокации
type Device interface {
	Source(subjectID string) LocationSource
	Permission(subjectID string) models.PermissionState
}

// SubjectStore - часть реестра подопечных, нужная для отслеживания
type SubjectStore interface {
	GetSubject(ctx context.Context, id string) (*models.Subject, error)
	RecordLocation(ctx context.Context, update models.LocationUpdate) error
}

// GeofenceReader читает текущую зону подопечного
type GeofenceReader interface {
	GetGeofence(ctx context.Context, subjectID string) (*models.Geofence, error)
}

// Evaluator проверяет точку относительно зоны
type Evaluator interface {
	Evaluate(ctx context.Context, subjectID, subjectName string, location models.LocationPoint, geofence *models.Geofence) (*models.GeofenceAlert, error)
}

// State - состояние отслеживания подопечного
type State string

const (
	StateActive      State = "active"
	StateStopped     State = "stopped"
	StateUnavailable State = "unavailable"
)

// Status - снимок состояния отслеживания для API
type Status struct {
	SubjectID    string                `json:"subject_id"`
	State        State                 `json:"state"`
	Reason       string                `json:"reason,omitempty"`
	StartedAt    *time.Time            `json:"started_at,omitempty"`
	LastSampleAt *time.Time            `json:"last_sample_at,omitempty"`
	LastLocation *models.LocationPoint `json:"last_location,omitempty"`
	LastError    string                `json:"last_error,omitempty"`
	Samples      int                   `json:"samples"`
}

type trigger string

const (
	triggerStart trigger = "start"
	triggerTimer trigger = "timer"
	triggerWatch trigger = "watch"
)
