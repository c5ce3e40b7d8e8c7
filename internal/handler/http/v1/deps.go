package v1

import (
	"context"

	"github.com/shenikar/geofence_monitoring/internal/models"
	"github.com/shenikar/geofence_monitoring/internal/notify"
	"github.com/shenikar/geofence_monitoring/internal/tracking"
)

//go:generate mockgen -source=deps.go -destination=mocks/mocks.go -package=mocks

// TrackingManager управляет сессиями отслеживания подопечных
type TrackingManager interface {
	Start(ctx context.Context, subjectID string) (tracking.Status, error)
	Stop(subjectID string) tracking.Status
	Status(subjectID string) tracking.Status
	Active() int
}

// DeviceHub принимает замеры и разрешения устройств
type DeviceHub interface {
	Report(update models.LocationUpdate)
	SetPermission(subjectID string, permission models.PermissionState)
	Permission(subjectID string) models.PermissionState
}

// NotificationRelay выдаёт живую ленту уведомлений опекуна
type NotificationRelay interface {
	Subscribe(ctx context.Context, caregiverID string, fn func(notify.Snapshot)) (func(), error)
	ActiveWatches() int
}

// SampleEvaluator проверяет разовый замер относительно зоны
type SampleEvaluator interface {
	Evaluate(ctx context.Context, subjectID, subjectName string, location models.LocationPoint, geofence *models.Geofence) (*models.GeofenceAlert, error)
}
