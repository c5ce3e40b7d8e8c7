package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/geofence_monitoring/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

// SubjectRepository определяет контракт для хранения подопечных и их единственной зоны
type SubjectRepository interface {
	UpsertSubject(ctx context.Context, subject *models.Subject) error
	GetSubject(ctx context.Context, id string) (*models.Subject, error)
	GetGeofence(ctx context.Context, subjectID string) (*models.Geofence, error)
	SaveGeofence(ctx context.Context, geofence *models.Geofence) error
	ClearGeofence(ctx context.Context, subjectID string) error
	SaveLastKnownLocation(ctx context.Context, subjectID string, location models.LocationPoint, at time.Time) error
	GetGeofenceFromCache(ctx context.Context, subjectID string) (*models.Geofence, bool, error)
	FillGeofenceCache(ctx context.Context, subjectID string, geofence *models.Geofence) error
	StoreGeofenceCache(ctx context.Context, subjectID string, geofence *models.Geofence, version time.Time) error
	InvalidateGeofenceCache(ctx context.Context, subjectID string) error
}

// AlertRepository определяет контракт журнала алертов (только добавление)
type AlertRepository interface {
	Append(ctx context.Context, alert *models.GeofenceAlert) error
	ListForCaregiver(ctx context.Context, caregiverID string, unreadOnly bool, limit int) ([]*models.GeofenceAlert, error)
	MarkRead(ctx context.Context, id uuid.UUID) (string, error)
	MarkAllRead(ctx context.Context, caregiverID string) (int64, error)
	CountUnread(ctx context.Context, caregiverID string) (int, error)
}

// ChangeFeed оповещает подписчиков, что журнал алертов опекуна изменился
type ChangeFeed interface {
	Publish(ctx context.Context, caregiverID string) error
}

// SubjectService определяет бизнес-логику работы с подопечными
type SubjectService interface {
	UpsertSubject(ctx context.Context, subject *models.Subject) error
	GetSubject(ctx context.Context, id string) (*models.Subject, error)
	RecordLocation(ctx context.Context, update models.LocationUpdate) error
}

// GeofenceService определяет бизнес-логику управления зоной подопечного
type GeofenceService interface {
	CreateGeofence(ctx context.Context, geofence *models.Geofence) error
	UpdateGeofence(ctx context.Context, subjectID string, patch models.GeofencePatch) (*models.Geofence, error)
	GetGeofence(ctx context.Context, subjectID string) (*models.Geofence, error)
	DeleteGeofence(ctx context.Context, subjectID string) error
}

// AlertService определяет бизнес-логику журнала алертов
type AlertService interface {
	Append(ctx context.Context, alert *models.GeofenceAlert) error
	ListForCaregiver(ctx context.Context, caregiverID string, unreadOnly bool, limit int) ([]*models.GeofenceAlert, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	MarkAllRead(ctx context.Context, caregiverID string) error
	UnreadCount(ctx context.Context, caregiverID string) (int, error)
}
