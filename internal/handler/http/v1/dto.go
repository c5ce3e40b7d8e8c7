package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/geofence_monitoring/internal/models"
)

// UpsertSubjectRequest DTO для регистрации подопечного
// @Description DTO для регистрации подопечного
type UpsertSubjectRequest struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}

// LocationResponse DTO координат
// @Description DTO координат
type LocationResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// SubjectResponse DTO для ответа с информацией о подопечном
// @Description DTO для ответа с информацией о подопечном
type SubjectResponse struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	Geofence          *GeofenceResponse `json:"geofence"`
	LastKnownLocation *LocationResponse `json:"last_known_location,omitempty"`
	LocationUpdatedAt *time.Time        `json:"location_updated_at,omitempty"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// CreateGeofenceRequest DTO для создания зоны
// @Description DTO для создания зоны. Рекомендуемый радиус 100-5000 м.
type CreateGeofenceRequest struct {
	Name         string   `json:"name" validate:"required,min=1,max=255"`
	Latitude     *float64 `json:"latitude" validate:"required,latitude"`
	Longitude    *float64 `json:"longitude" validate:"required,longitude"`
	RadiusMeters float64  `json:"radius_meters" validate:"required,gt=0"`
	IsActive     *bool    `json:"is_active,omitempty"`
	CreatedBy    string   `json:"created_by" validate:"required"`
}

// UpdateGeofenceRequest DTO для частичного обновления зоны
// @Description DTO для частичного обновления зоны
type UpdateGeofenceRequest struct {
	Name         *string  `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Latitude     *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude    *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	RadiusMeters *float64 `json:"radius_meters,omitempty" validate:"omitempty,gt=0"`
	IsActive     *bool    `json:"is_active,omitempty"`
}

// GeofenceResponse DTO для ответа с информацией о зоне
// @Description DTO для ответа с информацией о зоне
type GeofenceResponse struct {
	ID           uuid.UUID `json:"id"`
	SubjectID    string    `json:"subject_id"`
	Name         string    `json:"name"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	RadiusMeters float64   `json:"radius_meters"`
	IsActive     bool      `json:"is_active"`
	CreatedBy    string    `json:"created_by"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PositionReportRequest DTO замера от устройства
// @Description DTO замера от устройства
type PositionReportRequest struct {
	Latitude  *float64   `json:"latitude" validate:"required,latitude"`
	Longitude *float64   `json:"longitude" validate:"required,longitude"`
	Accuracy  *float64   `json:"accuracy,omitempty" validate:"omitempty,gte=0"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// PermissionRequest DTO состояния доступа к геолокации
// @Description DTO состояния доступа к геолокации
type PermissionRequest struct {
	State string `json:"state" validate:"required,oneof=granted prompt denied"`
}

// PermissionResponse DTO ответа с состоянием доступа
// @Description DTO ответа с состоянием доступа
type PermissionResponse struct {
	SubjectID string `json:"subject_id"`
	State     string `json:"state"`
}

// EvaluateRequest DTO разовой проверки точки
// @Description DTO разовой проверки точки
type EvaluateRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

// EvaluateResponse DTO результата проверки
// @Description DTO результата проверки
type EvaluateResponse struct {
	Violation bool           `json:"violation"`
	Alert     *AlertResponse `json:"alert,omitempty"`
}

// AlertResponse DTO алерта
// @Description DTO алерта
type AlertResponse struct {
	ID                       uuid.UUID       `json:"id"`
	SubjectID                string          `json:"subject_id"`
	SubjectName              string          `json:"subject_name"`
	CaregiverID              string          `json:"caregiver_id"`
	GeofenceID               uuid.UUID       `json:"geofence_id"`
	GeofenceName             string          `json:"geofence_name"`
	Latitude                 float64         `json:"latitude"`
	Longitude                float64         `json:"longitude"`
	DistanceFromCenterMeters float64         `json:"distance_from_center_meters"`
	Timestamp                time.Time       `json:"timestamp"`
	IsRead                   bool            `json:"is_read"`
	Severity                 models.Severity `json:"severity"`
}

// AlertListResponse DTO списка алертов. При недоступности хранилища список пуст, а error заполнен.
// @Description DTO списка алертов
type AlertListResponse struct {
	Alerts []*AlertResponse `json:"alerts"`
	Error  string           `json:"error,omitempty"`
}

// UnreadCountResponse DTO числа непрочитанных алертов
// @Description DTO числа непрочитанных алертов
type UnreadCountResponse struct {
	UnreadCount int `json:"unread_count"`
}

// HealthResponse DTO состояния сервиса
// @Description DTO состояния сервиса
type HealthResponse struct {
	Status              string `json:"status"`
	ActiveTrackers      int    `json:"active_trackers"`
	NotificationWatches int    `json:"notification_watches"`
}
