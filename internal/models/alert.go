package models

import (
	"time"

	"github.com/google/uuid"
)

// Severity - степень нарушения границы зоны
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Пороговые множители радиуса. Граница относится к более низкому уровню.
const (
	mediumRadiusFactor = 1.2
	highRadiusFactor   = 1.5
)

// ClassifySeverity определяет уровень нарушения по расстоянию от центра и радиусу.
// Вызывается только для точек за пределами радиуса.
func ClassifySeverity(distance, radius float64) Severity {
	switch {
	case distance > radius*highRadiusFactor:
		return SeverityHigh
	case distance > radius*mediumRadiusFactor:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// GeofenceAlert - запись о выходе подопечного за пределы зоны.
// Имя зоны хранится копией, чтобы алерт оставался осмысленным после правки или удаления зоны.
type GeofenceAlert struct {
	ID                       uuid.UUID     `json:"id"`
	SubjectID                string        `json:"subject_id"`
	SubjectName              string        `json:"subject_name"`
	CaregiverID              string        `json:"caregiver_id"`
	GeofenceID               uuid.UUID     `json:"geofence_id"`
	GeofenceName             string        `json:"geofence_name"`
	Location                 LocationPoint `json:"location"`
	DistanceFromCenterMeters float64       `json:"distance_from_center_meters"`
	Timestamp                time.Time     `json:"timestamp"`
	IsRead                   bool          `json:"is_read"`
	Severity                 Severity      `json:"severity"`
}
