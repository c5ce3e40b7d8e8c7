package models

import "time"

// LocationUpdate - одиночный замер местоположения от устройства
type LocationUpdate struct {
	SubjectID string        `json:"subject_id"`
	Location  LocationPoint `json:"location"`
	Timestamp time.Time     `json:"timestamp"`
	Accuracy  *float64      `json:"accuracy,omitempty"`
}

// PermissionState - состояние доступа к геолокации на устройстве
type PermissionState string

const (
	PermissionGranted PermissionState = "granted"
	PermissionPrompt  PermissionState = "prompt"
	PermissionDenied  PermissionState = "denied"
)

// AllowsTracking сообщает, можно ли запускать отслеживание
func (p PermissionState) AllowsTracking() bool {
	return p == PermissionGranted || p == PermissionPrompt
}
