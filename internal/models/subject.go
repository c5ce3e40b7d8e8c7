package models

import "time"

// Subject - подопечный, чьё местоположение отслеживается
type Subject struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	Geofence          *Geofence      `json:"geofence,omitempty"`
	LastKnownLocation *LocationPoint `json:"last_known_location,omitempty"`
	LocationUpdatedAt *time.Time     `json:"location_updated_at,omitempty"`
	UpdatedAt         time.Time      `json:"updated_at"`
}
