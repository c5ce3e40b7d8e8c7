package models

import (
	"time"

	"github.com/google/uuid"
)

// LocationPoint - координата в десятичных градусах (WGS84)
type LocationPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Geofence - безопасная зона подопечного (центр + радиус).
// У подопечного может быть не более одной зоны одновременно.
type Geofence struct {
	ID           uuid.UUID     `json:"id"`
	SubjectID    string        `json:"subject_id"`
	Name         string        `json:"name"`
	Center       LocationPoint `json:"center"`
	RadiusMeters float64       `json:"radius_meters"`
	IsActive     bool          `json:"is_active"`
	CreatedBy    string        `json:"created_by"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// GeofencePatch - частичное обновление зоны, nil означает "не менять"
type GeofencePatch struct {
	Name         *string
	Center       *LocationPoint
	RadiusMeters *float64
	IsActive     *bool
}

// Apply применяет заполненные поля патча к зоне
func (p GeofencePatch) Apply(g *Geofence) {
	if p.Name != nil {
		g.Name = *p.Name
	}
	if p.Center != nil {
		g.Center = *p.Center
	}
	if p.RadiusMeters != nil {
		g.RadiusMeters = *p.RadiusMeters
	}
	if p.IsActive != nil {
		g.IsActive = *p.IsActive
	}
}
