package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifySeverity(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		radius   float64
		want     Severity
	}{
		{"just outside", 500.1, 500, SeverityLow},
		{"low upper bound inclusive", 600, 500, SeverityLow},
		{"medium lower bound", 600.5, 500, SeverityMedium},
		{"medium upper bound inclusive", 750, 500, SeverityMedium},
		{"high", 850, 500, SeverityHigh},
		{"far away", 10_000, 100, SeverityHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifySeverity(tt.distance, tt.radius))
		})
	}
}

func TestGeofencePatch_Apply(t *testing.T) {
	g := &Geofence{Name: "Дом", RadiusMeters: 500, IsActive: true}
	name := "Парк"
	inactive := false

	GeofencePatch{Name: &name, IsActive: &inactive}.Apply(g)

	assert.Equal(t, "Парк", g.Name)
	assert.Equal(t, 500.0, g.RadiusMeters)
	assert.False(t, g.IsActive)
}

func TestPermissionState_AllowsTracking(t *testing.T) {
	assert.True(t, PermissionGranted.AllowsTracking())
	assert.True(t, PermissionPrompt.AllowsTracking())
	assert.False(t, PermissionDenied.AllowsTracking())
}
