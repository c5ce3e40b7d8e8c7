package geo

import (
	"math"
	"testing"

	"github.com/shenikar/geofence_monitoring/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestDistance_SamePoint(t *testing.T) {
	p := models.LocationPoint{Latitude: 40.0, Longitude: -74.0}
	assert.Equal(t, 0.0, Distance(p, p))
}

func TestDistance_Symmetric(t *testing.T) {
	points := []models.LocationPoint{
		{Latitude: 40.0, Longitude: -74.0},
		{Latitude: 55.75, Longitude: 37.61},
		{Latitude: -6.2088, Longitude: 106.8456},
		{Latitude: 89.9, Longitude: 179.9},
		{Latitude: -33.86, Longitude: 151.2},
	}

	for _, a := range points {
		for _, b := range points {
			assert.InDelta(t, Distance(a, b), Distance(b, a), 1e-6)
		}
	}
}

func TestDistance_KnownValues(t *testing.T) {
	// примерно 133 м между точками по меридиану
	a := models.LocationPoint{Latitude: -6.2088, Longitude: 106.8456}
	b := models.LocationPoint{Latitude: -6.2100, Longitude: 106.8456}
	assert.InDelta(t, 133.4, Distance(a, b), 0.5)

	// Нью-Йорк - Лондон около 5570 км
	nyc := models.LocationPoint{Latitude: 40.7128, Longitude: -74.0060}
	london := models.LocationPoint{Latitude: 51.5074, Longitude: -0.1278}
	assert.InDelta(t, 5_570_000, Distance(nyc, london), 10_000)
}

// Сдвиг по меридиану на d метров - дуга d/R радиан, гаверсинус должен вернуть ровно d
func TestDistance_AlongMeridian(t *testing.T) {
	center := models.LocationPoint{Latitude: 40.0, Longitude: -74.0}
	for _, meters := range []float64{10, 550, 700, 850, 5000} {
		p := models.LocationPoint{
			Latitude:  center.Latitude + meters/earthRadiusMeters*180/math.Pi,
			Longitude: center.Longitude,
		}
		assert.InDelta(t, meters, Distance(center, p), 1e-6)
	}
}
