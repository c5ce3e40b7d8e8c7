// Package geo содержит геодезические расчёты для проверки зон.
package geo

import (
	"math"

	"github.com/shenikar/geofence_monitoring/internal/models"
)

const earthRadiusMeters = 6371000

// Distance возвращает расстояние по большой окружности между двумя точками в метрах (формула гаверсинусов).
// Координаты не валидируются, это задача вызывающей стороны.
func Distance(a, b models.LocationPoint) float64 {
	lat1 := toRad(a.Latitude)
	lat2 := toRad(b.Latitude)
	dLat := toRad(b.Latitude - a.Latitude)
	dLon := toRad(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusMeters * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
