package device

import (
	"context"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/shenikar/geofence_monitoring/internal/config"
	"github.com/shenikar/geofence_monitoring/internal/models"
	"github.com/shenikar/geofence_monitoring/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var home = models.LocationPoint{Latitude: 40.0, Longitude: -74.0}

func newTestHub() *Hub {
	return NewHub(logger.Discard(), &config.Config{
		PositionMaxAge:        30 * time.Second,
		SignificantMoveMeters: 25,
	})
}

func report(hub *Hub, location models.LocationPoint) {
	hub.Report(models.LocationUpdate{SubjectID: "subject-1", Location: location})
}

func TestHub_PermissionDefaultsToPrompt(t *testing.T) {
	hub := newTestHub()

	assert.Equal(t, models.PermissionPrompt, hub.Permission("subject-1"))

	hub.SetPermission("subject-1", models.PermissionDenied)
	assert.Equal(t, models.PermissionDenied, hub.Permission("subject-1"))
}

func TestCurrentPosition_FreshReport(t *testing.T) {
	// Подготовка
	hub := newTestHub()
	report(hub, home)

	// Действие
	update, err := hub.Source("subject-1").CurrentPosition(context.Background())

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, home, update.Location)
	assert.False(t, update.Timestamp.IsZero())
}

func TestCurrentPosition_WaitsForNextReport(t *testing.T) {
	// Подготовка
	hub := newTestHub()
	report(hub, home)
	hub.now = func() time.Time { return time.Now().Add(time.Minute) }

	next := offsetNorth(home, 100)
	go func() {
		assert.Eventually(t, func() bool {
			hub.mu.Lock()
			defer hub.mu.Unlock()
			return len(hub.subjects["subject-1"].waiters) == 1
		}, time.Second, time.Millisecond)
		report(hub, next)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	// Действие
	update, err := hub.Source("subject-1").CurrentPosition(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, next, update.Location)
}

func TestCurrentPosition_Timeout(t *testing.T) {
	hub := newTestHub()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := hub.Source("subject-1").CurrentPosition(ctx)

	assert.ErrorIs(t, err, models.ErrAcquisitionTimeout)
	hub.mu.Lock()
	assert.Empty(t, hub.subjects["subject-1"].waiters)
	hub.mu.Unlock()
}

func TestCurrentPosition_PermissionDenied(t *testing.T) {
	hub := newTestHub()
	report(hub, home)
	hub.SetPermission("subject-1", models.PermissionDenied)

	_, err := hub.Source("subject-1").CurrentPosition(context.Background())

	assert.ErrorIs(t, err, models.ErrPermissionDenied)
}

func TestWatchPosition_SignificantMoves(t *testing.T) {
	// Подготовка
	hub := newTestHub()
	report(hub, home)

	var mu sync.Mutex
	var seen []models.LocationPoint
	cancel := hub.Source("subject-1").WatchPosition(func(update models.LocationUpdate) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, update.Location)
	})

	// Действие
	report(hub, offsetNorth(home, 10))
	report(hub, offsetNorth(home, 40))
	report(hub, offsetNorth(home, 50))
	report(hub, offsetNorth(home, 100))

	// Проверки
	mu.Lock()
	assert.Equal(t, []models.LocationPoint{offsetNorth(home, 40), offsetNorth(home, 100)}, seen)
	mu.Unlock()
	assert.Equal(t, 1, hub.Watches("subject-1"))

	cancel()
	cancel()
	report(hub, offsetNorth(home, 500))

	assert.Equal(t, 0, hub.Watches("subject-1"))
	mu.Lock()
	assert.Len(t, seen, 2)
	mu.Unlock()
}

func TestWatchPosition_FirstReportFires(t *testing.T) {
	hub := newTestHub()
	calls := 0
	cancel := hub.Source("subject-1").WatchPosition(func(models.LocationUpdate) { calls++ })
	defer cancel()

	report(hub, home)

	assert.Equal(t, 1, calls)
}

// offsetNorth возвращает точку в meters метрах к северу от p
func offsetNorth(p models.LocationPoint, meters float64) models.LocationPoint {
	const earthRadiusMeters = 6371000
	return models.LocationPoint{
		Latitude:  p.Latitude + meters/earthRadiusMeters*180/math.Pi,
		Longitude: p.Longitude,
	}
}
