package tracking

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/geofence_monitoring/internal/config"
	"github.com/shenikar/geofence_monitoring/internal/models"
	"github.com/shenikar/geofence_monitoring/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource - управляемый источник координат
type fakeSource struct {
	mu       sync.Mutex
	location models.LocationPoint
	block    bool
	watchers map[int]func(models.LocationUpdate)
	nextID   int
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		location: models.LocationPoint{Latitude: 40.0, Longitude: -74.0},
		watchers: make(map[int]func(models.LocationUpdate)),
	}
}

func (s *fakeSource) CurrentPosition(ctx context.Context) (models.LocationUpdate, error) {
	s.mu.Lock()
	block := s.block
	location := s.location
	s.mu.Unlock()

	if block {
		<-ctx.Done()
		return models.LocationUpdate{}, models.ErrAcquisitionTimeout
	}
	return models.LocationUpdate{Location: location, Timestamp: time.Now().UTC()}, nil
}

func (s *fakeSource) WatchPosition(fn func(models.LocationUpdate)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.watchers[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.watchers, id)
	}
}

func (s *fakeSource) setBlocking(block bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.block = block
}

func (s *fakeSource) watches() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.watchers)
}

// emit вызывает подписчиков так же, как это делает хаб: снаружи блокировки
func (s *fakeSource) emit(update models.LocationUpdate) {
	s.mu.Lock()
	fns := make([]func(models.LocationUpdate), 0, len(s.watchers))
	for _, fn := range s.watchers {
		fns = append(fns, fn)
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn(update)
	}
}

type fakeDevice struct {
	source     *fakeSource
	permission models.PermissionState
}

func (d *fakeDevice) Source(string) LocationSource {
	return d.source
}

func (d *fakeDevice) Permission(string) models.PermissionState {
	return d.permission
}

type fakeSubjects struct {
	recorded atomic.Int64
	err      error
}

func (s *fakeSubjects) GetSubject(_ context.Context, id string) (*models.Subject, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.Subject{ID: id, Name: "Анна"}, nil
}

func (s *fakeSubjects) RecordLocation(context.Context, models.LocationUpdate) error {
	s.recorded.Add(1)
	return nil
}

type fakeGeofences struct {
	mu      sync.Mutex
	fence   *models.Geofence
	fetches int
}

func (g *fakeGeofences) GetGeofence(context.Context, string) (*models.Geofence, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.fetches++
	if g.fence == nil {
		return nil, nil
	}
	fence := *g.fence
	return &fence, nil
}

func (g *fakeGeofences) set(fence *models.Geofence) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.fence = fence
}

type evaluation struct {
	location models.LocationPoint
	fence    *models.Geofence
}

type fakeEvaluator struct {
	mu    sync.Mutex
	calls []evaluation
}

func (e *fakeEvaluator) Evaluate(_ context.Context, _, _ string, location models.LocationPoint, fence *models.Geofence) (*models.GeofenceAlert, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls = append(e.calls, evaluation{location: location, fence: fence})
	return nil, nil
}

func (e *fakeEvaluator) count() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.calls)
}

func (e *fakeEvaluator) last() evaluation {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.calls[len(e.calls)-1]
}

type testEnv struct {
	manager   *Manager
	source    *fakeSource
	device    *fakeDevice
	subjects  *fakeSubjects
	geofences *fakeGeofences
	evaluator *fakeEvaluator
}

func newTestManager(t *testing.T, interval time.Duration) *testEnv {
	t.Helper()
	env := &testEnv{
		source:    newFakeSource(),
		subjects:  &fakeSubjects{},
		geofences: &fakeGeofences{},
		evaluator: &fakeEvaluator{},
	}
	env.device = &fakeDevice{source: env.source, permission: models.PermissionGranted}
	cfg := &config.Config{TrackingInterval: interval, AcquisitionTimeout: 20 * time.Millisecond}
	env.manager = NewManager(env.device, env.subjects, env.geofences, env.evaluator, logger.Discard(), cfg)
	t.Cleanup(env.manager.StopAll)
	return env
}

func TestManager_StartTakesImmediateSample(t *testing.T) {
	// Подготовка
	env := newTestManager(t, time.Hour)

	// Действие
	status, err := env.manager.Start(context.Background(), "subject-1")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, StateActive, status.State)
	require.Eventually(t, func() bool { return env.evaluator.count() == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, int64(1), env.subjects.recorded.Load())
	assert.Equal(t, env.source.location, env.evaluator.last().location)
}

func TestManager_RestartKeepsSingleWatch(t *testing.T) {
	env := newTestManager(t, time.Hour)
	ctx := context.Background()

	_, err := env.manager.Start(ctx, "subject-1")
	require.NoError(t, err)
	_, err = env.manager.Start(ctx, "subject-1")
	require.NoError(t, err)

	assert.Equal(t, 1, env.source.watches())
	assert.Equal(t, 1, env.manager.Active())

	// третий цикл старт-стоп не оставляет висящих подписок
	_, err = env.manager.Start(ctx, "subject-1")
	require.NoError(t, err)
	env.manager.Stop("subject-1")

	assert.Equal(t, 0, env.source.watches())
	assert.Equal(t, 0, env.manager.Active())
	assert.Equal(t, StateStopped, env.manager.Status("subject-1").State)
}

func TestManager_StopIsIdempotent(t *testing.T) {
	env := newTestManager(t, time.Hour)

	env.manager.Stop("subject-1")
	_, err := env.manager.Start(context.Background(), "subject-1")
	require.NoError(t, err)
	env.manager.Stop("subject-1")
	env.manager.Stop("subject-1")

	assert.Equal(t, StateStopped, env.manager.Status("subject-1").State)
	assert.Equal(t, 0, env.source.watches())
}

func TestManager_NoSamplesAfterStop(t *testing.T) {
	// Подготовка
	env := newTestManager(t, 2*time.Millisecond)

	_, err := env.manager.Start(context.Background(), "subject-1")
	require.NoError(t, err)
	require.Eventually(t, func() bool { return env.evaluator.count() >= 3 }, time.Second, time.Millisecond)

	// Действие
	env.manager.Stop("subject-1")
	after := env.evaluator.count()
	env.source.emit(models.LocationUpdate{Location: models.LocationPoint{Latitude: 41, Longitude: -74}})
	time.Sleep(20 * time.Millisecond)

	// Проверки
	assert.Equal(t, after, env.evaluator.count())
}

func TestManager_PermissionDenied(t *testing.T) {
	// Подготовка
	env := newTestManager(t, time.Hour)
	env.device.permission = models.PermissionDenied

	// Действие
	status, err := env.manager.Start(context.Background(), "subject-1")

	// Проверки
	assert.ErrorIs(t, err, models.ErrPermissionDenied)
	assert.Equal(t, StateUnavailable, status.State)
	assert.Equal(t, "safety monitoring unavailable: location permission denied", status.Reason)
	assert.Equal(t, StateUnavailable, env.manager.Status("subject-1").State)
	assert.Equal(t, 0, env.source.watches())
	assert.Equal(t, 0, env.evaluator.count())
}

func TestManager_PromptPermitsTracking(t *testing.T) {
	env := newTestManager(t, time.Hour)
	env.device.permission = models.PermissionPrompt

	status, err := env.manager.Start(context.Background(), "subject-1")

	require.NoError(t, err)
	assert.Equal(t, StateActive, status.State)
}

func TestManager_UnknownSubject(t *testing.T) {
	env := newTestManager(t, time.Hour)
	env.subjects.err = models.ErrNotFound

	status, err := env.manager.Start(context.Background(), "ghost")

	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Equal(t, StateUnavailable, status.State)
	assert.Equal(t, "safety monitoring unavailable: subject unavailable", status.Reason)
	assert.Equal(t, 0, env.manager.Active())
}

func TestManager_AcquisitionTimeoutIsSkipped(t *testing.T) {
	// Подготовка
	env := newTestManager(t, 5*time.Millisecond)
	env.source.setBlocking(true)

	// Действие
	_, err := env.manager.Start(context.Background(), "subject-1")
	require.NoError(t, err)

	// Проверки
	require.Eventually(t, func() bool {
		return env.manager.Status("subject-1").LastError != ""
	}, time.Second, time.Millisecond)
	assert.Equal(t, 0, env.evaluator.count())
	assert.Equal(t, StateActive, env.manager.Status("subject-1").State)

	// после восстановления источника цикл продолжает работу
	env.source.setBlocking(false)
	require.Eventually(t, func() bool { return env.evaluator.count() > 0 }, time.Second, time.Millisecond)
}

func TestManager_GeofenceRefetchedPerSample(t *testing.T) {
	// Подготовка
	env := newTestManager(t, time.Hour)
	first := &models.Geofence{ID: uuid.New(), RadiusMeters: 500, IsActive: true}
	env.geofences.set(first)

	_, err := env.manager.Start(context.Background(), "subject-1")
	require.NoError(t, err)
	require.Eventually(t, func() bool { return env.evaluator.count() == 1 }, time.Second, time.Millisecond)

	// Действие
	second := &models.Geofence{ID: uuid.New(), RadiusMeters: 900, IsActive: true}
	env.geofences.set(second)
	env.source.emit(models.LocationUpdate{Location: models.LocationPoint{Latitude: 40.01, Longitude: -74.0}})

	// Проверки
	require.Equal(t, 2, env.evaluator.count())
	assert.Equal(t, second.ID, env.evaluator.last().fence.ID)
	assert.Equal(t, 40.01, env.evaluator.last().location.Latitude)
}

func TestManager_ConcurrentTriggers(t *testing.T) {
	env := newTestManager(t, time.Millisecond)

	_, err := env.manager.Start(context.Background(), "subject-1")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			env.source.emit(models.LocationUpdate{Location: models.LocationPoint{Latitude: 40.02, Longitude: -74.0}})
		}()
	}
	wg.Wait()
	env.manager.Stop("subject-1")

	assert.GreaterOrEqual(t, env.evaluator.count(), 10)
	assert.Equal(t, 0, env.source.watches())
}

func TestManager_StopAll(t *testing.T) {
	env := newTestManager(t, time.Hour)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		_, err := env.manager.Start(ctx, id)
		require.NoError(t, err)
	}
	require.Equal(t, 3, env.manager.Active())

	env.manager.StopAll()

	assert.Equal(t, 0, env.manager.Active())
	assert.Equal(t, 0, env.source.watches())
}

func TestManager_SessionOutlivesRequestContext(t *testing.T) {
	env := newTestManager(t, 2*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	_, err := env.manager.Start(ctx, "subject-1")
	require.NoError(t, err)
	cancel()

	require.Eventually(t, func() bool { return env.evaluator.count() >= 3 }, time.Second, time.Millisecond)
	assert.Equal(t, StateActive, env.manager.Status("subject-1").State)
}
