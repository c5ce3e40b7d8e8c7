package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/geofence_monitoring/internal/models"
	"github.com/shenikar/geofence_monitoring/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memorySubjects - хранилище в памяти с кэшем, повторяющим правила Redis-скриптов репозитория:
// запись перезаписывает не более новую версию, заполнение срабатывает только на пустой ключ.
type memorySubjects struct {
	mu        sync.Mutex
	slot      *models.Geofence
	cached    *models.Geofence
	hasCache  bool
	version   int64
	afterRead func()
}

func (m *memorySubjects) UpsertSubject(context.Context, *models.Subject) error { return nil }

func (m *memorySubjects) GetSubject(_ context.Context, id string) (*models.Subject, error) {
	return &models.Subject{ID: id}, nil
}

func (m *memorySubjects) SaveLastKnownLocation(context.Context, string, models.LocationPoint, time.Time) error {
	return nil
}

func (m *memorySubjects) GetGeofence(context.Context, string) (*models.Geofence, error) {
	m.mu.Lock()
	read := cloneGeofence(m.slot)
	hook := m.afterRead
	m.afterRead = nil
	m.mu.Unlock()

	// конкурирующая запись между чтением из базы и заполнением кэша
	if hook != nil {
		hook()
	}
	return read, nil
}

func (m *memorySubjects) SaveGeofence(_ context.Context, geofence *models.Geofence) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slot = cloneGeofence(geofence)
	return nil
}

func (m *memorySubjects) ClearGeofence(context.Context, string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slot = nil
	return nil
}

func (m *memorySubjects) GetGeofenceFromCache(context.Context, string) (*models.Geofence, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneGeofence(m.cached), m.hasCache, nil
}

func (m *memorySubjects) FillGeofenceCache(_ context.Context, _ string, geofence *models.Geofence) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.hasCache {
		return nil
	}
	var version int64
	if geofence != nil {
		version = geofence.UpdatedAt.UnixMicro()
	}
	m.setCache(geofence, version)
	return nil
}

func (m *memorySubjects) StoreGeofenceCache(_ context.Context, _ string, geofence *models.Geofence, version time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.hasCache && m.version > version.UnixMicro() {
		return nil
	}
	m.setCache(geofence, version.UnixMicro())
	return nil
}

func (m *memorySubjects) InvalidateGeofenceCache(context.Context, string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cached, m.hasCache, m.version = nil, false, 0
	return nil
}

func (m *memorySubjects) setCache(geofence *models.Geofence, version int64) {
	m.cached = cloneGeofence(geofence)
	m.hasCache = true
	m.version = version
}

func cloneGeofence(g *models.Geofence) *models.Geofence {
	if g == nil {
		return nil
	}
	copied := *g
	return &copied
}

func newStoredGeofence() *models.Geofence {
	g := newGeofence()
	g.ID = uuid.New()
	g.CreatedAt = fixedNow.Add(-time.Hour)
	g.UpdatedAt = g.CreatedAt
	return g
}

func newMemoryGeofenceService(repo *memorySubjects) *geofenceService {
	service := NewGeofenceService(repo, logger.Discard()).(*geofenceService)
	service.now = func() time.Time { return fixedNow }
	return service
}

func TestGetGeofence_StaleReadDoesNotOutliveDelete(t *testing.T) {
	// Подготовка
	repo := &memorySubjects{slot: newStoredGeofence()}
	service := newMemoryGeofenceService(repo)
	ctx := context.Background()
	repo.afterRead = func() {
		require.NoError(t, service.DeleteGeofence(ctx, "subject-1"))
	}

	// Действие
	_, err := service.GetGeofence(ctx, "subject-1")
	require.NoError(t, err)
	got, err := service.GetGeofence(ctx, "subject-1")

	// Проверки
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetGeofence_StaleReadDoesNotOutliveUpdate(t *testing.T) {
	// Подготовка
	repo := &memorySubjects{slot: newStoredGeofence()}
	service := newMemoryGeofenceService(repo)
	ctx := context.Background()
	radius := 900.0
	repo.afterRead = func() {
		_, err := service.UpdateGeofence(ctx, "subject-1", models.GeofencePatch{RadiusMeters: &radius})
		require.NoError(t, err)
	}

	// Действие
	_, err := service.GetGeofence(ctx, "subject-1")
	require.NoError(t, err)
	got, err := service.GetGeofence(ctx, "subject-1")

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 900.0, got.RadiusMeters)
	assert.Equal(t, fixedNow, got.UpdatedAt)
}

func TestGetGeofence_CreateReplacesCachedEmptySlot(t *testing.T) {
	// Подготовка
	repo := &memorySubjects{}
	service := newMemoryGeofenceService(repo)
	ctx := context.Background()

	// Действие
	absent, err := service.GetGeofence(ctx, "subject-1")
	require.NoError(t, err)
	require.NoError(t, service.CreateGeofence(ctx, newGeofence()))
	got, err := service.GetGeofence(ctx, "subject-1")

	// Проверки
	assert.Nil(t, absent)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Дом", got.Name)
}
