package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/geofence_monitoring/internal/models"
	"github.com/shenikar/geofence_monitoring/internal/service/mocks"
	"github.com/shenikar/geofence_monitoring/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

// newTestGeofenceService - вспомогательная функция для создания инстанса сервиса с моками.
func newTestGeofenceService(t *testing.T) (*geofenceService, *mocks.MockSubjectRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockSubjectRepository(ctrl)

	service := NewGeofenceService(repoMock, logger.Discard()).(*geofenceService)
	service.now = func() time.Time { return fixedNow }
	return service, repoMock
}

func newGeofence() *models.Geofence {
	return &models.Geofence{
		SubjectID:    "subject-1",
		Name:         "Дом",
		Center:       models.LocationPoint{Latitude: 40.0, Longitude: -74.0},
		RadiusMeters: 500,
		IsActive:     true,
		CreatedBy:    "caregiver-1",
	}
}

func TestCreateGeofence_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestGeofenceService(t)
	ctx := context.Background()
	geofence := newGeofence()

	// Ожидания
	repoMock.EXPECT().
		SaveGeofence(ctx, geofence).
		DoAndReturn(func(_ context.Context, g *models.Geofence) error {
			assert.NotEqual(t, uuid.Nil, g.ID)
			assert.Equal(t, fixedNow, g.CreatedAt)
			assert.Equal(t, g.CreatedAt, g.UpdatedAt)
			return nil
		}).Times(1)
	repoMock.EXPECT().StoreGeofenceCache(ctx, "subject-1", geofence, fixedNow).Return(nil).Times(1)

	// Действие
	err := service.CreateGeofence(ctx, geofence)

	// Проверки
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, geofence.ID)
}

func TestCreateGeofence_InvalidRadius(t *testing.T) {
	// Подготовка
	service, repoMock := newTestGeofenceService(t)
	geofence := newGeofence()
	geofence.RadiusMeters = 0

	// Ожидания
	repoMock.EXPECT().SaveGeofence(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := service.CreateGeofence(context.Background(), geofence)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrInvalidGeofence)
}

func TestCreateGeofence_UnknownSubject(t *testing.T) {
	// Подготовка
	service, repoMock := newTestGeofenceService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().
		SaveGeofence(ctx, gomock.Any()).
		Return(fmt.Errorf("subject subject-1: %w", models.ErrNotFound)).
		Times(1)

	// Действие
	err := service.CreateGeofence(ctx, newGeofence())

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestCreateThenGet_ReturnsSameGeofence(t *testing.T) {
	// Подготовка
	service, repoMock := newTestGeofenceService(t)
	ctx := context.Background()
	geofence := newGeofence()
	var stored models.Geofence

	// Ожидания
	repoMock.EXPECT().
		SaveGeofence(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, g *models.Geofence) error {
			stored = *g
			return nil
		})
	repoMock.EXPECT().StoreGeofenceCache(ctx, "subject-1", gomock.Any(), fixedNow).Return(nil)
	repoMock.EXPECT().GetGeofenceFromCache(ctx, "subject-1").Return(nil, false, nil)
	repoMock.EXPECT().
		GetGeofence(ctx, "subject-1").
		DoAndReturn(func(context.Context, string) (*models.Geofence, error) {
			copied := stored
			return &copied, nil
		})
	repoMock.EXPECT().FillGeofenceCache(ctx, "subject-1", gomock.Any()).Return(nil)

	// Действие
	require.NoError(t, service.CreateGeofence(ctx, geofence))
	got, err := service.GetGeofence(ctx, "subject-1")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, geofence, got)
}

func TestGetGeofence_FromCache(t *testing.T) {
	// Подготовка
	service, repoMock := newTestGeofenceService(t)
	ctx := context.Background()
	cached := newGeofence()

	// Ожидания
	repoMock.EXPECT().GetGeofenceFromCache(ctx, "subject-1").Return(cached, true, nil).Times(1)
	repoMock.EXPECT().GetGeofence(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	got, err := service.GetGeofence(ctx, "subject-1")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, cached, got)
}

func TestGetGeofence_CacheErrorFallsBackToDB(t *testing.T) {
	// Подготовка
	service, repoMock := newTestGeofenceService(t)
	ctx := context.Background()
	stored := newGeofence()

	// Ожидания
	repoMock.EXPECT().GetGeofenceFromCache(ctx, "subject-1").Return(nil, false, errors.New("redis down"))
	repoMock.EXPECT().GetGeofence(ctx, "subject-1").Return(stored, nil)
	repoMock.EXPECT().FillGeofenceCache(ctx, "subject-1", stored).Return(errors.New("redis down"))

	// Действие
	got, err := service.GetGeofence(ctx, "subject-1")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestGetGeofence_AbsentIsCached(t *testing.T) {
	// Подготовка
	service, repoMock := newTestGeofenceService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().GetGeofenceFromCache(ctx, "subject-1").Return(nil, false, nil)
	repoMock.EXPECT().GetGeofence(ctx, "subject-1").Return(nil, nil)
	repoMock.EXPECT().FillGeofenceCache(ctx, "subject-1", gomock.Nil()).Return(nil).Times(1)

	// Действие
	got, err := service.GetGeofence(ctx, "subject-1")

	// Проверки
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUpdateGeofence_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestGeofenceService(t)
	ctx := context.Background()
	existing := newGeofence()
	existing.ID = uuid.New()
	existing.CreatedAt = fixedNow.Add(-time.Hour)
	existing.UpdatedAt = existing.CreatedAt
	radius := 750.0
	inactive := false

	// Ожидания
	repoMock.EXPECT().GetGeofence(ctx, "subject-1").Return(existing, nil).Times(1)
	repoMock.EXPECT().SaveGeofence(ctx, gomock.Any()).Return(nil).Times(1)
	repoMock.EXPECT().StoreGeofenceCache(ctx, "subject-1", gomock.Any(), fixedNow).Return(nil).Times(1)

	// Действие
	updated, err := service.UpdateGeofence(ctx, "subject-1", models.GeofencePatch{RadiusMeters: &radius, IsActive: &inactive})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 750.0, updated.RadiusMeters)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "Дом", updated.Name)
	assert.Equal(t, fixedNow, updated.UpdatedAt)
	assert.Equal(t, fixedNow.Add(-time.Hour), updated.CreatedAt)
}

func TestUpdateGeofence_NotFound(t *testing.T) {
	// Подготовка
	service, repoMock := newTestGeofenceService(t)
	ctx := context.Background()
	name := "Парк"

	// Ожидания
	repoMock.EXPECT().GetGeofence(ctx, "subject-1").Return(nil, nil).Times(1)
	repoMock.EXPECT().SaveGeofence(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	_, err := service.UpdateGeofence(ctx, "subject-1", models.GeofencePatch{Name: &name})

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.ErrorContains(t, err, "not found for update")
}

func TestUpdateGeofence_RejectsNonPositiveRadius(t *testing.T) {
	// Подготовка
	service, repoMock := newTestGeofenceService(t)
	ctx := context.Background()
	radius := -10.0

	// Ожидания
	repoMock.EXPECT().GetGeofence(ctx, "subject-1").Return(newGeofence(), nil)
	repoMock.EXPECT().SaveGeofence(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	_, err := service.UpdateGeofence(ctx, "subject-1", models.GeofencePatch{RadiusMeters: &radius})

	// Проверки
	assert.ErrorIs(t, err, models.ErrInvalidGeofence)
}

func TestDeleteGeofence_Idempotent(t *testing.T) {
	// Подготовка
	service, repoMock := newTestGeofenceService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().ClearGeofence(ctx, "subject-1").Return(nil).Times(2)
	repoMock.EXPECT().StoreGeofenceCache(ctx, "subject-1", gomock.Nil(), fixedNow).Return(nil).Times(2)

	// Действие
	err1 := service.DeleteGeofence(ctx, "subject-1")
	err2 := service.DeleteGeofence(ctx, "subject-1")

	// Проверки
	require.NoError(t, err1)
	require.NoError(t, err2)
}

func TestDeleteThenGet_Absent(t *testing.T) {
	// Подготовка
	service, repoMock := newTestGeofenceService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().ClearGeofence(ctx, "subject-1").Return(nil)
	repoMock.EXPECT().StoreGeofenceCache(ctx, "subject-1", gomock.Nil(), fixedNow).Return(nil)
	repoMock.EXPECT().GetGeofenceFromCache(ctx, "subject-1").Return(nil, false, nil)
	repoMock.EXPECT().GetGeofence(ctx, "subject-1").Return(nil, nil)
	repoMock.EXPECT().FillGeofenceCache(ctx, "subject-1", gomock.Nil()).Return(nil)

	// Действие
	require.NoError(t, service.DeleteGeofence(ctx, "subject-1"))
	got, err := service.GetGeofence(ctx, "subject-1")

	// Проверки
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDeleteGeofence_StoreUnavailable(t *testing.T) {
	// Подготовка
	service, repoMock := newTestGeofenceService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().
		ClearGeofence(ctx, "subject-1").
		Return(fmt.Errorf("%w: connection refused", models.ErrStoreUnavailable))

	// Действие
	err := service.DeleteGeofence(ctx, "subject-1")

	// Проверки
	assert.ErrorIs(t, err, models.ErrStoreUnavailable)
}

func TestDeleteGeofence_CacheStoreFailureInvalidates(t *testing.T) {
	// Подготовка
	service, repoMock := newTestGeofenceService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().ClearGeofence(ctx, "subject-1").Return(nil)
	repoMock.EXPECT().StoreGeofenceCache(ctx, "subject-1", gomock.Nil(), fixedNow).Return(errors.New("redis down"))
	repoMock.EXPECT().InvalidateGeofenceCache(ctx, "subject-1").Return(nil).Times(1)

	// Действие
	err := service.DeleteGeofence(ctx, "subject-1")

	// Проверки
	require.NoError(t, err)
}
