package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/geofence_monitoring/internal/models"
	"github.com/shenikar/geofence_monitoring/internal/service"
)

type SubjectRepository struct {
	db          DBTX
	redisClient *redis.Client
	cacheTTL    time.Duration
}

// NewSubjectRepository создаёт репозиторий подопечных. redisClient может быть nil - тогда кеш отключён.
func NewSubjectRepository(db DBTX, redisClient *redis.Client, cacheTTL time.Duration) service.SubjectRepository {
	return &SubjectRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// UpsertSubject создаёт подопечного или обновляет его имя
func (r *SubjectRepository) UpsertSubject(ctx context.Context, subject *models.Subject) error {
	query := `
		INSERT INTO subjects (id, name)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, updated_at = NOW()
		RETURNING updated_at;
	`
	if err := r.db.QueryRow(ctx, query, subject.ID, subject.Name).Scan(&subject.UpdatedAt); err != nil {
		return fmt.Errorf("%w: failed to upsert subject: %w", models.ErrStoreUnavailable, err)
	}
	return nil
}

// GetSubject возвращает подопечного вместе с его зоной и последним местоположением
func (r *SubjectRepository) GetSubject(ctx context.Context, id string) (*models.Subject, error) {
	query := `
		SELECT id, name, geofence, last_known_location, location_updated_at, updated_at
		FROM subjects
		WHERE id = $1;
	`
	subject := &models.Subject{}
	var geofenceRaw, locationRaw []byte
	err := r.db.QueryRow(ctx, query, id).Scan(
		&subject.ID,
		&subject.Name,
		&geofenceRaw,
		&locationRaw,
		&subject.LocationUpdatedAt,
		&subject.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("subject %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("%w: failed to get subject: %w", models.ErrStoreUnavailable, err)
	}

	if subject.Geofence, err = decodeGeofence(geofenceRaw); err != nil {
		return nil, err
	}
	if locationRaw != nil {
		subject.LastKnownLocation = &models.LocationPoint{}
		if err := json.Unmarshal(locationRaw, subject.LastKnownLocation); err != nil {
			return nil, fmt.Errorf("failed to decode last known location: %w", err)
		}
	}
	return subject, nil
}

// GetGeofence возвращает зону подопечного или nil, если слот пуст
func (r *SubjectRepository) GetGeofence(ctx context.Context, subjectID string) (*models.Geofence, error) {
	query := `SELECT geofence FROM subjects WHERE id = $1;`

	var raw []byte
	if err := r.db.QueryRow(ctx, query, subjectID).Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: failed to get geofence: %w", models.ErrStoreUnavailable, err)
	}
	return decodeGeofence(raw)
}

// SaveGeofence записывает зону в слот подопечного целиком
func (r *SubjectRepository) SaveGeofence(ctx context.Context, geofence *models.Geofence) error {
	payload, err := json.Marshal(geofence)
	if err != nil {
		return fmt.Errorf("failed to marshal geofence: %w", err)
	}

	query := `
		UPDATE subjects SET
			geofence = $2,
			updated_at = NOW()
		WHERE id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query, geofence.SubjectID, payload)
	if err != nil {
		return fmt.Errorf("%w: failed to save geofence: %w", models.ErrStoreUnavailable, err)
	}

	// Если RowsAffected() == 0, значит подопечного с таким id не существует
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("subject %s: %w", geofence.SubjectID, models.ErrNotFound)
	}
	return nil
}

// ClearGeofence очищает слот зоны. Отсутствие зоны или подопечного не считается ошибкой.
func (r *SubjectRepository) ClearGeofence(ctx context.Context, subjectID string) error {
	query := `
		UPDATE subjects SET
			geofence = NULL,
			updated_at = NOW()
		WHERE id = $1 AND geofence IS NOT NULL;
	`
	if _, err := r.db.Exec(ctx, query, subjectID); err != nil {
		return fmt.Errorf("%w: failed to clear geofence: %w", models.ErrStoreUnavailable, err)
	}
	return nil
}

// SaveLastKnownLocation сохраняет последнее известное местоположение подопечного
func (r *SubjectRepository) SaveLastKnownLocation(ctx context.Context, subjectID string, location models.LocationPoint, at time.Time) error {
	payload, err := json.Marshal(location)
	if err != nil {
		return fmt.Errorf("failed to marshal location: %w", err)
	}

	query := `
		UPDATE subjects SET
			last_known_location = $2,
			location_updated_at = $3,
			updated_at = NOW()
		WHERE id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query, subjectID, payload, at)
	if err != nil {
		return fmt.Errorf("%w: failed to save last known location: %w", models.ErrStoreUnavailable, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("subject %s: %w", subjectID, models.ErrNotFound)
	}
	return nil
}

// Кэш зоны хранится хешем {version, geofence}. Пустая строка в geofence - слот пуст.
// Писатели перезаписывают запись, если она не новее их версии, читатели заполняют
// только отсутствующий ключ: устаревшее чтение из базы не затирает свежую запись.
var (
	storeGeofenceScript = redis.NewScript(`
local current = redis.call('HGET', KEYS[1], 'version')
if current and tonumber(current) > tonumber(ARGV[1]) then
	return 0
end
redis.call('HSET', KEYS[1], 'version', ARGV[1], 'geofence', ARGV[2])
redis.call('PEXPIRE', KEYS[1], ARGV[3])
return 1
`)
	fillGeofenceScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 1 then
	return 0
end
redis.call('HSET', KEYS[1], 'version', ARGV[1], 'geofence', ARGV[2])
redis.call('PEXPIRE', KEYS[1], ARGV[3])
return 1
`)
)

// GetGeofenceFromCache читает зону из Redis. hit=true с nil означает, что слот заведомо пуст.
func (r *SubjectRepository) GetGeofenceFromCache(ctx context.Context, subjectID string) (*models.Geofence, bool, error) {
	if r.redisClient == nil {
		return nil, false, nil
	}

	entry, err := r.redisClient.HGetAll(ctx, geofenceCacheKey(subjectID)).Result()
	if err != nil {
		return nil, false, fmt.Errorf("failed to get geofence from cache: %w", err)
	}
	payload, ok := entry["geofence"]
	if !ok {
		return nil, false, nil
	}
	if payload == "" {
		return nil, true, nil
	}

	geofence := &models.Geofence{}
	if err := json.Unmarshal([]byte(payload), geofence); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal geofence from cache: %w", err)
	}
	return geofence, true, nil
}

// FillGeofenceCache кэширует прочитанное из базы состояние, только если ключа ещё нет
func (r *SubjectRepository) FillGeofenceCache(ctx context.Context, subjectID string, geofence *models.Geofence) error {
	if r.redisClient == nil {
		return nil
	}

	var version time.Time
	if geofence != nil {
		version = geofence.UpdatedAt
	}
	return r.runCacheScript(ctx, fillGeofenceScript, subjectID, geofence, version)
}

// StoreGeofenceCache записывает состояние после изменения слота, если в кэше нет более новой версии
func (r *SubjectRepository) StoreGeofenceCache(ctx context.Context, subjectID string, geofence *models.Geofence, version time.Time) error {
	if r.redisClient == nil {
		return nil
	}
	return r.runCacheScript(ctx, storeGeofenceScript, subjectID, geofence, version)
}

// InvalidateGeofenceCache удаляет зону из Redis кэша
func (r *SubjectRepository) InvalidateGeofenceCache(ctx context.Context, subjectID string) error {
	if r.redisClient == nil {
		return nil
	}

	if err := r.redisClient.Del(ctx, geofenceCacheKey(subjectID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate geofence cache: %w", err)
	}
	return nil
}

func (r *SubjectRepository) runCacheScript(ctx context.Context, script *redis.Script, subjectID string, geofence *models.Geofence, version time.Time) error {
	payload, err := encodeCachedGeofence(geofence)
	if err != nil {
		return err
	}

	var stamp int64
	if !version.IsZero() {
		stamp = version.UnixMicro()
	}
	keys := []string{geofenceCacheKey(subjectID)}
	if err := script.Run(ctx, r.redisClient, keys, stamp, payload, r.cacheTTL.Milliseconds()).Err(); err != nil {
		return fmt.Errorf("failed to set geofence in cache: %w", err)
	}
	return nil
}

func encodeCachedGeofence(geofence *models.Geofence) (string, error) {
	if geofence == nil {
		return "", nil
	}
	val, err := json.Marshal(geofence)
	if err != nil {
		return "", fmt.Errorf("failed to marshal geofence for cache: %w", err)
	}
	return string(val), nil
}

func geofenceCacheKey(subjectID string) string {
	return fmt.Sprintf("geofence:%s", subjectID)
}

func decodeGeofence(raw []byte) (*models.Geofence, error) {
	if raw == nil {
		return nil, nil
	}
	geofence := &models.Geofence{}
	if err := json.Unmarshal(raw, geofence); err != nil {
		return nil, fmt.Errorf("failed to decode geofence: %w", err)
	}
	return geofence, nil
}
