package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shenikar/geofence_monitoring/internal/models"
	"github.com/shenikar/geofence_monitoring/internal/service"
)

const alertColumns = `
	id,
	subject_id,
	subject_name,
	caregiver_id,
	geofence_id,
	geofence_name,
	latitude,
	longitude,
	distance_from_center_meters,
	alerted_at,
	is_read,
	severity`

type AlertRepository struct {
	db DBTX
}

func NewAlertRepository(db DBTX) service.AlertRepository {
	return &AlertRepository{db: db}
}

// Append добавляет алерт в журнал. Идентификатор присваивается здесь, если не задан.
func (r *AlertRepository) Append(ctx context.Context, alert *models.GeofenceAlert) error {
	if alert.ID == uuid.Nil {
		alert.ID = uuid.New()
	}

	query := `
		INSERT INTO geofence_alerts (` + alertColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.db.Exec(ctx, query,
		alert.ID,
		alert.SubjectID,
		alert.SubjectName,
		alert.CaregiverID,
		alert.GeofenceID,
		alert.GeofenceName,
		alert.Location.Latitude,
		alert.Location.Longitude,
		alert.DistanceFromCenterMeters,
		alert.Timestamp,
		alert.IsRead,
		string(alert.Severity),
	)
	if err != nil {
		return fmt.Errorf("%w: failed to append alert: %w", models.ErrStoreUnavailable, err)
	}
	return nil
}

// ListForCaregiver возвращает алерты опекуна от новых к старым, при равном времени - по порядку вставки
func (r *AlertRepository) ListForCaregiver(ctx context.Context, caregiverID string, unreadOnly bool, limit int) ([]*models.GeofenceAlert, error) {
	query := `
		SELECT ` + alertColumns + `
		FROM geofence_alerts
		WHERE caregiver_id = $1
			AND ($2 = FALSE OR is_read = FALSE)
		ORDER BY alerted_at DESC, seq DESC
		LIMIT $3;
	`
	rows, err := r.db.Query(ctx, query, caregiverID, unreadOnly, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list alerts: %w", models.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	alerts := make([]*models.GeofenceAlert, 0)
	for rows.Next() {
		alert, err := scanAlert(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alert row: %w", err)
		}
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: error list iteration: %w", models.ErrStoreUnavailable, err)
	}
	return alerts, nil
}

// MarkRead помечает алерт прочитанным и возвращает id опекуна-владельца
func (r *AlertRepository) MarkRead(ctx context.Context, id uuid.UUID) (string, error) {
	query := `
		UPDATE geofence_alerts SET is_read = TRUE
		WHERE id = $1
		RETURNING caregiver_id;
	`
	var caregiverID string
	if err := r.db.QueryRow(ctx, query, id).Scan(&caregiverID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("alert %s: %w", id, models.ErrNotFound)
		}
		return "", fmt.Errorf("%w: failed to mark alert read: %w", models.ErrStoreUnavailable, err)
	}
	return caregiverID, nil
}

// MarkAllRead помечает прочитанными все непрочитанные алерты опекуна
func (r *AlertRepository) MarkAllRead(ctx context.Context, caregiverID string) (int64, error) {
	query := `
		UPDATE geofence_alerts SET is_read = TRUE
		WHERE caregiver_id = $1 AND is_read = FALSE;
	`
	cmdTag, err := r.db.Exec(ctx, query, caregiverID)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to mark all alerts read: %w", models.ErrStoreUnavailable, err)
	}
	return cmdTag.RowsAffected(), nil
}

// CountUnread возвращает количество непрочитанных алертов опекуна
func (r *AlertRepository) CountUnread(ctx context.Context, caregiverID string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM geofence_alerts
		WHERE caregiver_id = $1 AND is_read = FALSE;
	`
	var count int
	if err := r.db.QueryRow(ctx, query, caregiverID).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: failed to count unread alerts: %w", models.ErrStoreUnavailable, err)
	}
	return count, nil
}

func scanAlert(row pgx.Row) (*models.GeofenceAlert, error) {
	alert := &models.GeofenceAlert{}
	var severity string
	err := row.Scan(
		&alert.ID,
		&alert.SubjectID,
		&alert.SubjectName,
		&alert.CaregiverID,
		&alert.GeofenceID,
		&alert.GeofenceName,
		&alert.Location.Latitude,
		&alert.Location.Longitude,
		&alert.DistanceFromCenterMeters,
		&alert.Timestamp,
		&alert.IsRead,
		&severity,
	)
	if err != nil {
		return nil, err
	}
	alert.Severity = models.Severity(severity)
	return alert, nil
}
