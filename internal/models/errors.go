package models

import "errors"

var (
	// ErrNotFound - зона или подопечный не существуют
	ErrNotFound = errors.New("not found")
	// ErrPermissionDenied - доступ к геолокации запрещён пользователем
	ErrPermissionDenied = errors.New("location permission denied")
	// ErrAcquisitionTimeout - замер не получен за отведённое время
	ErrAcquisitionTimeout = errors.New("location acquisition timed out")
	// ErrStoreUnavailable - хранилище отклонило чтение или запись
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrInvalidGeofence  = errors.New("invalid geofence")
)
