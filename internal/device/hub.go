// Package device принимает координаты и разрешения от устройств подопечных.
package device

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shenikar/geofence_monitoring/internal/config"
	"github.com/shenikar/geofence_monitoring/internal/geo"
	"github.com/shenikar/geofence_monitoring/internal/models"
	"github.com/shenikar/geofence_monitoring/internal/tracking"
	"github.com/sirupsen/logrus"
)

// Hub хранит последнюю точку каждого подопечного и раздаёт её источникам отслеживания
type Hub struct {
	logger  *logrus.Logger
	maxAge  time.Duration
	minMove float64
	now     func() time.Time

	mu       sync.Mutex
	subjects map[string]*subjectState
	nextID   uint64
}

type subjectState struct {
	last       *models.LocationUpdate
	receivedAt time.Time
	permission models.PermissionState
	waiters    map[uint64]chan models.LocationUpdate
	watchers   map[uint64]*watcher
}

type watcher struct {
	fn     func(models.LocationUpdate)
	anchor *models.LocationPoint
}

func NewHub(logger *logrus.Logger, cfg *config.Config) *Hub {
	return &Hub{
		logger:   logger,
		maxAge:   cfg.PositionMaxAge,
		minMove:  cfg.SignificantMoveMeters,
		now:      time.Now,
		subjects: make(map[string]*subjectState),
	}
}

func (h *Hub) state(subjectID string) *subjectState {
	st, ok := h.subjects[subjectID]
	if !ok {
		st = &subjectState{
			permission: models.PermissionPrompt,
			waiters:    make(map[uint64]chan models.LocationUpdate),
			watchers:   make(map[uint64]*watcher),
		}
		h.subjects[subjectID] = st
	}
	return st
}

// Report принимает замер устройства. Ожидающие CurrentPosition получают его сразу,
// подписчики WatchPosition - только при значимом перемещении.
func (h *Hub) Report(update models.LocationUpdate) {
	if update.Timestamp.IsZero() {
		update.Timestamp = h.now().UTC()
	}

	h.mu.Lock()
	st := h.state(update.SubjectID)
	st.last = &update
	st.receivedAt = h.now()

	for id, ch := range st.waiters {
		ch <- update
		delete(st.waiters, id)
	}

	var notify []func(models.LocationUpdate)
	for _, w := range st.watchers {
		if w.anchor != nil && geo.Distance(*w.anchor, update.Location) < h.minMove {
			continue
		}
		anchor := update.Location
		w.anchor = &anchor
		notify = append(notify, w.fn)
	}
	h.mu.Unlock()

	h.logger.WithFields(logrus.Fields{
		"service":    "device",
		"subject_id": update.SubjectID,
		"watchers":   len(notify),
	}).Debug("Location reported")

	for _, fn := range notify {
		fn(update)
	}
}

// SetPermission фиксирует решение пользователя о доступе к геолокации
func (h *Hub) SetPermission(subjectID string, permission models.PermissionState) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.state(subjectID).permission = permission
}

// Permission возвращает состояние доступа, по умолчанию prompt
func (h *Hub) Permission(subjectID string) models.PermissionState {
	h.mu.Lock()
	defer h.mu.Unlock()
	if st, ok := h.subjects[subjectID]; ok {
		return st.permission
	}
	return models.PermissionPrompt
}

// Watches возвращает число живых подписок на перемещения подопечного
func (h *Hub) Watches(subjectID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	if st, ok := h.subjects[subjectID]; ok {
		return len(st.watchers)
	}
	return 0
}

// Source возвращает источник координат подопечного для отслеживания
func (h *Hub) Source(subjectID string) tracking.LocationSource {
	return &source{hub: h, subjectID: subjectID}
}

type source struct {
	hub       *Hub
	subjectID string
}

func (s *source) CurrentPosition(ctx context.Context) (models.LocationUpdate, error) {
	h := s.hub

	h.mu.Lock()
	st := h.state(s.subjectID)
	if st.permission == models.PermissionDenied {
		h.mu.Unlock()
		return models.LocationUpdate{}, fmt.Errorf("device %s: %w", s.subjectID, models.ErrPermissionDenied)
	}
	if st.last != nil && h.now().Sub(st.receivedAt) <= h.maxAge {
		update := *st.last
		h.mu.Unlock()
		return update, nil
	}

	id := h.nextID
	h.nextID++
	ch := make(chan models.LocationUpdate, 1)
	st.waiters[id] = ch
	h.mu.Unlock()

	select {
	case update := <-ch:
		return update, nil
	case <-ctx.Done():
		h.mu.Lock()
		delete(st.waiters, id)
		h.mu.Unlock()
		// замер мог прийти одновременно с истечением таймаута
		select {
		case update := <-ch:
			return update, nil
		default:
		}
		return models.LocationUpdate{}, fmt.Errorf("device %s: %w", s.subjectID, models.ErrAcquisitionTimeout)
	}
}

func (s *source) WatchPosition(fn func(models.LocationUpdate)) func() {
	h := s.hub

	h.mu.Lock()
	st := h.state(s.subjectID)
	id := h.nextID
	h.nextID++
	w := &watcher{fn: fn}
	if st.last != nil {
		anchor := st.last.Location
		w.anchor = &anchor
	}
	st.watchers[id] = w
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(st.watchers, id)
		})
	}
}
