package tracking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shenikar/geofence_monitoring/internal/config"
	"github.com/shenikar/geofence_monitoring/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	defaultInterval           = 2 * time.Minute
	defaultAcquisitionTimeout = 10 * time.Second

	unavailablePrefix = "safety monitoring unavailable: "
)

// Manager владеет сессиями отслеживания, по одной на подопечного
type Manager struct {
	device    Device
	subjects  SubjectStore
	geofences GeofenceReader
	evaluator Evaluator
	logger    *logrus.Logger
	interval  time.Duration
	timeout   time.Duration
	now       func() time.Time

	mu       sync.Mutex
	trackers map[string]*Tracker
	statuses map[string]Status
}

func NewManager(device Device, subjects SubjectStore, geofences GeofenceReader, evaluator Evaluator, logger *logrus.Logger, cfg *config.Config) *Manager {
	interval := cfg.TrackingInterval
	if interval <= 0 {
		interval = defaultInterval
	}
	timeout := cfg.AcquisitionTimeout
	if timeout <= 0 {
		timeout = defaultAcquisitionTimeout
	}
	return &Manager{
		device:    device,
		subjects:  subjects,
		geofences: geofences,
		evaluator: evaluator,
		logger:    logger,
		interval:  interval,
		timeout:   timeout,
		now:       time.Now,
		trackers:  make(map[string]*Tracker),
		statuses:  make(map[string]Status),
	}
}

// Start запускает отслеживание подопечного. Предыдущая сессия этого подопечного
// полностью останавливается до запуска новой.
// Сессия не привязана к отмене ctx: её завершает только Stop или StopAll.
func (m *Manager) Start(ctx context.Context, subjectID string) (Status, error) {
	log := m.logger.WithFields(logrus.Fields{
		"service":    "tracking",
		"method":     "Start",
		"subject_id": subjectID,
	})

	m.mu.Lock()
	defer m.mu.Unlock()

	if previous, ok := m.trackers[subjectID]; ok {
		delete(m.trackers, subjectID)
		previous.Stop()
		log.Info("Previous tracking session stopped before restart")
	}

	if !m.device.Permission(subjectID).AllowsTracking() {
		status := m.unavailable(subjectID, "location permission denied")
		log.Warn("Location permission denied, tracking unavailable")
		return status, fmt.Errorf("tracking: cannot start for %s: %w", subjectID, models.ErrPermissionDenied)
	}

	subject, err := m.subjects.GetSubject(ctx, subjectID)
	if err != nil {
		status := m.unavailable(subjectID, "subject unavailable")
		log.WithError(err).Error("Failed to load subject for tracking")
		return status, fmt.Errorf("tracking: cannot start for %s: %w", subjectID, err)
	}

	tracker := &Tracker{
		subjectID:   subjectID,
		subjectName: subject.Name,
		source:      m.device.Source(subjectID),
		subjects:    m.subjects,
		geofences:   m.geofences,
		evaluator:   m.evaluator,
		interval:    m.interval,
		timeout:     m.timeout,
		logger:      m.logger.WithFields(logrus.Fields{"service": "tracking", "subject_id": subjectID}),
		now:         m.now,
	}
	tracker.start(context.WithoutCancel(ctx))

	m.trackers[subjectID] = tracker
	delete(m.statuses, subjectID)

	log.WithField("interval", m.interval).Info("Tracking started")
	return tracker.Status(), nil
}

// Stop останавливает отслеживание. Повторный вызов и вызов без активной сессии безопасны.
func (m *Manager) Stop(subjectID string) Status {
	m.mu.Lock()
	defer m.mu.Unlock()

	if tracker, ok := m.trackers[subjectID]; ok {
		delete(m.trackers, subjectID)
		tracker.Stop()
	}

	status := Status{SubjectID: subjectID, State: StateStopped}
	m.statuses[subjectID] = status
	return status
}

// Status возвращает состояние отслеживания подопечного
func (m *Manager) Status(subjectID string) Status {
	m.mu.Lock()
	defer m.mu.Unlock()

	if tracker, ok := m.trackers[subjectID]; ok {
		return tracker.Status()
	}
	if status, ok := m.statuses[subjectID]; ok {
		return status
	}
	return Status{SubjectID: subjectID, State: StateStopped}
}

// Active возвращает число активных сессий
func (m *Manager) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.trackers)
}

// StopAll останавливает все сессии при завершении процесса
func (m *Manager) StopAll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for subjectID, tracker := range m.trackers {
		tracker.Stop()
		delete(m.trackers, subjectID)
	}
	m.logger.Info("All tracking sessions stopped")
}

// unavailable фиксирует видимое опекуну состояние "мониторинг недоступен" с причиной
func (m *Manager) unavailable(subjectID, reason string) Status {
	status := Status{SubjectID: subjectID, State: StateUnavailable, Reason: unavailablePrefix + reason}
	m.statuses[subjectID] = status
	return status
}
