package tracking

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/shenikar/geofence_monitoring/internal/models"
	"github.com/sirupsen/logrus"
)

// Tracker - сессия отслеживания одного подопечного: один таймер и одна подписка на перемещения.
// После Stop сессия не возобновляется, для нового запуска создаётся новый Tracker.
type Tracker struct {
	subjectID   string
	subjectName string
	source      LocationSource
	subjects    SubjectStore
	geofences   GeofenceReader
	evaluator   Evaluator
	interval    time.Duration
	timeout     time.Duration
	logger      *logrus.Entry
	now         func() time.Time

	mu        sync.Mutex
	active    bool
	cancel    context.CancelFunc
	stopWatch func()
	done      chan struct{}
	inflight  sync.WaitGroup

	startedAt    time.Time
	lastSampleAt *time.Time
	lastLocation *models.LocationPoint
	lastError    string
	samples      int
}

func (t *Tracker) start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)

	t.mu.Lock()
	t.active = true
	t.cancel = cancel
	t.done = make(chan struct{})
	t.startedAt = t.now().UTC()
	t.mu.Unlock()

	t.stopWatch = t.source.WatchPosition(func(update models.LocationUpdate) {
		if !t.enter() {
			return
		}
		defer t.inflight.Done()
		t.process(ctx, update, triggerWatch)
	})

	go t.run(ctx)
}

func (t *Tracker) run(ctx context.Context) {
	defer close(t.done)

	// первый замер сразу, не дожидаясь таймера
	t.sample(ctx, triggerStart)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.sample(ctx, triggerTimer)
		}
	}
}

// Stop останавливает таймер и подписку. Повторный вызов безопасен.
// После возврата сессия не производит новых замеров.
func (t *Tracker) Stop() {
	t.mu.Lock()
	if !t.active {
		t.mu.Unlock()
		return
	}
	t.active = false
	t.mu.Unlock()

	t.cancel()
	t.stopWatch()
	<-t.done
	t.inflight.Wait()

	t.logger.Info("Tracking stopped")
}

// Status возвращает снимок состояния сессии
func (t *Tracker) Status() Status {
	t.mu.Lock()
	defer t.mu.Unlock()

	state := StateActive
	if !t.active {
		state = StateStopped
	}
	startedAt := t.startedAt
	return Status{
		SubjectID:    t.subjectID,
		State:        state,
		StartedAt:    &startedAt,
		LastSampleAt: t.lastSampleAt,
		LastLocation: t.lastLocation,
		LastError:    t.lastError,
		Samples:      t.samples,
	}
}

func (t *Tracker) enter() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.active {
		return false
	}
	t.inflight.Add(1)
	return true
}

func (t *Tracker) sample(ctx context.Context, trig trigger) {
	if !t.enter() {
		return
	}
	defer t.inflight.Done()

	acquireCtx, cancel := context.WithTimeout(ctx, t.timeout)
	update, err := t.source.CurrentPosition(acquireCtx)
	cancel()
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		log := t.logger.WithField("trigger", trig).WithError(err)
		if errors.Is(err, models.ErrAcquisitionTimeout) || errors.Is(err, context.DeadlineExceeded) {
			log.Warn("Location acquisition timed out, sample skipped")
		} else {
			log.Error("Failed to acquire location")
		}
		t.setError(err)
		return
	}

	t.process(ctx, update, trig)
}

// process сохраняет точку и передаёт её оценщику вместе с зоной, перечитанной на каждый замер
func (t *Tracker) process(ctx context.Context, update models.LocationUpdate, trig trigger) {
	update.SubjectID = t.subjectID
	if update.Timestamp.IsZero() {
		update.Timestamp = t.now().UTC()
	}
	log := t.logger.WithFields(logrus.Fields{
		"trigger":   trig,
		"latitude":  update.Location.Latitude,
		"longitude": update.Location.Longitude,
	})

	t.mu.Lock()
	at := update.Timestamp
	location := update.Location
	t.lastSampleAt = &at
	t.lastLocation = &location
	t.samples++
	t.mu.Unlock()

	if err := t.subjects.RecordLocation(ctx, update); err != nil {
		// оценка всё равно выполняется: потеря указателя не должна скрыть нарушение
		log.WithError(err).Error("Failed to record last known location")
	}

	geofence, err := t.geofences.GetGeofence(ctx, t.subjectID)
	if err != nil {
		log.WithError(err).Error("Failed to load geofence for sample")
		t.setError(err)
		return
	}

	alert, err := t.evaluator.Evaluate(ctx, t.subjectID, t.subjectName, update.Location, geofence)
	if err != nil {
		log.WithError(err).Error("Failed to evaluate sample")
		t.setError(err)
		return
	}
	t.setError(nil)

	if alert != nil {
		log.WithFields(logrus.Fields{
			"alert_id": alert.ID,
			"severity": alert.Severity,
		}).Info("Sample produced geofence alert")
	}
}

func (t *Tracker) setError(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err == nil {
		t.lastError = ""
		return
	}
	t.lastError = err.Error()
}
