package webhook

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
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

func newTestWorker(url string) *Worker {
	cfg := &config.Config{
		WebhookURL:        url,
		WebhookSecret:     "secret",
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	}
	w := NewWorker(nil, logger.Discard(), cfg)
	w.sleep = func(time.Duration) {}
	return w
}

func testPayload(t *testing.T) []byte {
	alert := &models.GeofenceAlert{
		ID:                       uuid.New(),
		SubjectName:              "Анна",
		CaregiverID:              "caregiver-1",
		DistanceFromCenterMeters: 612.4,
		Severity:                 models.SeverityMedium,
	}
	payload, err := json.Marshal(NewAlertEvent(alert, time.Now()))
	require.NoError(t, err)
	return payload
}

func TestDeliver_SignsPayload(t *testing.T) {
	payload := testPayload(t)
	var gotSignature string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSignature = r.Header.Get("X-Webhook-Signature")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := newTestWorker(srv.URL).deliver(context.Background(), payload)

	require.NoError(t, err)
	assert.Equal(t, payload, gotBody)
	assert.Equal(t, generateHMACSHA256(payload, "secret"), gotSignature)
}

func TestDeliver_RetriesUntilSuccess(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	err := newTestWorker(srv.URL).deliver(context.Background(), testPayload(t))

	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestDeliver_GivesUp(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := newTestWorker(srv.URL).deliver(context.Background(), testPayload(t))

	require.Error(t, err)
	assert.ErrorContains(t, err, "failed after 3 attempts")
	assert.Equal(t, int32(3), calls.Load())
}

func TestProcessEvent_NoURLSkipsDelivery(t *testing.T) {
	w := newTestWorker("")
	assert.NotPanics(t, func() {
		w.processEvent(context.Background(), testPayload(t))
	})
}

func TestAlertMessage(t *testing.T) {
	alert := &models.GeofenceAlert{SubjectName: "Анна", DistanceFromCenterMeters: 612.6}
	assert.Equal(t, "Анна is outside the safe zone (613m away)", AlertMessage(alert))
}
