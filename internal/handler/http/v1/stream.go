package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/shenikar/geofence_monitoring/internal/notify"
)

// @Summary Stream caregiver notifications
// @Description Server-Sent Events stream. Every event carries a full snapshot of the 20 most recent notifications and the unread count. Requires API key (header or api_key query parameter).
// @Tags Alerts
// @Produce text/event-stream
// @Security ApiKeyAuth
// @Param id path string true "Caregiver ID"
// @Success 200 {object} notify.Snapshot
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Router /caregivers/{id}/notifications/stream [get]
func (h *Handler) streamNotifications(c *gin.Context) {
	caregiverID := c.Param("id")
	log := h.logger.WithField("method", "streamNotifications").WithField("caregiver_id", caregiverID)
	ctx := c.Request.Context()

	// хранится только последний снимок: он всегда полный
	updates := make(chan notify.Snapshot, 1)
	deliver := func(snapshot notify.Snapshot) {
		for {
			select {
			case updates <- snapshot:
				return
			default:
			}
			select {
			case <-updates:
			default:
			}
		}
	}

	unsubscribe, err := h.relay.Subscribe(ctx, caregiverID, deliver)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	defer unsubscribe()

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	log.Info("Notification stream opened")

	send := func(snapshot notify.Snapshot) {
		c.SSEvent("notifications", snapshot)
		c.Writer.Flush()
	}

	for {
		select {
		case snapshot := <-updates:
			send(snapshot)
			continue
		default:
		}

		select {
		case <-ctx.Done():
			log.Info("Notification stream closed")
			return
		case snapshot := <-updates:
			send(snapshot)
		}
	}
}
