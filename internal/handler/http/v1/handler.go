package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/geofence_monitoring/internal/config"
	"github.com/shenikar/geofence_monitoring/internal/models"
	"github.com/shenikar/geofence_monitoring/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	subjectService  service.SubjectService
	geofenceService service.GeofenceService
	alertService    service.AlertService
	evaluator       SampleEvaluator
	tracking        TrackingManager
	devices         DeviceHub
	relay           NotificationRelay
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

// Deps - зависимости обработчиков
type Deps struct {
	Subjects  service.SubjectService
	Geofences service.GeofenceService
	Alerts    service.AlertService
	Evaluator SampleEvaluator
	Tracking  TrackingManager
	Devices   DeviceHub
	Relay     NotificationRelay
}

func NewHandler(deps Deps, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		subjectService:  deps.Subjects,
		geofenceService: deps.Geofences,
		alertService:    deps.Alerts,
		evaluator:       deps.Evaluator,
		tracking:        deps.Tracking,
		devices:         deps.Devices,
		relay:           deps.Relay,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// bindAndValidate разбирает тело запроса и проверяет его. При ошибке ответ уже отправлен.
func (h *Handler) bindAndValidate(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// respondError переводит доменные ошибки в HTTP-статусы
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		log.WithError(err).Warn("Resource not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, models.ErrInvalidGeofence):
		log.WithError(err).Warn("Invalid geofence")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid geofence"})
	case errors.Is(err, models.ErrPermissionDenied):
		log.WithError(err).Warn("Location permission denied")
		c.JSON(http.StatusForbidden, gin.H{"error": "location permission denied"})
	case errors.Is(err, models.ErrStoreUnavailable):
		log.WithError(err).Error("Store unavailable")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "store unavailable"})
	default:
		log.WithError(err).Error("Unexpected service error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Register or rename a subject
// @Description Create the subject record or update its name. Requires API key.
// @Tags Subjects
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Subject ID"
// @Param subject body UpsertSubjectRequest true "Subject"
// @Success 200 {object} SubjectResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Router /subjects/{id} [put]
func (h *Handler) upsertSubject(c *gin.Context) {
	subjectID := c.Param("id")
	log := h.logger.WithField("method", "upsertSubject").WithField("subject_id", subjectID)

	var input UpsertSubjectRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	subject := &models.Subject{ID: subjectID, Name: input.Name}
	if err := h.subjectService.UpsertSubject(c.Request.Context(), subject); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToSubjectResponse(subject))
}

// @Summary Get subject
// @Description Get a subject with its geofence and last known location. Requires API key.
// @Tags Subjects
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Subject ID"
// @Success 200 {object} SubjectResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Subject not found"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Router /subjects/{id} [get]
func (h *Handler) getSubject(c *gin.Context) {
	subjectID := c.Param("id")
	log := h.logger.WithField("method", "getSubject").WithField("subject_id", subjectID)

	subject, err := h.subjectService.GetSubject(c.Request.Context(), subjectID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToSubjectResponse(subject))
}

// @Summary Create the subject's geofence
// @Description Create the single safe zone of a subject, replacing any previous one. Requires API key.
// @Tags Geofence
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Subject ID"
// @Param geofence body CreateGeofenceRequest true "Geofence creation request"
// @Success 201 {object} GeofenceResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Subject not found"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Router /subjects/{id}/geofence [post]
func (h *Handler) createGeofence(c *gin.Context) {
	subjectID := c.Param("id")
	log := h.logger.WithField("method", "createGeofence").WithField("subject_id", subjectID)

	var input CreateGeofenceRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	model := DTOToGeofenceModel(subjectID, input)
	if err := h.geofenceService.CreateGeofence(c.Request.Context(), model); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToGeofenceResponse(model))
}

// @Summary Update the subject's geofence
// @Description Partially update the safe zone. Latitude and longitude must be sent together. Requires API key.
// @Tags Geofence
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Subject ID"
// @Param geofence body UpdateGeofenceRequest true "Geofence update request"
// @Success 200 {object} GeofenceResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Geofence not found"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Router /subjects/{id}/geofence [patch]
func (h *Handler) updateGeofence(c *gin.Context) {
	subjectID := c.Param("id")
	log := h.logger.WithField("method", "updateGeofence").WithField("subject_id", subjectID)

	var input UpdateGeofenceRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}
	if (input.Latitude == nil) != (input.Longitude == nil) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "latitude and longitude must be provided together"})
		return
	}

	geofence, err := h.geofenceService.UpdateGeofence(c.Request.Context(), subjectID, DTOToGeofencePatch(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToGeofenceResponse(geofence))
}

// @Summary Get the subject's geofence
// @Description Get the active safe zone of a subject. Requires API key.
// @Tags Geofence
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Subject ID"
// @Success 200 {object} GeofenceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Geofence not found"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Router /subjects/{id}/geofence [get]
func (h *Handler) getGeofence(c *gin.Context) {
	subjectID := c.Param("id")
	log := h.logger.WithField("method", "getGeofence").WithField("subject_id", subjectID)

	geofence, err := h.geofenceService.GetGeofence(c.Request.Context(), subjectID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	if geofence == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "geofence not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToGeofenceResponse(geofence))
}

// @Summary Delete the subject's geofence
// @Description Clear the safe zone. Deleting a missing zone is not an error. Requires API key.
// @Tags Geofence
// @Security ApiKeyAuth
// @Param id path string true "Subject ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Router /subjects/{id}/geofence [delete]
func (h *Handler) deleteGeofence(c *gin.Context) {
	subjectID := c.Param("id")
	log := h.logger.WithField("method", "deleteGeofence").WithField("subject_id", subjectID)

	if err := h.geofenceService.DeleteGeofence(c.Request.Context(), subjectID); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Evaluate a location sample
// @Description Check one location against the subject's current geofence and record an alert on violation. Requires API key.
// @Tags Geofence
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Subject ID"
// @Param location body EvaluateRequest true "Location"
// @Success 200 {object} EvaluateResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Subject not found"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Router /subjects/{id}/evaluate [post]
func (h *Handler) evaluateLocation(c *gin.Context) {
	subjectID := c.Param("id")
	log := h.logger.WithField("method", "evaluateLocation").WithField("subject_id", subjectID)

	var input EvaluateRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}
	ctx := c.Request.Context()

	subject, err := h.subjectService.GetSubject(ctx, subjectID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	geofence, err := h.geofenceService.GetGeofence(ctx, subjectID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	location := models.LocationPoint{Latitude: *input.Latitude, Longitude: *input.Longitude}
	alert, err := h.evaluator.Evaluate(ctx, subjectID, subject.Name, location, geofence)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	resp := EvaluateResponse{Violation: alert != nil}
	if alert != nil {
		resp.Alert = ModelToAlertResponse(alert)
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Report a device position
// @Description Accept a position sample from the subject's device. Requires API key.
// @Tags Devices
// @Accept json
// @Security ApiKeyAuth
// @Param id path string true "Subject ID"
// @Param position body PositionReportRequest true "Position"
// @Success 202 "Accepted"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /subjects/{id}/positions [post]
func (h *Handler) reportPosition(c *gin.Context) {
	subjectID := c.Param("id")
	log := h.logger.WithField("method", "reportPosition").WithField("subject_id", subjectID)

	var input PositionReportRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	update := models.LocationUpdate{
		SubjectID: subjectID,
		Location:  models.LocationPoint{Latitude: *input.Latitude, Longitude: *input.Longitude},
		Accuracy:  input.Accuracy,
	}
	if input.Timestamp != nil {
		update.Timestamp = input.Timestamp.UTC()
	}
	h.devices.Report(update)
	c.Status(http.StatusAccepted)
}

// @Summary Set location permission
// @Description Record the device's location permission state. Requires API key.
// @Tags Devices
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Subject ID"
// @Param permission body PermissionRequest true "Permission state"
// @Success 200 {object} PermissionResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /subjects/{id}/permission [put]
func (h *Handler) setPermission(c *gin.Context) {
	subjectID := c.Param("id")
	log := h.logger.WithField("method", "setPermission").WithField("subject_id", subjectID)

	var input PermissionRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	h.devices.SetPermission(subjectID, models.PermissionState(input.State))
	c.JSON(http.StatusOK, PermissionResponse{
		SubjectID: subjectID,
		State:     string(h.devices.Permission(subjectID)),
	})
}

// @Summary Start tracking
// @Description Start location tracking of a subject, restarting any active session. Requires API key.
// @Tags Tracking
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Subject ID"
// @Success 200 {object} tracking.Status
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} tracking.Status "Location permission denied"
// @Failure 404 {object} tracking.Status "Subject not found"
// @Router /subjects/{id}/tracking/start [post]
func (h *Handler) startTracking(c *gin.Context) {
	subjectID := c.Param("id")
	log := h.logger.WithField("method", "startTracking").WithField("subject_id", subjectID)

	status, err := h.tracking.Start(c.Request.Context(), subjectID)
	if err != nil {
		code := http.StatusServiceUnavailable
		switch {
		case errors.Is(err, models.ErrPermissionDenied):
			code = http.StatusForbidden
		case errors.Is(err, models.ErrNotFound):
			code = http.StatusNotFound
		}
		// отслеживание деградирует до видимого состояния unavailable
		log.WithError(err).Warn("Safety monitoring unavailable")
		c.JSON(code, status)
		return
	}
	c.JSON(http.StatusOK, status)
}

// @Summary Stop tracking
// @Description Stop location tracking of a subject. Idempotent. Requires API key.
// @Tags Tracking
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Subject ID"
// @Success 200 {object} tracking.Status
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /subjects/{id}/tracking/stop [post]
func (h *Handler) stopTracking(c *gin.Context) {
	c.JSON(http.StatusOK, h.tracking.Stop(c.Param("id")))
}

// @Summary Get tracking status
// @Tags Tracking
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Subject ID"
// @Success 200 {object} tracking.Status
// @Router /subjects/{id}/tracking [get]
func (h *Handler) trackingStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.tracking.Status(c.Param("id")))
}

// @Summary List caregiver alerts
// @Description List alerts newest first. On store failure returns an empty list with an error indicator. Requires API key.
// @Tags Alerts
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Caregiver ID"
// @Param unread_only query bool false "Only unread alerts" default(false)
// @Param limit query int false "Page size, at most 50" default(50)
// @Success 200 {object} AlertListResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} AlertListResponse "Alerts unavailable"
// @Router /caregivers/{id}/alerts [get]
func (h *Handler) listAlerts(c *gin.Context) {
	caregiverID := c.Param("id")
	log := h.logger.WithField("method", "listAlerts").WithField("caregiver_id", caregiverID)

	unreadOnly, _ := strconv.ParseBool(c.DefaultQuery("unread_only", "false"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	alerts, err := h.alertService.ListForCaregiver(c.Request.Context(), caregiverID, unreadOnly, limit)
	if err != nil {
		log.WithError(err).Error("Failed to list alerts from service")
		c.JSON(http.StatusServiceUnavailable, AlertListResponse{
			Alerts: []*AlertResponse{},
			Error:  "alerts unavailable",
		})
		return
	}

	c.JSON(http.StatusOK, AlertListResponse{Alerts: ModelsToAlertResponses(alerts)})
}

// @Summary Count unread alerts
// @Tags Alerts
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Caregiver ID"
// @Success 200 {object} UnreadCountResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Router /caregivers/{id}/alerts/unread-count [get]
func (h *Handler) unreadCount(c *gin.Context) {
	caregiverID := c.Param("id")
	log := h.logger.WithField("method", "unreadCount").WithField("caregiver_id", caregiverID)

	count, err := h.alertService.UnreadCount(c.Request.Context(), caregiverID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, UnreadCountResponse{UnreadCount: count})
}

// @Summary Mark an alert read
// @Tags Alerts
// @Security ApiKeyAuth
// @Param id path string true "Alert ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid alert ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Alert not found"
// @Router /alerts/{id}/read [post]
func (h *Handler) markAlertRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert ID"})
		return
	}
	log := h.logger.WithField("method", "markAlertRead").WithField("id", id)

	if err := h.alertService.MarkRead(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Mark all caregiver alerts read
// @Tags Alerts
// @Security ApiKeyAuth
// @Param id path string true "Caregiver ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Router /caregivers/{id}/alerts/read-all [post]
func (h *Handler) markAllAlertsRead(c *gin.Context) {
	caregiverID := c.Param("id")
	log := h.logger.WithField("method", "markAllAlertsRead").WithField("caregiver_id", caregiverID)

	if err := h.alertService.MarkAllRead(c.Request.Context(), caregiverID); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:              "ok",
		ActiveTrackers:      h.tracking.Active(),
		NotificationWatches: h.relay.ActiveWatches(),
	})
}
