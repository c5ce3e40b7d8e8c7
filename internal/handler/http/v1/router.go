package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршрут Health-check, без ключа
	api.GET("/system/health", h.healthCheck)

	protected := api.Group("", APIKeyAuthMiddleware(h.cfg, h.logger))

	// Подопечные, их зона и отслеживание
	subjects := protected.Group("/subjects/:id")
	{
		subjects.PUT("", h.upsertSubject)
		subjects.GET("", h.getSubject)

		subjects.POST("/geofence", h.createGeofence)
		subjects.PATCH("/geofence", h.updateGeofence)
		subjects.GET("/geofence", h.getGeofence)
		subjects.DELETE("/geofence", h.deleteGeofence)
		subjects.POST("/evaluate", h.evaluateLocation)

		subjects.POST("/positions", h.reportPosition)
		subjects.PUT("/permission", h.setPermission)

		subjects.POST("/tracking/start", h.startTracking)
		subjects.POST("/tracking/stop", h.stopTracking)
		subjects.GET("/tracking", h.trackingStatus)
	}

	// Журнал алертов опекуна
	caregivers := protected.Group("/caregivers/:id")
	{
		caregivers.GET("/alerts", h.listAlerts)
		caregivers.GET("/alerts/unread-count", h.unreadCount)
		caregivers.POST("/alerts/read-all", h.markAllAlertsRead)
		caregivers.GET("/notifications/stream", h.streamNotifications)
	}

	protected.POST("/alerts/:id/read", h.markAlertRead)
}
