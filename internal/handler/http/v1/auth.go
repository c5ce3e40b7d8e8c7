package v1

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/geofence_monitoring/internal/config"
	"github.com/sirupsen/logrus"
)

// APIKeyAuthMiddleware пропускает только запросы с одним из ключей API_KEYS
func APIKeyAuthMiddleware(cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := requestAPIKey(c)
		if apiKey == "" {
			log.WithField("path", c.FullPath()).Warn("API key missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "API key required"})
			return
		}

		if !knownAPIKey(cfg.APIKeys, apiKey) {
			log.WithField("path", c.FullPath()).Warn("Invalid API key provided")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
			return
		}

		c.Next()
	}
}

// requestAPIKey ищет ключ в X-API-Key, затем в Authorization: Bearer, затем в ?api_key=.
// Параметр запроса нужен для EventSource: браузер не передаёт в нём заголовки.
func requestAPIKey(c *gin.Context) string {
	if key := c.GetHeader("X-API-Key"); key != "" {
		return key
	}
	if bearer, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer "); ok && bearer != "" {
		return bearer
	}
	return c.Query("api_key")
}

func knownAPIKey(keys []string, candidate string) bool {
	for _, key := range keys {
		if subtle.ConstantTimeCompare([]byte(key), []byte(candidate)) == 1 {
			return true
		}
	}
	return false
}
