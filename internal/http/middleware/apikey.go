package middleware

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/teampulse-backend/internal/http/response"
	"github.com/yungbote/teampulse-backend/internal/platform/logger"
)

const apiKeyHeader = "X-API-KEY"

// APIKeyMiddleware rejects requests that do not present the configured
// static API key.
type APIKeyMiddleware struct {
	log         *logger.Logger
	expectedKey string
}

func NewAPIKeyMiddleware(log *logger.Logger, expectedKey string) *APIKeyMiddleware {
	middlewareLog := log.With("middleware", "APIKeyMiddleware")
	return &APIKeyMiddleware{log: middlewareLog, expectedKey: expectedKey}
}

func (am *APIKeyMiddleware) RequireAPIKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader(apiKeyHeader)
		if apiKey == "" || subtle.ConstantTimeCompare([]byte(apiKey), []byte(am.expectedKey)) != 1 {
			am.log.Warn("Rejected request with invalid or missing API key", "path", c.Request.URL.Path)
			response.RespondError(c, http.StatusUnauthorized, "invalid_api_key", errors.New("invalid or missing API key"))
			c.Abort()
			return
		}
		c.Next()
	}
}
