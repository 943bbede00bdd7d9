package app

import (
	"github.com/gin-gonic/gin"

	internalhttp "github.com/yungbote/teampulse-backend/internal/http"
	"github.com/yungbote/teampulse-backend/internal/platform/logger"
)

func wireRouter(log *logger.Logger, handlerset Handlers, middlewareset Middleware) *gin.Engine {
	log.Info("Wiring router...")
	return internalhttp.NewRouter(internalhttp.RouterConfig{
		Log:                 log,
		APIKeyMiddleware:    middlewareset.APIKey,
		HealthHandler:       handlerset.Health,
		ContributionHandler: handlerset.Contribution,
		WorkOrderHandler:    handlerset.WorkOrder,
	})
}
