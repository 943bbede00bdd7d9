package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/teampulse-backend/internal/http/handlers"
	httpMW "github.com/yungbote/teampulse-backend/internal/http/middleware"
	"github.com/yungbote/teampulse-backend/internal/observability"
	"github.com/yungbote/teampulse-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	APIKeyMiddleware *httpMW.APIKeyMiddleware

	HealthHandler       *httpH.HealthHandler
	ContributionHandler *httpH.ContributionHandler
	WorkOrderHandler    *httpH.WorkOrderHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if observability.Enabled() {
		r.Use(otelgin.Middleware("teampulse-backend"))
	}
	r.Use(httpMW.CORS())
	r.Use(httpMW.RequestLogger(cfg.Log))

	// Health (public)
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		if cfg.APIKeyMiddleware != nil {
			api.Use(cfg.APIKeyMiddleware.RequireAPIKey())
		}

		// Contributions
		if cfg.ContributionHandler != nil {
			api.POST("/contributions", cfg.ContributionHandler.Create)
			api.GET("/contributions", cfg.ContributionHandler.List)
			api.GET("/contributions/:id", cfg.ContributionHandler.GetByID)

			api.GET("/metrics/max", cfg.ContributionHandler.MaxPerCategory)
			api.GET("/metrics/average", cfg.ContributionHandler.AveragePerCategory)
			api.GET("/metrics/total", cfg.ContributionHandler.TotalPerCategory)
			api.GET("/metrics/count", cfg.ContributionHandler.CountPerCategory)
		}

		// Work orders
		if cfg.WorkOrderHandler != nil {
			api.GET("/work-orders/status", cfg.WorkOrderHandler.GetStatus)
		}
	}

	return r
}
