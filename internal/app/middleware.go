package app

import (
	httpMW "github.com/yungbote/teampulse-backend/internal/http/middleware"
	"github.com/yungbote/teampulse-backend/internal/platform/logger"
)

type Middleware struct {
	APIKey *httpMW.APIKeyMiddleware
}

func wireMiddleware(log *logger.Logger, cfg Config) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		APIKey: httpMW.NewAPIKeyMiddleware(log, cfg.APIKey),
	}
}
