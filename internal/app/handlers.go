package app

import (
	redisclient "github.com/yungbote/teampulse-backend/internal/clients/redis"
	httpH "github.com/yungbote/teampulse-backend/internal/http/handlers"
	"github.com/yungbote/teampulse-backend/internal/platform/logger"
)

type Handlers struct {
	Health       *httpH.HealthHandler
	Contribution *httpH.ContributionHandler
	WorkOrder    *httpH.WorkOrderHandler
}

func wireHandlers(log *logger.Logger, serviceset Services, cache redisclient.MetricsCache) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:       httpH.NewHealthHandler(),
		Contribution: httpH.NewContributionHandler(log, serviceset.Contribution, cache),
		WorkOrder:    httpH.NewWorkOrderHandler(serviceset.WorkOrder),
	}
}
