package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/teampulse-backend/internal/platform/logger"
	"github.com/yungbote/teampulse-backend/internal/services"
)

type Services struct {
	Contribution services.ContributionService
	WorkOrder    services.WorkOrderService
}

func wireServices(db *gorm.DB, log *logger.Logger, reposet Repos) Services {
	log.Info("Wiring services...")
	return Services{
		Contribution: services.NewContributionService(db, log, reposet.Contribution),
		WorkOrder:    services.NewWorkOrderService(db, log, reposet.WorkOrder),
	}
}
