package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/teampulse-backend/internal/platform/logger"
	"github.com/yungbote/teampulse-backend/internal/repos"
)

type Repos struct {
	Contribution repos.ContributionRepo
	WorkOrder    repos.WorkOrderRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Contribution: repos.NewContributionRepo(db, log),
		WorkOrder:    repos.NewWorkOrderRepo(db, log),
	}
}
