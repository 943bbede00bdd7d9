package services

import (
	"context"
	"fmt"

	"github.com/yungbote/teampulse-backend/internal/domain"
	"github.com/yungbote/teampulse-backend/internal/platform/logger"
	"github.com/yungbote/teampulse-backend/internal/repos"
	"gorm.io/gorm"
)

type WorkOrderService interface {
	GetStatusCounts(ctx context.Context) (map[string]int64, error)
}

type workOrderService struct {
	db            *gorm.DB
	log           *logger.Logger
	workOrderRepo repos.WorkOrderRepo
}

func NewWorkOrderService(db *gorm.DB, log *logger.Logger, workOrderRepo repos.WorkOrderRepo) WorkOrderService {
	serviceLog := log.With("service", "WorkOrderService")
	return &workOrderService{
		db:            db,
		log:           serviceLog,
		workOrderRepo: workOrderRepo,
	}
}

func (ws *workOrderService) GetStatusCounts(ctx context.Context) (map[string]int64, error) {
	completed, err := ws.workOrderRepo.CountByStatus(ctx, nil, domain.WorkOrderStatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("count completed work orders: %w", err)
	}
	pending, err := ws.workOrderRepo.CountByStatus(ctx, nil, domain.WorkOrderStatusPending)
	if err != nil {
		return nil, fmt.Errorf("count pending work orders: %w", err)
	}
	return map[string]int64{
		"completed": completed,
		"pending":   pending,
	}, nil
}
