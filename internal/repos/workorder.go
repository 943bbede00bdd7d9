package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/teampulse-backend/internal/domain"
	"github.com/yungbote/teampulse-backend/internal/platform/logger"
)

type WorkOrderRepo interface {
	Create(ctx context.Context, tx *gorm.DB, orders []*domain.WorkOrder) ([]*domain.WorkOrder, error)
	CountByStatus(ctx context.Context, tx *gorm.DB, status string) (int64, error)
}

type workOrderRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewWorkOrderRepo(db *gorm.DB, baseLog *logger.Logger) WorkOrderRepo {
	repoLog := baseLog.With("repo", "WorkOrderRepo")
	return &workOrderRepo{db: db, log: repoLog}
}

func (wr *workOrderRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return wr.db
}

func (wr *workOrderRepo) Create(ctx context.Context, tx *gorm.DB, orders []*domain.WorkOrder) ([]*domain.WorkOrder, error) {
	if len(orders) == 0 {
		return []*domain.WorkOrder{}, nil
	}
	if err := wr.conn(tx).WithContext(ctx).Create(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (wr *workOrderRepo) CountByStatus(ctx context.Context, tx *gorm.DB, status string) (int64, error) {
	var count int64
	if err := wr.conn(tx).WithContext(ctx).
		Model(&domain.WorkOrder{}).
		Where("status = ?", status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
