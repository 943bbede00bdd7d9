package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	WorkOrderStatusCompleted = "COMPLETED"
	WorkOrderStatusPending   = "PENDING"
)

type WorkOrder struct {
	ID     uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Status string    `gorm:"not null;index;column:status" json:"status"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (WorkOrder) TableName() string { return "work_orders" }
