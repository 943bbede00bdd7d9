package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contribution is a single team contribution record. Aggregate metrics
// (max/avg/total/count per category) are computed from these rows by the
// contribution service.
type Contribution struct {
	ID       uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	TeamName string    `gorm:"not null;column:team_name" json:"team_name"`
	Category string    `gorm:"not null;index;column:category" json:"category"`
	Value    int       `gorm:"not null;column:value" json:"value"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Contribution) TableName() string { return "team_contributions" }
