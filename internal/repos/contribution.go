package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/teampulse-backend/internal/domain"
	"github.com/yungbote/teampulse-backend/internal/platform/logger"
)

// CategoryMax is the typed projection for the max-per-category query.
// Fields are pointers because a grouped aggregate can come back NULL.
type CategoryMax struct {
	Category *string `gorm:"column:category"`
	MaxValue *int    `gorm:"column:maxValue"`
}

// ContributionRepo executes the raw SQL and returns loosely-typed rows.
// Null-handling, coercion and validation of those rows belong to the
// contribution service, not here.
type ContributionRepo interface {
	Create(ctx context.Context, tx *gorm.DB, contributions []*domain.Contribution) ([]*domain.Contribution, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*domain.Contribution, error)
	List(ctx context.Context, tx *gorm.DB) ([]*domain.Contribution, error)

	FindMaxPerCategory(ctx context.Context, tx *gorm.DB) ([]map[string]any, error)
	FindMaxPerCategoryTyped(ctx context.Context, tx *gorm.DB) ([]CategoryMax, error)
	FindAvgPerCategory(ctx context.Context, tx *gorm.DB) ([]map[string]any, error)
	FindTotalPerCategory(ctx context.Context, tx *gorm.DB) ([]map[string]any, error)
	FindCountPerCategory(ctx context.Context, tx *gorm.DB) ([]map[string]any, error)
}

type contributionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewContributionRepo(db *gorm.DB, baseLog *logger.Logger) ContributionRepo {
	repoLog := baseLog.With("repo", "ContributionRepo")
	return &contributionRepo{db: db, log: repoLog}
}

func (cr *contributionRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return cr.db
}

func (cr *contributionRepo) Create(ctx context.Context, tx *gorm.DB, contributions []*domain.Contribution) ([]*domain.Contribution, error) {
	if len(contributions) == 0 {
		return []*domain.Contribution{}, nil
	}
	if err := cr.conn(tx).WithContext(ctx).Create(&contributions).Error; err != nil {
		return nil, err
	}
	return contributions, nil
}

func (cr *contributionRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*domain.Contribution, error) {
	var results []*domain.Contribution
	if len(ids) == 0 {
		return results, nil
	}
	if err := cr.conn(tx).WithContext(ctx).
		Where("id IN ?", ids).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *contributionRepo) List(ctx context.Context, tx *gorm.DB) ([]*domain.Contribution, error) {
	var results []*domain.Contribution
	if err := cr.conn(tx).WithContext(ctx).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// The aggregate queries alias their value column to the exact key the
// service reads out of each row map ("maxValue", "avgValue", ...), and
// exclude soft-deleted rows explicitly since Raw bypasses gorm scopes.

func (cr *contributionRepo) FindMaxPerCategory(ctx context.Context, tx *gorm.DB) ([]map[string]any, error) {
	var rows []map[string]any
	if err := cr.conn(tx).WithContext(ctx).Raw(
		`SELECT category, MAX(value) AS "maxValue" FROM team_contributions WHERE deleted_at IS NULL GROUP BY category`,
	).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (cr *contributionRepo) FindMaxPerCategoryTyped(ctx context.Context, tx *gorm.DB) ([]CategoryMax, error) {
	var rows []CategoryMax
	if err := cr.conn(tx).WithContext(ctx).Raw(
		`SELECT category, MAX(value) AS "maxValue" FROM team_contributions WHERE deleted_at IS NULL GROUP BY category`,
	).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (cr *contributionRepo) FindAvgPerCategory(ctx context.Context, tx *gorm.DB) ([]map[string]any, error) {
	var rows []map[string]any
	// CAST(... AS FLOAT) keeps the scanned value a float64 on both
	// postgres (double precision) and sqlite (REAL).
	if err := cr.conn(tx).WithContext(ctx).Raw(
		`SELECT category, CAST(AVG(value) AS FLOAT) AS "avgValue" FROM team_contributions WHERE deleted_at IS NULL GROUP BY category`,
	).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (cr *contributionRepo) FindTotalPerCategory(ctx context.Context, tx *gorm.DB) ([]map[string]any, error) {
	var rows []map[string]any
	if err := cr.conn(tx).WithContext(ctx).Raw(
		`SELECT category, SUM(value) AS "totalValue" FROM team_contributions WHERE deleted_at IS NULL GROUP BY category`,
	).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (cr *contributionRepo) FindCountPerCategory(ctx context.Context, tx *gorm.DB) ([]map[string]any, error) {
	var rows []map[string]any
	if err := cr.conn(tx).WithContext(ctx).Raw(
		`SELECT category, COUNT(*) AS "countValue" FROM team_contributions WHERE deleted_at IS NULL GROUP BY category`,
	).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
