package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/yungbote/teampulse-backend/internal/domain"
	"github.com/yungbote/teampulse-backend/internal/platform/apierr"
	"github.com/yungbote/teampulse-backend/internal/platform/logger"
	"github.com/yungbote/teampulse-backend/internal/repos"
	"gorm.io/gorm"
)

// ContributionService owns the business rules on top of the raw repository
// rows: null-handling policy, numeric validation and coercion, and the
// per-category result maps. The no-mode entry points default to SkipNulls.
type ContributionService interface {
	Save(ctx context.Context, contribution *domain.Contribution) (*domain.Contribution, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Contribution, error)
	FindAll(ctx context.Context) ([]*domain.Contribution, error)

	GetMaxContributionPerCategory(ctx context.Context) (map[string]int, error)
	GetMaxContributionPerCategoryWithMode(ctx context.Context, handling NullHandling) (map[string]int, error)
	GetMaxContributionPerCategoryFromTyped(ctx context.Context) (map[string]int, error)

	GetAverageContributionPerCategory(ctx context.Context) (map[string]float64, error)
	GetAverageContributionPerCategoryWithMode(ctx context.Context, handling NullHandling) (map[string]float64, error)

	GetTotalContributionPerCategory(ctx context.Context) (map[string]int64, error)
	GetTotalContributionPerCategoryWithMode(ctx context.Context, handling NullHandling) (map[string]int64, error)

	GetCountPerCategory(ctx context.Context) (map[string]int64, error)
	GetCountPerCategoryWithMode(ctx context.Context, handling NullHandling) (map[string]int64, error)
}

type contributionService struct {
	db               *gorm.DB
	log              *logger.Logger
	contributionRepo repos.ContributionRepo
}

func NewContributionService(db *gorm.DB, log *logger.Logger, contributionRepo repos.ContributionRepo) ContributionService {
	serviceLog := log.With("service", "ContributionService")
	return &contributionService{
		db:               db,
		log:              serviceLog,
		contributionRepo: contributionRepo,
	}
}

func (cs *contributionService) Save(ctx context.Context, contribution *domain.Contribution) (*domain.Contribution, error) {
	if contribution == nil {
		return nil, fmt.Errorf("contribution required")
	}
	created, err := cs.contributionRepo.Create(ctx, nil, []*domain.Contribution{contribution})
	if err != nil {
		return nil, fmt.Errorf("create contribution: %w", err)
	}
	return created[0], nil
}

func (cs *contributionService) FindByID(ctx context.Context, id uuid.UUID) (*domain.Contribution, error) {
	found, err := cs.contributionRepo.GetByIDs(ctx, nil, []uuid.UUID{id})
	if err != nil {
		return nil, fmt.Errorf("fetch contribution: %w", err)
	}
	if len(found) == 0 {
		return nil, apierr.NotFound("contribution_not_found", fmt.Errorf("contribution %s does not exist", id))
	}
	return found[0], nil
}

func (cs *contributionService) FindAll(ctx context.Context) ([]*domain.Contribution, error) {
	return cs.contributionRepo.List(ctx, nil)
}

func (cs *contributionService) GetMaxContributionPerCategory(ctx context.Context) (map[string]int, error) {
	return cs.GetMaxContributionPerCategoryWithMode(ctx, SkipNulls)
}

func (cs *contributionService) GetMaxContributionPerCategoryWithMode(ctx context.Context, handling NullHandling) (map[string]int, error) {
	rows, err := cs.contributionRepo.FindMaxPerCategory(ctx, nil)
	if err != nil {
		return nil, err
	}
	return aggregateRows[int](rows, fieldMaxValue, handling)
}

// GetMaxContributionPerCategoryFromTyped consumes the typed projection
// instead of row maps. Nulls are always skipped; there is no strict mode
// for this variant.
func (cs *contributionService) GetMaxContributionPerCategoryFromTyped(ctx context.Context) (map[string]int, error) {
	rows, err := cs.contributionRepo.FindMaxPerCategoryTyped(ctx, nil)
	if err != nil {
		return nil, err
	}
	result := make(map[string]int, len(rows))
	for _, r := range rows {
		if r.Category == nil || r.MaxValue == nil {
			continue
		}
		result[*r.Category] = *r.MaxValue
	}
	return result, nil
}

func (cs *contributionService) GetAverageContributionPerCategory(ctx context.Context) (map[string]float64, error) {
	return cs.GetAverageContributionPerCategoryWithMode(ctx, SkipNulls)
}

func (cs *contributionService) GetAverageContributionPerCategoryWithMode(ctx context.Context, handling NullHandling) (map[string]float64, error) {
	rows, err := cs.contributionRepo.FindAvgPerCategory(ctx, nil)
	if err != nil {
		return nil, err
	}
	return aggregateRows[float64](rows, fieldAvgValue, handling)
}

func (cs *contributionService) GetTotalContributionPerCategory(ctx context.Context) (map[string]int64, error) {
	return cs.GetTotalContributionPerCategoryWithMode(ctx, SkipNulls)
}

func (cs *contributionService) GetTotalContributionPerCategoryWithMode(ctx context.Context, handling NullHandling) (map[string]int64, error) {
	rows, err := cs.contributionRepo.FindTotalPerCategory(ctx, nil)
	if err != nil {
		return nil, err
	}
	return aggregateRows[int64](rows, fieldTotalValue, handling)
}

func (cs *contributionService) GetCountPerCategory(ctx context.Context) (map[string]int64, error) {
	return cs.GetCountPerCategoryWithMode(ctx, SkipNulls)
}

func (cs *contributionService) GetCountPerCategoryWithMode(ctx context.Context, handling NullHandling) (map[string]int64, error) {
	rows, err := cs.contributionRepo.FindCountPerCategory(ctx, nil)
	if err != nil {
		return nil, err
	}
	return aggregateRows[int64](rows, fieldCountValue, handling)
}
