package goal

import (
	"context"

	"macrolog/domain"
	"macrolog/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	GoalRepository interface {
		GetForDate(ctx context.Context, date string) (*entities.Goal, error)
		Save(ctx context.Context, goal *entities.Goal) error
	}

	goalRepository struct {
		db *gorm.DB
	}
)

func NewGoalRepository(db *gorm.DB) GoalRepository {
	return &goalRepository{db: db}
}

// GetForDate returns the targets for a date, creating the row with the
// default targets the first time that date is asked for. Reading twice
// without an intervening save returns the same row.
func (r *goalRepository) GetForDate(ctx context.Context, date string) (*entities.Goal, error) {
	goal := entities.Goal{}
	err := r.db.WithContext(ctx).
		Where(entities.Goal{Date: date}).
		Attrs(entities.Goal{
			ID:       uuid.New(),
			Calories: domain.DefaultGoalCalories,
			Protein:  domain.DefaultGoalProtein,
			Carbs:    domain.DefaultGoalCarbs,
			Fat:      domain.DefaultGoalFat,
		}).
		FirstOrCreate(&goal).Error
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// Save replaces all four targets for the goal's date in one statement.
func (r *goalRepository) Save(ctx context.Context, goal *entities.Goal) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"calories", "protein", "carbs", "fat", "updated_at"}),
		}).
		Create(goal).Error
}
