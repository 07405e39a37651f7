package goal

import (
	"context"
	"time"

	"macrolog/domain"
	"macrolog/entities"

	"github.com/google/uuid"
)

type (
	GoalService interface {
		GetForToday(ctx context.Context) (domain.GoalsResponse, error)
		SaveForToday(ctx context.Context, req domain.SaveGoalsRequest) (domain.GoalsResponse, error)
	}

	goalService struct {
		goalRepository GoalRepository
	}
)

func NewGoalService(goalRepository GoalRepository) GoalService {
	return &goalService{goalRepository: goalRepository}
}

func today() string {
	return time.Now().Format(domain.DateLayout)
}

func (s *goalService) GetForToday(ctx context.Context) (domain.GoalsResponse, error) {
	goal, err := s.goalRepository.GetForDate(ctx, today())
	if err != nil {
		return domain.GoalsResponse{}, err
	}

	return domain.GoalsResponse{
		Date:     goal.Date,
		Calories: goal.Calories,
		Protein:  goal.Protein,
		Carbs:    goal.Carbs,
		Fat:      goal.Fat,
	}, nil
}

func (s *goalService) SaveForToday(ctx context.Context, req domain.SaveGoalsRequest) (domain.GoalsResponse, error) {
	goal := entities.Goal{
		ID:       uuid.New(),
		Date:     today(),
		Calories: req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fat:      req.Fat,
	}

	if err := s.goalRepository.Save(ctx, &goal); err != nil {
		return domain.GoalsResponse{}, err
	}

	return domain.GoalsResponse{
		Date:     goal.Date,
		Calories: goal.Calories,
		Protein:  goal.Protein,
		Carbs:    goal.Carbs,
		Fat:      goal.Fat,
	}, nil
}
