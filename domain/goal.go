package domain

var (
	MessageSuccessGetGoals  = "goals retrieved successfully"
	MessageSuccessSaveGoals = "goals saved successfully"

	MessageFailedGetGoals  = "failed to retrieve goals"
	MessageFailedSaveGoals = "failed to save goals"
)

// Default targets used when goals are read for a date that has none yet.
const (
	DefaultGoalCalories = 2000
	DefaultGoalProtein  = 150
	DefaultGoalCarbs    = 250
	DefaultGoalFat      = 70
)

type (
	SaveGoalsRequest struct {
		Calories float64 `json:"calories" validate:"required,gt=0"`
		Protein  float64 `json:"protein" validate:"required,gt=0"`
		Carbs    float64 `json:"carbs" validate:"required,gt=0"`
		Fat      float64 `json:"fat" validate:"required,gt=0"`
	}

	GoalsResponse struct {
		Date     string  `json:"date"`
		Calories float64 `json:"calories"`
		Protein  float64 `json:"protein"`
		Carbs    float64 `json:"carbs"`
		Fat      float64 `json:"fat"`
	}
)
