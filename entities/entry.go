package entities

import (
	"github.com/google/uuid"
)

const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

// Entry is one logged instance of a food on a day. QuantityG is always grams;
// display units are converted before anything reaches storage.
type Entry struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	DayID    uuid.UUID `gorm:"type:uuid;not null;index" json:"day_id"`
	FoodID   uuid.UUID `gorm:"type:uuid;not null;index" json:"food_id"`
	MealTime string    `gorm:"size:16;not null;default:snack;check:meal_time IN ('breakfast','lunch','dinner','snack')" json:"meal_time"`

	QuantityG float64 `gorm:"not null;check:quantity_g > 0" json:"quantity_g"`

	Day  *Day  `gorm:"foreignKey:DayID" json:"-"`
	Food *Food `gorm:"foreignKey:FoodID" json:"food,omitempty"`

	Timestamp
}
