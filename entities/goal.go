package entities

import (
	"github.com/google/uuid"
)

// Goal holds the daily calorie and macro targets for one date. A row is
// created lazily with the default targets the first time goals are read.
type Goal struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Date string    `gorm:"size:10;uniqueIndex;not null" json:"date"` // YYYY-MM-DD

	Calories float64 `gorm:"not null" json:"calories"`
	Protein  float64 `gorm:"not null" json:"protein"`
	Carbs    float64 `gorm:"not null" json:"carbs"`
	Fat      float64 `gorm:"not null" json:"fat"`

	Timestamp
}
