package entities

import (
	"github.com/google/uuid"
)

// Day groups the entries logged on one calendar date. Rows are created
// lazily the first time something is logged for that date and never updated.
type Day struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Date string    `gorm:"size:10;uniqueIndex;not null" json:"date"` // YYYY-MM-DD

	Entries []Entry `gorm:"foreignKey:DayID;constraint:OnDelete:CASCADE" json:"entries,omitempty"`

	Timestamp
}
