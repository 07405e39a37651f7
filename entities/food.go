package entities

import (
	"github.com/google/uuid"
)

// Food is a reusable nutrient profile, either pulled from the remote catalog
// (ExternalID set) or created by the user (ExternalID nil). All nutrient
// columns are per-gram densities; per-serving and per-ounce figures shown
// anywhere are derived, never stored.
type Food struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ExternalID *string   `gorm:"size:255;uniqueIndex" json:"external_id,omitempty"`
	UPC        *string   `gorm:"size:64" json:"upc,omitempty"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	Brand      *string   `gorm:"size:255" json:"brand,omitempty"`
	Category   *string   `gorm:"size:255" json:"category,omitempty"`

	ServingSizeG *float64 `json:"serving_size_g,omitempty"`
	ServingText  *string  `gorm:"size:255" json:"serving_text,omitempty"`

	CaloriesPerG float64 `gorm:"not null" json:"calories_per_g"`
	ProteinPerG  float64 `gorm:"not null" json:"protein_per_g"`
	FatPerG      float64 `gorm:"not null" json:"fat_per_g"`
	CarbsPerG    float64 `gorm:"not null" json:"carbs_per_g"`

	Timestamp
}
