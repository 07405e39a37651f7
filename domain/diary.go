package domain

import (
	"errors"

	"macrolog/pkg/nutrition"
)

var (
	MessageSuccessUpsertEntry    = "entry saved successfully"
	MessageSuccessDeleteEntry    = "entry deleted successfully"
	MessageSuccessGetEntries     = "entries retrieved successfully"
	MessageSuccessGetRecentFoods = "recent foods retrieved successfully"

	MessageFailedUpsertEntry    = "failed to save entry"
	MessageFailedDeleteEntry    = "failed to delete entry"
	MessageFailedGetEntries     = "failed to retrieve entries"
	MessageFailedGetRecentFoods = "failed to retrieve recent foods"

	ErrEntryNotFound   = errors.New("entry not found")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrInvalidMealTime = errors.New("meal time must be breakfast, lunch, dinner or snack")
	ErrInvalidUnit     = errors.New("unit must be serving, g, oz or lb")
	ErrDayResolution   = errors.New("failed to resolve day row after insertion")
)

// DefaultRecentFoodsLimit bounds the "recently logged" quick-add list.
const DefaultRecentFoodsLimit = 35

type (
	// FoodPayload carries the nutrient profile of the food being logged.
	// ExternalID is set when the food came from the remote catalog and is
	// used to reuse an existing local row instead of inserting a duplicate.
	FoodPayload struct {
		ID           *string  `json:"id" validate:"omitempty,uuid"`
		ExternalID   *string  `json:"external_id"`
		UPC          *string  `json:"upc"`
		Name         string   `json:"name" validate:"required"`
		Brand        *string  `json:"brand"`
		Category     *string  `json:"category"`
		ServingSizeG *float64 `json:"serving_size_g"`
		ServingText  *string  `json:"serving_text"`
		CaloriesPerG float64  `json:"calories_per_g" validate:"gte=0"`
		ProteinPerG  float64  `json:"protein_per_g" validate:"gte=0"`
		FatPerG      float64  `json:"fat_per_g" validate:"gte=0"`
		CarbsPerG    float64  `json:"carbs_per_g" validate:"gte=0"`
	}

	// UpsertEntryRequest logs a food against a date, or edits an existing
	// entry when EntryID is set. Quantity is expressed in the user's display
	// unit and normalized to grams before it reaches storage.
	UpsertEntryRequest struct {
		Date     string      `json:"date" validate:"required,datetime=2006-01-02"`
		EntryID  *string     `json:"entry_id" validate:"omitempty,uuid"`
		MealTime string      `json:"meal_time" validate:"required,oneof=breakfast lunch dinner snack"`
		Quantity float64     `json:"quantity" validate:"required,gt=0"`
		Unit     string      `json:"unit" validate:"required,oneof=serving g oz lb"`
		Food     FoodPayload `json:"food" validate:"required"`
	}

	UpsertEntryResponse struct {
		EntryID   string  `json:"entry_id"`
		FoodID    string  `json:"food_id"`
		Date      string  `json:"date"`
		MealTime  string  `json:"meal_time"`
		QuantityG float64 `json:"quantity_g"`
	}

	// EntryResponse is one diary row joined with its food's attributes,
	// decorated with the computed nutrient totals for its quantity.
	EntryResponse struct {
		ID           string           `json:"id"`
		FoodID       string           `json:"food_id"`
		MealTime     string           `json:"meal_time"`
		QuantityG    float64          `json:"quantity_g"`
		Name         string           `json:"name"`
		Brand        *string          `json:"brand,omitempty"`
		Category     *string          `json:"category,omitempty"`
		ServingSizeG *float64         `json:"serving_size_g,omitempty"`
		ServingText  *string          `json:"serving_text,omitempty"`
		CaloriesPerG float64          `json:"calories_per_g"`
		ProteinPerG  float64          `json:"protein_per_g"`
		FatPerG      float64          `json:"fat_per_g"`
		CarbsPerG    float64          `json:"carbs_per_g"`
		Totals       nutrition.Totals `json:"totals"`
	}

	DayLogResponse struct {
		Date    string           `json:"date"`
		Entries []EntryResponse  `json:"entries"`
		Totals  nutrition.Totals `json:"totals"`
	}

	RecentFoodResponse struct {
		ID           string   `json:"id"`
		ExternalID   *string  `json:"external_id,omitempty"`
		Name         string   `json:"name"`
		Brand        *string  `json:"brand,omitempty"`
		Category     *string  `json:"category,omitempty"`
		ServingSizeG *float64 `json:"serving_size_g,omitempty"`
		ServingText  *string  `json:"serving_text,omitempty"`
		CaloriesPerG float64  `json:"calories_per_g"`
		ProteinPerG  float64  `json:"protein_per_g"`
		FatPerG      float64  `json:"fat_per_g"`
		CarbsPerG    float64  `json:"carbs_per_g"`
	}
)
