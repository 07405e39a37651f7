// Package nutrition holds the unit conversion and nutrient math shared by the
// diary service and any UI surface. Everything here is pure; nothing touches
// storage.
package nutrition

const (
	UnitServing = "serving"
	UnitGram    = "g"
	UnitOunce   = "oz"
	UnitPound   = "lb"

	GramsPerOunce = 28.3495
	GramsPerPound = 453.592
)

// Density is a food's per-gram nutrient profile.
type Density struct {
	Calories float64
	Protein  float64
	Fat      float64
	Carbs    float64
}

// Portion is a logged amount of a food, quantity already in grams.
type Portion struct {
	Density   Density
	QuantityG float64
}

// Totals is an aggregate over one or more portions.
type Totals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
}

// ValidUnit reports whether unit is one of the display units the diary accepts.
func ValidUnit(unit string) bool {
	switch unit {
	case UnitServing, UnitGram, UnitOunce, UnitPound:
		return true
	}
	return false
}

// ConvertToGrams maps a quantity in a display unit to grams. The serving
// factor comes from the food itself; when the serving size is unknown or
// non-positive it falls back to 1, so "1 serving" degrades to "1 gram" rather
// than zeroing the entry.
func ConvertToGrams(quantity float64, unit string, servingSizeG float64) float64 {
	switch unit {
	case UnitOunce:
		return quantity * GramsPerOunce
	case UnitPound:
		return quantity * GramsPerPound
	case UnitServing:
		if servingSizeG <= 0 {
			servingSizeG = 1
		}
		return quantity * servingSizeG
	default:
		return quantity
	}
}

// NutrientTotal is the displayed total for one nutrient: per-gram density
// times quantity in grams. Used identically for calories, protein, fat and
// carbs.
func NutrientTotal(perGram, quantityG float64) float64 {
	return perGram * quantityG
}

// TotalsFor computes all four nutrient totals for a single portion.
func TotalsFor(p Portion) Totals {
	return Totals{
		Calories: NutrientTotal(p.Density.Calories, p.QuantityG),
		Protein:  NutrientTotal(p.Density.Protein, p.QuantityG),
		Fat:      NutrientTotal(p.Density.Fat, p.QuantityG),
		Carbs:    NutrientTotal(p.Density.Carbs, p.QuantityG),
	}
}

// Aggregate folds NutrientTotal over every portion of a day.
func Aggregate(portions []Portion) Totals {
	var t Totals
	for _, p := range portions {
		t.Calories += NutrientTotal(p.Density.Calories, p.QuantityG)
		t.Protein += NutrientTotal(p.Density.Protein, p.QuantityG)
		t.Fat += NutrientTotal(p.Density.Fat, p.QuantityG)
		t.Carbs += NutrientTotal(p.Density.Carbs, p.QuantityG)
	}
	return t
}

// QuantityForCalories back-solves the gram quantity implied by an edited
// calorie total. When the food has no calorie density there is nothing to
// solve against, so the current quantity is kept.
func QuantityForCalories(calories, caloriesPerG, currentQuantityG float64) float64 {
	if caloriesPerG == 0 {
		return currentQuantityG
	}
	return calories / caloriesPerG
}
