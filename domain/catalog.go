package domain

import "errors"

var (
	MessageSuccessSearchCatalog = "catalog search completed successfully"
	MessageFailedSearchCatalog  = "failed to search food catalog"

	ErrEmptyQuery         = errors.New("search query must not be empty")
	ErrCatalogUnavailable = errors.New("food catalog is unavailable")
)

// CatalogFoodResponse is a remote catalog record mapped into the local Food
// shape. The remote id lands in ExternalID so a later upsert can deduplicate
// against foods already logged from the catalog.
type CatalogFoodResponse struct {
	ExternalID   string   `json:"external_id"`
	UPC          *string  `json:"upc,omitempty"`
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
