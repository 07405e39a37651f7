package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"macrolog/domain"
)

type (
	// CatalogService searches the remote food database and maps its records
	// into the local food shape. A failed search never touches local state;
	// callers treat it as "no results" and may retry freely.
	CatalogService interface {
		Search(ctx context.Context, query string) ([]domain.CatalogFoodResponse, error)
	}

	catalogService struct {
		baseURL    string
		httpClient *http.Client
	}

	// remoteFood is the wire shape returned by the catalog. Nutrient fields
	// are already per-gram densities; the remote id becomes external_id.
	remoteFood struct {
		ID           string   `json:"id"`
		UPC          *string  `json:"upc"`
		Name         string   `json:"name"`
		Brand        *string  `json:"brand"`
		Category     *string  `json:"category"`
		ServingSizeG *float64 `json:"serving_size_g"`
		ServingText  *string  `json:"serving_text"`
		Calories     float64  `json:"calories"`
		Protein      float64  `json:"protein"`
		Fat          float64  `json:"fat"`
		Carbs        float64  `json:"carbs"`
	}
)

func NewCatalogService(baseURL string) CatalogService {
	return &catalogService{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *catalogService) Search(ctx context.Context, query string) ([]domain.CatalogFoodResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.ErrEmptyQuery
	}

	searchURL := fmt.Sprintf("%s?q=%s", s.baseURL, url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, domain.ErrCatalogUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.ErrCatalogUnavailable
	}

	var records []remoteFood
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, domain.ErrCatalogUnavailable
	}

	results := make([]domain.CatalogFoodResponse, 0, len(records))
	for _, record := range records {
		results = append(results, domain.CatalogFoodResponse{
			ExternalID:   record.ID,
			UPC:          record.UPC,
			Name:         record.Name,
			Brand:        record.Brand,
			Category:     record.Category,
			ServingSizeG: record.ServingSizeG,
			ServingText:  record.ServingText,
			CaloriesPerG: record.Calories,
			ProteinPerG:  record.Protein,
			FatPerG:      record.Fat,
			CarbsPerG:    record.Carbs,
		})
	}
	return results, nil
}
