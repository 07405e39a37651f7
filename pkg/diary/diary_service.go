package diary

import (
	"context"
	"errors"
	"time"

	"macrolog/domain"
	"macrolog/entities"
	"macrolog/pkg/nutrition"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	DiaryService interface {
		UpsertEntry(ctx context.Context, req domain.UpsertEntryRequest) (domain.UpsertEntryResponse, error)
		GetDayLog(ctx context.Context, date string) (domain.DayLogResponse, error)
		GetRecentFoods(ctx context.Context, limit int) ([]domain.RecentFoodResponse, error)
		DeleteEntry(ctx context.Context, id string) error
	}

	diaryService struct {
		diaryRepository DiaryRepository
	}
)

func NewDiaryService(diaryRepository DiaryRepository) DiaryService {
	return &diaryService{diaryRepository: diaryRepository}
}

func (s *diaryService) UpsertEntry(ctx context.Context, req domain.UpsertEntryRequest) (domain.UpsertEntryResponse, error) {
	if _, err := time.Parse(domain.DateLayout, req.Date); err != nil {
		return domain.UpsertEntryResponse{}, domain.ErrParseDate
	}
	if !validMealTime(req.MealTime) {
		return domain.UpsertEntryResponse{}, domain.ErrInvalidMealTime
	}
	if !nutrition.ValidUnit(req.Unit) {
		return domain.UpsertEntryResponse{}, domain.ErrInvalidUnit
	}

	servingSize := 0.0
	if req.Food.ServingSizeG != nil {
		servingSize = *req.Food.ServingSizeG
	}
	quantityG := nutrition.ConvertToGrams(req.Quantity, req.Unit, servingSize)
	if quantityG <= 0 {
		return domain.UpsertEntryResponse{}, domain.ErrInvalidQuantity
	}

	food := entities.Food{
		ExternalID:   req.Food.ExternalID,
		UPC:          req.Food.UPC,
		Name:         req.Food.Name,
		Brand:        req.Food.Brand,
		Category:     req.Food.Category,
		ServingSizeG: req.Food.ServingSizeG,
		ServingText:  req.Food.ServingText,
		CaloriesPerG: req.Food.CaloriesPerG,
		ProteinPerG:  req.Food.ProteinPerG,
		FatPerG:      req.Food.FatPerG,
		CarbsPerG:    req.Food.CarbsPerG,
	}
	if req.Food.ID != nil {
		foodID, err := uuid.Parse(*req.Food.ID)
		if err != nil {
			return domain.UpsertEntryResponse{}, domain.ErrParseUUID
		}
		food.ID = foodID
	}

	entry := entities.Entry{
		MealTime:  req.MealTime,
		QuantityG: quantityG,
	}
	if req.EntryID != nil {
		entryID, err := uuid.Parse(*req.EntryID)
		if err != nil {
			return domain.UpsertEntryResponse{}, domain.ErrParseUUID
		}
		entry.ID = entryID
	}

	if err := s.diaryRepository.UpsertEntry(ctx, req.Date, &food, &entry); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UpsertEntryResponse{}, domain.ErrEntryNotFound
		}
		return domain.UpsertEntryResponse{}, err
	}

	return domain.UpsertEntryResponse{
		EntryID:   entry.ID.String(),
		FoodID:    entry.FoodID.String(),
		Date:      req.Date,
		MealTime:  entry.MealTime,
		QuantityG: entry.QuantityG,
	}, nil
}

func (s *diaryService) GetDayLog(ctx context.Context, date string) (domain.DayLogResponse, error) {
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return domain.DayLogResponse{}, domain.ErrParseDate
	}

	rows, err := s.diaryRepository.GetEntriesForDate(ctx, date)
	if err != nil {
		return domain.DayLogResponse{}, err
	}

	entries := make([]domain.EntryResponse, 0, len(rows))
	portions := make([]nutrition.Portion, 0, len(rows))
	for _, row := range rows {
		portion := nutrition.Portion{
			Density: nutrition.Density{
				Calories: row.CaloriesPerG,
				Protein:  row.ProteinPerG,
				Fat:      row.FatPerG,
				Carbs:    row.CarbsPerG,
			},
			QuantityG: row.QuantityG,
		}
		portions = append(portions, portion)
		entries = append(entries, domain.EntryResponse{
			ID:           row.ID.String(),
			FoodID:       row.FoodID.String(),
			MealTime:     row.MealTime,
			QuantityG:    row.QuantityG,
			Name:         row.Name,
			Brand:        row.Brand,
			Category:     row.Category,
			ServingSizeG: row.ServingSizeG,
			ServingText:  row.ServingText,
			CaloriesPerG: row.CaloriesPerG,
			ProteinPerG:  row.ProteinPerG,
			FatPerG:      row.FatPerG,
			CarbsPerG:    row.CarbsPerG,
			Totals:       nutrition.TotalsFor(portion),
		})
	}

	return domain.DayLogResponse{
		Date:    date,
		Entries: entries,
		Totals:  nutrition.Aggregate(portions),
	}, nil
}

func (s *diaryService) GetRecentFoods(ctx context.Context, limit int) ([]domain.RecentFoodResponse, error) {
	if limit <= 0 || limit > domain.DefaultRecentFoodsLimit {
		limit = domain.DefaultRecentFoodsLimit
	}

	foods, err := s.diaryRepository.GetRecentFoods(ctx, limit)
	if err != nil {
		return nil, err
	}

	response := make([]domain.RecentFoodResponse, 0, len(foods))
	for _, food := range foods {
		response = append(response, domain.RecentFoodResponse{
			ID:           food.ID.String(),
			ExternalID:   food.ExternalID,
			Name:         food.Name,
			Brand:        food.Brand,
			Category:     food.Category,
			ServingSizeG: food.ServingSizeG,
			ServingText:  food.ServingText,
			CaloriesPerG: food.CaloriesPerG,
			ProteinPerG:  food.ProteinPerG,
			FatPerG:      food.FatPerG,
			CarbsPerG:    food.CarbsPerG,
		})
	}
	return response, nil
}

func (s *diaryService) DeleteEntry(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrParseUUID
	}

	if err := s.diaryRepository.DeleteEntry(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrEntryNotFound
		}
		return err
	}
	return nil
}

func validMealTime(mealTime string) bool {
	switch mealTime {
	case entities.MealBreakfast, entities.MealLunch, entities.MealDinner, entities.MealSnack:
		return true
	}
	return false
}
