package diary

import (
	"context"
	"errors"

	"macrolog/domain"
	"macrolog/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	DiaryRepository interface {
		UpsertEntry(ctx context.Context, date string, food *entities.Food, entry *entities.Entry) error
		GetEntriesForDate(ctx context.Context, date string) ([]EntryFoodRow, error)
		GetRecentFoods(ctx context.Context, limit int) ([]*entities.Food, error)
		DeleteEntry(ctx context.Context, id string) error
	}

	diaryRepository struct {
		db *gorm.DB
	}

	// EntryFoodRow is one entry joined with its food's current attributes,
	// flattened for scanning.
	EntryFoodRow struct {
		ID           uuid.UUID
		FoodID       uuid.UUID
		MealTime     string
		QuantityG    float64
		Name         string
		Brand        *string
		Category     *string
		ServingSizeG *float64
		ServingText  *string
		CaloriesPerG float64
		ProteinPerG  float64
		FatPerG      float64
		CarbsPerG    float64
	}
)

func NewDiaryRepository(db *gorm.DB) DiaryRepository {
	return &diaryRepository{db: db}
}

// mealOrder fixes the display order breakfast < lunch < dinner < snack;
// entries within the same meal keep insertion order.
const mealOrder = "CASE entries.meal_time " +
	"WHEN 'breakfast' THEN 1 " +
	"WHEN 'lunch' THEN 2 " +
	"WHEN 'dinner' THEN 3 " +
	"WHEN 'snack' THEN 4 " +
	"ELSE 5 END, entries.created_at ASC"

// UpsertEntry persists one logged action as a single transaction: resolve or
// create the day row, resolve or create the food row, then insert the entry
// or update it in place when entry.ID is already set. A partial write is
// never visible to a concurrent reader.
func (r *diaryRepository) UpsertEntry(ctx context.Context, date string, food *entities.Food, entry *entities.Entry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var day entities.Day
		err := tx.Where("date = ?", date).First(&day).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			day = entities.Day{ID: uuid.New(), Date: date}
			err = tx.Create(&day).Error
		}
		if err != nil {
			return err
		}
		if day.ID == uuid.Nil {
			return domain.ErrDayResolution
		}

		if err := resolveFood(tx, food); err != nil {
			return err
		}

		entry.DayID = day.ID
		entry.FoodID = food.ID

		if entry.ID == uuid.Nil {
			entry.ID = uuid.New()
			return tx.Create(entry).Error
		}

		res := tx.Model(&entities.Entry{}).
			Where("id = ?", entry.ID).
			Updates(map[string]interface{}{
				"day_id":     entry.DayID,
				"food_id":    entry.FoodID,
				"meal_time":  entry.MealTime,
				"quantity_g": entry.QuantityG,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// resolveFood fills food.ID with the local row to reference: an explicit
// local id wins, then a catalog match on external_id, otherwise a fresh row
// is inserted. Two logs of the same catalog food never produce two rows.
func resolveFood(tx *gorm.DB, food *entities.Food) error {
	if food.ID != uuid.Nil {
		var existing entities.Food
		return tx.Where("id = ?", food.ID).First(&existing).Error
	}

	if food.ExternalID != nil {
		var existing entities.Food
		err := tx.Where("external_id = ?", *food.ExternalID).First(&existing).Error
		if err == nil {
			food.ID = existing.ID
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		food.ID = uuid.New()
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "external_id"}},
			DoNothing: true,
		}).Create(food).Error
	}

	food.ID = uuid.New()
	return tx.Create(food).Error
}

func (r *diaryRepository) GetEntriesForDate(ctx context.Context, date string) ([]EntryFoodRow, error) {
	rows := make([]EntryFoodRow, 0)
	err := r.db.WithContext(ctx).
		Table("entries").
		Select("entries.id, entries.food_id, entries.meal_time, entries.quantity_g, " +
			"foods.name, foods.brand, foods.category, foods.serving_size_g, foods.serving_text, " +
			"foods.calories_per_g, foods.protein_per_g, foods.fat_per_g, foods.carbs_per_g").
		Joins("JOIN days ON days.id = entries.day_id").
		Joins("JOIN foods ON foods.id = entries.food_id").
		Where("days.date = ?", date).
		Order(mealOrder).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetRecentFoods lists distinct foods by the time of the entry that last
// referenced them. The join is outer so a food whose entries were all deleted
// stays in the catalog list, sorted behind the still-logged ones.
func (r *diaryRepository) GetRecentFoods(ctx context.Context, limit int) ([]*entities.Food, error) {
	var foods []*entities.Food
	err := r.db.WithContext(ctx).
		Model(&entities.Food{}).
		Select("foods.*, MAX(entries.created_at) AS last_logged").
		Joins("LEFT JOIN entries ON entries.food_id = foods.id").
		Group("foods.id").
		Order("last_logged DESC NULLS LAST").
		Limit(limit).
		Find(&foods).Error
	if err != nil {
		return nil, err
	}
	return foods, nil
}

func (r *diaryRepository) DeleteEntry(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Entry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
