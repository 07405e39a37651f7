package diary

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"macrolog/entities"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite database: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.Day{},
		&entities.Food{},
		&entities.Entry{},
		&entities.Goal{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func testFood(name string, externalID *string) *entities.Food {
	return &entities.Food{
		ExternalID:   externalID,
		Name:         name,
		CaloriesPerG: 1.2,
		ProteinPerG:  0.1,
		FatPerG:      0.05,
		CarbsPerG:    0.2,
	}
}

func strPtr(s string) *string { return &s }

func TestUpsertEntryRoundTrip(t *testing.T) {
	t.Parallel()

	repo := NewDiaryRepository(newTestDB(t))
	ctx := context.Background()

	food := testFood("Oatmeal", nil)
	entry := &entities.Entry{MealTime: entities.MealLunch, QuantityG: 100}
	if err := repo.UpsertEntry(ctx, "2026-08-28", food, entry); err != nil {
		t.Fatalf("upsert entry: %v", err)
	}
	if entry.ID == uuid.Nil {
		t.Fatal("expected a generated entry id")
	}

	rows, err := repo.GetEntriesForDate(ctx, "2026-08-28")
	if err != nil {
		t.Fatalf("get entries: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(rows))
	}
	row := rows[0]
	if row.ID != entry.ID || row.MealTime != entities.MealLunch || row.QuantityG != 100 {
		t.Fatalf("unexpected row: %+v", row)
	}
	if row.Name != "Oatmeal" || row.CaloriesPerG != 1.2 || row.ProteinPerG != 0.1 {
		t.Fatalf("food attributes not joined: %+v", row)
	}
}

func TestUpsertEntryUpdatesInPlace(t *testing.T) {
	t.Parallel()

	repo := NewDiaryRepository(newTestDB(t))
	ctx := context.Background()

	food := testFood("Rice", nil)
	entry := &entities.Entry{MealTime: entities.MealDinner, QuantityG: 150}
	if err := repo.UpsertEntry(ctx, "2026-08-28", food, entry); err != nil {
		t.Fatalf("insert: %v", err)
	}

	// Same entry id, new quantity and meal: must replace, not duplicate.
	edited := &entities.Entry{ID: entry.ID, MealTime: entities.MealSnack, QuantityG: 80}
	if err := repo.UpsertEntry(ctx, "2026-08-28", &entities.Food{ID: food.ID}, edited); err != nil {
		t.Fatalf("update: %v", err)
	}

	rows, err := repo.GetEntriesForDate(ctx, "2026-08-28")
	if err != nil {
		t.Fatalf("get entries: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 entry after edit, got %d", len(rows))
	}
	if rows[0].QuantityG != 80 || rows[0].MealTime != entities.MealSnack {
		t.Fatalf("edit not applied: %+v", rows[0])
	}
}

func TestUpsertEntryUnknownIDFails(t *testing.T) {
	t.Parallel()

	repo := NewDiaryRepository(newTestDB(t))

	entry := &entities.Entry{ID: uuid.New(), MealTime: entities.MealLunch, QuantityG: 10}
	err := repo.UpsertEntry(context.Background(), "2026-08-28", testFood("Ghost", nil), entry)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestFoodDeduplicationByExternalID(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewDiaryRepository(db)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		food := testFood("Banana", strPtr("cat-42"))
		entry := &entities.Entry{MealTime: entities.MealSnack, QuantityG: 118}
		if err := repo.UpsertEntry(ctx, "2026-08-28", food, entry); err != nil {
			t.Fatalf("upsert %d: %v", i, err)
		}
	}

	var count int64
	if err := db.Model(&entities.Food{}).Where("external_id = ?", "cat-42").Count(&count).Error; err != nil {
		t.Fatalf("count foods: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 food row for external id, got %d", count)
	}

	rows, err := repo.GetEntriesForDate(ctx, "2026-08-28")
	if err != nil {
		t.Fatalf("get entries: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(rows))
	}
	if rows[0].FoodID != rows[1].FoodID {
		t.Fatal("entries for the same catalog food reference different food rows")
	}
}

func TestDayRowUniquePerDate(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewDiaryRepository(db)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		entry := &entities.Entry{MealTime: entities.MealBreakfast, QuantityG: 50}
		if err := repo.UpsertEntry(ctx, "2026-08-28", testFood(fmt.Sprintf("Food %d", i), nil), entry); err != nil {
			t.Fatalf("upsert %d: %v", i, err)
		}
	}

	var count int64
	if err := db.Model(&entities.Day{}).Where("date = ?", "2026-08-28").Count(&count).Error; err != nil {
		t.Fatalf("count days: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 day row, got %d", count)
	}
}

func TestEntriesOrderedByMealThenInsertion(t *testing.T) {
	t.Parallel()

	repo := NewDiaryRepository(newTestDB(t))
	ctx := context.Background()

	logged := []struct {
		name string
		meal string
	}{
		{"Almonds", entities.MealSnack},
		{"Steak", entities.MealDinner},
		{"Eggs", entities.MealBreakfast},
		{"Sandwich", entities.MealLunch},
		{"Toast", entities.MealBreakfast},
	}
	for _, l := range logged {
		entry := &entities.Entry{MealTime: l.meal, QuantityG: 100}
		if err := repo.UpsertEntry(ctx, "2026-08-28", testFood(l.name, nil), entry); err != nil {
			t.Fatalf("upsert %s: %v", l.name, err)
		}
	}

	rows, err := repo.GetEntriesForDate(ctx, "2026-08-28")
	if err != nil {
		t.Fatalf("get entries: %v", err)
	}

	// Breakfast entries come first in insertion order, then lunch, dinner, snack.
	want := []string{"Eggs", "Toast", "Sandwich", "Steak", "Almonds"}
	if len(rows) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(rows))
	}
	for i, name := range want {
		if rows[i].Name != name {
			t.Fatalf("position %d: got %q, want %q (rows: %+v)", i, rows[i].Name, name, rows)
		}
	}
}

func TestGetEntriesForDateEmpty(t *testing.T) {
	t.Parallel()

	repo := NewDiaryRepository(newTestDB(t))

	rows, err := repo.GetEntriesForDate(context.Background(), "1999-01-01")
	if err != nil {
		t.Fatalf("expected no error for empty date, got %v", err)
	}
	if rows == nil || len(rows) != 0 {
		t.Fatalf("expected empty slice, got %v", rows)
	}
}

func TestDeleteEntryKeepsFood(t *testing.T) {
	t.Parallel()

	repo := NewDiaryRepository(newTestDB(t))
	ctx := context.Background()

	food := testFood("Yogurt", strPtr("cat-7"))
	entry := &entities.Entry{MealTime: entities.MealSnack, QuantityG: 170}
	if err := repo.UpsertEntry(ctx, "2026-08-28", food, entry); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	if err := repo.DeleteEntry(ctx, entry.ID.String()); err != nil {
		t.Fatalf("delete: %v", err)
	}

	rows, err := repo.GetEntriesForDate(ctx, "2026-08-28")
	if err != nil {
		t.Fatalf("get entries: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no entries after delete, got %d", len(rows))
	}

	// The food is a shared catalog row, not owned by the entry.
	foods, err := repo.GetRecentFoods(ctx, 35)
	if err != nil {
		t.Fatalf("recent foods: %v", err)
	}
	if len(foods) != 1 || foods[0].Name != "Yogurt" {
		t.Fatalf("expected food to survive entry deletion, got %+v", foods)
	}
}

func TestDeleteEntryUnknownID(t *testing.T) {
	t.Parallel()

	repo := NewDiaryRepository(newTestDB(t))

	err := repo.DeleteEntry(context.Background(), uuid.NewString())
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestRecentFoodsDistinctAndOrdered(t *testing.T) {
	t.Parallel()

	repo := NewDiaryRepository(newTestDB(t))
	ctx := context.Background()

	appleID := strPtr("cat-apple")
	breadID := strPtr("cat-bread")

	log := func(name string, externalID *string) {
		entry := &entities.Entry{MealTime: entities.MealSnack, QuantityG: 100}
		if err := repo.UpsertEntry(ctx, "2026-08-28", testFood(name, externalID), entry); err != nil {
			t.Fatalf("upsert %s: %v", name, err)
		}
	}

	log("Apple", appleID)
	log("Bread", breadID)
	log("Apple", appleID) // re-logging moves Apple back to the front

	foods, err := repo.GetRecentFoods(ctx, 35)
	if err != nil {
		t.Fatalf("recent foods: %v", err)
	}
	if len(foods) != 2 {
		t.Fatalf("expected 2 distinct foods, got %d", len(foods))
	}
	if foods[0].Name != "Apple" || foods[1].Name != "Bread" {
		t.Fatalf("unexpected order: %q, %q", foods[0].Name, foods[1].Name)
	}

	limited, err := repo.GetRecentFoods(ctx, 1)
	if err != nil {
		t.Fatalf("recent foods with limit: %v", err)
	}
	if len(limited) != 1 || limited[0].Name != "Apple" {
		t.Fatalf("limit not applied: %+v", limited)
	}
}
