package config

import (
	"os"
	"time"

	"macrolog/internal/api/handlers"
	"macrolog/internal/api/routes"
	"macrolog/internal/middleware"
	"macrolog/internal/utils"
	"macrolog/pkg/catalog"
	"macrolog/pkg/diary"
	"macrolog/pkg/goal"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// Repository
	diaryRepository := diary.NewDiaryRepository(db)
	goalRepository := goal.NewGoalRepository(db)

	// Service
	diaryService := diary.NewDiaryService(diaryRepository)
	goalService := goal.NewGoalService(goalRepository)
	catalogService := catalog.NewCatalogService(utils.GetConfig("FOOD_API_URL"))

	// Handler
	diaryHandler := handlers.NewDiaryHandler(diaryService, validator)
	goalHandler := handlers.NewGoalHandler(goalService, validator)
	catalogHandler := handlers.NewCatalogHandler(catalogService)

	// routes
	routesConfig := routes.Config{
		App:            app,
		DiaryHandler:   diaryHandler,
		GoalHandler:    goalHandler,
		CatalogHandler: catalogHandler,
		Middleware:     middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
