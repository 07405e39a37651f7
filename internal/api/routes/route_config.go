package routes

import (
	"macrolog/internal/api/handlers"
	"macrolog/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App            *fiber.App
	DiaryHandler   handlers.DiaryHandler
	GoalHandler    handlers.GoalHandler
	CatalogHandler handlers.CatalogHandler
	Middleware     middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Diary()
	c.Goals()
	c.Catalog()
	c.GuestRoute()
}

func (c *Config) Diary() {
	diary := c.App.Group("/api/v1/diary")
	{
		diary.Post("/entries", c.DiaryHandler.UpsertEntry)
		diary.Get("/entries", c.DiaryHandler.GetDayLog)
		diary.Delete("/entries/:id", c.DiaryHandler.DeleteEntry)
		diary.Get("/recent", c.DiaryHandler.GetRecentFoods)
	}
}

func (c *Config) Goals() {
	goals := c.App.Group("/api/v1/goals")
	{
		goals.Get("/today", c.GoalHandler.GetGoalsForToday)
		goals.Put("/today", c.GoalHandler.SaveGoals)
	}
}

func (c *Config) Catalog() {
	c.App.Get("/api/v1/catalog/search", c.CatalogHandler.Search)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
