package routes

import (
	"github.com/gofiber/fiber/v2"

	"temple-backend/handlers"
)

// Catalog routes are public; the seva list is the website's landing content.
func CatalogRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/sevas", handlers.GetSevas)
	api.Get("/sevas/:id", handlers.GetSeva)
	api.Get("/halls", handlers.GetHalls)
	api.Get("/halls/:id", handlers.GetHall)
}
