package routes

import (
	"github.com/gofiber/fiber/v2"

	"temple-backend/handlers"
	"temple-backend/middleware"
)

func ScanRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	scan := api.Group("/scans", middleware.Protected(), middleware.StaffRequired())
	scan.Post("/verify", handlers.VerifyScan)
	scan.Get("/history", handlers.GetScanHistory)
}
