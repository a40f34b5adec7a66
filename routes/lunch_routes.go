package routes

import (
	"github.com/gofiber/fiber/v2"

	"temple-backend/handlers"
	"temple-backend/middleware"
)

func LunchRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	lunch := api.Group("/lunch", middleware.Protected(), middleware.StaffRequired())
	lunch.Get("", handlers.GetLunchAttendance)
	lunch.Post("/:id/check-in", handlers.LunchCheckIn)
}
