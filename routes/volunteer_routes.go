package routes

import (
	"github.com/gofiber/fiber/v2"

	"temple-backend/handlers"
	"temple-backend/middleware"
)

func VolunteerRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	volunteer := api.Group("/volunteers", middleware.Protected(), middleware.AdminRequired())
	volunteer.Get("", handlers.GetVolunteers)
	volunteer.Post("", handlers.AddVolunteer)
	volunteer.Delete("/:id", handlers.RemoveVolunteer)
}
