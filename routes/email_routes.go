package routes

import (
	"github.com/gofiber/fiber/v2"

	"temple-backend/handlers"
	"temple-backend/middleware"
)

// Email routes accept POST only; any other method gets an explicit 405 to
// match the function-style contract the dashboard expects.
func EmailRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	email := api.Group("/email", middleware.Protected(), middleware.StaffRequired())
	email.Post("/send-booking", handlers.SendBookingEmail)
	email.Post("/send-completion", handlers.SendCompletionEmail)
	email.All("/send-booking", handlers.MethodNotAllowed)
	email.All("/send-completion", handlers.MethodNotAllowed)
}
