package routes

import (
	"github.com/gofiber/fiber/v2"

	"temple-backend/handlers"
	"temple-backend/middleware"
)

func AuthRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Post("/login", handlers.LoginUser)
	auth.Get("/me", middleware.Protected(), handlers.Me)
}
