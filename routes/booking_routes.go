package routes

import (
	"github.com/gofiber/fiber/v2"

	"temple-backend/handlers"
	"temple-backend/middleware"
)

func BookingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	booking := api.Group("/bookings", middleware.Protected(), middleware.StaffRequired())
	booking.Get("", handlers.GetBookings)
	booking.Post("", middleware.AdminRequired(), handlers.CreateBooking)
	booking.Get("/:id", handlers.GetBooking)
	booking.Get("/:id/receipt", handlers.GetBookingReceipt)
	booking.Patch("/:id/status", handlers.UpdateBookingStatus)
}
