package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"temple-backend/models"
	"temple-backend/services"
	"temple-backend/store"
)

// CreateBooking runs the full submission pipeline. The record is persisted
// before the email leg, so a delivery failure still returns the booking.
func CreateBooking(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	actor := actorFromClaims(token.Claims.(jwt.MapClaims))

	var req services.BookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	result, err := bookingSvc.Submit(c.Context(), actor, &req)
	if err != nil {
		if errors.Is(err, services.ErrNotAuthorized) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
		}
		var verr validator.ValidationErrors
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": verr.Error()})
		}
		if result != nil && result.State == services.SubmissionFailed {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to save booking; no booking was recorded",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	resp := fiber.Map{
		"state":   result.State,
		"booking": result.Booking,
	}
	if result.Notice != "" {
		resp["notice"] = result.Notice
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetBookings lists every booking, optionally filtered by status or kind.
func GetBookings(c *fiber.Ctx) error {
	list, err := bookings.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load bookings"})
	}

	status := c.Query("status")
	kind := c.Query("kind")
	if status == "" && kind == "" {
		return c.JSON(list)
	}

	filtered := make([]models.Booking, 0, len(list))
	for _, b := range list {
		if status != "" && string(b.Status) != status {
			continue
		}
		if kind != "" && string(b.Kind) != kind {
			continue
		}
		filtered = append(filtered, b)
	}
	return c.JSON(filtered)
}

// GetBooking returns a single booking by id.
func GetBooking(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
	}
	b, err := bookings.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}
	return c.JSON(b)
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateBookingStatus moves a booking through its lifecycle. Completing a
// booking triggers the thank-you email in the background.
func UpdateBookingStatus(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	actor := actorFromClaims(token.Claims.(jwt.MapClaims))

	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
	}

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	b, err := bookingSvc.UpdateStatus(actor, id, models.BookingStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotAuthorized):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, store.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
		default:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
	}
	return c.JSON(b)
}

// GetBookingReceipt streams the booking receipt PDF.
func GetBookingReceipt(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
	}
	b, err := bookings.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}

	pdf, filename, err := services.BuildReceiptPDF(b)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate receipt"})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdf)
}
