package handlers

import (
	"fmt"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"temple-backend/models"
	"temple-backend/notifications"
	"temple-backend/services"
)

// The email endpoints mirror a function-per-route deployment: strict POST,
// self-contained request payloads and flat JSON responses.

type SendEmailRequest struct {
	Booking models.Booking `json:"booking"`
	QRCode  string         `json:"qrCode"`
}

type SendCompletionRequest struct {
	Booking     models.Booking `json:"booking"`
	CheckInTime string         `json:"checkInTime"`
}

// SendBookingEmail re-sends the confirmation email for an existing booking.
func SendBookingEmail(c *fiber.Ctx) error {
	var req SendEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Booking.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Booking email is required"})
	}

	payload := req.QRCode
	if payload == "" {
		payload = req.Booking.QRCode
	}
	if payload == "" {
		payload = strconv.FormatInt(req.Booking.ID, 10)
	}
	dataURL, err := services.QRDataURL(payload)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to send email",
			"details": err.Error(),
		})
	}

	html, err := notifications.RenderConfirmation(&req.Booking, notifications.QRRef{DataURL: dataURL})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to send email",
			"details": err.Error(),
		})
	}

	subject := fmt.Sprintf("Seva Booking Confirmation - %s (ID: %d)", req.Booking.SevaName, req.Booking.ID)
	messageID, err := mailer.SendHTML(req.Booking.Email, subject, html)
	if err != nil {
		log.Printf("🔥 Confirmation email failed for booking %d: %v", req.Booking.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to send email",
			"details": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"message":   "Email sent successfully",
		"messageId": messageID,
	})
}

// SendCompletionEmail sends the post-visit thank-you email.
func SendCompletionEmail(c *fiber.Ctx) error {
	var req SendCompletionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Booking.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Booking email is required"})
	}

	html, err := notifications.RenderCompletion(&req.Booking, req.CheckInTime)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to send email",
			"details": err.Error(),
		})
	}

	messageID, err := mailer.SendHTML(req.Booking.Email, "Thank You for Your Visit - Vidyaranyapura Mutt", html)
	if err != nil {
		log.Printf("🔥 Thank-you email failed for booking %d: %v", req.Booking.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to send email",
			"details": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"message":   "Email sent successfully",
		"messageId": messageID,
	})
}

// MethodNotAllowed rejects non-POST access to the email endpoints.
func MethodNotAllowed(c *fiber.Ctx) error {
	return c.Status(fiber.StatusMethodNotAllowed).JSON(fiber.Map{"error": "Method not allowed"})
}
