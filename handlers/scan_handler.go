package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type VerifyScanRequest struct {
	QRCode string `json:"qrCode" validate:"required"`
}

// VerifyScan resolves a scanned QR payload to its booking.
func VerifyScan(c *fiber.Ctx) error {
	var req VerifyScanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	b, rec, err := scanSvc.Verify(req.QRCode)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"valid": false,
			"scan":  rec,
			"error": "No booking matches this QR code",
		})
	}
	return c.JSON(fiber.Map{
		"valid":   true,
		"scan":    rec,
		"booking": b,
	})
}

// GetScanHistory returns the recent scan trail, newest first.
func GetScanHistory(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	return c.JSON(scanSvc.History(limit))
}
