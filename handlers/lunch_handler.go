package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// GetLunchAttendance lists the tirtha prasada roster for the dashboard.
func GetLunchAttendance(c *fiber.Ctx) error {
	list, err := lunch.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load attendance"})
	}
	return c.JSON(list)
}

// LunchCheckIn marks an attendee present and stamps the time.
func LunchCheckIn(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid attendance id"})
	}
	entry, err := lunch.CheckIn(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Attendance record not found"})
	}
	return c.JSON(entry)
}
