package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"temple-backend/services"
)

// GetSevas lists the seva catalog, optionally filtered by category.
func GetSevas(c *fiber.Ctx) error {
	list := services.Sevas()
	if category := c.Query("category"); category != "" {
		filtered := list[:0]
		for _, s := range list {
			if s.Category == category {
				filtered = append(filtered, s)
			}
		}
		list = filtered
	}
	return c.JSON(list)
}

func GetSeva(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid seva id"})
	}
	s, err := services.FindSeva(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Seva not found"})
	}
	return c.JSON(s)
}

func GetHalls(c *fiber.Ctx) error {
	return c.JSON(services.Halls())
}

func GetHall(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid hall id"})
	}
	h, err := services.FindHall(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Hall not found"})
	}
	return c.JSON(h)
}
