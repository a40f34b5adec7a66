package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"temple-backend/models"
)

type AddVolunteerRequest struct {
	Name  string `json:"name" validate:"required,min=2"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone"`
	Role  string `json:"role" validate:"required"`
}

// AddVolunteer registers a volunteer on the roster. Admin only.
func AddVolunteer(c *fiber.Ctx) error {
	var req AddVolunteerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	v := models.Volunteer{
		ID:        time.Now().UnixMilli(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Role:      req.Role,
		CreatedAt: time.Now(),
	}
	if err := volunteers.Append(&v); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save volunteer"})
	}
	return c.Status(fiber.StatusCreated).JSON(v)
}

func GetVolunteers(c *fiber.Ctx) error {
	list, err := volunteers.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load volunteers"})
	}
	return c.JSON(list)
}

// RemoveVolunteer drops a volunteer from the roster. Admin only.
func RemoveVolunteer(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid volunteer id"})
	}
	if err := volunteers.Remove(id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Volunteer not found"})
	}
	return c.JSON(fiber.Map{"success": true})
}
