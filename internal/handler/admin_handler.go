package handler

import (
	"strings"

	"attenda/internal/model"
	"attenda/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	userRepo repository.UserRepository
}

func NewAdminHandler(userRepo repository.UserRepository) *AdminHandler {
	return &AdminHandler{userRepo: userRepo}
}

// GetUsers lists the roster, optionally filtered with ?role=USER or ?role=ADMIN.
func (h *AdminHandler) GetUsers(c *fiber.Ctx) error {
	role := strings.ToUpper(c.Query("role"))
	if role != model.RoleUser && role != model.RoleAdmin {
		role = "" // anything else means no filter
	}

	users, err := h.userRepo.GetAll(role)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch users"})
	}
	if users == nil {
		users = []model.User{}
	}

	return c.JSON(users)
}

type UpdateUserRequest struct {
	Username string `json:"username"`
}

func (h *AdminHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}

	var req UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if strings.TrimSpace(req.Username) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Username must not be empty"})
	}

	user, err := h.userRepo.FindByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	user.Username = strings.TrimSpace(req.Username)
	if err := h.userRepo.Update(user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update user"})
	}

	return c.JSON(fiber.Map{"message": "User updated", "data": user})
}

func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}

	if _, err := h.userRepo.FindByID(uint(id)); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	if err := h.userRepo.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete user"})
	}

	return c.JSON(fiber.Map{"message": "User deleted"})
}
