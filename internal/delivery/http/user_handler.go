package http

import (
	"attenda/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	usecase *usecase.UserUsecase
}

func NewUserHandler(u *usecase.UserUsecase) *UserHandler {
	return &UserHandler{usecase: u}
}

func (h *UserHandler) Register(c *fiber.Ctx) error {
	var input struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid input"})
	}

	err := h.usecase.Register(input.Username, input.Email, input.Password)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Registration failed: " + err.Error()})
	}

	return c.JSON(fiber.Map{"message": "User registered!"})
}

func (h *UserHandler) Login(c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid input"})
	}

	token, user, err := h.usecase.Login(input.Email, input.Password)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	// The client stores token, role and email as its session triple
	return c.JSON(fiber.Map{
		"message": "Login successful!",
		"token":   token,
		"role":    user.Role,
		"email":   user.Email,
	})
}
