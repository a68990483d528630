package handler

import (
	"fmt"
	"os"
	"path/filepath"

	"attenda/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ProfileHandler struct {
	userRepo repository.UserRepository
}

func NewProfileHandler(userRepo repository.UserRepository) *ProfileHandler {
	return &ProfileHandler{userRepo: userRepo}
}

// GetProfile returns the whole user including the nested profile, which is
// the shape the web client flattens into its form.
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	userID := uint(c.Locals("user_id").(float64))

	user, err := h.userRepo.FindByID(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	return c.JSON(user)
}

type UpdateProfileRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	FullName        string `json:"fullName"`
	PhoneNumber     string `json:"phoneNumber"`
	Position        string `json:"position"`
	ProfileImageUrl string `json:"profileImageUrl"`
}

// UpdateProfile accepts the flat JSON body the web client sends and spreads
// it over the user and profile rows.
func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	userID := uint(c.Locals("user_id").(float64))

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	user, err := h.userRepo.FindByID(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	// Only overwrite the fields that were actually sent
	if req.Username != "" {
		user.Username = req.Username
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	user.Profile.FullName = req.FullName
	user.Profile.PhoneNumber = req.PhoneNumber
	user.Profile.Position = req.Position
	if req.ProfileImageUrl != "" {
		user.Profile.ProfileImageUrl = req.ProfileImageUrl
	}

	if err := h.userRepo.Update(user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update profile"})
	}
	if err := h.userRepo.UpdateProfile(&user.Profile); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update profile"})
	}

	return c.JSON(fiber.Map{"message": "Profile updated", "data": user})
}

// UploadAvatar stores an uploaded image under ./uploads/avatars and points
// the profile at it. Served by the static /uploads route in cmd/api.
func (h *ProfileHandler) UploadAvatar(c *fiber.Ctx) error {
	userID := uint(c.Locals("user_id").(float64))

	file, err := c.FormFile("avatar")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Avatar file is required"})
	}

	uploadDir := "./uploads/avatars"
	if _, err := os.Stat(uploadDir); os.IsNotExist(err) {
		os.MkdirAll(uploadDir, 0755)
	}

	// Random filename so uploads never collide or overwrite each other
	filename := uuid.New().String() + filepath.Ext(file.Filename)
	if err := c.SaveFile(file, fmt.Sprintf("%s/%s", uploadDir, filename)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save avatar"})
	}

	user, err := h.userRepo.FindByID(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}
	user.Profile.ProfileImageUrl = "/uploads/avatars/" + filename
	if err := h.userRepo.UpdateProfile(&user.Profile); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update profile"})
	}

	return c.JSON(fiber.Map{"message": "Avatar uploaded", "profileImageUrl": user.Profile.ProfileImageUrl})
}
