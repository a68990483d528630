package routes

import (
	"attenda/internal/handler"
	"attenda/internal/middleware"
	"attenda/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupProfileRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewUserRepository(db)
	hdl := handler.NewProfileHandler(repo)

	api := app.Group("/api/user", middleware.Auth)

	api.Get("/profile", hdl.GetProfile)
	api.Put("/profile", hdl.UpdateProfile)
	api.Post("/profile/avatar", hdl.UploadAvatar)
}
