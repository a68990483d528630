package routes

import (
	delivery "attenda/internal/delivery/http"
	"attenda/internal/repository"
	"attenda/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewUserRepository(db)
	uc := usecase.NewUserUsecase(repo)
	hdl := delivery.NewUserHandler(uc)

	api := app.Group("/api/auth")

	api.Post("/register", hdl.Register)
	api.Post("/login", hdl.Login)
}
