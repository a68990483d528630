package routes

import (
	"attenda/internal/handler"
	"attenda/internal/mailer"
	"attenda/internal/middleware"
	"attenda/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupLeaveRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewLeaveRepository(db)
	attRepo := repository.NewAttendanceRepository(db) // needed for approval backfill
	userRepo := repository.NewUserRepository(db)      // needed for the notification email
	hdl := handler.NewLeaveHandler(repo, attRepo, userRepo, mailer.NewFromEnv())

	api := app.Group("/api/leave", middleware.Auth)

	api.Post("/request", hdl.Request)
	api.Get("/my", hdl.GetMy)
}
