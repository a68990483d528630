package routes

import (
	"attenda/internal/handler"
	"attenda/internal/middleware"
	"attenda/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAttendanceRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewAttendanceRepository(db)
	hdl := handler.NewAttendanceHandler(repo)

	api := app.Group("/api/attendance", middleware.Auth)

	api.Post("/clockin", hdl.ClockIn)
	api.Post("/clockout", hdl.ClockOut)
	api.Get("/my", hdl.GetMy)
}
