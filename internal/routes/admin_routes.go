package routes

import (
	"attenda/internal/handler"
	"attenda/internal/mailer"
	"attenda/internal/middleware"
	"attenda/internal/model"
	"attenda/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAdminRoutes(app *fiber.App, db *gorm.DB) {
	userRepo := repository.NewUserRepository(db)
	leaveRepo := repository.NewLeaveRepository(db)
	attRepo := repository.NewAttendanceRepository(db)

	adminHdl := handler.NewAdminHandler(userRepo)
	leaveHdl := handler.NewLeaveHandler(leaveRepo, attRepo, userRepo, mailer.NewFromEnv())
	attHdl := handler.NewAttendanceHandler(attRepo)

	// Everything under /api/admin requires the ADMIN role
	api := app.Group("/api/admin", middleware.Auth, middleware.Role(model.RoleAdmin))

	api.Get("/users", adminHdl.GetUsers)
	api.Put("/users/:id", adminHdl.UpdateUser)
	api.Delete("/users/:id", adminHdl.DeleteUser)

	api.Get("/leave/pending", leaveHdl.GetPending)
	api.Get("/leave/all", leaveHdl.GetAll)
	api.Put("/leave/:id/approve", leaveHdl.Approve)
	api.Put("/leave/:id/reject", leaveHdl.Reject)

	api.Get("/attendance/all", attHdl.GetAll)
}
