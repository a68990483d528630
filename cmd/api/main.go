package main

import (
	"fmt"

	"attenda/config"
	"attenda/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("1. Starting ATTENDA API... loading .env...")
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env not found, using system environment variables.")
	}

	fmt.Println("2. Connecting to database...")
	config.ConnectDB()
	fmt.Println("3. Database connected! Setting up routes...")

	app := fiber.New()

	// Global middleware
	app.Use(cors.New())   // the web client runs on a different origin
	app.Use(logger.New()) // request log for debugging

	// Serve uploaded avatars (http://localhost:3000/uploads/avatars/...)
	app.Static("/uploads", "./uploads")

	routes.SetupAuthRoutes(app, config.DB)
	routes.SetupAttendanceRoutes(app, config.DB)
	routes.SetupLeaveRoutes(app, config.DB)
	routes.SetupProfileRoutes(app, config.DB)
	routes.SetupAdminRoutes(app, config.DB)

	port := config.GetEnv("PORT", "3000")
	fmt.Println("4. Server ready! Listening on port :" + port)
	app.Listen(":" + port)
}
