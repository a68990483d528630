package main

import (
	"fmt"
	"log"

	"attenda/config"
	"attenda/internal/database"

	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("Starting database seeding...")

	// Load .env manually since this is a standalone script
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env not found, using system environment variables.")
	}

	config.ConnectDB()

	fmt.Println("Running SeedAll...")
	database.SeedAll(config.DB)

	fmt.Println("Seeding done!")
}
