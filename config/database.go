package config

import (
	"fmt"

	"attenda/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	// Format: user:password@tcp(host:port)/dbname?charset=utf8mb4&parseTime=True&loc=UTC
	// Timestamps are stored in UTC; the clients shift to Bangkok time on display.
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		GetEnv("DB_USER", "root"),
		GetEnv("DB_PASSWORD", ""),
		GetEnv("DB_HOST", "127.0.0.1"),
		GetEnv("DB_PORT", "3306"),
		GetEnv("DB_NAME", "attenda"),
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("Failed to connect to database!")
	}

	fmt.Println("Database connection OK!")

	// Auto Migration: create tables from the structs in internal/model
	db.AutoMigrate(&model.User{})
	db.AutoMigrate(&model.Profile{})
	db.AutoMigrate(&model.Attendance{})
	db.AutoMigrate(&model.LeaveRequest{})

	DB = db
}
