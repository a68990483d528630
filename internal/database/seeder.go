package database

import (
	"log"

	"attenda/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedAll(db *gorm.DB) {
	// 1. Seed the first admin account
	adminPassword, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := model.User{
		Username: "admin",
		Email:    "admin@attenda.local",
		Password: string(adminPassword),
		Role:     model.RoleAdmin,
		Profile: model.Profile{
			FullName: "System Administrator",
			Position: "Administrator",
		},
	}
	if err := db.Where(model.User{Email: admin.Email}).FirstOrCreate(&admin).Error; err != nil {
		log.Println("seeder: failed to seed admin:", err)
	}

	// 2. Seed a couple of demo employees for local development
	demo := []model.User{
		{
			Username: "somchai",
			Email:    "somchai@attenda.local",
			Role:     model.RoleUser,
			Profile: model.Profile{
				FullName:    "Somchai Jaidee",
				PhoneNumber: "081-234-5678",
				Position:    "Software Engineer",
			},
		},
		{
			Username: "malee",
			Email:    "malee@attenda.local",
			Role:     model.RoleUser,
			Profile: model.Profile{
				FullName:    "Malee Srisuk",
				PhoneNumber: "089-876-5432",
				Position:    "HR Officer",
			},
		},
	}

	userPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	for _, u := range demo {
		u.Password = string(userPassword)
		if err := db.Where(model.User{Email: u.Email}).FirstOrCreate(&u).Error; err != nil {
			log.Println("seeder: failed to seed user:", u.Email, err)
		}
	}
}
