package model

import "time"

// Role values used across the API. The frontend only knows these two.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User carries explicit json tags instead of embedding gorm.Model because the
// web client reads camelCase keys (id, createdAt, profile.fullName, ...).
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"unique;not null"`
	Email     string    `json:"email" gorm:"unique;not null"`
	Password  string    `json:"-"`
	Role      string    `json:"role" gorm:"default:USER"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relation: every user has exactly one profile row
	Profile Profile `json:"profile" gorm:"foreignKey:UserID"`
}

type Profile struct {
	ID              uint   `json:"id" gorm:"primaryKey"`
	UserID          uint   `json:"userId"`
	FullName        string `json:"fullName"`
	PhoneNumber     string `json:"phoneNumber"`
	Position        string `json:"position"`
	ProfileImageUrl string `json:"profileImageUrl"`
}
