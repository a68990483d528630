package repository

import (
	"attenda/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *model.User) error
	FindByID(id uint) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	GetAll(role string) ([]model.User, error)
	Update(user *model.User) error
	Delete(id uint) error
	UpdateProfile(profile *model.Profile) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db}
}

func (r *userRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.db.Preload("Profile").First(&user, id).Error
	return &user, err
}

func (r *userRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.db.Preload("Profile").Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *userRepository) GetAll(role string) ([]model.User, error) {
	var users []model.User
	q := r.db.Preload("Profile").Order("id asc")
	if role != "" {
		q = q.Where("role = ?", role)
	}
	err := q.Find(&users).Error
	return users, err
}

func (r *userRepository) Update(user *model.User) error {
	return r.db.Save(user).Error
}

func (r *userRepository) Delete(id uint) error {
	// Drop the profile row along with the user so the roster stays clean
	if err := r.db.Where("user_id = ?", id).Delete(&model.Profile{}).Error; err != nil {
		return err
	}
	return r.db.Delete(&model.User{}, id).Error
}

func (r *userRepository) UpdateProfile(profile *model.Profile) error {
	return r.db.Save(profile).Error
}
