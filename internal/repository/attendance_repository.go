package repository

import (
	"attenda/internal/model"

	"gorm.io/gorm"
)

type AttendanceRepository interface {
	Create(att *model.Attendance) error
	Update(att *model.Attendance) error
	GetByDate(userID uint, date string) (*model.Attendance, error)
	GetHistory(userID uint) ([]model.Attendance, error)
	GetAll() ([]model.Attendance, error)
	CreateMany(atts []model.Attendance) error
}

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db}
}

func (r *attendanceRepository) Create(att *model.Attendance) error {
	return r.db.Create(att).Error
}

func (r *attendanceRepository) Update(att *model.Attendance) error {
	return r.db.Save(att).Error
}

func (r *attendanceRepository) GetByDate(userID uint, date string) (*model.Attendance, error) {
	var att model.Attendance
	// One row per user per day; used by the double clock-in guard
	err := r.db.Where("user_id = ? AND date = ?", userID, date).First(&att).Error
	if err != nil {
		return nil, err
	}
	return &att, nil
}

func (r *attendanceRepository) GetHistory(userID uint) ([]model.Attendance, error) {
	var history []model.Attendance
	err := r.db.Where("user_id = ?", userID).Order("date desc").Find(&history).Error
	return history, err
}

func (r *attendanceRepository) GetAll() ([]model.Attendance, error) {
	var list []model.Attendance
	err := r.db.Preload("User").Order("date desc").Find(&list).Error
	return list, err
}

func (r *attendanceRepository) CreateMany(atts []model.Attendance) error {
	return r.db.Create(&atts).Error
}
