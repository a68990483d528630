package repository

import (
	"attenda/internal/model"

	"gorm.io/gorm"
)

type LeaveRepository interface {
	Create(leave *model.LeaveRequest) error
	Update(leave *model.LeaveRequest) error
	GetByID(id uint) (*model.LeaveRequest, error)
	GetByUserID(userID uint) ([]model.LeaveRequest, error)
	GetByStatus(status string) ([]model.LeaveRequest, error)
	GetAll() ([]model.LeaveRequest, error)
}

type leaveRepository struct {
	db *gorm.DB
}

func NewLeaveRepository(db *gorm.DB) LeaveRepository {
	return &leaveRepository{db}
}

func (r *leaveRepository) Create(leave *model.LeaveRequest) error {
	return r.db.Create(leave).Error
}

func (r *leaveRepository) Update(leave *model.LeaveRequest) error {
	return r.db.Save(leave).Error
}

func (r *leaveRepository) GetByID(id uint) (*model.LeaveRequest, error) {
	var leave model.LeaveRequest
	err := r.db.Preload("User").First(&leave, id).Error
	return &leave, err
}

func (r *leaveRepository) GetByUserID(userID uint) ([]model.LeaveRequest, error) {
	var list []model.LeaveRequest
	err := r.db.Where("user_id = ?", userID).Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *leaveRepository) GetByStatus(status string) ([]model.LeaveRequest, error) {
	var list []model.LeaveRequest
	err := r.db.Preload("User").Where("status = ?", status).Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *leaveRepository) GetAll() ([]model.LeaveRequest, error) {
	var list []model.LeaveRequest
	err := r.db.Preload("User").Order("created_at desc").Find(&list).Error
	return list, err
}
