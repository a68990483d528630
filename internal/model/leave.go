package model

import "time"

// Leave request statuses. PENDING is the only non-terminal state.
const (
	LeavePending  = "PENDING"
	LeaveApproved = "APPROVED"
	LeaveRejected = "REJECTED"
)

type LeaveRequest struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId"`
	Reason    string    `json:"reason"`
	StartDate string    `json:"startDate"` // YYYY-MM-DD
	EndDate   string    `json:"endDate"`   // YYYY-MM-DD
	Status    string    `json:"status" gorm:"default:PENDING"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relation for preloading the requester on admin listings
	User User `json:"user" gorm:"foreignKey:UserID"`
}
