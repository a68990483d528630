package model

import "time"

// Attendance statuses as shown on the dashboards.
const (
	StatusOnTime = "On Time"
	StatusLate   = "Late"
	StatusLeave  = "Leave"
	StatusAbsent = "Absent"
)

// Attendance is one row per user per calendar day. Date is the Bangkok-local
// day in YYYY-MM-DD; ClockIn/ClockOut are stored in UTC and nil until the
// matching event happens.
type Attendance struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	UserID    uint       `json:"userId" gorm:"uniqueIndex:idx_user_date"`
	Date      string     `json:"date" gorm:"uniqueIndex:idx_user_date;not null"`
	ClockIn   *time.Time `json:"clockIn"`
	ClockOut  *time.Time `json:"clockOut"`
	Status    string     `json:"status"`
	Method    string     `json:"method"`   // e.g. GPS
	Location  string     `json:"location"` // "lat,lng" as captured by the client
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`

	User User `json:"user" gorm:"foreignKey:UserID"`
}
