package client

// DTOs mirroring the API's JSON. Timestamp fields stay raw strings so the
// formatting helpers can deal with null/invalid values the same way the web
// client did; JSON null simply leaves them empty.

type User struct {
	ID       uint    `json:"id"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Role     string  `json:"role"`
	Profile  Profile `json:"profile"`
}

type Profile struct {
	FullName        string `json:"fullName"`
	PhoneNumber     string `json:"phoneNumber"`
	Position        string `json:"position"`
	ProfileImageUrl string `json:"profileImageUrl"`
}

type AttendanceRecord struct {
	ID       uint   `json:"id"`
	Date     string `json:"date"`
	ClockIn  string `json:"clockIn"`
	ClockOut string `json:"clockOut"`
	Status   string `json:"status"`
	Method   string `json:"method"`
	Location string `json:"location"`
}

type LeaveRecord struct {
	ID        uint   `json:"id"`
	Reason    string `json:"reason"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}
