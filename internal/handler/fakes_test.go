package handler_test

import (
	"errors"
	"sync"

	"attenda/internal/model"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// withUser fakes the Auth middleware: claims arrive as float64, same as a
// parsed JWT.
func withUser(userID uint, role string, h fiber.Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("user_id", float64(userID))
		c.Locals("role", role)
		return h(c)
	}
}

type fakeAttendanceRepo struct {
	mu   sync.Mutex
	rows []*model.Attendance
	next uint
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{next: 1}
}

func (r *fakeAttendanceRepo) Create(att *model.Attendance) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	att.ID = r.next
	r.next++
	cp := *att
	r.rows = append(r.rows, &cp)
	return nil
}

func (r *fakeAttendanceRepo) Update(att *model.Attendance) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, row := range r.rows {
		if row.ID == att.ID {
			cp := *att
			r.rows[i] = &cp
			return nil
		}
	}
	return errors.New("not found")
}

func (r *fakeAttendanceRepo) GetByDate(userID uint, date string) (*model.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.UserID == userID && row.Date == date {
			cp := *row
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeAttendanceRepo) GetHistory(userID uint) ([]model.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Attendance
	for _, row := range r.rows {
		if row.UserID == userID {
			out = append(out, *row)
		}
	}
	return out, nil
}

func (r *fakeAttendanceRepo) GetAll() ([]model.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Attendance
	for _, row := range r.rows {
		out = append(out, *row)
	}
	return out, nil
}

func (r *fakeAttendanceRepo) CreateMany(atts []model.Attendance) error {
	for i := range atts {
		if err := r.Create(&atts[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeAttendanceRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

type fakeLeaveRepo struct {
	mu   sync.Mutex
	rows []*model.LeaveRequest
	next uint
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{next: 1}
}

func (r *fakeLeaveRepo) Create(leave *model.LeaveRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	leave.ID = r.next
	r.next++
	cp := *leave
	r.rows = append(r.rows, &cp)
	return nil
}

func (r *fakeLeaveRepo) Update(leave *model.LeaveRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, row := range r.rows {
		if row.ID == leave.ID {
			cp := *leave
			r.rows[i] = &cp
			return nil
		}
	}
	return errors.New("not found")
}

func (r *fakeLeaveRepo) GetByID(id uint) (*model.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.ID == id {
			cp := *row
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeLeaveRepo) GetByUserID(userID uint) ([]model.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.LeaveRequest
	for _, row := range r.rows {
		if row.UserID == userID {
			out = append(out, *row)
		}
	}
	return out, nil
}

func (r *fakeLeaveRepo) GetByStatus(status string) ([]model.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.LeaveRequest
	for _, row := range r.rows {
		if row.Status == status {
			out = append(out, *row)
		}
	}
	return out, nil
}

func (r *fakeLeaveRepo) GetAll() ([]model.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.LeaveRequest
	for _, row := range r.rows {
		out = append(out, *row)
	}
	return out, nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users []*model.User
	next  uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{next: 1}
}

func (r *fakeUserRepo) Create(user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.ID = r.next
	r.next++
	cp := *user
	r.users = append(r.users, &cp)
	return nil
}

func (r *fakeUserRepo) FindByID(id uint) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByEmail(email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetAll(role string) ([]model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.User
	for _, u := range r.users {
		if role == "" || u.Role == role {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Update(user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, u := range r.users {
		if u.ID == user.ID {
			cp := *user
			r.users[i] = &cp
			return nil
		}
	}
	return errors.New("not found")
}

func (r *fakeUserRepo) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

func (r *fakeUserRepo) UpdateProfile(profile *model.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == profile.UserID {
			u.Profile = *profile
			return nil
		}
	}
	return nil
}

type fakeMailer struct {
	mu    sync.Mutex
	sent  []string
	calls int
}

func (m *fakeMailer) SendLeaveDecision(to, status, startDate, endDate string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, to+":"+status)
	m.calls++
}

func (m *fakeMailer) sentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
