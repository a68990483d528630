package client

import (
	"context"
	"fmt"
	"strings"
)

// AdminView is the admin dashboard: roster, pending leave requests, leave
// history and the full attendance table, with the summary counts on top.
type AdminView struct {
	api *Client

	Users         []User
	PendingLeaves []LeaveRecord
	LeaveHistory  []LeaveRecord
	Attendance    []AttendanceRecord
}

func NewAdminView(api *Client) *AdminView {
	return &AdminView{api: api}
}

func (v *AdminView) RefreshUsers(ctx context.Context) error {
	var users []User
	if err := v.api.get(ctx, "/api/admin/users", &users); err != nil {
		return err
	}
	v.Users = users
	return nil
}

func (v *AdminView) RefreshLeaves(ctx context.Context) error {
	var pending []LeaveRecord
	if err := v.api.get(ctx, "/api/admin/leave/pending", &pending); err != nil {
		return err
	}
	var all []LeaveRecord
	if err := v.api.get(ctx, "/api/admin/leave/all", &all); err != nil {
		return err
	}
	v.PendingLeaves = pending
	v.LeaveHistory = nil
	for _, l := range all {
		if l.Status != "PENDING" {
			v.LeaveHistory = append(v.LeaveHistory, l)
		}
	}
	return nil
}

func (v *AdminView) RefreshAttendance(ctx context.Context) error {
	var records []AttendanceRecord
	if err := v.api.get(ctx, "/api/admin/attendance/all", &records); err != nil {
		return err
	}
	v.Attendance = records
	return nil
}

func (v *AdminView) RefreshAll(ctx context.Context) error {
	if err := v.RefreshUsers(ctx); err != nil {
		return err
	}
	if err := v.RefreshLeaves(ctx); err != nil {
		return err
	}
	return v.RefreshAttendance(ctx)
}

// Summary holds the dashboard cards.
type Summary struct {
	TotalUsers     int // non-admin accounts
	TotalClockIn   int
	TotalClockOut  int
	TotalLeave     int
	RejectedLeaves int
}

func (v *AdminView) Summary() Summary {
	var s Summary
	for _, u := range v.Users {
		if !strings.EqualFold(u.Role, "ADMIN") {
			s.TotalUsers++
		}
	}
	for _, a := range v.Attendance {
		if a.ClockIn != "" {
			s.TotalClockIn++
		}
		if a.ClockOut != "" {
			s.TotalClockOut++
		}
		if a.Status == "Leave" {
			s.TotalLeave++
		}
	}
	for _, l := range v.LeaveHistory {
		if l.Status == "REJECTED" {
			s.RejectedLeaves++
		}
	}
	return s
}

// FilterUsers narrows the roster by role. "ALL" (or anything empty) keeps
// everyone; matching is case-insensitive.
func (v *AdminView) FilterUsers(filter string) []User {
	if filter == "" || strings.EqualFold(filter, "ALL") {
		return v.Users
	}
	var out []User
	for _, u := range v.Users {
		if strings.EqualFold(u.Role, filter) {
			out = append(out, u)
		}
	}
	return out
}

// UpdateUsername saves an inline username edit. An empty name never leaves
// the client.
func (v *AdminView) UpdateUsername(ctx context.Context, id uint, username string) error {
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("%w: username must not be empty", ErrValidation)
	}

	body := map[string]string{"username": strings.TrimSpace(username)}
	if err := v.api.put(ctx, fmt.Sprintf("/api/admin/users/%d", id), body, nil); err != nil {
		return err
	}
	return v.RefreshUsers(ctx)
}

// DeleteUser asks confirm before doing anything, mirroring the browser's
// window.confirm. A declined confirm is not an error.
func (v *AdminView) DeleteUser(ctx context.Context, id uint, confirm func() bool) error {
	if confirm != nil && !confirm() {
		return nil
	}
	if err := v.api.delete(ctx, fmt.Sprintf("/api/admin/users/%d", id)); err != nil {
		return err
	}
	return v.RefreshUsers(ctx)
}

func (v *AdminView) Approve(ctx context.Context, id uint) error {
	if err := v.api.put(ctx, fmt.Sprintf("/api/admin/leave/%d/approve", id), nil, nil); err != nil {
		return err
	}
	return v.RefreshLeaves(ctx)
}

func (v *AdminView) Reject(ctx context.Context, id uint) error {
	if err := v.api.put(ctx, fmt.Sprintf("/api/admin/leave/%d/reject", id), nil, nil); err != nil {
		return err
	}
	return v.RefreshLeaves(ctx)
}
