package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"testing"

	"attenda/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type adminBackend struct {
	mu      sync.Mutex
	users   []client.User
	leaves  []client.LeaveRecord
	puts    int
	deletes int
}

func (b *adminBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/admin/users", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		json.NewEncoder(w).Encode(b.users)
	})
	mux.HandleFunc("/api/admin/users/", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		switch r.Method {
		case http.MethodPut:
			b.puts++
			var body map[string]string
			json.NewDecoder(r.Body).Decode(&body)
			if len(b.users) > 0 {
				b.users[0].Username = body["username"]
			}
			json.NewEncoder(w).Encode(map[string]string{"message": "User updated"})
		case http.MethodDelete:
			b.deletes++
			if len(b.users) > 0 {
				b.users = b.users[:len(b.users)-1]
			}
			json.NewEncoder(w).Encode(map[string]string{"message": "User deleted"})
		}
	})
	mux.HandleFunc("/api/admin/leave/pending", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		var pending []client.LeaveRecord
		for _, l := range b.leaves {
			if l.Status == "PENDING" {
				pending = append(pending, l)
			}
		}
		json.NewEncoder(w).Encode(pending)
	})
	mux.HandleFunc("/api/admin/leave/all", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		json.NewEncoder(w).Encode(b.leaves)
	})
	mux.HandleFunc("/api/admin/leave/42/approve", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i := range b.leaves {
			if b.leaves[i].ID == 42 {
				b.leaves[i].Status = "APPROVED"
			}
		}
		json.NewEncoder(w).Encode(map[string]string{"message": "Leave approved"})
	})
	mux.HandleFunc("/api/admin/attendance/all", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]client.AttendanceRecord{})
	})
	return mux
}

func TestAdminSummary(t *testing.T) {
	view := client.NewAdminView(nil)
	view.Users = []client.User{
		{ID: 1, Role: "USER"},
		{ID: 2, Role: "USER"},
		{ID: 3, Role: "ADMIN"},
	}
	view.Attendance = []client.AttendanceRecord{
		{ClockIn: "2025-07-01T01:00:00Z", ClockOut: "2025-07-01T10:00:00Z", Status: "On Time"},
		{ClockIn: "2025-07-01T03:30:00Z", Status: "Late"},
		{Status: "Leave"},
	}
	view.LeaveHistory = []client.LeaveRecord{
		{Status: "APPROVED"},
		{Status: "REJECTED"},
	}

	s := view.Summary()
	assert.Equal(t, 2, s.TotalUsers, "admins are not counted")
	assert.Equal(t, 2, s.TotalClockIn)
	assert.Equal(t, 1, s.TotalClockOut)
	assert.Equal(t, 1, s.TotalLeave)
	assert.Equal(t, 1, s.RejectedLeaves)
}

func TestAdminFilterUsers(t *testing.T) {
	view := client.NewAdminView(nil)
	view.Users = []client.User{
		{ID: 1, Role: "USER"},
		{ID: 2, Role: "ADMIN"},
		{ID: 3, Role: "USER"},
	}

	assert.Len(t, view.FilterUsers("ALL"), 3)
	assert.Len(t, view.FilterUsers(""), 3)
	assert.Len(t, view.FilterUsers("USER"), 2)
	assert.Len(t, view.FilterUsers("admin"), 1, "matching is case-insensitive")
}

func TestUpdateUsernameRejectsEmpty(t *testing.T) {
	backend := &adminBackend{users: []client.User{{ID: 1, Username: "somchai", Role: "USER"}}}
	api := newTestClient(t, backend.handler())
	view := client.NewAdminView(api)
	ctx := context.Background()

	for _, name := range []string{"", "   "} {
		err := view.UpdateUsername(ctx, 1, name)
		assert.ErrorIs(t, err, client.ErrValidation)
	}
	assert.Equal(t, 0, backend.puts, "empty names never leave the client")

	require.NoError(t, view.UpdateUsername(ctx, 1, "somchai.j"))
	assert.Equal(t, 1, backend.puts)
	require.Len(t, view.Users, 1)
	assert.Equal(t, "somchai.j", view.Users[0].Username)
}

func TestDeleteUserConfirm(t *testing.T) {
	backend := &adminBackend{users: []client.User{{ID: 1, Username: "somchai", Role: "USER"}}}
	api := newTestClient(t, backend.handler())
	view := client.NewAdminView(api)
	ctx := context.Background()

	// Declined confirm: no request, not an error
	require.NoError(t, view.DeleteUser(ctx, 1, func() bool { return false }))
	assert.Equal(t, 0, backend.deletes)

	require.NoError(t, view.DeleteUser(ctx, 1, func() bool { return true }))
	assert.Equal(t, 1, backend.deletes)
	assert.Empty(t, view.Users)
}

func TestApproveMovesLeaveToHistory(t *testing.T) {
	backend := &adminBackend{
		leaves: []client.LeaveRecord{{ID: 42, Reason: "family visit", Status: "PENDING"}},
	}
	api := newTestClient(t, backend.handler())
	view := client.NewAdminView(api)
	ctx := context.Background()

	require.NoError(t, view.RefreshLeaves(ctx))
	require.Len(t, view.PendingLeaves, 1)
	assert.Empty(t, view.LeaveHistory)

	require.NoError(t, view.Approve(ctx, 42))

	assert.Empty(t, view.PendingLeaves)
	require.Len(t, view.LeaveHistory, 1)
	assert.Equal(t, "APPROVED", view.LeaveHistory[0].Status)
}
