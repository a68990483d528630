package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"attenda/internal/handler"
	"attenda/internal/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type leaveTestEnv struct {
	app       *fiber.App
	leaveRepo *fakeLeaveRepo
	attRepo   *fakeAttendanceRepo
	userRepo  *fakeUserRepo
	mail      *fakeMailer
}

func newLeaveEnv(userID uint) *leaveTestEnv {
	env := &leaveTestEnv{
		leaveRepo: newFakeLeaveRepo(),
		attRepo:   newFakeAttendanceRepo(),
		userRepo:  newFakeUserRepo(),
		mail:      &fakeMailer{},
	}
	hdl := handler.NewLeaveHandler(env.leaveRepo, env.attRepo, env.userRepo, env.mail)

	app := fiber.New()
	app.Post("/api/leave/request", withUser(userID, "USER", hdl.Request))
	app.Get("/api/leave/my", withUser(userID, "USER", hdl.GetMy))
	app.Get("/api/admin/leave/pending", withUser(99, "ADMIN", hdl.GetPending))
	app.Put("/api/admin/leave/:id/approve", withUser(99, "ADMIN", hdl.Approve))
	app.Put("/api/admin/leave/:id/reject", withUser(99, "ADMIN", hdl.Reject))
	env.app = app
	return env
}

func (env *leaveTestEnv) request(t *testing.T, method, path string, body interface{}) int {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := env.app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestLeaveRequestValidation(t *testing.T) {
	env := newLeaveEnv(1)

	cases := []struct {
		name string
		body map[string]string
	}{
		{"empty reason", map[string]string{"reason": "", "startDate": "2025-07-01", "endDate": "2025-07-02"}},
		{"missing start", map[string]string{"reason": "vacation", "endDate": "2025-07-02"}},
		{"missing end", map[string]string{"reason": "vacation", "startDate": "2025-07-01"}},
		{"end before start", map[string]string{"reason": "vacation", "startDate": "2025-07-05", "endDate": "2025-07-01"}},
		{"garbage date", map[string]string{"reason": "vacation", "startDate": "soon", "endDate": "2025-07-01"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code := env.request(t, "POST", "/api/leave/request", tc.body)
			assert.Equal(t, 400, code)
		})
	}

	list, _ := env.leaveRepo.GetAll()
	assert.Empty(t, list, "invalid requests must not be stored")
}

func TestLeaveRequestCreatedPending(t *testing.T) {
	env := newLeaveEnv(1)

	code := env.request(t, "POST", "/api/leave/request", map[string]string{
		"reason":    "family visit",
		"startDate": "2025-07-01",
		"endDate":   "2025-07-03",
	})
	require.Equal(t, 200, code)

	list, _ := env.leaveRepo.GetByUserID(1)
	require.Len(t, list, 1)
	assert.Equal(t, model.LeavePending, list[0].Status)
	assert.Equal(t, "family visit", list[0].Reason)
}

func TestApproveGeneratesLeaveAttendance(t *testing.T) {
	env := newLeaveEnv(1)
	env.userRepo.Create(&model.User{Username: "somchai", Email: "somchai@attenda.local", Role: model.RoleUser})

	require.Equal(t, 200, env.request(t, "POST", "/api/leave/request", map[string]string{
		"reason":    "family visit",
		"startDate": "2025-07-01",
		"endDate":   "2025-07-03",
	}))

	code := env.request(t, "PUT", "/api/admin/leave/1/approve", nil)
	require.Equal(t, 200, code)

	leave, err := env.leaveRepo.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, model.LeaveApproved, leave.Status)

	// Backfill and notification both run in the background
	require.Eventually(t, func() bool {
		return env.attRepo.count() == 3
	}, 2*time.Second, 10*time.Millisecond, "one Leave row per day of the range")
	require.Eventually(t, func() bool {
		return env.mail.sentCount() == 1
	}, 2*time.Second, 10*time.Millisecond)

	for _, date := range []string{"2025-07-01", "2025-07-02", "2025-07-03"} {
		att, err := env.attRepo.GetByDate(1, date)
		require.NoError(t, err)
		assert.Equal(t, model.StatusLeave, att.Status)
	}
}

func TestApproveSkipsDaysWithExistingRecords(t *testing.T) {
	env := newLeaveEnv(1)
	env.userRepo.Create(&model.User{Username: "somchai", Email: "somchai@attenda.local", Role: model.RoleUser})
	now := time.Date(2025, 7, 1, 1, 0, 0, 0, time.UTC)
	env.attRepo.Create(&model.Attendance{UserID: 1, Date: "2025-07-01", ClockIn: &now, Status: model.StatusOnTime})

	require.Equal(t, 200, env.request(t, "POST", "/api/leave/request", map[string]string{
		"reason":    "family visit",
		"startDate": "2025-07-01",
		"endDate":   "2025-07-02",
	}))
	require.Equal(t, 200, env.request(t, "PUT", "/api/admin/leave/1/approve", nil))

	require.Eventually(t, func() bool {
		return env.attRepo.count() == 2
	}, 2*time.Second, 10*time.Millisecond)

	// The pre-existing clock-in row must be untouched
	att, err := env.attRepo.GetByDate(1, "2025-07-01")
	require.NoError(t, err)
	assert.Equal(t, model.StatusOnTime, att.Status)
}

func TestDecisionIsTerminal(t *testing.T) {
	env := newLeaveEnv(1)
	env.userRepo.Create(&model.User{Username: "somchai", Email: "somchai@attenda.local", Role: model.RoleUser})

	require.Equal(t, 200, env.request(t, "POST", "/api/leave/request", map[string]string{
		"reason":    "errand",
		"startDate": "2025-07-01",
		"endDate":   "2025-07-01",
	}))
	require.Equal(t, 200, env.request(t, "PUT", "/api/admin/leave/1/reject", nil))

	// Re-clicking reject, or trying to approve afterwards, changes nothing
	assert.Equal(t, 409, env.request(t, "PUT", "/api/admin/leave/1/reject", nil))
	assert.Equal(t, 409, env.request(t, "PUT", "/api/admin/leave/1/approve", nil))

	leave, err := env.leaveRepo.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, model.LeaveRejected, leave.Status)
}

func TestPendingListOnlyPending(t *testing.T) {
	env := newLeaveEnv(1)
	env.leaveRepo.Create(&model.LeaveRequest{UserID: 1, Status: model.LeavePending, Reason: "a"})
	env.leaveRepo.Create(&model.LeaveRequest{UserID: 1, Status: model.LeaveApproved, Reason: "b"})
	env.leaveRepo.Create(&model.LeaveRequest{UserID: 2, Status: model.LeavePending, Reason: "c"})

	req := httptest.NewRequest("GET", "/api/admin/leave/pending", nil)
	resp, err := env.app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var list []model.LeaveRequest
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	assert.Len(t, list, 2)
	for _, l := range list {
		assert.Equal(t, model.LeavePending, l.Status)
	}
}
