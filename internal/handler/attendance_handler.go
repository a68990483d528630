package handler

import (
	"time"

	"attenda/config"
	"attenda/internal/model"
	"attenda/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// Bangkok is UTC+7 all year, so a fixed zone is enough (no tzdata needed).
var bangkok = time.FixedZone("ICT", 7*3600)

type AttendanceHandler struct {
	repo repository.AttendanceRepository
}

func NewAttendanceHandler(repo repository.AttendanceRepository) *AttendanceHandler {
	return &AttendanceHandler{repo: repo}
}

type ClockInRequest struct {
	Method   string `json:"method"`   // e.g. "GPS"
	Location string `json:"location"` // "lat,lng"
	ClockIn  string `json:"clockIn"`  // optional client timestamp, RFC3339
}

type ClockOutRequest struct {
	ClockOut string `json:"clockOut"` // optional client timestamp, RFC3339
}

func (h *AttendanceHandler) ClockIn(c *fiber.Ctx) error {
	// 1. User comes from the Auth middleware
	userID := uint(c.Locals("user_id").(float64))

	var req ClockInRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Location == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Location is required"})
	}
	if req.Method == "" {
		req.Method = "GPS"
	}

	// 2. Work out the event time. The client may send its own timestamp,
	// otherwise the server clock wins. Stored in UTC either way.
	now := time.Now().UTC()
	if req.ClockIn != "" {
		t, err := time.Parse(time.RFC3339, req.ClockIn)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid clockIn timestamp"})
		}
		now = t.UTC()
	}
	today := now.In(bangkok).Format("2006-01-02")

	// 3. Guard: at most one clock-in per user per day
	existing, _ := h.repo.GetByDate(userID, today)
	if existing != nil {
		if existing.Status == model.StatusLeave {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "You are on approved leave today"})
		}
		if existing.ClockIn != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "You have already clocked in today"})
		}
	}

	// 4. On Time vs Late against the configured work start (Bangkok clock)
	status := model.StatusOnTime
	workStart, err := time.Parse("15:04", config.GetEnv("WORK_START", "09:00"))
	if err != nil {
		workStart, _ = time.Parse("15:04", "09:00")
	}
	local := now.In(bangkok)
	startToday := time.Date(local.Year(), local.Month(), local.Day(),
		workStart.Hour(), workStart.Minute(), 0, 0, bangkok)
	if local.After(startToday) {
		status = model.StatusLate
	}

	if existing != nil {
		existing.ClockIn = &now
		existing.Status = status
		existing.Method = req.Method
		existing.Location = req.Location
		if err := h.repo.Update(existing); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save clock-in"})
		}
		return c.JSON(fiber.Map{"message": "Clock-in recorded", "status": status})
	}

	att := model.Attendance{
		UserID:   userID,
		Date:     today,
		ClockIn:  &now,
		Status:   status,
		Method:   req.Method,
		Location: req.Location,
	}
	if err := h.repo.Create(&att); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save clock-in"})
	}

	return c.JSON(fiber.Map{"message": "Clock-in recorded", "status": status})
}

func (h *AttendanceHandler) ClockOut(c *fiber.Ctx) error {
	userID := uint(c.Locals("user_id").(float64))

	// The web client posts clock-out with an empty body, so only parse one
	// when it is actually there.
	var req ClockOutRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}
	}

	now := time.Now().UTC()
	if req.ClockOut != "" {
		t, err := time.Parse(time.RFC3339, req.ClockOut)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid clockOut timestamp"})
		}
		now = t.UTC()
	}
	today := now.In(bangkok).Format("2006-01-02")

	// Guards: clock-out only after a clock-in, and only once
	att, err := h.repo.GetByDate(userID, today)
	if err != nil || att == nil || att.ClockIn == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "You have not clocked in today"})
	}
	if att.ClockOut != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "You have already clocked out today"})
	}

	att.ClockOut = &now
	if err := h.repo.Update(att); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save clock-out"})
	}

	return c.JSON(fiber.Map{"message": "Clock-out recorded"})
}

// GetMy returns the caller's attendance history, newest first. The response
// is a bare array because that is what the web client expects.
func (h *AttendanceHandler) GetMy(c *fiber.Ctx) error {
	userID := uint(c.Locals("user_id").(float64))

	history, err := h.repo.GetHistory(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch attendance history"})
	}
	if history == nil {
		history = []model.Attendance{}
	}

	return c.JSON(history)
}

func (h *AttendanceHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch attendance records"})
	}
	if list == nil {
		list = []model.Attendance{}
	}

	return c.JSON(list)
}
