package handler

import (
	"time"

	"attenda/internal/mailer"
	"attenda/internal/model"
	"attenda/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type LeaveHandler struct {
	repo           repository.LeaveRepository
	attendanceRepo repository.AttendanceRepository
	userRepo       repository.UserRepository
	mail           mailer.Mailer
}

func NewLeaveHandler(repo repository.LeaveRepository, attRepo repository.AttendanceRepository, userRepo repository.UserRepository, mail mailer.Mailer) *LeaveHandler {
	return &LeaveHandler{repo: repo, attendanceRepo: attRepo, userRepo: userRepo, mail: mail}
}

type LeaveRequestBody struct {
	Reason    string `json:"reason"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

func (h *LeaveHandler) Request(c *fiber.Ctx) error {
	userID := uint(c.Locals("user_id").(float64))

	var req LeaveRequestBody
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	// Same rules the client enforces, repeated here because the client is
	// not the source of truth.
	if req.Reason == "" || req.StartDate == "" || req.EndDate == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Reason, start date and end date are required"})
	}
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid start date"})
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid end date"})
	}
	if end.Before(start) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "End date must be after start date"})
	}

	leave := model.LeaveRequest{
		UserID:    userID,
		Reason:    req.Reason,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Status:    model.LeavePending,
	}
	if err := h.repo.Create(&leave); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to submit leave request"})
	}

	return c.JSON(fiber.Map{"message": "Leave request submitted", "data": leave})
}

func (h *LeaveHandler) GetMy(c *fiber.Ctx) error {
	userID := uint(c.Locals("user_id").(float64))

	list, err := h.repo.GetByUserID(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch leave requests"})
	}
	if list == nil {
		list = []model.LeaveRequest{}
	}

	return c.JSON(list)
}

func (h *LeaveHandler) GetPending(c *fiber.Ctx) error {
	list, err := h.repo.GetByStatus(model.LeavePending)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch pending leave requests"})
	}
	if list == nil {
		list = []model.LeaveRequest{}
	}

	return c.JSON(list)
}

func (h *LeaveHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch leave requests"})
	}
	if list == nil {
		list = []model.LeaveRequest{}
	}

	return c.JSON(list)
}

func (h *LeaveHandler) Approve(c *fiber.Ctx) error {
	return h.decide(c, model.LeaveApproved)
}

func (h *LeaveHandler) Reject(c *fiber.Ctx) error {
	return h.decide(c, model.LeaveRejected)
}

func (h *LeaveHandler) decide(c *fiber.Ctx, status string) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid leave id"})
	}

	leave, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Leave request not found"})
	}

	// Decisions are terminal. Re-clicking an already decided row in the
	// admin table must not flip it back and forth.
	if leave.Status != model.LeavePending {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Leave request has already been decided"})
	}

	leave.Status = status
	if err := h.repo.Update(leave); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update leave request"})
	}

	if status == model.LeaveApproved {
		go h.generateLeaveAttendance(leave) // background so the response stays fast
	}
	if h.mail != nil {
		go h.notifyRequester(leave)
	}

	return c.JSON(fiber.Map{"message": "Leave request " + status})
}

// generateLeaveAttendance backfills one Leave-status attendance row for each
// day of an approved range, so the admin dashboard counts them.
func (h *LeaveHandler) generateLeaveAttendance(leave *model.LeaveRequest) {
	start, err := time.Parse("2006-01-02", leave.StartDate)
	if err != nil {
		return
	}
	end, err := time.Parse("2006-01-02", leave.EndDate)
	if err != nil {
		return
	}

	var rows []model.Attendance
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		date := d.Format("2006-01-02")
		// Days that already have a record (e.g. a clock-in before the
		// request was decided) are left alone.
		if existing, _ := h.attendanceRepo.GetByDate(leave.UserID, date); existing != nil {
			continue
		}
		rows = append(rows, model.Attendance{
			UserID: leave.UserID,
			Date:   date,
			Status: model.StatusLeave,
		})
	}

	if len(rows) > 0 {
		h.attendanceRepo.CreateMany(rows)
	}
}

func (h *LeaveHandler) notifyRequester(leave *model.LeaveRequest) {
	user, err := h.userRepo.FindByID(leave.UserID)
	if err != nil || user.Email == "" {
		return
	}
	h.mail.SendLeaveDecision(user.Email, leave.Status, leave.StartDate, leave.EndDate)
}
