package client

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrValidation marks local form failures. Nothing wrapped in it ever
// reached the network.
var ErrValidation = errors.New("validation failed")

// LeaveView is the leave request page: the caller's history plus the
// submission form with its client-side checks.
type LeaveView struct {
	api *Client

	Leaves []LeaveRecord
}

func NewLeaveView(api *Client) *LeaveView {
	return &LeaveView{api: api}
}

func (v *LeaveView) Refresh(ctx context.Context) error {
	var leaves []LeaveRecord
	if err := v.api.get(ctx, "/api/leave/my", &leaves); err != nil {
		return err
	}
	v.Leaves = leaves
	return nil
}

// Submit validates locally first: non-empty reason, both dates present and
// end not before start. Failures return before any request is built.
func (v *LeaveView) Submit(ctx context.Context, reason, startDate, endDate string) error {
	if reason == "" || startDate == "" || endDate == "" {
		return fmt.Errorf("%w: please fill in all fields", ErrValidation)
	}

	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return fmt.Errorf("%w: invalid start date", ErrValidation)
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return fmt.Errorf("%w: invalid end date", ErrValidation)
	}
	if end.Before(start) {
		return fmt.Errorf("%w: end date must be after start date", ErrValidation)
	}

	body := map[string]string{
		"reason":    reason,
		"startDate": startDate,
		"endDate":   endDate,
	}
	if err := v.api.post(ctx, "/api/leave/request", body, nil); err != nil {
		return err
	}
	return v.Refresh(ctx)
}

// Pending returns the still-undecided requests.
func (v *LeaveView) Pending() []LeaveRecord {
	var out []LeaveRecord
	for _, l := range v.Leaves {
		if l.Status == "PENDING" {
			out = append(out, l)
		}
	}
	return out
}

// History returns the decided requests (approved or rejected).
func (v *LeaveView) History() []LeaveRecord {
	var out []LeaveRecord
	for _, l := range v.Leaves {
		if l.Status != "PENDING" {
			out = append(out, l)
		}
	}
	return out
}

// BadgeColor maps a leave status to its badge color, as on the web table.
func BadgeColor(status string) string {
	switch status {
	case "APPROVED":
		return "success"
	case "REJECTED":
		return "danger"
	case "PENDING":
		return "warning"
	default:
		return "secondary"
	}
}
