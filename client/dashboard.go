package client

import (
	"context"
	"errors"
	"strconv"
	"time"
)

// Geolocation failures happen before any network call, exactly like the
// browser refusing or lacking navigator.geolocation.
var (
	ErrGeolocationUnsupported = errors.New("geolocation is not supported")
	ErrGeolocationDenied      = errors.New("geolocation permission denied")
	ErrRequestInFlight        = errors.New("a request is already in flight")
)

// GeoProvider stands in for navigator.geolocation.
type GeoProvider interface {
	CurrentLocation() (lat, lng float64, err error)
}

// DashboardView is the user dashboard: attendance history plus the
// clock-in/clock-out actions with their same-day guards.
type DashboardView struct {
	api *Client
	geo GeoProvider

	Attendance []AttendanceRecord
	loading    bool
}

func NewDashboardView(api *Client, geo GeoProvider) *DashboardView {
	return &DashboardView{api: api, geo: geo}
}

// Refresh re-fetches the caller's records. Every mutation ends here; the
// view never trusts its own optimistic state.
func (v *DashboardView) Refresh(ctx context.Context) error {
	var records []AttendanceRecord
	if err := v.api.get(ctx, "/api/attendance/my", &records); err != nil {
		return err
	}
	v.Attendance = records
	return nil
}

// todayRecord finds today's row, if any. "Today" is the Bangkok calendar day.
func (v *DashboardView) todayRecord() *AttendanceRecord {
	today := time.Now().UTC().Add(7 * time.Hour).Format("2006-01-02")
	for i := range v.Attendance {
		if v.Attendance[i].Date == today {
			return &v.Attendance[i]
		}
	}
	return nil
}

// CanClockIn is true only while today's record shows no clock-in yet.
func (v *DashboardView) CanClockIn() bool {
	rec := v.todayRecord()
	return rec == nil || (rec.ClockIn == "" && rec.Status != "Leave")
}

// CanClockOut is true only after a clock-in and before a clock-out.
func (v *DashboardView) CanClockOut() bool {
	rec := v.todayRecord()
	return rec != nil && rec.ClockIn != "" && rec.ClockOut == ""
}

// ClockIn captures the current position and posts it with method GPS, then
// re-fetches to resynchronize. Without a position there is no server call.
func (v *DashboardView) ClockIn(ctx context.Context) error {
	if v.loading {
		return ErrRequestInFlight
	}
	if v.geo == nil {
		return ErrGeolocationUnsupported
	}

	lat, lng, err := v.geo.CurrentLocation()
	if err != nil {
		return errors.Join(ErrGeolocationDenied, err)
	}

	v.loading = true
	defer func() { v.loading = false }()

	body := map[string]string{
		"method":   "GPS",
		"location": formatCoords(lat, lng),
	}
	if err := v.api.post(ctx, "/api/attendance/clockin", body, nil); err != nil {
		return err
	}
	return v.Refresh(ctx)
}

// ClockOut posts the clock-out event and re-fetches.
func (v *DashboardView) ClockOut(ctx context.Context) error {
	if v.loading {
		return ErrRequestInFlight
	}

	v.loading = true
	defer func() { v.loading = false }()

	if err := v.api.post(ctx, "/api/attendance/clockout", nil, nil); err != nil {
		return err
	}
	return v.Refresh(ctx)
}

// Loading reports whether a clock action is in flight (the disabled-button
// flag from the web dashboard).
func (v *DashboardView) Loading() bool {
	return v.loading
}

func formatCoords(lat, lng float64) string {
	return strconv.FormatFloat(lat, 'f', -1, 64) + "," + strconv.FormatFloat(lng, 'f', -1, 64)
}
