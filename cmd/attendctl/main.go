package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"attenda/client"

	"github.com/joho/godotenv"
)

// attendctl is the terminal shell over the ATTENDA API: the same views the
// web client has, gated on the role persisted in the session file.

func main() {
	godotenv.Load()

	baseURL := os.Getenv("ATTENDA_API")
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}
	sessionPath := os.Getenv("ATTENDA_SESSION")
	if sessionPath == "" {
		sessionPath = client.DefaultSessionPath()
	}

	session, err := client.LoadSession(sessionPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load session:", err)
		os.Exit(1)
	}
	api := client.New(baseURL, session)

	if len(os.Args) < 2 {
		usage(session)
		os.Exit(1)
	}

	ctx := context.Background()
	cmd := os.Args[1]
	args := os.Args[2:]

	var cmdErr error
	switch cmd {
	case "login":
		cmdErr = runLogin(ctx, api, args)
	case "logout":
		cmdErr = api.Logout()
		if cmdErr == nil {
			fmt.Println("Logged out.")
		}
	case "status":
		runStatus(session)
	case "clockin":
		cmdErr = runClockIn(ctx, api, args)
	case "clockout":
		cmdErr = runClockOut(ctx, api)
	case "history":
		cmdErr = runHistory(ctx, api, args)
	case "leave":
		cmdErr = runLeave(ctx, api, args)
	case "profile":
		cmdErr = runProfile(ctx, api, args)
	case "admin":
		if !session.IsAdmin() {
			cmdErr = errors.New("admin commands require the ADMIN role")
		} else {
			cmdErr = runAdmin(ctx, api, args)
		}
	default:
		usage(session)
		os.Exit(1)
	}

	if cmdErr != nil {
		fmt.Fprintln(os.Stderr, "Error:", cmdErr)
		os.Exit(1)
	}
}

// usage shows only what the current role can do, like the navbar does.
func usage(session *client.Session) {
	fmt.Println("attendctl — ATTENDA time and attendance")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  login -email <email> -password <password>")
	fmt.Println("  logout")
	fmt.Println("  status")
	if !session.IsAdmin() {
		fmt.Println("  clockin -lat <lat> -lng <lng>")
		fmt.Println("  clockout")
		fmt.Println("  history [-page N] [-size N]")
		fmt.Println("  leave list | leave request -reason <text> -start <date> -end <date>")
	}
	fmt.Println("  profile show | profile edit [-name ...] [-phone ...] [-position ...]")
	if session.IsAdmin() {
		fmt.Println("  admin users [-role USER|ADMIN] [-page N]")
		fmt.Println("  admin leaves")
		fmt.Println("  admin approve -id <id> | admin reject -id <id>")
		fmt.Println("  admin rename -id <id> -username <name>")
		fmt.Println("  admin delete -id <id> [-yes]")
		fmt.Println("  admin attendance")
	}
}

func runLogin(ctx context.Context, api *client.Client, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	fs.Parse(args)

	if err := api.Login(ctx, *email, *password); err != nil {
		return err
	}
	fmt.Printf("Logged in as %s (%s)\n", api.Session.Email, api.Session.Role)
	return nil
}

func runStatus(session *client.Session) {
	if !session.LoggedIn() {
		fmt.Println("Not logged in.")
		return
	}
	fmt.Printf("Logged in as %s, role %s\n", session.Email, session.Role)
}

// staticGeo is the CLI's stand-in for the browser geolocation API: the
// coordinates come from flags instead of a GPS fix.
type staticGeo struct {
	lat, lng float64
}

func (g staticGeo) CurrentLocation() (float64, float64, error) {
	return g.lat, g.lng, nil
}

func runClockIn(ctx context.Context, api *client.Client, args []string) error {
	fs := flag.NewFlagSet("clockin", flag.ExitOnError)
	lat := fs.Float64("lat", 0, "latitude")
	lng := fs.Float64("lng", 0, "longitude")
	fs.Parse(args)

	var geo client.GeoProvider
	latSet, lngSet := false, false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "lat" {
			latSet = true
		}
		if f.Name == "lng" {
			lngSet = true
		}
	})
	if latSet && lngSet {
		geo = staticGeo{lat: *lat, lng: *lng}
	}

	view := client.NewDashboardView(api, geo)
	if err := view.Refresh(ctx); err != nil {
		return err
	}
	if !view.CanClockIn() {
		return errors.New("you have already clocked in today")
	}
	if err := view.ClockIn(ctx); err != nil {
		return err
	}
	fmt.Println("Clocked in.")
	return nil
}

func runClockOut(ctx context.Context, api *client.Client) error {
	view := client.NewDashboardView(api, nil)
	if err := view.Refresh(ctx); err != nil {
		return err
	}
	if !view.CanClockOut() {
		return errors.New("you have not clocked in today (or already clocked out)")
	}
	if err := view.ClockOut(ctx); err != nil {
		return err
	}
	fmt.Println("Clocked out.")
	return nil
}

func runHistory(ctx context.Context, api *client.Client, args []string) error {
	fs := flag.NewFlagSet("history", flag.ExitOnError)
	page := fs.Int("page", 1, "page number")
	size := fs.Int("size", 10, "rows per page")
	fs.Parse(args)

	view := client.NewDashboardView(api, nil)
	if err := view.Refresh(ctx); err != nil {
		return err
	}

	records := view.Attendance
	lo, hi := client.PageBounds(len(records), *page, *size)
	fmt.Printf("Attendance history (page %d of %d)\n", *page, client.PageCount(len(records), *size))
	fmt.Println("Date        Clock In              Clock Out             Status    Method  Location")
	for _, a := range records[lo:hi] {
		fmt.Printf("%-11s %-21s %-21s %-9s %-7s %s\n",
			a.Date,
			client.FormatDateTime(a.ClockIn),
			client.FormatDateTime(a.ClockOut),
			a.Status, a.Method, a.Location)
	}
	return nil
}

func runLeave(ctx context.Context, api *client.Client, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: leave list | leave request")
	}
	view := client.NewLeaveView(api)

	switch args[0] {
	case "list":
		if err := view.Refresh(ctx); err != nil {
			return err
		}
		fmt.Println("Requested   Start       End         Status    Reason")
		for _, l := range view.Leaves {
			fmt.Printf("%-11s %-11s %-11s %-9s %s\n",
				client.FormatDate(l.CreatedAt),
				client.FormatDate(l.StartDate),
				client.FormatDate(l.EndDate),
				l.Status, l.Reason)
		}
		return nil
	case "request":
		fs := flag.NewFlagSet("leave request", flag.ExitOnError)
		reason := fs.String("reason", "", "reason for leave")
		start := fs.String("start", "", "start date (YYYY-MM-DD)")
		end := fs.String("end", "", "end date (YYYY-MM-DD)")
		fs.Parse(args[1:])

		if err := view.Submit(ctx, *reason, *start, *end); err != nil {
			return err
		}
		fmt.Println("Leave request submitted! Pending approval.")
		return nil
	default:
		return errors.New("usage: leave list | leave request")
	}
}

func runProfile(ctx context.Context, api *client.Client, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: profile show | profile edit")
	}
	view := client.NewProfileView(api)
	if err := view.Refresh(ctx); err != nil {
		return err
	}

	switch args[0] {
	case "show":
		f := view.Form
		fmt.Printf("Username:  %s\nEmail:     %s\nRole:      %s\nFull name: %s\nPhone:     %s\nPosition:  %s\n",
			f.Username, f.Email, f.Role, f.FullName, f.PhoneNumber, f.Position)
		return nil
	case "edit":
		fs := flag.NewFlagSet("profile edit", flag.ExitOnError)
		name := fs.String("name", view.Form.FullName, "full name")
		phone := fs.String("phone", view.Form.PhoneNumber, "phone number")
		position := fs.String("position", view.Form.Position, "position")
		fs.Parse(args[1:])

		view.Form.FullName = *name
		view.Form.PhoneNumber = *phone
		view.Form.Position = *position
		if err := view.Update(ctx); err != nil {
			return err
		}
		fmt.Println("Profile updated!")
		return nil
	default:
		return errors.New("usage: profile show | profile edit")
	}
}

func runAdmin(ctx context.Context, api *client.Client, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: admin users|leaves|approve|reject|rename|delete|attendance")
	}
	view := client.NewAdminView(api)

	switch args[0] {
	case "users":
		fs := flag.NewFlagSet("admin users", flag.ExitOnError)
		role := fs.String("role", "ALL", "filter: ALL, USER or ADMIN")
		page := fs.Int("page", 1, "page number")
		size := fs.Int("size", 10, "rows per page")
		fs.Parse(args[1:])

		if err := view.RefreshUsers(ctx); err != nil {
			return err
		}
		users := view.FilterUsers(*role)
		lo, hi := client.PageBounds(len(users), *page, *size)
		fmt.Printf("Users (page %d of %d)\n", *page, client.PageCount(len(users), *size))
		for _, u := range users[lo:hi] {
			fmt.Printf("%4d  %-20s %-30s %s\n", u.ID, u.Username, u.Email, u.Role)
		}
		return nil
	case "leaves":
		if err := view.RefreshLeaves(ctx); err != nil {
			return err
		}
		fmt.Println("Pending leave requests:")
		for _, l := range view.PendingLeaves {
			fmt.Printf("%4d  %-11s %-11s %s\n", l.ID, client.FormatDate(l.StartDate), client.FormatDate(l.EndDate), l.Reason)
		}
		return nil
	case "approve", "reject":
		fs := flag.NewFlagSet("admin "+args[0], flag.ExitOnError)
		id := fs.Int("id", 0, "leave request id")
		fs.Parse(args[1:])
		if *id <= 0 {
			return errors.New("-id is required")
		}
		var err error
		if args[0] == "approve" {
			err = view.Approve(ctx, uint(*id))
		} else {
			err = view.Reject(ctx, uint(*id))
		}
		if err != nil {
			return err
		}
		fmt.Println("Leave request", args[0]+"d.")
		return nil
	case "rename":
		fs := flag.NewFlagSet("admin rename", flag.ExitOnError)
		id := fs.Int("id", 0, "user id")
		username := fs.String("username", "", "new username")
		fs.Parse(args[1:])
		if err := view.UpdateUsername(ctx, uint(*id), *username); err != nil {
			return err
		}
		fmt.Println("User updated.")
		return nil
	case "delete":
		fs := flag.NewFlagSet("admin delete", flag.ExitOnError)
		id := fs.Int("id", 0, "user id")
		yes := fs.Bool("yes", false, "skip the confirmation prompt")
		fs.Parse(args[1:])
		if *id <= 0 {
			return errors.New("-id is required")
		}

		confirm := func() bool {
			if *yes {
				return true
			}
			fmt.Printf("Are you sure you want to delete user %d? [y/N] ", *id)
			var answer string
			fmt.Scanln(&answer)
			return answer == "y" || answer == "Y"
		}
		if err := view.DeleteUser(ctx, uint(*id), confirm); err != nil {
			return err
		}
		fmt.Println("Done.")
		return nil
	case "attendance":
		if err := view.RefreshAttendance(ctx); err != nil {
			return err
		}
		if err := view.RefreshUsers(ctx); err != nil {
			return err
		}
		s := view.Summary()
		fmt.Printf("Users: %d  Clock-ins: %d  Clock-outs: %d  Leave: %d\n",
			s.TotalUsers, s.TotalClockIn, s.TotalClockOut, s.TotalLeave)
		fmt.Println("User  Date        Clock In              Clock Out             Status")
		for _, a := range view.Attendance {
			fmt.Printf("%-5s %-11s %-21s %-21s %s\n",
				strconv.Itoa(int(a.ID)), a.Date,
				client.FormatDateTime(a.ClockIn),
				client.FormatDateTime(a.ClockOut),
				a.Status)
		}
		return nil
	default:
		return errors.New("unknown admin command: " + args[0])
	}
}
