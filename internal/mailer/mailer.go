package mailer

import (
	"fmt"
	"log"

	"attenda/config"

	"gopkg.in/gomail.v2"
)

// Mailer sends the leave-decision notification. The handler holds this
// interface so tests can drop in a fake.
type Mailer interface {
	SendLeaveDecision(to, status, startDate, endDate string)
}

type smtpMailer struct {
	host string
	port int
	user string
	pass string
	from string
}

// NewFromEnv returns nil when SMTP_HOST is unset, which disables email
// entirely. Callers must treat a nil Mailer as "don't send".
func NewFromEnv() Mailer {
	host := config.GetEnv("SMTP_HOST", "")
	if host == "" {
		return nil
	}
	return &smtpMailer{
		host: host,
		port: config.GetEnvAsInt("SMTP_PORT", 587),
		user: config.GetEnv("SMTP_USER", ""),
		pass: config.GetEnv("SMTP_PASSWORD", ""),
		from: config.GetEnv("SMTP_FROM", "no-reply@attenda.local"),
	}
}

func (m *smtpMailer) SendLeaveDecision(to, status, startDate, endDate string) {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", fmt.Sprintf("Your leave request was %s", status))
	msg.SetBody("text/plain", fmt.Sprintf(
		"Your leave request for %s to %s has been %s.", startDate, endDate, status))

	d := gomail.NewDialer(m.host, m.port, m.user, m.pass)
	if err := d.DialAndSend(msg); err != nil {
		// Notification only; a failed mail must never fail the approval
		log.Println("mailer: failed to send leave decision:", err)
	}
}
