package mailer

import (
	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

// Notifier sends a best-effort notification. Implementations report
// whether the message went out but never fail the caller.
type Notifier interface {
	Notify(subject, recipient, body string) bool
}

// SMTP sends mail through a single SMTP account. With no username
// configured the feature is disabled and Notify is a no-op.
type SMTP struct {
	host     string
	port     int
	username string
	password string
	sender   string
}

func NewSMTP(host string, port int, username, password, sender string) *SMTP {
	return &SMTP{
		host:     host,
		port:     port,
		username: username,
		password: password,
		sender:   sender,
	}
}

func (m *SMTP) Notify(subject, recipient, body string) bool {
	if m.username == "" {
		return false
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", recipient)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	dialer := gomail.NewDialer(m.host, m.port, m.username, m.password)
	if err := dialer.DialAndSend(msg); err != nil {
		logrus.WithError(err).WithField("recipient", recipient).
			Warn("failed to send notification email")
		return false
	}
	return true
}
