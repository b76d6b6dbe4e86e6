package notification

import (
	"bid-engine/utils"

	"gopkg.in/gomail.v2"
)

// SMTPSender delivers messages through an SMTP relay
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPSender creates a sender for the given relay
func NewSMTPSender(host string, port int, user, pass, from string) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(host, port, user, pass),
		from:   from,
	}
}

func (s *SMTPSender) Deliver(msg Message) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)
	return s.dialer.DialAndSend(m)
}

// LogSender writes messages to the log instead of sending them. Used when no SMTP
// relay is configured.
type LogSender struct{}

func (LogSender) Deliver(msg Message) error {
	utils.Info("notification: email (not sent, no SMTP relay configured)", map[string]any{
		"to":      msg.To,
		"subject": msg.Subject,
	})
	return nil
}
