package notify

import (
	"gopkg.in/gomail.v2"

	"complaintdesk/backend/internal/config"
)

// Mailer delivers a single formatted message to the administrator.
type Mailer interface {
	Send(subject, htmlBody string) error
}

// SMTPMailer sends email over SMTP with the sender credentials from the
// environment. All mail goes to the fixed administrator address.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

// NewSMTPMailer creates a mailer for the given transport and addresses.
func NewSMTPMailer(host string, port int, user, pass, admin string) *SMTPMailer {
	d := gomail.NewDialer(host, port, user, pass)
	d.SSL = port == 465
	return &SMTPMailer{dialer: d, from: user, to: admin}
}

func (m *SMTPMailer) Send(subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.from, config.SenderDisplayName)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)
	return m.dialer.DialAndSend(msg)
}
