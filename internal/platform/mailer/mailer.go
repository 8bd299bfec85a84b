package mailer

import (
	"fmt"
	"io"

	"gopkg.in/gomail.v2"
)

// Mailer sends mail over SMTP. Used only by the backup service.
type Mailer struct {
	host string
	port int
	user string
	pass string
}

// NewMailer creates a new SMTP mailer.
func NewMailer(host string, port int, user, pass string) *Mailer {
	return &Mailer{host: host, port: port, user: user, pass: pass}
}

// SendBackup sends a single message with the snapshot attached.
func (m *Mailer) SendBackup(to, subject, body, filename string, attachment []byte) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", msg.FormatAddress(m.user, "Bookkeeping Backup"))
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	msg.Attach(filename, gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(attachment)
		return err
	}))

	dialer := gomail.NewDialer(m.host, m.port, m.user, m.pass)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("smtp send failed: %w", err)
	}
	return nil
}
