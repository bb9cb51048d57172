package utils

import (
	log "github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"

	"github.com/bloomwellness/studio-api/config"
)

// Notify sends a best-effort email to the studio inbox. It is a no-op when
// SMTP is not configured, and failures are logged rather than surfaced so
// a notification can never fail the request that triggered it.
func Notify(cfg *config.Config, subject, body string) {
	if cfg.SMTPHost == "" || cfg.NotifyEmail == "" {
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", cfg.SMTPUser)
	m.SetHeader("To", cfg.NotifyEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	if err := d.DialAndSend(m); err != nil {
		log.WithError(err).Warn("Failed to send notification email")
	}
}
