package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
)

// Global mailer configuration, initialized once at startup.
var (
	smtpHost     string
	smtpPort     string
	smtpUsername string
	smtpPassword string
	auth         smtp.Auth
	templates    *template.Template
)

// InitMailer initializes the email sender with SMTP credentials and loads templates.
func InitMailer(host, port, username, password string) error {
	smtpHost = host
	smtpPort = port
	smtpUsername = username
	smtpPassword = password
	auth = smtp.PlainAuth("", smtpUsername, smtpPassword, smtpHost)

	var err error
	templates, err = template.ParseGlob("templates/*.html")
	if err != nil {
		return fmt.Errorf("failed to parse email templates: %w", err)
	}
	return nil
}

// SendEmail sends an HTML email using the named template. Failures are logged
// by callers; email delivery is best-effort and never blocks the request path.
func SendEmail(templateName, subject, toEmail string, data interface{}) error {
	if templates == nil {
		return fmt.Errorf("mailer not initialized")
	}

	t := templates.Lookup(templateName + ".html")
	if t == nil {
		return fmt.Errorf("template %s.html not found", templateName)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute template %s: %w", templateName, err)
	}

	msg := []byte("To: " + toEmail + "\r\n" +
		"From: " + smtpUsername + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-version: 1.0;\r\n" +
		"Content-Type: text/html; charset=\"UTF-8\";\r\n" +
		"\r\n" +
		body.String())

	addr := fmt.Sprintf("%s:%s", smtpHost, smtpPort)
	return smtp.SendMail(addr, auth, smtpUsername, []string{toEmail}, msg)
}
