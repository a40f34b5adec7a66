package notifications

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log"
	"net/smtp"
	"strings"
	"time"

	config "temple-backend/configs"
	"temple-backend/models"
)

// SMTPMailer sends rendered HTML through a configured relay. Connection/auth
// failures and send failures surface as distinct errors; both abort delivery.
type SMTPMailer struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

func NewSMTPMailerFromEnv() *SMTPMailer {
	return &SMTPMailer{
		Host:     config.Config("EMAIL_HOST"),
		Port:     config.ConfigOr("EMAIL_PORT", "587"),
		Username: config.Config("EMAIL_USER"),
		Password: config.Config("EMAIL_PASS"),
		From:     config.Config("EMAIL_FROM"),
	}
}

func (m *SMTPMailer) Name() string { return "smtp" }

func (m *SMTPMailer) configured() bool {
	return m.Host != "" && m.Port != "" && m.Username != "" && m.Password != "" && m.From != ""
}

// Send renders the confirmation email and relays it to the devotee.
func (m *SMTPMailer) Send(_ context.Context, b *models.Booking, qr QRRef) error {
	html, err := RenderConfirmation(b, qr)
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("Seva Booking Confirmation - %s (ID: %d)", b.SevaName, b.ID)
	_, err = m.SendHTML(b.Email, subject, html)
	return err
}

// SendCompletion relays the post-visit thank-you email.
func (m *SMTPMailer) SendCompletion(b *models.Booking, checkInTime string) error {
	html, err := RenderCompletion(b, checkInTime)
	if err != nil {
		return err
	}
	_, err = m.SendHTML(b.Email, "Thank You for Your Visit - Vidyaranyapura Mutt", html)
	return err
}

// SendHTML relays an HTML body and returns the generated Message-ID.
func (m *SMTPMailer) SendHTML(to, subject, htmlBody string) (string, error) {
	if !m.configured() {
		return "", errors.New("smtp relay not configured: set EMAIL_HOST, EMAIL_PORT, EMAIL_USER, EMAIL_PASS and EMAIL_FROM")
	}
	if to == "" || !strings.Contains(to, "@") {
		return "", fmt.Errorf("invalid recipient email: %q", to)
	}

	addr := fmt.Sprintf("%s:%s", m.Host, m.Port)
	messageID := fmt.Sprintf("<%d@%s>", time.Now().UnixNano(), m.Host)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", m.From))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", to))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", sanitizeHeader(subject)))
	sb.WriteString(fmt.Sprintf("Message-ID: %s\r\n", messageID))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
	sb.WriteString(htmlBody + "\r\n")

	client, err := smtp.Dial(addr)
	if err != nil {
		return "", fmt.Errorf("smtp connection failed: %w", err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: m.Host}); err != nil {
			return "", fmt.Errorf("smtp connection failed: %w", err)
		}
	}
	auth := smtp.PlainAuth("", m.Username, m.Password, m.Host)
	if ok, _ := client.Extension("AUTH"); ok {
		if err := client.Auth(auth); err != nil {
			return "", fmt.Errorf("smtp auth failed: %w", err)
		}
	}

	if err := client.Mail(m.From); err != nil {
		return "", fmt.Errorf("smtp send failed: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return "", fmt.Errorf("smtp send failed: %w", err)
	}
	w, err := client.Data()
	if err != nil {
		return "", fmt.Errorf("smtp send failed: %w", err)
	}
	if _, err := w.Write([]byte(sb.String())); err != nil {
		return "", fmt.Errorf("smtp send failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("smtp send failed: %w", err)
	}
	if err := client.Quit(); err != nil {
		log.Printf("smtp quit: %v", err)
	}

	log.Printf("✅ Email sent to %s (message id %s)", to, messageID)
	return messageID, nil
}

func sanitizeHeader(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r", " "), "\n", " ")
}
