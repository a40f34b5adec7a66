package notifications

import (
	"context"
	"fmt"

	config "temple-backend/configs"
	"temple-backend/models"
)

// Sender delivers a booking confirmation. The two implementations are the
// SMTP relay mailer and the EmailJS provider client; both receive the same
// logical inputs and report failure as a plain error consumed by the
// orchestrator.
type Sender interface {
	Name() string
	Send(ctx context.Context, b *models.Booking, qr QRRef) error
}

// NewSenderFromConfig picks the delivery strategy from EMAIL_PROVIDER
// ("smtp" or "emailjs", defaulting to smtp).
func NewSenderFromConfig() (Sender, error) {
	switch provider := config.ConfigOr("EMAIL_PROVIDER", "smtp"); provider {
	case "smtp":
		return NewSMTPMailerFromEnv(), nil
	case "emailjs":
		return NewEmailJSClientFromEnv()
	default:
		return nil, fmt.Errorf("unknown EMAIL_PROVIDER %q", provider)
	}
}
