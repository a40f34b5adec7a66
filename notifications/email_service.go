package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	config "temple-backend/configs"
	"temple-backend/models"
	"temple-backend/utils"
)

// ErrNoConnection is reported when the provider host is unreachable before
// the send is even attempted.
var ErrNoConnection = errors.New("no connection")

// EmailJSClient submits bookings to the EmailJS template-based send API.
// The service/template/public-key triple is fixed per deployment and the
// client is initialized once.
type EmailJSClient struct {
	ServiceID  string
	TemplateID string
	PublicKey  string
	BaseURL    string
	HTTPClient *http.Client
}

type emailjsPayload struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

func NewEmailJSClientFromEnv() (*EmailJSClient, error) {
	serviceID := config.Config("EMAILJS_SERVICE_ID")
	templateID := config.Config("EMAILJS_TEMPLATE_ID")
	publicKey := config.Config("EMAILJS_PUBLIC_KEY")
	if serviceID == "" || templateID == "" || publicKey == "" {
		return nil, errors.New("emailjs not configured: set EMAILJS_SERVICE_ID, EMAILJS_TEMPLATE_ID and EMAILJS_PUBLIC_KEY")
	}
	return &EmailJSClient{
		ServiceID:  serviceID,
		TemplateID: templateID,
		PublicKey:  publicKey,
		BaseURL:    "https://api.emailjs.com/api/v1.0/email/send",
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}, nil
}

func (s *EmailJSClient) Name() string { return "emailjs" }

// RequiresHostedQR reports that the provider template references the QR by
// URL; data URLs do not survive the template substitution.
func (s *EmailJSClient) RequiresHostedQR() bool { return true }

// Send flattens the booking into the provider's template field map and posts
// it. The hosted QR URL must already be resolved by the caller.
func (s *EmailJSClient) Send(ctx context.Context, b *models.Booking, qr QRRef) error {
	if err := s.checkConnectivity(); err != nil {
		return err
	}

	payload := emailjsPayload{
		ServiceID:      s.ServiceID,
		TemplateID:     s.TemplateID,
		UserID:         s.PublicKey,
		TemplateParams: flattenBooking(b, qr),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseURL, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("content-type", "application/json")

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %v", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		log.Printf("🔥 EmailJS error: status %d, body: %s", resp.StatusCode, string(respBody))
		return fmt.Errorf("email sending failed: %s", classifyStatus(resp.StatusCode))
	}

	log.Printf("✅ EmailJS accepted booking %d for %s", b.ID, b.Email)
	return nil
}

// checkConnectivity probes the provider host so an offline deployment reports
// "no connection" instead of a generic transport error.
func (s *EmailJSClient) checkConnectivity() error {
	u, err := url.Parse(s.BaseURL)
	if err != nil {
		return err
	}
	host := u.Host
	if u.Port() == "" {
		host = net.JoinHostPort(u.Hostname(), "443")
	}
	conn, err := net.DialTimeout("tcp", host, 3*time.Second)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNoConnection, err)
	}
	conn.Close()
	return nil
}

// classifyStatus maps provider response codes to operator-readable reasons.
// Every classification resolves to the same user-facing fallback message.
func classifyStatus(status int) string {
	switch {
	case status == http.StatusBadRequest:
		return "invalid email configuration or missing required fields"
	case status == http.StatusUnauthorized:
		return "authentication error with email service"
	case status == http.StatusTooManyRequests:
		return "too many requests, try again later"
	case status >= http.StatusInternalServerError:
		return "email service server error"
	default:
		return fmt.Sprintf("unexpected status %d", status)
	}
}

const notProvided = "not-provided"

func orNotProvided(s string) string {
	if s == "" {
		return notProvided
	}
	return s
}

// flattenBooking coerces every field to a display string for the provider
// template, substituting 'not-provided' for missing values.
func flattenBooking(b *models.Booking, qr QRRef) map[string]string {
	tirtha := "Not required"
	if b.LunchCost > 0 {
		tirtha = fmt.Sprintf("%s (%d people × ₹250)", utils.FormatRupees(b.LunchCost), b.TirthaPrasadaCount)
	}
	return map[string]string{
		"to_email":       orNotProvided(b.Email),
		"devotee_name":   orNotProvided(b.DevoteeName),
		"seva_name":      orNotProvided(b.SevaName),
		"seva_date":      orNotProvided(b.Date),
		"booking_id":     strconv.FormatInt(b.ID, 10),
		"qr_id":          strconv.FormatInt(b.ID, 10),
		"qr_code":        orNotProvided(qr.HostedURL),
		"time":           orNotProvided(b.Time),
		"people_count":   orNotProvided(b.NumberOfPeople),
		"gotra":          orNotProvided(b.Gotra),
		"nakshatra":      orNotProvided(b.Nakshatra),
		"hall_location":  orNotProvided(b.Hall),
		"seva_cost":      utils.FormatRupees(b.SevaCost),
		"tirtha_prasada": tirtha,
		"total_cost":     utils.FormatRupees(b.TotalCost),
	}
}
