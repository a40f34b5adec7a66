package notifications

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"temple-backend/models"
	"temple-backend/utils"
)

// QRRef carries the generated QR image in both shapes the delivery paths
// need: an inline data URL and, when the image host upload ran, a hosted URL.
type QRRef struct {
	DataURL   string
	HostedURL string
}

// ImageSrc prefers the hosted URL so mail clients that strip data URLs still
// show the code.
func (q QRRef) ImageSrc() string {
	if q.HostedURL != "" {
		return q.HostedURL
	}
	return q.DataURL
}

const (
	notSpecified = "Not specified"
	emDash       = "—"
)

// confirmationView pre-formats every booking field so the template has no
// conditionals left to evaluate. Rendering the same booking twice yields
// byte-identical HTML.
type confirmationView struct {
	ID             int64
	DevoteeName    string
	Email          string
	Phone          string
	SevaName       string
	Date           string
	Time           string
	NumberOfPeople string
	Gotra          string
	Nakshatra      string
	Hall           string
	TirthaPrasada  string
	TirthaCount    string
	LunchHall      string
	SevaCost       string
	LunchCost      string
	TotalCost      string
	SpecialReqs    string
	QRCode         string
	QRImageSrc     template.URL
}

func fallback(s, placeholder string) string {
	if s == "" {
		return placeholder
	}
	return s
}

func formatDate(raw string) string {
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return raw
	}
	return t.Format("2 January 2006")
}

func buildConfirmationView(b *models.Booking, qr QRRef) confirmationView {
	tirtha := "No"
	tirthaCount := emDash
	if b.TirthaPrasadaRequired {
		tirtha = fmt.Sprintf("Yes (%d people)", b.TirthaPrasadaCount)
		tirthaCount = fmt.Sprintf("%d", b.TirthaPrasadaCount)
	}
	return confirmationView{
		ID:             b.ID,
		DevoteeName:    fallback(b.DevoteeName, "Devotee"),
		Email:          b.Email,
		Phone:          b.Phone,
		SevaName:       b.SevaName,
		Date:           formatDate(b.Date),
		Time:           fallback(b.Time, emDash),
		NumberOfPeople: fallback(b.NumberOfPeople, emDash),
		Gotra:          fallback(b.Gotra, notSpecified),
		Nakshatra:      fallback(b.Nakshatra, notSpecified),
		Hall:           fallback(b.Hall, emDash),
		TirthaPrasada:  tirtha,
		TirthaCount:    tirthaCount,
		LunchHall:      fallback(b.LunchHall, emDash),
		SevaCost:       utils.FormatRupees(b.SevaCost),
		LunchCost:      utils.FormatRupees(b.LunchCost),
		TotalCost:      utils.FormatRupees(b.TotalCost),
		SpecialReqs:    fallback(b.SpecialRequests, "None"),
		QRCode:         b.QRCode,
		QRImageSrc:     template.URL(qr.ImageSrc()),
	}
}

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Seva Booking Confirmation</title>
</head>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; margin: 0; padding: 20px;">
<div style="max-width: 600px; margin: auto; background-color: #ffffff; padding: 30px; border-radius: 10px;">

  <h1 style="color: #d97706; text-align: center;">Sri Vidyaranyapura Mutt</h1>
  <h2 style="text-align: center; color: #333;">Seva Booking Confirmation</h2>

  <p>Dear <strong>{{.DevoteeName}}</strong>,</p>
  <p>Your seva booking has been <strong style="color: green;">successfully confirmed</strong>.</p>

  <div style="background-color: #fef3c7; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3 style="color: #92400e; margin-top: 0;">Booking Details</h3>
    <p><strong>Booking ID:</strong> {{.ID}}</p>
    <p><strong>Devotee Name:</strong> {{.DevoteeName}}</p>
    <p><strong>Email:</strong> {{.Email}}</p>
    <p><strong>Phone:</strong> {{.Phone}}</p>
    <p><strong>Seva:</strong> {{.SevaName}}</p>
    <p><strong>Date:</strong> {{.Date}}</p>
    <p><strong>Time:</strong> {{.Time}}</p>
    <p><strong>Number of People:</strong> {{.NumberOfPeople}}</p>
    <p><strong>Gotra:</strong> {{.Gotra}}</p>
    <p><strong>Nakshatra:</strong> {{.Nakshatra}}</p>
    <p><strong>Hall:</strong> {{.Hall}}</p>
    <p><strong>Tirtha Prasada Required:</strong> {{.TirthaPrasada}}</p>
    <p><strong>Tirtha Prasada Count:</strong> {{.TirthaCount}}</p>
    <p><strong>Tirtha Prasada Hall:</strong> {{.LunchHall}}</p>
    <p><strong>Seva Cost:</strong> {{.SevaCost}}</p>
    <p><strong>Tirtha Prasada Cost:</strong> {{.LunchCost}}</p>
    <p><strong>Total Cost:</strong> <strong>{{.TotalCost}}</strong></p>
    <p><strong>Special Requests:</strong> {{.SpecialReqs}}</p>
  </div>

  <div style="text-align: center; margin: 30px 0;">
    <h3>Your QR Code for Check-in</h3>
    <img src="{{.QRImageSrc}}" alt="QR Code" style="max-width: 200px; border: 2px solid #d97706; border-radius: 8px;" />
    <p><strong>Booking / QR ID:</strong> {{.QRCode}}</p>
    <p style="font-size: 13px; color: #555;">Please show this QR code or Booking ID at the temple entrance.</p>
  </div>

  <div style="background-color: #ecfdf5; padding: 20px; border-radius: 8px;">
    <h3 style="color: #065f46; margin-top: 0;">Important Instructions</h3>
    <ul style="color: #065f46;">
      <li>Please arrive 15 minutes before your scheduled time</li>
      <li>Carry a valid ID proof</li>
      <li>Show this email or QR code at the counter</li>
      <li>Maintain silence and decorum inside the temple</li>
    </ul>
  </div>

  <div style="text-align: center; margin-top: 30px; border-top: 1px solid #e5e7eb; padding-top: 20px;">
    <p style="font-size: 13px; color: #666;">
      Sri Vidyaranyapura Mutt<br/>
      Vidyaranyapura, Bangalore
    </p>
  </div>

</div>
</body>
</html>
`))

// RenderConfirmation fills the confirmation template. It is pure: the output
// depends only on the booking and the supplied QR reference.
func RenderConfirmation(b *models.Booking, qr QRRef) (string, error) {
	var buf bytes.Buffer
	if err := confirmationTmpl.Execute(&buf, buildConfirmationView(b, qr)); err != nil {
		return "", fmt.Errorf("render confirmation email: %w", err)
	}
	return buf.String(), nil
}

type completionView struct {
	DevoteeName string
	SevaName    string
	Date        string
	CheckInTime string
}

var completionTmpl = template.Must(template.New("completion").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Thank You - Vidyaranyapura Mutt</title>
</head>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; margin: 0; padding: 20px;">
<div style="max-width: 600px; margin: auto; background-color: #ffffff; padding: 30px; border-radius: 10px;">

  <h1 style="color: #d97706; text-align: center;">Sri Vidyaranyapura Mutt</h1>
  <h2 style="text-align: center; color: #ff6b35;">Thank You for Your Visit!</h2>

  <p>Dear {{.DevoteeName}},</p>
  <p>We hope you had a blessed experience at our mutt. Your presence made the occasion
  more special, and we are grateful for your participation in the divine service.</p>

  <div style="background-color: #fef3c7; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3 style="color: #92400e; margin-top: 0;">Your Seva Details</h3>
    <p><strong>Seva:</strong> {{.SevaName}}</p>
    <p><strong>Date:</strong> {{.Date}}</p>
    <p><strong>Checked In:</strong> {{.CheckInTime}}</p>
  </div>

  <p style="font-style: italic; color: #ff6b35; text-align: center;">
    May Lord Raghavendra continue to shower his blessings upon you and your family.
  </p>

  <div style="text-align: center; margin-top: 30px; border-top: 1px solid #e5e7eb; padding-top: 20px;">
    <p style="font-size: 13px; color: #666;">
      Sri Vidyaranyapura Mutt<br/>
      Vidyaranyapura, Bangalore
    </p>
  </div>

</div>
</body>
</html>
`))

// RenderCompletion fills the post-visit thank-you template. The check-in time
// is caller-supplied so rendering stays deterministic.
func RenderCompletion(b *models.Booking, checkInTime string) (string, error) {
	view := completionView{
		DevoteeName: fallback(b.DevoteeName, "Devotee"),
		SevaName:    b.SevaName,
		Date:        formatDate(b.Date),
		CheckInTime: fallback(checkInTime, emDash),
	}
	var buf bytes.Buffer
	if err := completionTmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("render completion email: %w", err)
	}
	return buf.String(), nil
}
