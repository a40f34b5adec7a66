package jobs

import (
	"fmt"
	"log"
	"time"

	"temple-backend/models"
	"temple-backend/notifications"
	"temple-backend/store"
)

// SendSevaReminders emails every devotee with a confirmed booking for
// tomorrow. Scheduled once a day.
func SendSevaReminders(repo store.BookingRepository, mailer *notifications.SMTPMailer) {
	log.Println("Running job: SendSevaReminders...")

	bookings, err := repo.List()
	if err != nil {
		log.Printf("Error checking for upcoming sevas: %v", err)
		return
	}

	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	var due []models.Booking
	for _, b := range bookings {
		if b.Status == models.StatusConfirmed && b.Date == tomorrow {
			due = append(due, b)
		}
	}
	if len(due) == 0 {
		return
	}

	for _, booking := range due {
		log.Printf("Sending reminder for booking ID: %d", booking.ID)

		emailSubject := fmt.Sprintf("Reminder: Your Seva is Tomorrow - %s", booking.SevaName)
		emailBody := fmt.Sprintf(
			"<h1>Seva Reminder</h1><p>Dear %s,</p><p>This is a friendly reminder that your seva <b>%s</b> is scheduled for tomorrow (%s).</p><p>Please arrive 15 minutes early and carry your booking QR code (ID: %d).</p><p>Sri Vidyaranyapura Mutt</p>",
			booking.DevoteeName, booking.SevaName, booking.Date, booking.ID,
		)

		go func(to, subject, body string) {
			if _, err := mailer.SendHTML(to, subject, body); err != nil {
				log.Printf("🔥 Reminder email failed for %s: %v", to, err)
			}
		}(booking.Email, emailSubject, emailBody)
	}
}
