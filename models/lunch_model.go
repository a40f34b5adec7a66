package models

// LunchAttendance tracks tirtha prasada headcounts per booking. A record is
// created when a booking requests the meal add-on and checked in from the
// dashboard.
type LunchAttendance struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Hall        string `json:"hall,omitempty"`
	Count       int    `json:"count"`
	CheckedIn   bool   `json:"checkedIn"`
	CheckInTime string `json:"checkInTime,omitempty"`
	QRCode      string `json:"qrCode"`
}
