package models

// ScanRecord is one manual QR verification from the dashboard. History is
// session-scoped and never persisted.
type ScanRecord struct {
	ID          string `json:"id"`
	BookingID   int64  `json:"bookingId"`
	DevoteeName string `json:"devoteeName"`
	SevaName    string `json:"sevaName"`
	ScanTime    string `json:"scanTime"`
	Status      string `json:"status"`
}
