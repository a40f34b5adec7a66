package models

import "time"

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
)

// ValidStatus reports whether s is one of the known lifecycle states.
func ValidStatus(s BookingStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted:
		return true
	}
	return false
}

type BookingKind string

const (
	KindSeva BookingKind = "seva"
	KindHall BookingKind = "hall"
)

// Booking is the central record created once per submission. The ID doubles
// as the QR payload; QRCode always holds the ID rendered as a string.
type Booking struct {
	ID          int64       `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Kind        BookingKind `json:"kind" gorm:"size:10;not null"`
	SevaName    string      `json:"sevaName" gorm:"size:120;not null"`
	DevoteeName string      `json:"devoteeName" gorm:"size:120;not null"`
	Email       string      `json:"email" gorm:"size:120;not null"`
	Phone       string      `json:"phone" gorm:"size:30;not null"`
	Date        string      `json:"date" gorm:"size:10;not null"`
	Time        string      `json:"time" gorm:"size:60"`

	NumberOfPeople string `json:"numberOfPeople" gorm:"size:20"`
	Gotra          string `json:"gotra,omitempty" gorm:"size:60"`
	Nakshatra      string `json:"nakshatra,omitempty" gorm:"size:60"`
	Hall           string `json:"hall,omitempty" gorm:"size:60"`

	EventType        string `json:"eventType,omitempty" gorm:"size:60"`
	EventDescription string `json:"eventDescription,omitempty" gorm:"type:text"`

	TirthaPrasadaRequired bool   `json:"tirthaPrasadaRequired"`
	TirthaPrasadaCount    int    `json:"tirthaPrasadaCount"`
	LunchHall             string `json:"lunchHall,omitempty" gorm:"size:60"`
	SpecialRequests       string `json:"specialRequests,omitempty" gorm:"type:text"`

	// Whole-rupee amounts, no paise.
	SevaCost  int64 `json:"sevaCost"`
	LunchCost int64 `json:"lunchCost"`
	TotalCost int64 `json:"totalCost"`

	Status BookingStatus `json:"status" gorm:"size:20;not null;default:'confirmed'"`
	QRCode string        `json:"qrCode" gorm:"size:30;not null"`

	CreatedAt time.Time `json:"createdAt"`
}
