package store

import (
	"errors"

	"temple-backend/models"
)

var (
	ErrDuplicateID = errors.New("booking id already exists")
	ErrNotFound    = errors.New("record not found")
)

// BookingRepository is the system of record for bookings. The default
// implementation persists to a JSON file; database.BookingRepository backs
// the same contract with Postgres. Bookings are append-only: after creation
// only the status field changes.
type BookingRepository interface {
	Append(b *models.Booking) error
	List() ([]models.Booking, error)
	GetByID(id int64) (*models.Booking, error)
	GetByQRCode(code string) (*models.Booking, error)
	UpdateStatus(id int64, status models.BookingStatus) (*models.Booking, error)
}
