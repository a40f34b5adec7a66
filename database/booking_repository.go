package database

import (
	"errors"

	"gorm.io/gorm"

	"temple-backend/models"
	"temple-backend/store"
)

// BookingRepository is the Postgres-backed implementation of
// store.BookingRepository. The orchestrator never sees which one it talks to.
type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Append(b *models.Booking) error {
	var count int64
	if err := r.db.Model(&models.Booking{}).Where("id = ?", b.ID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return store.ErrDuplicateID
	}
	if err := r.db.Create(b).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return store.ErrDuplicateID
		}
		return err
	}
	return nil
}

func (r *BookingRepository) List() ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.db.Order("created_at asc").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingRepository) GetByID(id int64) (*models.Booking, error) {
	var b models.Booking
	if err := r.db.First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) GetByQRCode(code string) (*models.Booking, error) {
	var b models.Booking
	if err := r.db.First(&b, "qr_code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) UpdateStatus(id int64, status models.BookingStatus) (*models.Booking, error) {
	var b models.Booking
	if err := r.db.First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	b.Status = status
	if err := r.db.Save(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}
