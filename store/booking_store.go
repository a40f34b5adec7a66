package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"temple-backend/models"
)

// BookingStore keeps bookings in a JSON file, ordered by insertion. Each
// instance owns its file; there is no cross-process synchronization, which
// mirrors the per-client storage this replaces.
type BookingStore struct {
	filename string
	mu       sync.RWMutex
	bookings []models.Booking
}

func NewBookingStore(filename string) (*BookingStore, error) {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return nil, err
	}
	s := &BookingStore{filename: filename}
	if err := s.loadFromFile(); err != nil {
		return nil, err
	}
	return s, nil
}

// Append adds a booking. The store never holds two records with the same id.
func (s *BookingStore) Append(b *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bookings {
		if s.bookings[i].ID == b.ID {
			return ErrDuplicateID
		}
	}
	s.bookings = append(s.bookings, *b)

	if err := s.saveToFile(); err != nil {
		// The record must not be visible if it could not be made durable.
		s.bookings = s.bookings[:len(s.bookings)-1]
		return err
	}
	return nil
}

// List returns all bookings in insertion order.
func (s *BookingStore) List() ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out, nil
}

func (s *BookingStore) GetByID(id int64) (*models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.bookings {
		if s.bookings[i].ID == id {
			b := s.bookings[i]
			return &b, nil
		}
	}
	return nil, ErrNotFound
}

func (s *BookingStore) GetByQRCode(code string) (*models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.bookings {
		if s.bookings[i].QRCode == code {
			b := s.bookings[i]
			return &b, nil
		}
	}
	return nil, ErrNotFound
}

func (s *BookingStore) UpdateStatus(id int64, status models.BookingStatus) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bookings {
		if s.bookings[i].ID == id {
			prev := s.bookings[i].Status
			s.bookings[i].Status = status
			if err := s.saveToFile(); err != nil {
				s.bookings[i].Status = prev
				return nil, err
			}
			b := s.bookings[i]
			return &b, nil
		}
	}
	return nil, ErrNotFound
}

func (s *BookingStore) saveToFile() error {
	fileData, err := json.MarshalIndent(s.bookings, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.filename, fileData, 0644)
}

func (s *BookingStore) loadFromFile() error {
	if _, err := os.Stat(s.filename); os.IsNotExist(err) {
		return nil
	}
	fileData, err := os.ReadFile(s.filename)
	if err != nil {
		return err
	}
	return json.Unmarshal(fileData, &s.bookings)
}
