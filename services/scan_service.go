package services

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"temple-backend/models"
	"temple-backend/store"
)

const scanHistoryCap = 50

// ScanService verifies QR payloads against the booking record and keeps a
// short in-memory trail of recent scans for the dashboard. The trail is
// deliberately not persisted; it resets with the process.
type ScanService struct {
	Repo store.BookingRepository

	mu      sync.Mutex
	history []models.ScanRecord
}

func NewScanService(repo store.BookingRepository) *ScanService {
	return &ScanService{Repo: repo}
}

// Verify resolves a scanned payload to its booking. Unknown payloads are
// recorded in the trail too, flagged invalid.
func (s *ScanService) Verify(payload string) (*models.Booking, models.ScanRecord, error) {
	b, err := s.Repo.GetByQRCode(payload)

	rec := models.ScanRecord{
		ID:       uuid.New().String(),
		ScanTime: time.Now().Format("3:04:05 PM"),
	}
	if err != nil {
		rec.Status = "invalid"
		s.record(rec)
		return nil, rec, err
	}

	rec.BookingID = b.ID
	rec.DevoteeName = b.DevoteeName
	rec.SevaName = b.SevaName
	rec.Status = string(b.Status)
	s.record(rec)
	return b, rec, nil
}

// History returns the most recent scans, newest first.
func (s *ScanService) History(limit int) []models.ScanRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 || limit > len(s.history) {
		limit = len(s.history)
	}
	out := make([]models.ScanRecord, limit)
	for i := 0; i < limit; i++ {
		out[i] = s.history[len(s.history)-1-i]
	}
	return out
}

func (s *ScanService) record(rec models.ScanRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = append(s.history, rec)
	if len(s.history) > scanHistoryCap {
		s.history = s.history[len(s.history)-scanHistoryCap:]
	}
}
