package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"temple-backend/models"
)

// LunchStore keeps tirtha prasada attendance in a JSON file.
type LunchStore struct {
	filename string
	mu       sync.RWMutex
	entries  []models.LunchAttendance
}

func NewLunchStore(filename string) (*LunchStore, error) {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return nil, err
	}
	s := &LunchStore{filename: filename}
	if _, err := os.Stat(filename); err == nil {
		fileData, err := os.ReadFile(filename)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(fileData, &s.entries); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *LunchStore) Append(e *models.LunchAttendance) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, *e)
	if err := s.saveToFile(); err != nil {
		s.entries = s.entries[:len(s.entries)-1]
		return err
	}
	return nil
}

func (s *LunchStore) List() ([]models.LunchAttendance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.LunchAttendance, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

// CheckIn marks an attendee present and stamps the check-in time.
func (s *LunchStore) CheckIn(id int64) (*models.LunchAttendance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.entries {
		if s.entries[i].ID == id {
			prev := s.entries[i]
			s.entries[i].CheckedIn = true
			s.entries[i].CheckInTime = time.Now().Format("3:04:05 PM")
			if err := s.saveToFile(); err != nil {
				s.entries[i] = prev
				return nil, err
			}
			e := s.entries[i]
			return &e, nil
		}
	}
	return nil, ErrNotFound
}

func (s *LunchStore) saveToFile() error {
	fileData, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.filename, fileData, 0644)
}
