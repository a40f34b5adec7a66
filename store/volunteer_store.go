package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"temple-backend/models"
)

// VolunteerStore keeps the volunteer roster in a JSON file.
type VolunteerStore struct {
	filename   string
	mu         sync.RWMutex
	volunteers []models.Volunteer
}

func NewVolunteerStore(filename string) (*VolunteerStore, error) {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return nil, err
	}
	s := &VolunteerStore{filename: filename}
	if _, err := os.Stat(filename); err == nil {
		fileData, err := os.ReadFile(filename)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(fileData, &s.volunteers); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *VolunteerStore) Append(v *models.Volunteer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.volunteers = append(s.volunteers, *v)
	if err := s.saveToFile(); err != nil {
		s.volunteers = s.volunteers[:len(s.volunteers)-1]
		return err
	}
	return nil
}

func (s *VolunteerStore) List() ([]models.Volunteer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Volunteer, len(s.volunteers))
	copy(out, s.volunteers)
	return out, nil
}

func (s *VolunteerStore) Remove(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.volunteers {
		if s.volunteers[i].ID == id {
			s.volunteers = append(s.volunteers[:i], s.volunteers[i+1:]...)
			return s.saveToFile()
		}
	}
	return ErrNotFound
}

func (s *VolunteerStore) saveToFile() error {
	fileData, err := json.MarshalIndent(s.volunteers, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.filename, fileData, 0644)
}
