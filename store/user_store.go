package store

import (
	"log"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"temple-backend/models"
)

// UserStore holds the demo dashboard accounts. There is no registration or
// persistence; the fixed credential list is hashed and seeded at boot.
type UserStore struct {
	mu    sync.RWMutex
	users []models.User
}

type SeedUser struct {
	ID       int
	Name     string
	Email    string
	Password string
	Role     string
}

// DemoUsers is the fixed credential list the dashboard ships with.
var DemoUsers = []SeedUser{
	{ID: 1, Name: "Gururaj Patil", Email: "gururaj@volunteer.com", Password: "volunteer123", Role: models.RoleVolunteer},
	{ID: 2, Name: "Admin User", Email: "admin@temple.com", Password: "admin123", Role: models.RoleAdmin},
}

func NewUserStore(seed []SeedUser) (*UserStore, error) {
	s := &UserStore{}
	for _, u := range seed {
		hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		s.users = append(s.users, models.User{
			ID:       u.ID,
			Name:     u.Name,
			Email:    u.Email,
			Password: string(hashed),
			Role:     u.Role,
		})
	}
	log.Printf("✅ Seeded %d demo users", len(s.users))
	return s, nil
}

// Authenticate checks the credentials and returns the matching user.
func (s *UserStore) Authenticate(email, password string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		if s.users[i].Email == email {
			if err := bcrypt.CompareHashAndPassword([]byte(s.users[i].Password), []byte(password)); err != nil {
				return nil, ErrNotFound
			}
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *UserStore) FindByID(id int) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		if s.users[i].ID == id {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}
