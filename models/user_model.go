package models

// User is a demo dashboard account. There is no registration flow; the two
// demo users are seeded at boot with bcrypt-hashed passwords.
type User struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
	Role     string `json:"role"`
}

const (
	RoleAdmin     = "admin"
	RoleVolunteer = "volunteer"
)
