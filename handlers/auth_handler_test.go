package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"temple-backend/store"
)

func newAuthTestApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	users, err := store.NewUserStore(store.DemoUsers)
	if err != nil {
		t.Fatalf("NewUserStore: %v", err)
	}
	Init(Deps{Users: users})

	app := fiber.New()
	app.Post("/api/v1/auth/login", LoginUser)
	return app
}

func TestLoginIssuesToken(t *testing.T) {
	app := newAuthTestApp(t)

	req := httptest.NewRequest("POST", "/api/v1/auth/login",
		strings.NewReader(`{"email":"admin@temple.com","password":"admin123"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body struct {
		Token string       `json:"token"`
		User  UserResponse `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Token == "" {
		t.Fatal("response has no token")
	}
	if body.User.Role != "admin" || body.User.Name != "Admin User" {
		t.Fatalf("user = %+v", body.User)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	app := newAuthTestApp(t)

	req := httptest.NewRequest("POST", "/api/v1/auth/login",
		strings.NewReader(`{"email":"admin@temple.com","password":"nope"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestLoginRejectsMalformedBody(t *testing.T) {
	app := newAuthTestApp(t)

	req := httptest.NewRequest("POST", "/api/v1/auth/login", strings.NewReader(`{"email":`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}
