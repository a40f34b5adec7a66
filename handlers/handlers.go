package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v4"

	"temple-backend/notifications"
	"temple-backend/services"
	"temple-backend/store"
)

var validate = validator.New()

// Package-level collaborators, wired once from main before routes register.
var (
	users      *store.UserStore
	volunteers *store.VolunteerStore
	lunch      *store.LunchStore
	bookings   store.BookingRepository
	bookingSvc *services.BookingService
	scanSvc    *services.ScanService
	mailer     *notifications.SMTPMailer
)

type Deps struct {
	Users      *store.UserStore
	Volunteers *store.VolunteerStore
	Lunch      *store.LunchStore
	Bookings   store.BookingRepository
	BookingSvc *services.BookingService
	ScanSvc    *services.ScanService
	Mailer     *notifications.SMTPMailer
}

func Init(d Deps) {
	users = d.Users
	volunteers = d.Volunteers
	lunch = d.Lunch
	bookings = d.Bookings
	bookingSvc = d.BookingSvc
	scanSvc = d.ScanSvc
	mailer = d.Mailer
}

// actorFromClaims reads the staff identity the JWT middleware stashed in
// Locals.
func actorFromClaims(claims jwt.MapClaims) services.Actor {
	actor := services.Actor{}
	if v, ok := claims["user_id"].(string); ok {
		actor.ID = v
	}
	if v, ok := claims["name"].(string); ok {
		actor.Name = v
	}
	if v, ok := claims["role"].(string); ok {
		actor.Role = v
	}
	return actor
}
