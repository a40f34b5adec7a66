package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"

	"temple-backend/models"
	"temple-backend/notifications"
	"temple-backend/store"
	"temple-backend/utils"
)

const tirthaPrasadaRate = 250

var (
	ErrNotAuthorized  = errors.New("only office staff can record bookings")
	bookingValidate   = validator.New()
	errIDSpaceExhaust = errors.New("could not allocate a unique booking id")
)

// SubmissionState describes how far a booking submission got. The record is
// written before any network work, so a partial result still has a usable
// booking behind it.
type SubmissionState string

const (
	SubmissionSucceeded SubmissionState = "succeeded"
	SubmissionPartial   SubmissionState = "partially_succeeded"
	SubmissionFailed    SubmissionState = "failed"
)

// Actor identifies the logged-in staff member performing an operation,
// extracted from the JWT claims.
type Actor struct {
	ID   string
	Name string
	Role string
}

// BookingRequest carries the booking form fields. Gotra and nakshatra apply
// to seva bookings only; event fields to hall bookings only.
type BookingRequest struct {
	Kind        models.BookingKind `json:"kind" validate:"required,oneof=seva hall"`
	SevaName    string             `json:"sevaName" validate:"required"`
	DevoteeName string             `json:"devoteeName" validate:"required,min=2"`
	Email       string             `json:"email" validate:"required,email"`
	Phone       string             `json:"phone" validate:"required,min=7"`
	Date        string             `json:"date" validate:"required,datetime=2006-01-02"`
	Time        string             `json:"time"`

	NumberOfPeople string `json:"numberOfPeople"`
	Gotra          string `json:"gotra"`
	Nakshatra      string `json:"nakshatra"`
	Hall           string `json:"hall"`

	EventType        string `json:"eventType"`
	EventDescription string `json:"eventDescription"`

	TirthaPrasadaRequired bool   `json:"tirthaPrasadaRequired"`
	TirthaPrasadaCount    int    `json:"tirthaPrasadaCount"`
	LunchHall             string `json:"lunchHall"`
	SpecialRequests       string `json:"specialRequests"`
}

// SubmissionResult reports the booking and what happened on the delivery leg.
type SubmissionResult struct {
	State   SubmissionState
	Booking *models.Booking
	Notice  string
}

// BookingService runs the submission pipeline: validate, price, persist,
// generate the QR image, host it, email the devotee. Persistence happens
// before any network call so a failed email never loses the booking.
type BookingService struct {
	Repo     store.BookingRepository
	Lunch    *store.LunchStore
	Sender   notifications.Sender
	Uploader QRHost

	now func() time.Time
}

func NewBookingService(repo store.BookingRepository, lunch *store.LunchStore, sender notifications.Sender, uploader QRHost) *BookingService {
	return &BookingService{
		Repo:     repo,
		Lunch:    lunch,
		Sender:   sender,
		Uploader: uploader,
		now:      time.Now,
	}
}

// Submit records a booking and runs the confirmation pipeline. Only staff
// submit bookings; the devotee details come from the form.
func (s *BookingService) Submit(ctx context.Context, actor Actor, req *BookingRequest) (*SubmissionResult, error) {
	if actor.Role != models.RoleAdmin {
		return nil, ErrNotAuthorized
	}
	if err := bookingValidate.Struct(req); err != nil {
		return nil, err
	}
	if err := validateKindFields(req); err != nil {
		return nil, err
	}

	b := s.buildBooking(req)
	if err := s.persistWithFreshID(b); err != nil {
		return &SubmissionResult{State: SubmissionFailed}, fmt.Errorf("failed to save booking: %w", err)
	}
	log.Printf("✅ Booking %d recorded for %s (%s)", b.ID, b.DevoteeName, b.SevaName)

	s.recordLunchAttendance(b)

	qr, err := s.prepareQR(ctx, b)
	if err != nil {
		log.Printf("🔥 QR preparation failed for booking %d: %v", b.ID, err)
		return partialResult(b), nil
	}

	if err := s.Sender.Send(ctx, b, qr); err != nil {
		log.Printf("🔥 Confirmation email failed for booking %d via %s: %v", b.ID, s.Sender.Name(), err)
		return partialResult(b), nil
	}

	return &SubmissionResult{State: SubmissionSucceeded, Booking: b}, nil
}

func validateKindFields(req *BookingRequest) error {
	switch req.Kind {
	case models.KindSeva:
		if req.Gotra == "" || req.Nakshatra == "" {
			return errors.New("gotra and nakshatra are required for seva bookings")
		}
		if req.EventType != "" || req.EventDescription != "" {
			return errors.New("event details apply to hall bookings only")
		}
	case models.KindHall:
		if req.Gotra != "" || req.Nakshatra != "" {
			return errors.New("gotra and nakshatra apply to seva bookings only")
		}
	}
	if req.TirthaPrasadaRequired && req.TirthaPrasadaCount < 1 {
		return errors.New("tirtha prasada count must be at least 1")
	}
	if !req.TirthaPrasadaRequired && req.TirthaPrasadaCount != 0 {
		return errors.New("tirtha prasada count given without the add-on")
	}
	return nil
}

func (s *BookingService) buildBooking(req *BookingRequest) *models.Booking {
	sevaCost := catalogCost(req)
	var lunchCost int64
	if req.TirthaPrasadaRequired {
		lunchCost = int64(req.TirthaPrasadaCount) * tirthaPrasadaRate
	}

	b := &models.Booking{
		Kind:        req.Kind,
		SevaName:    req.SevaName,
		DevoteeName: req.DevoteeName,
		Email:       req.Email,
		Phone:       req.Phone,
		Date:        req.Date,
		Time:        req.Time,

		NumberOfPeople: req.NumberOfPeople,
		Gotra:          req.Gotra,
		Nakshatra:      req.Nakshatra,
		Hall:           req.Hall,

		EventType:        req.EventType,
		EventDescription: req.EventDescription,

		TirthaPrasadaRequired: req.TirthaPrasadaRequired,
		TirthaPrasadaCount:    req.TirthaPrasadaCount,
		LunchHall:             req.LunchHall,
		SpecialRequests:       req.SpecialRequests,

		SevaCost:  sevaCost,
		LunchCost: lunchCost,
		TotalCost: sevaCost + lunchCost,

		Status:    models.StatusConfirmed,
		CreatedAt: s.now(),
	}
	return b
}

// catalogCost resolves the base price from the catalog display string.
// "Contact Office" entries price at zero; the office settles those in person.
func catalogCost(req *BookingRequest) int64 {
	var display string
	switch req.Kind {
	case models.KindHall:
		h, err := FindHallByName(req.SevaName)
		if err != nil {
			return 0
		}
		display = h.Cost
	default:
		sv, err := FindSevaByName(req.SevaName)
		if err != nil {
			return 0
		}
		display = sv.Cost
	}
	amount, err := utils.ParseRupees(display)
	if err != nil {
		return 0
	}
	return amount
}

// persistWithFreshID stamps a millisecond-clock id and writes the record,
// bumping the id on the rare same-millisecond collision.
func (s *BookingService) persistWithFreshID(b *models.Booking) error {
	id := s.now().UnixMilli()
	for attempt := 0; attempt < 3; attempt++ {
		b.ID = id
		b.QRCode = fmt.Sprintf("%d", id)
		err := s.Repo.Append(b)
		if err == nil {
			return nil
		}
		if !errors.Is(err, store.ErrDuplicateID) {
			return err
		}
		id++
	}
	return errIDSpaceExhaust
}

// recordLunchAttendance seeds the dashboard's tirtha prasada list. A write
// failure here does not fail the booking.
func (s *BookingService) recordLunchAttendance(b *models.Booking) {
	if !b.TirthaPrasadaRequired || s.Lunch == nil {
		return
	}
	err := s.Lunch.Append(&models.LunchAttendance{
		ID:     b.ID,
		Name:   b.DevoteeName,
		Phone:  b.Phone,
		Hall:   b.LunchHall,
		Count:  b.TirthaPrasadaCount,
		QRCode: b.QRCode,
	})
	if err != nil {
		log.Printf("🔥 Failed to record tirtha prasada attendance for booking %d: %v", b.ID, err)
	}
}

// HostedQRSender is implemented by senders that can only reference a publicly
// hosted QR image, not an inline data URL.
type HostedQRSender interface {
	RequiresHostedQR() bool
}

func (s *BookingService) prepareQR(ctx context.Context, b *models.Booking) (notifications.QRRef, error) {
	dataURL, err := QRDataURL(b.QRCode)
	if err != nil {
		return notifications.QRRef{}, err
	}
	qr := notifications.QRRef{DataURL: dataURL}

	// Only the provider path needs a hosted image; the relay path embeds the
	// inline data URL and never uploads.
	hs, ok := s.Sender.(HostedQRSender)
	if !ok || !hs.RequiresHostedQR() {
		return qr, nil
	}
	if s.Uploader == nil {
		return notifications.QRRef{}, errors.New("qr hosting not configured for the provider email path")
	}
	png, err := EncodeQR(b.QRCode)
	if err != nil {
		return notifications.QRRef{}, err
	}
	hosted, err := s.Uploader.UploadQR(ctx, b.ID, png)
	if err != nil {
		return notifications.QRRef{}, fmt.Errorf("qr upload failed: %w", err)
	}
	qr.HostedURL = hosted
	return qr, nil
}

func partialResult(b *models.Booking) *SubmissionResult {
	return &SubmissionResult{
		State:   SubmissionPartial,
		Booking: b,
		Notice:  "Booking saved, but the confirmation email could not be sent. Please contact the office for your receipt.",
	}
}

// CompletionMailer is implemented by senders that can also deliver the
// post-visit thank-you email.
type CompletionMailer interface {
	SendCompletion(b *models.Booking, checkInTime string) error
}

// UpdateStatus moves a booking through its lifecycle. Marking a booking
// completed fires the thank-you email in the background when the configured
// sender supports it.
func (s *BookingService) UpdateStatus(actor Actor, id int64, status models.BookingStatus) (*models.Booking, error) {
	if actor.Role != models.RoleAdmin && actor.Role != models.RoleVolunteer {
		return nil, ErrNotAuthorized
	}
	if !models.ValidStatus(status) {
		return nil, fmt.Errorf("unknown booking status %q", status)
	}

	b, err := s.Repo.UpdateStatus(id, status)
	if err != nil {
		return nil, err
	}

	if status == models.StatusCompleted {
		if cm, ok := s.Sender.(CompletionMailer); ok {
			checkInTime := s.lookupCheckInTime(b.ID)
			go func(booking models.Booking) {
				if err := cm.SendCompletion(&booking, checkInTime); err != nil {
					log.Printf("🔥 Thank-you email failed for booking %d: %v", booking.ID, err)
				}
			}(*b)
		}
	}
	return b, nil
}

func (s *BookingService) lookupCheckInTime(id int64) string {
	if s.Lunch == nil {
		return ""
	}
	entries, err := s.Lunch.List()
	if err != nil {
		return ""
	}
	for _, e := range entries {
		if e.ID == id && e.CheckedIn {
			return e.CheckInTime
		}
	}
	return ""
}
