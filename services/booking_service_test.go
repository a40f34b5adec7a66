package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"temple-backend/models"
	"temple-backend/notifications"
	"temple-backend/store"
)

type fakeRepo struct {
	mu       sync.Mutex
	bookings []models.Booking
	failNext error
}

func (r *fakeRepo) Append(b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failNext != nil {
		err := r.failNext
		r.failNext = nil
		return err
	}
	for i := range r.bookings {
		if r.bookings[i].ID == b.ID {
			return store.ErrDuplicateID
		}
	}
	r.bookings = append(r.bookings, *b)
	return nil
}

func (r *fakeRepo) List() ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Booking, len(r.bookings))
	copy(out, r.bookings)
	return out, nil
}

func (r *fakeRepo) GetByID(id int64) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			b := r.bookings[i]
			return &b, nil
		}
	}
	return nil, store.ErrNotFound
}

func (r *fakeRepo) GetByQRCode(code string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.bookings {
		if r.bookings[i].QRCode == code {
			b := r.bookings[i]
			return &b, nil
		}
	}
	return nil, store.ErrNotFound
}

func (r *fakeRepo) UpdateStatus(id int64, status models.BookingStatus) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			r.bookings[i].Status = status
			b := r.bookings[i]
			return &b, nil
		}
	}
	return nil, store.ErrNotFound
}

type fakeSender struct {
	mu     sync.Mutex
	sent   []models.Booking
	lastQR notifications.QRRef
	err    error
}

func (s *fakeSender) Name() string { return "fake" }

func (s *fakeSender) Send(_ context.Context, b *models.Booking, qr notifications.QRRef) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, *b)
	s.lastQR = qr
	return nil
}

// fakeHostedSender stands in for the provider path, which cannot use inline
// data URLs.
type fakeHostedSender struct {
	fakeSender
}

func (s *fakeHostedSender) RequiresHostedQR() bool { return true }

type fakeUploader struct {
	url    string
	err    error
	called bool
}

func (u *fakeUploader) UploadQR(_ context.Context, _ int64, _ []byte) (string, error) {
	u.called = true
	if u.err != nil {
		return "", u.err
	}
	return u.url, nil
}

var admin = Actor{ID: "2", Name: "Admin User", Role: models.RoleAdmin}

func sevaRequest() *BookingRequest {
	return &BookingRequest{
		Kind:        models.KindSeva,
		SevaName:    "Panchamrutha Abhisheka",
		DevoteeName: "Ramesh Rao",
		Email:       "ramesh@example.com",
		Phone:       "9876543210",
		Date:        "2026-09-15",
		Time:        "Morning (6:00 AM - 8:00 AM)",
		Gotra:       "Bharadwaja",
		Nakshatra:   "Rohini",

		TirthaPrasadaRequired: true,
		TirthaPrasadaCount:    2,
		LunchHall:             "Annadana Hall",
	}
}

func newTestService(repo *fakeRepo, sender notifications.Sender) *BookingService {
	svc := NewBookingService(repo, nil, sender, nil)
	base := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }
	return svc
}

func TestSubmitComputesCosts(t *testing.T) {
	repo := &fakeRepo{}
	sender := &fakeSender{}
	svc := newTestService(repo, sender)

	result, err := svc.Submit(context.Background(), admin, sevaRequest())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if result.State != SubmissionSucceeded {
		t.Fatalf("state = %s, want succeeded", result.State)
	}

	b := result.Booking
	if b.SevaCost != 100 {
		t.Fatalf("seva cost = %d, want 100", b.SevaCost)
	}
	if b.LunchCost != 500 {
		t.Fatalf("lunch cost = %d, want 500 (2 x 250)", b.LunchCost)
	}
	if b.TotalCost != 600 {
		t.Fatalf("total cost = %d, want 600", b.TotalCost)
	}
	if b.Status != models.StatusConfirmed {
		t.Fatalf("status = %s, want confirmed", b.Status)
	}
	if b.QRCode == "" || b.QRCode != strings.TrimSpace(b.QRCode) {
		t.Fatalf("qr code %q malformed", b.QRCode)
	}
}

func TestSubmitContactOfficePricesAtZero(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, &fakeSender{})

	req := sevaRequest()
	req.SevaName = "Nutana Vastra Samarpane"
	req.TirthaPrasadaRequired = false
	req.TirthaPrasadaCount = 0

	result, err := svc.Submit(context.Background(), admin, req)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if result.Booking.SevaCost != 0 || result.Booking.TotalCost != 0 {
		t.Fatalf("contact-office booking priced at %d/%d, want 0/0",
			result.Booking.SevaCost, result.Booking.TotalCost)
	}
}

func TestSubmitRejectsNonAdmin(t *testing.T) {
	repo := &fakeRepo{}
	sender := &fakeSender{}
	svc := newTestService(repo, sender)

	volunteer := Actor{ID: "1", Name: "Gururaj Patil", Role: models.RoleVolunteer}
	_, err := svc.Submit(context.Background(), volunteer, sevaRequest())
	if !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("err = %v, want ErrNotAuthorized", err)
	}

	if list, _ := repo.List(); len(list) != 0 {
		t.Fatal("rejected submission must not write to the store")
	}
	if len(sender.sent) != 0 {
		t.Fatal("rejected submission must not reach the email pipeline")
	}
}

func TestSubmitRequiresGotraForSevas(t *testing.T) {
	svc := newTestService(&fakeRepo{}, &fakeSender{})

	req := sevaRequest()
	req.Gotra = ""
	if _, err := svc.Submit(context.Background(), admin, req); err == nil {
		t.Fatal("seva booking without gotra should fail validation")
	}
}

func TestSubmitRejectsMixedKindFields(t *testing.T) {
	svc := newTestService(&fakeRepo{}, &fakeSender{})

	req := sevaRequest()
	req.Kind = models.KindHall
	req.SevaName = "Main Prayer Hall"
	// gotra/nakshatra still set from the seva form
	if _, err := svc.Submit(context.Background(), admin, req); err == nil {
		t.Fatal("hall booking with gotra should fail validation")
	}
}

func TestSubmitPersistsBeforeEmail(t *testing.T) {
	repo := &fakeRepo{}
	sender := &fakeSender{err: errors.New("relay down")}
	svc := newTestService(repo, sender)

	result, err := svc.Submit(context.Background(), admin, sevaRequest())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if result.State != SubmissionPartial {
		t.Fatalf("state = %s, want partially_succeeded", result.State)
	}
	if result.Notice == "" {
		t.Fatal("partial result must carry a notice for the office")
	}

	// The booking must be durable even though delivery failed.
	stored, err := repo.GetByID(result.Booking.ID)
	if err != nil {
		t.Fatalf("booking not in store after email failure: %v", err)
	}
	if stored.DevoteeName != "Ramesh Rao" {
		t.Fatalf("stored booking = %+v", stored)
	}
}

func TestSubmitProviderPathUploadFailureDegrades(t *testing.T) {
	repo := &fakeRepo{}
	sender := &fakeHostedSender{}
	svc := newTestService(repo, sender)
	svc.Uploader = &fakeUploader{err: errors.New("no such host")}

	result, err := svc.Submit(context.Background(), admin, sevaRequest())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if result.State != SubmissionPartial {
		t.Fatalf("state = %s, want partially_succeeded after upload failure", result.State)
	}
	if len(sender.sent) != 0 {
		t.Fatal("upload failure must abort the email step")
	}

	// The booking itself stands.
	if _, err := repo.GetByID(result.Booking.ID); err != nil {
		t.Fatalf("booking lost after upload failure: %v", err)
	}
}

func TestSubmitProviderPathSendsHostedURL(t *testing.T) {
	repo := &fakeRepo{}
	sender := &fakeHostedSender{}
	uploader := &fakeUploader{url: "https://img.example/qr_1.png"}
	svc := newTestService(repo, sender)
	svc.Uploader = uploader

	result, err := svc.Submit(context.Background(), admin, sevaRequest())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if result.State != SubmissionSucceeded {
		t.Fatalf("state = %s, want succeeded", result.State)
	}
	if !uploader.called {
		t.Fatal("provider path must upload the QR image")
	}
	if sender.lastQR.HostedURL != "https://img.example/qr_1.png" {
		t.Fatalf("sender saw hosted URL %q", sender.lastQR.HostedURL)
	}
}

func TestSubmitProviderPathRequiresUploader(t *testing.T) {
	repo := &fakeRepo{}
	sender := &fakeHostedSender{}
	svc := newTestService(repo, sender)
	svc.Uploader = nil

	result, err := svc.Submit(context.Background(), admin, sevaRequest())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if result.State != SubmissionPartial {
		t.Fatalf("state = %s, want partially_succeeded without an uploader", result.State)
	}
	if len(sender.sent) != 0 {
		t.Fatal("no email may go out without a hosted QR image")
	}
}

func TestSubmitRelayPathSkipsUpload(t *testing.T) {
	repo := &fakeRepo{}
	sender := &fakeSender{}
	uploader := &fakeUploader{url: "https://img.example/qr_1.png"}
	svc := newTestService(repo, sender)
	svc.Uploader = uploader

	result, err := svc.Submit(context.Background(), admin, sevaRequest())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if result.State != SubmissionSucceeded {
		t.Fatalf("state = %s, want succeeded", result.State)
	}
	if uploader.called {
		t.Fatal("relay path must not upload; the image embeds inline")
	}
	if sender.lastQR.HostedURL != "" {
		t.Fatalf("relay path got hosted URL %q", sender.lastQR.HostedURL)
	}
	if sender.lastQR.DataURL == "" {
		t.Fatal("relay path must receive the inline data URL")
	}
}

func TestSubmitStoreFailureMeansNoBooking(t *testing.T) {
	repo := &fakeRepo{failNext: errors.New("disk full")}
	sender := &fakeSender{}
	svc := newTestService(repo, sender)

	result, err := svc.Submit(context.Background(), admin, sevaRequest())
	if err == nil {
		t.Fatal("Submit should fail when the store write fails")
	}
	if result == nil || result.State != SubmissionFailed {
		t.Fatalf("result = %+v, want failed state", result)
	}
	if len(sender.sent) != 0 {
		t.Fatal("no email may be sent when nothing was stored")
	}
}

func TestSubmitRetriesOnDuplicateID(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, &fakeSender{})

	first, err := svc.Submit(context.Background(), admin, sevaRequest())
	if err != nil {
		t.Fatalf("first Submit: %v", err)
	}
	// The frozen clock forces an id collision on the second submission.
	second, err := svc.Submit(context.Background(), admin, sevaRequest())
	if err != nil {
		t.Fatalf("second Submit: %v", err)
	}
	if first.Booking.ID == second.Booking.ID {
		t.Fatalf("both bookings got id %d", first.Booking.ID)
	}
	if second.Booking.QRCode == first.Booking.QRCode {
		t.Fatal("qr codes must differ with the ids")
	}
}

func TestUpdateStatusValidatesState(t *testing.T) {
	repo := &fakeRepo{}
	sender := &fakeSender{}
	svc := newTestService(repo, sender)

	result, err := svc.Submit(context.Background(), admin, sevaRequest())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if _, err := svc.UpdateStatus(admin, result.Booking.ID, "cancelled"); err == nil {
		t.Fatal("unknown status should be rejected")
	}

	b, err := svc.UpdateStatus(admin, result.Booking.ID, models.StatusCompleted)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if b.Status != models.StatusCompleted {
		t.Fatalf("status = %s", b.Status)
	}

	guest := Actor{Role: "guest"}
	if _, err := svc.UpdateStatus(guest, result.Booking.ID, models.StatusPending); !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("err = %v, want ErrNotAuthorized", err)
	}
}
