package store

import (
	"errors"
	"path/filepath"
	"testing"

	"temple-backend/models"
)

func testBooking(id int64) *models.Booking {
	return &models.Booking{
		ID:          id,
		Kind:        models.KindSeva,
		SevaName:    "Gow Puje",
		DevoteeName: "Ramesh Rao",
		Email:       "ramesh@example.com",
		Phone:       "9876543210",
		Date:        "2026-09-15",
		Status:      models.StatusConfirmed,
		QRCode:      "1757000000001",
	}
}

func TestBookingStoreRejectsDuplicateIDs(t *testing.T) {
	s, err := NewBookingStore(filepath.Join(t.TempDir(), "bookings.json"))
	if err != nil {
		t.Fatalf("NewBookingStore: %v", err)
	}

	if err := s.Append(testBooking(1)); err != nil {
		t.Fatalf("first Append: %v", err)
	}
	if err := s.Append(testBooking(1)); !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("duplicate Append err = %v, want ErrDuplicateID", err)
	}

	list, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("store holds %d bookings, want 1", len(list))
	}
}

func TestBookingStorePreservesInsertionOrder(t *testing.T) {
	s, err := NewBookingStore(filepath.Join(t.TempDir(), "bookings.json"))
	if err != nil {
		t.Fatalf("NewBookingStore: %v", err)
	}

	for _, id := range []int64{3, 1, 2} {
		if err := s.Append(testBooking(id)); err != nil {
			t.Fatalf("Append(%d): %v", id, err)
		}
	}

	list, _ := s.List()
	for i, want := range []int64{3, 1, 2} {
		if list[i].ID != want {
			t.Fatalf("list[%d].ID = %d, want %d", i, list[i].ID, want)
		}
	}
}

func TestBookingStoreReloadsFromFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "bookings.json")

	s, err := NewBookingStore(file)
	if err != nil {
		t.Fatalf("NewBookingStore: %v", err)
	}
	if err := s.Append(testBooking(42)); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if _, err := s.UpdateStatus(42, models.StatusCompleted); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	reopened, err := NewBookingStore(file)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	b, err := reopened.GetByID(42)
	if err != nil {
		t.Fatalf("GetByID after reload: %v", err)
	}
	if b.Status != models.StatusCompleted {
		t.Fatalf("status after reload = %s", b.Status)
	}
}

func TestBookingStoreUpdateStatusRollsBackOnSaveFailure(t *testing.T) {
	s, err := NewBookingStore(filepath.Join(t.TempDir(), "bookings.json"))
	if err != nil {
		t.Fatalf("NewBookingStore: %v", err)
	}
	if err := s.Append(testBooking(9)); err != nil {
		t.Fatalf("Append: %v", err)
	}

	// Pointing the store at a directory makes the next save fail.
	s.filename = t.TempDir()
	if _, err := s.UpdateStatus(9, models.StatusCompleted); err == nil {
		t.Fatal("UpdateStatus should fail when the file cannot be written")
	}

	b, err := s.GetByID(9)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if b.Status != models.StatusConfirmed {
		t.Fatalf("status = %s after failed save, want confirmed", b.Status)
	}
}

func TestBookingStoreLookupByQRCode(t *testing.T) {
	s, err := NewBookingStore(filepath.Join(t.TempDir(), "bookings.json"))
	if err != nil {
		t.Fatalf("NewBookingStore: %v", err)
	}
	b := testBooking(7)
	b.QRCode = "7"
	if err := s.Append(b); err != nil {
		t.Fatalf("Append: %v", err)
	}

	found, err := s.GetByQRCode("7")
	if err != nil {
		t.Fatalf("GetByQRCode: %v", err)
	}
	if found.ID != 7 {
		t.Fatalf("GetByQRCode resolved id %d", found.ID)
	}
	if _, err := s.GetByQRCode("8"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
