package services

import (
	"fmt"
	"testing"

	"temple-backend/models"
)

func TestScanVerify(t *testing.T) {
	repo := &fakeRepo{}
	repo.bookings = append(repo.bookings, models.Booking{
		ID:          1757000000000,
		DevoteeName: "Ramesh Rao",
		SevaName:    "Gow Puje",
		Status:      models.StatusConfirmed,
		QRCode:      "1757000000000",
	})
	svc := NewScanService(repo)

	b, rec, err := svc.Verify("1757000000000")
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if b.ID != 1757000000000 {
		t.Fatalf("resolved booking %d", b.ID)
	}
	if rec.Status != "confirmed" || rec.DevoteeName != "Ramesh Rao" {
		t.Fatalf("scan record = %+v", rec)
	}

	if _, rec, err := svc.Verify("nonsense"); err == nil {
		t.Fatal("unknown payload should fail")
	} else if rec.Status != "invalid" {
		t.Fatalf("invalid scan recorded as %q", rec.Status)
	}

	history := svc.History(10)
	if len(history) != 2 {
		t.Fatalf("history has %d entries, want 2", len(history))
	}
	if history[0].Status != "invalid" {
		t.Fatal("history must be newest first")
	}
}

func TestScanHistoryCap(t *testing.T) {
	svc := NewScanService(&fakeRepo{})
	for i := 0; i < scanHistoryCap+10; i++ {
		svc.Verify(fmt.Sprintf("missing-%d", i))
	}
	if got := len(svc.History(0)); got != scanHistoryCap {
		t.Fatalf("history grew to %d, cap is %d", got, scanHistoryCap)
	}
}
