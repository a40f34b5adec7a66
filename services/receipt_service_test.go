package services

import (
	"bytes"
	"testing"

	"temple-backend/models"
)

func TestBuildReceiptPDF(t *testing.T) {
	b := &models.Booking{
		ID:          1757000000000,
		Kind:        models.KindSeva,
		SevaName:    "Panchamrutha Abhisheka",
		DevoteeName: "Ramesh Rao",
		Email:       "ramesh@example.com",
		Phone:       "9876543210",
		Date:        "2026-09-15",

		TirthaPrasadaRequired: true,
		TirthaPrasadaCount:    2,

		SevaCost:  100,
		LunchCost: 500,
		TotalCost: 600,

		Status: models.StatusConfirmed,
		QRCode: "1757000000000",
	}

	pdf, filename, err := BuildReceiptPDF(b)
	if err != nil {
		t.Fatalf("BuildReceiptPDF: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatal("output is not a PDF")
	}
	if filename != "RECEIPT_1757000000000.pdf" {
		t.Fatalf("filename = %q", filename)
	}
}
