package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	"temple-backend/models"
)

// BuildReceiptPDF renders a printable booking receipt with the check-in QR
// code embedded. Amounts use "Rs." because the built-in PDF fonts have no
// rupee glyph.
func BuildReceiptPDF(b *models.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Seva Booking Receipt", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "Sri Vidyaranyapura Mutt", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 13)
	pdf.CellFormat(0, 8, "Seva Booking Receipt", "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking ID     : %d", b.ID),
		fmt.Sprintf("Devotee        : %s", receiptField(b.DevoteeName)),
		fmt.Sprintf("Phone          : %s", receiptField(b.Phone)),
		fmt.Sprintf("Email          : %s", receiptField(b.Email)),
		fmt.Sprintf("Seva / Hall    : %s", receiptField(b.SevaName)),
		fmt.Sprintf("Date           : %s", receiptField(b.Date)),
		fmt.Sprintf("Time           : %s", receiptField(b.Time)),
		fmt.Sprintf("People         : %s", receiptField(b.NumberOfPeople)),
		fmt.Sprintf("Status         : %s", b.Status),
	}
	if b.Kind == models.KindSeva {
		lines = append(lines,
			fmt.Sprintf("Gotra          : %s", receiptField(b.Gotra)),
			fmt.Sprintf("Nakshatra      : %s", receiptField(b.Nakshatra)),
		)
	}
	if b.Kind == models.KindHall {
		lines = append(lines,
			fmt.Sprintf("Event          : %s", receiptField(b.EventType)),
		)
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Charges")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Seva Cost              : "+receiptRupees(b.SevaCost))
	pdf.Ln(7)
	if b.TirthaPrasadaRequired {
		pdf.Cell(0, 7, fmt.Sprintf("Tirtha Prasada (%d pax) : %s", b.TirthaPrasadaCount, receiptRupees(b.LunchCost)))
		pdf.Ln(7)
	}
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total                  : "+receiptRupees(b.TotalCost))
	pdf.Ln(12)

	png, err := EncodeQR(b.QRCode)
	if err != nil {
		return nil, "", err
	}
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("booking-qr", opts, bytes.NewReader(png))
	x := (210.0 - 50.0) / 2
	pdf.ImageOptions("booking-qr", x, pdf.GetY(), 50, 50, false, opts, 0, "")
	pdf.SetY(pdf.GetY() + 54)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Show this QR code or the Booking ID at the temple entrance for check-in.", "", "C", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("RECEIPT_%d.pdf", b.ID)
	return buf.Bytes(), filename, nil
}

func receiptField(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "-"
	}
	return v
}

func receiptRupees(v int64) string {
	s := fmt.Sprintf("%d", v)
	var out []byte
	n := len(s)
	for i := 0; i < n; i++ {
		out = append(out, s[i])
		pos := n - i - 1
		if pos > 0 && pos%3 == 0 {
			out = append(out, ',')
		}
	}
	return "Rs. " + string(out)
}
