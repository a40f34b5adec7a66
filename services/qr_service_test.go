package services

import (
	"bytes"
	"strings"
	"testing"
)

func TestEncodeQRProducesPNG(t *testing.T) {
	png, err := EncodeQR("1757000000000")
	if err != nil {
		t.Fatalf("EncodeQR: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Fatal("output is not a PNG")
	}
}

func TestQRDataURL(t *testing.T) {
	url, err := QRDataURL("1757000000000")
	if err != nil {
		t.Fatalf("QRDataURL: %v", err)
	}
	if !strings.HasPrefix(url, "data:image/png;base64,") {
		t.Fatalf("unexpected prefix: %.40s", url)
	}

	again, err := QRDataURL("1757000000000")
	if err != nil {
		t.Fatalf("QRDataURL: %v", err)
	}
	if url != again {
		t.Fatal("same payload must encode to the same data URL")
	}

	other, err := QRDataURL("1757000000001")
	if err != nil {
		t.Fatalf("QRDataURL: %v", err)
	}
	if url == other {
		t.Fatal("different payloads must encode differently")
	}
}
