package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	qrcode "github.com/skip2/go-qrcode"

	config "temple-backend/configs"
)

// EncodeQR renders the payload as a 300px PNG.
func EncodeQR(payload string) ([]byte, error) {
	png, err := qrcode.Encode(payload, qrcode.Medium, 300)
	if err != nil {
		return nil, fmt.Errorf("failed to encode qr code: %v", err)
	}
	return png, nil
}

// QRDataURL returns the payload's QR image as an inline data URL for email
// embedding.
func QRDataURL(payload string) (string, error) {
	png, err := EncodeQR(payload)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

// QRHost stores a booking's QR image somewhere publicly retrievable. The
// provider email path needs one; the relay path embeds the image inline.
type QRHost interface {
	UploadQR(ctx context.Context, bookingID int64, png []byte) (string, error)
}

// QRUploader is the Cloudinary-backed QRHost.
type QRUploader struct {
	cld *cloudinary.Cloudinary
}

// NewQRUploaderFromEnv returns nil without error when CLOUDINARY_URL is not
// set, which disables hosting.
func NewQRUploaderFromEnv() (*QRUploader, error) {
	cloudinaryURL := config.Config("CLOUDINARY_URL")
	if cloudinaryURL == "" {
		return nil, nil
	}
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %v", err)
	}
	return &QRUploader{cld: cld}, nil
}

// UploadQR stores the PNG under a deterministic public id so re-sending a
// confirmation overwrites the previous image instead of accumulating copies.
func (u *QRUploader) UploadQR(ctx context.Context, bookingID int64, png []byte) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	uploadParams := uploader.UploadParams{
		PublicID:  fmt.Sprintf("qr_%d", bookingID),
		Folder:    "qrcodes",
		Format:    "png",
		Overwrite: api.Bool(true),
	}

	uploadResult, err := u.cld.Upload.Upload(ctx, bytes.NewReader(png), uploadParams)
	if err != nil {
		return "", fmt.Errorf("failed to upload qr code: %v", err)
	}
	if uploadResult.SecureURL == "" {
		return "", errors.New("cloudinary returned empty secure url")
	}

	log.Printf("✅ QR code for booking %d uploaded: %s", bookingID, uploadResult.SecureURL)
	return uploadResult.SecureURL, nil
}
