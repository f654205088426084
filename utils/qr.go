package utils

import (
	"bytes"
	"fmt"
	"image/png"
	"makkanya_dashboard/model"

	"github.com/skip2/go-qrcode"
)

// GenerateQRCode encodes content as a PNG QR code of size pixels.
func GenerateQRCode(content string, size int) ([]byte, error) {
	qr, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	err = png.Encode(buf, qr.Image(size))
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// MapsLink points Google Maps at the location coordinates.
func MapsLink(loc model.Location) string {
	return fmt.Sprintf("https://www.google.com/maps?q=%.6f,%.6f", loc.Latitude, loc.Longitude)
}

// LocationQR is the QR code a driver scans to navigate to loc.
func LocationQR(loc model.Location, size int) ([]byte, error) {
	if size <= 0 {
		size = 256
	}
	return GenerateQRCode(MapsLink(loc), size)
}
