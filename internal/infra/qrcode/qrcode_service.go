// Package qrcode implements QR image generation for public menu URLs.
package qrcode

import (
	"encoding/base64"
	"image/color"
	"strconv"
	"strings"

	"menuqr/config"
	"menuqr/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size          int
	foreground    color.Color
	background    color.Color
	disableBorder bool
}

// NewQRCodeService creates a new QR code service instance. Malformed color
// strings fall back to black on white rather than failing startup.
func NewQRCodeService(cfg *config.QRCodeConfig) service.QRCodeService {
	fg, err := parseHexColor(cfg.Foreground)
	if err != nil {
		fg = color.Black
	}
	bg, err := parseHexColor(cfg.Background)
	if err != nil {
		bg = color.White
	}

	return &qrcodeService{
		size:          cfg.Size,
		foreground:    fg,
		background:    bg,
		disableBorder: cfg.DisableBorder,
	}
}

// GenerateMenuQR encodes the given public menu URL into a PNG QR image,
// returned both as raw bytes and as a base64 data URL for inline display.
func (s *qrcodeService) GenerateMenuQR(targetURL string) (*service.QRImage, error) {
	if strings.TrimSpace(targetURL) == "" {
		return nil, errors.New("target URL must not be empty")
	}

	qrCode, err := qrcode.New(targetURL, qrcode.Medium)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}
	qrCode.ForegroundColor = s.foreground
	qrCode.BackgroundColor = s.background
	qrCode.DisableBorder = s.disableBorder

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return &service.QRImage{
		PNG:     pngBytes,
		DataURL: "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngBytes),
	}, nil
}

// parseHexColor parses "#rgb" and "#rrggbb" color strings.
func parseHexColor(s string) (color.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return nil, errors.Errorf("invalid hex color: %q", s)
	}

	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid hex color: %q", s)
	}

	return color.RGBA{
		R: uint8(value >> 16),
		G: uint8(value >> 8),
		B: uint8(value),
		A: 0xff,
	}, nil
}
