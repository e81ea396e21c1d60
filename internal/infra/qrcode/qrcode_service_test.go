package qrcode

import (
	"strings"
	"testing"

	"menuqr/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(size int) *config.QRCodeConfig {
	return &config.QRCodeConfig{
		Size:       size,
		Foreground: "#1f2937",
		Background: "#ffffff",
	}
}

func TestQRCodeService_GenerateMenuQR(t *testing.T) {
	service := NewQRCodeService(newTestConfig(400))

	img, err := service.GenerateMenuQR("https://menus.example.com/menu/abc")
	require.NoError(t, err)
	require.NotNil(t, img)
	assert.NotEmpty(t, img.PNG)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), img.PNG[0])
	assert.Equal(t, byte(0x50), img.PNG[1])
	assert.Equal(t, byte(0x4E), img.PNG[2])
	assert.Equal(t, byte(0x47), img.PNG[3])

	assert.True(t, strings.HasPrefix(img.DataURL, "data:image/png;base64,"))
}

func TestQRCodeService_GenerateMenuQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(newTestConfig(tt.size))

			img, err := service.GenerateMenuQR("https://menus.example.com/menu/abc")
			require.NoError(t, err)
			assert.NotEmpty(t, img.PNG)
		})
	}
}

func TestQRCodeService_GenerateMenuQR_EmptyTarget(t *testing.T) {
	service := NewQRCodeService(newTestConfig(256))

	_, err := service.GenerateMenuQR("")
	assert.Error(t, err)

	_, err = service.GenerateMenuQR("   ")
	assert.Error(t, err)
}

func TestQRCodeService_InvalidColorsFallBack(t *testing.T) {
	service := NewQRCodeService(&config.QRCodeConfig{
		Size:       256,
		Foreground: "not-a-color",
		Background: "#zzzzzz",
	})

	img, err := service.GenerateMenuQR("https://menus.example.com/menu/abc")
	require.NoError(t, err)
	assert.NotEmpty(t, img.PNG)
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"Six digit", "#1f2937", false},
		{"Three digit", "#fff", false},
		{"No hash", "1f2937", false},
		{"Empty", "", true},
		{"Garbage", "#xyz123", true},
		{"Too long", "#1f29371", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseHexColor(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
