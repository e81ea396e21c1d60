package service

// PlaceholderQRDataURL is the fixed fallback image (a valid 1x1 PNG) stored on
// a menu when QR generation or image persistence fails. A menu is never left
// without a displayable image.
const PlaceholderQRDataURL = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNk+M9QDwADhgGAWjR9awAAAABJRU5ErkJggg=="

// QRImage is a generated QR code raster in both transport forms.
type QRImage struct {
	PNG     []byte // Raw PNG bytes for file storage.
	DataURL string // Base64 data URL for inline display.
}

// QRCodeService defines the interface for QR code generation.
type QRCodeService interface {
	// GenerateMenuQR encodes the given public menu URL into a QR image.
	// Fails only on structurally invalid input such as an empty target.
	GenerateMenuQR(targetURL string) (*QRImage, error)
}
