package service

// QRCodeService renders QR code images for printed menu cards.
type QRCodeService interface {
	// GeneratePNG encodes the given URL as a PNG QR code.
	GeneratePNG(url string) ([]byte, error)
}
