package service

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GenerateRegistrationQR generates a QR code pointing at the public
	// model registration form.
	GenerateRegistrationQR() ([]byte, error)

	// GenerateURLQR generates a QR code for an arbitrary URL.
	GenerateURLQR(url string) ([]byte, error)
}
