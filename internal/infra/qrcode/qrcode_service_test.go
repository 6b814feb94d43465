package qrcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mdesk/config"
)

func newQRConfig(size int, level, registrationURL string) *config.Config {
	cfg := &config.Config{}
	cfg.QRCode = &config.QRCodeConfig{
		Size:                 size,
		ErrorCorrectionLevel: level,
		RegistrationURL:      registrationURL,
	}

	return cfg
}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		errorCorrectionLevel string
	}{
		{"Low error correction", "L"},
		{"Medium error correction", "M"},
		{"High error correction", "Q"},
		{"Highest error correction", "H"},
		{"Default error correction", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(newQRConfig(256, tt.errorCorrectionLevel, "https://example.com/register"))
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateRegistrationQR(t *testing.T) {
	service := NewQRCodeService(newQRConfig(256, "M", "https://example.com/register"))

	qrBytes, err := service.GenerateRegistrationQR()
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GenerateRegistrationQR_MissingURL(t *testing.T) {
	service := NewQRCodeService(newQRConfig(256, "M", ""))

	_, err := service.GenerateRegistrationQR()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "registration URL is not configured")
}

func TestQRCodeService_GenerateURLQR_DifferentSizes(t *testing.T) {
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
			service := NewQRCodeService(newQRConfig(tt.size, "M", "https://example.com/register"))

			qrBytes, err := service.GenerateURLQR("https://example.com/some/path")
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_GenerateURLQR_EmptyURL(t *testing.T) {
	service := NewQRCodeService(newQRConfig(256, "M", "https://example.com/register"))

	_, err := service.GenerateURLQR("")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "url must not be empty")
}

func TestQRCodeService_DefaultsWithoutConfig(t *testing.T) {
	service := NewQRCodeService(nil)
	assert.NotNil(t, service)

	// Registration URL unset, so only explicit URLs work.
	_, err := service.GenerateRegistrationQR()
	assert.Error(t, err)

	qrBytes, err := service.GenerateURLQR("https://example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)
}
