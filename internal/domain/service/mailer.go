package service

import "context"

// Mailer defines the interface for outbound transactional email.
type Mailer interface {
	// SendTempPassword delivers a freshly issued temporary password to the
	// account holder.
	SendTempPassword(ctx context.Context, to, name, tempPassword string) error
}

// TempPasswordGenerator produces one-time passwords for the reset flow.
type TempPasswordGenerator interface {
	// Generate returns a random password satisfying the strength policy.
	Generate() (string, error)
}
