// Package util holds small stateless helpers shared across layers.
package util

import (
	"github.com/nyaruka/phonenumbers"

	"mdesk/internal/errors"
)

// defaultPhoneRegion is assumed when a number has no country prefix.
const defaultPhoneRegion = "KR"

// NormalizePhone parses a phone number and returns it in E.164 form.
// Numbers without a country prefix are interpreted as Korean.
func NormalizePhone(raw string) (string, error) {
	if raw == "" {
		return "", errors.New("phone number is empty")
	}

	parsed, err := phonenumbers.Parse(raw, defaultPhoneRegion)
	if err != nil {
		return "", errors.Wrap(err, "parse phone number")
	}

	if !phonenumbers.IsValidNumber(parsed) {
		return "", errors.Errorf("invalid phone number: %s", raw)
	}

	return phonenumbers.Format(parsed, phonenumbers.E164), nil
}

// NormalizePhoneOptional normalizes a nullable phone number. Nil and empty
// inputs pass through as nil.
func NormalizePhoneOptional(raw *string) (*string, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}

	normalized, err := NormalizePhone(*raw)
	if err != nil {
		return nil, err
	}

	return &normalized, nil
}
