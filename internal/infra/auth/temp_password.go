package auth

import (
	"crypto/rand"
	"math/big"

	"mdesk/internal/domain/service"
	"mdesk/internal/errors"
)

// Character classes for generated temporary passwords. The special set is
// narrower than the policy's accepted set so every generated password also
// survives copy-paste into login forms.
const (
	tempPasswordLength = 12
	tempUppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	tempLowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	tempDigitChars     = "0123456789"
	tempSpecialChars   = "!@#$%^&*()"
	tempAllChars       = tempUppercaseChars + tempLowercaseChars + tempDigitChars + tempSpecialChars
)

// tempPasswordGenerator produces random temporary passwords with at least one
// character from each class, using crypto/rand throughout.
type tempPasswordGenerator struct{}

// NewTempPasswordGenerator is the constructor for tempPasswordGenerator.
func NewTempPasswordGenerator() service.TempPasswordGenerator {
	return &tempPasswordGenerator{}
}

// Generate returns a fresh temporary password. One character of each class is
// guaranteed; the remainder is drawn uniformly from the full alphabet and the
// result is shuffled so the guaranteed characters hold no fixed positions.
func (g *tempPasswordGenerator) Generate() (string, error) {
	password := make([]byte, 0, tempPasswordLength)

	for _, class := range []string{tempUppercaseChars, tempLowercaseChars, tempDigitChars, tempSpecialChars} {
		c, err := randomChar(class)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}

	for len(password) < tempPasswordLength {
		c, err := randomChar(tempAllChars)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}

	if err := shuffle(password); err != nil {
		return "", err
	}

	return string(password), nil
}

func randomChar(alphabet string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
	if err != nil {
		return 0, errors.Wrap(err, "read random index")
	}

	return alphabet[n.Int64()], nil
}

// shuffle performs a Fisher-Yates shuffle driven by crypto/rand.
func shuffle(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return errors.Wrap(err, "read random index")
		}
		j := n.Int64()
		b[i], b[j] = b[j], b[i]
	}

	return nil
}
