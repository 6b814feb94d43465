package entity

// Provider represents the identity provider an account was registered through.
type Provider string

const (
	// ProviderLocal indicates an email/password account managed by this system.
	ProviderLocal Provider = "LOCAL"
	// ProviderGoogle indicates a Google OAuth account.
	ProviderGoogle Provider = "GOOGLE"
	// ProviderKakao indicates a Kakao OAuth account.
	ProviderKakao Provider = "KAKAO"
	// ProviderNaver indicates a Naver OAuth account.
	ProviderNaver Provider = "NAVER"
)

// String returns the string representation of the Provider.
func (p Provider) String() string {
	return string(p)
}

// IsValid checks if the Provider is a valid value.
func (p Provider) IsValid() bool {
	switch p {
	case ProviderLocal, ProviderGoogle, ProviderKakao, ProviderNaver:
		return true
	default:
		return false
	}
}
