package entity

// Gender represents the gender of a model.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOthers Gender = "OTHERS"
)

// String returns the string representation of the Gender.
func (g Gender) String() string {
	return string(g)
}

// IsValid checks if the Gender is a valid value.
func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOthers:
		return true
	default:
		return false
	}
}

// KoreanLevel represents a foreign model's self-assessed Korean fluency.
type KoreanLevel string

const (
	KoreanLevelBad      KoreanLevel = "BAD"
	KoreanLevelNotBad   KoreanLevel = "NOT_BAD"
	KoreanLevelGood     KoreanLevel = "GOOD"
	KoreanLevelVeryGood KoreanLevel = "VERY_GOOD"
)

// String returns the string representation of the KoreanLevel.
func (k KoreanLevel) String() string {
	return string(k)
}

// IsValid checks if the KoreanLevel is a valid value.
func (k KoreanLevel) IsValid() bool {
	switch k {
	case KoreanLevelBad, KoreanLevelNotBad, KoreanLevelGood, KoreanLevelVeryGood:
		return true
	default:
		return false
	}
}

// VisaType represents a Korean visa classification, with the hyphen dropped
// (the immigration code E-6 is stored as E6).
type VisaType string

// Visa classifications accepted at registration time.
const (
	VisaC1  VisaType = "C1"
	VisaC2  VisaType = "C2"
	VisaC3  VisaType = "C3"
	VisaC4  VisaType = "C4"
	VisaE1  VisaType = "E1"
	VisaE2  VisaType = "E2"
	VisaE3  VisaType = "E3"
	VisaE4  VisaType = "E4"
	VisaE5  VisaType = "E5"
	VisaE6  VisaType = "E6"
	VisaE7  VisaType = "E7"
	VisaE8  VisaType = "E8"
	VisaE9  VisaType = "E9"
	VisaE10 VisaType = "E10"
	VisaF1  VisaType = "F1"
	VisaF2  VisaType = "F2"
	VisaF3  VisaType = "F3"
	VisaF4  VisaType = "F4"
	VisaF5  VisaType = "F5"
	VisaF6  VisaType = "F6"
	VisaH1  VisaType = "H1"
	VisaH2  VisaType = "H2"
	VisaD1  VisaType = "D1"
	VisaD2  VisaType = "D2"
	VisaD3  VisaType = "D3"
	VisaD4  VisaType = "D4"
	VisaD5  VisaType = "D5"
	VisaD6  VisaType = "D6"
	VisaD7  VisaType = "D7"
	VisaD8  VisaType = "D8"
	VisaD9  VisaType = "D9"
	VisaD10 VisaType = "D10"
	VisaA1  VisaType = "A1"
	VisaA2  VisaType = "A2"
	VisaA3  VisaType = "A3"
	VisaB1  VisaType = "B1"
	VisaB2  VisaType = "B2"
)

var validVisaTypes = map[VisaType]struct{}{
	VisaC1: {}, VisaC2: {}, VisaC3: {}, VisaC4: {},
	VisaE1: {}, VisaE2: {}, VisaE3: {}, VisaE4: {}, VisaE5: {},
	VisaE6: {}, VisaE7: {}, VisaE8: {}, VisaE9: {}, VisaE10: {},
	VisaF1: {}, VisaF2: {}, VisaF3: {}, VisaF4: {}, VisaF5: {}, VisaF6: {},
	VisaH1: {}, VisaH2: {},
	VisaD1: {}, VisaD2: {}, VisaD3: {}, VisaD4: {}, VisaD5: {},
	VisaD6: {}, VisaD7: {}, VisaD8: {}, VisaD9: {}, VisaD10: {},
	VisaA1: {}, VisaA2: {}, VisaA3: {},
	VisaB1: {}, VisaB2: {},
}

// String returns the string representation of the VisaType.
func (v VisaType) String() string {
	return string(v)
}

// IsValid checks if the VisaType is a valid value.
func (v VisaType) IsValid() bool {
	_, ok := validVisaTypes[v]

	return ok
}
