package entity

import (
	"time"

	"github.com/google/uuid"
)

// Model represents a person registered in the agency's casting pool.
// A single table holds both domestic and overseas models; IsForeigner
// selects which of the nationality-specific field groups is meaningful.
type Model struct {
	ID               uuid.UUID  // The unique identifier for the model.
	Name             string     // Real name. Long enough for full western names.
	StageName        *string    // Stage or activity name.
	BirthDate        time.Time  // Date of birth. Only the date part is significant.
	Gender           Gender     // Gender of the model.
	Phone            string     // Contact number in E.164 form.
	Nationality      *string    // Free-form nationality.
	Instagram        *string    // Instagram handle.
	YouTube          *string    // YouTube channel.
	AddressCity      *string    // City/province part of the address.
	AddressDistrict  *string    // District part of the address.
	AddressStreet    *string    // Street-level part of the address.
	SpecialAbilities *string    // Free-form skills and talents.
	OtherLanguages   *string    // Languages spoken besides the first language.
	HasTattoo        bool       // Whether the model has tattoos.
	TattooLocation   *string    // Where the tattoos are. Required when HasTattoo.
	TattooSize       *string    // How large the tattoos are. Required when HasTattoo.
	Height           float64    // Height in centimeters.
	Weight           *float64   // Weight in kilograms.
	TopSize          *string    // Top clothing size.
	BottomSize       *string    // Bottom clothing size.
	ShoesSize        *string    // Shoe size.
	IsForeigner      bool       // Selects the domestic or overseas field group.
	CreatedAt        time.Time  // Timestamp of when this model was registered.
	UpdatedAt        time.Time  // Timestamp of the last modification.

	Domestic *DomesticProfile // Set only when IsForeigner is false.
	Overseas *OverseasProfile // Set only when IsForeigner is true.
}

// DomesticProfile holds the fields collected only for Korean models.
type DomesticProfile struct {
	HasAgency          bool    // Whether the model already belongs to an agency.
	AgencyName         *string // Agency name. Required when HasAgency.
	AgencyManagerName  *string // Name of the agency-side manager.
	AgencyManagerPhone *string // Manager contact number in E.164 form.
	TikTok             *string // TikTok handle.
}

// OverseasProfile holds the fields collected only for foreign models.
type OverseasProfile struct {
	KakaoTalk     *string     // KakaoTalk ID.
	FirstLanguage *string     // Native language.
	KoreanLevel   KoreanLevel // Self-assessed Korean fluency.
	VisaType      VisaType    // Current Korean visa classification.
}

// PhysicalSize is the measurement subset used for wardrobe fitting.
type PhysicalSize struct {
	ModelID    uuid.UUID
	Height     float64
	Weight     *float64
	TopSize    *string
	BottomSize *string
	ShoesSize  *string
}
