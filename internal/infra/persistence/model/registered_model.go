package model

import (
	"time"

	"github.com/google/uuid"

	"mdesk/internal/domain/entity"
)

// RegisteredModel mirrors the 'models' table. Domestic and overseas models
// share one table; nationality-specific columns stay NULL on the other kind.
type RegisteredModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name             string    `gorm:"type:varchar(100);not null;index:idx_models_identity"`
	StageName        *string   `gorm:"type:varchar(100)"`
	BirthDate        time.Time `gorm:"type:date;not null;index:idx_models_identity"`
	Gender           string    `gorm:"type:varchar(10);not null"`
	Phone            string    `gorm:"type:varchar(20);not null;index:idx_models_identity"`
	Nationality      *string   `gorm:"type:varchar(50)"`
	Instagram        *string   `gorm:"type:varchar(100)"`
	YouTube          *string   `gorm:"type:varchar(100);column:youtube"`
	AddressCity      *string   `gorm:"type:varchar(50)"`
	AddressDistrict  *string   `gorm:"type:varchar(50)"`
	AddressStreet    *string   `gorm:"type:varchar(200)"`
	SpecialAbilities *string   `gorm:"type:varchar(500)"`
	OtherLanguages   *string   `gorm:"type:varchar(200)"`
	HasTattoo        bool      `gorm:"not null;default:false"`
	TattooLocation   *string   `gorm:"type:varchar(100)"`
	TattooSize       *string   `gorm:"type:varchar(50)"`
	Height           float64   `gorm:"not null"`
	Weight           *float64
	TopSize          *string `gorm:"type:varchar(10)"`
	BottomSize       *string `gorm:"type:varchar(10)"`
	ShoesSize        *string `gorm:"type:varchar(10)"`
	IsForeigner      bool    `gorm:"not null;index"`

	// Domestic-only columns.
	HasAgency          *bool
	AgencyName         *string `gorm:"type:varchar(100)"`
	AgencyManagerName  *string `gorm:"type:varchar(100)"`
	AgencyManagerPhone *string `gorm:"type:varchar(20)"`
	TikTok             *string `gorm:"type:varchar(100);column:tiktok"`

	// Overseas-only columns.
	KakaoTalk     *string `gorm:"type:varchar(100);column:kakaotalk"`
	FirstLanguage *string `gorm:"type:varchar(50)"`
	KoreanLevel   *string `gorm:"type:varchar(20)"`
	VisaType      *string `gorm:"type:varchar(10)"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time

	CameraTests []CameraTestModel `gorm:"foreignKey:ModelID"`
}

// TableName explicitly sets the table name for GORM.
func (RegisteredModel) TableName() string {
	return "models"
}

// ToEntity converts the persistence model to a domain entity.
func (m *RegisteredModel) ToEntity() *entity.Model {
	e := &entity.Model{
		ID:               m.ID,
		Name:             m.Name,
		StageName:        m.StageName,
		BirthDate:        m.BirthDate,
		Gender:           entity.Gender(m.Gender),
		Phone:            m.Phone,
		Nationality:      m.Nationality,
		Instagram:        m.Instagram,
		YouTube:          m.YouTube,
		AddressCity:      m.AddressCity,
		AddressDistrict:  m.AddressDistrict,
		AddressStreet:    m.AddressStreet,
		SpecialAbilities: m.SpecialAbilities,
		OtherLanguages:   m.OtherLanguages,
		HasTattoo:        m.HasTattoo,
		TattooLocation:   m.TattooLocation,
		TattooSize:       m.TattooSize,
		Height:           m.Height,
		Weight:           m.Weight,
		TopSize:          m.TopSize,
		BottomSize:       m.BottomSize,
		ShoesSize:        m.ShoesSize,
		IsForeigner:      m.IsForeigner,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}

	if m.IsForeigner {
		overseas := &entity.OverseasProfile{
			KakaoTalk:     m.KakaoTalk,
			FirstLanguage: m.FirstLanguage,
		}
		if m.KoreanLevel != nil {
			overseas.KoreanLevel = entity.KoreanLevel(*m.KoreanLevel)
		}
		if m.VisaType != nil {
			overseas.VisaType = entity.VisaType(*m.VisaType)
		}
		e.Overseas = overseas
	} else {
		domestic := &entity.DomesticProfile{
			AgencyName:         m.AgencyName,
			AgencyManagerName:  m.AgencyManagerName,
			AgencyManagerPhone: m.AgencyManagerPhone,
			TikTok:             m.TikTok,
		}
		if m.HasAgency != nil {
			domestic.HasAgency = *m.HasAgency
		}
		e.Domestic = domestic
	}

	return e
}

// RegisteredModelFromEntity converts a domain entity to the persistence model.
func RegisteredModelFromEntity(e *entity.Model) *RegisteredModel {
	m := &RegisteredModel{
		ID:               e.ID,
		Name:             e.Name,
		StageName:        e.StageName,
		BirthDate:        e.BirthDate,
		Gender:           e.Gender.String(),
		Phone:            e.Phone,
		Nationality:      e.Nationality,
		Instagram:        e.Instagram,
		YouTube:          e.YouTube,
		AddressCity:      e.AddressCity,
		AddressDistrict:  e.AddressDistrict,
		AddressStreet:    e.AddressStreet,
		SpecialAbilities: e.SpecialAbilities,
		OtherLanguages:   e.OtherLanguages,
		HasTattoo:        e.HasTattoo,
		TattooLocation:   e.TattooLocation,
		TattooSize:       e.TattooSize,
		Height:           e.Height,
		Weight:           e.Weight,
		TopSize:          e.TopSize,
		BottomSize:       e.BottomSize,
		ShoesSize:        e.ShoesSize,
		IsForeigner:      e.IsForeigner,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}

	if e.Domestic != nil {
		hasAgency := e.Domestic.HasAgency
		m.HasAgency = &hasAgency
		m.AgencyName = e.Domestic.AgencyName
		m.AgencyManagerName = e.Domestic.AgencyManagerName
		m.AgencyManagerPhone = e.Domestic.AgencyManagerPhone
		m.TikTok = e.Domestic.TikTok
	}

	if e.Overseas != nil {
		m.KakaoTalk = e.Overseas.KakaoTalk
		m.FirstLanguage = e.Overseas.FirstLanguage
		koreanLevel := e.Overseas.KoreanLevel.String()
		m.KoreanLevel = &koreanLevel
		visaType := e.Overseas.VisaType.String()
		m.VisaType = &visaType
	}

	return m
}
