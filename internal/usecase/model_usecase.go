package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"mdesk/internal/domain/entity"
	"mdesk/internal/domain/repository"
)

// --- Input DTOs ---

// RegisterModelInput carries the fields shared by domestic and overseas
// model registrations. Optional fields are pointers so "not provided"
// can be told apart from a zero value.
type RegisterModelInput struct {
	Name             string
	StageName        *string
	BirthDate        time.Time
	Gender           entity.Gender
	Phone            string
	Nationality      *string
	Instagram        *string
	YouTube          *string
	AddressCity      *string
	AddressDistrict  *string
	AddressStreet    *string
	SpecialAbilities *string
	OtherLanguages   *string
	HasTattoo        bool
	TattooLocation   *string
	TattooSize       *string
	Height           float64
	Weight           *float64
	TopSize          *string
	BottomSize       *string
	ShoesSize        *string

	// Domestic-only fields.
	HasAgency          *bool
	AgencyName         *string
	AgencyManagerName  *string
	AgencyManagerPhone *string
	TikTok             *string

	// Overseas-only fields.
	KakaoTalk     *string
	FirstLanguage *string
	KoreanLevel   *entity.KoreanLevel
	VisaType      *entity.VisaType
}

// UpdateModelInput carries a partial update. Nil fields are left unchanged.
type UpdateModelInput struct {
	Name             *string
	StageName        *string
	BirthDate        *time.Time
	Gender           *entity.Gender
	Phone            *string
	Nationality      *string
	Instagram        *string
	YouTube          *string
	AddressCity      *string
	AddressDistrict  *string
	AddressStreet    *string
	SpecialAbilities *string
	OtherLanguages   *string
	HasTattoo        *bool
	TattooLocation   *string
	TattooSize       *string
	Height           *float64
	Weight           *float64
	TopSize          *string
	BottomSize       *string
	ShoesSize        *string

	HasAgency          *bool
	AgencyName         *string
	AgencyManagerName  *string
	AgencyManagerPhone *string
	TikTok             *string

	KakaoTalk     *string
	FirstLanguage *string
	KoreanLevel   *entity.KoreanLevel
	VisaType      *entity.VisaType
}

// IsEmpty reports whether the patch carries no change at all.
func (i UpdateModelInput) IsEmpty() bool {
	return i == UpdateModelInput{}
}

// FindModelByInfoInput identifies a model by the self-service lookup triple.
type FindModelByInfoInput struct {
	Name      string
	Phone     string
	BirthDate time.Time
}

// --- Output DTOs ---

// RegisterModelOutput returns the created model together with the camera
// test visit opened for it.
type RegisterModelOutput struct {
	Model      *entity.Model
	CameraTest *entity.CameraTest
}

// ModelListOutput returns one page of models.
type ModelListOutput struct {
	Models []*entity.Model
	Total  int64
}

// ModelUsecase defines model registration and self-service operations.
type ModelUsecase interface {
	// RegisterDomestic registers a domestic model and opens a pending
	// camera test visit for today in the same transaction.
	RegisterDomestic(ctx context.Context, input RegisterModelInput) (*RegisterModelOutput, error)

	// RegisterOverseas registers an overseas model and opens a pending
	// camera test visit for today in the same transaction.
	RegisterOverseas(ctx context.Context, input RegisterModelInput) (*RegisterModelOutput, error)

	// UpdateDomestic applies a partial update to a domestic model.
	UpdateDomestic(ctx context.Context, id uuid.UUID, input UpdateModelInput) (*entity.Model, error)

	// UpdateOverseas applies a partial update to an overseas model.
	UpdateOverseas(ctx context.Context, id uuid.UUID, input UpdateModelInput) (*entity.Model, error)

	// ListDomestic lists domestic models, newest first.
	ListDomestic(ctx context.Context, page repository.Page) (*ModelListOutput, error)

	// ListOverseas lists overseas models, newest first.
	ListOverseas(ctx context.Context, page repository.Page) (*ModelListOutput, error)

	// GetModel retrieves a single model by ID.
	GetModel(ctx context.Context, id uuid.UUID) (*entity.Model, error)

	// FindByInfo locates a model by name, phone and birth date so a
	// returning visitor can pull up their own record.
	FindByInfo(ctx context.Context, input FindModelByInfoInput) (*entity.Model, error)

	// DeleteModel removes a model together with its camera test history.
	DeleteModel(ctx context.Context, id uuid.UUID) error

	// GetPhysicalSize returns just the measurements of a model.
	GetPhysicalSize(ctx context.Context, id uuid.UUID) (*entity.PhysicalSize, error)
}
