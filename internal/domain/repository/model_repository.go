package repository

import (
	"context"
	"errors"
	"time"

	"mdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrModelNotFound is a domain-specific error returned when a model is not found.
var ErrModelNotFound = errors.New("model not found")

// ModelSearchFilter carries the optional conditions of a model search.
// Zero-valued fields are ignored. Text fields match as case-insensitive substrings.
type ModelSearchFilter struct {
	IsForeigner      bool
	Name             string
	Gender           entity.Gender
	Nationality      string
	AddressCity      string
	AddressDistrict  string
	AddressStreet    string
	SpecialAbilities string
	OtherLanguages   string
	KoreanLevel      entity.KoreanLevel // Only applied when IsForeigner is true.
}

// Page carries offset pagination parameters. Page numbers start at 1.
type Page struct {
	Number int
	Size   int
}

// Offset returns the row offset for the page.
func (p Page) Offset() int {
	if p.Number < 1 {
		return 0
	}

	return (p.Number - 1) * p.Size
}

// FilterOptions aggregates the distinct values usable as search filters.
type FilterOptions struct {
	Nationalities []string
	Specialties   []string
	Languages     []string
	AddressCities []string
}

// ModelRepository defines the standard operations for model persistence.
type ModelRepository interface {
	// FindByID retrieves a single model by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Model, error)

	// FindByInfo retrieves a model by the identity triple captured at registration.
	FindByInfo(ctx context.Context, name, phone string, birthDate time.Time) (*entity.Model, error)

	// Create persists a new model entity to the storage.
	Create(ctx context.Context, model *entity.Model) error

	// Update modifies an existing model entity in the storage.
	Update(ctx context.Context, model *entity.Model) error

	// Delete removes a model from the storage.
	Delete(ctx context.Context, id uuid.UUID) error

	// Search lists models matching the filter, newest first.
	Search(ctx context.Context, filter ModelSearchFilter, page Page) ([]*entity.Model, error)

	// Count returns the number of models matching the filter.
	Count(ctx context.Context, filter ModelSearchFilter) (int64, error)

	// GetPhysicalSize retrieves the measurement subset of a model.
	GetPhysicalSize(ctx context.Context, id uuid.UUID) (*entity.PhysicalSize, error)

	// GetFilterOptions collects the distinct filterable values present in storage.
	GetFilterOptions(ctx context.Context) (*FilterOptions, error)
}
