package postgres

import (
	"context"
	"time"

	"mdesk/internal/domain/entity"
	"mdesk/internal/domain/repository"
	"mdesk/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// modelRepository implements the domain.ModelRepository interface using GORM.
type modelRepository struct {
	db *gorm.DB
}

// NewModelRepository is the constructor for modelRepository.
func NewModelRepository(db *gorm.DB) repository.ModelRepository {
	return &modelRepository{db: db}
}

// FindByID retrieves a single model by its unique ID.
func (repo *modelRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Model, error) {
	var modelM model.RegisteredModel
	if err := repo.db.WithContext(ctx).First(&modelM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrModelNotFound
		}

		return nil, errors.Wrap(err, "failed to find model by id")
	}

	return modelM.ToEntity(), nil
}

// FindByInfo retrieves a model by the identity triple captured at registration.
// Phone is compared exactly (already normalized), birth date by its date part.
func (repo *modelRepository) FindByInfo(ctx context.Context, name, phone string, birthDate time.Time) (*entity.Model, error) {
	var modelM model.RegisteredModel
	err := repo.db.WithContext(ctx).
		Where("name = ? AND phone = ? AND birth_date = ?", name, phone, model.TruncateToDay(birthDate)).
		First(&modelM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrModelNotFound
		}

		return nil, errors.Wrap(err, "failed to find model by info")
	}

	return modelM.ToEntity(), nil
}

// Create persists a new model entity to the database.
func (repo *modelRepository) Create(ctx context.Context, m *entity.Model) error {
	modelM := model.RegisteredModelFromEntity(m)

	if err := repo.db.WithContext(ctx).Create(modelM).Error; err != nil {
		return errors.Wrap(err, "failed to create model")
	}

	// Propagate database-generated values back to the entity.
	m.ID = modelM.ID
	m.CreatedAt = modelM.CreatedAt
	m.UpdatedAt = modelM.UpdatedAt

	return nil
}

// Update modifies an existing model entity in the database. All columns are
// written from the entity, so callers must load-modify-save.
func (repo *modelRepository) Update(ctx context.Context, m *entity.Model) error {
	modelM := model.RegisteredModelFromEntity(m)

	result := repo.db.WithContext(ctx).
		Model(&model.RegisteredModel{}).
		Where("id = ?", m.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(modelM)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update model")
	}
	if result.RowsAffected == 0 {
		return repository.ErrModelNotFound
	}

	return nil
}

// Delete removes a model from the database.
func (repo *modelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.RegisteredModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete model")
	}
	if result.RowsAffected == 0 {
		return repository.ErrModelNotFound
	}

	return nil
}

// Search lists models matching the filter, newest first.
func (repo *modelRepository) Search(ctx context.Context, filter repository.ModelSearchFilter, page repository.Page) ([]*entity.Model, error) {
	query := repo.applyFilter(repo.db.WithContext(ctx), filter).
		Order("created_at DESC")

	if page.Size > 0 {
		query = query.Limit(page.Size).Offset(page.Offset())
	}

	var modelMs []model.RegisteredModel
	if err := query.Find(&modelMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search models")
	}

	models := make([]*entity.Model, len(modelMs))
	for i := range modelMs {
		models[i] = modelMs[i].ToEntity()
	}

	return models, nil
}

// Count returns the number of models matching the filter.
func (repo *modelRepository) Count(ctx context.Context, filter repository.ModelSearchFilter) (int64, error) {
	var count int64
	err := repo.applyFilter(repo.db.WithContext(ctx).Model(&model.RegisteredModel{}), filter).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count models")
	}

	return count, nil
}

// GetPhysicalSize retrieves the measurement subset of a model.
func (repo *modelRepository) GetPhysicalSize(ctx context.Context, id uuid.UUID) (*entity.PhysicalSize, error) {
	var modelM model.RegisteredModel
	err := repo.db.WithContext(ctx).
		Select("id", "height", "weight", "top_size", "bottom_size", "shoes_size").
		First(&modelM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrModelNotFound
		}

		return nil, errors.Wrap(err, "failed to get model physical size")
	}

	return &entity.PhysicalSize{
		ModelID:    modelM.ID,
		Height:     modelM.Height,
		Weight:     modelM.Weight,
		TopSize:    modelM.TopSize,
		BottomSize: modelM.BottomSize,
		ShoesSize:  modelM.ShoesSize,
	}, nil
}

// GetFilterOptions collects the distinct filterable values present in storage.
func (repo *modelRepository) GetFilterOptions(ctx context.Context) (*repository.FilterOptions, error) {
	options := &repository.FilterOptions{}

	distinctQueries := []struct {
		dest   *[]string
		column string
		query  string
	}{
		{&options.Nationalities, "nationality",
			"SELECT DISTINCT nationality FROM models WHERE nationality IS NOT NULL AND nationality != '' ORDER BY nationality"},
		{&options.Specialties, "special_abilities",
			"SELECT DISTINCT TRIM(unnest(string_to_array(special_abilities, ','))) AS value FROM models WHERE special_abilities IS NOT NULL AND special_abilities != '' ORDER BY value"},
		{&options.Languages, "other_languages",
			"SELECT DISTINCT TRIM(unnest(string_to_array(other_languages, ','))) AS value FROM models WHERE other_languages IS NOT NULL AND other_languages != '' ORDER BY value"},
		{&options.AddressCities, "address_city",
			"SELECT DISTINCT address_city FROM models WHERE address_city IS NOT NULL AND address_city != '' ORDER BY address_city"},
	}

	for _, dq := range distinctQueries {
		if err := repo.db.WithContext(ctx).Raw(dq.query).Scan(dq.dest).Error; err != nil {
			return nil, errors.Wrapf(err, "failed to collect distinct %s", dq.column)
		}
	}

	return options, nil
}

// applyFilter translates a ModelSearchFilter into GORM conditions.
func (repo *modelRepository) applyFilter(query *gorm.DB, filter repository.ModelSearchFilter) *gorm.DB {
	query = query.Where("is_foreigner = ?", filter.IsForeigner)

	likeConditions := []struct {
		column string
		value  string
	}{
		{"name", filter.Name},
		{"nationality", filter.Nationality},
		{"address_city", filter.AddressCity},
		{"address_district", filter.AddressDistrict},
		{"address_street", filter.AddressStreet},
		{"special_abilities", filter.SpecialAbilities},
		{"other_languages", filter.OtherLanguages},
	}
	for _, cond := range likeConditions {
		if cond.value != "" {
			query = query.Where(cond.column+" ILIKE ?", "%"+cond.value+"%")
		}
	}

	if filter.Gender != "" {
		query = query.Where("gender = ?", filter.Gender.String())
	}
	if filter.KoreanLevel != "" && filter.IsForeigner {
		query = query.Where("korean_level = ?", filter.KoreanLevel.String())
	}

	return query
}
