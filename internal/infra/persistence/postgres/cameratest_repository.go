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

// cameraTestRepository implements the domain.CameraTestRepository interface using GORM.
type cameraTestRepository struct {
	db *gorm.DB
}

// NewCameraTestRepository is the constructor for cameraTestRepository.
func NewCameraTestRepository(db *gorm.DB) repository.CameraTestRepository {
	return &cameraTestRepository{db: db}
}

// Create persists a new visit. The unique index on (model_id, visited_on)
// backs the one-visit-per-day rule, so concurrent registrations cannot both
// succeed.
func (repo *cameraTestRepository) Create(ctx context.Context, cameraTest *entity.CameraTest) error {
	cameraTestM := model.CameraTestModelFromEntity(cameraTest)

	if err := repo.db.WithContext(ctx).Create(cameraTestM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrVisitAlreadyRegistered
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrModelNotFound
		}

		return errors.Wrap(err, "failed to create camera test")
	}

	cameraTest.ID = cameraTestM.ID
	cameraTest.CreatedAt = cameraTestM.CreatedAt
	cameraTest.UpdatedAt = cameraTestM.UpdatedAt

	return nil
}

// FindLatestByModel retrieves the model's most recent visit.
func (repo *cameraTestRepository) FindLatestByModel(ctx context.Context, modelID uuid.UUID) (*entity.CameraTest, error) {
	var cameraTestM model.CameraTestModel
	err := repo.db.WithContext(ctx).
		Where("model_id = ?", modelID).
		Order("visited_at DESC").
		First(&cameraTestM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCameraTestNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest camera test")
	}

	return cameraTestM.ToEntity(), nil
}

// FindByModelOnDay retrieves the model's visit on the given calendar day.
func (repo *cameraTestRepository) FindByModelOnDay(ctx context.Context, modelID uuid.UUID, day time.Time) (*entity.CameraTest, error) {
	var cameraTestM model.CameraTestModel
	err := repo.db.WithContext(ctx).
		Where("model_id = ? AND visited_on = ?", modelID, model.TruncateToDay(day)).
		First(&cameraTestM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCameraTestNotFound
		}

		return nil, errors.Wrap(err, "failed to find camera test on day")
	}

	return cameraTestM.ToEntity(), nil
}

// UpdateStatus sets the status of the model's most recent visit and returns
// the updated row.
func (repo *cameraTestRepository) UpdateStatus(ctx context.Context, modelID uuid.UUID, status entity.CameraTestStatus) (*entity.CameraTest, error) {
	var cameraTestM model.CameraTestModel
	err := repo.db.WithContext(ctx).
		Where("model_id = ?", modelID).
		Order("visited_at DESC").
		First(&cameraTestM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCameraTestNotFound
		}

		return nil, errors.Wrap(err, "failed to find camera test for status update")
	}

	err = repo.db.WithContext(ctx).
		Model(&cameraTestM).
		Update("status", status.String()).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to update camera test status")
	}

	return cameraTestM.ToEntity(), nil
}

// DeleteByModel removes all visits of a model.
func (repo *cameraTestRepository) DeleteByModel(ctx context.Context, modelID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Delete(&model.CameraTestModel{}, "model_id = ?", modelID).Error
	if err != nil {
		return errors.Wrap(err, "failed to delete camera tests")
	}

	return nil
}

// DailyRegistrations counts distinct visiting models per day over [start, end].
func (repo *cameraTestRepository) DailyRegistrations(ctx context.Context, start, end time.Time) ([]repository.DailyCount, error) {
	var counts []repository.DailyCount
	err := repo.db.WithContext(ctx).
		Model(&model.CameraTestModel{}).
		Select("visited_on AS date, COUNT(DISTINCT model_id) AS count").
		Where("visited_on BETWEEN ? AND ?", model.TruncateToDay(start), model.TruncateToDay(end)).
		Group("visited_on").
		Order("visited_on DESC").
		Scan(&counts).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to load daily registrations")
	}

	return counts, nil
}

// ScheduleByDay lists the visits of one calendar day joined with model
// details, earliest visit first. DISTINCT ON keeps one row per model.
func (repo *cameraTestRepository) ScheduleByDay(ctx context.Context, day time.Time) ([]repository.ScheduleEntry, error) {
	var entries []repository.ScheduleEntry
	err := repo.db.WithContext(ctx).Raw(`
		SELECT
			ct.id          AS camera_test_id,
			ct.model_id    AS model_id,
			ct.status      AS status,
			ct.visited_at  AS visited_at,
			m.name         AS name,
			m.birth_date   AS birth_date,
			m.nationality  AS nationality,
			m.height       AS height,
			m.agency_name  AS agency_name,
			m.visa_type    AS visa_type
		FROM (
			SELECT DISTINCT ON (model_id) id, model_id, status, visited_at
			FROM camera_tests
			WHERE visited_on = ?
			ORDER BY model_id, visited_at ASC
		) ct
		INNER JOIN models m ON m.id = ct.model_id
		ORDER BY ct.visited_at ASC`,
		model.TruncateToDay(day),
	).Scan(&entries).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to load day schedule")
	}

	return entries, nil
}

// CountDistinctModelsOnDay counts distinct models with a visit on the day.
func (repo *cameraTestRepository) CountDistinctModelsOnDay(ctx context.Context, day time.Time) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.CameraTestModel{}).
		Where("visited_on = ?", model.TruncateToDay(day)).
		Distinct("model_id").
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count day registrations")
	}

	return count, nil
}

// CountPendingOnDay counts distinct models whose visit on the day is still pending.
func (repo *cameraTestRepository) CountPendingOnDay(ctx context.Context, day time.Time) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.CameraTestModel{}).
		Where("visited_on = ? AND status = ?", model.TruncateToDay(day), entity.CameraTestPending.String()).
		Distinct("model_id").
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count pending camera tests")
	}

	return count, nil
}
