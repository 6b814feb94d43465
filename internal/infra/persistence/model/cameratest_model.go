package model

import (
	"time"

	"github.com/google/uuid"

	"mdesk/internal/domain/entity"
)

// CameraTestModel mirrors the 'camera_tests' table. VisitedOn is the date
// part of VisitedAt, maintained by the repository; the unique index on
// (model_id, visited_on) enforces one visit per model per calendar day at
// the database level.
type CameraTestModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ModelID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_camera_tests_model_day"`
	Status    string    `gorm:"type:varchar(20);not null;default:'PENDING'"`
	VisitedAt time.Time `gorm:"not null;index"`
	VisitedOn time.Time `gorm:"type:date;not null;uniqueIndex:idx_camera_tests_model_day"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CameraTestModel) TableName() string {
	return "camera_tests"
}

// ToEntity converts the persistence model to a domain entity.
func (m *CameraTestModel) ToEntity() *entity.CameraTest {
	return &entity.CameraTest{
		ID:        m.ID,
		ModelID:   m.ModelID,
		Status:    entity.CameraTestStatus(m.Status),
		VisitedAt: m.VisitedAt,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// CameraTestModelFromEntity converts a domain entity to the persistence model.
// VisitedOn is derived from VisitedAt so the day-uniqueness constraint always
// sees a consistent value.
func CameraTestModelFromEntity(e *entity.CameraTest) *CameraTestModel {
	return &CameraTestModel{
		ID:        e.ID,
		ModelID:   e.ModelID,
		Status:    e.Status.String(),
		VisitedAt: e.VisitedAt,
		VisitedOn: TruncateToDay(e.VisitedAt),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// TruncateToDay drops the time-of-day portion, keeping the location.
func TruncateToDay(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
