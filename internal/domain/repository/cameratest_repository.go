package repository

import (
	"context"
	"errors"
	"time"

	"mdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// Camera-test persistence errors.
var (
	// ErrCameraTestNotFound is returned when no visit exists for the query.
	ErrCameraTestNotFound = errors.New("camera test not found")
	// ErrVisitAlreadyRegistered is returned when a model already has a visit
	// on the requested calendar day.
	ErrVisitAlreadyRegistered = errors.New("visit already registered for this day")
)

// DailyCount is one row of the registration statistics: how many distinct
// models visited on a given calendar day.
type DailyCount struct {
	Date  time.Time
	Count int64
}

// ScheduleEntry is one row of a day's visit schedule, joining the visit with
// the columns of the model the front desk needs at a glance.
type ScheduleEntry struct {
	CameraTestID uuid.UUID
	ModelID      uuid.UUID
	Status       entity.CameraTestStatus
	VisitedAt    time.Time
	Name         string
	BirthDate    time.Time
	Nationality  *string
	Height       float64
	AgencyName   *string
	VisaType     *entity.VisaType
}

// CameraTestRepository defines the standard operations for camera test persistence.
type CameraTestRepository interface {
	// Create persists a new visit. Returns ErrVisitAlreadyRegistered when the
	// model already has a visit on the same calendar day.
	Create(ctx context.Context, cameraTest *entity.CameraTest) error

	// FindLatestByModel retrieves the model's most recent visit.
	FindLatestByModel(ctx context.Context, modelID uuid.UUID) (*entity.CameraTest, error)

	// FindByModelOnDay retrieves the model's visit on the given calendar day.
	FindByModelOnDay(ctx context.Context, modelID uuid.UUID, day time.Time) (*entity.CameraTest, error)

	// UpdateStatus sets the status of the model's most recent visit.
	UpdateStatus(ctx context.Context, modelID uuid.UUID, status entity.CameraTestStatus) (*entity.CameraTest, error)

	// DeleteByModel removes all visits of a model.
	DeleteByModel(ctx context.Context, modelID uuid.UUID) error

	// DailyRegistrations counts distinct visiting models per day over [start, end].
	DailyRegistrations(ctx context.Context, start, end time.Time) ([]DailyCount, error)

	// ScheduleByDay lists the visits of one calendar day joined with model
	// details, earliest visit first. A model appears at most once.
	ScheduleByDay(ctx context.Context, day time.Time) ([]ScheduleEntry, error)

	// CountDistinctModelsOnDay counts distinct models with a visit on the day.
	CountDistinctModelsOnDay(ctx context.Context, day time.Time) (int64, error)

	// CountPendingOnDay counts distinct models whose visit on the day is still pending.
	CountPendingOnDay(ctx context.Context, day time.Time) (int64, error)
}
