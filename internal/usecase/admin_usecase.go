package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"mdesk/internal/domain/entity"
	"mdesk/internal/domain/repository"
)

// SearchModelsInput wraps a search filter with pagination.
type SearchModelsInput struct {
	Filter repository.ModelSearchFilter
	Page   repository.Page
}

// DashboardSummary aggregates today's headline numbers.
type DashboardSummary struct {
	TodayVisits         int64
	TodayPendingVisits  int64
	IncompleteAddresses int64
}

// DashboardOutput is the full dashboard payload: today's summary plus
// zero-filled daily registration series for the last week and month.
type DashboardOutput struct {
	Summary DashboardSummary
	Weekly  []repository.DailyCount
	Monthly []repository.DailyCount
}

// AdminUsecase defines the back-office operations available to staff.
type AdminUsecase interface {
	// SearchModels searches models with the given filter and pagination.
	SearchModels(ctx context.Context, input SearchModelsInput) (*ModelListOutput, error)

	// GetFilterOptions returns the distinct values available for the
	// search filter dropdowns.
	GetFilterOptions(ctx context.Context) (*repository.FilterOptions, error)

	// GetDashboard assembles the dashboard statistics.
	GetDashboard(ctx context.Context, now time.Time) (*DashboardOutput, error)

	// GetDailySchedule lists the visits scheduled for the given day.
	GetDailySchedule(ctx context.Context, day time.Time) ([]*repository.ScheduleEntry, error)

	// RegisterVisit opens a new pending camera test visit for the model
	// on the current day. At most one visit per model per day is allowed.
	RegisterVisit(ctx context.Context, modelID uuid.UUID, now time.Time) (*entity.CameraTest, error)

	// UpdateCameraTestStatus moves the model's latest visit to the given
	// status, enforcing the allowed transitions.
	UpdateCameraTestStatus(ctx context.Context, modelID uuid.UUID, status entity.CameraTestStatus) (*entity.CameraTest, error)

	// GetCameraTest returns the model's latest visit.
	GetCameraTest(ctx context.Context, modelID uuid.UUID) (*entity.CameraTest, error)

	// ExportDomesticExcel renders all domestic models as an xlsx workbook.
	ExportDomesticExcel(ctx context.Context) ([]byte, error)

	// ExportOverseasExcel renders all overseas models as an xlsx workbook.
	ExportOverseasExcel(ctx context.Context) ([]byte, error)
}
