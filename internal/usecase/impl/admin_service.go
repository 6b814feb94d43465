package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "mdesk/internal/delivery/context"
	"mdesk/internal/domain/entity"
	domainerrors "mdesk/internal/domain/errors"
	"mdesk/internal/domain/repository"
	"mdesk/internal/domain/service"
	"mdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Lengths of the zero-filled daily registration series on the dashboard.
const (
	weeklySeriesDays  = 7
	monthlySeriesDays = 30
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager      repository.TransactionManager
	modelRepo      repository.ModelRepository
	cameraTestRepo repository.CameraTestRepository
	exporter       service.ExcelExporter
	logger         *slog.Logger
	now            func() time.Time
}

// AdminServiceParams holds dependencies for adminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	ModelRepo      repository.ModelRepository
	CameraTestRepo repository.CameraTestRepository
	Exporter       service.ExcelExporter
	Logger         *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager:      params.TxManager,
		modelRepo:      params.ModelRepo,
		cameraTestRepo: params.CameraTestRepo,
		exporter:       params.Exporter,
		logger:         params.Logger,
		now:            time.Now,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SearchModels searches models with the given filter and pagination.
func (srv *adminService) SearchModels(ctx context.Context, input usecase.SearchModelsInput) (*usecase.ModelListOutput, error) {
	srv.log(ctx).Debug("Searching models", slog.Bool("isForeigner", input.Filter.IsForeigner), slog.Int("page", input.Page.Number))

	models, err := srv.modelRepo.Search(ctx, input.Filter, input.Page)
	if err != nil {
		srv.log(ctx).Error("Failed to search models", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to search models")
	}

	total, err := srv.modelRepo.Count(ctx, input.Filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count search results")
	}

	return &usecase.ModelListOutput{Models: models, Total: total}, nil
}

// GetFilterOptions returns the distinct values available for the search filter dropdowns.
func (srv *adminService) GetFilterOptions(ctx context.Context) (*repository.FilterOptions, error) {
	options, err := srv.modelRepo.GetFilterOptions(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to collect filter options", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to collect filter options")
	}

	return options, nil
}

// GetDashboard assembles today's summary and the zero-filled weekly and
// monthly registration series.
func (srv *adminService) GetDashboard(ctx context.Context, now time.Time) (*usecase.DashboardOutput, error) {
	srv.log(ctx).Debug("Assembling dashboard", slog.Time("now", now))

	todayVisits, err := srv.cameraTestRepo.CountDistinctModelsOnDay(ctx, now)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count today's visits")
	}

	todayPending, err := srv.cameraTestRepo.CountPendingOnDay(ctx, now)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count today's pending visits")
	}

	monthlyStart := now.AddDate(0, 0, -(monthlySeriesDays - 1))
	counts, err := srv.cameraTestRepo.DailyRegistrations(ctx, monthlyStart, now)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load daily registrations")
	}

	return &usecase.DashboardOutput{
		Summary: usecase.DashboardSummary{
			TodayVisits:        todayVisits,
			TodayPendingVisits: todayPending,
			// Address completeness is not tracked yet; the widget shows zero.
			IncompleteAddresses: 0,
		},
		Weekly:  zeroFillDailySeries(counts, now, weeklySeriesDays),
		Monthly: zeroFillDailySeries(counts, now, monthlySeriesDays),
	}, nil
}

// zeroFillDailySeries expands sparse per-day counts into a dense series of
// the trailing days days ending at now, oldest first.
func zeroFillDailySeries(counts []repository.DailyCount, now time.Time, days int) []repository.DailyCount {
	byDay := make(map[string]int64, len(counts))
	for _, c := range counts {
		byDay[c.Date.Format(time.DateOnly)] = c.Count
	}

	series := make([]repository.DailyCount, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		series = append(series, repository.DailyCount{
			Date:  day,
			Count: byDay[day.Format(time.DateOnly)],
		})
	}

	return series
}

// GetDailySchedule lists the visits scheduled for the given day.
func (srv *adminService) GetDailySchedule(ctx context.Context, day time.Time) ([]*repository.ScheduleEntry, error) {
	entries, err := srv.cameraTestRepo.ScheduleByDay(ctx, day)
	if err != nil {
		srv.log(ctx).Error("Failed to load daily schedule", slog.Time("day", day), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load daily schedule")
	}

	out := make([]*repository.ScheduleEntry, 0, len(entries))
	for i := range entries {
		out = append(out, &entries[i])
	}

	return out, nil
}

// RegisterVisit opens a new pending camera test visit for the model on the
// current day.
func (srv *adminService) RegisterVisit(ctx context.Context, modelID uuid.UUID, now time.Time) (*entity.CameraTest, error) {
	srv.log(ctx).Info("Registering visit", slog.Any("modelID", modelID))

	visit := &entity.CameraTest{
		ModelID:   modelID,
		Status:    entity.CameraTestPending,
		VisitedAt: now,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cameraTestRepo := repoFactory.NewCameraTestRepository()

		if err := cameraTestRepo.Create(ctx, visit); err != nil {
			switch {
			case errors.Is(err, repository.ErrVisitAlreadyRegistered):
				return errors.Wrap(domainerrors.ErrVisitAlreadyRegistered, "register visit failed")
			case errors.Is(err, repository.ErrModelNotFound):
				return errors.Wrap(domainerrors.ErrModelNotFound, "register visit failed")
			}

			return errors.Wrap(err, "failed to create camera test")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute visit registration transaction", slog.Any("modelID", modelID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute visit registration transaction")
	}

	srv.log(ctx).Debug("Visit registered", slog.Any("cameraTestID", visit.ID))

	return visit, nil
}

// UpdateCameraTestStatus moves the model's latest visit to the given status,
// enforcing the allowed transitions.
func (srv *adminService) UpdateCameraTestStatus(ctx context.Context, modelID uuid.UUID, status entity.CameraTestStatus) (*entity.CameraTest, error) {
	srv.log(ctx).Info("Updating camera test status", slog.Any("modelID", modelID), slog.Any("status", status))

	if !status.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid camera test status")
	}

	var updated *entity.CameraTest
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cameraTestRepo := repoFactory.NewCameraTestRepository()

		current, err := cameraTestRepo.FindLatestByModel(ctx, modelID)
		if err != nil {
			if errors.Is(err, repository.ErrCameraTestNotFound) {
				return errors.Wrap(domainerrors.ErrCameraTestNotFound, "status update failed")
			}

			return errors.Wrap(err, "failed to find latest camera test")
		}

		if !current.Status.CanTransitionTo(status) {
			return errors.Wrapf(domainerrors.ErrValidationFailed, "camera test cannot move from %s to %s", current.Status, status)
		}

		updated, err = cameraTestRepo.UpdateStatus(ctx, modelID, status)
		if err != nil {
			return errors.Wrap(err, "failed to update camera test status")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute status update transaction", slog.Any("modelID", modelID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute status update transaction")
	}

	srv.log(ctx).Debug("Camera test status updated", slog.Any("cameraTestID", updated.ID), slog.Any("status", updated.Status))

	return updated, nil
}

// GetCameraTest returns the model's latest visit.
func (srv *adminService) GetCameraTest(ctx context.Context, modelID uuid.UUID) (*entity.CameraTest, error) {
	visit, err := srv.cameraTestRepo.FindLatestByModel(ctx, modelID)
	if err != nil {
		if errors.Is(err, repository.ErrCameraTestNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCameraTestNotFound, "get camera test failed")
		}

		return nil, errors.Wrap(err, "failed to find latest camera test")
	}

	return visit, nil
}

// ExportDomesticExcel renders all domestic models as an xlsx workbook.
func (srv *adminService) ExportDomesticExcel(ctx context.Context) ([]byte, error) {
	return srv.export(ctx, false)
}

// ExportOverseasExcel renders all overseas models as an xlsx workbook.
func (srv *adminService) ExportOverseasExcel(ctx context.Context) ([]byte, error) {
	return srv.export(ctx, true)
}

func (srv *adminService) export(ctx context.Context, isForeigner bool) ([]byte, error) {
	srv.log(ctx).Info("Exporting models to excel", slog.Bool("isForeigner", isForeigner))

	models, err := srv.modelRepo.Search(ctx, repository.ModelSearchFilter{IsForeigner: isForeigner}, repository.Page{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load models for export")
	}

	var workbook []byte
	if isForeigner {
		workbook, err = srv.exporter.ExportOverseas(models)
	} else {
		workbook, err = srv.exporter.ExportDomestic(models)
	}
	if err != nil {
		srv.log(ctx).Error("Failed to render excel export", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to render excel export")
	}

	return workbook, nil
}
