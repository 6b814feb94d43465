package impl

import (
	"context"
	"testing"
	"time"

	"mdesk/internal/domain/entity"
	domainerrors "mdesk/internal/domain/errors"
	"mdesk/internal/domain/repository"
	mockRepo "mdesk/internal/mocks/repository"
	mockSvc "mdesk/internal/mocks/service"
	"mdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// adminServiceFixtures holds all test dependencies for admin service tests.
type adminServiceFixtures struct {
	service        usecase.AdminUsecase
	txManager      *mockRepo.MockTransactionManager
	modelRepo      *mockRepo.MockModelRepository
	cameraTestRepo *mockRepo.MockCameraTestRepository
	exporter       *mockSvc.MockExcelExporter
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	modelRepo := mockRepo.NewMockModelRepository(t)
	cameraTestRepo := mockRepo.NewMockCameraTestRepository(t)
	exporter := mockSvc.NewMockExcelExporter(t)

	svc := NewAdminService(AdminServiceParams{
		TxManager:      txManager,
		ModelRepo:      modelRepo,
		CameraTestRepo: cameraTestRepo,
		Exporter:       exporter,
		Logger:         newDiscardLogger(),
	})

	return adminServiceFixtures{
		service:        svc,
		txManager:      txManager,
		modelRepo:      modelRepo,
		cameraTestRepo: cameraTestRepo,
		exporter:       exporter,
	}
}

func TestAdminService_SearchModels_ReturnsResultsAndTotal(t *testing.T) {
	fixtures := createTestAdminService(t)

	ctx := context.Background()
	input := usecase.SearchModelsInput{
		Filter: repository.ModelSearchFilter{IsForeigner: true, Nationality: "USA"},
		Page:   repository.Page{Number: 1, Size: 20},
	}
	models := []*entity.Model{{ID: uuid.New()}}

	fixtures.modelRepo.EXPECT().Search(ctx, input.Filter, input.Page).Return(models, nil)
	fixtures.modelRepo.EXPECT().Count(ctx, input.Filter).Return(int64(1), nil)

	output, err := fixtures.service.SearchModels(ctx, input)

	require.NoError(t, err)
	assert.Len(t, output.Models, 1)
	assert.Equal(t, int64(1), output.Total)
}

func TestAdminService_GetDashboard_ZeroFillsSeries(t *testing.T) {
	fixtures := createTestAdminService(t)

	ctx := context.Background()
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	fixtures.cameraTestRepo.EXPECT().CountDistinctModelsOnDay(ctx, now).Return(int64(4), nil)
	fixtures.cameraTestRepo.EXPECT().CountPendingOnDay(ctx, now).Return(int64(2), nil)

	// Only two days in the window have registrations.
	fixtures.cameraTestRepo.EXPECT().
		DailyRegistrations(ctx, mock.AnythingOfType("time.Time"), now).
		Return([]repository.DailyCount{
			{Date: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), Count: 4},
			{Date: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), Count: 1},
		}, nil)

	output, err := fixtures.service.GetDashboard(ctx, now)

	require.NoError(t, err)
	assert.Equal(t, int64(4), output.Summary.TodayVisits)
	assert.Equal(t, int64(2), output.Summary.TodayPendingVisits)
	assert.Equal(t, int64(0), output.Summary.IncompleteAddresses)

	require.Len(t, output.Weekly, 7)
	require.Len(t, output.Monthly, 30)

	// The series run oldest to newest and end today.
	assert.Equal(t, time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC), output.Weekly[0].Date)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), output.Weekly[6].Date)
	assert.Equal(t, int64(4), output.Weekly[6].Count)
	assert.Equal(t, int64(1), output.Weekly[1].Count)
	assert.Equal(t, int64(0), output.Weekly[2].Count)

	assert.Equal(t, time.Date(2025, 5, 17, 0, 0, 0, 0, time.UTC), output.Monthly[0].Date)
	assert.Equal(t, int64(4), output.Monthly[29].Count)
}

func TestAdminService_GetDailySchedule(t *testing.T) {
	fixtures := createTestAdminService(t)

	ctx := context.Background()
	day := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	entries := []repository.ScheduleEntry{
		{CameraTestID: uuid.New(), ModelID: uuid.New(), Name: "Kim Minji", Status: entity.CameraTestPending},
		{CameraTestID: uuid.New(), ModelID: uuid.New(), Name: "Anna Smith", Status: entity.CameraTestConfirmed},
	}

	fixtures.cameraTestRepo.EXPECT().ScheduleByDay(ctx, day).Return(entries, nil)

	schedule, err := fixtures.service.GetDailySchedule(ctx, day)

	require.NoError(t, err)
	require.Len(t, schedule, 2)
	assert.Equal(t, "Kim Minji", schedule[0].Name)
}

func TestAdminService_RegisterVisit_Success(t *testing.T) {
	fixtures := createTestAdminService(t)

	ctx := context.Background()
	modelID := uuid.New()
	now := time.Now()

	fixtures.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCameraTestRepo := mockRepo.NewMockCameraTestRepository(t)

			mockFactory.EXPECT().NewCameraTestRepository().Return(mockCameraTestRepo)
			mockCameraTestRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.CameraTest")).
				Run(func(ctx context.Context, cameraTest *entity.CameraTest) {
					cameraTest.ID = uuid.New()
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	visit, err := fixtures.service.RegisterVisit(ctx, modelID, now)

	require.NoError(t, err)
	assert.Equal(t, modelID, visit.ModelID)
	assert.Equal(t, entity.CameraTestPending, visit.Status)
	assert.Equal(t, now, visit.VisitedAt)
}

func TestAdminService_RegisterVisit_DuplicateDay(t *testing.T) {
	fixtures := createTestAdminService(t)

	ctx := context.Background()
	modelID := uuid.New()

	fixtures.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCameraTestRepo := mockRepo.NewMockCameraTestRepository(t)

			mockFactory.EXPECT().NewCameraTestRepository().Return(mockCameraTestRepo)
			mockCameraTestRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.CameraTest")).
				Return(repository.ErrVisitAlreadyRegistered)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrVisitAlreadyRegistered, "register visit failed"))

	visit, err := fixtures.service.RegisterVisit(ctx, modelID, time.Now())

	assert.Error(t, err)
	assert.Nil(t, visit)
	assert.True(t, errors.Is(err, domainerrors.ErrVisitAlreadyRegistered))
}

func TestAdminService_UpdateCameraTestStatus_AllowedTransition(t *testing.T) {
	fixtures := createTestAdminService(t)

	ctx := context.Background()
	modelID := uuid.New()
	current := &entity.CameraTest{ID: uuid.New(), ModelID: modelID, Status: entity.CameraTestPending}
	confirmed := &entity.CameraTest{ID: current.ID, ModelID: modelID, Status: entity.CameraTestConfirmed}

	fixtures.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCameraTestRepo := mockRepo.NewMockCameraTestRepository(t)

			mockFactory.EXPECT().NewCameraTestRepository().Return(mockCameraTestRepo)
			mockCameraTestRepo.EXPECT().FindLatestByModel(ctx, modelID).Return(current, nil)
			mockCameraTestRepo.EXPECT().UpdateStatus(ctx, modelID, entity.CameraTestConfirmed).Return(confirmed, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	updated, err := fixtures.service.UpdateCameraTestStatus(ctx, modelID, entity.CameraTestConfirmed)

	require.NoError(t, err)
	assert.Equal(t, entity.CameraTestConfirmed, updated.Status)
}

func TestAdminService_UpdateCameraTestStatus_RejectedTransition(t *testing.T) {
	fixtures := createTestAdminService(t)

	ctx := context.Background()
	modelID := uuid.New()
	completed := &entity.CameraTest{ID: uuid.New(), ModelID: modelID, Status: entity.CameraTestCompleted}

	fixtures.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCameraTestRepo := mockRepo.NewMockCameraTestRepository(t)

			mockFactory.EXPECT().NewCameraTestRepository().Return(mockCameraTestRepo)
			mockCameraTestRepo.EXPECT().FindLatestByModel(ctx, modelID).Return(completed, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrValidationFailed, "camera test cannot move from COMPLETED to PENDING"))

	updated, err := fixtures.service.UpdateCameraTestStatus(ctx, modelID, entity.CameraTestPending)

	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAdminService_UpdateCameraTestStatus_UnknownStatus(t *testing.T) {
	fixtures := createTestAdminService(t)

	ctx := context.Background()

	updated, err := fixtures.service.UpdateCameraTestStatus(ctx, uuid.New(), entity.CameraTestStatus("BOGUS"))

	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAdminService_ExportOverseasExcel(t *testing.T) {
	fixtures := createTestAdminService(t)

	ctx := context.Background()
	models := []*entity.Model{{ID: uuid.New(), IsForeigner: true}}
	workbook := []byte("xlsx-bytes")

	fixtures.modelRepo.EXPECT().
		Search(ctx, repository.ModelSearchFilter{IsForeigner: true}, repository.Page{}).
		Return(models, nil)
	fixtures.exporter.EXPECT().ExportOverseas(models).Return(workbook, nil)

	data, err := fixtures.service.ExportOverseasExcel(ctx)

	require.NoError(t, err)
	assert.Equal(t, workbook, data)
}

func TestAdminService_GetFilterOptions(t *testing.T) {
	fixtures := createTestAdminService(t)

	ctx := context.Background()
	options := &repository.FilterOptions{Nationalities: []string{"KOREA", "USA"}}

	fixtures.modelRepo.EXPECT().GetFilterOptions(ctx).Return(options, nil)

	got, err := fixtures.service.GetFilterOptions(ctx)

	require.NoError(t, err)
	assert.Equal(t, options, got)
}
