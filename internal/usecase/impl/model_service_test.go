package impl

import (
	"context"
	"testing"
	"time"

	"mdesk/internal/domain/entity"
	domainerrors "mdesk/internal/domain/errors"
	"mdesk/internal/domain/repository"
	mockRepo "mdesk/internal/mocks/repository"
	"mdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// modelServiceFixtures holds all test dependencies for model service tests.
type modelServiceFixtures struct {
	service   usecase.ModelUsecase
	txManager *mockRepo.MockTransactionManager
	modelRepo *mockRepo.MockModelRepository
}

func createTestModelService(t *testing.T) modelServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	modelRepo := mockRepo.NewMockModelRepository(t)

	svc := NewModelService(ModelServiceParams{
		TxManager: txManager,
		ModelRepo: modelRepo,
		Logger:    newDiscardLogger(),
	})

	return modelServiceFixtures{
		service:   svc,
		txManager: txManager,
		modelRepo: modelRepo,
	}
}

func newDomesticRegisterInput() usecase.RegisterModelInput {
	return usecase.RegisterModelInput{
		Name:      "Kim Minji",
		BirthDate: time.Date(2000, 3, 14, 0, 0, 0, 0, time.UTC),
		Gender:    entity.GenderFemale,
		Phone:     "010-1234-5678",
		Height:    172.5,
		HasAgency: boolPtr(false),
	}
}

func newOverseasRegisterInput() usecase.RegisterModelInput {
	koreanLevel := entity.KoreanLevelGood
	visaType := entity.VisaE6

	return usecase.RegisterModelInput{
		Name:        "Anna Smith",
		BirthDate:   time.Date(1998, 7, 2, 0, 0, 0, 0, time.UTC),
		Gender:      entity.GenderFemale,
		Phone:       "+14155552671",
		Nationality: strPtr("USA"),
		Height:      178,
		KoreanLevel: &koreanLevel,
		VisaType:    &visaType,
	}
}

func TestModelService_RegisterDomestic_CreatesModelAndPendingVisit(t *testing.T) {
	fixtures := createTestModelService(t)

	ctx := context.Background()
	input := newDomesticRegisterInput()

	fixtures.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockModelRepo := mockRepo.NewMockModelRepository(t)
			mockCameraTestRepo := mockRepo.NewMockCameraTestRepository(t)

			mockFactory.EXPECT().NewModelRepository().Return(mockModelRepo)
			mockFactory.EXPECT().NewCameraTestRepository().Return(mockCameraTestRepo)

			mockModelRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Model")).
				Run(func(ctx context.Context, model *entity.Model) {
					model.ID = uuid.New()
				}).
				Return(nil)

			mockCameraTestRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.CameraTest")).
				Run(func(ctx context.Context, cameraTest *entity.CameraTest) {
					cameraTest.ID = uuid.New()
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fixtures.service.RegisterDomestic(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.False(t, output.Model.IsForeigner)
	require.NotNil(t, output.Model.Domestic)
	assert.Equal(t, "+821012345678", output.Model.Phone)
	assert.Equal(t, entity.CameraTestPending, output.CameraTest.Status)
	assert.Equal(t, output.Model.ID, output.CameraTest.ModelID)
}

func TestModelService_RegisterOverseas_CreatesOverseasProfile(t *testing.T) {
	fixtures := createTestModelService(t)

	ctx := context.Background()
	input := newOverseasRegisterInput()

	fixtures.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockModelRepo := mockRepo.NewMockModelRepository(t)
			mockCameraTestRepo := mockRepo.NewMockCameraTestRepository(t)

			mockFactory.EXPECT().NewModelRepository().Return(mockModelRepo)
			mockFactory.EXPECT().NewCameraTestRepository().Return(mockCameraTestRepo)
			mockModelRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Model")).Return(nil)
			mockCameraTestRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.CameraTest")).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fixtures.service.RegisterOverseas(ctx, input)

	require.NoError(t, err)
	assert.True(t, output.Model.IsForeigner)
	require.NotNil(t, output.Model.Overseas)
	assert.Equal(t, entity.KoreanLevelGood, output.Model.Overseas.KoreanLevel)
	assert.Equal(t, entity.VisaE6, output.Model.Overseas.VisaType)
}

func TestModelService_Register_InvalidPhone(t *testing.T) {
	fixtures := createTestModelService(t)

	ctx := context.Background()
	input := newDomesticRegisterInput()
	input.Phone = "not-a-phone"

	output, err := fixtures.service.RegisterDomestic(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestModelService_RegisterOverseas_MissingVisaType(t *testing.T) {
	fixtures := createTestModelService(t)

	ctx := context.Background()
	input := newOverseasRegisterInput()
	input.VisaType = nil

	output, err := fixtures.service.RegisterOverseas(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestModelService_Register_AgencyNameRequired(t *testing.T) {
	fixtures := createTestModelService(t)

	ctx := context.Background()
	input := newDomesticRegisterInput()
	input.HasAgency = boolPtr(true)
	input.AgencyName = nil

	output, err := fixtures.service.RegisterDomestic(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestModelService_Register_TattooInfoRequired(t *testing.T) {
	fixtures := createTestModelService(t)

	ctx := context.Background()
	input := newDomesticRegisterInput()
	input.HasTattoo = true
	input.TattooLocation = nil
	input.TattooSize = nil

	output, err := fixtures.service.RegisterDomestic(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestModelService_Register_SameDayVisitRollsBack(t *testing.T) {
	fixtures := createTestModelService(t)

	ctx := context.Background()
	input := newDomesticRegisterInput()

	fixtures.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockModelRepo := mockRepo.NewMockModelRepository(t)
			mockCameraTestRepo := mockRepo.NewMockCameraTestRepository(t)

			mockFactory.EXPECT().NewModelRepository().Return(mockModelRepo)
			mockFactory.EXPECT().NewCameraTestRepository().Return(mockCameraTestRepo)
			mockModelRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Model")).Return(nil)
			mockCameraTestRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.CameraTest")).
				Return(repository.ErrVisitAlreadyRegistered)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(repository.ErrVisitAlreadyRegistered, "failed to create camera test during registration"))

	output, err := fixtures.service.RegisterDomestic(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, repository.ErrVisitAlreadyRegistered))
}

func TestModelService_UpdateDomestic_NationalityMismatch(t *testing.T) {
	fixtures := createTestModelService(t)

	ctx := context.Background()
	modelID := uuid.New()
	overseasModel := &entity.Model{ID: modelID, IsForeigner: true, Overseas: &entity.OverseasProfile{}}

	fixtures.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockModelRepo := mockRepo.NewMockModelRepository(t)
			mockCameraTestRepo := mockRepo.NewMockCameraTestRepository(t)

			mockFactory.EXPECT().NewModelRepository().Return(mockModelRepo)
			mockFactory.EXPECT().NewCameraTestRepository().Return(mockCameraTestRepo)
			mockModelRepo.EXPECT().FindByID(ctx, modelID).Return(overseasModel, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrModelNationalityMismatch, "model update failed"))

	output, err := fixtures.service.UpdateDomestic(ctx, modelID, usecase.UpdateModelInput{Name: strPtr("New Name")})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrModelNationalityMismatch))
}

func TestModelService_UpdateDomestic_PartialUpdate(t *testing.T) {
	fixtures := createTestModelService(t)

	ctx := context.Background()
	modelID := uuid.New()
	stored := &entity.Model{
		ID:          modelID,
		Name:        "Kim Minji",
		Phone:       "+821012345678",
		Height:      172.5,
		IsForeigner: false,
		Domestic:    &entity.DomesticProfile{HasAgency: false},
	}
	newHeight := 173.0

	fixtures.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockModelRepo := mockRepo.NewMockModelRepository(t)
			mockCameraTestRepo := mockRepo.NewMockCameraTestRepository(t)

			mockFactory.EXPECT().NewModelRepository().Return(mockModelRepo)
			mockFactory.EXPECT().NewCameraTestRepository().Return(mockCameraTestRepo)
			mockModelRepo.EXPECT().FindByID(ctx, modelID).Return(stored, nil)
			mockModelRepo.EXPECT().Update(ctx, stored).Return(nil)
			mockCameraTestRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.CameraTest")).
				Run(func(_ context.Context, visit *entity.CameraTest) {
					assert.Equal(t, modelID, visit.ModelID)
					assert.Equal(t, entity.CameraTestPending, visit.Status)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fixtures.service.UpdateDomestic(ctx, modelID, usecase.UpdateModelInput{Height: &newHeight})

	require.NoError(t, err)
	assert.Equal(t, 173.0, output.Height)
	assert.Equal(t, "Kim Minji", output.Name)
	assert.Equal(t, "+821012345678", output.Phone)
}

func TestModelService_UpdateDomestic_EmptyPatch(t *testing.T) {
	fixtures := createTestModelService(t)

	ctx := context.Background()

	output, err := fixtures.service.UpdateDomestic(ctx, uuid.New(), usecase.UpdateModelInput{})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestModelService_UpdateDomestic_KeepsExistingSameDayVisit(t *testing.T) {
	fixtures := createTestModelService(t)

	ctx := context.Background()
	modelID := uuid.New()
	stored := &entity.Model{
		ID:          modelID,
		Name:        "Kim Minji",
		IsForeigner: false,
		Domestic:    &entity.DomesticProfile{},
	}
	newHeight := 175.0

	fixtures.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockModelRepo := mockRepo.NewMockModelRepository(t)
			mockCameraTestRepo := mockRepo.NewMockCameraTestRepository(t)

			mockFactory.EXPECT().NewModelRepository().Return(mockModelRepo)
			mockFactory.EXPECT().NewCameraTestRepository().Return(mockCameraTestRepo)
			mockModelRepo.EXPECT().FindByID(ctx, modelID).Return(stored, nil)
			mockModelRepo.EXPECT().Update(ctx, stored).Return(nil)
			mockCameraTestRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.CameraTest")).
				Return(repository.ErrVisitAlreadyRegistered)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fixtures.service.UpdateDomestic(ctx, modelID, usecase.UpdateModelInput{Height: &newHeight})

	require.NoError(t, err)
	assert.Equal(t, 175.0, output.Height)
}

func TestModelService_FindByInfo_NormalizesPhone(t *testing.T) {
	fixtures := createTestModelService(t)

	ctx := context.Background()
	birthDate := time.Date(2000, 3, 14, 0, 0, 0, 0, time.UTC)
	stored := &entity.Model{ID: uuid.New(), Name: "Kim Minji"}

	fixtures.modelRepo.EXPECT().
		FindByInfo(ctx, "Kim Minji", "+821012345678", birthDate).
		Return(stored, nil)

	model, err := fixtures.service.FindByInfo(ctx, usecase.FindModelByInfoInput{
		Name:      "Kim Minji",
		Phone:     "010-1234-5678",
		BirthDate: birthDate,
	})

	require.NoError(t, err)
	assert.Equal(t, stored, model)
}

func TestModelService_GetModel_NotFound(t *testing.T) {
	fixtures := createTestModelService(t)

	ctx := context.Background()
	modelID := uuid.New()

	fixtures.modelRepo.EXPECT().FindByID(ctx, modelID).Return(nil, repository.ErrModelNotFound)

	model, err := fixtures.service.GetModel(ctx, modelID)

	assert.Error(t, err)
	assert.Nil(t, model)
	assert.True(t, errors.Is(err, domainerrors.ErrModelNotFound))
}

func TestModelService_DeleteModel_RemovesVisitHistoryFirst(t *testing.T) {
	fixtures := createTestModelService(t)

	ctx := context.Background()
	modelID := uuid.New()

	fixtures.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockModelRepo := mockRepo.NewMockModelRepository(t)
			mockCameraTestRepo := mockRepo.NewMockCameraTestRepository(t)

			mockFactory.EXPECT().NewModelRepository().Return(mockModelRepo)
			mockFactory.EXPECT().NewCameraTestRepository().Return(mockCameraTestRepo)
			mockCameraTestRepo.EXPECT().DeleteByModel(ctx, modelID).Return(nil)
			mockModelRepo.EXPECT().Delete(ctx, modelID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fixtures.service.DeleteModel(ctx, modelID)

	assert.NoError(t, err)
}

func TestModelService_ListDomestic_ReturnsPageAndTotal(t *testing.T) {
	fixtures := createTestModelService(t)

	ctx := context.Background()
	page := repository.Page{Number: 2, Size: 10}
	filter := repository.ModelSearchFilter{IsForeigner: false}
	models := []*entity.Model{{ID: uuid.New()}, {ID: uuid.New()}}

	fixtures.modelRepo.EXPECT().Search(ctx, filter, page).Return(models, nil)
	fixtures.modelRepo.EXPECT().Count(ctx, filter).Return(int64(12), nil)

	output, err := fixtures.service.ListDomestic(ctx, page)

	require.NoError(t, err)
	assert.Len(t, output.Models, 2)
	assert.Equal(t, int64(12), output.Total)
}
