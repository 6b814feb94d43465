package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "mdesk/internal/delivery/context"
	"mdesk/internal/domain/entity"
	domainerrors "mdesk/internal/domain/errors"
	"mdesk/internal/domain/repository"
	"mdesk/internal/usecase"
	"mdesk/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// modelService implements the ModelUsecase interface.
type modelService struct {
	txManager repository.TransactionManager
	modelRepo repository.ModelRepository
	logger    *slog.Logger
	now       func() time.Time
}

// ModelServiceParams holds dependencies for modelService, injected by Fx.
type ModelServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	ModelRepo repository.ModelRepository
	Logger    *slog.Logger
}

// NewModelService is the constructor for modelService.
func NewModelService(params ModelServiceParams) usecase.ModelUsecase {
	return &modelService{
		txManager: params.TxManager,
		modelRepo: params.ModelRepo,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *modelService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterDomestic registers a domestic model and opens a pending camera test
// visit for today in the same transaction.
func (srv *modelService) RegisterDomestic(ctx context.Context, input usecase.RegisterModelInput) (*usecase.RegisterModelOutput, error) {
	return srv.register(ctx, input, false)
}

// RegisterOverseas registers an overseas model and opens a pending camera test
// visit for today in the same transaction.
func (srv *modelService) RegisterOverseas(ctx context.Context, input usecase.RegisterModelInput) (*usecase.RegisterModelOutput, error) {
	return srv.register(ctx, input, true)
}

func (srv *modelService) register(ctx context.Context, input usecase.RegisterModelInput, isForeigner bool) (*usecase.RegisterModelOutput, error) {
	srv.log(ctx).Info("Starting model registration", slog.Bool("isForeigner", isForeigner), slog.String("name", input.Name))

	newModel, err := buildModelEntity(input, isForeigner)
	if err != nil {
		srv.log(ctx).Warn("Model registration input invalid", slog.String("name", input.Name), slog.Any("error", err))

		return nil, err
	}

	visit := &entity.CameraTest{
		Status:    entity.CameraTestPending,
		VisitedAt: srv.now(),
	}

	// The model and its first visit are created atomically: a duplicate
	// same-day visit rolls the whole registration back.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		modelRepo := repoFactory.NewModelRepository()
		cameraTestRepo := repoFactory.NewCameraTestRepository()

		if err := modelRepo.Create(ctx, newModel); err != nil {
			return errors.Wrap(err, "failed to create model during registration")
		}

		visit.ModelID = newModel.ID
		if err := cameraTestRepo.Create(ctx, visit); err != nil {
			return errors.Wrap(err, "failed to create camera test during registration")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute model registration transaction", slog.String("name", input.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute model registration transaction")
	}

	srv.log(ctx).Debug("Model registered", slog.Any("modelID", newModel.ID), slog.Any("cameraTestID", visit.ID))

	return &usecase.RegisterModelOutput{Model: newModel, CameraTest: visit}, nil
}

func buildModelEntity(input usecase.RegisterModelInput, isForeigner bool) (*entity.Model, error) {
	phone, err := util.NormalizePhone(input.Phone)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid phone number")
	}

	if !input.Gender.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid gender")
	}

	if input.HasTattoo && (input.TattooLocation == nil || input.TattooSize == nil) {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "tattoo location and size are required")
	}

	newModel := &entity.Model{
		Name:             input.Name,
		StageName:        input.StageName,
		BirthDate:        input.BirthDate,
		Gender:           input.Gender,
		Phone:            phone,
		Nationality:      input.Nationality,
		Instagram:        input.Instagram,
		YouTube:          input.YouTube,
		AddressCity:      input.AddressCity,
		AddressDistrict:  input.AddressDistrict,
		AddressStreet:    input.AddressStreet,
		SpecialAbilities: input.SpecialAbilities,
		OtherLanguages:   input.OtherLanguages,
		HasTattoo:        input.HasTattoo,
		TattooLocation:   input.TattooLocation,
		TattooSize:       input.TattooSize,
		Height:           input.Height,
		Weight:           input.Weight,
		TopSize:          input.TopSize,
		BottomSize:       input.BottomSize,
		ShoesSize:        input.ShoesSize,
		IsForeigner:      isForeigner,
	}

	if isForeigner {
		overseas, err := buildOverseasProfile(input)
		if err != nil {
			return nil, err
		}
		newModel.Overseas = overseas

		return newModel, nil
	}

	domestic, err := buildDomesticProfile(input)
	if err != nil {
		return nil, err
	}
	newModel.Domestic = domestic

	return newModel, nil
}

func buildDomesticProfile(input usecase.RegisterModelInput) (*entity.DomesticProfile, error) {
	hasAgency := input.HasAgency != nil && *input.HasAgency
	if hasAgency && input.AgencyName == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "agency name is required")
	}

	managerPhone, err := util.NormalizePhoneOptional(input.AgencyManagerPhone)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid agency manager phone number")
	}

	return &entity.DomesticProfile{
		HasAgency:          hasAgency,
		AgencyName:         input.AgencyName,
		AgencyManagerName:  input.AgencyManagerName,
		AgencyManagerPhone: managerPhone,
		TikTok:             input.TikTok,
	}, nil
}

func buildOverseasProfile(input usecase.RegisterModelInput) (*entity.OverseasProfile, error) {
	if input.KoreanLevel == nil || !input.KoreanLevel.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid korean level")
	}
	if input.VisaType == nil || !input.VisaType.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid visa type")
	}

	return &entity.OverseasProfile{
		KakaoTalk:     input.KakaoTalk,
		FirstLanguage: input.FirstLanguage,
		KoreanLevel:   *input.KoreanLevel,
		VisaType:      *input.VisaType,
	}, nil
}

// UpdateDomestic applies a partial update to a domestic model.
func (srv *modelService) UpdateDomestic(ctx context.Context, id uuid.UUID, input usecase.UpdateModelInput) (*entity.Model, error) {
	return srv.update(ctx, id, input, false)
}

// UpdateOverseas applies a partial update to an overseas model.
func (srv *modelService) UpdateOverseas(ctx context.Context, id uuid.UUID, input usecase.UpdateModelInput) (*entity.Model, error) {
	return srv.update(ctx, id, input, true)
}

func (srv *modelService) update(ctx context.Context, id uuid.UUID, input usecase.UpdateModelInput, isForeigner bool) (*entity.Model, error) {
	srv.log(ctx).Info("Starting model update", slog.Any("modelID", id), slog.Bool("isForeigner", isForeigner))

	if input.IsEmpty() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "nothing to update")
	}

	var updated *entity.Model
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		modelRepo := repoFactory.NewModelRepository()
		cameraTestRepo := repoFactory.NewCameraTestRepository()

		model, err := modelRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrModelNotFound) {
				return errors.Wrap(domainerrors.ErrModelNotFound, "model update failed")
			}

			return errors.Wrap(err, "failed to find model for update")
		}

		if model.IsForeigner != isForeigner {
			return errors.Wrap(domainerrors.ErrModelNationalityMismatch, "model update failed")
		}

		if err := applyModelUpdate(model, input); err != nil {
			return err
		}

		if err := modelRepo.Update(ctx, model); err != nil {
			return errors.Wrap(err, "failed to update model")
		}

		// An update means the model is back at the studio, so a new pending
		// visit is opened. If today's visit already exists it is kept.
		revisit := &entity.CameraTest{
			ModelID:   model.ID,
			Status:    entity.CameraTestPending,
			VisitedAt: srv.now(),
		}
		if err := cameraTestRepo.Create(ctx, revisit); err != nil &&
			!errors.Is(err, repository.ErrVisitAlreadyRegistered) {
			return errors.Wrap(err, "failed to register revisit during update")
		}
		updated = model

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute model update transaction", slog.Any("modelID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute model update transaction")
	}

	srv.log(ctx).Debug("Model updated", slog.Any("modelID", id))

	return updated, nil
}

func applyModelUpdate(model *entity.Model, input usecase.UpdateModelInput) error {
	if input.Phone != nil {
		phone, err := util.NormalizePhone(*input.Phone)
		if err != nil {
			return errors.Wrap(domainerrors.ErrValidationFailed, "invalid phone number")
		}
		model.Phone = phone
	}
	if input.Gender != nil {
		if !input.Gender.IsValid() {
			return errors.Wrap(domainerrors.ErrValidationFailed, "invalid gender")
		}
		model.Gender = *input.Gender
	}
	if input.Name != nil {
		model.Name = *input.Name
	}
	if input.StageName != nil {
		model.StageName = input.StageName
	}
	if input.BirthDate != nil {
		model.BirthDate = *input.BirthDate
	}
	if input.Nationality != nil {
		model.Nationality = input.Nationality
	}
	if input.Instagram != nil {
		model.Instagram = input.Instagram
	}
	if input.YouTube != nil {
		model.YouTube = input.YouTube
	}
	if input.AddressCity != nil {
		model.AddressCity = input.AddressCity
	}
	if input.AddressDistrict != nil {
		model.AddressDistrict = input.AddressDistrict
	}
	if input.AddressStreet != nil {
		model.AddressStreet = input.AddressStreet
	}
	if input.SpecialAbilities != nil {
		model.SpecialAbilities = input.SpecialAbilities
	}
	if input.OtherLanguages != nil {
		model.OtherLanguages = input.OtherLanguages
	}
	if input.HasTattoo != nil {
		model.HasTattoo = *input.HasTattoo
	}
	if input.TattooLocation != nil {
		model.TattooLocation = input.TattooLocation
	}
	if input.TattooSize != nil {
		model.TattooSize = input.TattooSize
	}
	if input.Height != nil {
		model.Height = *input.Height
	}
	if input.Weight != nil {
		model.Weight = input.Weight
	}
	if input.TopSize != nil {
		model.TopSize = input.TopSize
	}
	if input.BottomSize != nil {
		model.BottomSize = input.BottomSize
	}
	if input.ShoesSize != nil {
		model.ShoesSize = input.ShoesSize
	}

	if model.IsForeigner {
		return applyOverseasUpdate(model, input)
	}

	return applyDomesticUpdate(model, input)
}

func applyDomesticUpdate(model *entity.Model, input usecase.UpdateModelInput) error {
	if model.Domestic == nil {
		model.Domestic = &entity.DomesticProfile{}
	}
	if input.HasAgency != nil {
		model.Domestic.HasAgency = *input.HasAgency
	}
	if input.AgencyName != nil {
		model.Domestic.AgencyName = input.AgencyName
	}
	if input.AgencyManagerName != nil {
		model.Domestic.AgencyManagerName = input.AgencyManagerName
	}
	if input.AgencyManagerPhone != nil {
		managerPhone, err := util.NormalizePhoneOptional(input.AgencyManagerPhone)
		if err != nil {
			return errors.Wrap(domainerrors.ErrValidationFailed, "invalid agency manager phone number")
		}
		model.Domestic.AgencyManagerPhone = managerPhone
	}
	if input.TikTok != nil {
		model.Domestic.TikTok = input.TikTok
	}

	return nil
}

func applyOverseasUpdate(model *entity.Model, input usecase.UpdateModelInput) error {
	if model.Overseas == nil {
		model.Overseas = &entity.OverseasProfile{}
	}
	if input.KakaoTalk != nil {
		model.Overseas.KakaoTalk = input.KakaoTalk
	}
	if input.FirstLanguage != nil {
		model.Overseas.FirstLanguage = input.FirstLanguage
	}
	if input.KoreanLevel != nil {
		if !input.KoreanLevel.IsValid() {
			return errors.Wrap(domainerrors.ErrValidationFailed, "invalid korean level")
		}
		model.Overseas.KoreanLevel = *input.KoreanLevel
	}
	if input.VisaType != nil {
		if !input.VisaType.IsValid() {
			return errors.Wrap(domainerrors.ErrValidationFailed, "invalid visa type")
		}
		model.Overseas.VisaType = *input.VisaType
	}

	return nil
}

// ListDomestic lists domestic models, newest first.
func (srv *modelService) ListDomestic(ctx context.Context, page repository.Page) (*usecase.ModelListOutput, error) {
	return srv.list(ctx, page, false)
}

// ListOverseas lists overseas models, newest first.
func (srv *modelService) ListOverseas(ctx context.Context, page repository.Page) (*usecase.ModelListOutput, error) {
	return srv.list(ctx, page, true)
}

func (srv *modelService) list(ctx context.Context, page repository.Page, isForeigner bool) (*usecase.ModelListOutput, error) {
	filter := repository.ModelSearchFilter{IsForeigner: isForeigner}

	models, err := srv.modelRepo.Search(ctx, filter, page)
	if err != nil {
		srv.log(ctx).Error("Failed to list models", slog.Bool("isForeigner", isForeigner), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list models")
	}

	total, err := srv.modelRepo.Count(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count models")
	}

	return &usecase.ModelListOutput{Models: models, Total: total}, nil
}

// GetModel retrieves a single model by ID.
func (srv *modelService) GetModel(ctx context.Context, id uuid.UUID) (*entity.Model, error) {
	model, err := srv.modelRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrModelNotFound) {
			return nil, errors.Wrap(domainerrors.ErrModelNotFound, "get model failed")
		}

		return nil, errors.Wrap(err, "failed to find model by id")
	}

	return model, nil
}

// FindByInfo locates a model by the identity triple captured at registration.
func (srv *modelService) FindByInfo(ctx context.Context, input usecase.FindModelByInfoInput) (*entity.Model, error) {
	phone, err := util.NormalizePhone(input.Phone)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid phone number")
	}

	model, err := srv.modelRepo.FindByInfo(ctx, input.Name, phone, input.BirthDate)
	if err != nil {
		if errors.Is(err, repository.ErrModelNotFound) {
			return nil, errors.Wrap(domainerrors.ErrModelNotFound, "find by info failed")
		}

		return nil, errors.Wrap(err, "failed to find model by info")
	}

	return model, nil
}

// DeleteModel removes a model together with its camera test history.
func (srv *modelService) DeleteModel(ctx context.Context, id uuid.UUID) error {
	srv.log(ctx).Info("Attempting to delete model", slog.Any("modelID", id))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		modelRepo := repoFactory.NewModelRepository()
		cameraTestRepo := repoFactory.NewCameraTestRepository()

		// Visits reference the model, so they go first.
		if err := cameraTestRepo.DeleteByModel(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete camera tests of model")
		}

		if err := modelRepo.Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrModelNotFound) {
				return errors.Wrap(domainerrors.ErrModelNotFound, "delete model failed")
			}

			return errors.Wrap(err, "failed to delete model")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute model deletion transaction", slog.Any("modelID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute model deletion transaction")
	}

	srv.log(ctx).Info("Model deleted", slog.Any("modelID", id))

	return nil
}

// GetPhysicalSize returns just the measurements of a model.
func (srv *modelService) GetPhysicalSize(ctx context.Context, id uuid.UUID) (*entity.PhysicalSize, error) {
	size, err := srv.modelRepo.GetPhysicalSize(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrModelNotFound) {
			return nil, errors.Wrap(domainerrors.ErrModelNotFound, "get physical size failed")
		}

		return nil, errors.Wrap(err, "failed to get physical size")
	}

	return size, nil
}
