package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"mdesk/internal/delivery/http/response"
	"mdesk/internal/domain/entity"
	"mdesk/internal/domain/repository"
	"mdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// birthDateLayout is the wire format for dates of birth.
const birthDateLayout = "2006-01-02"

// ModelHandler holds dependencies for model registration and self-service handlers.
type ModelHandler struct {
	uc     usecase.ModelUsecase
	logger *slog.Logger
}

// NewModelHandler is the constructor for ModelHandler, injected by Fx.
func NewModelHandler(uc usecase.ModelUsecase, logger *slog.Logger) *ModelHandler {
	return &ModelHandler{
		uc:     uc,
		logger: logger,
	}
}

type registerModelRequest struct {
	Name             string   `json:"name" validate:"required"`
	StageName        *string  `json:"stage_name"`
	BirthDate        string   `json:"birth_date" validate:"required"`
	Gender           string   `json:"gender" validate:"required"`
	Phone            string   `json:"phone" validate:"required"`
	Nationality      *string  `json:"nationality"`
	Instagram        *string  `json:"instagram"`
	YouTube          *string  `json:"youtube"`
	AddressCity      *string  `json:"address_city"`
	AddressDistrict  *string  `json:"address_district"`
	AddressStreet    *string  `json:"address_street"`
	SpecialAbilities *string  `json:"special_abilities"`
	OtherLanguages   *string  `json:"other_languages"`
	HasTattoo        bool     `json:"has_tattoo"`
	TattooLocation   *string  `json:"tattoo_location"`
	TattooSize       *string  `json:"tattoo_size"`
	Height           float64  `json:"height" validate:"required,gt=0"`
	Weight           *float64 `json:"weight"`
	TopSize          *string  `json:"top_size"`
	BottomSize       *string  `json:"bottom_size"`
	ShoesSize        *string  `json:"shoes_size"`

	HasAgency          *bool   `json:"has_agency"`
	AgencyName         *string `json:"agency_name"`
	AgencyManagerName  *string `json:"agency_manager_name"`
	AgencyManagerPhone *string `json:"agency_manager_phone"`
	TikTok             *string `json:"tiktok"`

	KakaoTalk     *string `json:"kakaotalk"`
	FirstLanguage *string `json:"first_language"`
	KoreanLevel   *string `json:"korean_level"`
	VisaType      *string `json:"visa_type"`
}

type updateModelRequest struct {
	Name             *string  `json:"name"`
	StageName        *string  `json:"stage_name"`
	BirthDate        *string  `json:"birth_date"`
	Gender           *string  `json:"gender"`
	Phone            *string  `json:"phone"`
	Nationality      *string  `json:"nationality"`
	Instagram        *string  `json:"instagram"`
	YouTube          *string  `json:"youtube"`
	AddressCity      *string  `json:"address_city"`
	AddressDistrict  *string  `json:"address_district"`
	AddressStreet    *string  `json:"address_street"`
	SpecialAbilities *string  `json:"special_abilities"`
	OtherLanguages   *string  `json:"other_languages"`
	HasTattoo        *bool    `json:"has_tattoo"`
	TattooLocation   *string  `json:"tattoo_location"`
	TattooSize       *string  `json:"tattoo_size"`
	Height           *float64 `json:"height"`
	Weight           *float64 `json:"weight"`
	TopSize          *string  `json:"top_size"`
	BottomSize       *string  `json:"bottom_size"`
	ShoesSize        *string  `json:"shoes_size"`

	HasAgency          *bool   `json:"has_agency"`
	AgencyName         *string `json:"agency_name"`
	AgencyManagerName  *string `json:"agency_manager_name"`
	AgencyManagerPhone *string `json:"agency_manager_phone"`
	TikTok             *string `json:"tiktok"`

	KakaoTalk     *string `json:"kakaotalk"`
	FirstLanguage *string `json:"first_language"`
	KoreanLevel   *string `json:"korean_level"`
	VisaType      *string `json:"visa_type"`
}

type findModelByInfoRequest struct {
	Name      string `json:"name" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	BirthDate string `json:"birth_date" validate:"required"`
}

type domesticProfileResponse struct {
	HasAgency          bool    `json:"has_agency"`
	AgencyName         *string `json:"agency_name"`
	AgencyManagerName  *string `json:"agency_manager_name"`
	AgencyManagerPhone *string `json:"agency_manager_phone"`
	TikTok             *string `json:"tiktok"`
}

type overseasProfileResponse struct {
	KakaoTalk     *string `json:"kakaotalk"`
	FirstLanguage *string `json:"first_language"`
	KoreanLevel   string  `json:"korean_level"`
	VisaType      string  `json:"visa_type"`
}

type modelResponse struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	StageName        *string   `json:"stage_name"`
	BirthDate        string    `json:"birth_date"`
	Gender           string    `json:"gender"`
	Phone            string    `json:"phone"`
	Nationality      *string   `json:"nationality"`
	Instagram        *string   `json:"instagram"`
	YouTube          *string   `json:"youtube"`
	AddressCity      *string   `json:"address_city"`
	AddressDistrict  *string   `json:"address_district"`
	AddressStreet    *string   `json:"address_street"`
	SpecialAbilities *string   `json:"special_abilities"`
	OtherLanguages   *string   `json:"other_languages"`
	HasTattoo        bool      `json:"has_tattoo"`
	TattooLocation   *string   `json:"tattoo_location"`
	TattooSize       *string   `json:"tattoo_size"`
	Height           float64   `json:"height"`
	Weight           *float64  `json:"weight"`
	TopSize          *string   `json:"top_size"`
	BottomSize       *string   `json:"bottom_size"`
	ShoesSize        *string   `json:"shoes_size"`
	IsForeigner      bool      `json:"is_foreigner"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	Domestic *domesticProfileResponse `json:"domestic,omitempty"`
	Overseas *overseasProfileResponse `json:"overseas,omitempty"`
}

type cameraTestResponse struct {
	ID        uuid.UUID `json:"id"`
	ModelID   uuid.UUID `json:"model_id"`
	Status    string    `json:"status"`
	VisitedAt time.Time `json:"visited_at"`
}

type registerModelResponse struct {
	Model      modelResponse      `json:"model"`
	CameraTest cameraTestResponse `json:"camera_test"`
}

type modelListResponse struct {
	Models []modelResponse `json:"models"`
	Total  int64           `json:"total"`
}

type physicalSizeResponse struct {
	ModelID    uuid.UUID `json:"model_id"`
	Height     float64   `json:"height"`
	Weight     *float64  `json:"weight"`
	TopSize    *string   `json:"top_size"`
	BottomSize *string   `json:"bottom_size"`
	ShoesSize  *string   `json:"shoes_size"`
}

func toModelResponse(model *entity.Model) modelResponse {
	resp := modelResponse{
		ID:               model.ID,
		Name:             model.Name,
		StageName:        model.StageName,
		BirthDate:        model.BirthDate.Format(birthDateLayout),
		Gender:           string(model.Gender),
		Phone:            model.Phone,
		Nationality:      model.Nationality,
		Instagram:        model.Instagram,
		YouTube:          model.YouTube,
		AddressCity:      model.AddressCity,
		AddressDistrict:  model.AddressDistrict,
		AddressStreet:    model.AddressStreet,
		SpecialAbilities: model.SpecialAbilities,
		OtherLanguages:   model.OtherLanguages,
		HasTattoo:        model.HasTattoo,
		TattooLocation:   model.TattooLocation,
		TattooSize:       model.TattooSize,
		Height:           model.Height,
		Weight:           model.Weight,
		TopSize:          model.TopSize,
		BottomSize:       model.BottomSize,
		ShoesSize:        model.ShoesSize,
		IsForeigner:      model.IsForeigner,
		CreatedAt:        model.CreatedAt,
		UpdatedAt:        model.UpdatedAt,
	}

	if model.Domestic != nil {
		resp.Domestic = &domesticProfileResponse{
			HasAgency:          model.Domestic.HasAgency,
			AgencyName:         model.Domestic.AgencyName,
			AgencyManagerName:  model.Domestic.AgencyManagerName,
			AgencyManagerPhone: model.Domestic.AgencyManagerPhone,
			TikTok:             model.Domestic.TikTok,
		}
	}
	if model.Overseas != nil {
		resp.Overseas = &overseasProfileResponse{
			KakaoTalk:     model.Overseas.KakaoTalk,
			FirstLanguage: model.Overseas.FirstLanguage,
			KoreanLevel:   string(model.Overseas.KoreanLevel),
			VisaType:      string(model.Overseas.VisaType),
		}
	}

	return resp
}

func toCameraTestResponse(visit *entity.CameraTest) cameraTestResponse {
	return cameraTestResponse{
		ID:        visit.ID,
		ModelID:   visit.ModelID,
		Status:    string(visit.Status),
		VisitedAt: visit.VisitedAt,
	}
}

func toModelListResponse(output *usecase.ModelListOutput) modelListResponse {
	models := make([]modelResponse, 0, len(output.Models))
	for _, model := range output.Models {
		models = append(models, toModelResponse(model))
	}

	return modelListResponse{
		Models: models,
		Total:  output.Total,
	}
}

func (r *registerModelRequest) toInput() (usecase.RegisterModelInput, error) {
	birthDate, err := time.Parse(birthDateLayout, r.BirthDate)
	if err != nil {
		return usecase.RegisterModelInput{}, err
	}

	input := usecase.RegisterModelInput{
		Name:             r.Name,
		StageName:        r.StageName,
		BirthDate:        birthDate,
		Gender:           entity.Gender(r.Gender),
		Phone:            r.Phone,
		Nationality:      r.Nationality,
		Instagram:        r.Instagram,
		YouTube:          r.YouTube,
		AddressCity:      r.AddressCity,
		AddressDistrict:  r.AddressDistrict,
		AddressStreet:    r.AddressStreet,
		SpecialAbilities: r.SpecialAbilities,
		OtherLanguages:   r.OtherLanguages,
		HasTattoo:        r.HasTattoo,
		TattooLocation:   r.TattooLocation,
		TattooSize:       r.TattooSize,
		Height:           r.Height,
		Weight:           r.Weight,
		TopSize:          r.TopSize,
		BottomSize:       r.BottomSize,
		ShoesSize:        r.ShoesSize,

		HasAgency:          r.HasAgency,
		AgencyName:         r.AgencyName,
		AgencyManagerName:  r.AgencyManagerName,
		AgencyManagerPhone: r.AgencyManagerPhone,
		TikTok:             r.TikTok,

		KakaoTalk:     r.KakaoTalk,
		FirstLanguage: r.FirstLanguage,
	}

	if r.KoreanLevel != nil {
		level := entity.KoreanLevel(*r.KoreanLevel)
		input.KoreanLevel = &level
	}
	if r.VisaType != nil {
		visa := entity.VisaType(*r.VisaType)
		input.VisaType = &visa
	}

	return input, nil
}

func (r *updateModelRequest) toInput() (usecase.UpdateModelInput, error) {
	input := usecase.UpdateModelInput{
		Name:             r.Name,
		StageName:        r.StageName,
		Phone:            r.Phone,
		Nationality:      r.Nationality,
		Instagram:        r.Instagram,
		YouTube:          r.YouTube,
		AddressCity:      r.AddressCity,
		AddressDistrict:  r.AddressDistrict,
		AddressStreet:    r.AddressStreet,
		SpecialAbilities: r.SpecialAbilities,
		OtherLanguages:   r.OtherLanguages,
		HasTattoo:        r.HasTattoo,
		TattooLocation:   r.TattooLocation,
		TattooSize:       r.TattooSize,
		Height:           r.Height,
		Weight:           r.Weight,
		TopSize:          r.TopSize,
		BottomSize:       r.BottomSize,
		ShoesSize:        r.ShoesSize,

		HasAgency:          r.HasAgency,
		AgencyName:         r.AgencyName,
		AgencyManagerName:  r.AgencyManagerName,
		AgencyManagerPhone: r.AgencyManagerPhone,
		TikTok:             r.TikTok,

		KakaoTalk:     r.KakaoTalk,
		FirstLanguage: r.FirstLanguage,
	}

	if r.BirthDate != nil {
		birthDate, err := time.Parse(birthDateLayout, *r.BirthDate)
		if err != nil {
			return usecase.UpdateModelInput{}, err
		}
		input.BirthDate = &birthDate
	}
	if r.Gender != nil {
		gender := entity.Gender(*r.Gender)
		input.Gender = &gender
	}
	if r.KoreanLevel != nil {
		level := entity.KoreanLevel(*r.KoreanLevel)
		input.KoreanLevel = &level
	}
	if r.VisaType != nil {
		visa := entity.VisaType(*r.VisaType)
		input.VisaType = &visa
	}

	return input, nil
}

// RegisterDomestic handles a domestic model registration.
func (h *ModelHandler) RegisterDomestic(c echo.Context) error {
	return h.register(c, h.uc.RegisterDomestic)
}

// RegisterOverseas handles an overseas model registration.
func (h *ModelHandler) RegisterOverseas(c echo.Context) error {
	return h.register(c, h.uc.RegisterOverseas)
}

func (h *ModelHandler) register(c echo.Context, register func(ctx context.Context, input usecase.RegisterModelInput) (*usecase.RegisterModelOutput, error)) error {
	var req registerModelRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", err.Error())
	}

	input, err := req.toInput()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid birth date, expected YYYY-MM-DD")
	}

	output, err := register(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, registerModelResponse{
		Model:      toModelResponse(output.Model),
		CameraTest: toCameraTestResponse(output.CameraTest),
	})
}

// UpdateDomestic applies a partial update to a domestic model.
func (h *ModelHandler) UpdateDomestic(c echo.Context) error {
	return h.update(c, h.uc.UpdateDomestic)
}

// UpdateOverseas applies a partial update to an overseas model.
func (h *ModelHandler) UpdateOverseas(c echo.Context) error {
	return h.update(c, h.uc.UpdateOverseas)
}

func (h *ModelHandler) update(c echo.Context, update func(ctx context.Context, id uuid.UUID, input usecase.UpdateModelInput) (*entity.Model, error)) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid model ID")
	}

	var req updateModelRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}

	input, err := req.toInput()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid birth date, expected YYYY-MM-DD")
	}

	model, err := update(c.Request().Context(), id, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toModelResponse(model))
}

// ListDomestic lists domestic models, newest first.
func (h *ModelHandler) ListDomestic(c echo.Context) error {
	return h.list(c, h.uc.ListDomestic)
}

// ListOverseas lists overseas models, newest first.
func (h *ModelHandler) ListOverseas(c echo.Context) error {
	return h.list(c, h.uc.ListOverseas)
}

func (h *ModelHandler) list(c echo.Context, list func(ctx context.Context, page repository.Page) (*usecase.ModelListOutput, error)) error {
	page := parsePage(c)

	output, err := list(c.Request().Context(), page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toModelListResponse(output))
}

// GetModel retrieves a single model by ID.
func (h *ModelHandler) GetModel(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid model ID")
	}

	model, err := h.uc.GetModel(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toModelResponse(model))
}

// FindByInfo locates a model by the name, phone and birth date captured at
// registration, so a returning visitor can pull up their own record.
func (h *ModelHandler) FindByInfo(c echo.Context) error {
	var req findModelByInfoRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid lookup input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", err.Error())
	}

	birthDate, err := time.Parse(birthDateLayout, req.BirthDate)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid birth date, expected YYYY-MM-DD")
	}

	model, err := h.uc.FindByInfo(c.Request().Context(), usecase.FindModelByInfoInput{
		Name:      req.Name,
		Phone:     req.Phone,
		BirthDate: birthDate,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toModelResponse(model))
}

// GetPhysicalSize returns just the measurements of a model.
func (h *ModelHandler) GetPhysicalSize(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid model ID")
	}

	size, err := h.uc.GetPhysicalSize(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, physicalSizeResponse{
		ModelID:    size.ModelID,
		Height:     size.Height,
		Weight:     size.Weight,
		TopSize:    size.TopSize,
		BottomSize: size.BottomSize,
		ShoesSize:  size.ShoesSize,
	})
}

func parsePage(c echo.Context) repository.Page {
	page := repository.Page{Number: 1, Size: 20}
	if raw := c.QueryParam("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			page.Number = n
		}
	}
	if raw := c.QueryParam("size"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			page.Size = n
		}
	}

	return page
}
