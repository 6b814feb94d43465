package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"mdesk/internal/delivery/http/response"
	"mdesk/internal/domain/entity"
	"mdesk/internal/domain/repository"
	"mdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AdminHandler holds dependencies for the back-office handlers.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	modelUC usecase.ModelUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(adminUC usecase.AdminUsecase, modelUC usecase.ModelUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		adminUC: adminUC,
		modelUC: modelUC,
		logger:  logger,
	}
}

type updateCameraTestStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type dashboardResponse struct {
	TodayVisits         int64                `json:"today_visits"`
	TodayPendingVisits  int64                `json:"today_pending_visits"`
	IncompleteAddresses int64                `json:"incomplete_addresses"`
	Weekly              []dailyCountResponse `json:"weekly"`
	Monthly             []dailyCountResponse `json:"monthly"`
}

type dailyCountResponse struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type scheduleEntryResponse struct {
	CameraTestID uuid.UUID `json:"camera_test_id"`
	ModelID      uuid.UUID `json:"model_id"`
	Status       string    `json:"status"`
	VisitedAt    time.Time `json:"visited_at"`
	Name         string    `json:"name"`
	BirthDate    string    `json:"birth_date"`
	Nationality  *string   `json:"nationality"`
	Height       float64   `json:"height"`
	AgencyName   *string   `json:"agency_name"`
	VisaType     *string   `json:"visa_type"`
}

type filterOptionsResponse struct {
	Nationalities []string `json:"nationalities"`
	Specialties   []string `json:"specialties"`
	Languages     []string `json:"languages"`
	AddressCities []string `json:"address_cities"`
}

func toDailyCountResponses(counts []repository.DailyCount) []dailyCountResponse {
	out := make([]dailyCountResponse, 0, len(counts))
	for _, count := range counts {
		out = append(out, dailyCountResponse{
			Date:  count.Date.Format(birthDateLayout),
			Count: count.Count,
		})
	}

	return out
}

// SearchModels searches models by the filter query parameters.
func (h *AdminHandler) SearchModels(c echo.Context) error {
	filter := repository.ModelSearchFilter{
		IsForeigner:      c.QueryParam("is_foreigner") == "true",
		Name:             c.QueryParam("name"),
		Gender:           entity.Gender(c.QueryParam("gender")),
		Nationality:      c.QueryParam("nationality"),
		AddressCity:      c.QueryParam("address_city"),
		AddressDistrict:  c.QueryParam("address_district"),
		AddressStreet:    c.QueryParam("address_street"),
		SpecialAbilities: c.QueryParam("special_abilities"),
		OtherLanguages:   c.QueryParam("other_languages"),
		KoreanLevel:      entity.KoreanLevel(c.QueryParam("korean_level")),
	}

	output, err := h.adminUC.SearchModels(c.Request().Context(), usecase.SearchModelsInput{
		Filter: filter,
		Page:   parsePage(c),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toModelListResponse(output))
}

// GetFilterOptions returns the distinct values for the search dropdowns.
func (h *AdminHandler) GetFilterOptions(c echo.Context) error {
	options, err := h.adminUC.GetFilterOptions(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, filterOptionsResponse{
		Nationalities: options.Nationalities,
		Specialties:   options.Specialties,
		Languages:     options.Languages,
		AddressCities: options.AddressCities,
	})
}

// GetDashboard assembles the dashboard statistics.
func (h *AdminHandler) GetDashboard(c echo.Context) error {
	output, err := h.adminUC.GetDashboard(c.Request().Context(), time.Now())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dashboardResponse{
		TodayVisits:         output.Summary.TodayVisits,
		TodayPendingVisits:  output.Summary.TodayPendingVisits,
		IncompleteAddresses: output.Summary.IncompleteAddresses,
		Weekly:              toDailyCountResponses(output.Weekly),
		Monthly:             toDailyCountResponses(output.Monthly),
	})
}

// GetDailySchedule lists the visits scheduled for a day. The day defaults to
// today and can be overridden with a date=YYYY-MM-DD query parameter.
func (h *AdminHandler) GetDailySchedule(c echo.Context) error {
	day := time.Now()
	if raw := c.QueryParam("date"); raw != "" {
		parsed, err := time.Parse(birthDateLayout, raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid date, expected YYYY-MM-DD")
		}
		day = parsed
	}

	entries, err := h.adminUC.GetDailySchedule(c.Request().Context(), day)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]scheduleEntryResponse, 0, len(entries))
	for _, entry := range entries {
		item := scheduleEntryResponse{
			CameraTestID: entry.CameraTestID,
			ModelID:      entry.ModelID,
			Status:       string(entry.Status),
			VisitedAt:    entry.VisitedAt,
			Name:         entry.Name,
			BirthDate:    entry.BirthDate.Format(birthDateLayout),
			Nationality:  entry.Nationality,
			Height:       entry.Height,
			AgencyName:   entry.AgencyName,
		}
		if entry.VisaType != nil {
			visa := string(*entry.VisaType)
			item.VisaType = &visa
		}
		out = append(out, item)
	}

	return response.Success(c, http.StatusOK, out)
}

// RegisterVisit opens a new pending camera test visit for the model today.
func (h *AdminHandler) RegisterVisit(c echo.Context) error {
	modelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid model ID")
	}

	visit, err := h.adminUC.RegisterVisit(c.Request().Context(), modelID, time.Now())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toCameraTestResponse(visit))
}

// UpdateCameraTestStatus moves the model's latest visit to a new status.
func (h *AdminHandler) UpdateCameraTestStatus(c echo.Context) error {
	modelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid model ID")
	}

	var req updateCameraTestStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", err.Error())
	}

	visit, err := h.adminUC.UpdateCameraTestStatus(c.Request().Context(), modelID, entity.CameraTestStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCameraTestResponse(visit))
}

// GetCameraTest returns the model's latest visit.
func (h *AdminHandler) GetCameraTest(c echo.Context) error {
	modelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid model ID")
	}

	visit, err := h.adminUC.GetCameraTest(c.Request().Context(), modelID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCameraTestResponse(visit))
}

// DeleteModel removes a model together with its visit history.
func (h *AdminHandler) DeleteModel(c echo.Context) error {
	modelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid model ID")
	}

	if err := h.modelUC.DeleteModel(c.Request().Context(), modelID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Model deleted successfully"})
}

// ExportDomesticExcel streams every domestic model as an xlsx workbook.
func (h *AdminHandler) ExportDomesticExcel(c echo.Context) error {
	return h.export(c, h.adminUC.ExportDomesticExcel, "domestic_models")
}

// ExportOverseasExcel streams every overseas model as an xlsx workbook.
func (h *AdminHandler) ExportOverseasExcel(c echo.Context) error {
	return h.export(c, h.adminUC.ExportOverseasExcel, "overseas_models")
}

func (h *AdminHandler) export(c echo.Context, export func(ctx context.Context) ([]byte, error), prefix string) error {
	workbook, err := export(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	filename := prefix + "_" + time.Now().Format("20060102") + ".xlsx"
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)

	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", workbook)
}
