// Package handler contains the HTTP handlers for the application.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "mdesk/internal/delivery/context"
	"mdesk/internal/delivery/http/response"
	"mdesk/internal/domain/entity"
	"mdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AccountHandler holds dependencies for staff account handlers.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	resetUC   usecase.PasswordResetUsecase
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(accountUC usecase.AccountUsecase, resetUC usecase.PasswordResetUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		accountUC: accountUC,
		resetUC:   resetUC,
		logger:    logger,
	}
}

type signupRequest struct {
	Name       string  `json:"name" validate:"required"`
	Email      string  `json:"email" validate:"required,email"`
	Password   string  `json:"password" validate:"required"`
	Provider   string  `json:"provider" validate:"omitempty,oneof=LOCAL GOOGLE KAKAO NAVER"`
	ProviderID *string `json:"provider_id"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required"`
}

type resetPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type accountResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type loginResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	Account      accountResponse `json:"account"`
}

type tokenPairResponse struct {
	AccessToken      string `json:"access_token"`
	RefreshToken     string `json:"refresh_token"`
	RefreshExpiresIn int64  `json:"refresh_expires_in"`
}

func toAccountResponse(output *usecase.AccountOutput) accountResponse {
	return accountResponse{
		ID:        output.Account.ID,
		Name:      output.Account.Name,
		Email:     output.Account.Email,
		Role:      string(output.Account.Role),
		CreatedAt: output.Account.CreatedAt,
	}
}

// SignupAdmin handles administrator registration.
func (h *AccountHandler) SignupAdmin(c echo.Context) error {
	return h.signup(c, h.accountUC.SignupAdmin)
}

// SignupDirector handles casting director registration.
func (h *AccountHandler) SignupDirector(c echo.Context) error {
	return h.signup(c, h.accountUC.SignupDirector)
}

func (h *AccountHandler) signup(c echo.Context, register func(ctx context.Context, input usecase.SignupInput) (*usecase.AccountOutput, error)) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", err.Error())
	}

	output, err := register(c.Request().Context(), usecase.SignupInput{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Provider:   entity.Provider(req.Provider),
		ProviderID: req.ProviderID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toAccountResponse(output))
}

// Login handles the staff login request.
func (h *AccountHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", err.Error())
	}

	output, err := h.accountUC.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, loginResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		Account:      toAccountResponse(&usecase.AccountOutput{Account: output.Account}),
	})
}

// RefreshToken redeems a refresh token for a rotated pair.
func (h *AccountHandler) RefreshToken(c echo.Context) error {
	var req refreshTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh token input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", err.Error())
	}

	output, err := h.accountUC.RefreshToken(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tokenPairResponse{
		AccessToken:      output.AccessToken,
		RefreshToken:     output.RefreshToken,
		RefreshExpiresIn: int64(output.RefreshExpiresIn.Seconds()),
	})
}

// ChangePassword changes the authenticated account's password.
func (h *AccountHandler) ChangePassword(c echo.Context) error {
	principal, ok := deliverycontext.GetPrincipal(c.Request().Context())
	if !ok {
		return response.Unauthorized(c, "MISSING_TOKEN", "Authentication required")
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid change password input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", err.Error())
	}

	if err := h.accountUC.ChangePassword(c.Request().Context(), usecase.ChangePasswordInput{
		Email:           principal.Email,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	}); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Password changed successfully"})
}

// GetProfile returns the authenticated account's profile.
func (h *AccountHandler) GetProfile(c echo.Context) error {
	principal, ok := deliverycontext.GetPrincipal(c.Request().Context())
	if !ok {
		return response.Unauthorized(c, "MISSING_TOKEN", "Authentication required")
	}

	output, err := h.accountUC.GetProfile(c.Request().Context(), principal.Email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAccountResponse(output))
}

// DeleteAccount removes a staff account by ID.
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account ID")
	}

	if err := h.accountUC.DeleteAccount(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Account deleted successfully"})
}

// ResetPassword mails a temporary password to the account holder.
func (h *AccountHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reset password input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", err.Error())
	}

	if err := h.resetUC.ResetPassword(c.Request().Context(), req.Email); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Temporary password sent"})
}
