// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"mdesk/internal/delivery/http/middleware"
	"mdesk/internal/delivery/http/router/handler"
	"mdesk/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler  *handler.HealthHandler
	AccountHandler *handler.AccountHandler
	ModelHandler   *handler.ModelHandler
	AdminHandler   *handler.AdminHandler
	QRCodeHandler  *handler.QRCodeHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	healthHandler  *handler.HealthHandler
	accountHandler *handler.AccountHandler
	modelHandler   *handler.ModelHandler
	adminHandler   *handler.AdminHandler
	qrcodeHandler  *handler.QRCodeHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		healthHandler:  params.HealthHandler,
		accountHandler: params.AccountHandler,
		modelHandler:   params.ModelHandler,
		adminHandler:   params.AdminHandler,
		qrcodeHandler:  params.QRCodeHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", r.healthHandler.Check)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.accountHandler.Login)
		authGroup.POST("/refresh", r.accountHandler.RefreshToken)
		authGroup.POST("/reset-password", r.accountHandler.ResetPassword)

		// Authenticated self-service
		authedGroup := authGroup.Group("")
		authedGroup.Use(r.authMiddleware.Authenticate)
		authedGroup.POST("/change-password", r.accountHandler.ChangePassword)
		authedGroup.GET("/profile", r.accountHandler.GetProfile)
	}

	// Public registration and self-service routes. Models reach these
	// through the QR code at the front desk, so no authentication.
	modelGroup := e.Group("/models")
	{
		modelGroup.POST("/domestic", r.modelHandler.RegisterDomestic)
		modelGroup.POST("/overseas", r.modelHandler.RegisterOverseas)
		modelGroup.POST("/find", r.modelHandler.FindByInfo)
		modelGroup.PATCH("/domestic/:id", r.modelHandler.UpdateDomestic)
		modelGroup.PATCH("/overseas/:id", r.modelHandler.UpdateOverseas)
	}

	// Back-office routes require authentication
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	{
		// Account management is restricted to administrators
		accountGroup := adminGroup.Group("/accounts")
		accountGroup.Use(r.authMiddleware.RequireAdmin())
		accountGroup.POST("/admin", r.accountHandler.SignupAdmin)
		accountGroup.POST("/director", r.accountHandler.SignupDirector)
		accountGroup.DELETE("/:id", r.accountHandler.DeleteAccount)

		// Model browsing and search, available to all staff roles
		adminGroup.GET("/models", r.adminHandler.SearchModels)
		adminGroup.GET("/models/domestic", r.modelHandler.ListDomestic)
		adminGroup.GET("/models/overseas", r.modelHandler.ListOverseas)
		adminGroup.GET("/models/filter-options", r.adminHandler.GetFilterOptions)
		adminGroup.GET("/models/:id", r.modelHandler.GetModel)
		adminGroup.GET("/models/:id/physical-size", r.modelHandler.GetPhysicalSize)
		adminGroup.DELETE("/models/:id", r.adminHandler.DeleteModel)

		// Camera test visits
		adminGroup.POST("/models/:id/visits", r.adminHandler.RegisterVisit)
		adminGroup.GET("/models/:id/camera-test", r.adminHandler.GetCameraTest)
		adminGroup.PATCH("/models/:id/camera-test", r.adminHandler.UpdateCameraTestStatus)

		// Dashboard and schedule
		adminGroup.GET("/dashboard", r.adminHandler.GetDashboard)
		adminGroup.GET("/schedule", r.adminHandler.GetDailySchedule)

		// Excel exports for staff
		exportGroup := adminGroup.Group("/export", r.authMiddleware.RequireRole(entity.RoleAdmin, entity.RoleDirector))
		exportGroup.GET("/domestic", r.adminHandler.ExportDomesticExcel)
		exportGroup.GET("/overseas", r.adminHandler.ExportOverseasExcel)
	}

	// QR codes used on printed material at the studio
	qrGroup := e.Group("/qrcode")
	qrGroup.Use(r.authMiddleware.Authenticate)
	{
		qrGroup.GET("/registration", r.qrcodeHandler.GetRegistrationQR)
		qrGroup.GET("/url", r.qrcodeHandler.GetURLQR)
	}
}
