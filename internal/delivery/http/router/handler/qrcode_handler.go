package handler

import (
	"net/http"

	"mdesk/internal/delivery/http/response"
	"mdesk/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// QRCodeHandler serves generated QR code images.
type QRCodeHandler struct {
	qrService service.QRCodeService
}

// NewQRCodeHandler is the constructor for QRCodeHandler, injected by Fx.
func NewQRCodeHandler(qrService service.QRCodeService) *QRCodeHandler {
	return &QRCodeHandler{
		qrService: qrService,
	}
}

// GetRegistrationQR returns a QR code pointing at the public registration form.
func (h *QRCodeHandler) GetRegistrationQR(c echo.Context) error {
	png, err := h.qrService.GenerateRegistrationQR()
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// GetURLQR returns a QR code for the URL given in the url query parameter.
func (h *QRCodeHandler) GetURLQR(c echo.Context) error {
	url := c.QueryParam("url")
	if url == "" {
		return response.BadRequest(c, "INVALID_INPUT", "url query parameter is required")
	}

	png, err := h.qrService.GenerateURLQR(url)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
