package handler

import (
	"log/slog"
	"net/http"

	"menuqr/internal/delivery/http/response"
	"menuqr/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PublicHandler serves unauthenticated diner-facing endpoints.
type PublicHandler struct {
	uc     usecase.MenuUsecase
	logger *slog.Logger
}

// NewPublicHandler is the constructor for PublicHandler, injected by Fx.
func NewPublicHandler(uc usecase.MenuUsecase, logger *slog.Logger) *PublicHandler {
	return &PublicHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetMenu serves the public menu page data the QR code points at.
func (h *PublicHandler) GetMenu(c echo.Context) error {
	menuID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_MENU_ID", "Invalid menu ID format")
	}

	menu, err := h.uc.GetPublicMenu(c.Request().Context(), menuID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, menu, "")
}

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
