package handler

import (
	"log/slog"
	"net/http"

	"menuqr/internal/delivery/http/middleware"
	"menuqr/internal/delivery/http/response"
	domainerrors "menuqr/internal/domain/errors"
	"menuqr/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AnalyticsHandler holds dependencies for scan analytics handlers.
type AnalyticsHandler struct {
	uc     usecase.AnalyticsUsecase
	logger *slog.Logger
}

// NewAnalyticsHandler is the constructor for AnalyticsHandler, injected by Fx.
func NewAnalyticsHandler(uc usecase.AnalyticsUsecase, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		uc:     uc,
		logger: logger,
	}
}

type recordScanRequest struct {
	MenuID     string `json:"menu_id" validate:"required,uuid"`
	DeviceType string `json:"device_type" validate:"required"`
}

// RecordScan ingests one QR scan from the public menu page. Client errors
// (bad menu ID, unknown device type) are rejected; backend failures are
// logged and acknowledged so a flaky database never degrades menu loads.
func (h *AnalyticsHandler) RecordScan(c echo.Context) error {
	var req recordScanRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid scan input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	menuID, err := uuid.Parse(req.MenuID)
	if err != nil {
		return response.BadRequest(c, "INVALID_MENU_ID", "Invalid menu ID format")
	}

	if err := h.uc.RecordScan(c.Request().Context(), menuID, req.DeviceType); err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return errors.WithStack(err)
		}

		h.logger.Error("Failed to record scan", "menuID", menuID, "error", err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "recorded"}, "")
}

// GetOwnerSummary returns per-menu scan statistics for the caller's menus.
func (h *AnalyticsHandler) GetOwnerSummary(c echo.Context) error {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing owner identity")
	}

	summaries, err := h.uc.GetOwnerSummary(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summaries, "")
}
