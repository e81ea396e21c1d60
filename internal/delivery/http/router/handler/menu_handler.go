// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"menuqr/internal/delivery/http/middleware"
	"menuqr/internal/delivery/http/response"
	"menuqr/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MenuHandler holds dependencies for owner-facing menu handlers.
type MenuHandler struct {
	uc     usecase.MenuUsecase
	logger *slog.Logger
}

// NewMenuHandler is the constructor for MenuHandler, injected by Fx.
func NewMenuHandler(uc usecase.MenuUsecase, logger *slog.Logger) *MenuHandler {
	return &MenuHandler{
		uc:     uc,
		logger: logger,
	}
}

// --- Request payloads ---

type createMenuRequest struct {
	Name        string                `json:"name" validate:"required,max=100"`
	Description string                `json:"description" validate:"max=500"`
	Template    string                `json:"template" validate:"max=50"`
	Categories  []categoryRequestItem `json:"categories" validate:"required,min=1,dive"`
}

type categoryRequestItem struct {
	Name  string            `json:"name" validate:"required,max=100"`
	Items []itemRequestItem `json:"items" validate:"dive"`
}

type itemRequestItem struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Description string   `json:"description" validate:"max=500"`
	Ingredients []string `json:"ingredients" validate:"max=50"`
	IsAvailable *bool    `json:"is_available"`
}

type updateMenuRequest struct {
	Name        *string               `json:"name" validate:"omitempty,max=100"`
	Description *string               `json:"description" validate:"omitempty,max=500"`
	Template    *string               `json:"template" validate:"omitempty,max=50"`
	IsActive    *bool                 `json:"is_active"`
	Categories  []categoryRequestItem `json:"categories" validate:"omitempty,dive"`
	Version     int64                 `json:"version" validate:"gte=0"`
}

// CreateMenu handles the menu creation request.
func (h *MenuHandler) CreateMenu(c echo.Context) error {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing owner identity")
	}

	var req createMenuRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid menu input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	menu, err := h.uc.CreateMenu(c.Request().Context(), ownerID, &usecase.CreateMenuInput{
		Name:        req.Name,
		Description: req.Description,
		Template:    req.Template,
		Categories:  toCategoryInputs(req.Categories),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, menu, "Menu created successfully")
}

// ListMenus returns all menus belonging to the caller.
func (h *MenuHandler) ListMenus(c echo.Context) error {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing owner identity")
	}

	menus, err := h.uc.ListMenus(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, menus, "")
}

// GetMenu returns one of the caller's menus by ID.
func (h *MenuHandler) GetMenu(c echo.Context) error {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing owner identity")
	}

	menuID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_MENU_ID", "Invalid menu ID format")
	}

	menu, err := h.uc.GetMenu(c.Request().Context(), ownerID, menuID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, menu, "")
}

// UpdateMenu applies a partial update to one of the caller's menus.
func (h *MenuHandler) UpdateMenu(c echo.Context) error {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing owner identity")
	}

	menuID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_MENU_ID", "Invalid menu ID format")
	}

	var req updateMenuRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid menu input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.UpdateMenuInput{
		Name:        req.Name,
		Description: req.Description,
		Template:    req.Template,
		IsActive:    req.IsActive,
		Version:     req.Version,
	}
	if req.Categories != nil {
		input.Categories = toCategoryInputs(req.Categories)
	}

	menu, err := h.uc.UpdateMenu(c.Request().Context(), ownerID, menuID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, menu, "Menu updated successfully")
}

// DeleteMenu removes one of the caller's menus.
func (h *MenuHandler) DeleteMenu(c echo.Context) error {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing owner identity")
	}

	menuID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_MENU_ID", "Invalid menu ID format")
	}

	if err := h.uc.DeleteMenu(c.Request().Context(), ownerID, menuID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": menuID.String()}, "Menu deleted successfully")
}

// RegenerateQR rebuilds the QR code for one of the caller's menus.
func (h *MenuHandler) RegenerateQR(c echo.Context) error {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing owner identity")
	}

	menuID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_MENU_ID", "Invalid menu ID format")
	}

	menu, err := h.uc.RegenerateQR(c.Request().Context(), ownerID, menuID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, menu, "QR code regenerated successfully")
}

func toCategoryInputs(reqs []categoryRequestItem) []usecase.CategoryInput {
	categories := make([]usecase.CategoryInput, 0, len(reqs))
	for _, categoryReq := range reqs {
		items := make([]usecase.ItemInput, 0, len(categoryReq.Items))
		for _, itemReq := range categoryReq.Items {
			items = append(items, usecase.ItemInput{
				Name:        itemReq.Name,
				Price:       itemReq.Price,
				Description: itemReq.Description,
				Ingredients: itemReq.Ingredients,
				IsAvailable: itemReq.IsAvailable,
			})
		}

		categories = append(categories, usecase.CategoryInput{
			Name:  categoryReq.Name,
			Items: items,
		})
	}

	return categories
}
