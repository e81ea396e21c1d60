package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"menuqr/internal/delivery/http/validator"
	"menuqr/internal/domain/entity"
	domainerrors "menuqr/internal/domain/errors"
	mockusecase "menuqr/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPublicHandler_GetMenu_Integration(t *testing.T) {
	menuID := uuid.New()
	menu := &entity.Menu{
		ID:       menuID,
		Name:     "Lunch Specials",
		IsActive: true,
		Categories: []entity.Category{
			{ID: uuid.New(), MenuID: menuID, Name: "Mains", SortOrder: 0},
		},
	}

	mockUC := mockusecase.NewMockMenuUsecase(t)
	mockUC.EXPECT().GetPublicMenu(mock.Anything, menuID).Return(menu, nil)

	h := &PublicHandler{
		uc:     mockUC,
		logger: slog.Default(),
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/menu/"+menuID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/menu/:id")
	c.SetParamNames("id")
	c.SetParamValues(menuID.String())

	err := h.GetMenu(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	responseBody := rec.Body.String()
	assert.Contains(t, responseBody, `"success":true`)
	assert.Contains(t, responseBody, "Lunch Specials")
	assert.Contains(t, responseBody, menuID.String())
}

func TestPublicHandler_GetMenu_InvalidID(t *testing.T) {
	mockUC := mockusecase.NewMockMenuUsecase(t)

	h := &PublicHandler{
		uc:     mockUC,
		logger: slog.Default(),
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/menu/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/menu/:id")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := h.GetMenu(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_MENU_ID")
}

func TestAnalyticsHandler_RecordScan_Integration(t *testing.T) {
	menuID := uuid.New()

	mockUC := mockusecase.NewMockAnalyticsUsecase(t)
	mockUC.EXPECT().RecordScan(mock.Anything, menuID, "mobile").Return(nil)

	h := &AnalyticsHandler{
		uc:     mockUC,
		logger: slog.Default(),
	}

	e := echo.New()
	e.Validator = validator.New()
	body := `{"menu_id":"` + menuID.String() + `","device_type":"mobile"}`
	req := httptest.NewRequest(http.MethodPost, "/analytics/scan", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.RecordScan(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "recorded")
}

func TestAnalyticsHandler_RecordScan_BackendFailureStillAcked(t *testing.T) {
	menuID := uuid.New()

	mockUC := mockusecase.NewMockAnalyticsUsecase(t)
	mockUC.EXPECT().RecordScan(mock.Anything, menuID, "tablet").
		Return(errors.New("database unavailable"))

	h := &AnalyticsHandler{
		uc:     mockUC,
		logger: slog.Default(),
	}

	e := echo.New()
	e.Validator = validator.New()
	body := `{"menu_id":"` + menuID.String() + `","device_type":"tablet"}`
	req := httptest.NewRequest(http.MethodPost, "/analytics/scan", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.RecordScan(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "recorded")
}

func TestAnalyticsHandler_RecordScan_InvalidDeviceRejected(t *testing.T) {
	menuID := uuid.New()

	mockUC := mockusecase.NewMockAnalyticsUsecase(t)
	mockUC.EXPECT().RecordScan(mock.Anything, menuID, "smartwatch").
		Return(domainerrors.ErrInvalidDeviceType)

	h := &AnalyticsHandler{
		uc:     mockUC,
		logger: slog.Default(),
	}

	e := echo.New()
	e.Validator = validator.New()
	body := `{"menu_id":"` + menuID.String() + `","device_type":"smartwatch"}`
	req := httptest.NewRequest(http.MethodPost, "/analytics/scan", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.RecordScan(c)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidDeviceType))
}
