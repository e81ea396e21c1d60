// Package validator wires go-playground/validator into Echo's Validator hook.
package validator

import (
	"net/http"

	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator adapts go-playground/validator for echo.Validator.
type CustomValidator struct {
	validate *playground.Validate
}

// New creates the validator used by the HTTP server.
func New() *CustomValidator {
	return &CustomValidator{validate: playground.New(playground.WithRequiredStructEnabled())}
}

// Validate implements echo.Validator. Validation failures become 400 responses.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
