package errors

import (
	"net/http"

	"menuqr/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"輸入資料驗證失敗",
		"",
	)

	ErrInvalidDeviceType = NewBaseError(
		http.StatusBadRequest,
		"INVALID_DEVICE_TYPE",
		"無效的裝置類型",
		"",
	)

	// Menu-related errors
	ErrMenuNotFound = NewBaseError(
		http.StatusNotFound,
		"MENU_NOT_FOUND",
		"找不到該菜單",
		"",
	)

	ErrMenuUnavailable = NewBaseError(
		http.StatusForbidden,
		"MENU_UNAVAILABLE",
		"此菜單暫時無法使用",
		"",
	)

	ErrMenuOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"MENU_OWNERSHIP_VIOLATION",
		"您沒有權限存取此菜單",
		"",
	)

	ErrMenuVersionConflict = NewBaseError(
		http.StatusConflict,
		"MENU_VERSION_CONFLICT",
		"菜單已被其他操作更新",
		"",
	)

	ErrMenuCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"MENU_CREATION_FAILED",
		"建立菜單失敗",
		"",
	)

	ErrMenuUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"MENU_UPDATE_FAILED",
		"更新菜單失敗",
		"",
	)

	// QR-related errors
	ErrQRGenerationFailed = NewBaseError(
		http.StatusInternalServerError,
		"QR_GENERATION_FAILED",
		"QR Code 產生失敗",
		"",
	)

	// Analytics-related errors
	ErrAnalyticsNotFound = NewBaseError(
		http.StatusNotFound,
		"ANALYTICS_NOT_FOUND",
		"找不到掃描統計資料",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"系統內部錯誤",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"存取被拒絕",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"找不到該資源",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "資料庫執行失敗"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
