// Package response shapes the uniform JSON envelope returned by every
// endpoint: {status: "success"|"error", data?|token?|message?}.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// Envelope is the uniform API response structure.
type Envelope struct {
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Token   string `json:"token,omitempty"`
	Message string `json:"message,omitempty"`
}

// Success writes a success envelope carrying data.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, Envelope{
		Status: statusSuccess,
		Data:   data,
	})
}

// SuccessToken writes a success envelope carrying a session token.
func SuccessToken(c echo.Context, token string) error {
	return c.JSON(http.StatusOK, Envelope{
		Status: statusSuccess,
		Token:  token,
	})
}

// SuccessEmpty writes a bare success envelope.
func SuccessEmpty(c echo.Context) error {
	return c.JSON(http.StatusOK, Envelope{Status: statusSuccess})
}

// Error writes an error envelope with a client-safe message.
func Error(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Envelope{
		Status:  statusError,
		Message: message,
	})
}

// BadRequest 400 error
func BadRequest(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, message)
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, message string) error {
	return Error(c, http.StatusUnauthorized, message)
}

// Forbidden 403 error
func Forbidden(c echo.Context, message string) error {
	return Error(c, http.StatusForbidden, message)
}

// NotFound 404 error
func NotFound(c echo.Context, message string) error {
	return Error(c, http.StatusNotFound, message)
}

// InternalServerError 500 error
func InternalServerError(c echo.Context, message string) error {
	return Error(c, http.StatusInternalServerError, message)
}
