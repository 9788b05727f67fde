package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response unified API response structure
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`              // HTTP status code
	Message string     `json:"message,omitempty"` // User-friendly message
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "USER_NOT_FOUND"
	Details string `json:"details,omitempty"` // Detailed error description
}

// Success successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

// OK is a 200 response carrying data.
func OK(c echo.Context, data any) error {
	return Success(c, http.StatusOK, data, "")
}

// Created is a 201 response carrying data and a confirmation message.
func Created(c echo.Context, data any, message string) error {
	return Success(c, http.StatusCreated, data, message)
}

// Message is a 200 response carrying only a confirmation message.
func Message(c echo.Context, message string) error {
	return Success(c, http.StatusOK, nil, message)
}

// Error error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}
