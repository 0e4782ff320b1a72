// Package response renders the JSON envelopes returned by the API.
package response

import (
	"net/http"

	deliverycontext "eventhub/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// SuccessResponse wraps returned data.
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse wraps an error for the client.
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g. "EMAIL_ALREADY_REGISTERED"
	Message string `json:"message"`           // User-friendly error message
	Details any    `json:"details,omitempty"` // Only sent for 4xx errors other than 401/403
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

// OK writes data with 200.
func OK(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, SuccessResponse{Data: data, Meta: meta(c)})
}

// Created writes data with 201.
func Created(c echo.Context, data any) error {
	return c.JSON(http.StatusCreated, SuccessResponse{Data: data, Meta: meta(c)})
}

// Error writes an error envelope. Details are dropped for 5xx and auth failures.
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: meta(c),
	})
}

func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

func Forbidden(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusForbidden, errorCode, message, nil)
}

func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}
