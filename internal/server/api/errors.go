package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/filedesk/internal/common"
	"github.com/dmitrijs2005/filedesk/internal/logging"
	"github.com/labstack/echo/v4"
)

// APIError is the JSON body of every error response.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewBadRequestError(message string, cause error) *APIError {
	err := &APIError{
		Status:  http.StatusBadRequest,
		Code:    "BAD_REQUEST",
		Message: message,
	}
	if cause != nil {
		err.Details = cause.Error()
	}
	return err
}

func NewNotFoundError(resource string, id string) *APIError {
	return &APIError{
		Status:  http.StatusNotFound,
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found: %s", resource, id),
	}
}

// mapError converts service errors into API errors.
func mapError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return &APIError{
			Status:  httpErr.Code,
			Code:    "HTTP_ERROR",
			Message: fmt.Sprintf("%v", httpErr.Message),
		}
	}

	switch {
	case errors.Is(err, common.ErrorNotFound):
		return &APIError{Status: http.StatusNotFound, Code: "NOT_FOUND", Message: "File not found"}
	case errors.Is(err, common.ErrorFileTooLarge):
		return &APIError{Status: http.StatusRequestEntityTooLarge, Code: "FILE_TOO_LARGE", Message: "File is too large", Details: err.Error()}
	case errors.Is(err, common.ErrorUnsupportedType):
		return &APIError{Status: http.StatusUnsupportedMediaType, Code: "UNSUPPORTED_MEDIA_TYPE", Message: "Unsupported file type", Details: err.Error()}
	case errors.Is(err, common.ErrorMissingFile):
		return NewBadRequestError("No file was submitted", err)
	}

	return &APIError{
		Status:  http.StatusInternalServerError,
		Code:    "INTERNAL_ERROR",
		Message: "An unexpected error occurred",
	}
}

// ErrorHandler renders errors as APIError JSON. Server-side failures are
// logged with their cause.
// Usage: e.HTTPErrorHandler = ErrorHandler(logger)
func ErrorHandler(logger logging.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		apiErr := mapError(err)
		if apiErr.Status >= http.StatusInternalServerError {
			logger.Error(c.Request().Context(), "request failed",
				"method", c.Request().Method, "path", c.Path(), "error", err)
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(apiErr.Status)
			return
		}
		_ = c.JSON(apiErr.Status, apiErr)
	}
}
