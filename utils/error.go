package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Service error codes. Handlers map these onto HTTP statuses; anything that
// is not a ServiceError is treated as an unexpected 500.
const (
	CodeValidation = "validation"
	CodeNotFound   = "not_found"
	CodeConflict   = "conflict"
	CodeForbidden  = "forbidden"
)

// ServiceError is the error type services return for caller-attributable
// failures. Message strings are part of the API contract and surface to the
// client verbatim.
type ServiceError struct {
	Code    string
	Message string
	Details []string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string, details ...string) error {
	return &ServiceError{Code: CodeValidation, Message: msg, Details: details}
}

func NewNotFoundError(msg string) error {
	return &ServiceError{Code: CodeNotFound, Message: msg}
}

// Conflicts (duplicate booking, duplicate review, duplicate transaction ID)
// respond with 400, matching the original API.
func NewConflictError(msg string) error {
	return &ServiceError{Code: CodeConflict, Message: msg}
}

func NewForbiddenError(msg string) error {
	return &ServiceError{Code: CodeForbidden, Message: msg}
}

// AsServiceError unwraps err into a ServiceError and its HTTP status.
func AsServiceError(err error) (*ServiceError, int, bool) {
	var se *ServiceError
	if !errors.As(err, &se) {
		return nil, http.StatusInternalServerError, false
	}
	switch se.Code {
	case CodeValidation, CodeConflict:
		return se, http.StatusBadRequest, true
	case CodeNotFound:
		return se, http.StatusNotFound, true
	case CodeForbidden:
		return se, http.StatusForbidden, true
	}
	return se, http.StatusInternalServerError, true
}

// ErrorResponse defines the structure of unexpected error responses.
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}
