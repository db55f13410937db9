package util

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"
)

// Defaults used when an error carries no information of its own.
const (
	DefaultCode    = "SERVER_ERROR"
	DefaultMessage = "Internal Server Error"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

func NewValidationError(message string, details map[string]any) error {
	return NewDomainError("VALIDATION_FAILED", message, http.StatusBadRequest, details)
}

func NewNotFound(message string) error {
	return NewDomainError("NOT_FOUND", message, http.StatusNotFound, nil)
}

func NewUnauthorized(message string) error {
	return NewDomainError("UNAUTHORIZED", message, http.StatusUnauthorized, nil)
}

func NewForbidden(message string) error {
	return NewDomainError("FORBIDDEN", message, http.StatusForbidden, nil)
}

func NewConflict(message string) error {
	return NewDomainError("CONFLICT", message, http.StatusConflict, nil)
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       DefaultCode,
		Message:    DefaultMessage,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts any error to a DomainError, falling back to
// 500 defaults field by field. It accepts nil and never panics: this
// is the catch-all every handler routes failures through.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return &DomainError{
			Code:       DefaultCode,
			Message:    DefaultMessage,
			HTTPStatus: http.StatusInternalServerError,
		}
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		if domainErr.Code == "" {
			domainErr.Code = DefaultCode
		}
		if domainErr.Message == "" {
			domainErr.Message = DefaultMessage
		}
		if domainErr.HTTPStatus == 0 {
			domainErr.HTTPStatus = http.StatusInternalServerError
		}
		return domainErr
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return &DomainError{
			Code:       "NOT_FOUND",
			Message:    "resource not found",
			HTTPStatus: http.StatusNotFound,
			Err:        err,
		}
	}
	return &DomainError{
		Code:       DefaultCode,
		Message:    DefaultMessage,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}
