package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorType string

const (
	ErrorTypeInvalidInput     ErrorType = "invalid_input"
	ErrorTypeUnauthenticated  ErrorType = "unauthenticated"
	ErrorTypeNotFound         ErrorType = "not_found"
	ErrorTypeRateLimited      ErrorType = "rate_limited"
	ErrorTypeUpstream         ErrorType = "upstream_error"
	ErrorTypeUpstreamContract ErrorType = "upstream_contract_violation"
	ErrorTypeMisconfigured    ErrorType = "service_misconfigured"
)

// AppError tags an error with a type the HTTP layer maps to a status code.
// Message is safe to return to the caller; Err is for server-side logs.
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(errType ErrorType, message string, originalError error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Err:     originalError,
	}
}

func NewInvalidInput(message string) *AppError {
	return New(ErrorTypeInvalidInput, message, nil)
}

func NewUnauthenticated(message string) *AppError {
	return New(ErrorTypeUnauthenticated, message, nil)
}

func NewNotFound(message string) *AppError {
	return New(ErrorTypeNotFound, message, nil)
}

func NewUpstream(message string, originalError error) *AppError {
	return New(ErrorTypeUpstream, message, originalError)
}

func NewUpstreamContract(message string, originalError error) *AppError {
	return New(ErrorTypeUpstreamContract, message, originalError)
}

func NewMisconfigured(message string) *AppError {
	return New(ErrorTypeMisconfigured, message, nil)
}

// TypeOf returns the tagged type, or "" for untagged errors.
func TypeOf(err error) ErrorType {
	var appError *AppError
	if errors.As(err, &appError) {
		return appError.Type
	}
	return ""
}

// SafeMessage returns the client-facing message for tagged errors and a
// generic one otherwise, so internal details never leak.
func SafeMessage(err error) string {
	var appError *AppError
	if errors.As(err, &appError) {
		return appError.Message
	}
	return "internal server error"
}

// HTTPStatus maps an error to its response status. Untagged errors are 500.
func HTTPStatus(err error) int {
	switch TypeOf(err) {
	case ErrorTypeInvalidInput:
		return http.StatusBadRequest
	case ErrorTypeUnauthenticated:
		return http.StatusUnauthorized
	case ErrorTypeNotFound:
		return http.StatusNotFound
	case ErrorTypeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func IsInvalidInput(err error) bool {
	return TypeOf(err) == ErrorTypeInvalidInput
}

func IsNotFound(err error) bool {
	return TypeOf(err) == ErrorTypeNotFound
}
