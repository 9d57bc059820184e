// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr defines the centralized error type of the blog admin front-end.

Errors come from three places and all of them end up as an [AppError]:

  - Form validation: required fields missing, surfaced with per-field details.
  - Backend transport: non-2xx responses from the REST backend, mapped by status.
  - Navigation: a resolved entity that does not exist.

The admin HTTP layer renders an [AppError] through its HTTPStatus, the core
packages only ever create or propagate them.
*/
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusClientClosedRequest answers a request its client abandoned.
const StatusClientClosedRequest = 499

// Machine-readable error codes.
const (
	CodeNotFound     = "NOT_FOUND"
	CodeValidation   = "VALIDATION_ERROR"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeConflict     = "CONFLICT"
	CodeUpstream     = "UPSTREAM_ERROR"
	CodeRateLimited  = "RATE_LIMITED"
	CodeCanceled     = "REQUEST_CANCELED"
	CodeTimeout      = "TIMEOUT"
	CodeInternal     = "INTERNAL_ERROR"
)

// AppError is the canonical error type of the admin front-end.
//
// It carries an HTTP status code, a machine-readable code, a client-safe
// message, and an optional slice of field-level validation errors.
//
// # Security
//
// The Cause field is for server-side logging only and is never rendered.
type AppError struct {
	// Code is a machine-readable error identifier (e.g. "NOT_FOUND").
	Code string `json:"code"`
	// Message is a human-readable description safe to return to the client.
	Message string `json:"error"`
	// HTTPStatus is the HTTP response status code.
	HTTPStatus int `json:"-"`
	// UpstreamStatus is the status the backend answered with, if any.
	UpstreamStatus int `json:"-"`
	// Cause is the underlying error, used for server-side logging only.
	Cause error `json:"-"`
	// Details holds per-field validation errors for VALIDATION_ERROR responses.
	Details []FieldError `json:"details,omitempty"`
}

// FieldError represents a single field-level validation failure.
type FieldError struct {
	// Field is the form field name that failed validation.
	Field string `json:"field"`
	// Message is the human-readable description of the failure.
	Message string `json:"message"`
}

// Error implements the error interface. It returns the client-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// # Client Errors (4xx)

// NotFound creates a 404 [AppError] for a named resource.
//
// Example:
//
//	apperr.NotFound("Entry") // Returns "Entry not found"
func NotFound(resource string) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    resource + " not found",
		HTTPStatus: http.StatusNotFound,
	}
}

// Unauthorized creates a 401 [AppError].
func Unauthorized(msg string) *AppError {
	return &AppError{
		Code:       CodeUnauthorized,
		Message:    msg,
		HTTPStatus: http.StatusUnauthorized,
	}
}

// Forbidden creates a 403 [AppError].
func Forbidden(msg string) *AppError {
	return &AppError{
		Code:       CodeForbidden,
		Message:    msg,
		HTTPStatus: http.StatusForbidden,
	}
}

// Conflict creates a 409 [AppError].
func Conflict(msg string) *AppError {
	return &AppError{
		Code:       CodeConflict,
		Message:    msg,
		HTTPStatus: http.StatusConflict,
	}
}

// ValidationError creates a 422 [AppError] with optional per-field details.
//
// A form that fails validation is well-formed but semantically incomplete,
// hence Unprocessable Entity rather than Bad Request.
func ValidationError(msg string, details ...FieldError) *AppError {
	return &AppError{
		Code:       CodeValidation,
		Message:    msg,
		HTTPStatus: http.StatusUnprocessableEntity,
		Details:    details,
	}
}

// BadRequest creates a 400 [AppError] for malformed input.
func BadRequest(msg string) *AppError {
	return &AppError{
		Code:       CodeValidation,
		Message:    msg,
		HTTPStatus: http.StatusBadRequest,
	}
}

// RateLimited creates a 429 [AppError].
func RateLimited(cause error) *AppError {
	return &AppError{
		Code:       CodeRateLimited,
		Message:    "Backend rate limit exceeded",
		HTTPStatus: http.StatusTooManyRequests,
		Cause:      cause,
	}
}

// Canceled creates a 499 [AppError] for a request its client abandoned.
func Canceled(cause error) *AppError {
	return &AppError{
		Code:       CodeCanceled,
		Message:    "Request canceled",
		HTTPStatus: StatusClientClosedRequest,
		Cause:      cause,
	}
}

// # Server Errors (5xx)

// Timeout creates a 504 [AppError] for a backend call that ran out of time.
func Timeout(cause error) *AppError {
	return &AppError{
		Code:       CodeTimeout,
		Message:    "Backend request timed out",
		HTTPStatus: http.StatusGatewayTimeout,
		Cause:      cause,
	}
}

// Upstream creates a 502 [AppError] for a failed call to the REST backend.
// The backend status is kept in UpstreamStatus.
func Upstream(status int, cause error) *AppError {
	return &AppError{
		Code:           CodeUpstream,
		Message:        fmt.Sprintf("Backend request failed with status %d", status),
		HTTPStatus:     http.StatusBadGateway,
		UpstreamStatus: status,
		Cause:          cause,
	}
}

// Internal creates a 500 [AppError] wrapping an unexpected error.
// The cause is stored for logging but is never sent to the client.
func Internal(cause error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		Message:    "An unexpected error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// # Helpers

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// HasCode reports whether err carries an [*AppError] with the given code.
func HasCode(err error, code string) bool {
	ae := As(err)
	return ae != nil && ae.Code == code
}
