// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package restclient

import (
	"encoding/json"
	"net/http"

	"github.com/taibuivan/blogadmin/internal/platform/apperr"
	"github.com/taibuivan/blogadmin/pkg/slice"
)

// problem is the backend's RFC 7807 error body.
type problem struct {
	Title       string         `json:"title"`
	Detail      string         `json:"detail"`
	Message     string         `json:"message"`
	FieldErrors []problemField `json:"fieldErrors"`
}

type problemField struct {
	ObjectName string `json:"objectName"`
	Field      string `json:"field"`
	Message    string `json:"message"`
}

// FromStatus classifies a non-2xx backend answer as an [apperr.AppError].
//
// The backend's own wording is kept when its body is a problem document,
// including per-field errors on a 400.
func FromStatus(status int, body []byte) *apperr.AppError {
	var details problem
	_ = json.Unmarshal(body, &details)

	message := details.Detail
	if message == "" {
		message = details.Title
	}

	var appError *apperr.AppError
	switch status {
	case http.StatusBadRequest:
		fields := slice.Map(details.FieldErrors, func(fe problemField) apperr.FieldError {
			return apperr.FieldError{Field: fe.Field, Message: fe.Message}
		})
		if message == "" {
			message = "Backend rejected the request"
		}
		appError = apperr.ValidationError(message, fields...)
		appError.HTTPStatus = http.StatusBadRequest
	case http.StatusUnauthorized:
		appError = apperr.Unauthorized(orDefault(message, "Backend authentication required"))
	case http.StatusForbidden:
		appError = apperr.Forbidden(orDefault(message, "Backend access denied"))
	case http.StatusNotFound:
		appError = apperr.NotFound("Resource")
	case http.StatusConflict:
		appError = apperr.Conflict(orDefault(message, "Backend reported a conflict"))
	case http.StatusTooManyRequests:
		appError = apperr.RateLimited(nil)
	default:
		appError = apperr.Upstream(status, nil)
	}

	appError.UpstreamStatus = status
	return appError
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
