// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package respond_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/blogadmin/internal/platform/apperr"
	"github.com/taibuivan/blogadmin/internal/platform/ctxutil"
	"github.com/taibuivan/blogadmin/internal/platform/respond"
)

func TestRedirect(t *testing.T) {
	tests := []struct {
		method string
		want   int
	}{
		{http.MethodGet, http.StatusFound},
		{http.MethodHead, http.StatusFound},
		{http.MethodPost, http.StatusSeeOther},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			rec := httptest.NewRecorder()
			respond.Redirect(rec, httptest.NewRequest(tt.method, "/entry/1/edit", nil), "/entry")

			assert.Equal(t, tt.want, rec.Code)
			assert.Equal(t, "/entry", rec.Header().Get("Location"))
		})
	}
}

func TestError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(ctxutil.WithRequestID(req.Context(), "rid-1"))

	t.Run("app_error", func(t *testing.T) {
		rec := httptest.NewRecorder()
		respond.Error(rec, req, apperr.ValidationError("Validation failed", apperr.FieldError{Field: "title", Message: "required"}))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var envelope respond.ErrorEnvelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		assert.Equal(t, apperr.CodeValidation, envelope.Code)
		assert.Equal(t, "rid-1", envelope.RequestID)
		require.Len(t, envelope.Details, 1)
	})

	t.Run("plain_error_is_hidden", func(t *testing.T) {
		rec := httptest.NewRecorder()
		respond.Error(rec, req, errors.New("secret detail"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "secret detail")
	})
}
