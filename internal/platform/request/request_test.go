// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package requestutil_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	requestutil "github.com/taibuivan/blogadmin/internal/platform/request"
	"github.com/taibuivan/blogadmin/internal/platform/validate"
)

func TestDecodeForm(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/entry/new?title=from-query", strings.NewReader("title=posted&tags=1&tags=2"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	values, err := requestutil.DecodeForm(httptest.NewRecorder(), req)
	require.NoError(t, err)

	assert.Equal(t, "posted", values.Get("title"))
	assert.Equal(t, []string{"1", "2"}, values["tags"])
}

func TestDecodeForm_Malformed(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/entry/new", strings.NewReader("title=%zz"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	_, err := requestutil.DecodeForm(httptest.NewRecorder(), req)
	assert.ErrorIs(t, err, validate.ErrInvalidForm)
}
