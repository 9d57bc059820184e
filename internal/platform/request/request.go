// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and the
decoding of submitted forms, ensuring consistent error handling.
*/
package requestutil

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/blogadmin/internal/platform/validate"
)

// maxFormBytes caps a submitted form body.
const maxFormBytes = 1 << 20

/*
DecodeForm parses an application/x-www-form-urlencoded body.

Returns:
  - url.Values: the posted fields (query string values excluded)
  - error: validate.ErrInvalidForm if parsing fails
*/
func DecodeForm(writer http.ResponseWriter, request *http.Request) (url.Values, error) {
	request.Body = http.MaxBytesReader(writer, request.Body, maxFormBytes)
	if err := request.ParseForm(); err != nil {
		return nil, validate.ErrInvalidForm
	}
	return request.PostForm, nil
}

/*
ID retrieves a named URL parameter (entity identifier) from the request.
An absent parameter yields the empty string.
*/
func ID(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}
