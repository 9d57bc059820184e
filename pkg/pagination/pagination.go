// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination carries list options from an admin list view to the
// backend and the backend's totals back.
//
// # Overview
//
// Paging and sorting are decided by the backend. This package only parses
// the options a list view was opened with, encodes them as the backend's
// query parameters (page, size, repeated sort) and reads the total count the
// backend reports in the X-Total-Count header.
package pagination

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const (
	// DefaultSize is the number of items per page if not specified.
	DefaultSize = 20
	// MaxSize is the upper bound for items per page.
	MaxSize = 100
	// DefaultPage is the starting page (0-indexed, as the backend expects).
	DefaultPage = 0

	headerTotalCount = "X-Total-Count"
)

// Request holds the options of one backend query.
//
// A zero Request sends no paging parameters at all, which is how lookup
// collections ask for the backend's default page.
type Request struct {
	Page int
	Size int
	Sort []string

	// Filters are forwarded verbatim (e.g. "name.contains").
	Filters url.Values
}

// Values encodes the request as backend query parameters.
//
// Sort keys are repeated, every other key is set once per value.
func (r *Request) Values() url.Values {
	values := url.Values{}
	if r == nil {
		return values
	}

	if r.Size > 0 {
		values.Set("page", strconv.Itoa(r.Page))
		values.Set("size", strconv.Itoa(r.Size))
	}

	for _, sort := range r.Sort {
		values.Add("sort", sort)
	}

	for key, vals := range r.Filters {
		for _, v := range vals {
			values.Add(key, v)
		}
	}

	return values
}

// Meta is the pagination metadata included in list views.
type Meta struct {
	Page       int      `json:"page"`
	Size       int      `json:"size"`
	Sort       []string `json:"sort"`
	Total      int      `json:"total"`
	TotalPages int      `json:"total_pages"`
}

// NewMeta constructs pagination metadata for a list view.
//
// It automatically calculates the TotalPages based on the total count and size.
func NewMeta(request Request, total int) Meta {
	totalPages := 0
	if request.Size > 0 {
		totalPages = (total + request.Size - 1) / request.Size
	}

	return Meta{
		Page:       request.Page,
		Size:       request.Size,
		Sort:       request.Sort,
		Total:      total,
		TotalPages: totalPages,
	}
}

// FromRequest parses "page", "size" and "sort" query parameters of a list view.
//
// # Clamping
//
// Invalid, negative, or excessive values are clamped to [DefaultPage],
// [DefaultSize] or [MaxSize]. When no sort is given, defaultSort applies.
func FromRequest(r *http.Request, defaultSort string) Request {
	query := r.URL.Query()

	page := parseIntParam(query, "page", DefaultPage)
	size := parseIntParam(query, "size", DefaultSize)

	if page < 0 {
		page = DefaultPage
	}

	if size < 1 {
		size = DefaultSize
	}
	if size > MaxSize {
		size = MaxSize
	}

	var sort []string
	for _, s := range query["sort"] {
		if s = strings.TrimSpace(s); s != "" {
			sort = append(sort, s)
		}
	}
	if len(sort) == 0 && defaultSort != "" {
		sort = []string{defaultSort}
	}

	return Request{Page: page, Size: size, Sort: sort}
}

// TotalFromHeader reads the backend's X-Total-Count header.
// A missing or malformed header yields fallback.
func TotalFromHeader(header http.Header, fallback int) int {
	raw := header.Get(headerTotalCount)
	if raw == "" {
		return fallback
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return fallback
	}

	return n
}

// parseIntParam parses a single integer query parameter with a fallback default.
func parseIntParam(query url.Values, key string, defaultVal int) int {
	raw := query.Get(key)
	if raw == "" {
		return defaultVal
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return defaultVal
	}

	return n
}
