// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/blogadmin/pkg/pagination"
)

/*
TestFromRequest covers defaults and clamping of list options.
*/
func TestFromRequest(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  pagination.Request
	}{
		{"defaults", "", pagination.Request{Page: 0, Size: 20, Sort: []string{"id,asc"}}},
		{"explicit", "page=2&size=5&sort=title,desc&sort=id,asc", pagination.Request{Page: 2, Size: 5, Sort: []string{"title,desc", "id,asc"}}},
		{"negative_page", "page=-3", pagination.Request{Page: 0, Size: 20, Sort: []string{"id,asc"}}},
		{"oversized", "size=1000", pagination.Request{Page: 0, Size: 100, Sort: []string{"id,asc"}}},
		{"garbage", "page=x&size=y", pagination.Request{Page: 0, Size: 20, Sort: []string{"id,asc"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/entry?"+tt.query, nil)
			assert.Equal(t, tt.want, pagination.FromRequest(r, "id,asc"))
		})
	}
}

/*
TestRequest_Values checks the backend query encoding.
*/
func TestRequest_Values(t *testing.T) {
	var empty *pagination.Request
	assert.Empty(t, empty.Values())
	assert.Empty(t, (&pagination.Request{}).Values())

	req := pagination.Request{
		Page:    1,
		Size:    10,
		Sort:    []string{"id,asc", "title,desc"},
		Filters: url.Values{"title.contains": {"go"}},
	}
	values := req.Values()

	assert.Equal(t, "1", values.Get("page"))
	assert.Equal(t, "10", values.Get("size"))
	assert.Equal(t, []string{"id,asc", "title,desc"}, values["sort"])
	assert.Equal(t, "go", values.Get("title.contains"))
}

/*
TestTotalFromHeader reads X-Total-Count with a fallback.
*/
func TestTotalFromHeader(t *testing.T) {
	header := http.Header{}
	assert.Equal(t, 7, pagination.TotalFromHeader(header, 7))

	header.Set("X-Total-Count", "42")
	assert.Equal(t, 42, pagination.TotalFromHeader(header, 7))

	header.Set("X-Total-Count", "nope")
	assert.Equal(t, 7, pagination.TotalFromHeader(header, 7))
}

/*
TestNewMeta computes the page count.
*/
func TestNewMeta(t *testing.T) {
	meta := pagination.NewMeta(pagination.Request{Page: 1, Size: 20}, 41)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, 41, meta.Total)

	assert.Zero(t, pagination.NewMeta(pagination.Request{}, 5).TotalPages)
}
