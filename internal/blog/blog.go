// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package blog administers blogs: the owners of entries.
package blog

import (
	"context"

	"github.com/taibuivan/blogadmin/internal/crud"
	"github.com/taibuivan/blogadmin/internal/platform/constants"
	"github.com/taibuivan/blogadmin/internal/platform/restclient"
	"github.com/taibuivan/blogadmin/pkg/pagination"
)

// Blog is a named collection of entries.
type Blog struct {
	ID   *int64  `json:"id"`
	Name *string `json:"name"`
}

// Key returns the identifier, nil for a blog not yet saved.
func (b *Blog) Key() *int64 {
	if b == nil {
		return nil
	}
	return b.ID
}

// Service is the REST resource at api/blogs.
type Service struct {
	*restclient.Resource[Blog, *Blog, Blog]
}

// NewService binds the blog collection to client.
func NewService(client *restclient.Client) *Service {
	return &Service{
		Resource: restclient.NewResource[Blog, *Blog](client, constants.ResourceBlogs, restclient.Identity[Blog]()),
	}
}

// Ping asks the backend for the smallest possible page of blogs.
func (s *Service) Ping(ctx context.Context) error {
	_, err := s.Query(ctx, &pagination.Request{Size: 1})
	return err
}

// Compare reports whether a and b are the same blog.
func (s *Service) Compare(a, b *Blog) bool {
	return crud.Equal(a, b)
}

// AddIfMissing merges blogs into collection, new ones first.
func (s *Service) AddIfMissing(collection []*Blog, blogs ...*Blog) []*Blog {
	return crud.AddIfMissing(collection, blogs...)
}
