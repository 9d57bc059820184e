// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package tag administers tags, the labels attached to entries.
package tag

import (
	"context"

	"github.com/taibuivan/blogadmin/internal/crud"
	"github.com/taibuivan/blogadmin/internal/platform/constants"
	"github.com/taibuivan/blogadmin/internal/platform/restclient"
	"github.com/taibuivan/blogadmin/pkg/pagination"
)

// Tag labels entries. An entry may carry many tags.
type Tag struct {
	ID   *int64  `json:"id"`
	Name *string `json:"name"`
}

// Key returns the identifier, nil for a tag not yet saved.
func (t *Tag) Key() *int64 {
	if t == nil {
		return nil
	}
	return t.ID
}

// Service is the REST resource at api/tags.
type Service struct {
	*restclient.Resource[Tag, *Tag, Tag]
}

// NewService binds the tag collection to client.
func NewService(client *restclient.Client) *Service {
	return &Service{
		Resource: restclient.NewResource[Tag, *Tag](client, constants.ResourceTags, restclient.Identity[Tag]()),
	}
}

// Ping asks the backend for the smallest possible page of tags.
func (s *Service) Ping(ctx context.Context) error {
	_, err := s.Query(ctx, &pagination.Request{Size: 1})
	return err
}

// Compare reports whether a and b are the same tag.
func (s *Service) Compare(a, b *Tag) bool {
	return crud.Equal(a, b)
}

// AddIfMissing merges tags into collection, new ones first.
func (s *Service) AddIfMissing(collection []*Tag, tags ...*Tag) []*Tag {
	return crud.AddIfMissing(collection, tags...)
}
