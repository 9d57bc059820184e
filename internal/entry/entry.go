// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package entry administers blog entries.

An entry belongs to at most one blog and carries any number of tags. Both are
chosen on the update screen from selectors stocked by the backend, see
[Editor].
*/
package entry

import (
	"context"
	"time"

	"github.com/taibuivan/blogadmin/internal/blog"
	"github.com/taibuivan/blogadmin/internal/crud"
	"github.com/taibuivan/blogadmin/internal/platform/constants"
	"github.com/taibuivan/blogadmin/internal/platform/restclient"
	"github.com/taibuivan/blogadmin/internal/tag"
	"github.com/taibuivan/blogadmin/pkg/pagination"
)

// Entry is one post of a blog.
type Entry struct {
	ID      *int64     `json:"id"`
	Title   *string    `json:"title"`
	Content *string    `json:"content"`
	Date    *time.Time `json:"date"`
	Blog    *blog.Blog `json:"blog"`
	Tags    []*tag.Tag `json:"tags"`
}

// Key returns the identifier, nil for an entry not yet saved.
func (e *Entry) Key() *int64 {
	if e == nil {
		return nil
	}
	return e.ID
}

// Wire is the backend representation of an entry: the date travels as text.
type Wire struct {
	ID      *int64     `json:"id"`
	Title   *string    `json:"title"`
	Content *string    `json:"content"`
	Date    *string    `json:"date"`
	Blog    *blog.Blog `json:"blog"`
	Tags    []*tag.Tag `json:"tags"`
}

// Converter maps entries to and from [Wire] with codec.
func Converter(codec crud.DateCodec) restclient.Converter[Entry, Wire] {
	return restclient.Converter[Entry, Wire]{
		ToWire: func(entry *Entry) *Wire {
			if entry == nil {
				return nil
			}
			return &Wire{
				ID:      entry.ID,
				Title:   entry.Title,
				Content: entry.Content,
				Date:    codec.ToWire(entry.Date),
				Blog:    entry.Blog,
				Tags:    entry.Tags,
			}
		},
		FromWire: func(wire *Wire) (*Entry, error) {
			date, err := codec.FromWire(wire.Date)
			if err != nil {
				return nil, err
			}
			return &Entry{
				ID:      wire.ID,
				Title:   wire.Title,
				Content: wire.Content,
				Date:    date,
				Blog:    wire.Blog,
				Tags:    wire.Tags,
			}, nil
		},
	}
}

// Service is the REST resource at api/entries.
type Service struct {
	*restclient.Resource[Entry, *Entry, Wire]
}

// NewService binds the entry collection to client.
func NewService(client *restclient.Client, codec crud.DateCodec) *Service {
	return &Service{
		Resource: restclient.NewResource[Entry, *Entry](client, constants.ResourceEntries, Converter(codec)),
	}
}

// Ping asks the backend for the smallest possible page of entries.
func (s *Service) Ping(ctx context.Context) error {
	_, err := s.Query(ctx, &pagination.Request{Size: 1})
	return err
}

// Compare reports whether a and b are the same entry.
func (s *Service) Compare(a, b *Entry) bool {
	return crud.Equal(a, b)
}

// AddIfMissing merges entries into collection, new ones first.
func (s *Service) AddIfMissing(collection []*Entry, entries ...*Entry) []*Entry {
	return crud.AddIfMissing(collection, entries...)
}
