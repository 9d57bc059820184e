// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package crud implements the entity synchronization pattern shared by every
admin screen: resolve an entity before a view activates, mirror it into a
typed form, keep relationship selectors stocked, and save it back.

# Components

  - [Equal]: identity comparison of entity references.
  - [AddIfMissing]: merges references into a lookup collection without duplicates.
  - [DateCodec]: wire, in-memory and form representations of timestamps.
  - [Control] and [FormSynchronizer]: typed form state with a write-disabled identifier.
  - [Resolver]: fetches the entity named by a route parameter or deflects to not-found.
  - [Lookup]: one relationship selector's shared collection.
  - [Orchestrator]: the update screen's state machine.

The package is transport-agnostic. It talks to the backend through
[Transport] and to the navigation layer through [Navigator]; it never logs.
*/
package crud

import (
	"context"
	"errors"
	"net/http"

	"github.com/taibuivan/blogadmin/pkg/pagination"
)

var (
	// ErrRedirected reports that a resolver deflected navigation to the
	// not-found route instead of producing an entity.
	ErrRedirected = errors.New("crud: navigation redirected")

	// ErrIdentifierEditable reports a form whose identifier control is not
	// disabled. Such a form is never read back.
	ErrIdentifierEditable = errors.New("crud: identifier control must be disabled")

	// ErrSaveInProgress is returned by a save issued while another is in flight.
	ErrSaveInProgress = errors.New("crud: save already in progress")
)

// Entity is satisfied by pointer-to-entity types that expose their identifier.
//
// Key returns nil for a new (not yet persisted) entity and must tolerate a nil
// receiver.
type Entity[T any] interface {
	*T
	Key() *int64
}

// Response is a transport result. A zero Body means the backend sent none.
type Response[T any] struct {
	StatusCode int
	Header     http.Header
	Body       T
}

// Finder fetches a single entity by identifier.
type Finder[E any] interface {
	Find(ctx context.Context, id int64) (Response[*E], error)
}

// Querier fetches a page of entities.
type Querier[P any] interface {
	Query(ctx context.Context, request *pagination.Request) (Response[[]P], error)
}

// Saver persists a new or an existing entity.
type Saver[E any] interface {
	Create(ctx context.Context, entity *E) (Response[*E], error)
	Update(ctx context.Context, entity *E) (Response[*E], error)
}

// Transport is the full REST surface of one entity resource.
type Transport[E any] interface {
	Finder[E]
	Querier[*E]
	Saver[E]
	PartialUpdate(ctx context.Context, entity *E) (Response[*E], error)
	Delete(ctx context.Context, id int64) (Response[struct{}], error)
}

// Navigator moves the user between views.
type Navigator interface {
	// Navigate goes to an absolute front-end path.
	Navigate(ctx context.Context, path string) error
	// Back returns to the previous view.
	Back(ctx context.Context) error
}
