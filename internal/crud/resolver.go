// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package crud

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/taibuivan/blogadmin/internal/platform/constants"
)

// Resolver fetches the entity a route refers to before its view activates.
type Resolver[E any] struct {
	finder    Finder[E]
	navigator Navigator
	notFound  string
}

// NewResolver returns a resolver deflecting missing entities to the not-found route.
func NewResolver[E any](finder Finder[E], navigator Navigator) *Resolver[E] {
	return &Resolver[E]{
		finder:    finder,
		navigator: navigator,
		notFound:  constants.RouteNotFound,
	}
}

// Resolve returns the entity identified by idParam.
//
// An empty idParam is a create route: it resolves to nil without touching
// the transport. A response without a body, or an idParam that cannot name
// an entity, navigates to the not-found route and returns [ErrRedirected].
// Transport errors are returned unchanged.
func (r *Resolver[E]) Resolve(ctx context.Context, idParam string) (*E, error) {
	if idParam == "" {
		return nil, nil
	}

	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		return nil, r.deflect(ctx)
	}

	response, err := r.finder.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	if response.Body == nil {
		return nil, r.deflect(ctx)
	}

	return response.Body, nil
}

func (r *Resolver[E]) deflect(ctx context.Context) error {
	if err := r.navigator.Navigate(ctx, r.notFound); err != nil {
		return errors.Join(ErrRedirected, fmt.Errorf("crud: navigate to %s: %w", r.notFound, err))
	}
	return ErrRedirected
}
