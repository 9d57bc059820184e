// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package crud

import (
	"context"
	"sync"
)

// Relationship is one selector of an update screen whose options are loaded
// on activation.
type Relationship[E any] interface {
	// Name identifies the relationship in errors and views.
	Name() string

	// Assign merges the references already held by entity into the options,
	// so the current value is selectable before the options arrive.
	Assign(entity *E)

	// Fetch loads fresh options for entity. The returned commit stores them;
	// the caller decides whether the result is still wanted.
	Fetch(ctx context.Context, entity *E) (commit func(), err error)
}

// Lookup is the shared option collection of a relationship selector whose
// targets are entities of type T.
type Lookup[E any, T any, P Entity[T]] struct {
	name     string
	source   Querier[P]
	assigned func(entity *E) []P

	mu    sync.RWMutex
	items []P
}

// NewLookup returns an empty lookup fed by source. assigned extracts the
// references entity currently holds (nil entity must yield nil).
func NewLookup[E any, T any, P Entity[T]](name string, source Querier[P], assigned func(entity *E) []P) *Lookup[E, T, P] {
	return &Lookup[E, T, P]{
		name:     name,
		source:   source,
		assigned: assigned,
	}
}

// Name implements [Relationship].
func (l *Lookup[E, T, P]) Name() string { return l.name }

// Assign implements [Relationship].
func (l *Lookup[E, T, P]) Assign(entity *E) {
	refs := l.refs(entity)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = AddIfMissing(l.items, refs...)
}

// Fetch implements [Relationship]. It queries the backend's default page and
// merges entity's references into it.
func (l *Lookup[E, T, P]) Fetch(ctx context.Context, entity *E) (func(), error) {
	response, err := l.source.Query(ctx, nil)
	if err != nil {
		return nil, err
	}

	options := response.Body
	if options == nil {
		options = []P{}
	}
	merged := AddIfMissing(options, l.refs(entity)...)

	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.items = merged
	}, nil
}

// Items returns the current options.
func (l *Lookup[E, T, P]) Items() []P {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.items
}

// Compare is the selector's equality, see [Equal].
func (l *Lookup[E, T, P]) Compare(a, b P) bool {
	return Equal(a, b)
}

// ByID returns the option with the given identifier.
func (l *Lookup[E, T, P]) ByID(id int64) (P, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, item := range l.items {
		if key := item.Key(); key != nil && *key == id {
			return item, true
		}
	}
	return nil, false
}

func (l *Lookup[E, T, P]) refs(entity *E) []P {
	if entity == nil {
		return nil
	}
	return l.assigned(entity)
}
