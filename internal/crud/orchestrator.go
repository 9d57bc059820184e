// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package crud

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// State is a step of the update screen lifecycle.
type State int

const (
	StateIdle State = iota
	StateLoadingRelationships
	StateReady
	StateSaving
	StateSaved
	StateSaveFailed
)

// String returns the state name used in views.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoadingRelationships:
		return "loading-relationships"
	case StateReady:
		return "ready"
	case StateSaving:
		return "saving"
	case StateSaved:
		return "saved"
	case StateSaveFailed:
		return "save-failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Orchestrator drives an update screen: it binds the resolved entity into
// the form, stocks every relationship selector and saves the form back.
//
// # Concurrency
//
// All methods are safe for concurrent use. An Activate supersedes the
// previous one: the previous loads are cancelled and whatever they still
// return is discarded.
type Orchestrator[E any, F any] struct {
	saver         Saver[E]
	forms         FormSynchronizer[E, F]
	navigator     Navigator
	relationships []Relationship[E]
	key           func(entity *E) *int64

	mu         sync.Mutex
	state      State
	isSaving   bool
	entity     *E
	saved      *E
	form       *F
	generation uint64
	cancel     context.CancelFunc
}

// NewOrchestrator returns an idle orchestrator holding a blank form.
func NewOrchestrator[E any, P Entity[E], F any](
	saver Saver[E],
	forms FormSynchronizer[E, F],
	navigator Navigator,
	relationships ...Relationship[E],
) *Orchestrator[E, F] {
	return &Orchestrator[E, F]{
		saver:         saver,
		forms:         forms,
		navigator:     navigator,
		relationships: relationships,
		key:           func(entity *E) *int64 { return P(entity).Key() },
		state:         StateIdle,
		form:          forms.Build(nil),
	}
}

// Activate binds entity (nil on a create screen) and loads every
// relationship concurrently.
//
// It returns every lookup failure joined, if any. The screen is ready either
// way: a failed lookup leaves its selector with the options it had. A save
// still in flight keeps its saving flag but its outcome is discarded.
func (o *Orchestrator[E, F]) Activate(ctx context.Context, entity *E) error {
	o.mu.Lock()
	if o.cancel != nil {
		o.cancel()
	}
	o.generation++
	generation := o.generation
	loadCtx, cancel := context.WithCancel(ctx)
	o.cancel = cancel

	o.entity = entity
	if entity != nil {
		o.forms.Reset(o.form, entity)
		for _, relationship := range o.relationships {
			relationship.Assign(entity)
		}
	}
	o.state = StateLoadingRelationships
	o.mu.Unlock()

	defer cancel()

	var (
		group errgroup.Group
		errs  []error
	)
	for _, relationship := range o.relationships {
		group.Go(func() error {
			commit, err := relationship.Fetch(loadCtx, entity)

			o.mu.Lock()
			defer o.mu.Unlock()
			if err != nil {
				errs = append(errs, fmt.Errorf("crud: load %s options: %w", relationship.Name(), err))
				return nil
			}
			if o.generation == generation {
				commit()
			}
			return nil
		})
	}
	_ = group.Wait()

	o.mu.Lock()
	defer o.mu.Unlock()
	if o.generation == generation {
		o.state = StateReady
	}

	return errors.Join(errs...)
}

// Save submits the form.
//
// An invalid form is rejected with its validation error and nothing is sent.
// Otherwise the entity read from the form is updated when it has an
// identifier and created when it has none. The saving flag is cleared once
// the transport answers, whatever the outcome; only a success navigates back.
// Transport errors are returned unchanged. When an Activate superseded the
// screen meanwhile, the outcome is neither recorded nor navigated on.
func (o *Orchestrator[E, F]) Save(ctx context.Context) error {
	o.mu.Lock()
	if o.isSaving {
		o.mu.Unlock()
		return ErrSaveInProgress
	}

	if err := o.forms.Validate(o.form); err != nil {
		o.mu.Unlock()
		return err
	}

	entity, err := o.forms.Read(o.form)
	if err != nil {
		o.mu.Unlock()
		return err
	}

	o.state = StateSaving
	o.isSaving = true
	generation := o.generation
	o.mu.Unlock()

	var response Response[*E]
	if o.key(entity) != nil {
		response, err = o.saver.Update(ctx, entity)
	} else {
		response, err = o.saver.Create(ctx, entity)
	}

	o.mu.Lock()
	o.isSaving = false
	if o.generation != generation {
		o.mu.Unlock()
		return err
	}
	if err != nil {
		o.state = StateSaveFailed
		o.mu.Unlock()
		return err
	}
	o.state = StateSaved
	o.saved = response.Body
	o.mu.Unlock()

	return o.navigator.Back(ctx)
}

// EditForm applies fn to the form under the orchestrator lock.
func (o *Orchestrator[E, F]) EditForm(fn func(form *F)) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fn(o.form)
}

// Form returns the form state. Callers must not mutate it outside [EditForm].
func (o *Orchestrator[E, F]) Form() *F {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.form
}

// IsSaving reports whether a save is waiting for the transport.
func (o *Orchestrator[E, F]) IsSaving() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.isSaving
}

// State returns the lifecycle step.
func (o *Orchestrator[E, F]) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Entity returns the entity bound by the last Activate.
func (o *Orchestrator[E, F]) Entity() *E {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.entity
}

// Saved returns the backend's copy of the last saved entity, if it sent one.
func (o *Orchestrator[E, F]) Saved() *E {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.saved
}
