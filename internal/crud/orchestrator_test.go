// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package crud_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/blogadmin/internal/crud"
	"github.com/taibuivan/blogadmin/internal/platform/apperr"
	"github.com/taibuivan/blogadmin/pkg/pagination"
)

func partsOf(w *widget) []*widget { return w.Parts }

func newOrchestrator(saver crud.Saver[widget], navigator crud.Navigator, relationships ...crud.Relationship[widget]) *crud.Orchestrator[widget, widgetForm] {
	return crud.NewOrchestrator[widget, *widget, widgetForm](saver, widgetForms{}, navigator, relationships...)
}

/*
TestOrchestrator_ActivateEdit binds the entity and stocks lookups.
*/
func TestOrchestrator_ActivateEdit(t *testing.T) {
	parts := &fakeTransport{page: []*widget{newWidget(1, "bolt"), newWidget(2, "nut")}}
	lookup := crud.NewLookup[widget, widget, *widget]("parts", parts, partsOf)
	orchestrator := newOrchestrator(&fakeTransport{}, &fakeNavigator{}, lookup)

	assert.Equal(t, crud.StateIdle, orchestrator.State())

	entity := newWidget(10, "engine")
	entity.Parts = []*widget{newWidget(2, "nut"), newWidget(3, "washer")}

	require.NoError(t, orchestrator.Activate(context.Background(), entity))

	assert.Equal(t, crud.StateReady, orchestrator.State())
	assert.False(t, orchestrator.IsSaving())
	assert.Equal(t, "engine", orchestrator.Form().Name.Value())
	assert.True(t, orchestrator.Form().ID.Disabled())

	// washer is assigned but not on the fetched page: it is prepended.
	assert.Equal(t, []int64{3, 1, 2}, ids(lookup.Items()))

	found, ok := lookup.ByID(3)
	assert.True(t, ok)
	assert.Equal(t, "washer", found.Name)
	assert.True(t, lookup.Compare(found, newWidget(3, "other copy")))
}

/*
TestOrchestrator_ActivateCreate keeps the blank form.
*/
func TestOrchestrator_ActivateCreate(t *testing.T) {
	parts := &fakeTransport{page: []*widget{newWidget(1, "bolt")}}
	lookup := crud.NewLookup[widget, widget, *widget]("parts", parts, partsOf)
	orchestrator := newOrchestrator(&fakeTransport{}, &fakeNavigator{}, lookup)

	require.NoError(t, orchestrator.Activate(context.Background(), nil))

	assert.Nil(t, orchestrator.Form().ID.Value())
	assert.Equal(t, []int64{1}, ids(lookup.Items()))
}

/*
TestOrchestrator_LookupFailure reports the error and stays usable.
*/
func TestOrchestrator_LookupFailure(t *testing.T) {
	boom := errors.New("lookup down")
	lookup := crud.NewLookup[widget, widget, *widget]("parts", &fakeTransport{err: boom}, partsOf)
	orchestrator := newOrchestrator(&fakeTransport{}, &fakeNavigator{}, lookup)

	entity := newWidget(10, "engine")
	entity.Parts = []*widget{newWidget(4, "gear")}

	err := orchestrator.Activate(context.Background(), entity)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, crud.StateReady, orchestrator.State())

	// The assigned reference is still selectable.
	assert.Equal(t, []int64{4}, ids(lookup.Items()))
}

/*
TestOrchestrator_LookupFailuresJoined reports every failed lookup.
*/
func TestOrchestrator_LookupFailuresJoined(t *testing.T) {
	partsDown := errors.New("parts down")
	spareDown := errors.New("spares down")
	parts := crud.NewLookup[widget, widget, *widget]("parts", &fakeTransport{err: partsDown}, partsOf)
	spares := crud.NewLookup[widget, widget, *widget]("spares", &fakeTransport{err: spareDown}, partsOf)
	orchestrator := newOrchestrator(&fakeTransport{}, &fakeNavigator{}, parts, spares)

	err := orchestrator.Activate(context.Background(), newWidget(10, "engine"))

	require.Error(t, err)
	assert.ErrorIs(t, err, partsDown)
	assert.ErrorIs(t, err, spareDown)
	assert.Contains(t, err.Error(), "load parts options")
	assert.Contains(t, err.Error(), "load spares options")
	assert.Equal(t, crud.StateReady, orchestrator.State())
}

/*
TestOrchestrator_SaveDispatch picks update or create from the identifier.
*/
func TestOrchestrator_SaveDispatch(t *testing.T) {
	tests := []struct {
		name   string
		entity *widget
		call   string
	}{
		{"existing_updates", newWidget(1, "a"), "update"},
		{"new_creates", &widget{Name: "fresh"}, "create"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transport := &fakeTransport{}
			navigator := &fakeNavigator{}
			orchestrator := newOrchestrator(transport, navigator)

			require.NoError(t, orchestrator.Activate(context.Background(), tt.entity))
			require.NoError(t, orchestrator.Save(context.Background()))

			assert.Equal(t, []string{tt.call}, transport.Calls())
			assert.Equal(t, 1, navigator.Backs())
			assert.Equal(t, crud.StateSaved, orchestrator.State())
			assert.False(t, orchestrator.IsSaving())
			require.NotNil(t, orchestrator.Saved())
			assert.NotNil(t, orchestrator.Saved().ID)
		})
	}
}

/*
TestOrchestrator_SavingFlag is set while the transport is pending and
cleared afterwards, on success and on failure alike.
*/
func TestOrchestrator_SavingFlag(t *testing.T) {
	for _, failing := range []bool{false, true} {
		transport := &fakeTransport{
			gate:    make(chan struct{}),
			entered: make(chan struct{}),
		}
		if failing {
			transport.err = errors.New("backend down")
		}
		navigator := &fakeNavigator{}
		orchestrator := newOrchestrator(transport, navigator)
		orchestrator.EditForm(func(form *widgetForm) { form.Name.Input("pending") })

		done := make(chan error, 1)
		go func() { done <- orchestrator.Save(context.Background()) }()

		<-transport.entered
		assert.True(t, orchestrator.IsSaving())
		assert.Equal(t, crud.StateSaving, orchestrator.State())
		assert.ErrorIs(t, orchestrator.Save(context.Background()), crud.ErrSaveInProgress)

		close(transport.gate)
		select {
		case err := <-done:
			if failing {
				assert.Error(t, err)
				assert.Equal(t, crud.StateSaveFailed, orchestrator.State())
				assert.Zero(t, navigator.Backs())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, navigator.Backs())
			}
		case <-time.After(2 * time.Second):
			t.Fatal("save did not complete")
		}
		assert.False(t, orchestrator.IsSaving())
	}
}

/*
TestOrchestrator_ActivateDuringSave keeps the pending save guarded and
discards its outcome once another activation took over.
*/
func TestOrchestrator_ActivateDuringSave(t *testing.T) {
	transport := &fakeTransport{
		gate:    make(chan struct{}),
		entered: make(chan struct{}, 2),
	}
	navigator := &fakeNavigator{}
	orchestrator := newOrchestrator(transport, navigator)
	orchestrator.EditForm(func(form *widgetForm) { form.Name.Input("first") })

	done := make(chan error, 1)
	go func() { done <- orchestrator.Save(context.Background()) }()
	<-transport.entered

	require.NoError(t, orchestrator.Activate(context.Background(), newWidget(1, "replacement")))
	assert.True(t, orchestrator.IsSaving())
	assert.ErrorIs(t, orchestrator.Save(context.Background()), crud.ErrSaveInProgress)

	close(transport.gate)
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("save did not complete")
	}

	assert.False(t, orchestrator.IsSaving())
	assert.Equal(t, crud.StateReady, orchestrator.State())
	assert.Nil(t, orchestrator.Saved())
	assert.Zero(t, navigator.Backs())
	assert.Equal(t, []string{"create"}, transport.Calls())

	// The replacement screen saves normally afterwards.
	require.NoError(t, orchestrator.Save(context.Background()))
	assert.Equal(t, []string{"create", "update"}, transport.Calls())
	assert.Equal(t, 1, navigator.Backs())
	assert.Equal(t, crud.StateSaved, orchestrator.State())
}

/*
TestOrchestrator_InvalidForm blocks submission without a transport call.
*/
func TestOrchestrator_InvalidForm(t *testing.T) {
	transport := &fakeTransport{}
	navigator := &fakeNavigator{}
	orchestrator := newOrchestrator(transport, navigator)

	err := orchestrator.Save(context.Background())

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.CodeValidation, ae.Code)
	assert.Equal(t, "name", ae.Details[0].Field)
	assert.Empty(t, transport.Calls())
	assert.False(t, orchestrator.IsSaving())
	assert.Zero(t, navigator.Backs())
}

/*
TestOrchestrator_Superseded discards lookups of an older activation.
*/
func TestOrchestrator_Superseded(t *testing.T) {
	slow := &fakeTransport{
		page:    []*widget{newWidget(1, "stale")},
		gate:    make(chan struct{}),
		entered: make(chan struct{}, 1),
	}
	current := &fakeTransport{page: []*widget{newWidget(2, "fresh")}}

	source := &switchingQuerier{first: slow, then: current}
	lookup := crud.NewLookup[widget, widget, *widget]("parts", source, partsOf)
	orchestrator := newOrchestrator(&fakeTransport{}, &fakeNavigator{}, lookup)

	firstDone := make(chan error, 1)
	go func() { firstDone <- orchestrator.Activate(context.Background(), newWidget(1, "old")) }()
	<-slow.entered

	require.NoError(t, orchestrator.Activate(context.Background(), newWidget(2, "new")))
	close(slow.gate)
	require.NoError(t, <-firstDone)

	assert.Equal(t, []int64{2}, ids(lookup.Items()))
	assert.Equal(t, "new", orchestrator.Entity().Name)
	assert.Equal(t, crud.StateReady, orchestrator.State())
}

// switchingQuerier serves its first query from first and the rest from then.
type switchingQuerier struct {
	first, then *fakeTransport

	mu    sync.Mutex
	calls int
}

func (s *switchingQuerier) Query(ctx context.Context, request *pagination.Request) (crud.Response[[]*widget], error) {
	s.mu.Lock()
	s.calls++
	first := s.calls == 1
	s.mu.Unlock()

	if first {
		return s.first.Query(ctx, request)
	}
	return s.then.Query(ctx, request)
}
