// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package crud_test

import (
	"context"
	"sync"

	"github.com/taibuivan/blogadmin/internal/crud"
	"github.com/taibuivan/blogadmin/internal/platform/validate"
	"github.com/taibuivan/blogadmin/pkg/pagination"
	"github.com/taibuivan/blogadmin/pkg/pointer"
)

// widget is a minimal entity used across the crud tests.
type widget struct {
	ID    *int64
	Name  string
	Parts []*widget
}

func (w *widget) Key() *int64 {
	if w == nil {
		return nil
	}
	return w.ID
}

func newWidget(id int64, name string) *widget {
	return &widget{ID: pointer.To(id), Name: name}
}

// widgetForm mirrors widget with a disabled identifier.
type widgetForm struct {
	ID   crud.Control[*int64]
	Name crud.Control[string]
}

type widgetForms struct{}

func (widgetForms) Build(initial *widget) *widgetForm {
	form := &widgetForm{}
	widgetForms{}.Reset(form, initial)
	return form
}

func (widgetForms) Reset(form *widgetForm, entity *widget) {
	if entity == nil {
		entity = &widget{}
	}
	form.ID.Reset(entity.ID)
	form.ID.Disable()
	form.Name.Reset(entity.Name)
}

func (widgetForms) Read(form *widgetForm) (*widget, error) {
	if err := crud.RequireDisabled(&form.ID); err != nil {
		return nil, err
	}
	return &widget{ID: form.ID.Value(), Name: form.Name.Value()}, nil
}

func (widgetForms) Validate(form *widgetForm) error {
	return (&validate.Validator{}).Required("name", form.Name.Value()).Err()
}

// fakeNavigator records navigations.
type fakeNavigator struct {
	mu    sync.Mutex
	paths []string
	backs int
	err   error
}

func (n *fakeNavigator) Navigate(_ context.Context, path string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.paths = append(n.paths, path)
	return n.err
}

func (n *fakeNavigator) Back(context.Context) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.backs++
	return n.err
}

func (n *fakeNavigator) Backs() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.backs
}

// fakeTransport is a scriptable widget backend.
//
// When gate is non-nil every call blocks until it is closed or receives.
type fakeTransport struct {
	mu      sync.Mutex
	calls   []string
	found   *widget
	page    []*widget
	err     error
	gate    chan struct{}
	entered chan struct{}
}

func (f *fakeTransport) record(call string) {
	f.mu.Lock()
	f.calls = append(f.calls, call)
	f.mu.Unlock()

	if f.entered != nil {
		f.entered <- struct{}{}
	}
	if f.gate != nil {
		<-f.gate
	}
}

func (f *fakeTransport) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeTransport) Find(_ context.Context, _ int64) (crud.Response[*widget], error) {
	f.record("find")
	return crud.Response[*widget]{StatusCode: 200, Body: f.found}, f.err
}

func (f *fakeTransport) Query(_ context.Context, _ *pagination.Request) (crud.Response[[]*widget], error) {
	f.record("query")
	return crud.Response[[]*widget]{StatusCode: 200, Body: f.page}, f.err
}

func (f *fakeTransport) Create(_ context.Context, entity *widget) (crud.Response[*widget], error) {
	f.record("create")
	if f.err != nil {
		return crud.Response[*widget]{}, f.err
	}
	created := *entity
	created.ID = pointer.To(int64(99))
	return crud.Response[*widget]{StatusCode: 201, Body: &created}, nil
}

func (f *fakeTransport) Update(_ context.Context, entity *widget) (crud.Response[*widget], error) {
	f.record("update")
	if f.err != nil {
		return crud.Response[*widget]{}, f.err
	}
	return crud.Response[*widget]{StatusCode: 200, Body: entity}, nil
}
