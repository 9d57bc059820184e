// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package blog

import (
	"net/url"
	"strings"

	"github.com/taibuivan/blogadmin/internal/crud"
	"github.com/taibuivan/blogadmin/internal/platform/validate"
	"github.com/taibuivan/blogadmin/pkg/pointer"
)

// Form is the edit state of a blog.
type Form struct {
	ID   crud.Control[*int64] `json:"id"`
	Name crud.Control[string] `json:"name"`
}

// Forms synchronizes [Blog] and [Form].
type Forms struct{}

// Build returns a form describing initial, or a blank one when nil.
func (f Forms) Build(initial *Blog) *Form {
	form := &Form{
		ID:   crud.NewDisabledControl[*int64](nil, true),
		Name: crud.NewControl("", true),
	}
	f.Reset(form, initial)
	return form
}

// Reset overwrites form with blog and disables the identifier again.
func (Forms) Reset(form *Form, blog *Blog) {
	if blog == nil {
		blog = &Blog{}
	}
	form.ID.Reset(blog.ID)
	form.ID.Disable()
	form.Name.Reset(pointer.Val(blog.Name))
}

// Read returns the blog the form describes.
func (Forms) Read(form *Form) (*Blog, error) {
	if err := crud.RequireDisabled(&form.ID); err != nil {
		return nil, err
	}
	return &Blog{
		ID:   form.ID.Value(),
		Name: pointer.NonZero(form.Name.Value()),
	}, nil
}

// Validate reports missing required fields.
func (Forms) Validate(form *Form) error {
	return (&validate.Validator{}).
		Required("name", form.Name.Value()).
		Err()
}

// Bind applies a submitted form. Fields missing from values are left as they are.
func Bind(form *Form, values url.Values) {
	if _, ok := values["name"]; ok {
		form.Name.Input(strings.TrimSpace(values.Get("name")))
	}
}
