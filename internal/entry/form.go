// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package entry

import (
	"slices"
	"strings"
	"time"

	"github.com/taibuivan/blogadmin/internal/blog"
	"github.com/taibuivan/blogadmin/internal/crud"
	"github.com/taibuivan/blogadmin/internal/platform/validate"
	"github.com/taibuivan/blogadmin/internal/tag"
	"github.com/taibuivan/blogadmin/pkg/pointer"
)

const messageInvalidDate = "Must be a valid date and time"

// Form is the edit state of an entry. Date holds the text of a
// datetime-local input.
type Form struct {
	ID      crud.Control[*int64]     `json:"id"`
	Title   crud.Control[string]     `json:"title"`
	Content crud.Control[string]     `json:"content"`
	Date    crud.Control[string]     `json:"date"`
	Blog    crud.Control[*blog.Blog] `json:"blog"`
	Tags    crud.Control[[]*tag.Tag] `json:"tags"`
}

// Forms synchronizes [Entry] and [Form].
type Forms struct {
	Codec crud.DateCodec

	// Now supplies the default date of a new entry. Defaults to time.Now.
	Now func() time.Time
}

// NewForms returns a synchronizer editing dates with codec.
func NewForms(codec crud.DateCodec) Forms {
	return Forms{Codec: codec, Now: time.Now}
}

// Build returns a form describing initial, or a new entry dated now when nil.
func (f Forms) Build(initial *Entry) *Form {
	form := &Form{
		ID:      crud.NewDisabledControl[*int64](nil, true),
		Title:   crud.NewControl("", true),
		Content: crud.NewControl("", true),
		Date:    crud.NewControl("", true),
		Blog:    crud.NewControl[*blog.Blog](nil, false),
		Tags:    crud.NewControl([]*tag.Tag{}, false),
	}
	f.Reset(form, initial)
	return form
}

// Reset overwrites form with entry and disables the identifier again.
//
// An unsaved entry is overlaid on the defaults: its missing date becomes now.
// A saved entry is mirrored as it is, except that missing tags become an
// empty selection.
func (f Forms) Reset(form *Form, entry *Entry) {
	values := f.withDefaults(entry)

	form.ID.Reset(values.ID)
	form.ID.Disable()
	form.Title.Reset(pointer.Val(values.Title))
	form.Content.Reset(pointer.Val(values.Content))
	form.Date.Reset(f.Codec.ToFormText(values.Date))
	form.Blog.Reset(values.Blog)
	form.Tags.Reset(values.Tags)
}

func (f Forms) withDefaults(entry *Entry) Entry {
	var values Entry
	if entry != nil {
		values = *entry
	}

	if values.ID == nil && values.Date == nil {
		values.Date = pointer.To(f.now().Truncate(time.Minute))
	}
	if values.Tags == nil {
		values.Tags = []*tag.Tag{}
	} else {
		values.Tags = slices.Clone(values.Tags)
	}

	return values
}

func (f Forms) now() time.Time {
	if f.Now == nil {
		return time.Now()
	}
	return f.Now()
}

// Read returns the entry the form describes.
func (f Forms) Read(form *Form) (*Entry, error) {
	if err := crud.RequireDisabled(&form.ID); err != nil {
		return nil, err
	}

	date, err := f.Codec.FromFormText(form.Date.Value())
	if err != nil {
		return nil, (&validate.Validator{}).Custom("date", true, messageInvalidDate).Err()
	}

	return &Entry{
		ID:      form.ID.Value(),
		Title:   pointer.NonZero(form.Title.Value()),
		Content: pointer.NonZero(form.Content.Value()),
		Date:    date,
		Blog:    form.Blog.Value(),
		Tags:    slices.Clone(form.Tags.Value()),
	}, nil
}

// Validate reports missing required fields and an unreadable date.
func (f Forms) Validate(form *Form) error {
	dateText := form.Date.Value()
	_, dateErr := f.Codec.FromFormText(dateText)

	return (&validate.Validator{}).
		Required("title", form.Title.Value()).
		Required("content", form.Content.Value()).
		Required("date", dateText).
		Custom("date", strings.TrimSpace(dateText) != "" && dateErr != nil, messageInvalidDate).
		Err()
}
