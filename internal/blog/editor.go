// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package blog

import (
	"net/url"

	"github.com/taibuivan/blogadmin/internal/crud"
)

// Editor is the blog update screen. A blog has no relationship selectors.
type Editor struct{}

// NewEditor returns the editor of one screen activation.
func NewEditor() *Editor { return &Editor{} }

// Relationships implements admin.Editor.
func (*Editor) Relationships() []crud.Relationship[Blog] { return nil }

// Bind implements admin.Editor.
func (*Editor) Bind(form *Form, values url.Values) error {
	Bind(form, values)
	return nil
}

// Options implements admin.Editor.
func (*Editor) Options() any { return nil }
