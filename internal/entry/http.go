// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package entry

import (
	"github.com/taibuivan/blogadmin/internal/admin"
	"github.com/taibuivan/blogadmin/internal/blog"
	"github.com/taibuivan/blogadmin/internal/crud"
	"github.com/taibuivan/blogadmin/internal/tag"
)

// NewHandler returns the entry screens. The blog and tag selectors of the
// update screen are stocked from blogs and tags.
func NewHandler(service crud.Transport[Entry], forms Forms, blogs crud.Querier[*blog.Blog], tags crud.Querier[*tag.Tag]) *admin.Handler[Entry, *Entry, Form] {
	return admin.NewHandler[Entry, *Entry](admin.Screen[Entry, Form]{
		Name:      "entry",
		Transport: service,
		Forms:     forms,
		NewEditor: func() admin.Editor[Entry, Form] { return NewEditor(blogs, tags) },
	})
}
