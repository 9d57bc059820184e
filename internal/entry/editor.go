// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package entry

import (
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/taibuivan/blogadmin/internal/blog"
	"github.com/taibuivan/blogadmin/internal/crud"
	"github.com/taibuivan/blogadmin/internal/platform/validate"
	"github.com/taibuivan/blogadmin/internal/tag"
)

const messageUnknownOption = "Unknown selection"

// Editor is the entry update screen of one activation: the blog selector
// and the tag selector.
type Editor struct {
	blogs *crud.Lookup[Entry, blog.Blog, *blog.Blog]
	tags  *crud.Lookup[Entry, tag.Tag, *tag.Tag]
}

// NewEditor returns an editor whose selectors are stocked from blogs and tags.
func NewEditor(blogs crud.Querier[*blog.Blog], tags crud.Querier[*tag.Tag]) *Editor {
	return &Editor{
		blogs: crud.NewLookup[Entry, blog.Blog]("blogs", blogs, func(entry *Entry) []*blog.Blog {
			return []*blog.Blog{entry.Blog}
		}),
		tags: crud.NewLookup[Entry, tag.Tag]("tags", tags, func(entry *Entry) []*tag.Tag {
			return entry.Tags
		}),
	}
}

// Relationships implements admin.Editor.
func (e *Editor) Relationships() []crud.Relationship[Entry] {
	return []crud.Relationship[Entry]{e.blogs, e.tags}
}

// Options implements admin.Editor.
func (e *Editor) Options() any {
	return map[string]any{
		"blogs": e.blogs.Items(),
		"tags":  e.tags.Items(),
	}
}

// Blogs returns the blog selector.
func (e *Editor) Blogs() *crud.Lookup[Entry, blog.Blog, *blog.Blog] { return e.blogs }

// Tags returns the tag selector.
func (e *Editor) Tags() *crud.Lookup[Entry, tag.Tag, *tag.Tag] { return e.tags }

// Bind applies a submitted form. Fields missing from values are left as they
// are. The blog and the tags are given by identifier and must be options of
// their selector; an empty blog clears the selection.
func (e *Editor) Bind(form *Form, values url.Values) error {
	v := &validate.Validator{}

	texts := []struct {
		field   string
		control *crud.Control[string]
	}{
		{"title", &form.Title},
		{"content", &form.Content},
		{"date", &form.Date},
	}
	for _, text := range texts {
		if _, ok := values[text.field]; ok {
			text.control.Input(strings.TrimSpace(values.Get(text.field)))
		}
	}

	if _, ok := values["blog"]; ok {
		raw := strings.TrimSpace(values.Get("blog"))
		if raw == "" {
			form.Blog.Input(nil)
		} else if selected, found := lookupByID(e.blogs.ByID, raw); found {
			form.Blog.Input(selected)
		} else {
			v.Custom("blog", true, messageUnknownOption)
		}
	}

	if raws, ok := values["tags"]; ok {
		selected := make([]*tag.Tag, 0, len(raws))
		unknown := false
		for _, raw := range raws {
			if strings.TrimSpace(raw) == "" {
				continue
			}
			option, found := lookupByID(e.tags.ByID, raw)
			if !found {
				unknown = true
				continue
			}
			if !slices.ContainsFunc(selected, func(t *tag.Tag) bool { return crud.Equal(t, option) }) {
				selected = append(selected, option)
			}
		}
		v.Custom("tags", unknown, messageUnknownOption)
		form.Tags.Input(selected)
	}

	return v.Err()
}

func lookupByID[P any](byID func(id int64) (P, bool), raw string) (P, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		var zero P
		return zero, false
	}
	return byID(id)
}
