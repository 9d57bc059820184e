// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package blog

import "github.com/taibuivan/blogadmin/internal/admin"

// NewHandler returns the blog screens backed by service.
func NewHandler(service *Service) *admin.Handler[Blog, *Blog, Form] {
	return admin.NewHandler[Blog, *Blog](admin.Screen[Blog, Form]{
		Name:      "blog",
		Transport: service,
		Forms:     Forms{},
		NewEditor: func() admin.Editor[Blog, Form] { return NewEditor() },
	})
}
