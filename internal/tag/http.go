// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag

import "github.com/taibuivan/blogadmin/internal/admin"

// NewHandler returns the tag screens backed by service.
func NewHandler(service *Service) *admin.Handler[Tag, *Tag, Form] {
	return admin.NewHandler[Tag, *Tag](admin.Screen[Tag, Form]{
		Name:      "tag",
		Transport: service,
		Forms:     Forms{},
		NewEditor: func() admin.Editor[Tag, Form] { return NewEditor() },
	})
}
