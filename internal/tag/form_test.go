// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/blogadmin/internal/tag"
	"github.com/taibuivan/blogadmin/pkg/pointer"
)

func TestForms_EditAndRead(t *testing.T) {
	forms := tag.Forms{}
	form := forms.Build(&tag.Tag{ID: pointer.To[int64](8), Name: pointer.To("golang")})

	require.NoError(t, tag.NewEditor().Bind(form, url.Values{"name": {"go"}}))
	require.NoError(t, forms.Validate(form))

	read, err := forms.Read(form)
	require.NoError(t, err)
	assert.Equal(t, int64(8), *read.ID)
	assert.Equal(t, "go", *read.Name)
}

func TestForms_BlankName(t *testing.T) {
	forms := tag.Forms{}
	form := forms.Build(nil)
	assert.True(t, form.ID.Required())
	assert.True(t, form.ID.Disabled())

	tag.Bind(form, url.Values{"name": {"   "}})
	assert.Error(t, forms.Validate(form))

	read, err := forms.Read(form)
	require.NoError(t, err)
	assert.Nil(t, read.Name)
	assert.Nil(t, read.ID)
}
