// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package uuidv7_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/blogadmin/pkg/uuidv7"
)

func TestNew(t *testing.T) {
	raw := uuidv7.New()

	id, err := uuid.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
	assert.NotEqual(t, raw, uuidv7.New())
}

func TestValid(t *testing.T) {
	assert.True(t, uuidv7.Valid(uuidv7.New()))
	assert.False(t, uuidv7.Valid("not-a-uuid"))
	assert.False(t, uuidv7.Valid(""))
}
