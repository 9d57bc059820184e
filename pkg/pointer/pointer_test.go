// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pointer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/blogadmin/pkg/pointer"
)

func TestPointerHelpers(t *testing.T) {
	assert.Equal(t, 3, *pointer.To(3))
	assert.Equal(t, "", pointer.Val[string](nil))
	assert.Equal(t, "x", pointer.Val(pointer.To("x")))

	assert.Nil(t, pointer.NonZero(""))
	assert.Equal(t, "a", *pointer.NonZero("a"))
}
