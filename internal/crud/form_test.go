// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package crud_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/blogadmin/internal/crud"
)

/*
TestControl_Disabled blocks user input but not programmatic writes.
*/
func TestControl_Disabled(t *testing.T) {
	control := crud.NewDisabledControl("x", true)

	assert.False(t, control.Input("typed"))
	assert.Equal(t, "x", control.Value())

	control.SetValue("set")
	assert.Equal(t, "set", control.Value())
	assert.True(t, control.Required())
}

/*
TestControl_ResetEnables mirrors UI toolkits re-enabling on reset.
*/
func TestControl_ResetEnables(t *testing.T) {
	control := crud.NewDisabledControl(1, false)
	control.Reset(2)

	assert.False(t, control.Disabled())
	assert.Equal(t, 2, control.Value())
	assert.ErrorIs(t, crud.RequireDisabled(&control), crud.ErrIdentifierEditable)

	control.Disable()
	assert.NoError(t, crud.RequireDisabled(&control))
}

/*
TestControl_JSON renders value and flags.
*/
func TestControl_JSON(t *testing.T) {
	raw, err := json.Marshal(crud.NewDisabledControl[*int64](nil, true))
	require.NoError(t, err)
	assert.JSONEq(t, `{"value":null,"disabled":true,"required":true}`, string(raw))

	raw, err = json.Marshal(crud.NewControl("a", false))
	require.NoError(t, err)
	assert.JSONEq(t, `{"value":"a"}`, string(raw))
}

/*
TestWidgetForm_RoundTrip exercises a synchronizer built on controls.
*/
func TestWidgetForm_RoundTrip(t *testing.T) {
	forms := widgetForms{}
	form := forms.Build(newWidget(5, "gear"))

	assert.True(t, form.ID.Disabled())

	got, err := forms.Read(form)
	require.NoError(t, err)
	assert.Equal(t, int64(5), *got.ID)
	assert.Equal(t, "gear", got.Name)

	form.ID.Enable()
	_, err = forms.Read(form)
	assert.ErrorIs(t, err, crud.ErrIdentifierEditable)
}
