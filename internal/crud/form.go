// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package crud

import "encoding/json"

// Control is one typed input of a form.
//
// A disabled control keeps its value and is still read back on submit, but
// user input never reaches it. Reset re-enables the control the way UI form
// toolkits do; synchronizers must disable the identifier again afterwards.
type Control[V any] struct {
	value    V
	disabled bool
	required bool
}

// NewControl returns an enabled control holding value.
func NewControl[V any](value V, required bool) Control[V] {
	return Control[V]{value: value, required: required}
}

// NewDisabledControl returns a write-disabled control holding value.
func NewDisabledControl[V any](value V, required bool) Control[V] {
	return Control[V]{value: value, required: required, disabled: true}
}

// Value returns the current value, disabled or not.
func (c *Control[V]) Value() V { return c.value }

// SetValue replaces the value programmatically, ignoring the disabled state.
func (c *Control[V]) SetValue(value V) { c.value = value }

// Input applies a user edit. It reports false and changes nothing when the
// control is disabled.
func (c *Control[V]) Input(value V) bool {
	if c.disabled {
		return false
	}
	c.value = value
	return true
}

// Reset replaces the value and re-enables the control.
func (c *Control[V]) Reset(value V) {
	c.value = value
	c.disabled = false
}

// Disable makes the control write-disabled.
func (c *Control[V]) Disable() { c.disabled = true }

// Enable makes the control editable.
func (c *Control[V]) Enable() { c.disabled = false }

// Disabled reports whether user input is blocked.
func (c *Control[V]) Disabled() bool { return c.disabled }

// Required reports whether the control must hold a value on submit.
func (c *Control[V]) Required() bool { return c.required }

// MarshalJSON renders the control for the view layer.
func (c Control[V]) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Value    V    `json:"value"`
		Disabled bool `json:"disabled,omitempty"`
		Required bool `json:"required,omitempty"`
	}{c.value, c.disabled, c.required})
}

// RequireDisabled returns [ErrIdentifierEditable] unless c is disabled.
// Synchronizers call it on the identifier control before reading a form.
func RequireDisabled[V any](c *Control[V]) error {
	if !c.Disabled() {
		return ErrIdentifierEditable
	}
	return nil
}

// FormSynchronizer converts between an entity and its form state F.
//
// Build and Reset apply the entity's defaults overlaid by the given entity and
// always leave the identifier disabled. Read returns the entity the form
// describes, identifier included. Validate reports missing required fields as
// an apperr VALIDATION_ERROR and never panics.
type FormSynchronizer[E any, F any] interface {
	Build(initial *E) *F
	Read(form *F) (*E, error)
	Reset(form *F, entity *E)
	Validate(form *F) error
}
