// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package crud

import (
	"fmt"
	"strings"
	"time"

	"github.com/taibuivan/blogadmin/internal/platform/constants"
)

// DateCodec converts timestamps between the backend wire format, [time.Time]
// and the text of a datetime form input.
//
// Wire values are always UTC with millisecond precision. Form text carries no
// zone and is interpreted in Location, time.Local when nil.
type DateCodec struct {
	Location *time.Location
}

// NewDateCodec returns a codec editing form values in loc.
func NewDateCodec(loc *time.Location) DateCodec {
	return DateCodec{Location: loc}
}

func (c DateCodec) location() *time.Location {
	if c.Location == nil {
		return time.Local
	}
	return c.Location
}

// ToWire formats t as e.g. "2022-10-13T09:42:00.000Z". Nil stays nil.
func (c DateCodec) ToWire(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.UTC().Format(constants.WireDateTimeFormat)
	return &formatted
}

// FromWire parses an RFC 3339 timestamp. Nil or empty input yields nil.
func (c DateCodec) FromWire(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}

	parsed, err := time.Parse(time.RFC3339Nano, *raw)
	if err != nil {
		return nil, fmt.Errorf("crud: invalid wire timestamp %q: %w", *raw, err)
	}
	return &parsed, nil
}

// ToFormText formats t as "YYYY-MM-DDTHH:mm" in the codec location.
// Nil yields the empty string, i.e. an unset input.
func (c DateCodec) ToFormText(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.In(c.location()).Format(constants.FormDateTimeFormat)
}

// FromFormText parses the text of a datetime input. Blank text yields nil.
func (c DateCodec) FromFormText(text string) (*time.Time, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}

	parsed, err := time.ParseInLocation(constants.FormDateTimeFormat, text, c.location())
	if err != nil {
		return nil, fmt.Errorf("crud: invalid form date %q: %w", text, err)
	}
	return &parsed, nil
}
