// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package uuidv7 generates the correlation identifiers attached to every
// admin request and forwarded to the backend as X-Request-ID.
//
// Version 7 values sort by creation time, which keeps log lines of one
// session adjacent when grepping by id.
package uuidv7

import "github.com/google/uuid"

// New generates a new UUIDv7 string.
//
// If the time-ordered generator fails it falls back to a random v4 value, a
// correlation id is never worth failing a request over.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}

	return id.String()
}

// Valid reports whether s parses as a UUID of any version.
// Incoming X-Request-ID values that fail this check are replaced.
func Valid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
