// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxutil provides helpers for interacting with values stored in [context.Context].
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/taibuivan/blogadmin/internal/platform/ctxkey"
)

// # Request Tracing

// WithRequestID returns a new context with the provided request ID attached.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyRequestID, id)
}

// GetRequestID retrieves the request ID from the context.
// Returns an empty string if not found.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxkey.KeyRequestID).(string)
	return id
}

// # Structured Logging

// WithLogger returns a new context with the provided logger attached.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLogger, logger)
}

// GetLogger retrieves the logger from the context.
// If no logger is found, it returns the global default logger.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(ctxkey.KeyLogger).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return logger
}

// # Route Data

// WithRouteData attaches a resolver result to the context. A nil value is
// stored as well: it is how a create route tells the view there is nothing
// to edit.
func WithRouteData(ctx context.Context, value any) context.Context {
	return context.WithValue(ctx, ctxkey.KeyRouteData, value)
}

// RouteData retrieves the resolver result for type T.
//
// The boolean is false when no resolver ran or when it resolved to a value of
// another type.
func RouteData[T any](ctx context.Context) (*T, bool) {
	raw := ctx.Value(ctxkey.KeyRouteData)
	if raw == nil {
		return nil, false
	}
	value, ok := raw.(*T)
	return value, ok
}
