// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the admin front-end.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Backend: REST resource paths, headers and client defaults.
  - Navigation: well-known front-end routes.
  - Formats: wire and form date layouts.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "blogadmin"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 30 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle,
	// including every backend call made on its behalf.
	GlobalRequestTimeout = 25 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Backend

const (
	// DefaultBackendTimeout bounds a single backend round trip.
	DefaultBackendTimeout = 10 * time.Second

	// ResourceBlogs is the REST collection path of blogs.
	ResourceBlogs = "api/blogs"

	// ResourceEntries is the REST collection path of entries.
	ResourceEntries = "api/entries"

	// ResourceTags is the REST collection path of tags.
	ResourceTags = "api/tags"

	// ContentTypeJSON is used for create, update and every response.
	ContentTypeJSON = "application/json"

	// ContentTypeMergePatch is used for partial updates.
	ContentTypeMergePatch = "application/merge-patch+json"
)

// # HTTP Headers

const (
	HeaderXRequestID     = "X-Request-ID"
	HeaderAuthorization  = "Authorization"
	HeaderContentType    = "Content-Type"
	HeaderAccept         = "Accept"
	HeaderXRealIP        = "X-Real-IP"
	HeaderXForwardedFor  = "X-Forwarded-For"
	HeaderOrigin         = "Origin"
	AuthorizationBearer  = "Bearer "
	DefaultSortDirection = "asc"
)

// # Navigation

const (
	// RouteNotFound is where resolvers deflect navigation to when an entity is missing.
	RouteNotFound = "/404"

	// DefaultSort is the list ordering applied when the caller gives none.
	DefaultSort = "id," + DefaultSortDirection
)

// # Formats

const (
	// WireDateTimeFormat is the canonical timestamp layout exchanged with the backend.
	WireDateTimeFormat = "2006-01-02T15:04:05.000Z07:00"

	// FormDateTimeFormat is the editable layout of datetime-local inputs.
	FormDateTimeFormat = "2006-01-02T15:04"
)

// # JSON Field Identifiers

const (
	FieldError = "error"
	FieldCode  = "code"
)
