// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package restclient is the transport to the blog REST backend.

[Client] performs JSON round trips: it attaches the bearer token and the
request's correlation id, waits on the outbound rate limiter, and turns
non-2xx answers into [apperr.AppError] values. [Resource] layers the six
CRUD operations of one entity collection on top of it.

There are no retries here. Timeouts come from the http.Client and from the
caller's context.
*/
package restclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/taibuivan/blogadmin/internal/platform/apperr"
	"github.com/taibuivan/blogadmin/internal/platform/constants"
	"github.com/taibuivan/blogadmin/internal/platform/ctxutil"
	"github.com/taibuivan/blogadmin/pkg/uuidv7"
)

// maxResponseBytes caps how much of a backend answer is read.
const maxResponseBytes = 8 << 20

// TokenSource yields the bearer token of the next call. An empty token means
// the call is sent anonymously.
type TokenSource interface {
	Token() (string, error)
}

// Client sends JSON requests to the backend.
//
// Client instances are safe for concurrent use by multiple goroutines.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	limiter    *rate.Limiter
	tokens     TokenSource
}

// Option customizes a [Client].
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithTimeout bounds every round trip.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = timeout }
}

// WithRateLimit caps outbound calls to rps per second with the given burst.
// A non-positive rps leaves calls unlimited.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithTokenSource authenticates every call with the source's bearer token.
func WithTokenSource(tokens TokenSource) Option {
	return func(c *Client) { c.tokens = tokens }
}

// NewClient creates a client for the backend rooted at baseURL
// (e.g. "http://localhost:8081").
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	parsed, err := url.Parse(strings.TrimRight(baseURL, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("restclient: invalid base URL %q: %w", baseURL, err)
	}

	client := &Client{
		baseURL:    parsed,
		httpClient: &http.Client{Timeout: constants.DefaultBackendTimeout},
		limiter:    rate.NewLimiter(rate.Inf, 0),
	}
	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Call describes one backend request.
type Call struct {
	Method      string
	Path        string
	Query       url.Values
	Body        any
	ContentType string
}

// Result is a successful backend answer. Body is empty when none was sent.
type Result struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Do sends call and returns the raw answer.
//
// A non-2xx status is returned as an [apperr.AppError] built by [FromStatus];
// network failures are wrapped into an UPSTREAM_ERROR whose cause is the
// original error. A call cut short by ctx answers TIMEOUT or REQUEST_CANCELED.
func (c *Client) Do(ctx context.Context, call Call) (*Result, error) {
	request, err := c.newRequest(ctx, call)
	if err != nil {
		return nil, err
	}

	if err := c.limiter.Wait(ctx); err != nil {
		if ctx.Err() != nil {
			return nil, contextError(ctx)
		}
		return nil, apperr.RateLimited(err)
	}

	logger := ctxutil.GetLogger(ctx)
	started := time.Now()

	response, err := c.httpClient.Do(request)
	if err != nil {
		if ctx.Err() != nil {
			return nil, contextError(ctx)
		}
		logger.WarnContext(ctx, "backend_request_failed",
			slog.String("method", call.Method),
			slog.String("path", call.Path),
			slog.Any("error", err),
		)
		return nil, apperr.Upstream(0, err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return nil, apperr.Upstream(response.StatusCode, fmt.Errorf("restclient: read response: %w", err))
	}

	logger.DebugContext(ctx, "backend_request_finished",
		slog.String("method", call.Method),
		slog.String("path", call.Path),
		slog.Int("status", response.StatusCode),
		slog.Int64("latency_ms", time.Since(started).Milliseconds()),
	)

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, FromStatus(response.StatusCode, body)
	}

	return &Result{
		StatusCode: response.StatusCode,
		Header:     response.Header,
		Body:       body,
	}, nil
}

func (c *Client) newRequest(ctx context.Context, call Call) (*http.Request, error) {
	target, err := c.baseURL.Parse(strings.TrimLeft(call.Path, "/"))
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("restclient: invalid path %q: %w", call.Path, err))
	}
	if len(call.Query) > 0 {
		target.RawQuery = call.Query.Encode()
	}

	var bodyReader io.Reader
	if call.Body != nil {
		payload, err := json.Marshal(call.Body)
		if err != nil {
			return nil, apperr.Internal(fmt.Errorf("restclient: marshal request body: %w", err))
		}
		bodyReader = bytes.NewReader(payload)
	}

	request, err := http.NewRequestWithContext(ctx, call.Method, target.String(), bodyReader)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("restclient: create request: %w", err))
	}

	request.Header.Set(constants.HeaderAccept, constants.ContentTypeJSON)
	if call.Body != nil {
		contentType := call.ContentType
		if contentType == "" {
			contentType = constants.ContentTypeJSON
		}
		request.Header.Set(constants.HeaderContentType, contentType)
	}

	requestID := ctxutil.GetRequestID(ctx)
	if requestID == "" {
		requestID = uuidv7.New()
	}
	request.Header.Set(constants.HeaderXRequestID, requestID)

	if c.tokens != nil {
		token, err := c.tokens.Token()
		if err != nil {
			return nil, err
		}
		if token != "" {
			request.Header.Set(constants.HeaderAuthorization, constants.AuthorizationBearer+token)
		}
	}

	return request, nil
}

// contextError maps the end of the caller's context to an [apperr.AppError].
func contextError(ctx context.Context) *apperr.AppError {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return apperr.Timeout(ctx.Err())
	}
	return apperr.Canceled(ctx.Err())
}
