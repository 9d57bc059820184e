// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec holds the credentials the admin front-end presents to the
// backend.
//
// # Architecture
//
// The backend signs and verifies its own tokens. This package only inspects
// the token it was configured with so that an expired credential fails
// locally instead of producing a 401 on every call.
package sec

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taibuivan/blogadmin/internal/platform/apperr"
)

// DefaultLeeway is the clock skew tolerated when checking expiry.
const DefaultLeeway = 30 * time.Second

// BearerToken is a static backend credential.
//
// Tokens that parse as a JWT are checked for expiry before every call.
// Opaque tokens are sent as they are.
type BearerToken struct {
	raw    string
	leeway time.Duration
	now    func() time.Time

	once   sync.Once
	claims *jwt.RegisteredClaims
}

// NewBearerToken wraps raw. An empty raw yields anonymous calls.
func NewBearerToken(raw string) *BearerToken {
	return &BearerToken{
		raw:    strings.TrimSpace(raw),
		leeway: DefaultLeeway,
		now:    time.Now,
	}
}

// WithClock replaces the time source used for expiry checks.
func (t *BearerToken) WithClock(now func() time.Time) *BearerToken {
	t.now = now
	return t
}

// Token returns the raw token, or an UNAUTHORIZED [apperr.AppError] once the
// token has expired.
func (t *BearerToken) Token() (string, error) {
	if t.raw == "" {
		return "", nil
	}

	claims := t.Claims()
	if claims != nil && claims.ExpiresAt != nil && t.now().After(claims.ExpiresAt.Time.Add(t.leeway)) {
		return "", apperr.Unauthorized(fmt.Sprintf("Backend token expired at %s", claims.ExpiresAt.Time.Format(time.RFC3339)))
	}

	return t.raw, nil
}

// Claims returns the registered claims of the token, or nil when the token
// is empty or not a JWT. The signature is not verified.
func (t *BearerToken) Claims() *jwt.RegisteredClaims {
	t.once.Do(func() {
		if t.raw == "" {
			return
		}
		claims := &jwt.RegisteredClaims{}
		if _, _, err := jwt.NewParser().ParseUnverified(t.raw, claims); err != nil {
			return
		}
		t.claims = claims
	})
	return t.claims
}
