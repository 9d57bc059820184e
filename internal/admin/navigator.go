// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package admin

import (
	"context"
	"errors"
	"net/http"

	"github.com/taibuivan/blogadmin/internal/platform/respond"
)

var errAlreadyNavigated = errors.New("admin: response already redirected")

// redirector is the navigator of one HTTP request: navigating answers the
// request with a redirect, so it can happen at most once.
type redirector struct {
	writer  http.ResponseWriter
	request *http.Request
	back    string
	target  string
}

func newRedirector(writer http.ResponseWriter, request *http.Request, back string) *redirector {
	return &redirector{writer: writer, request: request, back: back}
}

// Navigate implements crud.Navigator.
func (n *redirector) Navigate(_ context.Context, path string) error {
	if n.target != "" {
		return errAlreadyNavigated
	}
	n.target = path
	respond.Redirect(n.writer, n.request, path)
	return nil
}

// Back implements crud.Navigator. It returns to the list of the screen.
func (n *redirector) Back(ctx context.Context) error {
	return n.Navigate(ctx, n.back)
}

func (n *redirector) navigated() bool { return n.target != "" }
