// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package admin wires together the HTTP router, middleware chain, and every
entity screen into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - Screens are generic: [Handler] turns a [Screen] (transport, form
    synchronizer, editor) into list, detail, create, update and delete routes.
  - Navigation is answered with redirects, screens are rendered as JSON.
*/
package admin

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taibuivan/blogadmin/internal/platform/apperr"
	"github.com/taibuivan/blogadmin/internal/platform/config"
	"github.com/taibuivan/blogadmin/internal/platform/constants"
	"github.com/taibuivan/blogadmin/internal/platform/middleware"
	"github.com/taibuivan/blogadmin/internal/platform/respond"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Mountable is an entity screen that can be mounted on the router.
type Mountable interface {
	Path() string
	Routes() chi.Router
}

// Handlers groups all HTTP handler sets.
type Handlers struct {
	// Liveness is the /health handler, 200 whenever the process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler, 200 when the backend answers.
	Readiness http.HandlerFunc

	// Screens are the entity screens, mounted at their Path.
	Screens []Mountable
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(cfg *config.Config, log *slog.Logger, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.PanicRecovery())
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	if h.Liveness != nil {
		r.Get("/health", h.Liveness)
	}
	if h.Readiness != nil {
		r.Get("/ready", h.Readiness)
	}

	// # Screens
	r.Get(constants.RouteNotFound, notFound)
	for _, screen := range h.Screens {
		r.Mount(screen.Path(), screen.Routes())
	}

	// Unknown routes land on the not-found page.
	r.NotFound(func(writer http.ResponseWriter, request *http.Request) {
		respond.Redirect(writer, request, constants.RouteNotFound)
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// notFound handles GET /404.
func notFound(writer http.ResponseWriter, request *http.Request) {
	respond.Error(writer, request, apperr.NotFound("Page"))
}

// # Server Lifecycle

// Handler returns the root handler, middleware included.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
