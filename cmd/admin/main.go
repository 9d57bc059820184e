// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command admin is the entry point of the blog administration front-end.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Build the backend client (token, rate limit, timeout).
//  4. Wire entity services and screens.
//  5. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/taibuivan/blogadmin/internal/admin"
	"github.com/taibuivan/blogadmin/internal/blog"
	"github.com/taibuivan/blogadmin/internal/crud"
	"github.com/taibuivan/blogadmin/internal/entry"
	"github.com/taibuivan/blogadmin/internal/platform/config"
	"github.com/taibuivan/blogadmin/internal/platform/constants"
	"github.com/taibuivan/blogadmin/internal/platform/restclient"
	"github.com/taibuivan/blogadmin/internal/platform/sec"
	"github.com/taibuivan/blogadmin/internal/tag"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	level := new(slog.LevelVar)
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})).
		With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		level.Set(slog.LevelDebug)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("backend", cfg.BackendURL),
	)

	formLocation, err := cfg.Location()
	must(log, err, "load form timezone")
	codec := crud.NewDateCodec(formLocation)

	// ── 3. Backend Client ─────────────────────────────────────────────────
	token := sec.NewBearerToken(cfg.BackendToken)
	if claims := token.Claims(); claims != nil {
		attrs := []any{slog.String("subject", claims.Subject)}
		if claims.ExpiresAt != nil {
			attrs = append(attrs, slog.Time("expires_at", claims.ExpiresAt.Time))
		}
		log.Info("backend_token_loaded", attrs...)
	}

	client, err := restclient.NewClient(cfg.BackendURL,
		restclient.WithTimeout(cfg.BackendTimeout),
		restclient.WithRateLimit(cfg.BackendRateLimitRPS, cfg.BackendRateLimitBurst),
		restclient.WithTokenSource(token),
	)
	must(log, err, "create backend client")

	// ── 4. Domain Wiring ──────────────────────────────────────────────────
	blogService := blog.NewService(client)
	tagService := tag.NewService(client)
	entryService := entry.NewService(client, codec)

	liveness, readiness := admin.NewHealthHandlers(admin.HealthDependencies{
		CheckBackend: blogService.Ping,
	}, log)

	handlers := admin.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Screens: []admin.Mountable{
			blog.NewHandler(blogService),
			tag.NewHandler(tagService),
			entry.NewHandler(entryService, entry.NewForms(codec), blogService, tagService),
		},
	}

	// ── 5. HTTP Server ────────────────────────────────────────────────────
	server := admin.NewServer(cfg, log, handlers)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned
// and handled explicitly.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
