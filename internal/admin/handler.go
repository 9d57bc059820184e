// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package admin

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/blogadmin/internal/crud"
	"github.com/taibuivan/blogadmin/internal/platform/apperr"
	"github.com/taibuivan/blogadmin/internal/platform/constants"
	"github.com/taibuivan/blogadmin/internal/platform/ctxutil"
	requestutil "github.com/taibuivan/blogadmin/internal/platform/request"
	"github.com/taibuivan/blogadmin/internal/platform/respond"
	"github.com/taibuivan/blogadmin/pkg/pagination"
)

// Editor is the per-activation part of an update screen: its relationship
// selectors and the binding of submitted fields onto the form.
type Editor[E any, F any] interface {
	Relationships() []crud.Relationship[E]
	Bind(form *F, values url.Values) error
	Options() any
}

// Screen describes the administration of one entity type.
type Screen[E any, F any] struct {
	// Name is the route segment, e.g. "entry".
	Name      string
	Transport crud.Transport[E]
	Forms     crud.FormSynchronizer[E, F]
	NewEditor func() Editor[E, F]
}

// EditView is the payload of an update screen.
type EditView[E any, F any] struct {
	Entity  *E     `json:"entity"`
	Form    *F     `json:"form"`
	Options any    `json:"options,omitempty"`
	State   string `json:"state"`
}

// Handler serves the routes of one [Screen]:
//
//	GET  /            list
//	GET  /new         create screen
//	POST /new         create
//	GET  /{id}/view   detail
//	GET  /{id}/edit   update screen
//	POST /{id}/edit   update
//	POST /{id}/delete delete
type Handler[E any, P crud.Entity[E], F any] struct {
	screen Screen[E, F]
}

// NewHandler returns the handler of screen.
func NewHandler[E any, P crud.Entity[E], F any](screen Screen[E, F]) *Handler[E, P, F] {
	return &Handler[E, P, F]{screen: screen}
}

// Path returns the mount point of the screen.
func (handler *Handler[E, P, F]) Path() string {
	return "/" + handler.screen.Name
}

// Routes returns the screen's router.
func (handler *Handler[E, P, F]) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.With(handler.resolve).Get("/new", handler.edit)
	router.With(handler.resolve).Post("/new", handler.save)

	router.Route("/{id}", func(router chi.Router) {
		router.Use(handler.resolve)
		router.Get("/view", handler.view)
		router.Get("/edit", handler.edit)
		router.Post("/edit", handler.save)
		router.Post("/delete", handler.delete)
	})

	return router
}

// resolve prefetches the entity named by the id parameter and hands it to the
// next handler as route data. Create routes carry a nil entity.
func (handler *Handler[E, P, F]) resolve(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		idParam := requestutil.ID(request, "id")
		navigator := newRedirector(writer, request, handler.Path())

		entity, err := crud.NewResolver[E](handler.screen.Transport, navigator).Resolve(ctx, idParam)
		if errors.Is(err, crud.ErrRedirected) {
			ctxutil.GetLogger(ctx).InfoContext(ctx, "entity_not_found",
				slog.String("screen", handler.screen.Name),
				slog.String("id", idParam),
			)
			if !navigator.navigated() {
				respond.Error(writer, request, apperr.NotFound("Page"))
			}
			return
		}
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		next.ServeHTTP(writer, request.WithContext(ctxutil.WithRouteData(ctx, entity)))
	})
}

func (handler *Handler[E, P, F]) list(writer http.ResponseWriter, request *http.Request) {
	options := pagination.FromRequest(request, constants.DefaultSort)

	response, err := handler.screen.Transport.Query(request.Context(), &options)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	items := response.Body
	if items == nil {
		items = []*E{}
	}
	total := pagination.TotalFromHeader(response.Header, len(items))

	respond.Paginated(writer, items, pagination.NewMeta(options, total))
}

func (handler *Handler[E, P, F]) view(writer http.ResponseWriter, request *http.Request) {
	entity, _ := ctxutil.RouteData[E](request.Context())
	if entity == nil {
		respond.Error(writer, request, apperr.NotFound("Page"))
		return
	}
	respond.OK(writer, entity)
}

// activate builds the update screen of the resolved entity.
func (handler *Handler[E, P, F]) activate(writer http.ResponseWriter, request *http.Request) (*crud.Orchestrator[E, F], Editor[E, F], *redirector) {
	ctx := request.Context()
	entity, _ := ctxutil.RouteData[E](ctx)

	navigator := newRedirector(writer, request, handler.Path())
	editor := handler.screen.NewEditor()
	orchestrator := crud.NewOrchestrator[E, P](handler.screen.Transport, handler.screen.Forms, navigator, editor.Relationships()...)

	if err := orchestrator.Activate(ctx, entity); err != nil {
		ctxutil.GetLogger(ctx).WarnContext(ctx, "relationship_load_failed",
			slog.String("screen", handler.screen.Name),
			slog.Any("error", err),
		)
	}

	return orchestrator, editor, navigator
}

func (handler *Handler[E, P, F]) edit(writer http.ResponseWriter, request *http.Request) {
	orchestrator, editor, _ := handler.activate(writer, request)

	respond.OK(writer, EditView[E, F]{
		Entity:  orchestrator.Entity(),
		Form:    orchestrator.Form(),
		Options: editor.Options(),
		State:   orchestrator.State().String(),
	})
}

func (handler *Handler[E, P, F]) save(writer http.ResponseWriter, request *http.Request) {
	ctx := request.Context()
	logger := ctxutil.GetLogger(ctx)

	values, err := requestutil.DecodeForm(writer, request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	orchestrator, editor, navigator := handler.activate(writer, request)

	var bindErr error
	orchestrator.EditForm(func(form *F) {
		bindErr = editor.Bind(form, values)
	})
	if bindErr != nil {
		respond.Error(writer, request, bindErr)
		return
	}

	if err := orchestrator.Save(ctx); err != nil {
		if navigator.navigated() {
			logger.WarnContext(ctx, "save_navigation_failed", slog.Any("error", err))
			return
		}
		respond.Error(writer, request, err)
		return
	}

	attrs := []any{slog.String("screen", handler.screen.Name)}
	if key := P(orchestrator.Saved()).Key(); key != nil {
		attrs = append(attrs, slog.Int64("id", *key))
	}
	logger.InfoContext(ctx, "entity_saved", attrs...)
}

func (handler *Handler[E, P, F]) delete(writer http.ResponseWriter, request *http.Request) {
	ctx := request.Context()

	entity, _ := ctxutil.RouteData[E](ctx)
	key := P(entity).Key()
	if key == nil {
		respond.Error(writer, request, apperr.NotFound("Page"))
		return
	}

	if _, err := handler.screen.Transport.Delete(ctx, *key); err != nil {
		respond.Error(writer, request, err)
		return
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "entity_deleted",
		slog.String("screen", handler.screen.Name),
		slog.Int64("id", *key),
	)

	_ = newRedirector(writer, request, handler.Path()).Back(ctx)
}
