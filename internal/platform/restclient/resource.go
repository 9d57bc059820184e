// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package restclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/taibuivan/blogadmin/internal/crud"
	"github.com/taibuivan/blogadmin/internal/platform/apperr"
	"github.com/taibuivan/blogadmin/internal/platform/constants"
	"github.com/taibuivan/blogadmin/pkg/pagination"
)

// Converter maps an entity to its wire shape and back.
type Converter[E any, W any] struct {
	ToWire   func(entity *E) *W
	FromWire func(wire *W) (*E, error)
}

// Identity is the converter of entities whose wire shape is the entity itself.
func Identity[E any]() Converter[E, E] {
	return Converter[E, E]{
		ToWire:   func(entity *E) *E { return entity },
		FromWire: func(wire *E) (*E, error) { return wire, nil },
	}
}

// Resource is the REST collection of one entity type, e.g. "api/entries".
//
// It implements [crud.Transport].
type Resource[E any, P crud.Entity[E], W any] struct {
	client  *Client
	path    string
	convert Converter[E, W]
}

// NewResource binds the collection at path to client.
func NewResource[E any, P crud.Entity[E], W any](client *Client, path string, convert Converter[E, W]) *Resource[E, P, W] {
	return &Resource[E, P, W]{
		client:  client,
		path:    path,
		convert: convert,
	}
}

// Create POSTs a new entity to the collection.
func (r *Resource[E, P, W]) Create(ctx context.Context, entity *E) (crud.Response[*E], error) {
	return r.send(ctx, http.MethodPost, r.path, r.convert.ToWire(entity), constants.ContentTypeJSON)
}

// Update PUTs the full entity to its member URL.
func (r *Resource[E, P, W]) Update(ctx context.Context, entity *E) (crud.Response[*E], error) {
	path, err := r.memberOf(entity)
	if err != nil {
		return crud.Response[*E]{}, err
	}
	return r.send(ctx, http.MethodPut, path, r.convert.ToWire(entity), constants.ContentTypeJSON)
}

// PartialUpdate PATCHes the entity's non-nil fields as a merge patch.
func (r *Resource[E, P, W]) PartialUpdate(ctx context.Context, entity *E) (crud.Response[*E], error) {
	path, err := r.memberOf(entity)
	if err != nil {
		return crud.Response[*E]{}, err
	}
	return r.send(ctx, http.MethodPatch, path, r.convert.ToWire(entity), constants.ContentTypeMergePatch)
}

// Find GETs one entity. A response without a body yields a nil Body.
func (r *Resource[E, P, W]) Find(ctx context.Context, id int64) (crud.Response[*E], error) {
	return r.send(ctx, http.MethodGet, r.member(id), nil, "")
}

// Query GETs a page of the collection. A nil request asks for the backend's
// default page.
func (r *Resource[E, P, W]) Query(ctx context.Context, request *pagination.Request) (crud.Response[[]*E], error) {
	result, err := r.client.Do(ctx, Call{
		Method: http.MethodGet,
		Path:   r.path,
		Query:  request.Values(),
	})
	if err != nil {
		return crud.Response[[]*E]{}, err
	}

	response := crud.Response[[]*E]{StatusCode: result.StatusCode, Header: result.Header}
	if isEmpty(result.Body) {
		return response, nil
	}

	var wires []*W
	if err := json.Unmarshal(result.Body, &wires); err != nil {
		return crud.Response[[]*E]{}, apperr.Upstream(result.StatusCode, fmt.Errorf("restclient: decode %s: %w", r.path, err))
	}

	response.Body = make([]*E, 0, len(wires))
	for _, wire := range wires {
		if wire == nil {
			continue
		}
		entity, err := r.convert.FromWire(wire)
		if err != nil {
			return crud.Response[[]*E]{}, apperr.Upstream(result.StatusCode, err)
		}
		response.Body = append(response.Body, entity)
	}

	return response, nil
}

// Delete removes one entity.
func (r *Resource[E, P, W]) Delete(ctx context.Context, id int64) (crud.Response[struct{}], error) {
	result, err := r.client.Do(ctx, Call{Method: http.MethodDelete, Path: r.member(id)})
	if err != nil {
		return crud.Response[struct{}]{}, err
	}
	return crud.Response[struct{}]{StatusCode: result.StatusCode, Header: result.Header}, nil
}

func (r *Resource[E, P, W]) send(ctx context.Context, method, path string, body any, contentType string) (crud.Response[*E], error) {
	result, err := r.client.Do(ctx, Call{Method: method, Path: path, Body: body, ContentType: contentType})
	if err != nil {
		return crud.Response[*E]{}, err
	}

	response := crud.Response[*E]{StatusCode: result.StatusCode, Header: result.Header}
	if isEmpty(result.Body) {
		return response, nil
	}

	wire := new(W)
	if err := json.Unmarshal(result.Body, wire); err != nil {
		return crud.Response[*E]{}, apperr.Upstream(result.StatusCode, fmt.Errorf("restclient: decode %s: %w", path, err))
	}

	entity, err := r.convert.FromWire(wire)
	if err != nil {
		return crud.Response[*E]{}, apperr.Upstream(result.StatusCode, err)
	}
	response.Body = entity

	return response, nil
}

func (r *Resource[E, P, W]) memberOf(entity *E) (string, error) {
	key := P(entity).Key()
	if key == nil {
		return "", apperr.BadRequest("Entity has no identifier")
	}
	return r.member(*key), nil
}

func (r *Resource[E, P, W]) member(id int64) string {
	return r.path + "/" + strconv.FormatInt(id, 10)
}

func isEmpty(body []byte) bool {
	trimmed := bytes.TrimSpace(body)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
