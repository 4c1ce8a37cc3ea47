// Package client implements the Admin and Control API facades declared in
// pkg/apisix. Each resource client is a thin set of (verb, path, payload)
// mappings over the shared HTTP dispatcher; payloads pass through verbatim
// and the gateway performs all validation.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	http_internal "github.com/s1nju/apisix-client/internal/http"
	"github.com/s1nju/apisix-client/pkg/apisix"
)

// resourceOps implements the standard CRUD surface for one resource kind.
// The concrete per-kind clients embed it and add or hide methods as the
// gateway's surface for that kind requires.
type resourceOps struct {
	httpClient *http_internal.Client
	kind       apisix.ResourceKind
}

func (o *resourceOps) List(ctx context.Context) (*apisix.ListResponse, error) {
	path, err := apisix.BuildPath(o.kind)
	if err != nil {
		return nil, err
	}

	resp, err := o.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", o.kind, err)
	}

	return decodeList(resp.Body)
}

func (o *resourceOps) Get(ctx context.Context, id string) (*apisix.Resource, error) {
	path, err := apisix.BuildPath(o.kind, id)
	if err != nil {
		return nil, err
	}

	resp, err := o.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting %s %q: %w", o.kind, id, err)
	}

	return decodeResource(resp.Body)
}

func (o *resourceOps) Create(ctx context.Context, config apisix.Object, opts ...apisix.CallOption) (*apisix.Resource, error) {
	path, err := apisix.BuildPath(o.kind)
	if err != nil {
		return nil, err
	}

	resp, err := o.httpClient.Do(ctx, &http_internal.Request{
		Method: http.MethodPost,
		Path:   path,
		Query:  apisix.QueryFromOptions(opts),
		Body:   config,
	})
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", o.kind, err)
	}

	return decodeResource(resp.Body)
}

func (o *resourceOps) CreateWithID(ctx context.Context, id string, config apisix.Object, opts ...apisix.CallOption) (*apisix.Resource, error) {
	path, err := apisix.BuildPath(o.kind, id)
	if err != nil {
		return nil, err
	}

	resp, err := o.httpClient.Do(ctx, &http_internal.Request{
		Method: http.MethodPut,
		Path:   path,
		Query:  apisix.QueryFromOptions(opts),
		Body:   config,
	})
	if err != nil {
		return nil, fmt.Errorf("creating %s %q: %w", o.kind, id, err)
	}

	return decodeResource(resp.Body)
}

func (o *resourceOps) Update(ctx context.Context, id string, config apisix.Object, opts ...apisix.CallOption) (*apisix.Resource, error) {
	path, err := apisix.BuildPath(o.kind, id)
	if err != nil {
		return nil, err
	}

	resp, err := o.httpClient.Do(ctx, &http_internal.Request{
		Method: http.MethodPatch,
		Path:   path,
		Query:  apisix.QueryFromOptions(opts),
		Body:   config,
	})
	if err != nil {
		return nil, fmt.Errorf("updating %s %q: %w", o.kind, id, err)
	}

	return decodeResource(resp.Body)
}

func (o *resourceOps) UpdateWithPath(ctx context.Context, id, subPath string, config apisix.Object, opts ...apisix.CallOption) (*apisix.Resource, error) {
	path, err := apisix.BuildPath(o.kind, id, subPath)
	if err != nil {
		return nil, err
	}

	resp, err := o.httpClient.Do(ctx, &http_internal.Request{
		Method: http.MethodPatch,
		Path:   path,
		Query:  apisix.QueryFromOptions(opts),
		Body:   config,
	})
	if err != nil {
		return nil, fmt.Errorf("updating %s %q path %q: %w", o.kind, id, subPath, err)
	}

	return decodeResource(resp.Body)
}

func (o *resourceOps) Delete(ctx context.Context, id string) (*apisix.DeleteResponse, error) {
	path, err := apisix.BuildPath(o.kind, id)
	if err != nil {
		return nil, err
	}

	resp, err := o.httpClient.Delete(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("deleting %s %q: %w", o.kind, id, err)
	}

	return decodeDelete(resp.Body)
}

func decodeResource(body []byte) (*apisix.Resource, error) {
	if body == nil {
		return nil, nil
	}

	var resource apisix.Resource
	if err := json.Unmarshal(body, &resource); err != nil {
		return nil, fmt.Errorf("parsing resource response: %w", err)
	}

	return &resource, nil
}

func decodeList(body []byte) (*apisix.ListResponse, error) {
	if body == nil {
		return &apisix.ListResponse{}, nil
	}

	var list apisix.ListResponse
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("parsing list response: %w", err)
	}

	return &list, nil
}

func decodeDelete(body []byte) (*apisix.DeleteResponse, error) {
	if body == nil {
		return nil, nil
	}

	var deleted apisix.DeleteResponse
	if err := json.Unmarshal(body, &deleted); err != nil {
		return nil, fmt.Errorf("parsing delete response: %w", err)
	}

	return &deleted, nil
}

func decodeObject(body []byte) (apisix.Object, error) {
	if body == nil {
		return nil, nil
	}

	var obj apisix.Object
	if err := json.Unmarshal(body, &obj); err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}

	return obj, nil
}
