package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// QueryOptions enumerates the recognized list parameters. The zero value
// requests the server defaults.
type QueryOptions struct {
	Page     int
	PageSize int
	// Sort is "field:asc" or "field:desc".
	Sort string
	// Filters maps column names to exact-match values; a "__like" key
	// suffix requests a substring match.
	Filters map[string]string
}

func (o QueryOptions) encode() string {
	values := url.Values{}
	if o.Page > 0 {
		values.Set("page", strconv.Itoa(o.Page))
	}
	if o.PageSize > 0 {
		values.Set("page_size", strconv.Itoa(o.PageSize))
	}
	if o.Sort != "" {
		values.Set("sort", o.Sort)
	}
	for key, value := range o.Filters {
		values.Set(key, value)
	}
	return values.Encode()
}

// Resource performs remote CRUD for one entity type against the
// /api/<resource> endpoints. It holds no mutable state; a single instance
// per entity type serves the whole process.
type Resource[T Entity] struct {
	client   *Client
	resource string
}

// NewResource creates a Resource for the given plural path segment
// (e.g. "center-employees").
func NewResource[T Entity](c *Client, resource string) *Resource[T] {
	if c == nil {
		panic("client.NewResource: client must not be nil")
	}
	return &Resource[T]{client: c, resource: resource}
}

// Create persists a new entity. The identifier must be absent; the server
// assigns it and the returned value carries the server's representation.
func (r *Resource[T]) Create(ctx context.Context, entity *T) (*T, error) {
	if entity == nil {
		return nil, fmt.Errorf("create %s: entity is nil", r.resource)
	}
	if (*entity).GetID() != "" {
		return nil, fmt.Errorf("create %s: entity already has an identifier", r.resource)
	}
	return r.send(ctx, http.MethodPost, r.collectionURL(""), entity)
}

// Update replaces the full stored state of an existing entity. The
// identifier must be present.
func (r *Resource[T]) Update(ctx context.Context, entity *T) (*T, error) {
	if entity == nil {
		return nil, fmt.Errorf("update %s: entity is nil", r.resource)
	}
	id := (*entity).GetID()
	if id == "" {
		return nil, fmt.Errorf("update %s: entity has no identifier", r.resource)
	}
	return r.send(ctx, http.MethodPut, r.itemURL(id), entity)
}

// PartialUpdate sends a merge-patch document: only fields present in the
// patch body overwrite stored values, absent fields are left unchanged.
func (r *Resource[T]) PartialUpdate(ctx context.Context, id string, patch any) (*T, error) {
	if id == "" {
		return nil, fmt.Errorf("partial update %s: missing identifier", r.resource)
	}
	return r.send(ctx, http.MethodPatch, r.itemURL(id), patch)
}

// Find fetches one entity by identifier. A missing entity is reported as
// (nil, nil): the server signals it with an empty body, which the route
// resolver keys on.
func (r *Resource[T]) Find(ctx context.Context, id string) (*T, error) {
	reqURL := r.itemURL(id)
	body, _, err := r.do(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		if IsRemoteStatus(err, http.StatusNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}

	var entity T
	if err := json.Unmarshal(body, &entity); err != nil {
		return nil, fmt.Errorf("find %s %s: decode response: %w", r.resource, id, err)
	}
	return &entity, nil
}

// Query fetches a collection page.
func (r *Resource[T]) Query(ctx context.Context, opts QueryOptions) ([]T, error) {
	items, _, err := r.QueryPage(ctx, opts)
	return items, err
}

// QueryPage fetches a collection page together with the total count the
// server reports in the X-Total-Count header.
func (r *Resource[T]) QueryPage(ctx context.Context, opts QueryOptions) ([]T, int64, error) {
	body, header, err := r.do(ctx, http.MethodGet, r.collectionURL(opts.encode()), nil)
	if err != nil {
		return nil, 0, err
	}

	var items []T
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, 0, fmt.Errorf("query %s: decode response: %w", r.resource, err)
	}

	total := int64(len(items))
	if raw := header.Get("X-Total-Count"); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil {
			total = parsed
		}
	}
	return items, total, nil
}

// Delete removes the entity by identifier. Only the status is reported;
// there is no body.
func (r *Resource[T]) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("delete %s: missing identifier", r.resource)
	}
	_, _, err := r.do(ctx, http.MethodDelete, r.itemURL(id), nil)
	return err
}

// send issues a request with a JSON entity body and decodes the returned
// entity representation.
func (r *Resource[T]) send(ctx context.Context, method, reqURL string, payload any) (*T, error) {
	body, _, err := r.do(ctx, method, reqURL, payload)
	if err != nil {
		return nil, err
	}

	var entity T
	if err := json.Unmarshal(body, &entity); err != nil {
		return nil, fmt.Errorf("%s %s: decode response: %w", method, r.resource, err)
	}
	return &entity, nil
}

func (r *Resource[T]) do(ctx context.Context, method, reqURL string, payload any) ([]byte, http.Header, error) {
	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, nil, fmt.Errorf("%s %s: encode request: %w", method, r.resource, err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return nil, nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if r.client.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.client.token)
	}

	resp, err := r.client.http.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("%s %s: read response: %w", method, r.resource, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, nil, &RemoteError{
			Status: resp.StatusCode,
			Method: method,
			URL:    reqURL,
			Body:   body,
		}
	}
	return body, resp.Header, nil
}

func (r *Resource[T]) collectionURL(query string) string {
	u := r.client.baseURL + "/api/" + r.resource
	if query != "" {
		u += "?" + query
	}
	return u
}

func (r *Resource[T]) itemURL(id string) string {
	return r.client.baseURL + "/api/" + r.resource + "/" + url.PathEscape(id)
}
