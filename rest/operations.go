package rest

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/kbukum/restfulcore/httpclient"
	"github.com/kbukum/restfulcore/logger"
)

// List fetches path and decodes a JSON array of T. Page and count are sent
// as query parameters (defaults 0 and DefaultPerPage) unless WithQuery is
// given.
func List[T any, PT Object[T]](ctx context.Context, c *Connection, path string, opts ...CallOption) (*Result[[]T], error) {
	o := newCallOptions(opts)
	return exchange(ctx, c, http.MethodGet, c.URLWithQuery(o.listQuery(), path), nil, ContentJSON, decodeList[T, PT])
}

// ListPage fetches path and decodes a paged envelope of T.
func ListPage[T any, PT Object[T]](ctx context.Context, c *Connection, path string, opts ...CallOption) (*Result[Page[T]], error) {
	o := newCallOptions(opts)
	return exchange(ctx, c, http.MethodGet, c.URLWithQuery(o.listQuery(), path), nil, ContentJSON, DecodePage[T, PT])
}

// Get fetches one T. An empty id fetches path itself.
func Get[T any, PT Object[T]](ctx context.Context, c *Connection, path, id string) (*Result[T], error) {
	return exchange(ctx, c, http.MethodGet, c.URL(path, id), nil, ContentJSON, Decode[T, PT])
}

// Post sends body to path and decodes the created T. A 202 or 204 reply is
// an empty success.
func Post[T any, PT Object[T]](ctx context.Context, c *Connection, path string, body any, opts ...CallOption) (*Result[T], error) {
	o := newCallOptions(opts)
	return exchange(ctx, c, http.MethodPost, c.URLWithQuery(o.bodyQuery(), path), body, o.content, Decode[T, PT])
}

// Put sends body to path/id and decodes the updated T.
func Put[T any, PT Object[T]](ctx context.Context, c *Connection, path, id string, body any, opts ...CallOption) (*Result[T], error) {
	o := newCallOptions(opts)
	return exchange(ctx, c, http.MethodPut, c.URLWithQuery(o.bodyQuery(), path, id), body, o.content, Decode[T, PT])
}

// Delete removes path/id and decodes the T the server returns.
func Delete[T any, PT Object[T]](ctx context.Context, c *Connection, path, id string) (*Result[T], error) {
	return exchange(ctx, c, http.MethodDelete, c.URL(path, id), nil, ContentJSON, Decode[T, PT])
}

// Query posts criteria to path and decodes a paged envelope of T.
func Query[T any, PT Object[T]](ctx context.Context, c *Connection, path string, criteria any, opts ...CallOption) (*Result[Page[T]], error) {
	o := newCallOptions(opts)
	return exchange(ctx, c, http.MethodPost, c.URLWithQuery(o.bodyQuery(), path), criteria, o.content, DecodePage[T, PT])
}

// QueryList posts criteria to path and decodes a JSON array of T.
func QueryList[T any, PT Object[T]](ctx context.Context, c *Connection, path string, criteria any, opts ...CallOption) (*Result[[]T], error) {
	o := newCallOptions(opts)
	return exchange(ctx, c, http.MethodPost, c.URLWithQuery(o.bodyQuery(), path), criteria, o.content, decodeList[T, PT])
}

// PostAck sends body to path and reports whether the server accepted it.
// Any response body is discarded.
func PostAck(ctx context.Context, c *Connection, path string, body any, opts ...CallOption) (*Result[bool], error) {
	o := newCallOptions(opts)
	return acknowledge(ctx, c, http.MethodPost, c.URLWithQuery(o.bodyQuery(), path), body, o.content)
}

// PutAck sends body to path/id and reports whether the server accepted it.
func PutAck(ctx context.Context, c *Connection, path, id string, body any, opts ...CallOption) (*Result[bool], error) {
	o := newCallOptions(opts)
	return acknowledge(ctx, c, http.MethodPut, c.URLWithQuery(o.bodyQuery(), path, id), body, o.content)
}

// DeleteAck removes path/id and reports whether the server accepted it.
func DeleteAck(ctx context.Context, c *Connection, path, id string) (*Result[bool], error) {
	return acknowledge(ctx, c, http.MethodDelete, c.URL(path, id), nil, ContentJSON)
}

func decodeList[T any, PT Object[T]](data []byte) (*[]T, error) {
	list, err := DecodeList[T, PT](data)
	if err != nil {
		return nil, err
	}
	return &list, nil
}

// exchange runs one public operation that expects a decoded value.
func exchange[T any](ctx context.Context, c *Connection, method, target string, body any, ct ContentType, decode func([]byte) (*T, error)) (*Result[T], error) {
	t := c.begin()
	rep, err := c.dispatch(ctx, t, method, target, body, ct)
	if err != nil {
		return failedResult[T](statusOf(rep), t.notes, err)
	}
	if rep.class == httpclient.ClassNoContent {
		return emptyResult[T](rep.status, t.notes)
	}

	log := c.log.WithContext(ctx)
	if len(bytes.TrimSpace(rep.body)) == 0 {
		err := httpclient.NewEmptyResponseError(rep.status)
		t.note(fmt.Sprintf("status code %d, but the response body was empty.", rep.status))
		log.Warn("empty response body", logger.Fields(logger.FieldMethod, method, logger.FieldURL, target, logger.FieldStatusCode, rep.status))
		return failedResult[T](rep.status, t.notes, err)
	}

	v, derr := decode(rep.body)
	if derr != nil {
		err := httpclient.NewDecodeError(rep.status, derr)
		t.note(fmt.Sprintf("could not decode response: %v", derr))
		log.Warn("response decode failed", logger.MergeWithError(
			logger.Fields(logger.FieldMethod, method, logger.FieldURL, target, logger.FieldStatusCode, rep.status), derr))
		return failedResult[T](rep.status, t.notes, err)
	}
	return valueResult(rep.status, t.notes, v)
}

// acknowledge runs one public operation whose reply body is ignored.
func acknowledge(ctx context.Context, c *Connection, method, target string, body any, ct ContentType) (*Result[bool], error) {
	t := c.begin()
	rep, err := c.dispatch(ctx, t, method, target, body, ct)
	if err != nil {
		return failedResult[bool](statusOf(rep), t.notes, err)
	}
	accepted := true
	return valueResult(rep.status, t.notes, &accepted)
}

func statusOf(rep *reply) int {
	if rep == nil {
		return 0
	}
	return rep.status
}
