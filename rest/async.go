package rest

import (
	"context"
	"fmt"

	"github.com/kbukum/restfulcore/errors"
)

// Callback receives the result of an operation run with Async.
type Callback[T any] func(*Result[T], error)

// Async runs op on its own goroutine and calls cb exactly once with its
// result. The caller is never blocked and callbacks carry no ordering
// guarantee. Connection.Wait blocks until cb has returned. On a closed
// connection op is not run and cb receives an UNAVAILABLE failure on the
// caller's goroutine.
func Async[T any](ctx context.Context, c *Connection, op func(context.Context) (*Result[T], error), cb Callback[T]) {
	if !c.admit() {
		res, err := failedResult[T](0, []string{"connection is closed."},
			errors.Unavailable(fmt.Sprintf("rest %s: connection is closed", c.name)))
		if cb != nil {
			cb(res, err)
		}
		return
	}
	go func() {
		defer c.inflight.Done()
		res, err := runOp(ctx, op)
		if cb != nil {
			cb(res, err)
		}
	}()
}

// runOp converts a panic in op into a failed result so cb still runs once.
func runOp[T any](ctx context.Context, op func(context.Context) (*Result[T], error)) (res *Result[T], err error) {
	defer func() {
		if r := recover(); r != nil {
			res, err = failedResult[T](0, []string{fmt.Sprintf("operation panicked: %v", r)},
				errors.Internal(fmt.Errorf("panic: %v", r)))
		}
	}()
	return op(ctx)
}

// ListAsync is the callback form of List.
func ListAsync[T any, PT Object[T]](ctx context.Context, c *Connection, path string, cb Callback[[]T], opts ...CallOption) {
	Async(ctx, c, func(ctx context.Context) (*Result[[]T], error) { return List[T, PT](ctx, c, path, opts...) }, cb)
}

// ListPageAsync is the callback form of ListPage.
func ListPageAsync[T any, PT Object[T]](ctx context.Context, c *Connection, path string, cb Callback[Page[T]], opts ...CallOption) {
	Async(ctx, c, func(ctx context.Context) (*Result[Page[T]], error) { return ListPage[T, PT](ctx, c, path, opts...) }, cb)
}

// GetAsync is the callback form of Get.
func GetAsync[T any, PT Object[T]](ctx context.Context, c *Connection, path, id string, cb Callback[T]) {
	Async(ctx, c, func(ctx context.Context) (*Result[T], error) { return Get[T, PT](ctx, c, path, id) }, cb)
}

// PostAsync is the callback form of Post.
func PostAsync[T any, PT Object[T]](ctx context.Context, c *Connection, path string, body any, cb Callback[T], opts ...CallOption) {
	Async(ctx, c, func(ctx context.Context) (*Result[T], error) { return Post[T, PT](ctx, c, path, body, opts...) }, cb)
}

// PutAsync is the callback form of Put.
func PutAsync[T any, PT Object[T]](ctx context.Context, c *Connection, path, id string, body any, cb Callback[T], opts ...CallOption) {
	Async(ctx, c, func(ctx context.Context) (*Result[T], error) { return Put[T, PT](ctx, c, path, id, body, opts...) }, cb)
}

// DeleteAsync is the callback form of Delete.
func DeleteAsync[T any, PT Object[T]](ctx context.Context, c *Connection, path, id string, cb Callback[T]) {
	Async(ctx, c, func(ctx context.Context) (*Result[T], error) { return Delete[T, PT](ctx, c, path, id) }, cb)
}

// QueryAsync is the callback form of Query.
func QueryAsync[T any, PT Object[T]](ctx context.Context, c *Connection, path string, criteria any, cb Callback[Page[T]], opts ...CallOption) {
	Async(ctx, c, func(ctx context.Context) (*Result[Page[T]], error) { return Query[T, PT](ctx, c, path, criteria, opts...) }, cb)
}
