package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/restfulcore/httpclient"
	"github.com/kbukum/restfulcore/logger"
	"github.com/kbukum/restfulcore/observability"
)

// Connection issues REST calls against one root URL. It is safe for
// concurrent use.
type Connection struct {
	name    string
	root    string
	adapter *httpclient.Adapter
	log     *logger.Logger
	tracer  trace.Tracer
	metrics *observability.Metrics

	mu          sync.Mutex
	diagnostics []string
	closed      bool

	inflight sync.WaitGroup
}

type connectionOptions struct {
	log         *logger.Logger
	tracer      trace.Tracer
	metrics     *observability.Metrics
	adapterOpts []httpclient.Option
}

// Option customizes a Connection.
type Option func(*connectionOptions)

// WithLogger sets the logger. Defaults to logger.Get("rest").
func WithLogger(l *logger.Logger) Option {
	return func(o *connectionOptions) { o.log = l }
}

// WithTracer sets the tracer used for dispatch spans. Defaults to the
// global OpenTelemetry tracer.
func WithTracer(t trace.Tracer) Option {
	return func(o *connectionOptions) { o.tracer = t }
}

// WithMetrics enables request metrics.
func WithMetrics(m *observability.Metrics) Option {
	return func(o *connectionOptions) { o.metrics = m }
}

// WithTransport replaces the HTTP round tripper.
func WithTransport(rt http.RoundTripper) Option {
	return func(o *connectionOptions) {
		o.adapterOpts = append(o.adapterOpts, httpclient.WithTransport(rt))
	}
}

// New creates a Connection rooted at cfg.BaseURL.
func New(cfg httpclient.Config, opts ...Option) (*Connection, error) {
	var o connectionOptions
	for _, opt := range opts {
		opt(&o)
	}

	adapter, err := httpclient.New(cfg, o.adapterOpts...)
	if err != nil {
		return nil, err
	}
	resolved := adapter.GetConfig()

	if o.log == nil {
		o.log = logger.Get("rest")
	}
	if o.tracer == nil {
		o.tracer = observability.Tracer()
	}

	return &Connection{
		name:    resolved.Name,
		root:    resolved.BaseURL,
		adapter: adapter,
		log:     o.log.WithFields(logger.Fields("connection", resolved.Name)),
		tracer:  o.tracer,
		metrics: o.metrics,
	}, nil
}

// Dial creates a Connection with default settings rooted at root.
func Dial(root string, opts ...Option) (*Connection, error) {
	return New(httpclient.Config{BaseURL: root}, opts...)
}

// Name returns the connection name.
func (c *Connection) Name() string {
	return c.name
}

// Root returns the root URL every path is built under.
func (c *Connection) Root() string {
	return c.root
}

// Diagnostics returns a copy of the connection-wide log. It holds the notes
// of whichever public operation started most recently, so under concurrent
// use it may belong to a different call than the caller's. Prefer
// Result.Notes.
func (c *Connection) Diagnostics() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.diagnostics))
	copy(out, c.diagnostics)
	return out
}

// Wait blocks until every callback started on this connection has returned.
// Callers must not start new callback work concurrently with Wait; use Close
// to drain a connection that others may still be using.
func (c *Connection) Wait() {
	c.inflight.Wait()
}

// Close stops accepting callback work, waits for in-flight callbacks until
// ctx expires, and releases idle transport connections either way. Blocking
// operations keep working after Close.
func (c *Connection) Close(ctx context.Context) error {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()

	done := make(chan struct{})
	go func() {
		// Exits once the remaining callbacks return; Close admits no new ones.
		c.inflight.Wait()
		close(done)
	}()

	var waitErr error
	select {
	case <-done:
	case <-ctx.Done():
		waitErr = fmt.Errorf("rest %s: waiting for in-flight calls: %w", c.name, ctx.Err())
	}
	return errors.Join(waitErr, c.adapter.Close(ctx))
}

// admit registers one unit of callback work, or reports false once the
// connection is closed. Registering under mu keeps Add ordered before the
// Wait in Close.
func (c *Connection) admit() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	c.inflight.Add(1)
	return true
}

// trail collects the notes of one public operation.
type trail struct {
	c     *Connection
	notes []string
}

// begin starts a public operation: the shared log is reset and a fresh
// trail is returned.
func (c *Connection) begin() *trail {
	c.mu.Lock()
	c.diagnostics = nil
	c.mu.Unlock()
	return &trail{c: c}
}

// note records msg on the call's trail and on the shared log.
func (t *trail) note(msg string) {
	t.notes = append(t.notes, msg)
	t.c.mu.Lock()
	t.c.diagnostics = append(t.c.diagnostics, msg)
	t.c.mu.Unlock()
}
