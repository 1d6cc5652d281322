package rest

import (
	"context"
	"fmt"
	"sync"

	"github.com/kbukum/restfulcore/component"
	"github.com/kbukum/restfulcore/httpclient"
	"github.com/kbukum/restfulcore/logger"
)

// Component manages a Connection's lifecycle.
type Component struct {
	cfg  httpclient.Config
	opts []Option

	mu   sync.RWMutex
	conn *Connection
}

var (
	_ component.Component   = (*Component)(nil)
	_ component.Describable = (*Component)(nil)
)

// NewComponent creates a lifecycle component for a connection built from cfg.
func NewComponent(cfg httpclient.Config, opts ...Option) *Component {
	cfg.ApplyDefaults()
	return &Component{cfg: cfg, opts: opts}
}

// Name returns the connection name.
func (c *Component) Name() string {
	return c.cfg.Name
}

// Start builds the connection.
func (c *Component) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn != nil {
		return nil
	}

	conn, err := New(c.cfg, c.opts...)
	if err != nil {
		return fmt.Errorf("rest %s: %w", c.cfg.Name, err)
	}
	c.conn = conn
	conn.log.Info("connection ready", logger.Fields(logger.FieldURL, conn.root))
	return nil
}

// Stop closes the connection: no new callback work is admitted, in-flight
// callbacks are awaited until ctx expires, and the transport is released.
func (c *Component) Stop(ctx context.Context) error {
	c.mu.Lock()
	conn := c.conn
	c.conn = nil
	c.mu.Unlock()
	if conn == nil {
		return nil
	}

	return conn.Close(ctx)
}

// Health probes the connection root.
func (c *Component) Health(ctx context.Context) component.Health {
	h := component.Health{Name: c.cfg.Name}

	conn := c.Connection()
	if conn == nil {
		h.Status = component.StatusUnhealthy
		h.Message = "not started"
		return h
	}

	if ok, reason := conn.probe(ctx); !ok {
		h.Status = component.StatusUnhealthy
		h.Message = reason
		return h
	}
	h.Status = component.StatusHealthy
	return h
}

// Describe returns a summary for startup logging.
func (c *Component) Describe() component.Description {
	details := c.cfg.BaseURL
	if c.cfg.Timeout > 0 {
		details += " timeout=" + c.cfg.Timeout.String()
	}
	return component.Description{Name: "REST " + c.cfg.Name, Type: "rest", Details: details}
}

// Connection returns the running connection, or nil before Start.
func (c *Component) Connection() *Connection {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.conn
}
