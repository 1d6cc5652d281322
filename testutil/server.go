package testutil

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"

	"github.com/kbukum/restfulcore/component"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// Reply is a scripted response.
type Reply struct {
	Status int
	Body   string
	Header map[string]string
	// Delay holds the reply back, for concurrency and timeout tests.
	Delay time.Duration
}

// RecordedRequest is a request the server received.
type RecordedRequest struct {
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
	Body     []byte
}

// Server is a scripted REST server backed by httptest.Server.
type Server struct {
	engine *gin.Engine
	ts     *httptest.Server

	mu       sync.RWMutex
	replies  map[string]Reply
	requests []RecordedRequest
}

var _ component.Component = (*Server)(nil)

// NewServer starts a server and closes it when the test ends.
func NewServer(t testing.TB) *Server {
	t.Helper()
	s := NewUnstarted()
	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("testutil: start server: %v", err)
	}
	t.Cleanup(func() { _ = s.Stop(context.Background()) })
	return s
}

// NewUnstarted creates a server that is started through the component
// lifecycle.
func NewUnstarted() *Server {
	s := &Server{replies: make(map[string]Reply)}
	s.engine = gin.New()
	s.engine.Use(gin.Recovery())
	s.engine.NoRoute(s.serve)
	return s
}

func key(method, path string) string {
	return method + " " + path
}

// Script sets the reply for method and path.
func (s *Server) Script(method, path string, r Reply) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replies[key(method, path)] = r
}

// Reply scripts a status and raw body for method and path.
func (s *Server) Reply(method, path string, status int, body string) {
	s.Script(method, path, Reply{Status: status, Body: body})
}

// ReplyJSON scripts a status and a JSON-encoded body for method and path.
func (s *Server) ReplyJSON(method, path string, status int, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.Script(method, path, Reply{
		Status: status,
		Body:   string(data),
		Header: map[string]string{"Content-Type": "application/json"},
	})
	return nil
}

func (s *Server) serve(c *gin.Context) {
	body, _ := io.ReadAll(c.Request.Body)

	s.mu.Lock()
	s.requests = append(s.requests, RecordedRequest{
		Method:   c.Request.Method,
		Path:     c.Request.URL.Path,
		RawQuery: c.Request.URL.RawQuery,
		Header:   c.Request.Header.Clone(),
		Body:     body,
	})
	r, ok := s.replies[key(c.Request.Method, c.Request.URL.Path)]
	s.mu.Unlock()

	if !ok {
		c.String(http.StatusNotFound, "no route")
		return
	}

	if r.Delay > 0 {
		select {
		case <-time.After(r.Delay):
		case <-c.Request.Context().Done():
			return
		}
	}

	contentType := "application/json"
	for k, v := range r.Header {
		if http.CanonicalHeaderKey(k) == "Content-Type" {
			contentType = v
			continue
		}
		c.Header(k, v)
	}
	c.Data(r.Status, contentType, []byte(r.Body))
}

// Requests returns every request received so far.
func (s *Server) Requests() []RecordedRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]RecordedRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

// LastRequest returns the most recent request.
func (s *Server) LastRequest() (RecordedRequest, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.requests) == 0 {
		return RecordedRequest{}, false
	}
	return s.requests[len(s.requests)-1], true
}

// Count returns how many requests hit method and path.
func (s *Server) Count(method, path string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, r := range s.requests {
		if r.Method == method && r.Path == path {
			n++
		}
	}
	return n
}

// URL returns the server base URL without a trailing slash, or "" before Start.
func (s *Server) URL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.ts == nil {
		return ""
	}
	return s.ts.URL
}

// Root returns the server base URL with a trailing slash.
func (s *Server) Root() string {
	return s.URL() + "/"
}

// Reset drops scripted replies and recorded requests.
func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replies = make(map[string]Reply)
	s.requests = nil
}

// --- component.Component ---

func (s *Server) Name() string { return "rest-test-server" }

func (s *Server) Start(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ts != nil {
		return fmt.Errorf("testutil: server already started")
	}
	s.ts = httptest.NewServer(s.engine)
	return nil
}

func (s *Server) Stop(_ context.Context) error {
	s.mu.Lock()
	ts := s.ts
	s.ts = nil
	s.mu.Unlock()
	if ts != nil {
		ts.Close()
	}
	return nil
}

func (s *Server) Health(_ context.Context) component.Health {
	if s.URL() == "" {
		return component.Health{Name: s.Name(), Status: component.StatusUnhealthy, Message: "not started"}
	}
	return component.Health{Name: s.Name(), Status: component.StatusHealthy}
}
