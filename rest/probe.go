package rest

import (
	"context"
	"fmt"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/kbukum/restfulcore/httpclient"
	"github.com/kbukum/restfulcore/logger"
	"github.com/kbukum/restfulcore/observability"
)

// Probe sends HEAD to the connection root and reports whether the host
// answered with a 2xx or 3xx status.
func (c *Connection) Probe(ctx context.Context) bool {
	ok, _ := c.probe(ctx)
	return ok
}

// probe returns the availability and, when unavailable, the reason.
func (c *Connection) probe(ctx context.Context) (bool, string) {
	t := c.begin()

	ctx, span := c.tracer.Start(ctx, observability.SpanProbe)
	defer span.End()
	span.SetAttributes(
		attribute.String(observability.AttrConnection, c.name),
		attribute.String(observability.AttrHTTPURL, c.root),
	)

	resp, err := c.adapter.Do(ctx, httpclient.Request{Method: http.MethodHead, Path: c.root})
	if err != nil {
		reason := fmt.Sprintf("host %s is unreachable: %v", c.root, err)
		t.note(reason)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.log.WithContext(ctx).Debug("probe failed", logger.MergeWithError(logger.Fields(logger.FieldURL, c.root), err))
		return false, reason
	}

	span.SetAttributes(attribute.Int(observability.AttrHTTPStatus, resp.StatusCode))
	if resp.StatusCode >= 200 && resp.StatusCode < 400 {
		return true, ""
	}
	reason := fmt.Sprintf("host %s answered probe with status code %d", c.root, resp.StatusCode)
	t.note(reason)
	return false, reason
}
