package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Call tracks one outbound request from send to classification.
type Call struct {
	Connection string
	Method     string
	URL        string
	StartTime  time.Time

	span    trace.Span
	metrics *Metrics
}

// StartCall opens a dispatch span on tracer and records the request start.
// A nil tracer uses the global one; nil metrics skips metric recording.
func StartCall(ctx context.Context, tracer trace.Tracer, metrics *Metrics, connection, method, url string) (context.Context, *Call) {
	if tracer == nil {
		tracer = Tracer()
	}
	ctx, span := tracer.Start(ctx, SpanDispatch,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String(AttrConnection, connection),
			attribute.String(AttrHTTPMethod, method),
			attribute.String(AttrHTTPURL, url),
		),
	)
	if metrics != nil {
		metrics.RecordRequestStart(ctx)
	}
	return ctx, &Call{
		Connection: connection,
		Method:     method,
		URL:        url,
		StartTime:  time.Now(),
		span:       span,
		metrics:    metrics,
	}
}

// Span returns the call's span.
func (c *Call) Span() trace.Span {
	return c.span
}

// Duration returns the elapsed time since the call started.
func (c *Call) Duration() time.Duration {
	return time.Since(c.StartTime)
}

// End closes the span and records request-end metrics. status is 0 when no
// response arrived; errCode names the failure class when err is set.
func (c *Call) End(ctx context.Context, status int, outcome string, errCode string, err error) {
	duration := c.Duration()

	if status > 0 {
		c.span.SetAttributes(attribute.Int(AttrHTTPStatus, status))
	}
	c.span.SetAttributes(
		attribute.String(AttrOutcome, outcome),
		attribute.Int64(AttrDurationMs, duration.Milliseconds()),
	)
	if err != nil {
		c.span.RecordError(err)
		c.span.SetAttributes(attribute.String(AttrErrorMessage, err.Error()))
		c.span.SetStatus(codes.Error, err.Error())
	}
	c.span.End()

	if c.metrics != nil {
		c.metrics.RecordRequestEnd(ctx, c.Connection, c.Method, status, outcome, duration)
		if err != nil {
			c.metrics.RecordError(ctx, errCode, c.Connection)
		}
	}
}
