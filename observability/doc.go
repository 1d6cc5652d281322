// Package observability wires OpenTelemetry tracing and metrics into REST
// calls.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("players-client"))
//	defer tp.Shutdown(ctx)
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("players-client"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("players-client"))
//
// Each dispatched request is tracked by a Call, which opens a span and
// records request metrics when it ends:
//
//	ctx, call := observability.StartCall(ctx, tracer, metrics, "players", "GET", url)
//	defer call.End(ctx, status, "value", err)
package observability
