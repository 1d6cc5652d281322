// Package logger provides structured logging using zerolog.
//
// It supports JSON and console output, level configuration, and
// component-scoped loggers with structured fields. Loggers derived with
// WithContext pick up the OpenTelemetry trace and span IDs of the active span.
//
// # Configuration
//
//	logger:
//	  level: "debug"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("rest")
//	log.Debug("dispatch", logger.Fields("method", "GET", "status_code", 200))
package logger
