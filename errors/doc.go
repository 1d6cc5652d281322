// Package errors provides the structured error type used for configuration,
// validation and field-level decode failures.
//
// Transport and dispatch failures use httpclient.Error instead; an AppError
// may appear as the cause of one (for example a missing field wrapped in a
// decode failure).
package errors
