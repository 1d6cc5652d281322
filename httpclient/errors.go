package httpclient

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies request failures.
type ErrorCode int

const (
	// ErrCodeRequest indicates the request could not be built (bad URL, bad method).
	ErrCodeRequest ErrorCode = iota
	// ErrCodeEncode indicates the request body could not be encoded.
	ErrCodeEncode
	// ErrCodeConnection indicates a connection failure (refused, DNS, reset).
	ErrCodeConnection
	// ErrCodeTimeout indicates a request or connection timeout.
	ErrCodeTimeout
	// ErrCodeEmptyResponse indicates a 200/201 response without a body.
	ErrCodeEmptyResponse
	// ErrCodeDecode indicates the response body did not have the expected shape.
	ErrCodeDecode
	// ErrCodeStatus indicates a status code outside the success set.
	ErrCodeStatus
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeRequest:
		return "request"
	case ErrCodeEncode:
		return "encode"
	case ErrCodeConnection:
		return "connection"
	case ErrCodeTimeout:
		return "timeout"
	case ErrCodeEmptyResponse:
		return "empty_response"
	case ErrCodeDecode:
		return "decode"
	case ErrCodeStatus:
		return "status"
	default:
		return "unknown"
	}
}

// Error is a structured HTTP client error with classification.
type Error struct {
	// StatusCode is the HTTP status code (0 when no response was received).
	StatusCode int
	// Code classifies the error.
	Code ErrorCode
	// Message describes the error.
	Message string
	// Body is the response body, if any.
	Body []byte
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("httpclient: %s (HTTP %d): %s", e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("httpclient: %s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewRequestError creates a request-construction error.
func NewRequestError(msg string, err error) *Error {
	return &Error{Code: ErrCodeRequest, Message: msg, Err: err}
}

// NewEncodeError creates a body-encoding error.
func NewEncodeError(err error) *Error {
	return &Error{Code: ErrCodeEncode, Message: err.Error(), Err: err}
}

// NewConnectionError creates a connection error.
func NewConnectionError(err error) *Error {
	return &Error{Code: ErrCodeConnection, Message: err.Error(), Err: err}
}

// NewTimeoutError creates a timeout error.
func NewTimeoutError(err error) *Error {
	return &Error{Code: ErrCodeTimeout, Message: err.Error(), Err: err}
}

// NewEmptyResponseError creates an error for a success status that carried no body.
func NewEmptyResponseError(statusCode int) *Error {
	return &Error{
		StatusCode: statusCode,
		Code:       ErrCodeEmptyResponse,
		Message:    "response body is empty",
	}
}

// NewDecodeError creates a response-shape error.
func NewDecodeError(statusCode int, err error) *Error {
	return &Error{StatusCode: statusCode, Code: ErrCodeDecode, Message: err.Error(), Err: err}
}

// NewStatusError creates an error for a status code outside the success set.
func NewStatusError(statusCode int, body []byte) *Error {
	return &Error{
		StatusCode: statusCode,
		Code:       ErrCodeStatus,
		Message:    fmt.Sprintf("HTTP %d %s", statusCode, http.StatusText(statusCode)),
		Body:       body,
	}
}

// StatusClass is what a status code means to a REST call.
type StatusClass int

const (
	// ClassBody is success with a body to decode (200, 201).
	ClassBody StatusClass = iota
	// ClassNoContent is success without a body (202, 204).
	ClassNoContent
	// ClassFailure is every other status code.
	ClassFailure
)

// String returns the class name.
func (c StatusClass) String() string {
	switch c {
	case ClassBody:
		return "body"
	case ClassNoContent:
		return "no_content"
	default:
		return "failure"
	}
}

// ClassifyStatus maps a status code to its class. It depends on the code only.
func ClassifyStatus(statusCode int) StatusClass {
	switch statusCode {
	case http.StatusOK, http.StatusCreated:
		return ClassBody
	case http.StatusAccepted, http.StatusNoContent:
		return ClassNoContent
	default:
		return ClassFailure
	}
}

func hasCode(err error, code ErrorCode) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}

// IsRequest checks if an error is a request-construction error.
func IsRequest(err error) bool { return hasCode(err, ErrCodeRequest) }

// IsEncode checks if an error is a body-encoding error.
func IsEncode(err error) bool { return hasCode(err, ErrCodeEncode) }

// IsConnection checks if an error is a connection error.
func IsConnection(err error) bool { return hasCode(err, ErrCodeConnection) }

// IsTimeout checks if an error is a timeout error.
func IsTimeout(err error) bool { return hasCode(err, ErrCodeTimeout) }

// IsEmptyResponse checks if an error is an empty-response error.
func IsEmptyResponse(err error) bool { return hasCode(err, ErrCodeEmptyResponse) }

// IsDecode checks if an error is a decode error.
func IsDecode(err error) bool { return hasCode(err, ErrCodeDecode) }

// IsStatus checks if an error is a failure status error.
func IsStatus(err error) bool { return hasCode(err, ErrCodeStatus) }

// IsTransport reports whether the request failed before any response arrived.
func IsTransport(err error) bool { return IsConnection(err) || IsTimeout(err) }

// StatusCodeOf returns the HTTP status carried by err, or 0.
func StatusCodeOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return 0
}
