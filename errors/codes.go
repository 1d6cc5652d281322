package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Input errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
	// ErrCodeInvalidFormat indicates a field holds a value of the wrong type or shape.
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
)

// Configuration errors
const (
	// ErrCodeInvalidConfig indicates configuration failed to load or validate.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
)

// Availability errors
const (
	// ErrCodeUnavailable indicates the resource no longer accepts work.
	ErrCodeUnavailable ErrorCode = "UNAVAILABLE"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected internal failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var fieldCodes = map[ErrorCode]bool{
	ErrCodeMissingField:  true,
	ErrCodeInvalidFormat: true,
}

// IsFieldCode reports whether the code describes a single offending field.
func IsFieldCode(code ErrorCode) bool {
	return fieldCodes[code]
}
