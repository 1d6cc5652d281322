package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestAppError_New_Success(t *testing.T) {
	err := New(ErrCodeInvalidConfig, "bad config")
	if err.Code != ErrCodeInvalidConfig {
		t.Errorf("expected code %s, got %s", ErrCodeInvalidConfig, err.Code)
	}
	if err.Message != "bad config" {
		t.Errorf("expected message 'bad config', got %q", err.Message)
	}
}

func TestAppError_MissingField_Success(t *testing.T) {
	err := MissingField("playerId")
	if err.Code != ErrCodeMissingField {
		t.Errorf("expected MISSING_FIELD, got %s", err.Code)
	}
	if err.Field() != "playerId" {
		t.Errorf("expected field=playerId, got %q", err.Field())
	}
	if !strings.Contains(err.Error(), "playerId") {
		t.Errorf("Error() should name the field, got %q", err.Error())
	}
}

func TestAppError_InvalidFormat_Success(t *testing.T) {
	err := InvalidFormat("page", "integer")
	if err.Code != ErrCodeInvalidFormat {
		t.Errorf("expected INVALID_FORMAT, got %s", err.Code)
	}
	if err.Details["expected_format"] != "integer" {
		t.Errorf("expected expected_format=integer, got %v", err.Details["expected_format"])
	}
	if err.Field() != "page" {
		t.Errorf("expected field=page, got %q", err.Field())
	}
}

func TestAppError_InvalidInput_Success(t *testing.T) {
	err := InvalidInput("base_url", "must be absolute")
	if err.Code != ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %s", err.Code)
	}
	if err.Details["field"] != "base_url" {
		t.Errorf("expected field=base_url, got %v", err.Details["field"])
	}
}

func TestAppError_InvalidInput_EmptyField(t *testing.T) {
	err := InvalidInput("", "nope")
	if _, ok := err.Details["field"]; ok {
		t.Error("expected no 'field' key in details when field is empty")
	}
	if err.Field() != "" {
		t.Errorf("expected empty Field(), got %q", err.Field())
	}
}

func TestAppError_WithCause_Chain(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := InvalidConfig("load failed").WithCause(cause)
	if err.Cause != cause {
		t.Error("expected cause to be set via WithCause")
	}
	if !strings.Contains(err.Error(), "root cause") {
		t.Errorf("Error() should contain cause, got %q", err.Error())
	}
}

func TestAppError_WithDetails_Merge(t *testing.T) {
	err := MissingField("name").WithDetails(map[string]any{
		"extra": "info",
	})
	if err.Details["extra"] != "info" {
		t.Errorf("expected extra=info in details")
	}
	if err.Details["field"] != "name" {
		t.Error("expected original details to be preserved")
	}
}

func TestAppError_WithDetails_Nil(t *testing.T) {
	err := Internal(nil).WithDetails(nil)
	if err.Details == nil {
		t.Fatal("expected Details map to be initialized even with nil input")
	}
}

func TestAppError_WithDetail_NilMap(t *testing.T) {
	err := &AppError{}
	err.WithDetail("key", "value")
	if err.Details["key"] != "value" {
		t.Errorf("expected key=value, got %v", err.Details["key"])
	}
	err.WithDetail("key", "other")
	if err.Details["key"] != "other" {
		t.Errorf("expected key=other after overwrite, got %v", err.Details["key"])
	}
}

func TestAppError_Unwrap_Success(t *testing.T) {
	cause := fmt.Errorf("underlying")
	if Internal(cause).Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}
	if MissingField("x").Unwrap() != nil {
		t.Error("Unwrap should return nil when no cause")
	}
}

func TestIsFieldCode_Table(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want bool
	}{
		{ErrCodeMissingField, true},
		{ErrCodeInvalidFormat, true},
		{ErrCodeInvalidInput, false},
		{ErrCodeInvalidConfig, false},
		{ErrCodeInternal, false},
	}
	for _, tc := range tests {
		t.Run(string(tc.code), func(t *testing.T) {
			if got := IsFieldCode(tc.code); got != tc.want {
				t.Errorf("IsFieldCode(%s) = %v, want %v", tc.code, got, tc.want)
			}
		})
	}
}

func TestAppError_AsAppError_Success(t *testing.T) {
	wrapped := fmt.Errorf("wrap: %w", MissingField("id"))

	got, ok := AsAppError(wrapped)
	if !ok {
		t.Fatal("expected AsAppError to succeed for wrapped AppError")
	}
	if got.Code != ErrCodeMissingField {
		t.Errorf("expected MISSING_FIELD, got %s", got.Code)
	}
	if !IsAppError(wrapped) {
		t.Error("expected IsAppError to be true for wrapped AppError")
	}
	if _, ok := AsAppError(fmt.Errorf("plain")); ok {
		t.Error("expected AsAppError to return false for non-AppError")
	}
}

func TestHasCode(t *testing.T) {
	err := fmt.Errorf("decode: %w", InvalidFormat("page", "integer"))
	if !HasCode(err, ErrCodeInvalidFormat) {
		t.Error("expected HasCode to find INVALID_FORMAT")
	}
	if HasCode(err, ErrCodeMissingField) {
		t.Error("expected HasCode to reject MISSING_FIELD")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil) != nil {
		t.Error("Wrap(nil) should return nil")
	}

	orig := MissingField("id")
	if Wrap(orig) != orig {
		t.Error("Wrap should return the original AppError unchanged")
	}

	plain := fmt.Errorf("something broke")
	got := Wrap(plain)
	if got.Code != ErrCodeInternal {
		t.Errorf("expected INTERNAL_ERROR, got %s", got.Code)
	}
	if got.Cause != plain {
		t.Error("expected cause to be the original error")
	}
}

func TestAppError_ImplementsErrorInterface(t *testing.T) {
	var err error = MissingField("name")
	var appErr *AppError
	if !stderrors.As(err, &appErr) {
		t.Error("stderrors.As should work with AppError")
	}
}

func TestUnavailable(t *testing.T) {
	err := Unavailable("rest players: connection is closed")
	if err.Code != ErrCodeUnavailable || !HasCode(err, ErrCodeUnavailable) {
		t.Errorf("code = %s", err.Code)
	}
	if IsFieldCode(err.Code) {
		t.Error("UNAVAILABLE is not a field code")
	}
}
