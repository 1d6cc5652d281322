package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/kbukum/restfulcore/errors"
)

type endpointConfig struct {
	BaseURL string        `mapstructure:"base_url" validate:"required,httpurl"`
	Timeout time.Duration `mapstructure:"timeout" validate:"gte=0"`
	Mode    string        `mapstructure:"mode" validate:"omitempty,oneof=json multipart"`
}

func TestValidate_Valid(t *testing.T) {
	cfg := endpointConfig{BaseURL: "https://api.example.com/", Timeout: time.Second, Mode: "json"}
	if err := Validate(cfg); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

func TestValidate_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		cfg     endpointConfig
		field   string
		message string
	}{
		{"missing base url", endpointConfig{}, "base_url", "is required"},
		{"relative base url", endpointConfig{BaseURL: "/api"}, "base_url", "absolute http(s) URL"},
		{"ftp base url", endpointConfig{BaseURL: "ftp://host/"}, "base_url", "absolute http(s) URL"},
		{"negative timeout", endpointConfig{BaseURL: "http://host", Timeout: -time.Second}, "timeout", "at least 0"},
		{"unknown mode", endpointConfig{BaseURL: "http://host", Mode: "xml"}, "mode", "one of"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.cfg)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("expected error to mention %q, got %q", tc.field, err.Error())
			}
			if !strings.Contains(err.Error(), tc.message) {
				t.Errorf("expected error to contain %q, got %q", tc.message, err.Error())
			}

			appErr, ok := errors.AsAppError(err)
			if !ok {
				t.Fatalf("expected *errors.AppError, got %T", err)
			}
			if appErr.Code != errors.ErrCodeInvalidInput {
				t.Errorf("expected INVALID_INPUT, got %s", appErr.Code)
			}
			fields, ok := appErr.Details["fields"].([]FieldError)
			if !ok || len(fields) == 0 {
				t.Fatalf("expected field errors in details, got %v", appErr.Details["fields"])
			}
			if fields[0].Field != tc.field {
				t.Errorf("expected field %q, got %q", tc.field, fields[0].Field)
			}
		})
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := map[string]string{
		"BaseURL":       "base_u_r_l",
		"Timeout":       "timeout",
		"AcceptCookies": "accept_cookies",
	}
	for in, want := range tests {
		if got := toSnakeCase(in); got != want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}
