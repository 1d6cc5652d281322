package rest

import (
	"math"

	"github.com/goccy/go-json"

	"github.com/kbukum/restfulcore/errors"
)

// Fields is one decoded JSON object. Numbers are kept as json.Number so
// 64-bit identifiers survive decoding.
type Fields map[string]any

// Has reports whether key is present with a non-null value.
func (f Fields) Has(key string) bool {
	v, ok := f[key]
	return ok && v != nil
}

func (f Fields) lookup(key string) (any, *errors.AppError) {
	v, ok := f[key]
	if !ok || v == nil {
		return nil, errors.MissingField(key)
	}
	return v, nil
}

// String returns a required string field.
func (f Fields) String(key string) (string, error) {
	v, err := f.lookup(key)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", errors.InvalidFormat(key, "string")
	}
	return s, nil
}

// OptString returns a string field, or def when it is absent or null.
func (f Fields) OptString(key, def string) (string, error) {
	if !f.Has(key) {
		return def, nil
	}
	return f.String(key)
}

// Int64 returns a required integer field.
func (f Fields) Int64(key string) (int64, error) {
	v, err := f.lookup(key)
	if err != nil {
		return 0, err
	}
	n, ok := toInt64(v)
	if !ok {
		return 0, errors.InvalidFormat(key, "integer")
	}
	return n, nil
}

// OptInt64 returns an integer field, or def when it is absent or null.
func (f Fields) OptInt64(key string, def int64) (int64, error) {
	if !f.Has(key) {
		return def, nil
	}
	return f.Int64(key)
}

// Int returns a required integer field that fits in an int.
func (f Fields) Int(key string) (int, error) {
	n, err := f.Int64(key)
	if err != nil {
		return 0, err
	}
	if n < math.MinInt || n > math.MaxInt {
		return 0, errors.InvalidFormat(key, "int")
	}
	return int(n), nil
}

// OptInt returns an int field, or def when it is absent or null.
func (f Fields) OptInt(key string, def int) (int, error) {
	if !f.Has(key) {
		return def, nil
	}
	return f.Int(key)
}

// Float64 returns a required numeric field.
func (f Fields) Float64(key string) (float64, error) {
	v, err := f.lookup(key)
	if err != nil {
		return 0, err
	}
	switch n := v.(type) {
	case json.Number:
		x, perr := n.Float64()
		if perr != nil {
			return 0, errors.InvalidFormat(key, "number").WithCause(perr)
		}
		return x, nil
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	}
	return 0, errors.InvalidFormat(key, "number")
}

// Bool returns a required boolean field.
func (f Fields) Bool(key string) (bool, error) {
	v, err := f.lookup(key)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, errors.InvalidFormat(key, "boolean")
	}
	return b, nil
}

// OptBool returns a boolean field, or def when it is absent or null.
func (f Fields) OptBool(key string, def bool) (bool, error) {
	if !f.Has(key) {
		return def, nil
	}
	return f.Bool(key)
}

// Strings returns a required array-of-strings field.
func (f Fields) Strings(key string) ([]string, error) {
	v, err := f.lookup(key)
	if err != nil {
		return nil, err
	}
	items, ok := v.([]any)
	if !ok {
		return nil, errors.InvalidFormat(key, "array of strings")
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, errors.InvalidFormat(key, "array of strings")
		}
		out = append(out, s)
	}
	return out, nil
}

// Object returns a required nested object field.
func (f Fields) Object(key string) (Fields, error) {
	v, err := f.lookup(key)
	if err != nil {
		return nil, err
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, errors.InvalidFormat(key, "object")
	}
	return Fields(m), nil
}

// Objects returns a required array-of-objects field.
func (f Fields) Objects(key string) ([]Fields, error) {
	v, err := f.lookup(key)
	if err != nil {
		return nil, err
	}
	items, ok := v.([]any)
	if !ok {
		return nil, errors.InvalidFormat(key, "array of objects")
	}
	out := make([]Fields, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, errors.InvalidFormat(key, "array of objects")
		}
		out = append(out, Fields(m))
	}
	return out, nil
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		// 1.0 and 1e2 are integers written in float notation.
		x, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt64(x)
	case float64:
		return floatToInt64(n)
	case int:
		return int64(n), true
	case int64:
		return n, true
	}
	return 0, false
}

func floatToInt64(x float64) (int64, bool) {
	if x != math.Trunc(x) || x < math.MinInt64 || x >= math.MaxInt64 {
		return 0, false
	}
	return int64(x), true
}
