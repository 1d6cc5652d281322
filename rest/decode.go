package rest

import (
	"bytes"
	"fmt"
	"io"

	"github.com/goccy/go-json"

	"github.com/kbukum/restfulcore/errors"
)

// Object is the construction capability a domain type provides: *T fills
// itself from a decoded JSON object. The zero T is its empty state, and
// encoding uses the type's regular JSON marshalling.
type Object[T any] interface {
	*T
	FromJSON(Fields) error
}

// Decode parses data as a single JSON object and constructs a T from it.
func Decode[T any, PT Object[T]](data []byte) (*T, error) {
	f, err := parseObject(data)
	if err != nil {
		return nil, err
	}
	return construct[T, PT](f)
}

// DecodeList parses data as a JSON array of objects and constructs a T from
// each element.
func DecodeList[T any, PT Object[T]](data []byte) ([]T, error) {
	root, err := parse(data)
	if err != nil {
		return nil, err
	}
	items, ok := root.([]any)
	if !ok {
		return nil, shapeError("JSON array", root)
	}
	return constructAll[T, PT](items)
}

// FromFields constructs a T from an already decoded object.
func FromFields[T any, PT Object[T]](f Fields) (*T, error) {
	return construct[T, PT](f)
}

func construct[T any, PT Object[T]](f Fields) (*T, error) {
	var v T
	if err := PT(&v).FromJSON(f); err != nil {
		return nil, err
	}
	return &v, nil
}

func constructAll[T any, PT Object[T]](items []any) ([]T, error) {
	out := make([]T, 0, len(items))
	for i, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, shapeError(fmt.Sprintf("JSON object at index %d", i), item)
		}
		v, err := construct[T, PT](Fields(m))
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out = append(out, *v)
	}
	return out, nil
}

func parseObject(data []byte) (Fields, error) {
	root, err := parse(data)
	if err != nil {
		return nil, err
	}
	m, ok := root.(map[string]any)
	if !ok {
		return nil, shapeError("JSON object", root)
	}
	return Fields(m), nil
}

// parse decodes exactly one JSON value, keeping numbers as json.Number.
func parse(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var root any
	if err := dec.Decode(&root); err != nil {
		return nil, errors.InvalidFormat("body", "JSON").WithCause(err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, errors.InvalidFormat("body", "a single JSON value")
	}
	return root, nil
}

func shapeError(expected string, got any) error {
	return errors.InvalidFormat("body", expected).WithDetail("got", jsonKind(got))
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, float64:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}
