package rest

import (
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/kbukum/restfulcore/errors"
)

func TestDecode(t *testing.T) {
	p, err := Decode[Player]([]byte(`{"playerId":1,"playerName":"Mickey Mouse"}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if p.ID != 1 || p.Name != "Mickey Mouse" {
		t.Errorf("got %+v", p)
	}
}

func TestDecode_LargeIDKeepsPrecision(t *testing.T) {
	p, err := Decode[Player]([]byte(`{"playerId":9007199254740993,"playerName":"x"}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if p.ID != 9007199254740993 {
		t.Errorf("ID = %d", p.ID)
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	players := []Player{
		{ID: 1, Name: "Mickey Mouse"},
		{ID: 0, Name: ""},
		{ID: -42, Name: "Ünïcödé \"quoted\""},
	}
	for _, want := range players {
		data, err := json.Marshal(want)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		got, err := Decode[Player](data)
		if err != nil {
			t.Fatalf("Decode(%s): %v", data, err)
		}
		if *got != want {
			t.Errorf("round trip = %+v, want %+v", *got, want)
		}
	}
}

func TestDecode_Failures(t *testing.T) {
	tests := []struct {
		name string
		body string
		code errors.ErrorCode
		hint string
	}{
		{"array where object expected", `[{"playerId":1,"playerName":"a"}]`, errors.ErrCodeInvalidFormat, "JSON object"},
		{"not json", `<html>oops</html>`, errors.ErrCodeInvalidFormat, "JSON"},
		{"trailing data", `{"playerId":1,"playerName":"a"} {}`, errors.ErrCodeInvalidFormat, "single JSON value"},
		{"null", `null`, errors.ErrCodeInvalidFormat, "JSON object"},
		{"missing field", `{"playerId":1}`, errors.ErrCodeMissingField, "playerName"},
		{"wrong type", `{"playerId":"one","playerName":"a"}`, errors.ErrCodeInvalidFormat, "playerId"},
		{"fractional id", `{"playerId":1.5,"playerName":"a"}`, errors.ErrCodeInvalidFormat, "playerId"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode[Player]([]byte(tt.body))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.HasCode(err, tt.code) {
				t.Errorf("expected %s, got %v", tt.code, err)
			}
			if !strings.Contains(err.Error(), tt.hint) {
				t.Errorf("error %q does not mention %q", err, tt.hint)
			}
		})
	}
}

func TestDecodeList(t *testing.T) {
	list, err := DecodeList[Player]([]byte(`[{"playerId":1,"playerName":"a"},{"playerId":2,"playerName":"b"}]`))
	if err != nil {
		t.Fatalf("DecodeList: %v", err)
	}
	if len(list) != 2 || list[1].ID != 2 || list[1].Name != "b" {
		t.Errorf("got %+v", list)
	}

	empty, err := DecodeList[Player]([]byte(`[]`))
	if err != nil || len(empty) != 0 {
		t.Errorf("empty list = %v, %v", empty, err)
	}
}

func TestDecodeList_Failures(t *testing.T) {
	if _, err := DecodeList[Player]([]byte(`{"playerId":1,"playerName":"a"}`)); !errors.HasCode(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("object where array expected: %v", err)
	}
	if _, err := DecodeList[Player]([]byte(`[1,2]`)); !errors.HasCode(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("non-object elements: %v", err)
	}
	_, err := DecodeList[Player]([]byte(`[{"playerId":1,"playerName":"a"},{"playerId":2}]`))
	if !errors.HasCode(err, errors.ErrCodeMissingField) || !strings.Contains(err.Error(), "element 1") {
		t.Errorf("bad element: %v", err)
	}
}

func TestFields(t *testing.T) {
	f := Fields{
		"s":     "text",
		"n":     json.Number("42"),
		"big":   json.Number("9223372036854775807"),
		"float": json.Number("2.5"),
		"b":     true,
		"null":  nil,
		"tags":  []any{"a", "b"},
		"mixed": []any{"a", json.Number("1")},
		"obj":   map[string]any{"k": "v"},
		"objs":  []any{map[string]any{"k": "1"}, map[string]any{"k": "2"}},
	}

	if !f.Has("s") || f.Has("null") || f.Has("absent") {
		t.Error("Has returned wrong presence")
	}
	if s, err := f.String("s"); err != nil || s != "text" {
		t.Errorf("String = %q, %v", s, err)
	}
	if s, err := f.OptString("null", "def"); err != nil || s != "def" {
		t.Errorf("OptString = %q, %v", s, err)
	}
	if n, err := f.Int("n"); err != nil || n != 42 {
		t.Errorf("Int = %d, %v", n, err)
	}
	if n, err := f.Int64("big"); err != nil || n != 9223372036854775807 {
		t.Errorf("Int64 = %d, %v", n, err)
	}
	if n, err := f.OptInt64("absent", 7); err != nil || n != 7 {
		t.Errorf("OptInt64 = %d, %v", n, err)
	}
	if n, err := f.OptInt("n", 7); err != nil || n != 42 {
		t.Errorf("OptInt = %d, %v", n, err)
	}
	if x, err := f.Float64("float"); err != nil || x != 2.5 {
		t.Errorf("Float64 = %v, %v", x, err)
	}
	if b, err := f.Bool("b"); err != nil || !b {
		t.Errorf("Bool = %v, %v", b, err)
	}
	if b, err := f.OptBool("absent", true); err != nil || !b {
		t.Errorf("OptBool = %v, %v", b, err)
	}
	if tags, err := f.Strings("tags"); err != nil || len(tags) != 2 || tags[1] != "b" {
		t.Errorf("Strings = %v, %v", tags, err)
	}
	if obj, err := f.Object("obj"); err != nil || obj["k"] != "v" {
		t.Errorf("Object = %v, %v", obj, err)
	}
	if objs, err := f.Objects("objs"); err != nil || len(objs) != 2 || objs[1]["k"] != "2" {
		t.Errorf("Objects = %v, %v", objs, err)
	}

	failures := []struct {
		name string
		err  error
		code errors.ErrorCode
	}{
		{"missing string", errOf(f.String("absent")), errors.ErrCodeMissingField},
		{"null string", errOf(f.String("null")), errors.ErrCodeMissingField},
		{"string as int", errOf(f.Int64("s")), errors.ErrCodeInvalidFormat},
		{"fraction as int", errOf(f.Int("float")), errors.ErrCodeInvalidFormat},
		{"number as bool", errOf(f.Bool("n")), errors.ErrCodeInvalidFormat},
		{"wrong opt type", errOf(f.OptBool("s", false)), errors.ErrCodeInvalidFormat},
		{"mixed strings", errOf(f.Strings("mixed")), errors.ErrCodeInvalidFormat},
		{"string as object", errOf(f.Object("s")), errors.ErrCodeInvalidFormat},
		{"strings as objects", errOf(f.Objects("tags")), errors.ErrCodeInvalidFormat},
		{"bool as float", errOf(f.Float64("b")), errors.ErrCodeInvalidFormat},
	}
	for _, tc := range failures {
		if !errors.HasCode(tc.err, tc.code) {
			t.Errorf("%s: expected %s, got %v", tc.name, tc.code, tc.err)
		}
	}

	appErr, _ := errors.AsAppError(errOf(f.Int64("s")))
	if appErr.Field() != "s" {
		t.Errorf("Field() = %q", appErr.Field())
	}
}

func TestFields_IntegralFloatNotation(t *testing.T) {
	f, err := parseObject([]byte(`{"one":1.0,"hundred":1e2,"half":0.5,"huge":1e300}`))
	if err != nil {
		t.Fatalf("parseObject: %v", err)
	}
	if n, err := f.Int64("one"); err != nil || n != 1 {
		t.Errorf("Int64(1.0) = %d, %v", n, err)
	}
	if n, err := f.Int("hundred"); err != nil || n != 100 {
		t.Errorf("Int(1e2) = %d, %v", n, err)
	}
	for _, key := range []string{"half", "huge"} {
		if _, err := f.Int64(key); !errors.HasCode(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("Int64(%s): expected INVALID_FORMAT, got %v", key, err)
		}
	}
}

func errOf(_ any, err error) error {
	return err
}

func TestFromFields(t *testing.T) {
	p, err := FromFields[Player](Fields{"playerId": float64(3), "playerName": "Goofy"})
	if err != nil {
		t.Fatalf("FromFields: %v", err)
	}
	if p.ID != 3 || p.Name != "Goofy" {
		t.Errorf("got %+v", p)
	}
}
