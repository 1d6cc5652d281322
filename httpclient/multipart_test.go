package httpclient

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"strings"
	"testing"
)

type decodedPart struct {
	name        string
	fileName    string
	contentType string
	data        string
}

func readParts(t *testing.T, r io.Reader, contentType string) (string, []decodedPart) {
	t.Helper()
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		t.Fatalf("ParseMediaType error: %v", err)
	}
	if mediaType != "multipart/form-data" {
		t.Fatalf("media type = %q, want multipart/form-data", mediaType)
	}

	mr := multipart.NewReader(r, params["boundary"])
	var parts []decodedPart
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("NextPart error: %v", err)
		}
		data, _ := io.ReadAll(part)
		parts = append(parts, decodedPart{
			name:        part.FormName(),
			fileName:    part.FileName(),
			contentType: part.Header.Get("Content-Type"),
			data:        string(data),
		})
	}
	return params["boundary"], parts
}

func TestMultipartBody_PreservesOrder(t *testing.T) {
	mp := NewMultipartBody().
		Add("zeta", "last-alphabetically").
		Add("alpha", "first-alphabetically").
		AddFile("avatar", "mickey.png", "image/png", []byte{0x89, 'P', 'N', 'G'}).
		AddFileReader("notes", "notes.txt", "", strings.NewReader("hello"))

	if mp.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", mp.Len())
	}

	reader, contentType, err := mp.Encode()
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	_, parts := readParts(t, reader, contentType)

	want := []decodedPart{
		{name: "zeta", data: "last-alphabetically"},
		{name: "alpha", data: "first-alphabetically"},
		{name: "avatar", fileName: "mickey.png", contentType: "image/png", data: "\x89PNG"},
		{name: "notes", fileName: "notes.txt", contentType: "application/octet-stream", data: "hello"},
	}
	if len(parts) != len(want) {
		t.Fatalf("got %d parts, want %d", len(parts), len(want))
	}
	for i := range want {
		if parts[i] != want[i] {
			t.Errorf("part[%d] = %+v, want %+v", i, parts[i], want[i])
		}
	}
}

func TestMultipartBody_UUIDBoundary(t *testing.T) {
	_, ct1, err := NewMultipartBody().Add("a", "1").Encode()
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	_, ct2, err := NewMultipartBody().Add("a", "1").Encode()
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	_, p1, _ := mime.ParseMediaType(ct1)
	_, p2, _ := mime.ParseMediaType(ct2)
	if !strings.HasPrefix(p1["boundary"], "Boundary-") {
		t.Errorf("unexpected boundary %q", p1["boundary"])
	}
	if p1["boundary"] == p2["boundary"] {
		t.Error("expected a fresh boundary per encode")
	}
}

func TestMultipartBody_WireFormat(t *testing.T) {
	mp := &MultipartBody{Boundary: "fixed-boundary"}
	mp.Add("playerName", "Mickey Mouse")

	reader, contentType, err := mp.Encode()
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if contentType != "multipart/form-data; boundary=fixed-boundary" {
		t.Errorf("content type = %q", contentType)
	}

	raw, _ := io.ReadAll(reader)
	body := string(raw)
	for _, fragment := range []string{
		"--fixed-boundary\r\n",
		`Content-Disposition: form-data; name="playerName"`,
		"\r\n\r\nMickey Mouse\r\n",
		"--fixed-boundary--",
	} {
		if !strings.Contains(body, fragment) {
			t.Errorf("body missing %q:\n%s", fragment, body)
		}
	}
}

func TestMultipartBody_EscapesQuotes(t *testing.T) {
	mp := NewMultipartBody().AddFile(`fi"le`, `na\me.txt`, "text/plain", []byte("x"))
	reader, _, err := mp.Encode()
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	raw, _ := io.ReadAll(reader)
	if !bytes.Contains(raw, []byte(`name="fi\"le"; filename="na\\me.txt"`)) {
		t.Errorf("quotes not escaped:\n%s", raw)
	}
}

func TestMultipartBody_Empty(t *testing.T) {
	reader, contentType, err := NewMultipartBody().Encode()
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	_, parts := readParts(t, reader, contentType)
	if len(parts) != 0 {
		t.Errorf("expected no parts, got %d", len(parts))
	}
}
