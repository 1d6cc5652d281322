package httpclient

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"

	"github.com/google/uuid"
)

// MultipartBody represents a multipart/form-data request body. Parts are
// written in the order they were added.
type MultipartBody struct {
	// Boundary separates parts. A random UUID-based boundary is used when empty.
	Boundary string

	parts []formPart
}

type formPart struct {
	name        string
	fileName    string
	contentType string
	data        []byte
	reader      io.Reader
}

// NewMultipartBody creates an empty multipart body.
func NewMultipartBody() *MultipartBody {
	return &MultipartBody{}
}

// Add appends a plain form field.
func (m *MultipartBody) Add(name, value string) *MultipartBody {
	m.parts = append(m.parts, formPart{name: name, data: []byte(value)})
	return m
}

// AddFile appends a file part. An empty contentType means application/octet-stream.
func (m *MultipartBody) AddFile(name, fileName, contentType string, data []byte) *MultipartBody {
	m.parts = append(m.parts, formPart{name: name, fileName: fileName, contentType: contentType, data: data})
	return m
}

// AddFileReader appends a file part streamed from r.
func (m *MultipartBody) AddFileReader(name, fileName, contentType string, r io.Reader) *MultipartBody {
	m.parts = append(m.parts, formPart{name: name, fileName: fileName, contentType: contentType, reader: r})
	return m
}

// Len returns the number of parts.
func (m *MultipartBody) Len() int {
	return len(m.parts)
}

// Encode builds the body and returns it with its Content-Type header value.
func (m *MultipartBody) Encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	boundary := m.Boundary
	if boundary == "" {
		boundary = "Boundary-" + strings.ToUpper(uuid.NewString())
	}
	if err := w.SetBoundary(boundary); err != nil {
		return nil, "", err
	}

	for _, p := range m.parts {
		if err := writePart(w, p); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

func writePart(w *multipart.Writer, p formPart) error {
	var part io.Writer
	var err error

	switch {
	case p.fileName == "":
		part, err = w.CreateFormField(p.name)
	case p.contentType != "":
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition",
			`form-data; name="`+escapeQuotes(p.name)+`"; filename="`+escapeQuotes(p.fileName)+`"`)
		header.Set("Content-Type", p.contentType)
		part, err = w.CreatePart(header)
	default:
		part, err = w.CreateFormFile(p.name, p.fileName)
	}
	if err != nil {
		return err
	}

	if p.reader != nil {
		_, err = io.Copy(part, p.reader)
		return err
	}
	_, err = part.Write(p.data)
	return err
}

// escapeQuotes replaces special characters in header values.
func escapeQuotes(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}
