package httpclient

import "unicode/utf8"

// Request describes an outbound HTTP request.
type Request struct {
	// Method is the HTTP method (GET, POST, PUT, DELETE, HEAD).
	Method string
	// Path is resolved against the adapter's BaseURL unless it is already
	// an absolute http(s) URL.
	Path string
	// Headers are request-specific headers (merged over adapter defaults).
	Headers map[string]string
	// Body is the request body. Accepts *MultipartBody, io.Reader, []byte,
	// string, or any value that will be JSON-encoded.
	Body any
}

// Response is the result of an HTTP request.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers are the response headers.
	Headers map[string]string
	// Body is the raw response body.
	Body []byte
}

// Class classifies the response status code.
func (r *Response) Class() StatusClass {
	return ClassifyStatus(r.StatusCode)
}

// Snippet returns at most n bytes of the body as a string, cut on a rune
// boundary.
func (r *Response) Snippet(n int) string {
	if len(r.Body) <= n {
		return string(r.Body)
	}
	for n > 0 && !utf8.RuneStart(r.Body[n]) {
		n--
	}
	return string(r.Body[:n])
}
