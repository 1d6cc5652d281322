package rest

import "fmt"

// DefaultPerPage is the page size sent by list calls without WithPage.
const DefaultPerPage = 50

// ContentType selects how a request body is encoded.
type ContentType int

const (
	// ContentJSON encodes the body as JSON.
	ContentJSON ContentType = iota
	// ContentMultipart encodes the body as multipart/form-data. The body
	// must implement MultipartForm.
	ContentMultipart
)

// String returns the content type name.
func (c ContentType) String() string {
	if c == ContentMultipart {
		return "multipart"
	}
	return "json"
}

type callOptions struct {
	page     int
	perPage  int
	paged    bool
	query    string
	hasQuery bool
	content  ContentType
}

// CallOption tunes a single operation.
type CallOption func(*callOptions)

// WithPage requests a page of results, sent as the page and count query
// parameters.
func WithPage(page, perPage int) CallOption {
	return func(o *callOptions) {
		o.page = page
		o.perPage = perPage
		o.paged = true
	}
}

// WithQuery sends a pre-encoded query string verbatim instead of page and
// count.
func WithQuery(raw string) CallOption {
	return func(o *callOptions) {
		o.query = raw
		o.hasQuery = true
	}
}

// WithContentType selects the request body encoding.
func WithContentType(ct ContentType) CallOption {
	return func(o *callOptions) { o.content = ct }
}

func newCallOptions(opts []CallOption) callOptions {
	o := callOptions{perPage: DefaultPerPage}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// listQuery is the query for list endpoints: the raw query when given,
// otherwise page and count with defaults.
func (o callOptions) listQuery() string {
	if o.hasQuery {
		return o.query
	}
	return pageQuery(o.page, o.perPage)
}

// bodyQuery is the query for calls with a request body: only what the
// caller asked for.
func (o callOptions) bodyQuery() string {
	switch {
	case o.hasQuery:
		return o.query
	case o.paged:
		return pageQuery(o.page, o.perPage)
	default:
		return ""
	}
}

func pageQuery(page, perPage int) string {
	return fmt.Sprintf("page=%d&count=%d", page, perPage)
}
