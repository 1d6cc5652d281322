package rest

import "strings"

// BuildURL joins root, segments and an optional pre-encoded query.
//
// One leading slash of each segment is dropped, empty segments are skipped,
// and every segment ends in exactly one slash of its own, so the path always
// ends with "/". The query is appended verbatim after "?". Nothing is
// percent-encoded.
//
//	BuildURL("https://host/", []string{"api/controller/", "", "12"}, "")
//	// https://host/api/controller/12/
func BuildURL(root string, segments []string, query string) string {
	var b strings.Builder
	b.WriteString(root)
	if !strings.HasSuffix(root, "/") {
		b.WriteByte('/')
	}
	for _, seg := range segments {
		seg = strings.TrimPrefix(seg, "/")
		if seg == "" {
			continue
		}
		b.WriteString(seg)
		if !strings.HasSuffix(seg, "/") {
			b.WriteByte('/')
		}
	}
	if query != "" {
		b.WriteByte('?')
		b.WriteString(query)
	}
	return b.String()
}

// URL builds a URL under the connection root.
func (c *Connection) URL(segments ...string) string {
	return BuildURL(c.root, segments, "")
}

// URLWithQuery builds a URL under the connection root with a query string.
func (c *Connection) URLWithQuery(query string, segments ...string) string {
	return BuildURL(c.root, segments, query)
}
