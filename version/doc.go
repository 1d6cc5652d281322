// Package version exposes build information stamped at link time and the
// User-Agent string restfulcore sends with every request.
//
//	go build -ldflags "-X github.com/kbukum/restfulcore/version.Version=v1.2.0"
package version
