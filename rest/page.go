package rest

import (
	"fmt"

	"github.com/kbukum/restfulcore/errors"
)

// Page is the paged envelope some endpoints wrap their lists in.
// List length and TotalRecords are reported independently by the server and
// are not cross-checked.
type Page[T any] struct {
	TotalRecords int64    `json:"totalRecords"`
	Page         int      `json:"page"`
	PerPage      int      `json:"perPage"`
	List         []T      `json:"list"`
	Succeeded    bool     `json:"succeeded"`
	Info         []string `json:"info,omitempty"`
}

// DecodePage parses data as a paged envelope.
func DecodePage[T any, PT Object[T]](data []byte) (*Page[T], error) {
	f, err := parseObject(data)
	if err != nil {
		return nil, err
	}
	return PageFromFields[T, PT](f)
}

// PageFromFields constructs a paged envelope from a decoded object.
// totalRecords, page and perPage are required. A missing or null list is
// an empty page, succeeded defaults to false and info stays nil when absent.
func PageFromFields[T any, PT Object[T]](f Fields) (*Page[T], error) {
	var (
		p   Page[T]
		err error
	)
	if p.TotalRecords, err = f.Int64("totalRecords"); err != nil {
		return nil, err
	}
	if p.Page, err = f.Int("page"); err != nil {
		return nil, err
	}
	if p.PerPage, err = f.Int("perPage"); err != nil {
		return nil, err
	}
	if p.Succeeded, err = f.OptBool("succeeded", false); err != nil {
		return nil, err
	}
	if f.Has("info") {
		if p.Info, err = f.Strings("info"); err != nil {
			return nil, err
		}
	}

	if !f.Has("list") {
		p.List = []T{}
		return &p, nil
	}
	items, ok := f["list"].([]any)
	if !ok {
		return nil, errors.InvalidFormat("list", "array of objects")
	}
	if p.List, err = constructAll[T, PT](items); err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	return &p, nil
}
