package kv

import (
	"github.com/indigo-web/strsplit"
	"github.com/indigo-web/strsplit/internal/strutil"
	"github.com/pkg/errors"
)

var (
	ErrBadQuery    = errors.New("bad query")
	ErrBadEncoding = errors.New("bad urlencoding")
	ErrBadParams   = errors.New("bad parameters")
)

// ParseQuery parses an ampersand-separated urlencoded query, e.g. "a=1&b=2&flag". Entries
// without a value are stored with an empty one, a single trailing ampersand is ignored. Keys
// and values that don't need decoding refer directly to the query's memory.
func ParseQuery(query string) (*Storage, error) {
	s := NewPrealloc(strsplit.Count(query, strsplit.Char('&')))
	entries := strsplit.New(query, strsplit.Char('&'))

	for i, entry := range entries.Enumerate() {
		if len(entry) == 0 && entries.Exhausted() {
			break
		}

		rawKey, rawValue, _ := strsplit.Cut(entry, strsplit.Char('='))
		if len(rawKey) == 0 {
			return nil, errors.Wrapf(ErrBadQuery, "entry %d: empty key", i)
		}

		key, ok := strutil.URLDecode(rawKey)
		if !ok {
			return nil, errors.Wrapf(ErrBadEncoding, "entry %d: key %q", i, rawKey)
		}

		value, ok := strutil.URLDecode(rawValue)
		if !ok {
			return nil, errors.Wrapf(ErrBadEncoding, "entry %d: value of %q", i, key)
		}

		s.Add(key, value)
	}

	return s, nil
}

// ParseParams parses header parameters, e.g. `charset=utf8; q="0.9"`. Quoted values are
// unquoted.
func ParseParams(params string) (*Storage, error) {
	s := New()

	for key, value := range strutil.WalkKV(params) {
		if len(key) == 0 {
			return nil, errors.Wrapf(ErrBadParams, "after %d parameters", s.Len())
		}

		s.Add(key, value)
	}

	return s, nil
}

// ParseHeader splits a header value into the value itself and its parameters,
// e.g. `text/html; charset=utf8`.
func ParseHeader(header string) (value string, params *Storage, err error) {
	value, rawParams := strutil.CutHeader(header)
	params, err = ParseParams(rawParams)

	return value, params, err
}
