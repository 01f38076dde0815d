// Package strsplit lazily splits a string by a delimiter. Every produced segment is
// a substring of the original haystack, so no string storage is ever copied.
package strsplit

import (
	"iter"

	"github.com/indigo-web/utils/uf"
)

// Split walks the haystack segment by segment. It is a one-shot forward-only iterator:
// once exhausted, it stays so. Split isn't safe for concurrent use, however any number
// of independent instances may walk the same haystack simultaneously.
type Split struct {
	remainder string
	exhausted bool
	delim     Delimiter
}

// New returns an iterator over the haystack. Nil delimiter never matches.
func New(haystack string, delim Delimiter) *Split {
	if delim == nil {
		delim = never{}
	}

	return &Split{
		remainder: haystack,
		delim:     delim,
	}
}

// NewBytes behaves exactly as New, except the haystack is a byte slice. Returned segments
// share its memory, therefore the slice MUST NOT be modified as long as they are in use.
func NewBytes(haystack []byte, delim Delimiter) *Split {
	return New(uf.B2S(haystack), delim)
}

// Next returns the next segment. When there are no more of them, ok is false and
// it'll stay so on every consequent call.
func (s *Split) Next() (segment string, ok bool) {
	if s.exhausted {
		return "", false
	}

	start, end, found := s.delim.Locate(s.remainder)
	if !found {
		segment = s.remainder
		s.remainder = ""
		s.exhausted = true

		return segment, true
	}

	segment = s.remainder[:start]
	s.remainder = s.remainder[end:]

	return segment, true
}

// Remainder returns not yet consumed content. Note that the empty remainder of an active
// iterator still produces one (empty) segment.
func (s *Split) Remainder() (rest string, active bool) {
	return s.remainder, !s.exhausted
}

// Exhausted reports whether the iterator has nothing more to produce.
func (s *Split) Exhausted() bool {
	return s.exhausted
}

// All returns an iterator over the rest of the segments. Breaking the loop doesn't lose
// anything: the segments left may be pulled further by Next or another All.
func (s *Split) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			segment, ok := s.Next()
			if !ok || !yield(segment) {
				return
			}
		}
	}
}

// Enumerate is the same as All, but additionally yields the 0-based index of the segment.
// Indexing starts over on every Enumerate call.
func (s *Split) Enumerate() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i := 0; ; i++ {
			segment, ok := s.Next()
			if !ok || !yield(i, segment) {
				return
			}
		}
	}
}
