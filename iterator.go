package strsplit

import "io"

// Iterator returns new string (or error) on every next call. The only error is io.EOF,
// which is returned after all the segments were produced.
type Iterator func() (string, error)

// StringIter returns Iterator that walks by a string
func StringIter(str string, delim Delimiter) Iterator {
	split := New(str, delim)

	return func() (string, error) {
		segment, ok := split.Next()
		if !ok {
			return "", io.EOF
		}

		return segment, nil
	}
}

// Collect returns all the segments at once. Unlike the iterator itself, it allocates
// a slice (but still not the strings.)
func Collect(haystack string, delim Delimiter) []string {
	segments := make([]string, 0, 1)
	for segment := range New(haystack, delim).All() {
		segments = append(segments, segment)
	}

	return segments
}

// Count returns the number of segments the haystack is split into. It is always
// at least 1.
func Count(haystack string, delim Delimiter) (n int) {
	split := New(haystack, delim)
	for _, ok := split.Next(); ok; _, ok = split.Next() {
		n++
	}

	return n
}
