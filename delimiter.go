package strsplit

import (
	"strings"
	"unicode/utf8"
)

// Delimiter locates the first occurrence of itself in the haystack. The returned span
// is half-open: haystack[start:end] is exactly the matched delimiter. Not finding anything
// is a normal outcome and is reported via found=false.
type Delimiter interface {
	Locate(haystack string) (start, end int, found bool)
}

// Literal is matched as a contiguous, byte-exact and case-sensitive substring.
//
// Empty literal never matches, so splitting by it yields the whole haystack at once.
type Literal string

func (l Literal) Locate(haystack string) (start, end int, found bool) {
	if len(l) == 0 {
		return 0, 0, false
	}

	start = strings.Index(haystack, string(l))
	if start == -1 {
		return 0, 0, false
	}

	return start, start + len(l), true
}

// Char is matched against decoded characters of the haystack, so the span always
// covers the whole encoded character (1 to 4 bytes) and never falls inside another one.
type Char rune

func (c Char) Locate(haystack string) (start, end int, found bool) {
	r := rune(c)

	if r >= 0 && r < utf8.RuneSelf {
		start = strings.IndexByte(haystack, byte(r))
		if start == -1 {
			return 0, 0, false
		}

		return start, start + 1, true
	}

	if !utf8.ValidRune(r) {
		return 0, 0, false
	}

	for i := 0; i < len(haystack); {
		char, width := utf8.DecodeRuneInString(haystack[i:])
		if char == r {
			return i, i + width, true
		}

		i += width
	}

	return 0, 0, false
}

// never is used in place of a nil delimiter.
type never struct{}

func (never) Locate(string) (int, int, bool) {
	return 0, 0, false
}
