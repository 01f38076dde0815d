package strsplit

// UntilChar returns the text up to (but not including) the first occurrence of the
// character. If there is none, the whole string is returned.
func UntilChar(s string, c rune) string {
	segment, ok := New(s, Char(c)).Next()
	if !ok {
		panic("BUG: strsplit: fresh iterator produced no segments")
	}

	return segment
}

// Cut works as strings.Cut does, but accepts any delimiter.
func Cut(s string, delim Delimiter) (before, after string, found bool) {
	split := New(s, delim)
	before, _ = split.Next()
	after, found = split.Remainder()

	return before, after, found
}
