package strutil

import (
	"iter"
	"strings"
)

// Join glues the elements together, placing sep between each pair of them. It's the
// exact opposite of splitting: Join(strsplit.New(s, d).All(), d) == s.
func Join(elems iter.Seq[string], sep string) string {
	var (
		b     strings.Builder
		first = true
	)

	for elem := range elems {
		if !first {
			b.WriteString(sep)
		}

		first = false
		b.WriteString(elem)
	}

	return b.String()
}
