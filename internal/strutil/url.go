package strutil

import (
	"strings"

	"github.com/indigo-web/strsplit"
)

var halfbyte = [256]byte{}

func init() {
	for i := range halfbyte {
		halfbyte[i] = 0xFF
	}

	for c := byte('0'); c <= '9'; c++ {
		halfbyte[c] = c - '0'
	}

	for c := byte('a'); c <= 'f'; c++ {
		halfbyte[c] = c - 'a' + 10
		halfbyte[c-0x20] = c - 'a' + 10
	}
}

// URLDecode decodes an urlencoded string and tells whether the string was properly formed.
// Plus signs are left untouched. If there's nothing to decode, the string itself is
// returned, so no allocations are made.
func URLDecode(str string) (string, bool) {
	split := strsplit.New(str, strsplit.Char('%'))
	head, _ := split.Next()
	if split.Exhausted() {
		return head, true
	}

	var b strings.Builder
	b.Grow(len(str))
	b.WriteString(head)

	for chunk := range split.All() {
		if len(chunk) < 2 {
			return "", false
		}

		x, y := halfbyte[chunk[0]], halfbyte[chunk[1]]
		if x == 0xFF || y == 0xFF {
			return "", false
		}

		b.WriteByte(x<<4 | y)
		b.WriteString(chunk[2:])
	}

	return b.String(), true
}
