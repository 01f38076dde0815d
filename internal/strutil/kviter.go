package strutil

import (
	"iter"

	"github.com/indigo-web/strsplit"
)

// a-z A-Z 0-9 ()[]{}-_<>.,/|%"
// % is included, as WalkKV does not decode key or value, therefore urlencoded values must
// not appear as unsafe characters
var safeChars = [256]bool{
	false, false, false, false, false, false, false, false, false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false, false, false, false, false, false, false, false, false,
	false, false, true, false, false, true, false, false, true, true, false, true, true, true, true, true,
	true, true, true, true, true, true, true, true, true, true, false, false, true, false, true, false,
	false, true, true, true, true, true, true, true, true, true, true, true, true, true, true, true,
	true, true, true, true, true, true, true, true, true, true, true, true, false, true, false, true,
	false, true, true, true, true, true, true, true, true, true, true, true, true, true, true, true,
	true, true, true, true, true, true, true, true, true, true, true, true, true, true, false, false,
}

// WalkKV iterates over semicolon-separated key=value pairs. A pair without the value
// is reported with the empty value, blank pairs are skipped. Malformed input is reported
// as the empty key-value pair, which is always the last one.
func WalkKV(data string) iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for param := range strsplit.New(data, strsplit.Char(';')).All() {
			param = RStripWS(LStripWS(param))
			if len(param) == 0 {
				continue
			}

			key, value, _ := strsplit.Cut(param, strsplit.Char('='))
			if len(key) == 0 || !isSafe(key) || !isSafe(value) {
				yield("", "")
				return
			}

			if !yield(key, Unquote(value)) {
				return
			}
		}
	}
}

func isSafe(str string) bool {
	for i := 0; i < len(str); i++ {
		if !safeChars[str[i]] {
			return false
		}
	}

	return true
}
