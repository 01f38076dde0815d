package strutil

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestURLDecode(t *testing.T) {
	t.Run("base", func(t *testing.T) {
		res, ok := URLDecode("%61")
		require.True(t, ok)
		require.Equal(t, "a", res)

		for i, tc := range []string{"abc", "%61bc", "a%62c", "ab%63", "%61%62%63", "%61%62c"} {
			res, ok = URLDecode(tc)
			require.True(t, ok, i)
			require.Equal(t, "abc", res, i)
		}
	})

	t.Run("multibyte", func(t *testing.T) {
		res, ok := URLDecode("%D0%B0%d0%b1")
		require.True(t, ok)
		require.Equal(t, "аб", res)
	})

	t.Run("nothing to decode", func(t *testing.T) {
		src := "hello+world"
		res, ok := URLDecode(src)
		require.True(t, ok)
		require.Equal(t, unsafe.StringData(src), unsafe.StringData(res))
	})

	t.Run("malformed", func(t *testing.T) {
		for _, tc := range []string{"%", "%6", "a%", "%zz", "%6g", "ok%2"} {
			_, ok := URLDecode(tc)
			require.False(t, ok, tc)
		}
	})
}
