package strsplit

import (
	"slices"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	for _, tc := range []struct {
		Name      string
		Haystack  string
		Delimiter Delimiter
		Want      []string
	}{
		{"simple", "a b c", Literal(" "), []string{"a", "b", "c"}},
		{"trailing delimiter", "a b c ", Literal(" "), []string{"a", "b", "c", ""}},
		{"leading delimiter", " a", Literal(" "), []string{"", "a"}},
		{"empty haystack", "", Literal(" "), []string{""}},
		{"no delimiter", "abc", Char('z'), []string{"abc"}},
		{"only delimiters", "///", Char('/'), []string{"", "", "", ""}},
		{"consecutive delimiters", "a//b", Char('/'), []string{"a", "", "b"}},
		{"multibyte literal", "a->b->", Literal("->"), []string{"a", "b", ""}},
		{"overlapping literal", "aaaa", Literal("aa"), []string{"", "", ""}},
		{"multibyte char", "a⌘b⌘c", Char('⌘'), []string{"a", "b", "c"}},
		{"char between multibyte", "ф,ы,в", Char(','), []string{"ф", "ы", "в"}},
		{"empty literal", "abc", Literal(""), []string{"abc"}},
		{"nil delimiter", "a b", nil, []string{"a b"}},
	} {
		t.Run(tc.Name, func(t *testing.T) {
			got := slices.Collect(New(tc.Haystack, tc.Delimiter).All())
			require.Equal(t, tc.Want, got)
		})
	}
}

func TestSplit_Next(t *testing.T) {
	t.Run("multiple separators", func(t *testing.T) {
		split := New("Hello World Yes?", Char(' '))
		segment, ok := split.Next()
		require.True(t, ok)
		require.Equal(t, "Hello", segment)
		segment, ok = split.Next()
		require.True(t, ok)
		require.Equal(t, "World", segment)
		segment, ok = split.Next()
		require.True(t, ok)
		require.Equal(t, "Yes?", segment)
		_, ok = split.Next()
		require.False(t, ok)
	})

	t.Run("exhaustion is steady", func(t *testing.T) {
		split := New("a", Char(' '))
		_, ok := split.Next()
		require.True(t, ok)

		for i := 0; i < 5; i++ {
			segment, ok := split.Next()
			require.False(t, ok)
			require.Empty(t, segment)
			require.True(t, split.Exhausted())
		}
	})

	t.Run("empty remainder is still active", func(t *testing.T) {
		split := New("a ", Literal(" "))
		segment, ok := split.Next()
		require.True(t, ok)
		require.Equal(t, "a", segment)

		rest, active := split.Remainder()
		require.True(t, active)
		require.Empty(t, rest)
		require.False(t, split.Exhausted())

		segment, ok = split.Next()
		require.True(t, ok)
		require.Empty(t, segment)

		_, active = split.Remainder()
		require.False(t, active)
		require.True(t, split.Exhausted())
	})

	t.Run("remainder", func(t *testing.T) {
		split := New("key=value=more", Char('='))
		rest, active := split.Remainder()
		require.True(t, active)
		require.Equal(t, "key=value=more", rest)

		_, _ = split.Next()
		rest, active = split.Remainder()
		require.True(t, active)
		require.Equal(t, "value=more", rest)
	})
}

func TestSplit_ZeroCopy(t *testing.T) {
	haystack := "hello, world, again"
	base := uintptr(unsafe.Pointer(unsafe.StringData(haystack)))
	offset := 0

	for segment := range New(haystack, Literal(", ")).All() {
		require.Equal(t, haystack[offset:offset+len(segment)], segment)
		if len(segment) > 0 {
			require.Equal(t, base+uintptr(offset), uintptr(unsafe.Pointer(unsafe.StringData(segment))))
		}

		offset += len(segment) + len(", ")
	}
}

func TestSplit_Bytes(t *testing.T) {
	data := []byte("a;b;c")
	split := NewBytes(data, Char(';'))
	segment, ok := split.Next()
	require.True(t, ok)
	require.Equal(t, "a", segment)
	require.Equal(t, unsafe.Pointer(&data[0]), unsafe.Pointer(unsafe.StringData(segment)))
	require.Equal(t, []string{"b", "c"}, slices.Collect(split.All()))
}

func TestSplit_Iterators(t *testing.T) {
	t.Run("break and resume", func(t *testing.T) {
		split := New("a b c d", Char(' '))
		var head []string

		for segment := range split.All() {
			head = append(head, segment)
			if len(head) == 2 {
				break
			}
		}

		require.Equal(t, []string{"a", "b"}, head)
		require.Equal(t, []string{"c", "d"}, slices.Collect(split.All()))
		require.Empty(t, slices.Collect(split.All()))
	})

	t.Run("enumerate", func(t *testing.T) {
		var (
			indexes  []int
			segments []string
		)

		for i, segment := range New("x,y,z", Char(',')).Enumerate() {
			indexes = append(indexes, i)
			segments = append(segments, segment)
		}

		require.Equal(t, []int{0, 1, 2}, indexes)
		require.Equal(t, []string{"x", "y", "z"}, segments)
	})

	t.Run("independent instances", func(t *testing.T) {
		haystack := "1 2 3"
		first, second := New(haystack, Char(' ')), New(haystack, Char(' '))
		_, _ = first.Next()
		a, _ := first.Next()
		b, _ := second.Next()
		require.Equal(t, "2", a)
		require.Equal(t, "1", b)
	})
}
