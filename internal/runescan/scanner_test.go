package runescan_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jcorbin/unescape/internal/runescan"
)

func TestScanner(t *testing.T) {
	t.Run("zero value is exhausted", func(t *testing.T) {
		var sc runescan.Scanner
		_, ok := sc.Peek()
		require.False(t, ok, "expected nothing to peek")
		_, ok = sc.Next()
		require.False(t, ok, "expected nothing to read")
	})

	t.Run("next consumes in order", func(t *testing.T) {
		var sc runescan.Scanner
		sc.Reset("ab")
		expectNext(t, &sc, 'a')
		expectNext(t, &sc, 'b')
		_, ok := sc.Next()
		require.False(t, ok, "expected end of input")
	})

	t.Run("peek does not consume", func(t *testing.T) {
		var sc runescan.Scanner
		sc.Reset("xy")
		for i := 0; i < 3; i++ {
			r, ok := sc.Peek()
			require.True(t, ok, "expected a rune to peek")
			require.Equal(t, 'x', r, "expected peek to hold still")
		}
		expectNext(t, &sc, 'x')
		expectNext(t, &sc, 'y')
	})

	t.Run("multibyte runes", func(t *testing.T) {
		var sc runescan.Scanner
		sc.Reset("a↵😀")
		expectNext(t, &sc, 'a')
		r, ok := sc.Peek()
		require.True(t, ok, "expected a rune to peek")
		require.Equal(t, '↵', r, "expected whole rune from peek")
		expectNext(t, &sc, '↵')
		expectNext(t, &sc, '😀')
		_, ok = sc.Next()
		require.False(t, ok, "expected end of input")
	})

	t.Run("reset rewinds onto new input", func(t *testing.T) {
		var sc runescan.Scanner
		sc.Reset("a")
		expectNext(t, &sc, 'a')
		sc.Reset("b")
		expectNext(t, &sc, 'b')
	})
}

func expectNext(t *testing.T, sc *runescan.Scanner, expected rune) {
	t.Helper()
	r, ok := sc.Next()
	require.True(t, ok, "expected a rune to read")
	require.Equal(t, expected, r, "expected rune %q", expected)
}
