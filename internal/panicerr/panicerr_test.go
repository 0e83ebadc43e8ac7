package panicerr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/unescape/internal/panicerr"
)

func TestRecover(t *testing.T) {
	t.Run("passes through", func(t *testing.T) {
		require.NoError(t, panicerr.Recover("ok", func() error { return nil }))

		expected := errors.New("nope")
		err := panicerr.Recover("fail", func() error { return expected })
		require.Equal(t, expected, err, "expected returned error unchanged")
		assert.False(t, panicerr.IsPanic(err))
	})

	t.Run("converts a panic", func(t *testing.T) {
		err := panicerr.Recover("boom", func() error { panic("such failure") })
		require.Error(t, err, "expected a recovered error")
		assert.True(t, panicerr.IsPanic(err))
		assert.Equal(t, "boom paniced: such failure", err.Error())
		assert.Contains(t, fmt.Sprintf("%+v", err), "Panic stack:")
	})

	t.Run("unwraps a paniced error", func(t *testing.T) {
		expected := errors.New("cause")
		err := panicerr.Recover("", func() error { panic(expected) })
		require.Error(t, err, "expected a recovered error")
		assert.True(t, errors.Is(err, expected))
	})
}
