package ilp

import (
	"fmt"
	"testing"

	"github.com/gomlx/exceptions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// panicMessage runs fn and returns the message of the panic it raised,
// failing the test if it did not panic.
func panicMessage(t *testing.T, fn func()) string {
	t.Helper()
	exception := exceptions.Try(fn)
	require.NotNil(t, exception, "expected a panic")
	return fmt.Sprint(exception)
}

func TestCtrlFirstStopWins(t *testing.T) {
	var c Ctrl[int]
	assert.False(t, c.Stopped())
	c.Return(1)
	c.Return(2)
	c.Break()
	assert.True(t, c.Stopped())
	v, ok := c.result().Value()
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	var b Ctrl[int]
	b.Break()
	b.Return(3)
	res := b.result()
	assert.True(t, res.Stopped())
	assert.False(t, res.HasValue(), "Return after Break is ignored")
}

func TestResultDiscard(t *testing.T) {
	// Break only: nothing to lose.
	res := For(0, 10, 4, func(i int, c *Ctrl[string]) {
		if i == 3 {
			c.Break()
		}
	})
	assert.True(t, res.Stopped())
	res.Discard()

	// Ran to completion.
	For(0, 10, 4, func(i int, c *Ctrl[string]) {}).Discard()

	res = For(0, 10, 4, func(i int, c *Ctrl[string]) {
		if i == 3 {
			c.Return("three")
		}
	})
	msg := panicMessage(t, func() { res.Discard() })
	assert.Contains(t, msg, "discarded at")
	assert.Contains(t, msg, "ctrl_test.go:")
}

func TestResultOption(t *testing.T) {
	res := For(0, 10, 2, func(i int, c *Ctrl[int]) {
		if i*i > 20 {
			c.Return(i)
		}
	})
	assert.Equal(t, 5, res.Option().OrElse(-1))
	v, ok := res.Value()
	assert.True(t, ok)
	assert.Equal(t, 5, v)
}
