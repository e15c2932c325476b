package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeekAndAdvance(t *testing.T) {
	c := New([]byte("ab"))

	b, ok := c.Peek()
	require.True(t, ok)
	assert.Equal(t, byte('a'), b)
	assert.Equal(t, 0, c.Offset())

	b, ok = c.Advance()
	require.True(t, ok)
	assert.Equal(t, byte('a'), b)
	assert.Equal(t, 1, c.Offset())

	b, ok = c.Advance()
	require.True(t, ok)
	assert.Equal(t, byte('b'), b)

	_, ok = c.Advance()
	assert.False(t, ok)
	assert.True(t, c.AtEOF())
}

func TestPeekAheadBounds(t *testing.T) {
	c := New([]byte("xy"))

	b, ok := c.PeekAhead(1)
	require.True(t, ok)
	assert.Equal(t, byte('y'), b)

	_, ok = c.PeekAhead(2)
	assert.False(t, ok)

	_, ok = c.PeekAhead(-1)
	assert.False(t, ok)
}

func TestLineColumnTracking(t *testing.T) {
	c := New([]byte("a\nbc"))

	c.Advance() // 'a'
	loc := c.Location()
	assert.Equal(t, 1, loc.Line)
	assert.Equal(t, 2, loc.Column)

	c.Advance() // '\n'
	loc = c.Location()
	assert.Equal(t, 2, loc.Line)
	assert.Equal(t, 1, loc.Column)

	c.Advance() // 'b'
	loc = c.Location()
	assert.Equal(t, 2, loc.Line)
	assert.Equal(t, 2, loc.Column)
}

func TestSaveRestore(t *testing.T) {
	c := New([]byte("abcd"))
	c.Advance()
	c.Advance()
	save := c.Save()

	c.Advance()
	c.Advance()
	assert.True(t, c.AtEOF())

	c.Restore(save)
	assert.Equal(t, 2, c.Offset())
	assert.False(t, c.AtEOF())

	b, ok := c.Peek()
	require.True(t, ok)
	assert.Equal(t, byte('c'), b)
}

func TestSliceAndLocationForOffset(t *testing.T) {
	c := New([]byte("abc\ndef"))
	assert.Equal(t, "bc", c.Slice(1, 2))

	loc := c.LocationForOffset(5)
	assert.Equal(t, 2, loc.Line)
	assert.Equal(t, 2, loc.Column)
	assert.Equal(t, 5, loc.Offset)
}

func TestEmptyBuffer(t *testing.T) {
	c := New(nil)
	assert.True(t, c.AtEOF())
	assert.Equal(t, 0, c.Len())
	_, ok := c.Peek()
	assert.False(t, ok)
}
