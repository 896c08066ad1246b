package cache

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMem(t *testing.T) {
	c := NewMem()

	_, ok := c.Get("k")
	require.False(t, ok)

	c.Put("k", 42)
	v, ok := c.Get("k")
	require.True(t, ok)
	require.Equal(t, 42, v)
	require.Equal(t, 1, c.Len())

	// overwrite keeps a single entry
	c.Put("k", 43)
	v, _ = c.Get("k")
	require.Equal(t, 43, v)
	require.Equal(t, 1, c.Len())

	c.Delete("k")
	_, ok = c.Get("k")
	require.False(t, ok)
	require.Equal(t, 0, c.Len())
}

func TestTyped(t *testing.T) {
	type ref struct{ id string }

	refs := NewTyped[*ref](NewMem())

	_, ok := refs.Get("a")
	require.False(t, ok)

	r := &ref{id: "a"}
	refs.Put("a", r)

	got, ok := refs.Get("a")
	require.True(t, ok)
	require.Same(t, r, got)

	refs.Delete("a")
	_, ok = refs.Get("a")
	require.False(t, ok)
}

func TestTyped_wrongType(t *testing.T) {
	mem := NewMem()
	mem.Put("k", "not an int")

	ints := NewTyped[int](mem)
	_, ok := ints.Get("k")
	require.False(t, ok)
}
