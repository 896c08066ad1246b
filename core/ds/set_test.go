package ds

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSet_order(t *testing.T) {
	s := NewSet("c", "a", "b")
	require.Equal(t, []string{"c", "a", "b"}, s.Values())

	// duplicates keep their original position
	s.Add("a")
	require.Equal(t, []string{"c", "a", "b"}, s.Values())
	require.Equal(t, 3, s.Len())
}

func TestSet_remove(t *testing.T) {
	s := NewSet(1, 2, 3, 4)
	s.Remove(2)
	require.Equal(t, []int{1, 3, 4}, s.Values())
	require.False(t, s.Contains(2))

	// removing an absent element is a no-op
	s.Remove(42)
	require.Equal(t, 3, s.Len())
}

func TestSet_zeroValue(t *testing.T) {
	var s Set[string]
	require.Equal(t, 0, s.Len())
	require.False(t, s.Contains("x"))

	s.Add("x")
	require.True(t, s.Contains("x"))
}

func TestSet_valuesIsCopy(t *testing.T) {
	s := NewSet("a", "b")
	v := s.Values()
	s.Remove("a")
	require.Equal(t, []string{"a", "b"}, v)
	require.Equal(t, []string{"b"}, s.Values())
}

func TestSet_clear(t *testing.T) {
	s := NewSet(1, 2)
	s.Clear()
	require.Equal(t, 0, s.Len())
	s.Add(3)
	require.Equal(t, []int{3}, s.Values())
}
