package reflector

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type sample struct{}

func TestTypeInfoOf(t *testing.T) {
	ti := TypeInfoOf(sample{})
	require.Equal(t, "sample", ti.Short)
	require.Contains(t, ti.Name, "internal/reflector.sample")
}

func TestTypeInfoOf_pointerUnwraps(t *testing.T) {
	byVal := TypeInfoOf(sample{})
	byPtr := TypeInfoOf(&sample{})
	require.Equal(t, byVal, byPtr)
}

func TestTypeInfoFor(t *testing.T) {
	ti := TypeInfoFor[sample]()
	require.Equal(t, "sample", ti.Short)
	require.Equal(t, TypeInfoOf(sample{}), ti)
}

func TestTypeInfoOf_nil(t *testing.T) {
	ti := TypeInfoForType(nil)
	require.Empty(t, ti.Name)
	require.Nil(t, ti.Type)
}

func TestTypeInfo_cached(t *testing.T) {
	a := TypeInfoOf(sample{})
	b := TypeInfoOf(sample{})
	require.Equal(t, a, b)
}
