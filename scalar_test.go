package xgeom_test

import (
	"math"
	"testing"

	"deedles.dev/xgeom"
	"github.com/stretchr/testify/require"
)

func TestEpsilon(t *testing.T) {
	e64 := xgeom.Epsilon[float64]()
	require.Equal(t, math.SmallestNonzeroFloat64, e64)
	require.Zero(t, e64/2)

	e32 := xgeom.Epsilon[float32]()
	require.Equal(t, float32(math.SmallestNonzeroFloat32), e32)
	require.Zero(t, e32/2)
	require.NotEqual(t, e64, float64(e32))

	type myfloat float32
	require.Equal(t, myfloat(math.SmallestNonzeroFloat32), xgeom.Epsilon[myfloat]())
}
