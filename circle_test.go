package xgeom_test

import (
	"testing"

	"deedles.dev/xgeom"
	"github.com/stretchr/testify/require"
)

func TestCircleContains(t *testing.T) {
	c := xgeom.Circ(0, 0, 5)
	require.True(t, c.Contains(xgeom.Pt(3, 4)))
	require.True(t, c.Contains(xgeom.Pt(0, 0)))
	require.False(t, c.Contains(xgeom.Pt(4, 4)))

	require.True(t, xgeom.Circ(1, 1, 0).Contains(xgeom.Pt(1, 1)))
	require.False(t, xgeom.Circ(1, 1, 0).Contains(xgeom.Pt(1, 2)))
}

func TestCircleIntersects(t *testing.T) {
	a := xgeom.Circ(0, 0, 3)
	require.True(t, a.Intersects(xgeom.Circ(7, 0, 4)))
	require.False(t, a.Intersects(xgeom.Circ(8, 0, 4)))
	require.True(t, a.Intersects(xgeom.Circ(1, 1, 1)))
	require.True(t, xgeom.Circ(7, 0, 4).Intersects(a))
}

func TestCircleEmpty(t *testing.T) {
	c := xgeom.Circ(0, 0, -1)
	require.True(t, c.IsEmpty())
	require.False(t, c.Contains(xgeom.Pt(0, 0)))
	require.False(t, c.Intersects(xgeom.Circ(0, 0, 5)))
	require.False(t, xgeom.Circ(0, 0, 5).Intersects(c))
	require.False(t, c.IntersectsRect(xgeom.Rt(-5, -5, 10, 10)))

	require.False(t, xgeom.Circ(0, 0, 0).IsEmpty())
}

func TestCircleIntersectsRect(t *testing.T) {
	c := xgeom.Circ(12, 5, 3)
	require.True(t, c.IntersectsRect(xgeom.Rt(0, 0, 10, 10)))
	require.False(t, xgeom.Circ(13, 5, 3).IntersectsRect(xgeom.Rt(0, 0, 10, 10)))
	require.True(t, c.IntersectsAABB(xgeom.Bx(0, 0, 9, 9)))
	require.True(t, xgeom.Circ(5, 5, 1).IntersectsRect(xgeom.Rt(0, 0, 10, 10)))
}

func TestCircleOffset(t *testing.T) {
	require.Equal(t, xgeom.Circ(3, 4, 2), xgeom.Circ(1, 1, 2).Offset(xgeom.Vec(2, 3)))
}

func TestCircleConvString(t *testing.T) {
	require.Equal(t, 25, xgeom.Circ(0, 0, 5).RadiusSq())
	require.Equal(t, xgeom.Circ(1.0, 2.0, 3.0), xgeom.CConv[float64](xgeom.Circ(1, 2, 3)))
	require.Equal(t, "(1,2)+3", xgeom.Circ(1, 2, 3).String())
}
