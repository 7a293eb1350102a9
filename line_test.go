package xgeom_test

import (
	"testing"

	"deedles.dev/xgeom"
	"github.com/stretchr/testify/require"
)

func TestSegment(t *testing.T) {
	s := xgeom.Seg(0.0, 0.0, 10.0, 0.0)
	require.Equal(t, xgeom.Vec(10.0, 0.0), s.Direction())
	require.Equal(t, xgeom.Pt(0.0, 0.0), s.At(0))
	require.Equal(t, xgeom.Pt(10.0, 0.0), s.At(1))
	require.Equal(t, xgeom.Pt(5.0, 0.0), s.At(0.5))
	require.Equal(t, xgeom.Pt(5.0, 0.0), s.Midpoint())
	require.Equal(t, 10.0, s.Len())

	require.Equal(t, 5.0, xgeom.Seg(0.0, 0.0, 3.0, 4.0).Len())
}

func TestSegmentOffsetReverse(t *testing.T) {
	s := xgeom.Seg(0.0, 0.0, 2.0, 2.0)
	require.Equal(t, xgeom.Seg(1.0, 3.0, 3.0, 5.0), s.Offset(xgeom.Vec(1.0, 3.0)))
	require.Equal(t, xgeom.Seg(2.0, 2.0, 0.0, 0.0), s.Reverse())
	require.Equal(t, s.At(0.25), s.Reverse().At(0.75))
}

func TestRay(t *testing.T) {
	r := xgeom.Ray[float64]{Origin: xgeom.Pt(1.0, 1.0), Dir: xgeom.Vec(2.0, 0.0)}
	require.Equal(t, xgeom.Pt(1.0, 1.0), r.At(0))
	require.Equal(t, xgeom.Pt(5.0, 1.0), r.At(2))
	require.Equal(t, xgeom.Ray[float64]{Origin: xgeom.Pt(2.0, 4.0), Dir: xgeom.Vec(2.0, 0.0)}, r.Offset(xgeom.Vec(1.0, 3.0)))
}

func TestRayNormalize(t *testing.T) {
	r, ok := xgeom.Ray[float64]{Origin: xgeom.Pt(1.0, 1.0), Dir: xgeom.Vec(3.0, 4.0)}.Normalize()
	require.True(t, ok)
	require.Equal(t, xgeom.Vec(0.6, 0.8), r.Dir)
	require.Equal(t, xgeom.Pt(1.0, 1.0), r.Origin)

	zero := xgeom.Ray[float64]{Origin: xgeom.Pt(1.0, 1.0)}
	same, ok := zero.Normalize()
	require.False(t, ok)
	require.Equal(t, zero, same)
}

func TestLineStrings(t *testing.T) {
	require.Equal(t, "(0,0)-(1,2)", xgeom.Seg(0.0, 0.0, 1.0, 2.0).String())
	require.Equal(t, "(1,1)->(2,0)", xgeom.Ray[float64]{Origin: xgeom.Pt(1.0, 1.0), Dir: xgeom.Vec(2.0, 0.0)}.String())
}
