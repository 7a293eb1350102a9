package xgeom_test

import (
	"testing"

	"deedles.dev/xgeom"
	"github.com/stretchr/testify/require"
)

func TestSize(t *testing.T) {
	s := xgeom.Sz(3, 4)
	require.False(t, s.IsEmpty())
	require.True(t, xgeom.Sz(0, 4).IsEmpty())
	require.True(t, xgeom.Sz(3, -1).IsEmpty())
	require.Equal(t, xgeom.Vec(3, 4), s.Vector())
	require.Equal(t, xgeom.Sz(3.0, 4.0), xgeom.SzConv[float64](s))
	require.Equal(t, "3x4", s.String())
}
