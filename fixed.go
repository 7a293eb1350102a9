package xgeom

import "golang.org/x/image/math/fixed"

// FromFixedPoint converts a fixed.Point26_6 to a Point that keeps the
// 26.6 fixed-point representation of its coordinates. fixed.Int26_6
// is an integer type, so the whole integer operation surface applies
// to the result.
func FromFixedPoint(p fixed.Point26_6) Point[fixed.Int26_6] {
	return Pt(p.X, p.Y)
}

// FixedPoint converts p back to a fixed.Point26_6.
func FixedPoint(p Point[fixed.Int26_6]) fixed.Point26_6 {
	return fixed.Point26_6{X: p.X, Y: p.Y}
}
