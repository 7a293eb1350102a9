package xgeom

import (
	"fmt"
	"image"
)

// A Rect is an axis-aligned rectangle identified by its origin corner
// and its size. Both of its edges on each axis are inclusive: a Rect
// with Width 10 spans the coordinates from Left to Left+9, and a Rect
// with Width 1 has Left == Right. A Rect with a non-positive Width or
// Height is empty and contains nothing.
type Rect[T Scalar] struct {
	X, Y          T
	Width, Height T
}

// Rt is shorthand for Rect[T]{x, y, w, h}.
func Rt[T Scalar](x, y, w, h T) Rect[T] {
	return Rect[T]{x, y, w, h}
}

// FromImageRect converts an image.Rectangle, which excludes its
// maximum edge, to the inclusive Rect[int] covering the same points.
// Sizes are preserved: the result's Width is r.Dx().
func FromImageRect(r image.Rectangle) Rect[int] {
	return Rt(r.Min.X, r.Min.Y, r.Dx(), r.Dy())
}

// RConv converts a Rect[In] to a Rect[Out] with possible loss of
// precision.
func RConv[Out Scalar, In Scalar](r Rect[In]) Rect[Out] {
	return Rt(Out(r.X), Out(r.Y), Out(r.Width), Out(r.Height))
}

// Left returns the minimum X coordinate inside r.
func (r Rect[T]) Left() T {
	return r.X
}

// Right returns the maximum X coordinate inside r.
func (r Rect[T]) Right() T {
	return r.X + r.Width - 1
}

// Top returns the minimum Y coordinate inside r.
func (r Rect[T]) Top() T {
	return r.Y
}

// Bottom returns the maximum Y coordinate inside r.
func (r Rect[T]) Bottom() T {
	return r.Y + r.Height - 1
}

// Origin returns r's minimum corner.
func (r Rect[T]) Origin() Point[T] {
	return Point[T]{r.X, r.Y}
}

func (r Rect[T]) Size() Size[T] {
	return Size[T]{r.Width, r.Height}
}

// Center returns the point at the middle of r.
func (r Rect[T]) Center() Point[T] {
	return Point[T]{r.X + r.Width/2, r.Y + r.Height/2}
}

// CenterAt returns r moved so that its center is at p.
func (r Rect[T]) CenterAt(p Point[T]) Rect[T] {
	return Rt(p.X-r.Width/2, p.Y-r.Height/2, r.Width, r.Height)
}

// IsEmpty reports whether r contains no points.
func (r Rect[T]) IsEmpty() bool {
	return (r.Width <= 0) || (r.Height <= 0)
}

func (r Rect[T]) IsZero() bool {
	return r == Rect[T]{}
}

// Eq reports whether r and s contain the same set of points. All
// empty rectangles are considered equal.
func (r Rect[T]) Eq(s Rect[T]) bool {
	return (r == s) || (r.IsEmpty() && s.IsEmpty())
}

// Canon returns the canonical version of r. If r's Width or Height is
// negative, the rectangle is flipped to cover the corresponding span
// with a positive size.
func (r Rect[T]) Canon() Rect[T] {
	if r.Width < 0 {
		r.X += r.Width
		r.Width = -r.Width
	}
	if r.Height < 0 {
		r.Y += r.Height
		r.Height = -r.Height
	}
	return r
}

// Contains reports whether p is inside r. Points on r's boundary are
// inside.
func (r Rect[T]) Contains(p Point[T]) bool {
	return !r.IsEmpty() &&
		(r.X <= p.X) && (p.X <= r.Right()) &&
		(r.Y <= p.Y) && (p.Y <= r.Bottom())
}

// ContainsRect reports whether every point of s is inside r. An empty
// s is inside everything.
func (r Rect[T]) ContainsRect(s Rect[T]) bool {
	if s.IsEmpty() {
		return true
	}
	return !r.IsEmpty() &&
		(r.X <= s.X) && (s.Right() <= r.Right()) &&
		(r.Y <= s.Y) && (s.Bottom() <= r.Bottom())
}

// Intersects reports whether r and s share at least one point.
// Rectangles that only touch along an edge or at a corner still share
// the points of that edge or corner, so they intersect.
func (r Rect[T]) Intersects(s Rect[T]) bool {
	return !r.IsEmpty() && !s.IsEmpty() &&
		(r.X <= s.Right()) && (s.X <= r.Right()) &&
		(r.Y <= s.Bottom()) && (s.Y <= r.Bottom())
}

// Intersection returns the largest rectangle contained by both r and
// s. If they do not intersect, it returns the zero Rect. A zero
// return is therefore ambiguous between no overlap at all and an
// overlap that happens to equal the zero Rect's empty area; use
// [Rect.Intersects] to distinguish the two.
func (r Rect[T]) Intersection(s Rect[T]) Rect[T] {
	if r.IsEmpty() || s.IsEmpty() {
		return Rect[T]{}
	}
	x := max(r.X, s.X)
	y := max(r.Y, s.Y)
	right := min(r.Right(), s.Right())
	bottom := min(r.Bottom(), s.Bottom())
	if (right < x) || (bottom < y) {
		return Rect[T]{}
	}
	return Rt(x, y, right-x+1, bottom-y+1)
}

// Union returns the smallest rectangle that contains both r and s. If
// either is empty, it returns the other.
func (r Rect[T]) Union(s Rect[T]) Rect[T] {
	if r.IsEmpty() {
		return s
	}
	if s.IsEmpty() {
		return r
	}
	x := min(r.X, s.X)
	y := min(r.Y, s.Y)
	right := max(r.Right(), s.Right())
	bottom := max(r.Bottom(), s.Bottom())
	return Rt(x, y, right-x+1, bottom-y+1)
}

// Offset returns r displaced by v.
func (r Rect[T]) Offset(v Vector[T]) Rect[T] {
	return Rt(r.X+v.X, r.Y+v.Y, r.Width, r.Height)
}

// Inflate returns r grown by dx on its left and right edges and by dy
// on its top and bottom edges. Negative values shrink it, possibly
// into emptiness.
func (r Rect[T]) Inflate(dx, dy T) Rect[T] {
	return Rt(r.X-dx, r.Y-dy, r.Width+2*dx, r.Height+2*dy)
}

// Clamp returns the point inside r nearest to p. It returns p itself
// if p is inside r, and r's origin if r is empty.
func (r Rect[T]) Clamp(p Point[T]) Point[T] {
	if r.IsEmpty() {
		return r.Origin()
	}
	return Point[T]{
		clamp(p.X, r.X, r.Right()),
		clamp(p.Y, r.Y, r.Bottom()),
	}
}

// ExpandToInclude returns the smallest rectangle that contains every
// point of r as well as p. If r is empty, it returns the unit-size
// rectangle at p.
func (r Rect[T]) ExpandToInclude(p Point[T]) Rect[T] {
	if r.IsEmpty() {
		return Rt(p.X, p.Y, 1, 1)
	}
	x := min(r.X, p.X)
	y := min(r.Y, p.Y)
	right := max(r.Right(), p.X)
	bottom := max(r.Bottom(), p.Y)
	return Rt(x, y, right-x+1, bottom-y+1)
}

// IntersectsCircle reports whether r and c share at least one point.
func (r Rect[T]) IntersectsCircle(c Circle[T]) bool {
	if r.IsEmpty() || c.IsEmpty() {
		return false
	}
	return r.Clamp(c.Center).DistSq(c.Center) <= c.RadiusSq()
}

// AABB converts r to the AABB covering the same points. The result is
// empty if r is empty.
func (r Rect[T]) AABB() AABB[T] {
	return AABB[T]{
		Min: Point[T]{r.X, r.Y},
		Max: Point[T]{r.Right(), r.Bottom()},
	}
}

// ImageRect converts r to an image.Rectangle, which excludes its
// maximum edge.
func (r Rect[T]) ImageRect() image.Rectangle {
	return image.Rect(int(r.X), int(r.Y), int(r.X+r.Width), int(r.Y+r.Height))
}

func (r Rect[T]) String() string {
	return fmt.Sprintf("%v+%v", r.Origin(), r.Size())
}
