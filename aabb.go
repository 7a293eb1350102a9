package xgeom

import "fmt"

// An AABB is an axis-aligned box identified by its minimum and
// maximum corners, both of which are inclusive. Note that the zero
// AABB has Min == Max and is therefore a unit-size box: an AABB is
// empty only when Max is less than Min on an axis.
//
// An AABB covers the same points as a [Rect] with an origin at Min
// and a size of Max-Min+1, and its queries behave identically to that
// rectangle's.
type AABB[T Scalar] struct {
	Min, Max Point[T]
}

// Bx is shorthand for AABB[T]{Pt(x0, y0), Pt(x1, y1)}. The
// coordinates are swapped as necessary so that the result is
// well-formed.
func Bx[T Scalar](x0, y0, x1, y1 T) AABB[T] {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return AABB[T]{Point[T]{x0, y0}, Point[T]{x1, y1}}
}

// BConv converts an AABB[In] to an AABB[Out] with possible loss of
// precision.
func BConv[Out Scalar, In Scalar](b AABB[In]) AABB[Out] {
	return AABB[Out]{
		Min: PConv[Out](b.Min),
		Max: PConv[Out](b.Max),
	}
}

// Rect converts b to the Rect covering the same points. The result is
// empty if b is empty.
func (b AABB[T]) Rect() Rect[T] {
	return Rt(b.Min.X, b.Min.Y, b.Max.X-b.Min.X+1, b.Max.Y-b.Min.Y+1)
}

func (b AABB[T]) Size() Size[T] {
	return Size[T]{b.Max.X - b.Min.X + 1, b.Max.Y - b.Min.Y + 1}
}

func (b AABB[T]) Center() Point[T] {
	return b.Rect().Center()
}

// IsEmpty reports whether b contains no points.
func (b AABB[T]) IsEmpty() bool {
	return (b.Max.X < b.Min.X) || (b.Max.Y < b.Min.Y)
}

// Eq reports whether b and o contain the same set of points. All
// empty boxes are considered equal.
func (b AABB[T]) Eq(o AABB[T]) bool {
	return (b == o) || (b.IsEmpty() && o.IsEmpty())
}

// Contains reports whether p is inside b. Points on b's boundary are
// inside.
func (b AABB[T]) Contains(p Point[T]) bool {
	return b.Rect().Contains(p)
}

// ContainsAABB reports whether every point of o is inside b. An empty
// o is inside everything.
func (b AABB[T]) ContainsAABB(o AABB[T]) bool {
	return b.Rect().ContainsRect(o.Rect())
}

// Intersects reports whether b and o share at least one point. Boxes
// that only touch along an edge or at a corner intersect.
func (b AABB[T]) Intersects(o AABB[T]) bool {
	return b.Rect().Intersects(o.Rect())
}

// Intersection returns the largest box contained by both b and o. If
// they do not intersect, the result is empty.
func (b AABB[T]) Intersection(o AABB[T]) AABB[T] {
	return b.Rect().Intersection(o.Rect()).AABB()
}

// Union returns the smallest box that contains both b and o. If
// either is empty, it returns the other.
func (b AABB[T]) Union(o AABB[T]) AABB[T] {
	if b.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return b
	}
	return AABB[T]{
		Min: Min(b.Min, o.Min),
		Max: Max(b.Max, o.Max),
	}
}

// Offset returns b displaced by v.
func (b AABB[T]) Offset(v Vector[T]) AABB[T] {
	return AABB[T]{b.Min.Add(v), b.Max.Add(v)}
}

// ExpandToInclude returns the smallest box that contains every point
// of b as well as p. If b is empty, it returns the unit-size box at
// p.
func (b AABB[T]) ExpandToInclude(p Point[T]) AABB[T] {
	if b.IsEmpty() {
		return AABB[T]{p, p}
	}
	return AABB[T]{
		Min: Min(b.Min, p),
		Max: Max(b.Max, p),
	}
}

// IntersectsCircle reports whether b and c share at least one point.
func (b AABB[T]) IntersectsCircle(c Circle[T]) bool {
	return b.Rect().IntersectsCircle(c)
}

func (b AABB[T]) String() string {
	return fmt.Sprintf("%v-%v", b.Min, b.Max)
}
