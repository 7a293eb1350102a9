package xgeom

import "fmt"

// A Circle is the closed disk of points within Radius of Center.
type Circle[T Scalar] struct {
	Center Point[T]
	Radius T
}

// Circ is shorthand for Circle[T]{Pt(x, y), r}.
func Circ[T Scalar](x, y, r T) Circle[T] {
	return Circle[T]{Point[T]{x, y}, r}
}

// CConv converts a Circle[In] to a Circle[Out] with possible loss of
// precision.
func CConv[Out Scalar, In Scalar](c Circle[In]) Circle[Out] {
	return Circle[Out]{
		Center: PConv[Out](c.Center),
		Radius: Out(c.Radius),
	}
}

// RadiusSq returns the square of c's radius.
func (c Circle[T]) RadiusSq() T {
	return c.Radius * c.Radius
}

// IsEmpty reports whether c contains no points, which is the case
// only with a negative Radius. A Radius of zero still contains the
// center point.
func (c Circle[T]) IsEmpty() bool {
	return c.Radius < 0
}

// Contains reports whether p is inside c. Points on c's boundary are
// inside.
func (c Circle[T]) Contains(p Point[T]) bool {
	return !c.IsEmpty() && (c.Center.DistSq(p) <= c.RadiusSq())
}

// Intersects reports whether c and o share at least one point.
// Circles that only touch at a single point intersect.
func (c Circle[T]) Intersects(o Circle[T]) bool {
	if c.IsEmpty() || o.IsEmpty() {
		return false
	}
	r := c.Radius + o.Radius
	return c.Center.DistSq(o.Center) <= r*r
}

// IntersectsRect reports whether c and r share at least one point.
func (c Circle[T]) IntersectsRect(r Rect[T]) bool {
	return r.IntersectsCircle(c)
}

// IntersectsAABB reports whether c and b share at least one point.
func (c Circle[T]) IntersectsAABB(b AABB[T]) bool {
	return b.Rect().IntersectsCircle(c)
}

// Offset returns c displaced by v.
func (c Circle[T]) Offset(v Vector[T]) Circle[T] {
	return Circle[T]{c.Center.Add(v), c.Radius}
}

func (c Circle[T]) String() string {
	return fmt.Sprintf("%v+%v", c.Center, c.Radius)
}
