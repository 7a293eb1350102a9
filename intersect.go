package xgeom

import "math"

// A Hit describes the first point at which a segment or a ray meets a
// shape: T is the parameter along the query at which it happens and
// Point is the location itself.
type Hit[T Float] struct {
	T     T
	Point Point[T]
}

// clipSlab narrows the parameter interval [t0, t1] of origin+t*dir to
// the portion inside r. A direction component smaller than Epsilon in
// magnitude turns its axis into a containment test on the origin.
func clipSlab[T Float](origin Point[T], dir Vector[T], r Rect[T], t0, t1 T) (T, T, bool) {
	eps := Epsilon[T]()

	if abs(dir.X) < eps {
		if (origin.X < r.X) || (origin.X > r.Right()) {
			return 0, 0, false
		}
	} else {
		ta := (r.X - origin.X) / dir.X
		tb := (r.Right() - origin.X) / dir.X
		if ta > tb {
			ta, tb = tb, ta
		}
		t0, t1 = max(t0, ta), min(t1, tb)
	}

	if abs(dir.Y) < eps {
		if (origin.Y < r.Y) || (origin.Y > r.Bottom()) {
			return 0, 0, false
		}
	} else {
		ta := (r.Y - origin.Y) / dir.Y
		tb := (r.Bottom() - origin.Y) / dir.Y
		if ta > tb {
			ta, tb = tb, ta
		}
		t0, t1 = max(t0, ta), min(t1, tb)
	}

	return t0, t1, t0 <= t1
}

// hitCircle finds the smallest parameter in [0, tmax] at which
// origin+t*dir crosses c's boundary by solving the quadratic
// |origin+t*dir-center|² = radius². A zero direction crosses nothing.
func hitCircle[T Float](origin Point[T], dir Vector[T], c Circle[T], tmax T) (T, bool) {
	if c.IsEmpty() {
		return 0, false
	}
	a := dir.Dot(dir)
	if a == 0 {
		return 0, false
	}

	m := origin.Sub(c.Center)
	b := 2 * m.Dot(dir)
	disc := b*b - 4*a*(m.Dot(m)-c.RadiusSq())
	if disc < 0 {
		return 0, false
	}

	s := sqrt(disc)
	if t := (-b - s) / (2 * a); (t >= 0) && (t <= tmax) {
		return t, true
	}
	if t := (-b + s) / (2 * a); (t >= 0) && (t <= tmax) {
		return t, true
	}
	return 0, false
}

// ClipRect returns the parameter interval of s that is inside r. It
// returns false if no part of s is inside r.
func (s Segment[T]) ClipRect(r Rect[T]) (t0, t1 T, ok bool) {
	if r.IsEmpty() {
		return 0, 0, false
	}
	return clipSlab(s.Start, s.Direction(), r, 0, 1)
}

// ClipAABB returns the parameter interval of s that is inside b.
func (s Segment[T]) ClipAABB(b AABB[T]) (t0, t1 T, ok bool) {
	return s.ClipRect(b.Rect())
}

// IntersectsRect reports whether any part of s is inside r.
func (s Segment[T]) IntersectsRect(r Rect[T]) bool {
	_, _, ok := s.ClipRect(r)
	return ok
}

// IntersectRect returns the first point of s inside r. The hit
// parameter is 0 if s starts inside. It returns false if no part of s
// is inside r.
func (s Segment[T]) IntersectRect(r Rect[T]) (Hit[T], bool) {
	t, _, ok := s.ClipRect(r)
	if !ok {
		return Hit[T]{}, false
	}
	return Hit[T]{T: t, Point: s.At(t)}, true
}

// IntersectsAABB reports whether any part of s is inside b.
func (s Segment[T]) IntersectsAABB(b AABB[T]) bool {
	return s.IntersectsRect(b.Rect())
}

// IntersectAABB returns the first point of s inside b. It returns
// false if no part of s is inside b.
func (s Segment[T]) IntersectAABB(b AABB[T]) (Hit[T], bool) {
	return s.IntersectRect(b.Rect())
}

// IntersectsCircle reports whether any part of s is inside c.
func (s Segment[T]) IntersectsCircle(c Circle[T]) bool {
	if c.IsEmpty() {
		return false
	}
	d := s.Direction()
	t := T(0)
	if a := d.Dot(d); a != 0 {
		t = clamp(c.Center.Sub(s.Start).Dot(d)/a, 0, 1)
	}
	return s.At(t).DistSq(c.Center) <= c.RadiusSq()
}

// IntersectCircle returns the first point at which s crosses c's
// boundary. A segment that lies entirely inside c crosses nothing and
// reports no hit; use [Segment.IntersectsCircle] to test for overlap
// instead. It returns false if s does not cross c.
func (s Segment[T]) IntersectCircle(c Circle[T]) (Hit[T], bool) {
	t, ok := hitCircle(s.Start, s.Direction(), c, 1)
	if !ok {
		return Hit[T]{}, false
	}
	return Hit[T]{T: t, Point: s.At(t)}, true
}

// ClipRect returns the parameter interval of r that is inside rect.
// It returns false if no part of r is inside rect. The interval is
// unbounded only when Dir is treated as zero on both axes and Origin
// is inside rect.
func (r Ray[T]) ClipRect(rect Rect[T]) (t0, t1 T, ok bool) {
	if rect.IsEmpty() {
		return 0, 0, false
	}
	return clipSlab(r.Origin, r.Dir, rect, 0, T(math.Inf(1)))
}

// ClipAABB returns the parameter interval of r that is inside b.
func (r Ray[T]) ClipAABB(b AABB[T]) (t0, t1 T, ok bool) {
	return r.ClipRect(b.Rect())
}

// IntersectsRect reports whether any part of r is inside rect.
func (r Ray[T]) IntersectsRect(rect Rect[T]) bool {
	_, _, ok := r.ClipRect(rect)
	return ok
}

// IntersectRect returns the first point of r inside rect. The hit
// parameter is 0 if r starts inside. It returns false if r never
// enters rect.
func (r Ray[T]) IntersectRect(rect Rect[T]) (Hit[T], bool) {
	t, _, ok := r.ClipRect(rect)
	if !ok {
		return Hit[T]{}, false
	}
	return Hit[T]{T: t, Point: r.At(t)}, true
}

// IntersectsAABB reports whether any part of r is inside b.
func (r Ray[T]) IntersectsAABB(b AABB[T]) bool {
	return r.IntersectsRect(b.Rect())
}

// IntersectAABB returns the first point of r inside b. It returns
// false if r never enters b.
func (r Ray[T]) IntersectAABB(b AABB[T]) (Hit[T], bool) {
	return r.IntersectRect(b.Rect())
}

// IntersectsCircle reports whether any part of r is inside c.
func (r Ray[T]) IntersectsCircle(c Circle[T]) bool {
	if c.IsEmpty() {
		return false
	}
	t := T(0)
	if a := r.Dir.Dot(r.Dir); a != 0 {
		t = max(c.Center.Sub(r.Origin).Dot(r.Dir)/a, 0)
	}
	return r.At(t).DistSq(c.Center) <= c.RadiusSq()
}

// IntersectCircle returns the first point at which r crosses c's
// boundary. A ray that starts inside c reports the crossing on its
// way out. It returns false if r never crosses c.
func (r Ray[T]) IntersectCircle(c Circle[T]) (Hit[T], bool) {
	t, ok := hitCircle(r.Origin, r.Dir, c, T(math.Inf(1)))
	if !ok {
		return Hit[T]{}, false
	}
	return Hit[T]{T: t, Point: r.At(t)}, true
}

// NearestEdge returns the edge of r whose supporting line is nearest
// to p. Ties resolve in the order EdgeLeft, EdgeRight, EdgeTop,
// EdgeBottom, so a corner point resolves to its vertical edge. It
// returns EdgeNone for an empty r.
func NearestEdge[T Float](r Rect[T], p Point[T]) Edges {
	if r.IsEmpty() {
		return EdgeNone
	}

	best, e := abs(p.X-r.X), EdgeLeft
	if d := abs(p.X - r.Right()); d < best {
		best, e = d, EdgeRight
	}
	if d := abs(p.Y - r.Y); d < best {
		best, e = d, EdgeTop
	}
	if d := abs(p.Y - r.Bottom()); d < best {
		e = EdgeBottom
	}
	return e
}

// NearestEdgeAABB returns the edge of b whose supporting line is
// nearest to p.
func NearestEdgeAABB[T Float](b AABB[T], p Point[T]) Edges {
	return NearestEdge(b.Rect(), p)
}

// FaceNormal returns the outward unit normal of the face of r nearest
// to p, resolving ties the way NearestEdge does. Y grows downwards,
// so the top face's normal is Vec(0, -1). It returns the zero vector
// for an empty r.
func FaceNormal[T Float](r Rect[T], p Point[T]) Vector[T] {
	switch NearestEdge(r, p) {
	case EdgeLeft:
		return Vector[T]{-1, 0}
	case EdgeRight:
		return Vector[T]{1, 0}
	case EdgeTop:
		return Vector[T]{0, -1}
	case EdgeBottom:
		return Vector[T]{0, 1}
	}
	return Vector[T]{}
}

// FaceNormalAABB returns the outward unit normal of the face of b
// nearest to p.
func FaceNormalAABB[T Float](b AABB[T], p Point[T]) Vector[T] {
	return FaceNormal(b.Rect(), p)
}
