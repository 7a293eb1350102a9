package xgeom

import (
	"fmt"
	"image"

	"golang.org/x/exp/constraints"
)

// A Point is a position in 2D space. It is distinct from a [Vector]
// so that positions and displacements do not mix accidentally.
type Point[T Scalar] struct {
	X, Y T
}

// Pt is shorthand for Point[T]{X, Y}.
func Pt[T Scalar](X, Y T) Point[T] {
	return Point[T]{X, Y}
}

// FromImagePoint converts an image.Point to a Point[int].
func FromImagePoint(p image.Point) Point[int] {
	return Pt(p.X, p.Y)
}

// PConv converts a Point[In] to a Point[Out] with possible loss of
// precision.
func PConv[Out Scalar, In Scalar](p Point[In]) Point[Out] {
	return Pt(Out(p.X), Out(p.Y))
}

// Add returns p displaced by v.
func (p Point[T]) Add(v Vector[T]) Point[T] {
	return Point[T]{p.X + v.X, p.Y + v.Y}
}

// Sub returns the displacement from q to p.
func (p Point[T]) Sub(q Point[T]) Vector[T] {
	return Vector[T]{p.X - q.X, p.Y - q.Y}
}

func (p Point[T]) Mul(k T) Point[T] {
	return Point[T]{p.X * k, p.Y * k}
}

func (p Point[T]) Div(k T) Point[T] {
	return Point[T]{p.X / k, p.Y / k}
}

// Lerp returns the point a fraction t of the way from p to q. t 0 is
// p and t 1 is q.
func (p Point[T]) Lerp(q Point[T], t T) Point[T] {
	return Point[T]{
		p.X + (q.X-p.X)*t,
		p.Y + (q.Y-p.Y)*t,
	}
}

// DistSq returns the square of the distance between p and q.
func (p Point[T]) DistSq(q Point[T]) T {
	dx, dy := p.X-q.X, p.Y-q.Y
	return dx*dx + dy*dy
}

// In reports whether p is inside r. It is shorthand for r.Contains(p).
func (p Point[T]) In(r Rect[T]) bool {
	return r.Contains(p)
}

func (p Point[T]) IsZero() bool {
	return (p.X == 0) && (p.Y == 0)
}

// Vector returns the displacement from the origin to p.
func (p Point[T]) Vector() Vector[T] {
	return Vector[T](p)
}

func (p Point[T]) ImagePoint() image.Point {
	return image.Pt(int(p.X), int(p.Y))
}

func (p Point[T]) String() string {
	return fmt.Sprintf("(%v,%v)", p.X, p.Y)
}

// Min returns the componentwise minimum of points.
func Min[T Scalar](points ...Point[T]) Point[T] {
	r := points[0]
	for _, p := range points[1:] {
		r.X = min(r.X, p.X)
		r.Y = min(r.Y, p.Y)
	}
	return r
}

// Max returns the componentwise maximum of points.
func Max[T Scalar](points ...Point[T]) Point[T] {
	r := points[0]
	for _, p := range points[1:] {
		r.X = max(r.X, p.X)
		r.Y = max(r.Y, p.Y)
	}
	return r
}

// Distance returns the distance between p and q.
func Distance[T Float](p, q Point[T]) T {
	return sqrt(p.DistSq(q))
}

// Mod returns the point q inside r such that p.X-q.X is a multiple of
// r's width and p.Y-q.Y is a multiple of r's height. It is useful for
// wrapping coordinates in a toroidal space.
func Mod[T constraints.Integer](p Point[T], r Rect[T]) Point[T] {
	x := (p.X - r.X) % r.Width
	if x < 0 {
		x += r.Width
	}
	y := (p.Y - r.Y) % r.Height
	if y < 0 {
		y += r.Height
	}
	return Pt(x+r.X, y+r.Y)
}
