package xgeom

import "fmt"

// A Segment is the set of points between and including its two
// endpoints, parameterized so that 0 is Start and 1 is End.
//
// Segments and rays require a [Float] coordinate type because nearly
// everything useful about them involves dividing by the components of
// their direction.
type Segment[T Float] struct {
	Start, End Point[T]
}

// Seg is shorthand for Segment[T]{Pt(x0, y0), Pt(x1, y1)}.
func Seg[T Float](x0, y0, x1, y1 T) Segment[T] {
	return Segment[T]{Point[T]{x0, y0}, Point[T]{x1, y1}}
}

// Direction returns the displacement from s.Start to s.End. It is not
// normalized.
func (s Segment[T]) Direction() Vector[T] {
	return s.End.Sub(s.Start)
}

// At returns the point a fraction t of the way along s.
func (s Segment[T]) At(t T) Point[T] {
	return s.Start.Add(s.Direction().Mul(t))
}

// Len returns the length of s.
func (s Segment[T]) Len() T {
	return Length(s.Direction())
}

func (s Segment[T]) Midpoint() Point[T] {
	return s.At(0.5)
}

// Offset returns s displaced by v.
func (s Segment[T]) Offset(v Vector[T]) Segment[T] {
	return Segment[T]{s.Start.Add(v), s.End.Add(v)}
}

// Reverse returns s with its endpoints swapped.
func (s Segment[T]) Reverse() Segment[T] {
	return Segment[T]{s.End, s.Start}
}

func (s Segment[T]) String() string {
	return fmt.Sprintf("%v-%v", s.Start, s.End)
}

// A Ray is the half-line of points from Origin in the direction of
// Dir, parameterized so that 0 is Origin and 1 is Origin displaced by
// Dir.
//
// A ray's queries depend only on Dir's direction, never on its
// length: scaling Dir scales the parameters they report inversely but
// leaves every reported point and boolean unchanged.
type Ray[T Float] struct {
	Origin Point[T]
	Dir    Vector[T]
}

// At returns the point at parameter t along r.
func (r Ray[T]) At(t T) Point[T] {
	return r.Origin.Add(r.Dir.Mul(t))
}

// Normalize returns r with a unit-length Dir, putting its parameters
// in units of distance. It returns r unchanged and false if Dir's
// length is zero.
func (r Ray[T]) Normalize() (Ray[T], bool) {
	d, ok := Normalize(r.Dir)
	if !ok {
		return r, false
	}
	return Ray[T]{r.Origin, d}, true
}

// Offset returns r displaced by v.
func (r Ray[T]) Offset(v Vector[T]) Ray[T] {
	return Ray[T]{r.Origin.Add(v), r.Dir}
}

func (r Ray[T]) String() string {
	return fmt.Sprintf("%v->%v", r.Origin, r.Dir)
}
