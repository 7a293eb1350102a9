// Package xgeom provides generic 2D geometry and collision primitives.
//
// It is patterned after image.Point and image.Rectangle, but it is
// generic over its coordinate type and vastly extends their
// capabilities with vectors, circles, boxes, line segments, rays, and
// the intersection queries between them.
//
// Coordinates follow the screen convention: X grows rightwards and Y
// grows downwards. Unlike the image package, rectangles and boxes
// treat both of their edges on each axis as inclusive. See [Rect] for
// details.
package xgeom

// Scalar is a constraint for the types that xgeom types and functions
// can handle.
type Scalar interface {
	~float32 | ~float64 | Integer
}

// Integer is a constraint for any integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is a constraint for the subset of Scalar types that have
// fractional precision. Operations that involve square roots, angles,
// or division by arbitrary directions require it and are rejected at
// compile time for integer types.
type Float interface {
	~float32 | ~float64
}

// Edges is a bitmask representing zero or more edges of a rectangle.
type Edges uint32

const (
	EdgeNone Edges = 0
	EdgeTop  Edges = 1 << (iota - 1)
	EdgeBottom
	EdgeLeft
	EdgeRight
)
