// Package geom holds the small amount of 2D vector math the quiz needs to
// build triangles and place labels around them. All functions are pure.
package geom

import (
	"errors"
	"math"
)

// ErrDegenerate is the panic value raised when a direction is requested
// between two coincident points. Callers must never pass such segments.
var ErrDegenerate = errors.New("geom: degenerate segment")

// Point is a 2D coordinate, also used as a vector.
type Point struct {
	X, Y float64
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p multiplied by k.
func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Len returns the length of p as a vector.
func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// Rotate returns p rotated counterclockwise about the origin by angle radians.
func Rotate(p Point, angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.Y*cos + p.X*sin,
	}
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return b.Sub(a).Len()
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// Unit returns the unit vector pointing from `from` to `to`.
// Panics with ErrDegenerate if the points coincide.
func Unit(from, to Point) Point {
	d := to.Sub(from)
	n := d.Len()
	if n == 0 {
		panic(ErrDegenerate)
	}
	return d.Scale(1 / n)
}

// Toward returns the point reached by moving length units from `from` in the
// direction of `to`.
func Toward(from, to Point, length float64) Point {
	return from.Add(Unit(from, to).Scale(length))
}

// Perpendicular returns the unit vector obtained by rotating the direction
// a→b by +90°. Which side of the segment it points to depends on the
// segment's direction; callers pick the side with a sign test.
func Perpendicular(a, b Point) Point {
	u := Unit(a, b)
	return Point{X: -u.Y, Y: u.X}
}

// Bisector returns a unit vector bisecting the rays vertex→p1 and vertex→p2,
// oriented so that it points to the same side as ref.
func Bisector(vertex, p1, p2, ref Point) Point {
	sum := Unit(vertex, p1).Add(Unit(vertex, p2))
	if sum.Len() == 0 {
		// Opposite rays: the bisector is perpendicular to both.
		sum = Perpendicular(vertex, p1)
	}
	b := Unit(Point{}, sum)
	if b.Dot(ref.Sub(vertex)) < 0 {
		b = b.Scale(-1)
	}
	return b
}

// AwayFrom flips v if needed so that it points away from ref as seen from
// origin, i.e. so that v·(ref-origin) <= 0.
func AwayFrom(v, origin, ref Point) Point {
	if v.Dot(ref.Sub(origin)) > 0 {
		return v.Scale(-1)
	}
	return v
}
