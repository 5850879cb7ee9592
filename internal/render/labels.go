package render

import (
	"math"

	"github.com/abhisek/trigbot/internal/geom"
	"github.com/abhisek/trigbot/internal/problemgen"
)

// SideLabelPoint returns the centre of side i's label, in unit-square
// coordinates: dist away from the side's midpoint, on the side facing away
// from the opposite vertex, so outside the triangle for either winding.
func SideLabelPoint(t problemgen.Triangle, i int, dist float64) geom.Point {
	p, q := t.Side(i)
	mid := geom.Midpoint(p, q)
	n := geom.AwayFrom(geom.Perpendicular(p, q), mid, t.Vertex(i))
	return mid.Add(n.Scale(dist))
}

// AngleLabelPoint returns the centre of the label for acute angle i (0=A,
// 1=B), in unit-square coordinates. It lies on the angle's bisector, toward
// the opposite side, far enough from the vertex that a label of radius
// clearance fits between the two edges, but never past 45% of the bisector.
func AngleLabelPoint(t problemgen.Triangle, i int, clearance float64) geom.Point {
	vertex := t.Vertex(i)
	other := t.Vertex(1 - i)
	opposite := geom.Midpoint(t.Side(i))

	dir := geom.Bisector(vertex, other, t.C, opposite)

	cosAngle := geom.Unit(vertex, other).Dot(geom.Unit(vertex, t.C))
	half := math.Acos(math.Max(-1, math.Min(1, cosAngle))) / 2

	// The bisector meets the opposite leg after adjacent/cos(half).
	reach := geom.Distance(vertex, t.C) / math.Cos(half)
	dist := math.Min(clearance/math.Sin(half), 0.45*reach)
	return vertex.Add(dir.Scale(dist))
}

// RightAngleMarker returns the three points of the small square corner
// drawn at C, each leg of the marker size long.
func RightAngleMarker(t problemgen.Triangle, size float64) [3]geom.Point {
	ua := geom.Unit(t.C, t.A).Scale(size)
	ub := geom.Unit(t.C, t.B).Scale(size)
	return [3]geom.Point{
		t.C.Add(ua),
		t.C.Add(ua).Add(ub),
		t.C.Add(ub),
	}
}
