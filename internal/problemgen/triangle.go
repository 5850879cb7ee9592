package problemgen

import (
	"math"
	"math/rand/v2"

	"github.com/abhisek/trigbot/internal/geom"
)

// NewTriangle draws a random right triangle normalized into the unit square.
func NewTriangle(rng *rand.Rand, cfg Config) Triangle {
	legA := cfg.MinLeg + (cfg.MaxLeg-cfg.MinLeg)*rng.Float64()
	legB := cfg.MinLeg + (cfg.MaxLeg-cfg.MinLeg)*rng.Float64()
	angle := 2 * math.Pi * rng.Float64()
	swap := rng.Float64() < cfg.SwapProbability
	return BuildTriangle(legA, legB, angle, swap)
}

// BuildTriangle constructs the normalized triangle with legs legA (along x)
// and legB (along y), rotated by angle and optionally with A and B swapped.
//
// After normalization the minimum x and y are exactly 0 and the largest
// coordinate is exactly 1.
func BuildTriangle(legA, legB, angle float64, swap bool) Triangle {
	pts := [3]geom.Point{
		geom.Rotate(geom.Point{X: legA, Y: 0}, angle),
		geom.Rotate(geom.Point{X: 0, Y: legB}, angle),
		geom.Rotate(geom.Point{X: 0, Y: 0}, angle),
	}

	xmin := math.Min(pts[0].X, math.Min(pts[1].X, pts[2].X))
	ymin := math.Min(pts[0].Y, math.Min(pts[1].Y, pts[2].Y))
	for i := range pts {
		pts[i].X -= xmin
		pts[i].Y -= ymin
	}

	var cmax float64
	for _, p := range pts {
		cmax = math.Max(cmax, math.Max(p.X, p.Y))
	}
	for i := range pts {
		pts[i].X /= cmax
		pts[i].Y /= cmax
	}

	t := Triangle{A: pts[0], B: pts[1], C: pts[2]}
	if swap {
		t.A, t.B = t.B, t.A
	}
	return t
}
