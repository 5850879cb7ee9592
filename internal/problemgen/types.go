package problemgen

import (
	"fmt"

	"github.com/abhisek/trigbot/internal/geom"
)

// AnswerCount is the number of multiple-choice answers per problem:
// three functions times two ratio orientations.
const AnswerCount = 6

// CorrectIndex is the position of the correct answer in Problem.Answers.
// Correctness is always decided by this index, never by comparing text.
const CorrectIndex = 0

// TrigFunc selects one of the three basic trigonometric functions.
type TrigFunc int

const (
	Sine TrigFunc = iota
	Cosine
	Tangent
)

// trigFuncs lists the functions in the order used to build answers.
var trigFuncs = [...]TrigFunc{Sine, Cosine, Tangent}

// String returns the abbreviation used in equations ("sin", "cos", "tan").
func (f TrigFunc) String() string {
	switch f {
	case Sine:
		return "sin"
	case Cosine:
		return "cos"
	case Tangent:
		return "tan"
	}
	return fmt.Sprintf("TrigFunc(%d)", int(f))
}

// Triangle is a right triangle with the right angle at C.
// Side i is the side opposite vertex i: side 0 joins B and C, side 1 joins
// A and C, side 2 (the hypotenuse) joins A and B.
type Triangle struct {
	A, B, C geom.Point
}

// Vertex returns vertex i (0=A, 1=B, 2=C).
func (t Triangle) Vertex(i int) geom.Point {
	switch i {
	case 0:
		return t.A
	case 1:
		return t.B
	default:
		return t.C
	}
}

// Side returns the endpoints of side i, which is opposite vertex i.
func (t Triangle) Side(i int) (geom.Point, geom.Point) {
	switch i {
	case 0:
		return t.B, t.C
	case 1:
		return t.A, t.C
	default:
		return t.A, t.B
	}
}

// SideLength returns the length of side i.
func (t Triangle) SideLength(i int) float64 {
	p, q := t.Side(i)
	return geom.Distance(p, q)
}

// Clockwise reports whether A→B→C winds clockwise in y-up coordinates.
func (t Triangle) Clockwise() bool {
	ab := t.B.Sub(t.A)
	ac := t.C.Sub(t.A)
	return ab.X*ac.Y-ab.Y*ac.X < 0
}

// NamingScheme pairs names for the two acute angles with names for the
// three sides (two legs, then the hypotenuse).
type NamingScheme struct {
	Angles [2]string
	Sides  [3]string
}

// Problem is one quiz round: a triangle, its labels, the question and the
// six candidate equations.
type Problem struct {
	Triangle Triangle
	Scheme   NamingScheme

	// Func is the trig function of the correct equation.
	Func TrigFunc

	// KnownAngle is the index (0=A, 1=B) of the angle given in the question.
	KnownAngle int

	// Numerator and Denominator are the side indices of the correct ratio.
	Numerator   int
	Denominator int

	// KnownSide and WantedSide are the same two sides, split by the role
	// they play in the question text.
	KnownSide  int
	WantedSide int

	// Answers holds the equations; Answers[CorrectIndex] is the right one.
	Answers [AnswerCount]string

	// Order maps display slots to answer indices: slot i shows
	// Answers[Order[i]].
	Order [AnswerCount]int
}

// AngleName returns the name of the known angle.
func (p *Problem) AngleName() string {
	return p.Scheme.Angles[p.KnownAngle]
}

// SideName returns the name of side i.
func (p *Problem) SideName(i int) string {
	return p.Scheme.Sides[i]
}

// Question returns the one-line prompt shown above the answers.
func (p *Problem) Question() string {
	return fmt.Sprintf("Given: %s and %s; Wanted: %s",
		p.AngleName(), p.SideName(p.KnownSide), p.SideName(p.WantedSide))
}

// CorrectAnswer returns the text of the correct equation.
func (p *Problem) CorrectAnswer() string {
	return p.Answers[CorrectIndex]
}

// IsCorrect reports whether answer index i is the correct one.
func (p *Problem) IsCorrect(i int) bool {
	return i == CorrectIndex
}
