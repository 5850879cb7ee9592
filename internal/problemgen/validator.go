package problemgen

import (
	"fmt"
	"math"
	"strings"

	"github.com/abhisek/trigbot/internal/geom"
)

// Validator checks a generated problem for correctness.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator (for error messages
	// and logging), e.g. "structural", "trig".
	Name() string

	// Validate checks the problem and returns nil if it passes.
	Validate(p *Problem) *ValidationError
}

// ValidationError describes why a problem failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// StructuralValidator checks that the answers are distinct, well formed and
// all built from the same angle and the same two sides, and that Order is a
// permutation.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(p *Problem) *ValidationError {
	seen := make(map[string]bool, AnswerCount)
	want := operandSet(p.AngleName(), p.SideName(p.Numerator), p.SideName(p.Denominator))
	for i, a := range p.Answers {
		if seen[a] {
			return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("duplicate answer %q", a)}
		}
		seen[a] = true

		tokens, err := Tokenize(a)
		if err != nil {
			return &ValidationError{Validator: v.Name(), Message: err.Error()}
		}
		if len(tokens) != 4 || tokens[3].Kind != TokenFraction {
			return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("answer %d has unexpected shape %q", i, a)}
		}
		if got := operandSet(tokens[1].Text, tokens[3].Num, tokens[3].Den); got != want {
			return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("answer %d uses operands %s, want %s", i, got, want)}
		}
	}

	var used [AnswerCount]bool
	for _, idx := range p.Order {
		if idx < 0 || idx >= AnswerCount || used[idx] {
			return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("display order %v is not a permutation", p.Order)}
		}
		used[idx] = true
	}
	return nil
}

// operandSet returns a canonical form of (angle, {side1, side2}).
func operandSet(angle, s1, s2 string) string {
	if s2 < s1 {
		s1, s2 = s2, s1
	}
	return angle + ":" + strings.Join([]string{s1, s2}, ",")
}

// TrigValidator measures the triangle and checks that the correct equation
// really holds for the known angle.
type TrigValidator struct{}

func (v *TrigValidator) Name() string { return "trig" }

func (v *TrigValidator) Validate(p *Problem) *ValidationError {
	t := p.Triangle
	vertex := t.Vertex(p.KnownAngle)
	other := t.Vertex(1 - p.KnownAngle)
	cosAngle := geom.Unit(vertex, t.C).Dot(geom.Unit(vertex, other))
	angle := math.Acos(math.Max(-1, math.Min(1, cosAngle)))

	var fx float64
	switch p.Func {
	case Sine:
		fx = math.Sin(angle)
	case Cosine:
		fx = math.Cos(angle)
	case Tangent:
		fx = math.Tan(angle)
	default:
		return &ValidationError{Validator: v.Name(), Message: ErrUnknownFunction.Error()}
	}

	ratio := t.SideLength(p.Numerator) / t.SideLength(p.Denominator)
	if math.Abs(fx-ratio) > 1e-9*math.Max(1, math.Abs(ratio)) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("%s = %.6f but measured ratio is %.6f", p.CorrectAnswer(), fx, ratio),
		}
	}
	return nil
}
