package problemgen

import (
	"fmt"
	"math/rand/v2"
)

// Generator produces randomized trig problems. It is not safe for
// concurrent use because it owns its random source.
type Generator struct {
	rng *rand.Rand
	cfg Config
}

// New creates a Generator drawing from rng.
func New(rng *rand.Rand, cfg Config) *Generator {
	return &Generator{rng: rng, cfg: cfg}
}

// Generate produces a new triangle, question and shuffled answer set.
// All configured validators are run before returning.
func (g *Generator) Generate() (*Problem, error) {
	if len(g.cfg.Schemes) == 0 {
		return nil, ErrNoSchemes
	}

	tri := NewTriangle(g.rng, g.cfg)
	scheme := g.cfg.Schemes[g.rng.IntN(len(g.cfg.Schemes))]
	fn := trigFuncs[g.rng.IntN(len(trigFuncs))]
	known := g.rng.IntN(2)
	wantNumerator := g.rng.IntN(2) == 0
	order := Shuffle(g.rng)

	p, err := Build(tri, scheme, fn, known, wantNumerator, order)
	if err != nil {
		return nil, err
	}

	for _, v := range g.cfg.Validators {
		if verr := v.Validate(p); verr != nil {
			return nil, verr
		}
	}
	return p, nil
}

// Build assembles a Problem from already-chosen parts. wantNumerator picks
// whether the numerator or the denominator side is the one asked for.
func Build(tri Triangle, scheme NamingScheme, fn TrigFunc, knownAngle int, wantNumerator bool, order [AnswerCount]int) (*Problem, error) {
	num, den, err := RatioSides(fn, knownAngle)
	if err != nil {
		return nil, fmt.Errorf("build problem: %w", err)
	}

	p := &Problem{
		Triangle:    tri,
		Scheme:      scheme,
		Func:        fn,
		KnownAngle:  knownAngle,
		Numerator:   num,
		Denominator: den,
		KnownSide:   num,
		WantedSide:  den,
		Order:       order,
	}
	if wantNumerator {
		p.KnownSide, p.WantedSide = den, num
	}
	p.Answers = buildAnswers(p)
	return p, nil
}

// Shuffle returns a Fisher–Yates permutation of the answer indices.
func Shuffle(rng *rand.Rand) [AnswerCount]int {
	var order [AnswerCount]int
	for i := range order {
		order[i] = i
	}
	for i := len(order) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		order[i], order[j] = order[j], order[i]
	}
	return order
}
