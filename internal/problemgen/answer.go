package problemgen

import "fmt"

// ratioSides maps (function, known angle) to the (numerator, denominator)
// side indices of the ratio that defines the function at that angle.
var ratioSides = map[TrigFunc][2][2]int{
	Sine:    {{0, 2}, {1, 2}},
	Cosine:  {{1, 2}, {0, 2}},
	Tangent: {{0, 1}, {1, 0}},
}

// RatioSides returns the numerator and denominator side indices for fn at
// the given known angle (0=A, 1=B).
func RatioSides(fn TrigFunc, knownAngle int) (num, den int, err error) {
	pairs, ok := ratioSides[fn]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %v", ErrUnknownFunction, fn)
	}
	if knownAngle != 0 && knownAngle != 1 {
		return 0, 0, fmt.Errorf("%w: got %d", ErrBadAngle, knownAngle)
	}
	pair := pairs[knownAngle]
	return pair[0], pair[1], nil
}

// FormatEquation renders "func angle = num/den".
func FormatEquation(fn TrigFunc, angle, num, den string) string {
	return fmt.Sprintf("%s %s = %s/%s", fn, angle, num, den)
}

// buildAnswers returns the correct equation at CorrectIndex followed by the
// five distractors: every other combination of function and ratio
// orientation over the same angle and the same two sides.
func buildAnswers(p *Problem) [AnswerCount]string {
	angle := p.AngleName()
	num := p.SideName(p.Numerator)
	den := p.SideName(p.Denominator)

	var answers [AnswerCount]string
	answers[CorrectIndex] = FormatEquation(p.Func, angle, num, den)

	i := 0
	for _, fn := range trigFuncs {
		for _, inverted := range []bool{false, true} {
			if fn == p.Func && !inverted {
				continue
			}
			i++
			if inverted {
				answers[i] = FormatEquation(fn, angle, den, num)
			} else {
				answers[i] = FormatEquation(fn, angle, num, den)
			}
		}
	}
	return answers
}
