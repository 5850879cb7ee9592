package problemgen

import (
	"errors"
	"fmt"
)

// ErrUnknownFunction means a TrigFunc outside Sine/Cosine/Tangent reached the
// side lookup. It can only happen if random selection is broken.
var ErrUnknownFunction = errors.New("unknown trig function")

// ErrBadAngle means a known-angle index other than 0 or 1 was requested.
var ErrBadAngle = errors.New("known angle must be 0 or 1")

// ErrNoSchemes means the generator was configured without naming schemes.
var ErrNoSchemes = errors.New("no naming schemes configured")

// MalformedTokenError reports a fraction token that does not split into
// exactly one numerator and one denominator.
type MalformedTokenError struct {
	Equation string
	Token    string
}

func (e *MalformedTokenError) Error() string {
	return fmt.Sprintf("malformed fraction %q in equation %q", e.Token, e.Equation)
}
