package problemgen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProblem(t *testing.T) *Problem {
	t.Helper()
	p, err := Build(BuildTriangle(0.7, 0.35, 0.9, false), DefaultSchemes()[1], Cosine, 0, true, [AnswerCount]int{2, 0, 5, 1, 4, 3})
	require.NoError(t, err)
	return p
}

func TestStructuralValidator(t *testing.T) {
	v := &StructuralValidator{}

	tests := []struct {
		name    string
		mutate  func(p *Problem)
		wantErr bool
	}{
		{"valid", func(p *Problem) {}, false},
		{"duplicate answer", func(p *Problem) { p.Answers[4] = p.Answers[1] }, true},
		{"malformed fraction", func(p *Problem) { p.Answers[2] = "cos A = t/u/v" }, true},
		{"foreign side", func(p *Problem) { p.Answers[3] = "sin A = t/z" }, true},
		{"foreign angle", func(p *Problem) { p.Answers[5] = "tan B = u/v" }, true},
		{"missing fraction", func(p *Problem) { p.Answers[1] = "sin A = u" }, true},
		{"order not a permutation", func(p *Problem) { p.Order[0] = p.Order[1] }, true},
		{"order out of range", func(p *Problem) { p.Order[0] = 6 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProblem(t)
			tt.mutate(p)
			verr := v.Validate(p)
			if tt.wantErr {
				require.NotNil(t, verr)
				assert.Equal(t, "structural", verr.Validator)
				return
			}
			assert.Nil(t, verr)
		})
	}
}

func TestTrigValidator(t *testing.T) {
	v := &TrigValidator{}

	p := validProblem(t)
	assert.Nil(t, v.Validate(p))

	// Swapping the ratio makes the recorded equation false.
	p.Numerator, p.Denominator = p.Denominator, p.Numerator
	verr := v.Validate(p)
	require.NotNil(t, verr)
	assert.Contains(t, verr.Error(), `validator "trig"`)

	p = validProblem(t)
	p.Func = TrigFunc(42)
	require.NotNil(t, v.Validate(p))
}

type rejectAll struct{}

func (rejectAll) Name() string { return "reject" }
func (rejectAll) Validate(*Problem) *ValidationError {
	return &ValidationError{Validator: "reject", Message: "no"}
}

func TestGenerate_ValidatorFailureAbortsRound(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Validators = append(cfg.Validators, rejectAll{})

	p, err := New(testRNG(9), cfg).Generate()
	assert.Nil(t, p)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "reject", verr.Validator)
}
