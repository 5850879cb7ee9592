package problemgen

// Config controls the behavior of the Generator.
type Config struct {
	// MinLeg and MaxLeg bound the random leg lengths before normalization.
	// Keeping MaxLeg/MinLeg <= 5 bounds how skewed the triangle can look.
	MinLeg float64
	MaxLeg float64

	// SwapProbability is the chance of swapping A and B, which flips the
	// triangle's winding order.
	SwapProbability float64

	// Schemes is the table of naming schemes to draw from.
	Schemes []NamingScheme

	// Validators run in order on every generated problem; the first
	// failure aborts the round.
	Validators []Validator
}

// DefaultSchemes returns the fixed naming-scheme table.
func DefaultSchemes() []NamingScheme {
	return []NamingScheme{
		{Angles: [2]string{"P", "Q"}, Sides: [3]string{"r", "s", "t"}},
		{Angles: [2]string{"A", "B"}, Sides: [3]string{"t", "u", "v"}},
		{Angles: [2]string{"α", "β"}, Sides: [3]string{"w", "h", "r"}},
	}
}

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults.
func DefaultConfig() Config {
	return Config{
		MinLeg:          0.2,
		MaxLeg:          1.0,
		SwapProbability: 0.5,
		Schemes:         DefaultSchemes(),
		Validators: []Validator{
			&StructuralValidator{},
			&TrigValidator{},
		},
	}
}
