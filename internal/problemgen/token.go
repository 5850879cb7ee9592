package problemgen

import "strings"

// TokenKind classifies a piece of an equation for styling.
type TokenKind int

const (
	// TokenOperator is plain text: function names and "=".
	TokenOperator TokenKind = iota
	// TokenVariable is an angle or side name, drawn in italics.
	TokenVariable
	// TokenFraction is a ratio drawn as a stacked fraction with a bar.
	TokenFraction
)

// Token is one display unit of an equation.
type Token struct {
	Kind TokenKind
	Text string

	// Num and Den are set for TokenFraction.
	Num string
	Den string
}

// Tokenize splits an equation such as "sin P = r/t" into styled tokens.
// A fraction token must contain exactly one "/" with text on both sides.
func Tokenize(equation string) ([]Token, error) {
	fields := strings.Fields(equation)
	tokens := make([]Token, 0, len(fields))
	for _, f := range fields {
		switch {
		case strings.Contains(f, "/"):
			parts := strings.Split(f, "/")
			if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
				return nil, &MalformedTokenError{Equation: equation, Token: f}
			}
			tokens = append(tokens, Token{Kind: TokenFraction, Text: f, Num: parts[0], Den: parts[1]})
		case f == "=" || isFuncName(f):
			tokens = append(tokens, Token{Kind: TokenOperator, Text: f})
		default:
			tokens = append(tokens, Token{Kind: TokenVariable, Text: f})
		}
	}
	return tokens, nil
}

func isFuncName(s string) bool {
	for _, fn := range trigFuncs {
		if fn.String() == s {
			return true
		}
	}
	return false
}
