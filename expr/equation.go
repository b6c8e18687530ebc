package expr

import (
	"errors"
	"strings"
)

// Equation is an implicit equation LHS = RHS.
type Equation struct {
	LHS, RHS Expr

	// Diff is LHS - RHS, whose zero set is the curve. For input without
	// '=' it is the parsed expression itself.
	Diff Expr
}

// String returns the equation in normalized input syntax.
func (eq *Equation) String() string {
	return eq.LHS.String() + " = " + eq.RHS.String()
}

// ParseFunction normalizes and parses the right-hand side of y = f(x).
func ParseFunction(s string) (Expr, error) {
	return parse(s, Normalize(s))
}

// ParseEquation normalizes and parses an equation in x and y. Input
// without '=' is read as expr = 0. More than one '=' or an empty side is
// rejected with ErrMalformedEquation.
func ParseEquation(s string) (*Equation, error) {
	norm := Normalize(s)

	switch n := strings.Count(norm, "="); n {
	case 0:
		e, err := parse(s, norm)
		if err != nil {
			return nil, err
		}
		return &Equation{LHS: e, RHS: &Num{Value: 0}, Diff: e}, nil
	case 1:
	default:
		return nil, malformed(s, "expected at most one '=', found %d", n)
	}

	i := strings.IndexByte(norm, '=')
	left, right := norm[:i], norm[i+1:]
	if strings.TrimSpace(left) == "" {
		return nil, malformed(s, "missing left side")
	}
	if strings.TrimSpace(right) == "" {
		return nil, malformed(s, "missing right side")
	}

	lhs, err := parse(s, left)
	if err != nil {
		return nil, err
	}
	rhs, err := parse(s, right)
	if err != nil {
		var se *SyntaxError
		if errors.As(err, &se) && se.Pos >= 0 {
			se.Pos += i + 1
		}
		return nil, err
	}
	return &Equation{LHS: lhs, RHS: rhs, Diff: Sub(lhs, rhs)}, nil
}

func malformed(input, format string, args ...any) error {
	p := &parser{input: input}
	err := p.errorf(-1, format, args...).(*SyntaxError)
	err.kind = ErrMalformedEquation
	return err
}
