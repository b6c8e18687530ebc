package expr

import (
	"strings"
)

var superscripts = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
	'−': '⁻', '+': '⁺', '(': '⁽', ')': '⁾',
}

// Superscript returns s written in Unicode superscript characters, and
// false if some rune has no superscript form.
func Superscript(s string) (string, bool) {
	var sb strings.Builder
	for _, r := range s {
		sup, ok := superscripts[r]
		if !ok {
			return "", false
		}
		sb.WriteRune(sup)
	}
	return sb.String(), true
}

// Unicode returns e in plain Unicode math notation, for example "x² + 1",
// "2sin(x)" or "√x". Exponents that have no superscript form are written
// as "^(...)".
func Unicode(e Expr) string {
	switch n := e.(type) {
	case *Num:
		mant, exp, ok := strings.Cut(formatNum(n.Value), "e")
		if !ok {
			return mant
		}
		sup, _ := Superscript(strings.ReplaceAll(trimExponent(exp), "-", "−"))
		return mant + "×10" + sup
	case *Var:
		if g, ok := greek[n.Name]; ok {
			return g.r
		}
		return n.Name
	case *Const:
		if n.Name == "pi" {
			return "π"
		}
		return "e"
	case *Unary:
		x := uniOperand(n.X, precUnary)
		if n.Op == OpPos {
			return x
		}
		return "−" + x
	case *Binary:
		return uniBinary(n)
	case *Call:
		return uniCall(n)
	}
	return ""
}

// EquationUnicode returns eq as "lhs = rhs" in Unicode notation.
func EquationUnicode(eq *Equation) string {
	return Unicode(eq.LHS) + " = " + Unicode(eq.RHS)
}

func uniBinary(n *Binary) string {
	switch n.Op {
	case OpAdd:
		if u, ok := n.Y.(*Unary); ok && u.Op == OpNeg {
			return Unicode(n.X) + " − " + uniOperand(u.X, precProduct)
		}
		return Unicode(n.X) + " + " + Unicode(n.Y)
	case OpSub:
		return Unicode(n.X) + " − " + uniOperand(n.Y, precProduct)
	case OpMul:
		left := uniOperand(n.X, precProduct)
		right := uniOperand(n.Y, precProduct)
		if _, ok := n.X.(*Num); ok && juxtaposes(n.Y) {
			return left + right
		}
		return left + "·" + right
	case OpDiv:
		return uniOperand(n.X, precProduct) + "/" + uniOperand(n.Y, precUnary)
	case OpMod:
		return uniOperand(n.X, precProduct) + " mod " + uniOperand(n.Y, precUnary)
	case OpPow:
		return uniPower(n.X, n.Y)
	}
	return ""
}

func uniPower(base, exp Expr) string {
	b := uniOperand(base, precAtom)
	x := Unicode(exp)
	if sup, ok := Superscript(x); ok {
		return b + sup
	}
	if precedence(exp) < precAtom {
		x = "(" + x + ")"
	}
	return b + "^" + x
}

func uniCall(n *Call) string {
	switch n.Name {
	case "sqrt":
		return "√" + uniOperand(n.Args[0], precAtom)
	case "abs":
		return "|" + Unicode(n.Args[0]) + "|"
	case "exp":
		return uniPower(&Const{Name: "E"}, n.Args[0])
	}
	args := make([]string, len(n.Args))
	for i, a := range n.Args {
		args[i] = Unicode(a)
	}
	return n.Name + "(" + strings.Join(args, ", ") + ")"
}

func uniOperand(e Expr, min int) string {
	s := Unicode(e)
	if precedence(e) < min {
		return "(" + s + ")"
	}
	return s
}

// juxtaposes reports whether a coefficient can be written directly in
// front of e, as in 2x or 3sin(x).
func juxtaposes(e Expr) bool {
	switch n := e.(type) {
	case *Var, *Const, *Call:
		return true
	case *Binary:
		return n.Op == OpPow && juxtaposes(n.X)
	}
	return false
}
