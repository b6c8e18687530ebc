package expr

import (
	"strings"
)

// greek maps variable names to Greek letters as LaTeX commands and runes.
var greek = map[string]struct {
	tex string
	r   string
}{
	"alpha": {`\alpha`, "α"}, "beta": {`\beta`, "β"}, "gamma": {`\gamma`, "γ"},
	"delta": {`\delta`, "δ"}, "epsilon": {`\epsilon`, "ε"}, "zeta": {`\zeta`, "ζ"},
	"eta": {`\eta`, "η"}, "theta": {`\theta`, "θ"}, "iota": {`\iota`, "ι"},
	"kappa": {`\kappa`, "κ"}, "lambda": {`\lambda`, "λ"}, "mu": {`\mu`, "μ"},
	"nu": {`\nu`, "ν"}, "xi": {`\xi`, "ξ"}, "rho": {`\rho`, "ρ"},
	"sigma": {`\sigma`, "σ"}, "tau": {`\tau`, "τ"}, "upsilon": {`\upsilon`, "υ"},
	"phi": {`\phi`, "φ"}, "chi": {`\chi`, "χ"}, "psi": {`\psi`, "ψ"},
	"omega": {`\omega`, "ω"}, "Gamma": {`\Gamma`, "Γ"}, "Delta": {`\Delta`, "Δ"},
	"Theta": {`\Theta`, "Θ"}, "Lambda": {`\Lambda`, "Λ"}, "Sigma": {`\Sigma`, "Σ"},
	"Phi": {`\Phi`, "Φ"}, "Psi": {`\Psi`, "Ψ"}, "Omega": {`\Omega`, "Ω"},
}

// texFunctions have a LaTeX operator of their own.
var texFunctions = map[string]bool{
	"sin": true, "cos": true, "tan": true, "cot": true, "sec": true, "csc": true,
	"sinh": true, "cosh": true, "tanh": true, "log": true,
}

// LaTeX returns the typeset form of e, sanitized with SanitizeLaTeX.
// The layout follows common computer-algebra output, for example
// "x^{2} + 1" or "\frac{1}{x}".
func LaTeX(e Expr) string {
	return SanitizeLaTeX(texString(e))
}

// EquationLaTeX returns the typeset form of eq as "lhs = rhs".
func EquationLaTeX(eq *Equation) string {
	return SanitizeLaTeX(texString(eq.LHS) + " = " + texString(eq.RHS))
}

// SanitizeLaTeX strips dollar signs and \left / \right sizing commands.
func SanitizeLaTeX(s string) string {
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, `\left`, "")
	return strings.ReplaceAll(s, `\right`, "")
}

func texString(e Expr) string {
	switch n := e.(type) {
	case *Num:
		mant, exp, ok := strings.Cut(formatNum(n.Value), "e")
		if !ok {
			return mant
		}
		return mant + ` \cdot 10^{` + trimExponent(exp) + `}`
	case *Var:
		return texName(n.Name)
	case *Const:
		if n.Name == "pi" {
			return `\pi`
		}
		return "e"
	case *Unary:
		x := texString(n.X)
		if precedence(n.X) <= precSum {
			x = texParen(x)
		}
		if n.Op == OpPos {
			return x
		}
		return "- " + x
	case *Binary:
		return texBinary(n)
	case *Call:
		return texCall(n)
	}
	return ""
}

func texBinary(n *Binary) string {
	switch n.Op {
	case OpAdd, OpSub:
		left := texString(n.X)
		right := texString(n.Y)
		if u, ok := n.Y.(*Unary); ok && u.Op == OpNeg && n.Op == OpAdd {
			return left + " - " + texOperand(u.X, precProduct)
		}
		if p := precedence(n.Y); n.Op == OpSub && (p <= precSum || p == precUnary) {
			right = texParen(right)
		}
		return left + " " + n.Op.String() + " " + right
	case OpMul:
		left := texOperand(n.X, precProduct)
		right := texOperand(n.Y, precPower)
		if _, ok := n.Y.(*Binary); ok && precedence(n.Y) == precProduct {
			right = texString(n.Y)
		}
		if startsWithNumber(n.Y) {
			return left + ` \cdot ` + right
		}
		return left + " " + right
	case OpDiv:
		return `\frac{` + texString(n.X) + `}{` + texString(n.Y) + `}`
	case OpMod:
		return texOperand(n.X, precProduct) + ` \bmod ` + texOperand(n.Y, precPower)
	case OpPow:
		if isHalf(n.Y) {
			return `\sqrt{` + texString(n.X) + `}`
		}
		base := texString(n.X)
		if precedence(n.X) < precAtom {
			base = texParen(base)
		}
		return base + "^{" + texString(n.Y) + "}"
	}
	return ""
}

func texCall(n *Call) string {
	args := make([]string, len(n.Args))
	for i, a := range n.Args {
		args[i] = texString(a)
	}
	switch n.Name {
	case "sqrt":
		return `\sqrt{` + args[0] + `}`
	case "cbrt":
		return `\sqrt[3]{` + args[0] + `}`
	case "exp":
		return "e^{" + args[0] + "}"
	case "abs":
		return `\left|{` + args[0] + `}\right|`
	case "floor":
		return `\left\lfloor{` + args[0] + `}\right\rfloor`
	case "ceiling":
		return `\left\lceil{` + args[0] + `}\right\rceil`
	case "log10":
		return `\log_{10}{` + texParen(args[0]) + `}`
	case "log2":
		return `\log_{2}{` + texParen(args[0]) + `}`
	case "min", "max":
		return `\` + n.Name + texParen(strings.Join(args, ", "))
	case "log":
		if len(args) == 2 {
			return `\frac{\log{` + texParen(args[0]) + `}}{\log{` + texParen(args[1]) + `}}`
		}
	}
	inner := texParen(strings.Join(args, ", ") + " ")
	if texFunctions[n.Name] {
		return `\` + n.Name + "{" + inner + "}"
	}
	return `\operatorname{` + n.Name + "}{" + inner + "}"
}

func texOperand(e Expr, min int) string {
	s := texString(e)
	if precedence(e) < min {
		return texParen(s)
	}
	return s
}

func texParen(s string) string {
	return `\left(` + s + `\right)`
}

func texName(name string) string {
	if g, ok := greek[name]; ok {
		return g.tex
	}
	if base, sub, ok := strings.Cut(name, "_"); ok && base != "" && sub != "" {
		return texName(base) + "_{" + sub + "}"
	}
	return name
}

// trimExponent turns "-05" into "-5" and "+10" into "10".
func trimExponent(exp string) string {
	sign := ""
	if exp != "" && (exp[0] == '-' || exp[0] == '+') {
		if exp[0] == '-' {
			sign = "-"
		}
		exp = exp[1:]
	}
	exp = strings.TrimLeft(exp, "0")
	if exp == "" {
		exp = "0"
	}
	return sign + exp
}

// startsWithNumber reports whether the leftmost leaf of e is a literal.
func startsWithNumber(e Expr) bool {
	switch n := e.(type) {
	case *Num:
		return true
	case *Binary:
		if n.Op == OpDiv {
			return false
		}
		return startsWithNumber(n.X)
	}
	return false
}

func isHalf(e Expr) bool {
	if n, ok := e.(*Num); ok {
		return n.Value == 0.5
	}
	b, ok := e.(*Binary)
	if !ok || b.Op != OpDiv {
		return false
	}
	x, xok := b.X.(*Num)
	y, yok := b.Y.(*Num)
	return xok && yok && x.Value == 1 && y.Value == 2
}
