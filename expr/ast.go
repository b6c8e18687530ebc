package expr

import (
	"strconv"
	"strings"
)

// Expr is a node of a parsed expression. The set of node types is closed:
// *Num, *Var, *Const, *Unary, *Binary and *Call. Nodes are never mutated
// after construction.
type Expr interface {
	// String returns the expression in normalized input syntax. Parsing
	// the result yields an equal tree.
	String() string

	node()
}

// Op is a unary or binary operator.
type Op uint8

// Operators.
const (
	OpAdd Op = iota + 1
	OpSub
	OpMul
	OpDiv
	OpMod
	OpPow
	OpNeg
	OpPos
)

// String returns the operator token.
func (o Op) String() string {
	switch o {
	case OpAdd, OpPos:
		return "+"
	case OpSub, OpNeg:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpMod:
		return "%"
	case OpPow:
		return "**"
	default:
		return "Op(" + strconv.Itoa(int(o)) + ")"
	}
}

// Num is a numeric literal.
type Num struct {
	Value float64
}

// Var is a free variable.
type Var struct {
	Name string
}

// Const is a named mathematical constant: "pi" or "E".
type Const struct {
	Name string
}

// Unary applies OpNeg or OpPos to X.
type Unary struct {
	Op Op
	X  Expr
}

// Binary applies Op to X and Y.
type Binary struct {
	Op   Op
	X, Y Expr
}

// Call applies a builtin function. Name is the canonical builtin name,
// so "ln(x)" and "log(x)" produce equal nodes.
type Call struct {
	Name string
	Args []Expr
}

func (*Num) node()    {}
func (*Var) node()    {}
func (*Const) node()  {}
func (*Unary) node()  {}
func (*Binary) node() {}
func (*Call) node()   {}

// Sub returns the node x - y.
func Sub(x, y Expr) Expr {
	return &Binary{Op: OpSub, X: x, Y: y}
}

// Operator precedence, loosest first.
const (
	precSum = iota + 1
	precProduct
	precUnary
	precPower
	precAtom
)

func precedence(e Expr) int {
	switch n := e.(type) {
	case *Binary:
		switch n.Op {
		case OpAdd, OpSub:
			return precSum
		case OpPow:
			return precPower
		default:
			return precProduct
		}
	case *Unary:
		return precUnary
	case *Num:
		if n.Value < 0 {
			return precUnary
		}
	}
	return precAtom
}

func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func (n *Num) String() string   { return formatNum(n.Value) }
func (v *Var) String() string   { return v.Name }
func (c *Const) String() string { return c.Name }

func (u *Unary) String() string {
	return u.Op.String() + sourceOperand(u.X, precedence(u.X) < precUnary)
}

func (b *Binary) String() string {
	p := precedence(b)
	var left, right bool
	if b.Op == OpPow {
		left = precedence(b.X) <= precPower
		right = precedence(b.Y) < precUnary
	} else {
		left = precedence(b.X) < p
		right = precedence(b.Y) <= p
	}
	sep := " "
	if b.Op == OpPow {
		sep = ""
	}
	return sourceOperand(b.X, left) + sep + b.Op.String() + sep + sourceOperand(b.Y, right)
}

func (c *Call) String() string {
	var sb strings.Builder
	sb.WriteString(c.Name)
	sb.WriteByte('(')
	for i, a := range c.Args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(a.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

func sourceOperand(e Expr, paren bool) string {
	if paren {
		return "(" + e.String() + ")"
	}
	return e.String()
}
