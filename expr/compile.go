package expr

import (
	"fmt"
	"math"
	"sort"
)

// kernel evaluates a compiled node against variable values in declaration
// order.
type kernel func(env []float64) float64

// Func is a compiled expression. It is immutable and safe for concurrent
// use.
type Func struct {
	expr Expr
	vars []string
	k    kernel
}

// Compile compiles e into a numeric function of vars, in order. A free
// variable of e that is not in vars is a *CompileError.
func Compile(e Expr, vars ...string) (*Func, error) {
	index := make(map[string]int, len(vars))
	for i, v := range vars {
		index[v] = i
	}
	for _, v := range Vars(e) {
		if _, ok := index[v]; !ok {
			return nil, &CompileError{Var: v, Vars: append([]string(nil), vars...)}
		}
	}
	var bad error
	walk(e, func(n Expr) {
		c, ok := n.(*Call)
		if !ok || bad != nil {
			return
		}
		b, ok := builtins[c.Name]
		switch {
		case !ok:
			bad = fmt.Errorf("%w: unknown function %q", ErrCompilation, c.Name)
		case len(c.Args) < b.minArgs || (b.maxArgs >= 0 && len(c.Args) > b.maxArgs):
			bad = fmt.Errorf("%w: %s takes %s, got %d", ErrCompilation, c.Name, arity(b), len(c.Args))
		}
	})
	if bad != nil {
		return nil, bad
	}
	return &Func{
		expr: e,
		vars: append([]string(nil), vars...),
		k:    compileNode(e, index),
	}, nil
}

// Expr returns the compiled expression.
func (f *Func) Expr() Expr { return f.expr }

// Vars returns the declared variables in argument order.
func (f *Func) Vars() []string { return append([]string(nil), f.vars...) }

// Eval evaluates f element-wise. It takes one slice per declared variable;
// slices must share a length, except that length-1 slices are broadcast.
// Undefined results (division by zero, domain errors) are NaN or ±Inf.
func (f *Func) Eval(args ...[]float64) ([]float64, error) {
	if len(args) != len(f.vars) {
		return nil, fmt.Errorf("%w: %d inputs for %d variables", ErrShapeMismatch, len(args), len(f.vars))
	}
	n := -1
	for i, a := range args {
		if len(a) == 1 {
			continue
		}
		if n < 0 {
			n = len(a)
		} else if len(a) != n {
			return nil, fmt.Errorf("%w: %s has %d values, want %d", ErrShapeMismatch, f.vars[i], len(a), n)
		}
	}
	if n < 0 {
		n = 1
	}

	out := make([]float64, n)
	env := make([]float64, len(args))
	for i := range out {
		for j, a := range args {
			if len(a) == 1 {
				env[j] = a[0]
			} else {
				env[j] = a[i]
			}
		}
		out[i] = f.k(env)
	}
	return out, nil
}

// Call evaluates f at a single point. It returns NaN if the number of
// values does not match the declared variables.
func (f *Func) Call(vals ...float64) float64 {
	if len(vals) != len(f.vars) {
		return math.NaN()
	}
	return f.k(vals)
}

func compileNode(e Expr, index map[string]int) kernel {
	switch n := e.(type) {
	case *Num:
		v := n.Value
		return func([]float64) float64 { return v }
	case *Const:
		v := constants[n.Name].value
		return func([]float64) float64 { return v }
	case *Var:
		i := index[n.Name]
		return func(env []float64) float64 { return env[i] }
	case *Unary:
		x := compileNode(n.X, index)
		if n.Op == OpNeg {
			return func(env []float64) float64 { return -x(env) }
		}
		return x
	case *Binary:
		return compileBinary(n, index)
	case *Call:
		return compileCall(n, index)
	default:
		panic(fmt.Sprintf("expr: unknown node %T", e))
	}
}

func compileBinary(n *Binary, index map[string]int) kernel {
	x, y := compileNode(n.X, index), compileNode(n.Y, index)
	switch n.Op {
	case OpAdd:
		return func(env []float64) float64 { return x(env) + y(env) }
	case OpSub:
		return func(env []float64) float64 { return x(env) - y(env) }
	case OpMul:
		return func(env []float64) float64 { return x(env) * y(env) }
	case OpDiv:
		return func(env []float64) float64 { return x(env) / y(env) }
	case OpMod:
		return func(env []float64) float64 { return pyMod(x(env), y(env)) }
	case OpPow:
		return func(env []float64) float64 { return math.Pow(x(env), y(env)) }
	default:
		panic(fmt.Sprintf("expr: unknown binary operator %v", n.Op))
	}
}

func compileCall(n *Call, index map[string]int) kernel {
	b := builtins[n.Name]
	args := make([]kernel, len(n.Args))
	for i, a := range n.Args {
		args[i] = compileNode(a, index)
	}

	switch {
	case len(args) == 1 && b.f1 != nil:
		f, a := b.f1, args[0]
		return func(env []float64) float64 { return f(a(env)) }
	case len(args) == 2 && b.f2 != nil:
		f, a, c := b.f2, args[0], args[1]
		return func(env []float64) float64 { return f(a(env), c(env)) }
	default:
		f := b.fn
		return func(env []float64) float64 {
			vals := make([]float64, len(args))
			for i, a := range args {
				vals[i] = a(env)
			}
			return f(vals)
		}
	}
}

// Vars returns the free variables of e, sorted.
func Vars(e Expr) []string {
	seen := make(map[string]struct{})
	walk(e, func(n Expr) {
		if v, ok := n.(*Var); ok {
			seen[v.Name] = struct{}{}
		}
	})
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func walk(e Expr, fn func(Expr)) {
	fn(e)
	switch n := e.(type) {
	case *Unary:
		walk(n.X, fn)
	case *Binary:
		walk(n.X, fn)
		walk(n.Y, fn)
	case *Call:
		for _, a := range n.Args {
			walk(a, fn)
		}
	}
}
