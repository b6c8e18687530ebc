package expr

import (
	"math"
	"sort"
)

// builtin describes a function callable from expressions.
// Exactly one of f1, f2 and fn is used for a given argument count.
type builtin struct {
	name    string
	minArgs int
	maxArgs int // -1: variadic

	f1 func(float64) float64
	f2 func(float64, float64) float64
	fn func([]float64) float64
}

var builtins = map[string]*builtin{}

// aliases maps accepted spellings to canonical builtin names.
var aliases = map[string]string{
	"ln":   "log",
	"Abs":  "abs",
	"ceil": "ceiling",
	"sgn":  "sign",
	"Min":  "min",
	"Max":  "max",
}

// constants maps accepted constant names to canonical names and values.
var constants = map[string]struct {
	name  string
	value float64
}{
	"pi": {"pi", math.Pi},
	"E":  {"E", math.E},
	"e":  {"E", math.E},
}

func init() {
	unary := map[string]func(float64) float64{
		"sin":     math.Sin,
		"cos":     math.Cos,
		"tan":     math.Tan,
		"cot":     func(x float64) float64 { return 1 / math.Tan(x) },
		"sec":     func(x float64) float64 { return 1 / math.Cos(x) },
		"csc":     func(x float64) float64 { return 1 / math.Sin(x) },
		"asin":    math.Asin,
		"acos":    math.Acos,
		"atan":    math.Atan,
		"sinh":    math.Sinh,
		"cosh":    math.Cosh,
		"tanh":    math.Tanh,
		"asinh":   math.Asinh,
		"acosh":   math.Acosh,
		"atanh":   math.Atanh,
		"exp":     math.Exp,
		"log10":   math.Log10,
		"log2":    math.Log2,
		"sqrt":    math.Sqrt,
		"cbrt":    math.Cbrt,
		"abs":     math.Abs,
		"floor":   math.Floor,
		"ceiling": math.Ceil,
		"sign":    sign,
	}
	for name, f := range unary {
		builtins[name] = &builtin{name: name, minArgs: 1, maxArgs: 1, f1: f}
	}

	builtins["log"] = &builtin{name: "log", minArgs: 1, maxArgs: 2, f1: math.Log,
		f2: func(x, base float64) float64 { return math.Log(x) / math.Log(base) }}
	builtins["atan2"] = &builtin{name: "atan2", minArgs: 2, maxArgs: 2, f2: math.Atan2}
	builtins["hypot"] = &builtin{name: "hypot", minArgs: 2, maxArgs: 2, f2: math.Hypot}
	builtins["min"] = &builtin{name: "min", minArgs: 1, maxArgs: -1, fn: minimum}
	builtins["max"] = &builtin{name: "max", minArgs: 1, maxArgs: -1, fn: maximum}
}

func lookupBuiltin(name string) (*builtin, bool) {
	if canon, ok := aliases[name]; ok {
		name = canon
	}
	b, ok := builtins[name]
	return b, ok
}

// Builtins returns the accepted function names, aliases included, sorted.
func Builtins() []string {
	names := make([]string, 0, len(builtins)+len(aliases))
	for name := range builtins {
		names = append(names, name)
	}
	for alias := range aliases {
		names = append(names, alias)
	}
	sort.Strings(names)
	return names
}

// Constants returns the accepted constant names, sorted.
func Constants() []string {
	names := make([]string, 0, len(constants))
	for name := range constants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return x // 0, -0 and NaN
	}
}

func minimum(args []float64) float64 {
	m := args[0]
	for _, v := range args[1:] {
		if math.IsNaN(v) || v < m {
			m = v
		}
		if math.IsNaN(m) {
			return m
		}
	}
	return m
}

func maximum(args []float64) float64 {
	m := args[0]
	for _, v := range args[1:] {
		if math.IsNaN(v) || v > m {
			m = v
		}
		if math.IsNaN(m) {
			return m
		}
	}
	return m
}

// pyMod is the floored modulo: the result has the sign of the divisor.
func pyMod(x, y float64) float64 {
	r := math.Mod(x, y)
	if r != 0 && (r < 0) != (y < 0) {
		r += y
	}
	return r
}
