package expr

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) Expr {
	t.Helper()
	e, err := ParseFunction(s)
	require.NoError(t, err, s)
	return e
}

func TestNormalizeRoundTrip(t *testing.T) {
	normalized, err := ParseFunction("x^2+1")
	require.NoError(t, err)
	direct, err := Parse("x**2+1")
	require.NoError(t, err)

	if diff := cmp.Diff(direct, normalized); diff != "" {
		t.Errorf("normalized parse mismatch (-direct +normalized):\n%s", diff)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"x^2", "x**2"},
		{"ｘ＾２＋１", "x**2+1"},
		{"2×π", "2*pi"},
		{"x²−1", "x**2-1"},
		{"a÷b", "a/b"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), tt.in)
	}
}

func TestParsePrecedence(t *testing.T) {
	tests := []struct {
		in   string
		want Expr
	}{
		{"-x**2", &Unary{Op: OpNeg, X: &Binary{Op: OpPow, X: &Var{Name: "x"}, Y: &Num{Value: 2}}}},
		{"2**-1", &Binary{Op: OpPow, X: &Num{Value: 2}, Y: &Unary{Op: OpNeg, X: &Num{Value: 1}}}},
		{"x**y**z", &Binary{Op: OpPow, X: &Var{Name: "x"}, Y: &Binary{Op: OpPow, X: &Var{Name: "y"}, Y: &Var{Name: "z"}}}},
		{"a - b - c", &Binary{Op: OpSub, X: &Binary{Op: OpSub, X: &Var{Name: "a"}, Y: &Var{Name: "b"}}, Y: &Var{Name: "c"}}},
		{"1 + 2 * 3", &Binary{Op: OpAdd, X: &Num{Value: 1}, Y: &Binary{Op: OpMul, X: &Num{Value: 2}, Y: &Num{Value: 3}}}},
		{"x % 2", &Binary{Op: OpMod, X: &Var{Name: "x"}, Y: &Num{Value: 2}}},
		{"ln(x)", &Call{Name: "log", Args: []Expr{&Var{Name: "x"}}}},
		{"Abs(x)", &Call{Name: "abs", Args: []Expr{&Var{Name: "x"}}}},
		{"pi * e", &Binary{Op: OpMul, X: &Const{Name: "pi"}, Y: &Const{Name: "E"}}},
		{".5e1", &Num{Value: 5}},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		require.NoError(t, err, tt.in)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	inputs := []string{
		"-x**2",
		"(x**y)**z",
		"x**y**z",
		"a - (b - c)",
		"(a + b) * c",
		"2**-x",
		"(-x)**2",
		"max(x, 1, y / 2) % 3",
		"log(x, 10) + sqrt(1 - x**2)",
		"1e-05 * x",
	}
	for _, in := range inputs {
		first := mustParse(t, in)
		second, err := Parse(first.String())
		require.NoError(t, err, first.String())
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("%q -> %q does not round-trip:\n%s", in, first.String(), diff)
		}
	}
}

func TestParseErrors(t *testing.T) {
	inputs := []string{
		"x^^2",
		"",
		"   ",
		"(x + 1",
		"x + 1)",
		"sin",
		"sin x",
		"foo(x)",
		"sin(x, y)",
		"atan2(y)",
		"2x",
		"x $ 1",
		"1.2.3",
		"x +",
	}
	for _, in := range inputs {
		_, err := ParseFunction(in)
		require.Error(t, err, in)
		assert.ErrorIs(t, err, ErrInvalidExpression, in)

		var se *SyntaxError
		require.True(t, errors.As(err, &se), in)
		assert.Equal(t, in, se.Input)
		assert.NotEmpty(t, se.Msg)
	}
}

func TestSyntaxErrorMessage(t *testing.T) {
	_, err := ParseFunction("x^^2")
	require.Error(t, err)
	assert.Equal(t, `expr: invalid expression "x^^2": unexpected "**" at position 3`, err.Error())
}

func TestParseEquation(t *testing.T) {
	eq, err := ParseEquation("x^2 + y^2 = 1")
	require.NoError(t, err)

	lhs, err := Parse("x**2 + y**2")
	require.NoError(t, err)
	if diff := cmp.Diff(lhs, eq.LHS); diff != "" {
		t.Errorf("LHS mismatch:\n%s", diff)
	}
	if diff := cmp.Diff(Expr(&Num{Value: 1}), eq.RHS); diff != "" {
		t.Errorf("RHS mismatch:\n%s", diff)
	}
	if diff := cmp.Diff(Sub(eq.LHS, eq.RHS), eq.Diff); diff != "" {
		t.Errorf("Diff mismatch:\n%s", diff)
	}
	assert.Equal(t, "x**2 + y**2 = 1", eq.String())
}

func TestParseEquationWithoutEquals(t *testing.T) {
	eq, err := ParseEquation("x*y - 1")
	require.NoError(t, err)

	direct := mustParse(t, "x*y - 1")
	if diff := cmp.Diff(direct, eq.Diff); diff != "" {
		t.Errorf("Diff should be the expression itself:\n%s", diff)
	}
	assert.Equal(t, &Num{Value: 0}, eq.RHS)
}

func TestParseEquationMalformed(t *testing.T) {
	for _, in := range []string{"x = y = 1", "x == 1", "= 1", "x^2 =", " = "} {
		_, err := ParseEquation(in)
		assert.ErrorIs(t, err, ErrMalformedEquation, in)
		assert.NotErrorIs(t, err, ErrInvalidExpression, in)
	}
}

func TestParseEquationSideErrors(t *testing.T) {
	_, err := ParseEquation("x = y^^2")
	require.ErrorIs(t, err, ErrInvalidExpression)

	var se *SyntaxError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "x = y^^2", se.Input)
	assert.Equal(t, 7, se.Pos) // offset into "x = y****2"
}

func TestCompileAndEval(t *testing.T) {
	f, err := Compile(mustParse(t, "x^2"), "x")
	require.NoError(t, err)

	ys, err := f.Eval([]float64{-2, 0, 2})
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 0, 4}, ys)

	again, err := f.Eval([]float64{-2, 0, 2})
	require.NoError(t, err)
	assert.Equal(t, ys, again)
}

func TestCompileUnboundVariable(t *testing.T) {
	_, err := Compile(mustParse(t, "x + y"), "x")
	require.ErrorIs(t, err, ErrCompilation)

	var ce *CompileError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "y", ce.Var)
	assert.Equal(t, []string{"x"}, ce.Vars)
}

func TestCompileRejectsUnknownCall(t *testing.T) {
	_, err := Compile(&Call{Name: "gamma", Args: []Expr{&Var{Name: "x"}}}, "x")
	assert.ErrorIs(t, err, ErrCompilation)
}

func TestEvalBroadcast(t *testing.T) {
	f, err := Compile(mustParse(t, "x + 10*y"), "x", "y")
	require.NoError(t, err)

	ys, err := f.Eval([]float64{1, 2, 3}, []float64{1})
	require.NoError(t, err)
	assert.Equal(t, []float64{11, 12, 13}, ys)

	_, err = f.Eval([]float64{1, 2, 3}, []float64{1, 2})
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = f.Eval([]float64{1})
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestEvalUndefinedValues(t *testing.T) {
	f, err := Compile(mustParse(t, "log(x)"), "x")
	require.NoError(t, err)
	ys, err := f.Eval([]float64{-1, 1})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(ys[0]))
	assert.InDelta(t, 0.0, ys[1], 1e-12)

	f, err = Compile(mustParse(t, "1/x"), "x")
	require.NoError(t, err)
	ys, err = f.Eval([]float64{0, 2})
	require.NoError(t, err)
	assert.True(t, math.IsInf(ys[0], 1))
	assert.InDelta(t, 0.5, ys[1], 1e-12)
}

func TestBuiltinSemantics(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"-7 % 3", 2},
		{"7 % -3", -2},
		{"log(8, 2)", 3},
		{"log10(1000)", 3},
		{"ln(E)", 1},
		{"2^3^2", 512},
		{"-2^2", -4},
		{"min(3, 1, 2)", 1},
		{"Max(3, 1, 2)", 3},
		{"sign(-4)", -1},
		{"sgn(0)", 0},
		{"ceil(1.2) + floor(1.8)", 3},
		{"cbrt(-8)", -2},
		{"hypot(3, 4)", 5},
		{"atan2(1, 1) * 4", math.Pi},
		{"sec(0) + csc(pi/2) + cot(pi/4)", 3},
		{"abs(-3) + sqrt(16)", 7},
	}
	for _, tt := range tests {
		f, err := Compile(mustParse(t, tt.in))
		require.NoError(t, err, tt.in)
		assert.InDelta(t, tt.want, f.Call(), 1e-9, tt.in)
	}
}

func TestFuncCall(t *testing.T) {
	f, err := Compile(mustParse(t, "x*y"), "x", "y")
	require.NoError(t, err)
	assert.Equal(t, 6.0, f.Call(2, 3))
	assert.True(t, math.IsNaN(f.Call(2)))
	assert.Equal(t, []string{"x", "y"}, f.Vars())
}

func TestLaTeX(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"x^2 + 1", `x^{2} + 1`},
		{"1/x", `\frac{1}{x}`},
		{"sin(x)", `\sin{(x )}`},
		{"asin(x)", `\operatorname{asin}{(x )}`},
		{"2*x", `2 x`},
		{"x*2", `x \cdot 2`},
		{"sqrt(x)", `\sqrt{x}`},
		{"abs(x)", `|{x}|`},
		{"exp(-x)", `e^{- x}`},
		{"pi*x", `\pi x`},
		{"(x+1)^2", `(x + 1)^{2}`},
		{"x - (y - 1)", `x - (y - 1)`},
		{"x - (-y)", `x - (- y)`},
		{"x**2 - 3*x + 2", `x^{2} - 3 x + 2`},
		{"1 - x/2", `1 - \frac{x}{2}`},
		{"x - y*z", `x - y z`},
		{"theta + x_1", `\theta + x_{1}`},
		{"1e-5", `1 \cdot 10^{-5}`},
		{"x^(1/2)", `\sqrt{x}`},
	}
	for _, tt := range tests {
		got := LaTeX(mustParse(t, tt.in))
		assert.Equal(t, tt.want, got, tt.in)
		assert.NotContains(t, got, `\left`)
		assert.NotContains(t, got, "$")
	}
}

func TestEquationLaTeX(t *testing.T) {
	eq, err := ParseEquation("x^2 + y^2 = 1")
	require.NoError(t, err)
	assert.Equal(t, "x^{2} + y^{2} = 1", EquationLaTeX(eq))

	eq, err = ParseEquation("x*y")
	require.NoError(t, err)
	assert.Equal(t, "x y = 0", EquationLaTeX(eq))
}

func TestSanitizeLaTeX(t *testing.T) {
	assert.Equal(t, `(x)`, SanitizeLaTeX(`$\left(x\right)$`))
	assert.Equal(t, `|x|`, SanitizeLaTeX(`\left|x\right|`))
}

func TestUnicode(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"x^2 + 1", "x² + 1"},
		{"2*x^3", "2x³"},
		{"3*sin(x)", "3sin(x)"},
		{"sqrt(x)", "√x"},
		{"sqrt(x+1)", "√(x + 1)"},
		{"x^(1/2)", "x^(1/2)"},
		{"x^-1", "x⁻¹"},
		{"-x", "−x"},
		{"x - 1", "x − 1"},
		{"x + -1", "x − 1"},
		{"pi*x", "π·x"},
		{"abs(x)", "|x|"},
		{"exp(x)", "e^x"},
		{"exp(2)", "e²"},
		{"(x+1)/(x-1)", "(x + 1)/(x − 1)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Unicode(mustParse(t, tt.in)), tt.in)
	}

	eq, err := ParseEquation("x^2 + y^2 = 1")
	require.NoError(t, err)
	assert.Equal(t, "x² + y² = 1", EquationUnicode(eq))
}

func TestVars(t *testing.T) {
	assert.Equal(t, []string{"x", "y", "z"}, Vars(mustParse(t, "x*y + sin(z) + pi + y")))
	assert.Empty(t, Vars(mustParse(t, "2 * pi")))
}

func TestBuiltinNames(t *testing.T) {
	names := Builtins()
	assert.Contains(t, names, "sin")
	assert.Contains(t, names, "ln")
	assert.Contains(t, names, "ceiling")
	assert.IsIncreasing(t, names)
	assert.Equal(t, []string{"E", "e", "pi"}, Constants())
}
