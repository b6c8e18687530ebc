package expr

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokPercent
	tokPow
	tokLParen
	tokRParen
	tokComma
	tokInvalid
)

type token struct {
	kind tokenKind
	text string
	pos  int
	num  float64
}

func (t token) describe() string {
	switch t.kind {
	case tokEOF:
		return "end of input"
	case tokNumber:
		return "number " + t.text
	case tokIdent:
		return "name " + strconv.Quote(t.text)
	default:
		return strconv.Quote(t.text)
	}
}

type lexer struct {
	s string
	i int
}

func (l *lexer) next() token {
	for l.i < len(l.s) {
		r, size := utf8.DecodeRuneInString(l.s[l.i:])
		if !unicode.IsSpace(r) {
			break
		}
		l.i += size
	}
	start := l.i
	if l.i >= len(l.s) {
		return token{kind: tokEOF, pos: start}
	}

	single := func(kind tokenKind) token {
		l.i++
		return token{kind: kind, text: l.s[start:l.i], pos: start}
	}
	switch l.s[l.i] {
	case '+':
		return single(tokPlus)
	case '-':
		return single(tokMinus)
	case '*':
		if strings.HasPrefix(l.s[l.i:], "**") {
			l.i += 2
			return token{kind: tokPow, text: "**", pos: start}
		}
		return single(tokStar)
	case '/':
		return single(tokSlash)
	case '%':
		return single(tokPercent)
	case '(':
		return single(tokLParen)
	case ')':
		return single(tokRParen)
	case ',':
		return single(tokComma)
	}

	r, size := utf8.DecodeRuneInString(l.s[l.i:])
	if isIdentStart(r) {
		l.i += size
		for l.i < len(l.s) {
			r, size := utf8.DecodeRuneInString(l.s[l.i:])
			if !isIdentContinue(r) {
				break
			}
			l.i += size
		}
		return token{kind: tokIdent, text: l.s[start:l.i], pos: start}
	}
	if r == '.' || isDigit(l.s[l.i]) {
		l.i = scanNumber(l.s, l.i)
		txt := l.s[start:l.i]
		v, err := strconv.ParseFloat(txt, 64)
		if err != nil || l.i == start {
			if l.i == start {
				l.i += size
				txt = l.s[start:l.i]
			}
			return token{kind: tokInvalid, text: txt, pos: start}
		}
		return token{kind: tokNumber, text: txt, pos: start, num: v}
	}

	l.i += size
	return token{kind: tokInvalid, text: string(r), pos: start}
}

// scanNumber returns the end of the numeric literal starting at i:
// digits, an optional fraction and an optional exponent.
func scanNumber(s string, i int) int {
	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}
	if i == start+1 && s[start] == '.' {
		return start
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			i = k
		}
	}
	return i
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentContinue(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}

type parser struct {
	input string // as given by the caller, for error reports
	l     lexer
	cur   token
}

// Parse parses normalized input into an expression. Most callers want
// ParseFunction or ParseEquation, which normalize first.
func Parse(s string) (Expr, error) {
	return parse(s, s)
}

func parse(input, normalized string) (Expr, error) {
	p := &parser{input: input, l: lexer{s: normalized}}
	p.next()
	if p.cur.kind == tokEOF {
		return nil, p.errorf(-1, "empty expression")
	}
	e, err := p.parseSum()
	if err != nil {
		return nil, err
	}
	if p.cur.kind != tokEOF {
		return nil, p.unexpected()
	}
	return e, nil
}

func (p *parser) next() { p.cur = p.l.next() }

func (p *parser) errorf(pos int, format string, args ...any) error {
	return &SyntaxError{
		Input: p.input,
		Pos:   pos,
		Msg:   fmt.Sprintf(format, args...),
		kind:  ErrInvalidExpression,
	}
}

func (p *parser) unexpected() error {
	if p.cur.kind == tokInvalid {
		return p.errorf(p.cur.pos, "invalid character %q", p.cur.text)
	}
	return p.errorf(p.cur.pos, "unexpected %s", p.cur.describe())
}

func (p *parser) parseSum() (Expr, error) {
	left, err := p.parseProduct()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokPlus || p.cur.kind == tokMinus {
		op := OpAdd
		if p.cur.kind == tokMinus {
			op = OpSub
		}
		p.next()
		right, err := p.parseProduct()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: op, X: left, Y: right}
	}
	return left, nil
}

func (p *parser) parseProduct() (Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		var op Op
		switch p.cur.kind {
		case tokStar:
			op = OpMul
		case tokSlash:
			op = OpDiv
		case tokPercent:
			op = OpMod
		default:
			return left, nil
		}
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: op, X: left, Y: right}
	}
}

func (p *parser) parseUnary() (Expr, error) {
	if p.cur.kind == tokPlus || p.cur.kind == tokMinus {
		op := OpPos
		if p.cur.kind == tokMinus {
			op = OpNeg
		}
		p.next()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &Unary{Op: op, X: x}, nil
	}
	return p.parsePower()
}

// parsePower parses primary ('**' unary)?, which makes ** right
// associative and lets the exponent carry its own sign.
func (p *parser) parsePower() (Expr, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.cur.kind != tokPow {
		return base, nil
	}
	p.next()
	exp, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return &Binary{Op: OpPow, X: base, Y: exp}, nil
}

func (p *parser) parsePrimary() (Expr, error) {
	switch p.cur.kind {
	case tokNumber:
		v := p.cur.num
		p.next()
		return &Num{Value: v}, nil
	case tokIdent:
		name, pos := p.cur.text, p.cur.pos
		p.next()
		if p.cur.kind == tokLParen {
			return p.parseCall(name, pos)
		}
		if c, ok := constants[name]; ok {
			return &Const{Name: c.name}, nil
		}
		if _, ok := lookupBuiltin(name); ok {
			return nil, p.errorf(pos, "function %s used without arguments", name)
		}
		return &Var{Name: name}, nil
	case tokLParen:
		open := p.cur.pos
		p.next()
		e, err := p.parseSum()
		if err != nil {
			return nil, err
		}
		if p.cur.kind != tokRParen {
			if p.cur.kind == tokEOF {
				return nil, p.errorf(open, "unbalanced parenthesis")
			}
			return nil, p.unexpected()
		}
		p.next()
		return e, nil
	default:
		return nil, p.unexpected()
	}
}

func (p *parser) parseCall(name string, pos int) (Expr, error) {
	b, ok := lookupBuiltin(name)
	if !ok {
		return nil, p.errorf(pos, "unknown function %s", name)
	}
	open := p.cur.pos
	p.next() // (

	var args []Expr
	if p.cur.kind != tokRParen {
		for {
			a, err := p.parseSum()
			if err != nil {
				return nil, err
			}
			args = append(args, a)
			if p.cur.kind != tokComma {
				break
			}
			p.next()
		}
	}
	if p.cur.kind != tokRParen {
		if p.cur.kind == tokEOF {
			return nil, p.errorf(open, "unbalanced parenthesis")
		}
		return nil, p.unexpected()
	}
	p.next()

	if len(args) < b.minArgs || (b.maxArgs >= 0 && len(args) > b.maxArgs) {
		return nil, p.errorf(pos, "%s takes %s, got %d", name, arity(b), len(args))
	}
	return &Call{Name: b.name, Args: args}, nil
}

func arity(b *builtin) string {
	switch {
	case b.maxArgs < 0:
		return fmt.Sprintf("at least %d arguments", b.minArgs)
	case b.minArgs == b.maxArgs && b.minArgs == 1:
		return "1 argument"
	case b.minArgs == b.maxArgs:
		return fmt.Sprintf("%d arguments", b.minArgs)
	default:
		return fmt.Sprintf("%d to %d arguments", b.minArgs, b.maxArgs)
	}
}
