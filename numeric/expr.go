// SPDX-License-Identifier: MIT

package numeric

import (
	"fmt"
	"strconv"
	"strings"
	"text/scanner"
)

// Eval evaluates a literal constant expression in field f.
//
// Grammar:
//
//	expr   = term { ("+" | "-") term } .
//	term   = unary { ("*" | "/") unary } .
//	unary  = ("-" | "+") unary | power .
//	power  = atom [ "^" [ "-" | "+" ] int ] .
//	atom   = number | "sqrt" "(" expr ")" | "(" expr ")" .
//
// "^" binds tighter than unary minus (-2^2 == -4) and takes integer
// exponents only. Numbers are handed to f.Parse, so "0.6" is exactly 3/5 in
// Rational.
//
// Errors: ErrSyntax for malformed input; arithmetic failures (ErrDomain,
// ErrInexact, ErrDivisionByZero) are wrapped unchanged.
// Complexity: O(len(expr)) field operations, plus O(log k) per "^k".
func Eval[T any](f Field[T], expr string) (T, error) {
	var zero T
	p := &exprParser[T]{f: f, src: expr}
	p.s.Init(strings.NewReader(expr))
	p.s.Mode = scanner.ScanIdents | scanner.ScanInts | scanner.ScanFloats
	p.s.Error = func(_ *scanner.Scanner, msg string) {
		if p.scanErr == "" {
			p.scanErr = msg
		}
	}
	p.next()

	v, err := p.expr()
	if err != nil {
		return zero, err
	}
	if p.tok != scanner.EOF {
		return zero, p.syntaxf("unexpected %q", p.s.TokenText())
	}

	return v, nil
}

// MustEval is Eval for compile-time constants; it panics on error.
func MustEval[T any](f Field[T], expr string) T {
	v, err := Eval(f, expr)
	if err != nil {
		panic(err)
	}

	return v
}

type exprParser[T any] struct {
	f       Field[T]
	src     string
	s       scanner.Scanner
	tok     rune
	scanErr string
}

func (p *exprParser[T]) next() { p.tok = p.s.Scan() }

func (p *exprParser[T]) syntaxf(format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	if p.scanErr != "" {
		msg = p.scanErr
	}

	return fmt.Errorf("numeric: Eval(%q): %s: %w", p.src, msg, ErrSyntax)
}

func (p *exprParser[T]) wrap(err error) error {
	return fmt.Errorf("numeric: Eval(%q): %w", p.src, err)
}

func (p *exprParser[T]) expr() (T, error) {
	acc, err := p.term()
	if err != nil {
		return acc, err
	}
	for p.tok == '+' || p.tok == '-' {
		op := p.tok
		p.next()
		rhs, err := p.term()
		if err != nil {
			return rhs, err
		}
		if op == '+' {
			acc = p.f.Add(acc, rhs)
		} else {
			acc = p.f.Sub(acc, rhs)
		}
	}

	return acc, nil
}

func (p *exprParser[T]) term() (T, error) {
	acc, err := p.unary()
	if err != nil {
		return acc, err
	}
	for p.tok == '*' || p.tok == '/' {
		op := p.tok
		p.next()
		rhs, err := p.unary()
		if err != nil {
			return rhs, err
		}
		if op == '*' {
			acc = p.f.Mul(acc, rhs)
			continue
		}
		if acc, err = p.f.Div(acc, rhs); err != nil {
			return acc, p.wrap(err)
		}
	}

	return acc, nil
}

func (p *exprParser[T]) unary() (T, error) {
	switch p.tok {
	case '-':
		p.next()
		v, err := p.unary()
		if err != nil {
			return v, err
		}
		return p.f.Neg(v), nil
	case '+':
		p.next()
		return p.unary()
	}

	return p.power()
}

func (p *exprParser[T]) power() (T, error) {
	base, err := p.atom()
	if err != nil || p.tok != '^' {
		return base, err
	}
	p.next()

	negative := false
	if p.tok == '-' || p.tok == '+' {
		negative = p.tok == '-'
		p.next()
	}
	if p.tok != scanner.Int {
		return base, p.syntaxf("integer exponent expected, got %q", p.s.TokenText())
	}
	k, convErr := strconv.Atoi(p.s.TokenText())
	if convErr != nil {
		return base, p.syntaxf("exponent %q", p.s.TokenText())
	}
	p.next()

	v := Pow(p.f, base, k)
	if !negative {
		return v, nil
	}
	inv, err := p.f.Div(p.f.One(), v)
	if err != nil {
		return inv, p.wrap(err)
	}

	return inv, nil
}

func (p *exprParser[T]) atom() (T, error) {
	var zero T
	switch p.tok {
	case scanner.Int, scanner.Float:
		lit := p.s.TokenText()
		p.next()
		v, err := p.f.Parse(lit)
		if err != nil {
			return zero, p.wrap(err)
		}
		return v, nil

	case scanner.Ident:
		name := p.s.TokenText()
		if name != "sqrt" {
			return zero, p.syntaxf("unknown function %q", name)
		}
		p.next()
		arg, err := p.parenthesized()
		if err != nil {
			return zero, err
		}
		root, err := p.f.Sqrt(arg)
		if err != nil {
			return zero, p.wrap(err)
		}
		return root, nil

	case '(':
		return p.parenthesized()

	case scanner.EOF:
		return zero, p.syntaxf("unexpected end of expression")
	}

	return zero, p.syntaxf("unexpected %q", p.s.TokenText())
}

func (p *exprParser[T]) parenthesized() (T, error) {
	var zero T
	if p.tok != '(' {
		return zero, p.syntaxf("'(' expected")
	}
	p.next()
	v, err := p.expr()
	if err != nil {
		return zero, err
	}
	if p.tok != ')' {
		return zero, p.syntaxf("')' expected")
	}
	p.next()

	return v, nil
}
