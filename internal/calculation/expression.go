package calculation

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

var decimalHundred = decimal.NewFromInt(100)

// keypad glyphs are mapped to ASCII operators; the square-root key was never
// wired to an operation and is dropped.
var glyphReplacer = strings.NewReplacer("×", "*", "÷", "/", "−", "-", "√", "")

// Evaluate computes a general-calculator expression made of decimal numbers,
// + - * / and parentheses, unary signs, and a postfix % that divides the
// preceding operand by 100. Arithmetic is exact decimal except for division,
// which uses decimal.DivisionPrecision digits.
func Evaluate(expr string) (decimal.Decimal, error) {
	p := &exprParser{src: []rune(glyphReplacer.Replace(expr))}
	p.skipSpace()
	if p.done() {
		return decimal.Zero, fmt.Errorf("%w: empty expression", ErrInvalidExpression)
	}
	v, err := p.parseExpr()
	if err != nil {
		return decimal.Zero, err
	}
	p.skipSpace()
	if !p.done() {
		return decimal.Zero, p.unexpected()
	}
	return v, nil
}

// EvaluatePercent evaluates expr and divides the result by 100, matching the
// calculator's standalone % key.
func EvaluatePercent(expr string) (decimal.Decimal, error) {
	v, err := Evaluate(expr)
	if err != nil {
		return decimal.Zero, err
	}
	return v.Div(decimalHundred), nil
}

type exprParser struct {
	src []rune
	pos int
}

func (p *exprParser) done() bool { return p.pos >= len(p.src) }

func (p *exprParser) peek() rune {
	if p.done() {
		return 0
	}
	return p.src[p.pos]
}

func (p *exprParser) skipSpace() {
	for !p.done() && unicode.IsSpace(p.src[p.pos]) {
		p.pos++
	}
}

func (p *exprParser) unexpected() error {
	if p.done() {
		return fmt.Errorf("%w: unexpected end of input", ErrInvalidExpression)
	}
	return fmt.Errorf("%w: unexpected %q at position %d", ErrInvalidExpression, p.src[p.pos], p.pos+1)
}

// expr := term (('+' | '-') term)*
func (p *exprParser) parseExpr() (decimal.Decimal, error) {
	left, err := p.parseTerm()
	if err != nil {
		return decimal.Zero, err
	}
	for {
		p.skipSpace()
		op := p.peek()
		if op != '+' && op != '-' {
			return left, nil
		}
		p.pos++
		right, err := p.parseTerm()
		if err != nil {
			return decimal.Zero, err
		}
		if op == '+' {
			left = left.Add(right)
		} else {
			left = left.Sub(right)
		}
	}
}

// term := unary (('*' | '/') unary)*
func (p *exprParser) parseTerm() (decimal.Decimal, error) {
	left, err := p.parseUnary()
	if err != nil {
		return decimal.Zero, err
	}
	for {
		p.skipSpace()
		op := p.peek()
		if op != '*' && op != '/' {
			return left, nil
		}
		p.pos++
		right, err := p.parseUnary()
		if err != nil {
			return decimal.Zero, err
		}
		if op == '*' {
			left = left.Mul(right)
			continue
		}
		if right.IsZero() {
			return decimal.Zero, ErrDivisionByZero
		}
		left = left.Div(right)
	}
}

// unary := ('+' | '-') unary | postfix
func (p *exprParser) parseUnary() (decimal.Decimal, error) {
	p.skipSpace()
	switch p.peek() {
	case '-':
		p.pos++
		v, err := p.parseUnary()
		if err != nil {
			return decimal.Zero, err
		}
		return v.Neg(), nil
	case '+':
		p.pos++
		return p.parseUnary()
	}
	return p.parsePostfix()
}

// postfix := primary '%'*
func (p *exprParser) parsePostfix() (decimal.Decimal, error) {
	v, err := p.parsePrimary()
	if err != nil {
		return decimal.Zero, err
	}
	for {
		p.skipSpace()
		if p.peek() != '%' {
			return v, nil
		}
		p.pos++
		v = v.Div(decimalHundred)
	}
}

// primary := number | '(' expr ')'
func (p *exprParser) parsePrimary() (decimal.Decimal, error) {
	p.skipSpace()
	c := p.peek()
	if c == '(' {
		p.pos++
		v, err := p.parseExpr()
		if err != nil {
			return decimal.Zero, err
		}
		p.skipSpace()
		if p.peek() != ')' {
			return decimal.Zero, p.unexpected()
		}
		p.pos++
		return v, nil
	}
	if isASCIIDigit(c) || c == '.' {
		return p.parseNumber()
	}
	return decimal.Zero, p.unexpected()
}

func (p *exprParser) parseNumber() (decimal.Decimal, error) {
	start := p.pos
	dots := 0
	for !p.done() {
		c := p.src[p.pos]
		if c == '.' {
			dots++
		} else if !isASCIIDigit(c) {
			break
		}
		p.pos++
	}
	lit := string(p.src[start:p.pos])
	if dots > 1 || lit == "." {
		return decimal.Zero, fmt.Errorf("%w: malformed number %q at position %d", ErrInvalidExpression, lit, start+1)
	}
	if strings.HasPrefix(lit, ".") {
		lit = "0" + lit
	}
	lit = strings.TrimSuffix(lit, ".")
	v, err := decimal.NewFromString(lit)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrInvalidExpression, err)
	}
	return v, nil
}

func isASCIIDigit(c rune) bool { return c >= '0' && c <= '9' }
