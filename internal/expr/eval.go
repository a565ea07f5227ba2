// Package expr evaluates array size expressions for Argot templates.
// A size expression is either an integer literal or an arithmetic formula
// (+, -, *, /, parentheses) over the names of previously bound numeric
// arguments. The evaluator is a small hand-written recursive-descent parser;
// it deliberately supports nothing beyond that contract.
package expr

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"argot/pkg/argotypes"
)

// EvalSize resolves the size expression for the array argument arrayName
// against the arguments bound so far. Only Int and Float bindings are
// offered as variables; string, char, and array bindings are invisible to
// the expression. A non-integral positive result truncates toward zero.
//
// Failure modes: anything that prevents evaluation (unknown variable,
// malformed formula, division by zero, non-finite result) is
// InvalidExpression; a size that evaluates below zero is ArgumentMismatch.
func EvalSize(expression string, boundSoFar argotypes.Bindings, arrayName string) (int, error) {
	trimmed := strings.TrimSpace(expression)

	// Literal fast path, no variable lookup.
	if n, err := strconv.Atoi(trimmed); err == nil {
		if n < 0 {
			return 0, argotypes.NewError(argotypes.ErrArgumentMismatch,
				"array %q declares negative size %d", arrayName, n)
		}
		return n, nil
	}

	result, err := Evaluate(trimmed, boundSoFar.NumericVars())
	if err != nil {
		return 0, argotypes.NewError(argotypes.ErrInvalidExpression,
			"cannot evaluate size %q for array %q: %v", expression, arrayName, err)
	}
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0, argotypes.NewError(argotypes.ErrInvalidExpression,
			"size %q for array %q is not a finite number", expression, arrayName)
	}
	size := int(result)
	if size < 0 {
		return 0, argotypes.NewError(argotypes.ErrArgumentMismatch,
			"size %q for array %q evaluated to %d", expression, arrayName, size)
	}
	return size, nil
}

// Evaluate computes an arithmetic formula over the given variables.
// Grammar: expr = term (('+'|'-') term)*; term = unary (('*'|'/') unary)*;
// unary = '-' unary | number | identifier | '(' expr ')'.
func Evaluate(formula string, vars map[string]float64) (float64, error) {
	p := &evaluator{input: formula, vars: vars}
	result, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	p.skipSpace()
	if p.pos < len(p.input) {
		return 0, fmt.Errorf("unexpected %q at offset %d", p.input[p.pos], p.pos)
	}
	return result, nil
}

type evaluator struct {
	input string
	pos   int
	vars  map[string]float64
}

func (p *evaluator) skipSpace() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}

func (p *evaluator) peek() (byte, bool) {
	p.skipSpace()
	if p.pos >= len(p.input) {
		return 0, false
	}
	return p.input[p.pos], true
}

func (p *evaluator) parseExpr() (float64, error) {
	left, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		c, ok := p.peek()
		if !ok || (c != '+' && c != '-') {
			return left, nil
		}
		p.pos++
		right, err := p.parseTerm()
		if err != nil {
			return 0, err
		}
		if c == '+' {
			left += right
		} else {
			left -= right
		}
	}
}

func (p *evaluator) parseTerm() (float64, error) {
	left, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	for {
		c, ok := p.peek()
		if !ok || (c != '*' && c != '/') {
			return left, nil
		}
		p.pos++
		right, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		if c == '*' {
			left *= right
		} else {
			if right == 0 {
				return 0, fmt.Errorf("division by zero")
			}
			left /= right
		}
	}
}

func (p *evaluator) parseUnary() (float64, error) {
	c, ok := p.peek()
	if !ok {
		return 0, fmt.Errorf("unexpected end of expression")
	}
	switch {
	case c == '-':
		p.pos++
		v, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		return -v, nil
	case c == '(':
		p.pos++
		v, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		if c, ok := p.peek(); !ok || c != ')' {
			return 0, fmt.Errorf("missing closing parenthesis")
		}
		p.pos++
		return v, nil
	case c >= '0' && c <= '9' || c == '.':
		return p.parseNumber()
	case isIdentStart(rune(c)):
		return p.parseVariable()
	default:
		return 0, fmt.Errorf("unexpected %q at offset %d", c, p.pos)
	}
}

func (p *evaluator) parseNumber() (float64, error) {
	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if (c >= '0' && c <= '9') || c == '.' {
			p.pos++
			continue
		}
		break
	}
	v, err := strconv.ParseFloat(p.input[start:p.pos], 64)
	if err != nil {
		return 0, fmt.Errorf("malformed number %q", p.input[start:p.pos])
	}
	return v, nil
}

func (p *evaluator) parseVariable() (float64, error) {
	start := p.pos
	for p.pos < len(p.input) && isIdentPart(rune(p.input[p.pos])) {
		p.pos++
	}
	name := p.input[start:p.pos]
	v, ok := p.vars[name]
	if !ok {
		return 0, fmt.Errorf("unknown variable %q", name)
	}
	return v, nil
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
