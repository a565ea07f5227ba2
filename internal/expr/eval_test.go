package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"argot/pkg/argotypes"
)

func TestEvalSize_LiteralFastPath(t *testing.T) {
	tests := []struct {
		name     string
		expr     string
		expected int
	}{
		{name: "zero", expr: "0", expected: 0},
		{name: "positive", expr: "7", expected: 7},
		{name: "whitespace trimmed", expr: "  3 ", expected: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No bindings at all: literals must not need variable lookup.
			size, err := EvalSize(tt.expr, argotypes.Bindings{}, "items")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, size)
		})
	}
}

func TestEvalSize_NegativeLiteral(t *testing.T) {
	_, err := EvalSize("-2", argotypes.Bindings{}, "items")
	require.Error(t, err)
	assert.Equal(t, argotypes.ErrArgumentMismatch, argotypes.KindOf(err))
}

func TestEvalSize_Formula(t *testing.T) {
	bound := argotypes.Bindings{
		"n":     argotypes.IntValue(3),
		"m":     argotypes.IntValue(4),
		"scale": argotypes.FloatValue(2.5),
	}

	tests := []struct {
		name     string
		expr     string
		expected int
	}{
		{name: "single variable", expr: "n", expected: 3},
		{name: "addition", expr: "n + m", expected: 7},
		{name: "subtraction", expr: "m - n", expected: 1},
		{name: "multiplication", expr: "n * m", expected: 12},
		{name: "division", expr: "m / 2", expected: 2},
		{name: "precedence", expr: "n + m * 2", expected: 11},
		{name: "parentheses", expr: "(n + m) * 2", expected: 14},
		{name: "float truncates toward zero", expr: "scale * 2", expected: 5},
		{name: "unary minus", expr: "-n + m", expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			size, err := EvalSize(tt.expr, bound, "items")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, size)
		})
	}
}

func TestEvalSize_Failures(t *testing.T) {
	bound := argotypes.Bindings{
		"n":    argotypes.IntValue(3),
		"name": argotypes.StringValue("ada"),
		"c":    argotypes.CharValue('x'),
	}

	tests := []struct {
		name string
		expr string
		kind argotypes.ErrorKind
	}{
		{name: "unknown variable", expr: "k + 1", kind: argotypes.ErrInvalidExpression},
		{name: "string binding is not substitutable", expr: "name", kind: argotypes.ErrInvalidExpression},
		{name: "char binding is not substitutable", expr: "c", kind: argotypes.ErrInvalidExpression},
		{name: "division by zero", expr: "n / 0", kind: argotypes.ErrInvalidExpression},
		{name: "malformed formula", expr: "n +", kind: argotypes.ErrInvalidExpression},
		{name: "trailing garbage", expr: "n 2", kind: argotypes.ErrInvalidExpression},
		{name: "negative result", expr: "n - 10", kind: argotypes.ErrArgumentMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EvalSize(tt.expr, bound, "items")
			require.Error(t, err)
			assert.Equal(t, tt.kind, argotypes.KindOf(err))
		})
	}
}

func TestEvaluate_Arithmetic(t *testing.T) {
	vars := map[string]float64{"a": 6, "b": 1.5}

	tests := []struct {
		name     string
		formula  string
		expected float64
	}{
		{name: "number", formula: "42", expected: 42},
		{name: "decimal", formula: "2.5", expected: 2.5},
		{name: "chained subtraction is left associative", formula: "10 - 3 - 2", expected: 5},
		{name: "chained division is left associative", formula: "12 / 3 / 2", expected: 2},
		{name: "nested parentheses", formula: "((a))", expected: 6},
		{name: "float variable", formula: "a * b", expected: 9},
		{name: "double unary minus", formula: "--a", expected: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Evaluate(tt.formula, vars)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, result, 1e-9)
		})
	}
}

func TestEvaluate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		formula string
	}{
		{name: "empty", formula: ""},
		{name: "unbalanced parenthesis", formula: "(1 + 2"},
		{name: "missing operand", formula: "1 *"},
		{name: "bad character", formula: "1 ? 2"},
		{name: "double dot number", formula: "1.2.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Evaluate(tt.formula, nil)
			assert.Error(t, err)
		})
	}
}
