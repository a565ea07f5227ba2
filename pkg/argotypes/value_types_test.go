package argotypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrimitive(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected PrimitiveType
		ok       bool
	}{
		{name: "string", input: "string", expected: TypeString, ok: true},
		{name: "int", input: "int", expected: TypeInt, ok: true},
		{name: "float", input: "float", expected: TypeFloat, ok: true},
		{name: "char", input: "char", expected: TypeChar, ok: true},
		{name: "bool is not a primitive", input: "bool", ok: false},
		{name: "array is not a primitive", input: "array", ok: false},
		{name: "case sensitive", input: "Int", ok: false},
		{name: "empty", input: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParsePrimitive(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestValue_KindsAndAccessors(t *testing.T) {
	s := StringValue("hello")
	assert.Equal(t, KindString, s.Kind())
	assert.Equal(t, "hello", s.Text())

	i := IntValue(-42)
	assert.Equal(t, KindInt, i.Kind())
	assert.Equal(t, int64(-42), i.Int())

	f := FloatValue(2.5)
	assert.Equal(t, KindFloat, f.Kind())
	assert.InDelta(t, 2.5, f.Float(), 1e-9)

	c := CharValue('é')
	assert.Equal(t, KindChar, c.Kind())
	assert.Equal(t, 'é', c.Char())

	l := ListValue([]Value{IntValue(1), IntValue(2)})
	assert.Equal(t, KindList, l.Kind())
	require.Len(t, l.List(), 2)
}

func TestValue_Numeric(t *testing.T) {
	f, ok := IntValue(3).Numeric()
	require.True(t, ok)
	assert.InDelta(t, 3.0, f, 1e-9)

	f, ok = FloatValue(1.5).Numeric()
	require.True(t, ok)
	assert.InDelta(t, 1.5, f, 1e-9)

	for _, v := range []Value{
		StringValue("3"),
		CharValue('3'),
		ListValue([]Value{IntValue(3)}),
	} {
		_, ok := v.Numeric()
		assert.False(t, ok, "kind %v must not be numeric", v.Kind())
	}
}

func TestValue_String(t *testing.T) {
	tests := []struct {
		name     string
		value    Value
		expected string
	}{
		{name: "string", value: StringValue("hi"), expected: "hi"},
		{name: "int", value: IntValue(7), expected: "7"},
		{name: "float", value: FloatValue(1.5), expected: "1.5"},
		{name: "char", value: CharValue('x'), expected: "x"},
		{name: "list", value: ListValue([]Value{IntValue(1), StringValue("a")}), expected: "[1 a]"},
		{name: "empty list", value: ListValue(nil), expected: "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.value.String())
		})
	}
}

func TestBindings_NumericVars(t *testing.T) {
	b := Bindings{
		"n":     IntValue(3),
		"scale": FloatValue(0.5),
		"name":  StringValue("ada"),
		"c":     CharValue('x'),
		"items": ListValue([]Value{IntValue(1)}),
	}

	vars := b.NumericVars()
	assert.Len(t, vars, 2)
	assert.InDelta(t, 3.0, vars["n"], 1e-9)
	assert.InDelta(t, 0.5, vars["scale"], 1e-9)
}
