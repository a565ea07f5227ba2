// Package argotypes defines the shared type system for Argot.
// It contains the primitive argument types, the tagged-variant Value that
// bound arguments are stored as, and the Bindings map handed to command
// actions.
package argotypes

import (
	"fmt"
	"strconv"
	"strings"
)

// PrimitiveType enumerates the argument types a template entry may declare.
// The set is closed: string, int, float, and char.
type PrimitiveType int

const (
	// TypeString is free text, conversion always succeeds.
	TypeString PrimitiveType = iota
	// TypeInt is a base-10 signed integer.
	TypeInt
	// TypeFloat is a decimal floating-point number.
	TypeFloat
	// TypeChar is exactly one character (one code point, not one byte).
	TypeChar
)

// String returns the template-syntax name of the type.
func (t PrimitiveType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeChar:
		return "char"
	default:
		return fmt.Sprintf("PrimitiveType(%d)", int(t))
	}
}

// ParsePrimitive maps a template type name to its PrimitiveType.
// Returns false for anything outside string|int|float|char.
func ParsePrimitive(name string) (PrimitiveType, bool) {
	switch name {
	case "string":
		return TypeString, true
	case "int":
		return TypeInt, true
	case "float":
		return TypeFloat, true
	case "char":
		return TypeChar, true
	default:
		return 0, false
	}
}

// ValueKind tags the variant held by a Value.
type ValueKind int

const (
	// KindString holds free text.
	KindString ValueKind = iota
	// KindInt holds a signed integer.
	KindInt
	// KindFloat holds a floating-point number.
	KindFloat
	// KindChar holds a single code point.
	KindChar
	// KindList holds an ordered sequence of Values.
	KindList
)

// String returns a human-readable name for the kind.
func (k ValueKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindChar:
		return "char"
	case KindList:
		return "list"
	default:
		return fmt.Sprintf("ValueKind(%d)", int(k))
	}
}

// Value is a closed tagged variant holding one bound argument: text, an
// integer, a float, a single character, or an ordered list of Values.
// The zero Value is the empty string. Values are immutable once created;
// consumers switch on Kind and read the matching accessor.
type Value struct {
	kind ValueKind
	text string
	num  int64
	real float64
	ch   rune
	list []Value
}

// StringValue wraps free text.
func StringValue(s string) Value {
	return Value{kind: KindString, text: s}
}

// IntValue wraps a signed integer.
func IntValue(i int64) Value {
	return Value{kind: KindInt, num: i}
}

// FloatValue wraps a floating-point number.
func FloatValue(f float64) Value {
	return Value{kind: KindFloat, real: f}
}

// CharValue wraps a single code point.
func CharValue(r rune) Value {
	return Value{kind: KindChar, ch: r}
}

// ListValue wraps an ordered sequence of Values. The slice is not copied;
// callers must not mutate it after handing it over.
func ListValue(items []Value) Value {
	return Value{kind: KindList, list: items}
}

// Kind returns the variant tag.
func (v Value) Kind() ValueKind {
	return v.kind
}

// Text returns the held text. Only meaningful for KindString.
func (v Value) Text() string {
	return v.text
}

// Int returns the held integer. Only meaningful for KindInt.
func (v Value) Int() int64 {
	return v.num
}

// Float returns the held float. Only meaningful for KindFloat.
func (v Value) Float() float64 {
	return v.real
}

// Char returns the held code point. Only meaningful for KindChar.
func (v Value) Char() rune {
	return v.ch
}

// List returns the held sequence. Only meaningful for KindList.
func (v Value) List() []Value {
	return v.list
}

// Numeric returns the value as a float64 when the kind is Int or Float.
// String, char, and list values report false: they are never substitutable
// into size expressions.
func (v Value) Numeric() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.num), true
	case KindFloat:
		return v.real, true
	default:
		return 0, false
	}
}

// String renders the value for display and logging.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.text
	case KindInt:
		return strconv.FormatInt(v.num, 10)
	case KindFloat:
		return strconv.FormatFloat(v.real, 'g', -1, 64)
	case KindChar:
		return string(v.ch)
	case KindList:
		parts := make([]string, len(v.list))
		for i, item := range v.list {
			parts[i] = item.String()
		}
		return "[" + strings.Join(parts, " ") + "]"
	default:
		return ""
	}
}

// Bindings maps argument names to their bound Values. Insertion order is
// irrelevant; binding order is defined by the template, not the map.
type Bindings map[string]Value

// NumericVars extracts the numeric bindings as a name-to-float64 map for use
// as size-expression variables. Non-numeric bindings are omitted.
func (b Bindings) NumericVars() map[string]float64 {
	vars := make(map[string]float64, len(b))
	for name, v := range b {
		if f, ok := v.Numeric(); ok {
			vars[name] = f
		}
	}
	return vars
}
