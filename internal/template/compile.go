// Package template compiles Argot argument templates. A template is a
// whitespace-separated sequence of entries shaped
// "&<type> <name>" or "&array<size[,elemType]> <name>", e.g.
// "&int count &array<count,string> names". Compilation produces the ordered
// argument definitions the binder walks at dispatch time.
package template

import (
	"regexp"
	"strings"

	"argot/pkg/argotypes"
)

// ArgKind distinguishes scalar definitions from array definitions.
type ArgKind int

const (
	// SimpleArg binds exactly one token.
	SimpleArg ArgKind = iota
	// ArrayArg binds a run of tokens whose length is a size expression.
	ArrayArg
)

// ArgDef is one compiled argument definition. Definitions are created once
// per compile and never mutated afterwards.
type ArgDef struct {
	Name string
	Kind ArgKind

	// Prim is the declared type of a SimpleArg.
	Prim argotypes.PrimitiveType

	// SizeExpr is the raw size expression of an ArrayArg: an integer
	// literal or an arithmetic formula over earlier numeric arguments.
	SizeExpr string

	// Elem is the declared element type of an ArrayArg, nil when the
	// clause omits it (elements then stay raw strings).
	Elem *argotypes.PrimitiveType
}

// Template is an ordered list of argument definitions. Order is significant:
// it defines binding order, and a size expression may only reference
// definitions that occur strictly before its array.
type Template struct {
	Defs []ArgDef
}

// entryPattern recognizes one template entry anywhere in the string:
// "&type name" or "&type<detail> name". The scan is deliberately
// non-anchored and tolerant: text that never matches the pattern is
// skipped, not rejected.
var entryPattern = regexp.MustCompile(`&([a-zA-Z]+)(<[^>]*>)?\s+([A-Za-z_][A-Za-z0-9_]*)`)

var identPattern = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*`)

// Compile parses a template string into its argument definitions.
// It fails with InvalidTemplate when a matched entry declares an unknown
// type, an array lacks its <size[,elemType]> clause, an element type is not
// a known primitive, an argument name repeats, or a size expression
// references a name not declared strictly earlier.
func Compile(text string) (*Template, error) {
	tpl := &Template{}
	seen := make(map[string]bool)

	for _, m := range entryPattern.FindAllStringSubmatch(text, -1) {
		typeName, clause, argName := m[1], m[2], m[3]

		def, err := compileEntry(typeName, clause, argName)
		if err != nil {
			return nil, err
		}

		if seen[argName] {
			return nil, argotypes.NewError(argotypes.ErrInvalidTemplate,
				"duplicate argument name %q", argName)
		}
		if def.Kind == ArrayArg {
			if err := checkSizeReferences(def, seen); err != nil {
				return nil, err
			}
		}

		seen[argName] = true
		tpl.Defs = append(tpl.Defs, def)
	}

	return tpl, nil
}

func compileEntry(typeName, clause, argName string) (ArgDef, error) {
	if typeName == "array" {
		return compileArrayEntry(clause, argName)
	}

	prim, ok := argotypes.ParsePrimitive(typeName)
	if !ok {
		return ArgDef{}, argotypes.NewError(argotypes.ErrInvalidTemplate,
			"unknown type %q for argument %q", typeName, argName)
	}
	// A detail clause on a simple type is ignored, matching the tolerant
	// scan: it is not part of the entry's meaning.
	return ArgDef{Name: argName, Kind: SimpleArg, Prim: prim}, nil
}

func compileArrayEntry(clause, argName string) (ArgDef, error) {
	if clause == "" {
		return ArgDef{}, argotypes.NewError(argotypes.ErrInvalidTemplate,
			"array %q is missing its <size[,elemType]> clause", argName)
	}
	detail := clause[1 : len(clause)-1]

	sizeExpr := detail
	var elem *argotypes.PrimitiveType
	if comma := strings.Index(detail, ","); comma >= 0 {
		sizeExpr = detail[:comma]
		elemName := strings.TrimSpace(detail[comma+1:])
		prim, ok := argotypes.ParsePrimitive(elemName)
		if !ok {
			return ArgDef{}, argotypes.NewError(argotypes.ErrInvalidTemplate,
				"unknown element type %q for array %q", elemName, argName)
		}
		elem = &prim
	}

	sizeExpr = strings.TrimSpace(sizeExpr)
	if sizeExpr == "" {
		return ArgDef{}, argotypes.NewError(argotypes.ErrInvalidTemplate,
			"array %q has an empty size expression", argName)
	}

	return ArgDef{Name: argName, Kind: ArrayArg, SizeExpr: sizeExpr, Elem: elem}, nil
}

// checkSizeReferences rejects size expressions that mention names not
// declared strictly before the array, so forward and self references fail at
// compile time instead of behaving unpredictably at bind time.
func checkSizeReferences(def ArgDef, seen map[string]bool) error {
	for _, ident := range identPattern.FindAllString(def.SizeExpr, -1) {
		if !seen[ident] {
			return argotypes.NewError(argotypes.ErrInvalidTemplate,
				"size of array %q references %q, which is not declared before it", def.Name, ident)
		}
	}
	return nil
}
