// Package binder matches raw input tokens against a compiled template and
// converts them to typed values. Binding walks the definitions in template
// order with a cursor into the token list, so an array's size expression can
// reference any scalar bound earlier in the same template.
package binder

import (
	"argot/internal/expr"
	"argot/internal/template"
	"argot/pkg/argotypes"
)

// Bind walks the compiled definitions against the token sequence and returns
// the bound arguments plus any tokens left unconsumed. Leftover tokens are
// not an error; the caller decides how to report them. A missing token for a
// simple definition or an array size exceeding the remaining tokens fails
// with ArgumentMismatch; size evaluation and conversion failures propagate
// from their own stages.
func Bind(tpl *template.Template, tokens []string) (argotypes.Bindings, []string, error) {
	bound := make(argotypes.Bindings, len(tpl.Defs))
	cursor := 0

	for _, def := range tpl.Defs {
		switch def.Kind {
		case template.SimpleArg:
			if cursor >= len(tokens) {
				return nil, nil, argotypes.NewError(argotypes.ErrArgumentMismatch,
					"no token left for argument %q", def.Name)
			}
			v, err := Convert(tokens[cursor], def.Prim)
			if err != nil {
				return nil, nil, err
			}
			bound[def.Name] = v
			cursor++

		case template.ArrayArg:
			size, err := expr.EvalSize(def.SizeExpr, bound, def.Name)
			if err != nil {
				return nil, nil, err
			}
			if cursor+size > len(tokens) {
				return nil, nil, argotypes.NewError(argotypes.ErrArgumentMismatch,
					"array %q needs %d tokens, only %d remaining", def.Name, size, len(tokens)-cursor)
			}
			items := make([]argotypes.Value, size)
			for i, token := range tokens[cursor : cursor+size] {
				if def.Elem != nil {
					items[i], err = Convert(token, *def.Elem)
					if err != nil {
						return nil, nil, err
					}
				} else {
					items[i] = argotypes.StringValue(token)
				}
			}
			bound[def.Name] = argotypes.ListValue(items)
			cursor += size
		}
	}

	return bound, tokens[cursor:], nil
}
