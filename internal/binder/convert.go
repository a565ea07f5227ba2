package binder

import (
	"strconv"
	"unicode/utf8"

	"argot/pkg/argotypes"
)

// Convert parses one raw token as the requested primitive type.
// string is the identity conversion and never fails; int is base-10 signed;
// float is a decimal literal; char requires the token to be exactly one code
// point. Anything unparsable fails with TypeConversionFailed.
func Convert(token string, t argotypes.PrimitiveType) (argotypes.Value, error) {
	switch t {
	case argotypes.TypeString:
		return argotypes.StringValue(token), nil

	case argotypes.TypeInt:
		n, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return argotypes.Value{}, argotypes.NewError(argotypes.ErrTypeConversionFailed,
				"cannot parse %q as int", token)
		}
		return argotypes.IntValue(n), nil

	case argotypes.TypeFloat:
		f, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return argotypes.Value{}, argotypes.NewError(argotypes.ErrTypeConversionFailed,
				"cannot parse %q as float", token)
		}
		return argotypes.FloatValue(f), nil

	case argotypes.TypeChar:
		if utf8.RuneCountInString(token) != 1 {
			return argotypes.Value{}, argotypes.NewError(argotypes.ErrTypeConversionFailed,
				"%q is not a single character", token)
		}
		r, _ := utf8.DecodeRuneInString(token)
		return argotypes.CharValue(r), nil

	default:
		return argotypes.Value{}, argotypes.NewError(argotypes.ErrTypeConversionFailed,
			"unsupported type %v", t)
	}
}
