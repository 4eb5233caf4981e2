package types

import (
	"fmt"

	"github.com/TylerLafayette/balsa/pkg/colors"
)

// TypeCastError describes a failed attempt to cast a value from one type
// to another.
type TypeCastError struct {
	Value Value
	From  Type
	To    Type
}

// Error implements the error interface.
func (e *TypeCastError) Error() string {
	return fmt.Sprintf("failed to cast value `%s` of type `%s` to type `%s`", e.Value, e.From, e.To)
}

// Cast attempts to convert the value to the target type.
//
// The cast rules are directional and fixed, and they are applied
// identically at compile time (literal defaults and declarations) and at
// render time (runtime-supplied parameter values):
//
//	string → string   identity
//	string → color    only if the text is a valid CSS color
//	color  → string   identity (unwrap the underlying text)
//	color  → color    identity
//	int    → int      identity
//	int    → float    only if the value fits in the 32-bit signed range
//	float  → float    identity
//
// Every other pair fails with a TypeCastError. In particular there is no
// int↔string, float↔string, or color↔numeric conversion.
func (v Value) Cast(target Type) (Value, error) {
	failure := &TypeCastError{Value: v, From: v.typ, To: target}

	switch v.typ {
	case TypeString:
		switch target {
		case TypeString:
			return v, nil
		case TypeColor:
			if colors.IsValid(v.text) {
				return ColorValue(v.text), nil
			}
		}
	case TypeColor:
		switch target {
		case TypeString:
			return StringValue(v.text), nil
		case TypeColor:
			return v, nil
		}
	case TypeInteger:
		switch target {
		case TypeInteger:
			return v, nil
		case TypeFloat:
			if v.integer >= -1<<31 && v.integer <= 1<<31-1 {
				return FloatValue(float64(v.integer)), nil
			}
		}
	case TypeFloat:
		if target == TypeFloat {
			return v, nil
		}
	}

	return Value{}, failure
}
