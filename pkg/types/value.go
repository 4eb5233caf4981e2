// Package types defines the core type system for Balsa templates.
//
// This package contains type definitions for:
//   - Span: half-open character ranges into template source
//   - Value: fully typed template values
//   - Type: the template type enumeration
//   - Expression: syntactic classification of parsed tokens
//   - Error types: structured compile- and render-time errors
package types

import (
	"fmt"
	"strconv"
)

// Type enumerates the types a value in a Balsa template can have.
type Type int

const (
	// TypeString is a basic string.
	TypeString Type = iota
	// TypeColor is a CSS color: a hex code, rgb()/hsl() value, or color name.
	TypeColor
	// TypeInteger is a 64-bit signed integer.
	TypeInteger
	// TypeFloat is a 64-bit float.
	TypeFloat
)

// String returns the DSL keyword for the type.
func (t Type) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeColor:
		return "color"
	case TypeInteger:
		return "int"
	case TypeFloat:
		return "float"
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// TypeFromKeyword resolves a DSL type keyword to its Type.
func TypeFromKeyword(keyword string) (Type, bool) {
	switch keyword {
	case "string":
		return TypeString, true
	case "color":
		return TypeColor, true
	case "int":
		return TypeInteger, true
	case "float":
		return TypeFloat, true
	}
	return 0, false
}

// Value is a fully typed datum in a Balsa template: either a literal from
// the template source or a runtime-supplied parameter value.
type Value struct {
	typ     Type
	text    string
	integer int64
	float   float64
}

// StringValue returns a Value of type string.
func StringValue(s string) Value {
	return Value{typ: TypeString, text: s}
}

// ColorValue returns a Value of type color. The text is not validated
// here; validation happens when casting a string to a color.
func ColorValue(s string) Value {
	return Value{typ: TypeColor, text: s}
}

// IntegerValue returns a Value of type int.
func IntegerValue(i int64) Value {
	return Value{typ: TypeInteger, integer: i}
}

// FloatValue returns a Value of type float.
func FloatValue(f float64) Value {
	return Value{typ: TypeFloat, float: f}
}

// Type returns the type of the value.
func (v Value) Type() Type {
	return v.typ
}

// Is reports whether the value has the given type.
func (v Value) Is(t Type) bool {
	return v.typ == t
}

// Int returns the underlying integer. It is only meaningful for values of
// type int.
func (v Value) Int() int64 {
	return v.integer
}

// Float returns the underlying float. It is only meaningful for values of
// type float.
func (v Value) Float() float64 {
	return v.float
}

// Text returns the canonical text form of the value, the form spliced
// into rendered output: raw text for strings and colors, decimal digits
// for integers, and the default decimal rendering for floats.
func (v Value) Text() string {
	switch v.typ {
	case TypeString, TypeColor:
		return v.text
	case TypeInteger:
		return strconv.FormatInt(v.integer, 10)
	case TypeFloat:
		return strconv.FormatFloat(v.float, 'f', -1, 64)
	}
	return ""
}

// String returns a display form of the value for diagnostics. Strings are
// quoted so they can be told apart from colors and identifiers.
func (v Value) String() string {
	if v.typ == TypeString {
		return strconv.Quote(v.text)
	}
	return v.Text()
}
