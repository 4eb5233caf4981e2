package types

// ExpressionKind identifies the syntactic class of an Expression.
type ExpressionKind int

const (
	// ExprIdentifier is a bare name, such as a variable or option key.
	ExprIdentifier ExpressionKind = iota
	// ExprType is a type keyword.
	ExprType
	// ExprValue is a literal value.
	ExprValue
)

// Expression is the low-level syntactic classification of a parsed token,
// produced by the grammar before any semantic validation. The compiler
// narrows expressions to the class each position requires and rejects the
// rest.
type Expression struct {
	Kind  ExpressionKind
	Ident string
	Type  Type
	Value Value
}

// IdentifierExpr returns an identifier expression.
func IdentifierExpr(name string) Expression {
	return Expression{Kind: ExprIdentifier, Ident: name}
}

// TypeExpr returns a type-keyword expression.
func TypeExpr(t Type) Expression {
	return Expression{Kind: ExprType, Type: t}
}

// ValueExpr returns a literal-value expression.
func ValueExpr(v Value) Expression {
	return Expression{Kind: ExprValue, Value: v}
}

// AsIdentifier unwraps the expression as an identifier.
func (e Expression) AsIdentifier() (string, bool) {
	if e.Kind != ExprIdentifier {
		return "", false
	}
	return e.Ident, true
}

// AsType unwraps the expression as a type.
func (e Expression) AsType() (Type, bool) {
	if e.Kind != ExprType {
		return 0, false
	}
	return e.Type, true
}

// AsValue unwraps the expression as a literal value.
func (e Expression) AsValue() (Value, bool) {
	if e.Kind != ExprValue {
		return Value{}, false
	}
	return e.Value, true
}

// String returns a display form of the expression for diagnostics.
func (e Expression) String() string {
	switch e.Kind {
	case ExprIdentifier:
		return e.Ident
	case ExprType:
		return e.Type.String()
	case ExprValue:
		return e.Value.String()
	}
	return ""
}
