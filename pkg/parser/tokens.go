package parser

import "github.com/TylerLafayette/balsa/pkg/types"

// Token is a block produced by scanning a template document. The concrete
// type is either *ParameterBlock or *DeclarationBlock. Literal text
// between blocks is not stored; it is recoverable from the gaps between
// consecutive block spans.
type Token interface {
	// Span returns the source range of the whole block, braces included.
	Span() types.Span
}

// ParameterBlock declares a named, typed placeholder to be filled at
// render time: {{ name : type, ...options }}.
//
// Name and VarType are kept as raw expressions; the compiler narrows them
// and reports a structured error when a block uses the wrong syntactic
// class, such as a literal where the name should be.
type ParameterBlock struct {
	Range   types.Span
	Name    types.Expression
	VarType types.Expression
	Options []Option
}

// Span implements Token.
func (b *ParameterBlock) Span() types.Span {
	return b.Range
}

// Option is a single key/value option inside a parameter block.
type Option struct {
	Key   string
	Value types.Expression
}

// DeclarationBlock declares one or more named, typed constants:
// {{@ name : type = value, ... }}.
type DeclarationBlock struct {
	Range        types.Span
	Declarations []Declaration
}

// Span implements Token.
func (b *DeclarationBlock) Span() types.Span {
	return b.Range
}

// Declaration is one name : type = value triple inside a declaration
// block.
type Declaration struct {
	Identifier types.Expression
	VarType    types.Expression
	Value      types.Expression
}
