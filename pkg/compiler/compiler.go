// Package compiler turns a parsed token stream into an immutable
// CompiledTemplate: an ordered list of source-span replacement
// instructions plus the global scope of declared constants.
//
// Compilation is fail-fast: the first validation error aborts the whole
// compile and no partial artifact is returned.
package compiler

import (
	"github.com/TylerLafayette/balsa/pkg/parser"
	"github.com/TylerLafayette/balsa/pkg/types"
)

// DefaultValueOption is the only option key a parameter block recognizes.
const DefaultValueOption = "defaultValue"

// ReplaceWith tags what the renderer should splice into an instruction's
// span.
type ReplaceWith int

const (
	// ReplaceWithNothing drops the span's source text and emits nothing.
	ReplaceWithNothing ReplaceWith = iota
	// ReplaceWithParameter substitutes a resolved parameter value.
	ReplaceWithParameter
)

// ParameterDescription describes one render-time placeholder.
type ParameterDescription struct {
	Name string
	Type types.Type
	// Default is the block's defaultValue, already cast to Type at
	// compile time, or nil when the block declared none.
	Default *types.Value
}

// ReplacementInstruction is a compiled directive telling the renderer
// what to do with one source span.
type ReplacementInstruction struct {
	Range       types.Span
	ReplaceWith ReplaceWith
	// Parameter is meaningful only when ReplaceWith is
	// ReplaceWithParameter.
	Parameter ParameterDescription
}

// CompiledTemplate is the artifact produced by Compile. It is immutable
// once returned: any number of renders, including concurrent ones, may
// read the same CompiledTemplate without coordination.
type CompiledTemplate struct {
	scope        map[string]types.Value
	instructions []ReplacementInstruction
}

// Instructions returns the replacement instructions, sorted by ascending
// span start with non-overlapping spans. The caller must not modify the
// returned slice.
func (ct *CompiledTemplate) Instructions() []ReplacementInstruction {
	return ct.instructions
}

// GlobalScope returns a copy of the declared constants, keyed by
// identifier. The scope is produced for inspection; rendering does not
// read it and declaration-block source text is left untouched in the
// output.
func (ct *CompiledTemplate) GlobalScope() map[string]types.Value {
	scope := make(map[string]types.Value, len(ct.scope))
	for name, value := range ct.scope {
		scope[name] = value
	}
	return scope
}

// Constant looks up a declared constant by name.
func (ct *CompiledTemplate) Constant(name string) (types.Value, bool) {
	value, ok := ct.scope[name]
	return value, ok
}

type compiler struct {
	scope        map[string]types.Value
	instructions []ReplacementInstruction
}

// Compile validates and type-checks a token stream and produces a
// CompiledTemplate. Tokens are processed in source order and the order is
// preserved in the emitted instructions; the first validation error
// aborts compilation.
func Compile(tokens []parser.Token) (*CompiledTemplate, error) {
	c := &compiler{scope: make(map[string]types.Value)}

	for _, token := range tokens {
		var err error
		switch block := token.(type) {
		case *parser.ParameterBlock:
			err = c.parameterBlock(block)
		case *parser.DeclarationBlock:
			err = c.declarationBlock(block)
		}
		if err != nil {
			return nil, err
		}
	}

	return &CompiledTemplate{scope: c.scope, instructions: c.instructions}, nil
}

func (c *compiler) parameterBlock(block *parser.ParameterBlock) error {
	pos := block.Range.Start

	name, ok := block.Name.AsIdentifier()
	if !ok {
		return types.InvalidParameterIdentifier(pos, block.Name)
	}

	declared, ok := block.VarType.AsType()
	if !ok {
		return types.InvalidTypeExpression(pos, block.VarType)
	}

	description := ParameterDescription{Name: name, Type: declared}

	for _, option := range block.Options {
		if option.Key != DefaultValueOption {
			return types.InvalidParameter(pos, option.Key)
		}

		value, ok := option.Value.AsValue()
		if !ok {
			return types.InvalidExpression(pos, option.Value)
		}

		cast, err := value.Cast(declared)
		if err != nil {
			return types.InvalidTypeCast(pos, err.(*types.TypeCastError))
		}
		description.Default = &cast
	}

	c.instructions = append(c.instructions, ReplacementInstruction{
		Range:       block.Range,
		ReplaceWith: ReplaceWithParameter,
		Parameter:   description,
	})

	return nil
}

func (c *compiler) declarationBlock(block *parser.DeclarationBlock) error {
	pos := block.Range.Start

	for _, declaration := range block.Declarations {
		name, ok := declaration.Identifier.AsIdentifier()
		if !ok {
			return types.InvalidDeclarationIdentifier(pos, declaration.Identifier)
		}

		declared, ok := declaration.VarType.AsType()
		if !ok {
			return types.InvalidTypeExpression(pos, declaration.VarType)
		}

		value, ok := declaration.Value.AsValue()
		if !ok {
			return types.InvalidExpression(pos, declaration.Value)
		}

		cast, err := value.Cast(declared)
		if err != nil {
			return types.InvalidTypeCast(pos, err.(*types.TypeCastError))
		}

		// Redeclaring an identifier overwrites the earlier value:
		// last write wins.
		c.scope[name] = cast
	}

	// Declaration blocks emit no instruction; their source text passes
	// through to the rendered output unchanged.
	return nil
}
