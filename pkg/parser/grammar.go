package parser

import (
	"strconv"

	"github.com/TylerLafayette/balsa/pkg/combinator"
	"github.com/TylerLafayette/balsa/pkg/types"
)

func isIdentifierRune(r rune) bool {
	return r == '-' || r == '_' ||
		(r >= '0' && r <= '9') ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z')
}

func isDigitRune(r rune) bool {
	return r >= '0' && r <= '9'
}

func isSpaceRune(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n'
}

var (
	// Whitespace is never significant; it is consumed around delimiters
	// and inside blocks.
	ws = combinator.Optional(combinator.TakeWhile(isSpaceRune))

	colon  = combinator.Middle(ws, combinator.Char(':'), ws)
	comma  = combinator.Middle(ws, combinator.Char(','), ws)
	equals = combinator.Middle(ws, combinator.Char('='), ws)

	identifier = combinator.TakeWhile(isIdentifierRune)

	// A string literal is the text strictly between a pair of double
	// quotes. There is no escape processing, so a literal quote cannot
	// appear inside one.
	stringLiteral = combinator.Map(
		combinator.Middle(
			combinator.Char('"'),
			combinator.TakeUntil('"'),
			combinator.Char('"'),
		),
		types.StringValue,
	)

	// An integer literal is a run of ASCII digits parsed as a 64-bit
	// signed integer. Overflow is malformed input, not a non-match: the
	// shape was recognized, the content is invalid.
	integerLiteral = combinator.MapResult(
		combinator.TakeWhile(isDigitRune),
		func(digits string) (types.Value, error) {
			n, err := strconv.ParseInt(digits, 10, 64)
			if err != nil {
				return types.Value{}, err
			}
			return types.IntegerValue(n), nil
		},
	)

	valueLiteral = combinator.Or(stringLiteral, integerLiteral)

	// Type keywords, tried in a fixed order.
	typeKeyword = combinator.Map(
		combinator.Or(
			combinator.Literal("string"),
			combinator.Or(
				combinator.Literal("color"),
				combinator.Or(
					combinator.Literal("int"),
					combinator.Literal("float"),
				),
			),
		),
		func(keyword string) types.Type {
			t, _ := types.TypeFromKeyword(keyword)
			return t
		},
	)

	// An expression is classified as a value first, then a type keyword,
	// and everything else falls back to an identifier.
	expression = combinator.Or(
		combinator.Map(valueLiteral, types.ValueExpr),
		combinator.Or(
			combinator.Map(typeKeyword, types.TypeExpr),
			combinator.Map(identifier, types.IdentifierExpr),
		),
	)

	nameTypePair = combinator.KeySepValue(expression, colon, expression)

	optionPair = combinator.Map(
		combinator.KeySepValue(identifier, colon, expression),
		func(p combinator.Pair[string, types.Expression]) Option {
			return Option{Key: p.Key, Value: p.Value}
		},
	)

	parameterBody = combinator.Chain(
		nameTypePair,
		combinator.Optional(
			combinator.Right(comma, combinator.DelimitedList(optionPair, comma)),
		),
		func(nt combinator.Pair[types.Expression, types.Expression], opts combinator.Maybe[[]Option]) *ParameterBlock {
			return &ParameterBlock{Name: nt.Key, VarType: nt.Value, Options: opts.Token}
		},
	)

	parameterBlock = spanned(
		combinator.Middle(
			combinator.Left(combinator.Literal("{{"), ws),
			parameterBody,
			combinator.Right(ws, combinator.Literal("}}")),
		),
		func(span types.Span, b *ParameterBlock) Token {
			b.Range = span
			return b
		},
	)

	declaration = combinator.Chain(
		combinator.KeySepValue(expression, colon, expression),
		combinator.Right(equals, expression),
		func(nt combinator.Pair[types.Expression, types.Expression], value types.Expression) Declaration {
			return Declaration{Identifier: nt.Key, VarType: nt.Value, Value: value}
		},
	)

	// One or more comma-separated declarations.
	declarations = combinator.Chain(
		declaration,
		combinator.Many(combinator.Right(comma, declaration)),
		func(first Declaration, rest []Declaration) []Declaration {
			return append([]Declaration{first}, rest...)
		},
	)

	declarationBlock = spanned(
		combinator.Middle(
			combinator.Left(combinator.Literal("{{@"), ws),
			declarations,
			combinator.Right(ws, combinator.Literal("}}")),
		),
		func(span types.Span, decls []Declaration) Token {
			return &DeclarationBlock{Range: span, Declarations: decls}
		},
	)

	// block recognizes either block form at the current position. The
	// parameter form is tried first; "{{@" fails it without consuming
	// input, so the declaration form still gets its turn.
	block = combinator.Or(parameterBlock, declarationBlock)
)

// spanned wraps a parser so the produced token records the span it was
// parsed from, braces included.
func spanned[T any](p combinator.Parser[T], build func(types.Span, T) Token) combinator.Parser[Token] {
	return func(pos int, input string) (string, combinator.Parsed[Token], error) {
		rest, out, err := p(pos, input)
		if err != nil {
			return "", combinator.Parsed[Token]{}, err
		}
		return rest, combinator.Parsed[Token]{Span: out.Span, Token: build(out.Span, out.Token)}, nil
	}
}
