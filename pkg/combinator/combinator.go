// Package combinator implements a generic, position-tracking
// parser-combinator engine.
//
// A parser is a function from a character offset and the remaining input
// to either the remaining text with a span-tagged token, or a failure.
// Failures come in exactly two kinds, and the distinction is the core
// contract of the package:
//
//   - ErrNotMatched: the parser did not recognize the input at this
//     position. Zero characters were consumed, so an enclosing Or may try
//     the next alternative without re-scanning.
//   - MalformedError: the parser recognized the shape of the input but the
//     content inside is invalid (for example an integer literal whose
//     digits overflow). It propagates immediately and never triggers
//     fallback to a sibling alternative.
//
// The package has no knowledge of any particular grammar; see pkg/parser
// for the template DSL built on top of it.
package combinator

import (
	"errors"
	"fmt"

	"github.com/TylerLafayette/balsa/pkg/types"
)

// ErrNotMatched reports that a parser did not recognize the input at the
// current position. No input is consumed.
var ErrNotMatched = errors.New("parser did not match input")

// MalformedError reports input whose shape was recognized but whose
// content is invalid. It aborts alternation instead of falling through to
// the wrong grammar rule.
type MalformedError struct {
	Pos int
}

// Error implements the error interface.
func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed input at position %d", e.Pos)
}

// Malformed returns a MalformedError at pos.
func Malformed(pos int) error {
	return &MalformedError{Pos: pos}
}

// Parsed is a parser output value tagged with the span it was derived
// from.
type Parsed[T any] struct {
	Span  types.Span
	Token T
}

// Parser consumes input starting at the character offset pos, where input
// is the not-yet-consumed tail of the source text. On success it returns
// the remaining input after the match and the span-tagged token.
type Parser[T any] func(pos int, input string) (rest string, out Parsed[T], err error)

// Map transforms the token of a successful parse with fn. The span is
// unchanged.
func Map[T, O any](p Parser[T], fn func(T) O) Parser[O] {
	return MapResult(p, func(t T) (O, error) {
		return fn(t), nil
	})
}

// MapResult is Map for transforms that can themselves fail. A failed
// transform is reported as malformed input at the start of the parsed
// span.
func MapResult[T, O any](p Parser[T], fn func(T) (O, error)) Parser[O] {
	return func(pos int, input string) (string, Parsed[O], error) {
		rest, out, err := p(pos, input)
		if err != nil {
			return "", Parsed[O]{}, err
		}
		token, err := fn(out.Token)
		if err != nil {
			return "", Parsed[O]{}, Malformed(out.Span.Start)
		}
		return rest, Parsed[O]{Span: out.Span, Token: token}, nil
	}
}

// Chain runs left, then right starting at left's end position on left's
// remaining input. The spans are merged and the two tokens are combined
// with the combine function.
func Chain[L, R, O any](left Parser[L], right Parser[R], combine func(L, R) O) Parser[O] {
	return ChainResult(left, right, func(l L, r R) (O, error) {
		return combine(l, r), nil
	})
}

// ChainResult is Chain for combine functions that can fail. A failed
// combine is reported as malformed input at the start of the sequence.
func ChainResult[L, R, O any](left Parser[L], right Parser[R], combine func(L, R) (O, error)) Parser[O] {
	return func(pos int, input string) (string, Parsed[O], error) {
		rest, lout, err := left(pos, input)
		if err != nil {
			return "", Parsed[O]{}, err
		}
		rest, rout, err := right(lout.Span.End, rest)
		if err != nil {
			return "", Parsed[O]{}, err
		}
		token, err := combine(lout.Token, rout.Token)
		if err != nil {
			return "", Parsed[O]{}, Malformed(lout.Span.Start)
		}
		return rest, Parsed[O]{Span: lout.Span.Merge(rout.Span), Token: token}, nil
	}
}

// Or tries left and falls back to right, at the same position, only when
// left fails with ErrNotMatched. Malformed input from either branch is
// returned immediately without trying the other. Order matters: when both
// alternatives could match, left wins.
func Or[T any](left, right Parser[T]) Parser[T] {
	return func(pos int, input string) (string, Parsed[T], error) {
		rest, out, err := left(pos, input)
		if err == nil || !errors.Is(err, ErrNotMatched) {
			return rest, out, err
		}
		return right(pos, input)
	}
}

// Left sequences two parsers and keeps only the left token. The resulting
// span still covers both.
func Left[L, R any](left Parser[L], right Parser[R]) Parser[L] {
	return Chain(left, right, func(l L, _ R) L {
		return l
	})
}

// Right sequences two parsers and keeps only the right token. The
// resulting span still covers both.
func Right[L, R any](left Parser[L], right Parser[R]) Parser[R] {
	return Chain(left, right, func(_ L, r R) R {
		return r
	})
}

// Middle sequences three parsers and keeps only the middle token. The
// resulting span covers the full sequence.
func Middle[L, M, R any](left Parser[L], middle Parser[M], right Parser[R]) Parser[M] {
	return Right(left, Left(middle, right))
}

// Maybe is the result of an Optional parser.
type Maybe[T any] struct {
	Token T
	Valid bool
}

// Optional converts ErrNotMatched into a successful empty result with a
// zero-width span at the current position. Malformed input still
// propagates.
func Optional[T any](p Parser[T]) Parser[Maybe[T]] {
	return func(pos int, input string) (string, Parsed[Maybe[T]], error) {
		rest, out, err := p(pos, input)
		if err == nil {
			return rest, Parsed[Maybe[T]]{
				Span:  out.Span,
				Token: Maybe[T]{Token: out.Token, Valid: true},
			}, nil
		}
		if errors.Is(err, ErrNotMatched) {
			return input, Parsed[Maybe[T]]{Span: types.Span{Start: pos, End: pos}}, nil
		}
		return "", Parsed[Maybe[T]]{}, err
	}
}

// Many applies p repeatedly, accumulating tokens until the first
// ErrNotMatched, which stops the repetition cleanly. Zero matches is a
// successful empty result. Malformed input aborts the whole repetition.
func Many[T any](p Parser[T]) Parser[[]T] {
	return func(pos int, input string) (string, Parsed[[]T], error) {
		var tokens []T
		end := pos
		rest := input

		for {
			newRest, out, err := p(end, rest)
			if err != nil {
				if errors.Is(err, ErrNotMatched) {
					break
				}
				return "", Parsed[[]T]{}, err
			}
			rest = newRest
			end = out.Span.End
			tokens = append(tokens, out.Token)
		}

		return rest, Parsed[[]T]{Span: types.Span{Start: pos, End: end}, Token: tokens}, nil
	}
}

// OneToMany is Many, but fails with ErrNotMatched when zero tokens were
// matched.
func OneToMany[T any](p Parser[T]) Parser[[]T] {
	many := Many(p)
	return func(pos int, input string) (string, Parsed[[]T], error) {
		rest, out, err := many(pos, input)
		if err == nil && len(out.Token) == 0 {
			return "", Parsed[[]T]{}, ErrNotMatched
		}
		return rest, out, err
	}
}

// DelimitedList parses zero or more items separated by delimiters. An
// empty list is a successful, not a failing, result.
func DelimitedList[T, D any](item Parser[T], delimiter Parser[D]) Parser[[]T] {
	list := Chain(item, Many(Right(delimiter, item)), func(first T, rest []T) []T {
		return append([]T{first}, rest...)
	})
	return Map(Optional(list), func(m Maybe[[]T]) []T {
		return m.Token
	})
}

// Pair is the output of KeySepValue.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// KeySepValue parses <key><delimiter><value> and returns the key/value
// pair, discarding the delimiter's token.
func KeySepValue[K, D, V any](key Parser[K], delimiter Parser[D], value Parser[V]) Parser[Pair[K, V]] {
	return Chain(key, Right(delimiter, value), func(k K, v V) Pair[K, V] {
		return Pair[K, V]{Key: k, Value: v}
	})
}
