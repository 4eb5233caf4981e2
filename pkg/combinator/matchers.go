package combinator

import (
	"strings"
	"unicode/utf8"

	"github.com/TylerLafayette/balsa/pkg/types"
)

// Char matches exactly the character r.
func Char(r rune) Parser[rune] {
	return func(pos int, input string) (string, Parsed[rune], error) {
		first, size := utf8.DecodeRuneInString(input)
		if size == 0 || first != r {
			return "", Parsed[rune]{}, ErrNotMatched
		}
		return input[size:], Parsed[rune]{
			Span:  types.Span{Start: pos, End: pos + 1},
			Token: r,
		}, nil
	}
}

// Literal matches exactly the string s.
func Literal(s string) Parser[string] {
	runes := utf8.RuneCountInString(s)
	return func(pos int, input string) (string, Parsed[string], error) {
		if !strings.HasPrefix(input, s) {
			return "", Parsed[string]{}, ErrNotMatched
		}
		return input[len(s):], Parsed[string]{
			Span:  types.Span{Start: pos, End: pos + runes},
			Token: s,
		}, nil
	}
}

// TakeWhile consumes the longest run of characters satisfying allowed. It
// fails with ErrNotMatched when zero characters qualify.
func TakeWhile(allowed func(rune) bool) Parser[string] {
	return func(pos int, input string) (string, Parsed[string], error) {
		end := len(input)
		count := 0
		for i, r := range input {
			if !allowed(r) {
				end = i
				break
			}
			count++
		}
		if count == 0 {
			return "", Parsed[string]{}, ErrNotMatched
		}
		return input[end:], Parsed[string]{
			Span:  types.Span{Start: pos, End: pos + count},
			Token: input[:end],
		}, nil
	}
}

// TakeUntil consumes characters up to, but not including, the terminator.
// It fails with ErrNotMatched when the input starts with the terminator
// or is empty.
func TakeUntil(terminator rune) Parser[string] {
	return TakeWhile(func(r rune) bool {
		return r != terminator
	})
}
