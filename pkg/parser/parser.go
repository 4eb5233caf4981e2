// Package parser implements the Balsa template grammar and document
// scanner on top of the generic engine in pkg/combinator.
//
// The grammar recognizes two block forms embedded in otherwise opaque
// text:
//
//	{{ name : type, defaultValue: "fallback" }}   parameter block
//	{{@ name : type = value, ... }}               declaration block
//
// Everything outside a block is literal text and passes through
// untouched. Parse returns the blocks in source order with their spans;
// the compiler in pkg/compiler performs all semantic validation.
package parser

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/TylerLafayette/balsa/pkg/combinator"
	"github.com/TylerLafayette/balsa/pkg/types"
)

// Parse scans a raw template and returns its blocks in source order.
//
// The scanner consumes literal text up to the next '{', then tries to
// recognize a parameter block and then a declaration block at that
// position. When neither matches, the lone '{' is treated as literal text
// and scanning continues. Spans of the returned tokens are strictly
// increasing and non-overlapping.
//
// Malformed input inside a block (for example an overflowing integer
// literal) aborts the parse with an ErrTemplateParseFail error; a block
// that simply never closes is not an error, it is literal text.
func Parse(raw string) ([]Token, error) {
	var tokens []Token
	pos := 0
	rest := raw

	for {
		next := strings.IndexRune(rest, '{')
		if next < 0 {
			break
		}
		pos += utf8.RuneCountInString(rest[:next])
		rest = rest[next:]

		newRest, out, err := block(pos, rest)
		if err == nil {
			tokens = append(tokens, out.Token)
			pos = out.Span.End
			rest = newRest
			continue
		}

		var malformed *combinator.MalformedError
		if errors.As(err, &malformed) {
			return nil, types.TemplateParseFail(malformed.Pos)
		}

		// A lone '{' that opens no block is literal text.
		_, size := utf8.DecodeRuneInString(rest)
		rest = rest[size:]
		pos++
	}

	return tokens, nil
}
