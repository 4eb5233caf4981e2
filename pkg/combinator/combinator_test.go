package combinator

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TylerLafayette/balsa/pkg/types"
)

func TestChar(t *testing.T) {
	p := Char('c')

	rest, out, err := p(0, "cd")
	require.NoError(t, err)
	assert.Equal(t, 'c', out.Token)
	assert.Equal(t, "d", rest)
	assert.Equal(t, types.Span{Start: 0, End: 1}, out.Span)

	_, _, err = p(0, "dc")
	assert.ErrorIs(t, err, ErrNotMatched)

	_, _, err = p(0, "")
	assert.ErrorIs(t, err, ErrNotMatched)
}

func TestLiteral(t *testing.T) {
	p := Literal("Hello")

	rest, out, err := p(0, "Hello world")
	require.NoError(t, err)
	assert.Equal(t, "Hello", out.Token)
	assert.Equal(t, " world", rest)
	assert.Equal(t, types.Span{Start: 0, End: 5}, out.Span)

	_, _, err = p(0, "Hell")
	assert.ErrorIs(t, err, ErrNotMatched)
}

func TestTakeWhile(t *testing.T) {
	isLower := func(r rune) bool { return r >= 'a' && r <= 'z' }
	p := TakeWhile(isLower)

	rest, out, err := p(3, "helloWorld")
	require.NoError(t, err)
	assert.Equal(t, "hello", out.Token)
	assert.Equal(t, "World", rest)
	assert.Equal(t, types.Span{Start: 3, End: 8}, out.Span)

	// Zero qualifying characters is a non-match, not an empty token.
	_, _, err = p(0, "ABC")
	assert.ErrorIs(t, err, ErrNotMatched)
}

func TestTakeUntil(t *testing.T) {
	p := TakeUntil('"')

	rest, out, err := p(0, `Hello! @#$123456789"tail`)
	require.NoError(t, err)
	assert.Equal(t, "Hello! @#$123456789", out.Token)
	assert.Equal(t, `"tail`, rest)

	_, _, err = p(0, `"starts with terminator`)
	assert.ErrorIs(t, err, ErrNotMatched)
}

func TestMapKeepsSpan(t *testing.T) {
	p := Map(Literal("ab"), func(s string) int { return len(s) })

	rest, out, err := p(2, "abc")
	require.NoError(t, err)
	assert.Equal(t, 2, out.Token)
	assert.Equal(t, "c", rest)
	assert.Equal(t, types.Span{Start: 2, End: 4}, out.Span)
}

func TestMapResultMalformed(t *testing.T) {
	digits := TakeWhile(func(r rune) bool { return r >= '0' && r <= '9' })
	p := MapResult(digits, func(s string) (int64, error) {
		return strconv.ParseInt(s, 10, 64)
	})

	_, out, err := p(0, "42 rest")
	require.NoError(t, err)
	assert.Equal(t, int64(42), out.Token)

	// Overflow: the shape matched but the content is invalid.
	_, _, err = p(5, "99999999999999999999")
	var malformed *MalformedError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, 5, malformed.Pos)
}

func TestChainMergesSpans(t *testing.T) {
	p := Chain(Literal("foo"), Literal("bar"), func(l, r string) string {
		return l + r
	})

	rest, out, err := p(0, "foobar!")
	require.NoError(t, err)
	assert.Equal(t, "foobar", out.Token)
	assert.Equal(t, "!", rest)
	assert.Equal(t, types.Span{Start: 0, End: 6}, out.Span)

	// The right side starts at the left side's end position.
	_, _, err = p(0, "foofoo")
	assert.ErrorIs(t, err, ErrNotMatched)
}

func TestOr(t *testing.T) {
	p := Or(Literal("left"), Literal("right"))

	_, out, err := p(0, "leftover")
	require.NoError(t, err)
	assert.Equal(t, "left", out.Token)

	_, out, err = p(0, "rightmost")
	require.NoError(t, err)
	assert.Equal(t, "right", out.Token)

	_, _, err = p(0, "neither")
	assert.ErrorIs(t, err, ErrNotMatched)
}

func TestOrPrecedence(t *testing.T) {
	// Earlier alternatives win when both could match.
	p := Or(Literal("in"), Literal("int"))

	rest, out, err := p(0, "int")
	require.NoError(t, err)
	assert.Equal(t, "in", out.Token)
	assert.Equal(t, "t", rest)
}

func TestOrDoesNotFallBackOnMalformed(t *testing.T) {
	malformed := MapResult(Literal("x"), func(string) (string, error) {
		return "", errors.New("broken content")
	})
	p := Or(malformed, Literal("x"))

	_, _, err := p(0, "x")
	var me *MalformedError
	require.ErrorAs(t, err, &me, "malformed input must short-circuit alternation")
}

func TestOptional(t *testing.T) {
	p := Optional(Literal("maybe"))

	rest, out, err := p(0, "maybe more")
	require.NoError(t, err)
	assert.True(t, out.Token.Valid)
	assert.Equal(t, "maybe", out.Token.Token)
	assert.Equal(t, " more", rest)

	// Non-match becomes a zero-width success at the current position.
	rest, out, err = p(7, "nothing")
	require.NoError(t, err)
	assert.False(t, out.Token.Valid)
	assert.Equal(t, "nothing", rest)
	assert.Equal(t, types.Span{Start: 7, End: 7}, out.Span)
}

func TestOptionalPropagatesMalformed(t *testing.T) {
	malformed := MapResult(Literal("x"), func(string) (string, error) {
		return "", errors.New("broken content")
	})
	p := Optional(malformed)

	_, _, err := p(0, "x")
	var me *MalformedError
	require.ErrorAs(t, err, &me)
}

func TestMany(t *testing.T) {
	p := Many(Char('a'))

	rest, out, err := p(0, "aaab")
	require.NoError(t, err)
	assert.Equal(t, []rune{'a', 'a', 'a'}, out.Token)
	assert.Equal(t, "b", rest)
	assert.Equal(t, types.Span{Start: 0, End: 3}, out.Span)

	// Zero matches is a clean empty result.
	rest, out, err = p(0, "bbb")
	require.NoError(t, err)
	assert.Empty(t, out.Token)
	assert.Equal(t, "bbb", rest)
}

func TestManyAbortsOnMalformed(t *testing.T) {
	item := MapResult(Char('a'), func(rune) (rune, error) {
		return 0, errors.New("broken content")
	})
	p := Many(item)

	_, _, err := p(0, "aaa")
	var me *MalformedError
	require.ErrorAs(t, err, &me)
}

func TestOneToMany(t *testing.T) {
	p := OneToMany(Char('a'))

	_, out, err := p(0, "aa")
	require.NoError(t, err)
	assert.Len(t, out.Token, 2)

	_, _, err = p(0, "b")
	assert.ErrorIs(t, err, ErrNotMatched)
}

func TestDelimitedList(t *testing.T) {
	stringLiteral := Middle(Char('"'), TakeUntil('"'), Char('"'))
	spaces := Optional(TakeWhile(func(r rune) bool { return r == ' ' || r == '\t' }))
	item := Middle(spaces, stringLiteral, spaces)
	delimiter := Middle(spaces, Char(','), spaces)

	p := Middle(Char('['), DelimitedList(item, delimiter), Char(']'))

	_, out, err := p(0, `["h", "hello", "worlddd"]`)
	require.NoError(t, err)
	assert.Equal(t, []string{"h", "hello", "worlddd"}, out.Token)

	// An empty list is a valid result.
	_, out, err = p(0, "[]")
	require.NoError(t, err)
	assert.Empty(t, out.Token)

	// A dangling delimiter leaves input the closing parser rejects.
	_, _, err = p(0, `["hello" "world",, "goodbye"]`)
	assert.Error(t, err)
}

func TestKeySepValue(t *testing.T) {
	name := TakeWhile(func(r rune) bool {
		return r == '-' || r == '_' ||
			(r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
	})
	spaces := Optional(TakeWhile(func(r rune) bool { return r == ' ' }))
	delimiter := Middle(spaces, Char(':'), spaces)
	stringLiteral := Middle(Char('"'), TakeUntil('"'), Char('"'))

	p := KeySepValue(name, delimiter, stringLiteral)

	rest, out, err := p(0, `helloWorld: "value"`)
	require.NoError(t, err)
	assert.Equal(t, "helloWorld", out.Token.Key)
	assert.Equal(t, "value", out.Token.Value)
	assert.Empty(t, rest)

	_, _, err = p(0, `'elloWorld: "value"`)
	assert.ErrorIs(t, err, ErrNotMatched)
}
