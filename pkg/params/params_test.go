package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TylerLafayette/balsa/pkg/types"
)

func TestParameters(t *testing.T) {
	p := New().
		String("hello", "world").
		Color("red", "#ff0000").
		Int("currentYear", 2022).
		Float("floatyFloat", 20.23)

	value, ok := p.Get("hello")
	require.True(t, ok)
	assert.Equal(t, types.StringValue("world"), value)

	value, ok = p.Get("red")
	require.True(t, ok)
	assert.Equal(t, types.ColorValue("#ff0000"), value)

	value, ok = p.Get("currentYear")
	require.True(t, ok)
	assert.Equal(t, types.IntegerValue(2022), value)

	value, ok = p.Get("floatyFloat")
	require.True(t, ok)
	assert.Equal(t, types.FloatValue(20.23), value)

	_, ok = p.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, 4, p.Len())
}

func TestParametersImmutable(t *testing.T) {
	base := New().String("a", "1")
	extended := base.String("b", "2")

	_, ok := base.Get("b")
	assert.False(t, ok, "appending must not mutate the original list")
	assert.Equal(t, 1, base.Len())
	assert.Equal(t, 2, extended.Len())
}

func TestParametersNilSafe(t *testing.T) {
	var p *Parameters
	_, ok := p.Get("anything")
	assert.False(t, ok)
	assert.Zero(t, p.Len())
}

type pageParams struct {
	headerText string
	red        string
	smallInt   int32
}

func (p pageParams) AsParameters() *Parameters {
	return New().
		String("headerText", p.headerText).
		Color("red", p.red).
		Int("smallInt", int64(p.smallInt))
}

func TestAsParameters(t *testing.T) {
	source := pageParams{headerText: "Hello world!", red: "#ff0000", smallInt: 123}
	p := source.AsParameters()

	value, ok := p.Get("headerText")
	require.True(t, ok)
	assert.Equal(t, types.StringValue("Hello world!"), value)

	value, ok = p.Get("red")
	require.True(t, ok)
	assert.Equal(t, types.ColorValue("#ff0000"), value)

	value, ok = p.Get("smallInt")
	require.True(t, ok)
	assert.Equal(t, types.IntegerValue(123), value)
}
