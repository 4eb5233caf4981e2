// Package params provides the runtime parameter mapping supplied to each
// render call.
package params

import "github.com/TylerLafayette/balsa/pkg/types"

// Parameters is an immutable name → value mapping. Every appender returns
// a new Parameters and never mutates the receiver, so a Parameters value
// can be shared across concurrent renders without coordination.
type Parameters struct {
	values map[string]types.Value
}

// New creates an empty parameter list.
func New() *Parameters {
	return &Parameters{values: map[string]types.Value{}}
}

// String appends a string value and returns the extended list.
func (p *Parameters) String(key, value string) *Parameters {
	return p.with(key, types.StringValue(value))
}

// Color appends a color value (a hex code, rgb()/hsl() value, or color
// name) and returns the extended list.
func (p *Parameters) Color(key, value string) *Parameters {
	return p.with(key, types.ColorValue(value))
}

// Int appends an integer value and returns the extended list.
func (p *Parameters) Int(key string, value int64) *Parameters {
	return p.with(key, types.IntegerValue(value))
}

// Float appends a float value and returns the extended list.
func (p *Parameters) Float(key string, value float64) *Parameters {
	return p.with(key, types.FloatValue(value))
}

// Set appends an already constructed value and returns the extended list.
func (p *Parameters) Set(key string, value types.Value) *Parameters {
	return p.with(key, value)
}

func (p *Parameters) with(key string, value types.Value) *Parameters {
	values := make(map[string]types.Value, len(p.values)+1)
	for k, v := range p.values {
		values[k] = v
	}
	values[key] = value
	return &Parameters{values: values}
}

// Get looks up a single value by name. A nil Parameters behaves as an
// empty list.
func (p *Parameters) Get(key string) (types.Value, bool) {
	if p == nil {
		return types.Value{}, false
	}
	value, ok := p.values[key]
	return value, ok
}

// Len returns the number of parameters in the list.
func (p *Parameters) Len() int {
	if p == nil {
		return 0
	}
	return len(p.values)
}

// AsParameters converts an arbitrary host value into a parameter list for
// rendering. Implementations must be total: there is no failure case.
type AsParameters interface {
	AsParameters() *Parameters
}
