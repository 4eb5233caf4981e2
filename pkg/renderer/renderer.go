// Package renderer replays a compiled template's replacement
// instructions against the original source text to produce final output.
package renderer

import (
	"strings"

	"github.com/TylerLafayette/balsa/pkg/compiler"
	"github.com/TylerLafayette/balsa/pkg/params"
	"github.com/TylerLafayette/balsa/pkg/types"
)

// Render splices runtime values into the raw template text according to
// the compiled template's instructions.
//
// raw must be the exact text the template was compiled from; instruction
// spans index into it by character offset. For each instruction the text
// between the cursor and the span start is copied verbatim, the span's
// own source text is dropped, and the resolved value (runtime parameter,
// else compile-time default) is cast to the declared type and appended.
// After the last instruction the remaining text is copied verbatim.
//
// Render is a pure function of its inputs: nothing is mutated, so one
// CompiledTemplate may be rendered repeatedly and concurrently. A failed
// render returns no partial output.
func Render(raw string, ct *compiler.CompiledTemplate, parameters *params.Parameters) (string, error) {
	source := []rune(raw)
	var out strings.Builder
	cursor := 0

	for _, instruction := range ct.Instructions() {
		if cursor < instruction.Range.Start {
			out.WriteString(string(source[cursor:instruction.Range.Start]))
		}
		cursor = instruction.Range.End

		if instruction.ReplaceWith != compiler.ReplaceWithParameter {
			continue
		}

		text, err := resolve(instruction.Parameter, parameters)
		if err != nil {
			return "", err
		}
		out.WriteString(text)
	}

	if cursor < len(source) {
		out.WriteString(string(source[cursor:]))
	}

	return out.String(), nil
}

// resolve produces the text for one parameter instruction: the runtime
// value if supplied, else the compile-time default, cast to the declared
// type.
func resolve(description compiler.ParameterDescription, parameters *params.Parameters) (string, error) {
	value, ok := parameters.Get(description.Name)
	if !ok {
		if description.Default == nil {
			return "", types.MissingParameter(description.Name)
		}
		value = *description.Default
	}

	cast, err := value.Cast(description.Type)
	if err != nil {
		return "", types.InvalidParameterType(description.Name, value, value.Type(), description.Type)
	}

	return cast.Text(), nil
}
