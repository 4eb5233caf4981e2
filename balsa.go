// Package balsa is a delightfully simple HTML template engine designed
// for user interfaces such as a CMS where a user edits a template's
// parameters. Templates carry typed, named placeholders with optional
// defaults, and compile once into a reusable artifact.
//
// A template embeds two kinds of blocks in otherwise untouched text:
//
//	<h1>{{ headerText : string, defaultValue: "Welcome!" }}</h1>
//	{{@ brandColor : color = "#ff0000" }}
//
// Parameter blocks are replaced at render time with a typed runtime
// value (or their default); declaration blocks declare compile-time
// constants, inspectable on the compiled template.
//
// # Quick Start
//
//	// Compile once, render many times.
//	tmpl, err := balsa.Compile(`Hello {{ name : string }}!`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out, err := tmpl.Render(params.New().String("name", "World"))
//
//	// Structs can act as parameter sources.
//	type Page struct{ Title string }
//
//	func (p Page) AsParameters() *params.Parameters {
//	    return params.New().String("title", p.Title)
//	}
//
//	out, err := tmpl.RenderStruct(Page{Title: "Home"})
//
// # Concurrency
//
// A Template and its compiled artifact are immutable after Compile
// returns. Any number of Render calls, including concurrent ones, may
// share the same Template; each call reads the raw source and the
// compiled instructions and allocates only its own output.
//
// # More Information
//
//   - Grammar and scanner: github.com/TylerLafayette/balsa/pkg/parser
//   - Combinator engine: github.com/TylerLafayette/balsa/pkg/combinator
//   - Compiler: github.com/TylerLafayette/balsa/pkg/compiler
//   - Renderer: github.com/TylerLafayette/balsa/pkg/renderer
package balsa

import (
	"fmt"
	"os"

	"github.com/TylerLafayette/balsa/pkg/compiler"
	"github.com/TylerLafayette/balsa/pkg/params"
	"github.com/TylerLafayette/balsa/pkg/parser"
	"github.com/TylerLafayette/balsa/pkg/renderer"
)

// Version returns the current version of Balsa.
func Version() string {
	return "v0.1.0-dev"
}

// Template pairs a raw template source with its compiled artifact. It is
// immutable and safe for concurrent use by multiple goroutines.
type Template struct {
	raw      string
	compiled *compiler.CompiledTemplate
}

// Compile parses, validates, and type-checks a raw template.
//
// The returned Template can be rendered any number of times against
// different parameters. Compilation is fail-fast: the first validation
// error is returned as a *types.Error and no partial template is
// produced.
func Compile(raw string) (*Template, error) {
	tokens, err := parser.Parse(raw)
	if err != nil {
		return nil, err
	}
	compiled, err := compiler.Compile(tokens)
	if err != nil {
		return nil, err
	}
	return &Template{raw: raw, compiled: compiled}, nil
}

// CompileFile reads a template from disk and compiles it.
func CompileFile(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading template: %w", err)
	}
	return Compile(string(data))
}

// MustCompile is like Compile but panics if the template cannot be
// compiled. It simplifies safe initialization of global variables.
func MustCompile(raw string) *Template {
	tmpl, err := Compile(raw)
	if err != nil {
		panic(fmt.Sprintf("balsa: Compile(%q): %v", raw, err))
	}
	return tmpl
}

// Render renders the template with the given parameters. Missing
// parameters fall back to their compile-time defaults; a parameter with
// neither fails the render. A failed render returns no partial output
// and leaves the template reusable.
func (t *Template) Render(p *params.Parameters) (string, error) {
	return renderer.Render(t.raw, t.compiled, p)
}

// RenderStruct renders the template with any value that can act as a
// parameter source.
func (t *Template) RenderStruct(source params.AsParameters) (string, error) {
	return t.Render(source.AsParameters())
}

// Raw returns the original template source.
func (t *Template) Raw() string {
	return t.raw
}

// Compiled returns the compiled artifact for inspection: its replacement
// instructions and the global scope of declared constants.
func (t *Template) Compiled() *compiler.CompiledTemplate {
	return t.compiled
}

// Render is a convenience function that compiles and renders a template
// in a single call. For repeated renders of the same template, use
// Compile instead.
func Render(raw string, p *params.Parameters) (string, error) {
	tmpl, err := Compile(raw)
	if err != nil {
		return "", err
	}
	return tmpl.Render(p)
}
