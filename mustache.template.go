package mustache

import (
	"github.com/itsatony/go-mustache/internal"
)

// Template represents a compiled template that can be rendered multiple
// times. A Template is immutable and safe for concurrent rendering.
type Template struct {
	source string
	ast    internal.AST
	engine *Engine
}

// newTemplate creates a new template (internal use).
func newTemplate(source string, ast internal.AST, engine *Engine) *Template {
	return &Template{
		source: source,
		ast:    ast,
		engine: engine,
	}
}

// Render renders the template against data, converted with ValueOf.
// Partials and parents are looked up by name in partials at render time.
// The only possible error is a data conversion error.
func (t *Template) Render(data any, partials Partials) (string, error) {
	value, err := ValueOf(data)
	if err != nil {
		return "", err
	}
	return t.RenderValue(value, partials), nil
}

// RenderValue renders the template against an already built Value.
// Missing data, partials and parents render as empty text; it never fails.
func (t *Template) RenderValue(data Value, partials Partials) string {
	return t.render(data, partials)
}

// render renders against any partial source
func (t *Template) render(data Value, lookup partialLookup) string {
	return t.engine.newRenderer(partialResolver{lookup: lookup}).Render(t.ast, data)
}

// Source returns the original template source string.
func (t *Template) Source() string {
	return t.source
}

// String returns a debug dump of the compiled tree
func (t *Template) String() string {
	return t.ast.String()
}

// Partials maps names to compiled templates for partial ({{>name}}) and
// parent ({{<name}}) tags.
type Partials map[string]*Template

// lookupPartial implements partialLookup
func (p Partials) lookupPartial(name string) (*Template, bool) {
	tmpl, ok := p[name]
	return tmpl, ok && tmpl != nil
}

// partialLookup is a named source of compiled templates
type partialLookup interface {
	lookupPartial(name string) (*Template, bool)
}

// partialResolver adapts a partialLookup to the renderer
type partialResolver struct {
	lookup partialLookup
}

// ResolvePartial implements internal.PartialResolver
func (r partialResolver) ResolvePartial(name string) (internal.AST, bool) {
	if r.lookup == nil {
		return nil, false
	}
	tmpl, ok := r.lookup.lookupPartial(name)
	if !ok {
		return nil, false
	}
	return tmpl.ast, true
}
