package internal

import (
	"strings"

	"go.uber.org/zap"
)

// PartialResolver looks compiled templates up by name at render time
type PartialResolver interface {
	ResolvePartial(name string) (AST, bool)
}

// PartialMap is a PartialResolver over a plain map
type PartialMap map[string]AST

// ResolvePartial returns the AST registered under name
func (m PartialMap) ResolvePartial(name string) (AST, bool) {
	ast, ok := m[name]
	return ast, ok
}

// RendererConfig holds renderer configuration options.
type RendererConfig struct {
	MaxDepth int // Maximum partial/parent expansion depth (0 = unlimited)
}

// DefaultRendererConfig returns the default renderer configuration.
func DefaultRendererConfig() RendererConfig {
	return RendererConfig{
		MaxDepth: DefaultMaxDepth,
	}
}

// Renderer walks an AST against a Value and produces output. Rendering
// never fails: unresolved paths, missing partials and missing parents all
// render as nothing. A Renderer holds no per-render state and may be used
// from multiple goroutines.
type Renderer struct {
	partials PartialResolver
	config   RendererConfig
	logger   *zap.Logger
}

// NewRenderer creates a renderer resolving partials through partials
func NewRenderer(partials PartialResolver, config RendererConfig, logger *zap.Logger) *Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if partials == nil {
		partials = PartialMap{}
	}
	logger.Debug(LogMsgRendererCreated)
	return &Renderer{
		partials: partials,
		config:   config,
		logger:   logger,
	}
}

// Render renders ast with data as the only entry of the context stack
func (r *Renderer) Render(ast AST, data Value) string {
	r.logger.Debug(LogMsgRenderStart, zap.Int(LogFieldNodes, len(ast)))

	out := &output{lineStart: true}
	r.renderNodes(out, ast, newScope(data), 0)

	result := out.sb.String()
	r.logger.Debug(LogMsgRenderEnd, zap.Int(LogFieldOutput, len(result)))
	return result
}

func (r *Renderer) renderNodes(out *output, nodes AST, sc scope, depth int) {
	for _, node := range nodes {
		r.renderNode(out, node, sc, depth)
	}
}

func (r *Renderer) renderNode(out *output, node Node, sc scope, depth int) {
	switch n := node.(type) {
	case *TextNode:
		out.writeText(n.Content)

	case *VariableNode:
		value, ok := sc.lookup(n.Path)
		if !ok {
			r.logger.Debug(LogMsgValueUnresolved, zap.String(LogFieldPath, n.Path))
			return
		}
		s, ok := value.Stringify()
		if !ok {
			return
		}
		if n.Escaped {
			s = EscapeHTML(s)
		}
		out.writeData(s)

	case *SectionNode:
		r.renderSection(out, n, sc, depth)

	case *PartialNode:
		if !r.withinDepth(depth, LogFieldPartial, n.Name) {
			return
		}
		partial, ok := r.partials.ResolvePartial(n.Name)
		if !ok {
			r.logger.Debug(LogMsgPartialMissing, zap.String(LogFieldPartial, n.Name))
			return
		}
		outer := out.indent
		out.indent += n.Indentation
		r.renderNodes(out, partial, sc, depth+1)
		out.indent = outer

	case *BlockNode:
		body := r.resolveBlock(n, sc.overrides)
		r.renderNodes(out, body, sc, depth)

	case *OverrideNode:
		if !r.withinDepth(depth, LogFieldParent, n.Name) {
			return
		}
		parent, ok := r.partials.ResolvePartial(n.Name)
		if !ok {
			r.logger.Debug(LogMsgParentMissing, zap.String(LogFieldParent, n.Name))
			return
		}
		r.renderNodes(out, parent, sc.withOverride(n.Name, n.Children), depth+1)
	}
}

func (r *Renderer) renderSection(out *output, n *SectionNode, sc scope, depth int) {
	value, found := sc.lookup(n.Path)
	truthy := found && value.Truthy()

	if n.Inverted {
		if !truthy {
			r.renderNodes(out, n.Children, sc, depth)
		}
		return
	}
	if !truthy {
		return
	}

	if value.Kind() == KindArray {
		for _, item := range value.Items() {
			r.renderNodes(out, n.Children, sc.withContext(item), depth)
		}
		return
	}
	r.renderNodes(out, n.Children, sc.withContext(value), depth)
}

// withinDepth reports whether one more expansion is allowed at depth
func (r *Renderer) withinDepth(depth int, field, name string) bool {
	if r.config.MaxDepth > 0 && depth >= r.config.MaxDepth {
		r.logger.Debug(LogMsgDepthExceeded, zap.String(field, name), zap.Int(LogFieldDepth, depth))
		return false
	}
	return true
}

// output accumulates rendered text. indent is prefixed to every non-empty
// line written by template text while a standalone partial is expanded;
// text coming from data is written as is.
type output struct {
	sb        strings.Builder
	indent    string
	lineStart bool
}

func (o *output) writeText(s string) {
	for i, line := range strings.Split(s, StrNewline) {
		if i > 0 {
			o.sb.WriteString(StrNewline)
			o.lineStart = true
		}
		o.writeData(line)
	}
}

func (o *output) writeData(s string) {
	if s == "" {
		return
	}
	if o.lineStart && o.indent != "" {
		o.sb.WriteString(o.indent)
	}
	o.sb.WriteString(s)
	o.lineStart = strings.HasSuffix(s, StrNewline)
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// EscapeHTML escapes &, <, > and " for interpolation into HTML
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}
