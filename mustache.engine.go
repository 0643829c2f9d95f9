package mustache

import (
	"github.com/itsatony/go-mustache/internal"
	"go.uber.org/zap"
)

// Engine compiles templates with a fixed configuration. An Engine holds no
// mutable state and is safe for concurrent use.
type Engine struct {
	config   *engineConfig
	renderer internal.RendererConfig
	logger   *zap.Logger
}

// New creates a new Engine with the given options.
func New(opts ...Option) (*Engine, error) {
	config := defaultEngineConfig()
	for _, opt := range opts {
		opt(config)
	}
	if err := config.validate(); err != nil {
		return nil, err
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgEngineCreated,
		zap.String(MetaKeyOpenDelim, config.openDelim),
		zap.String(MetaKeyCloseDelim, config.closeDelim),
		zap.Int(MetaKeyMaxDepth, config.maxDepth))

	return &Engine{
		config:   config,
		renderer: internal.RendererConfig{MaxDepth: config.maxDepth},
		logger:   logger,
	}, nil
}

// MustNew creates a new Engine and panics if there's an error.
func MustNew(opts ...Option) *Engine {
	engine, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return engine
}

// Compile tokenizes and compiles source. The returned Template is
// immutable and can be rendered any number of times, concurrently.
func (e *Engine) Compile(source string) (*Template, error) {
	delimiters := internal.Delimiters{
		Open:  e.config.openDelim,
		Close: e.config.closeDelim,
	}
	ast, err := internal.Compile(source, delimiters, e.logger)
	if err != nil {
		return nil, wrapCompileError(err)
	}

	e.logger.Debug(LogMsgTemplateCompiled, zap.Int(LogFieldSource, len(source)))
	return newTemplate(source, ast, e), nil
}

// MustCompile compiles source and panics on error.
func (e *Engine) MustCompile(source string) *Template {
	tmpl, err := e.Compile(source)
	if err != nil {
		panic(err)
	}
	return tmpl
}

// Render is a convenience method that compiles and renders in one step.
// Errors come only from compilation or data conversion.
func (e *Engine) Render(source string, data any, partials Partials) (string, error) {
	tmpl, err := e.Compile(source)
	if err != nil {
		return "", err
	}
	return tmpl.Render(data, partials)
}

// Logger returns the engine's logger
func (e *Engine) Logger() *zap.Logger {
	return e.logger
}

// newRenderer creates a renderer resolving partials through resolver
func (e *Engine) newRenderer(resolver internal.PartialResolver) *internal.Renderer {
	return internal.NewRenderer(resolver, e.renderer, e.logger)
}

var defaultEngine = MustNew()

// Compile compiles source with the default engine
func Compile(source string) (*Template, error) {
	return defaultEngine.Compile(source)
}

// MustCompile compiles source with the default engine and panics on error
func MustCompile(source string) *Template {
	return defaultEngine.MustCompile(source)
}

// Render compiles and renders source with the default engine
func Render(source string, data any, partials Partials) (string, error) {
	return defaultEngine.Render(source, data, partials)
}
