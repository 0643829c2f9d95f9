package mustache

import (
	"strings"

	"go.uber.org/zap"
)

// Option is a functional option for configuring the Engine.
type Option func(*engineConfig)

// delimiterForbidden lists characters a delimiter cannot contain
const delimiterForbidden = " \t\r\n="

// engineConfig holds the internal configuration for an Engine.
type engineConfig struct {
	openDelim  string
	closeDelim string
	maxDepth   int
	logger     *zap.Logger
}

// defaultEngineConfig returns the default engine configuration.
func defaultEngineConfig() *engineConfig {
	return &engineConfig{
		openDelim:  DefaultOpenDelim,
		closeDelim: DefaultCloseDelim,
		maxDepth:   DefaultMaxDepth,
		logger:     nil,
	}
}

// WithDelimiters sets the delimiters templates start with. A template can
// still switch delimiters with a {{=<% %>=}} tag.
// Default: "{{" and "}}"
func WithDelimiters(openDelim, closeDelim string) Option {
	return func(c *engineConfig) {
		c.openDelim = openDelim
		c.closeDelim = closeDelim
	}
}

// WithMaxDepth sets the maximum nesting of partial and parent expansion.
// Expansion past the limit renders nothing. Use 0 for unlimited depth.
// Default: 256
func WithMaxDepth(depth int) Option {
	return func(c *engineConfig) {
		c.maxDepth = depth
	}
}

// WithLogger sets the logger for the engine.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *engineConfig) {
		c.logger = logger
	}
}

// validate checks the configuration after all options are applied
func (c *engineConfig) validate() error {
	if c.openDelim == "" || c.closeDelim == "" {
		return NewInvalidDelimitersError(ErrMsgInvalidDelimiters, c.openDelim, c.closeDelim)
	}
	if strings.ContainsAny(c.openDelim, delimiterForbidden) || strings.ContainsAny(c.closeDelim, delimiterForbidden) {
		return NewInvalidDelimitersError(ErrMsgDelimitersSpaced, c.openDelim, c.closeDelim)
	}
	if c.maxDepth < 0 {
		return NewInvalidMaxDepthError(c.maxDepth)
	}
	return nil
}
