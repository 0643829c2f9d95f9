package internal

import (
	"go.uber.org/zap"
)

// Compiler builds a nested AST from a flat token list
type Compiler struct {
	tokens []Token
	pos    int
	logger *zap.Logger
}

// NewCompiler creates a new compiler for the given token list
func NewCompiler(tokens []Token, logger *zap.Logger) *Compiler {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgCompilerCreated, zap.Int(LogFieldTokens, len(tokens)))
	return &Compiler{
		tokens: tokens,
		pos:    0,
		logger: logger,
	}
}

// Compile produces the AST. Any error discards the partially built tree.
func (c *Compiler) Compile() (AST, error) {
	c.logger.Debug(LogMsgCompilerStart)

	ast, err := c.compile(nil)
	if err != nil {
		return nil, err
	}

	c.logger.Debug(LogMsgCompilerEnd, zap.Int(LogFieldNodes, len(ast)))
	return ast, nil
}

// compile consumes tokens until the close tag of the innermost entry of
// open, or until the end of input when open is empty
func (c *Compiler) compile(open []Token) (AST, error) {
	ast := AST{}

	for c.pos < len(c.tokens) {
		tok := c.tokens[c.pos]
		c.pos++

		switch tok.Type {
		case TokenTypeComment:
			continue

		case TokenTypeText:
			ast = append(ast, NewTextNode(tok.Value))

		case TokenTypeVariable:
			ast = append(ast, NewVariableNode(tok.Value, true))

		case TokenTypeUnescapedVariable:
			ast = append(ast, NewVariableNode(tok.Value, false))

		case TokenTypePartial:
			ast = append(ast, NewPartialNode(tok.Value, tok.Indentation))

		case TokenTypeOpenSection, TokenTypeOpenInverted, TokenTypeOpenBlock, TokenTypeOpenParent:
			children, err := c.compile(append(open[:len(open):len(open)], tok))
			if err != nil {
				return nil, err
			}
			ast = append(ast, wrap(tok, children))

		case TokenTypeCloseSection:
			if len(open) == 0 {
				return nil, newUnopenedCloseError(tok)
			}
			innermost := open[len(open)-1]
			if innermost.Value != tok.Value {
				return nil, newBadSectionIdentifierError(tok, innermost)
			}
			return ast, nil
		}
	}

	if len(open) > 0 {
		return nil, newUnclosedOpenError(open[len(open)-1])
	}
	return ast, nil
}

// wrap builds the node an open token stands for around its compiled body
func wrap(openTok Token, children AST) Node {
	switch openTok.Type {
	case TokenTypeOpenInverted:
		return NewSectionNode(openTok.Value, true, children)
	case TokenTypeOpenBlock:
		return NewBlockNode(openTok.Value, children)
	case TokenTypeOpenParent:
		return NewOverrideNode(openTok.Value, children)
	default:
		return NewSectionNode(openTok.Value, false, children)
	}
}

// Compile tokenizes and compiles source with the given starting delimiters
func Compile(source string, delimiters Delimiters, logger *zap.Logger) (AST, error) {
	tokens, err := NewTokenizerWithDelimiters(source, delimiters, logger).Tokenize()
	if err != nil {
		return nil, err
	}
	return NewCompiler(tokens, logger).Compile()
}
