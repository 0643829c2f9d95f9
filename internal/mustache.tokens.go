package internal

import "fmt"

// Position represents a location in the source template
type Position struct {
	Offset int // Byte offset from start
	Line   int // 1-indexed line number
	Column int // 1-indexed column number
}

// String returns a human-readable position string
func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// Token represents a lexical token produced by the tokenizer.
// Tokens carry no nesting; the compiler rebuilds it.
type Token struct {
	Type        TokenType // The type of token
	Value       string    // Text content, path or identifier
	Indentation string    // Leading whitespace of a standalone partial tag
	Position    Position  // Source position
}

// String returns a human-readable representation of the token
func (t Token) String() string {
	if t.Value == "" {
		return fmt.Sprintf("Token{%s @ %s}", t.Type, t.Position)
	}
	return fmt.Sprintf("Token{%s: %q @ %s}", t.Type, t.Value, t.Position)
}

// IsText returns true if this is a text token
func (t Token) IsText() bool {
	return t.Type == TokenTypeText
}

// IsOpen returns true if the token opens a tag that must be closed
func (t Token) IsOpen() bool {
	switch t.Type {
	case TokenTypeOpenSection, TokenTypeOpenInverted, TokenTypeOpenBlock, TokenTypeOpenParent:
		return true
	default:
		return false
	}
}

// IsClose returns true if this is a close section token
func (t Token) IsClose() bool {
	return t.Type == TokenTypeCloseSection
}

// NewToken creates a new token with the given type, value, and position
func NewToken(tokenType TokenType, value string, pos Position) Token {
	return Token{
		Type:     tokenType,
		Value:    value,
		Position: pos,
	}
}

// NewTextToken creates a text token with the given content
func NewTextToken(content string, pos Position) Token {
	return Token{
		Type:     TokenTypeText,
		Value:    content,
		Position: pos,
	}
}

// NewCommentToken creates a comment token. Delimiter changes are folded
// into comments once they have taken effect.
func NewCommentToken(pos Position) Token {
	return Token{
		Type:     TokenTypeComment,
		Position: pos,
	}
}

// NewPartialToken creates a partial token carrying its indentation
func NewPartialToken(name, indentation string, pos Position) Token {
	return Token{
		Type:        TokenTypePartial,
		Value:       name,
		Indentation: indentation,
		Position:    pos,
	}
}
