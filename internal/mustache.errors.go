package internal

import "fmt"

// SyntaxReason classifies a tokenizer failure
type SyntaxReason int

// Syntax error reasons
const (
	ReasonMissingEndOfToken SyntaxReason = iota
	ReasonInvalidDelimiters
)

// String returns the reason's message
func (r SyntaxReason) String() string {
	switch r {
	case ReasonInvalidDelimiters:
		return ErrMsgInvalidDelimiters
	default:
		return ErrMsgMissingEndOfToken
	}
}

// SyntaxError is raised by the tokenizer when a tag cannot be read.
// Position is the reader's cursor at the time of failure.
type SyntaxError struct {
	Reason   SyntaxReason
	Position Position
}

func (e *SyntaxError) Error() string {
	return e.Reason.String() + " at " + e.Position.String()
}

// Line returns the line the reader had reached
func (e *SyntaxError) Line() int {
	return e.Position.Line
}

// Column returns the column the reader had reached
func (e *SyntaxError) Column() int {
	return e.Position.Column
}

// CompilerReason classifies a compiler failure
type CompilerReason int

// Compiler error reasons
const (
	ReasonExpectingToken CompilerReason = iota
	ReasonBadSectionIdentifier
)

// String returns the reason's message
func (r CompilerReason) String() string {
	switch r {
	case ReasonBadSectionIdentifier:
		return ErrMsgBadSectionIdentifier
	default:
		return ErrMsgExpectingToken
	}
}

// CompilerError is raised when tags are not correctly paired.
//
// For ReasonExpectingToken, Expected names the token kind that was
// missing and Got the identifier of the offending tag. For
// ReasonBadSectionIdentifier, Got is the close tag's identifier and
// Expected the identifier of the innermost open tag.
type CompilerError struct {
	Reason   CompilerReason
	Got      string
	Expected string
	Position Position
}

func (e *CompilerError) Error() string {
	switch e.Reason {
	case ReasonBadSectionIdentifier:
		return fmt.Sprintf("%s: got %q, expected %q at %s", e.Reason, e.Got, e.Expected, e.Position)
	default:
		return fmt.Sprintf("%s %s for %q at %s", e.Reason, e.Expected, e.Got, e.Position)
	}
}

func newSyntaxError(reason SyntaxReason, pos Position) *SyntaxError {
	return &SyntaxError{
		Reason:   reason,
		Position: pos,
	}
}

// newUnopenedCloseError reports a close tag with no open tag active
func newUnopenedCloseError(closeTok Token) *CompilerError {
	return &CompilerError{
		Reason:   ReasonExpectingToken,
		Got:      closeTok.Value,
		Expected: string(TokenTypeOpenSection),
		Position: closeTok.Position,
	}
}

// newUnclosedOpenError reports an open tag still active at end of input
func newUnclosedOpenError(openTok Token) *CompilerError {
	return &CompilerError{
		Reason:   ReasonExpectingToken,
		Got:      openTok.Value,
		Expected: string(TokenTypeCloseSection),
		Position: openTok.Position,
	}
}

func newBadSectionIdentifierError(closeTok, openTok Token) *CompilerError {
	return &CompilerError{
		Reason:   ReasonBadSectionIdentifier,
		Got:      closeTok.Value,
		Expected: openTok.Value,
		Position: closeTok.Position,
	}
}
