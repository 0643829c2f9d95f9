package mustache

import (
	"errors"
	"strconv"

	"github.com/itsatony/go-cuserr"
	"github.com/itsatony/go-mustache/internal"
)

// Position represents a location in the source template
type Position = internal.Position

// SyntaxError is raised when a tag is never closed or a delimiter change
// is malformed. Errors returned by Compile wrap it; use errors.As to get
// at the reason and position.
type SyntaxError = internal.SyntaxError

// CompilerError is raised when section, block or parent tags are not
// correctly paired.
type CompilerError = internal.CompilerError

// SyntaxReason classifies a SyntaxError
type SyntaxReason = internal.SyntaxReason

// CompilerReason classifies a CompilerError
type CompilerReason = internal.CompilerReason

// Syntax and compiler error reasons
const (
	ReasonMissingEndOfToken    = internal.ReasonMissingEndOfToken
	ReasonInvalidDelimiters    = internal.ReasonInvalidDelimiters
	ReasonExpectingToken       = internal.ReasonExpectingToken
	ReasonBadSectionIdentifier = internal.ReasonBadSectionIdentifier
)

// NewSyntaxError wraps a tokenizer failure with its position
func NewSyntaxError(cause *SyntaxError) error {
	return cuserr.WrapStdError(cause, ErrCodeSyntax, ErrMsgSyntax).
		WithMetadata(MetaKeyReason, cause.Reason.String()).
		WithMetadata(MetaKeyLine, strconv.Itoa(cause.Position.Line)).
		WithMetadata(MetaKeyColumn, strconv.Itoa(cause.Position.Column)).
		WithMetadata(MetaKeyOffset, strconv.Itoa(cause.Position.Offset))
}

// NewCompilerError wraps a tag pairing failure with the offending
// identifiers and position
func NewCompilerError(cause *CompilerError) error {
	return cuserr.WrapStdError(cause, ErrCodeCompile, ErrMsgCompile).
		WithMetadata(MetaKeyReason, cause.Reason.String()).
		WithMetadata(MetaKeyExpected, cause.Expected).
		WithMetadata(MetaKeyActual, cause.Got).
		WithMetadata(MetaKeyLine, strconv.Itoa(cause.Position.Line)).
		WithMetadata(MetaKeyColumn, strconv.Itoa(cause.Position.Column)).
		WithMetadata(MetaKeyOffset, strconv.Itoa(cause.Position.Offset))
}

// wrapCompileError converts an error from the internal pipeline into the
// public error form
func wrapCompileError(err error) error {
	var syntaxErr *SyntaxError
	if errors.As(err, &syntaxErr) {
		return NewSyntaxError(syntaxErr)
	}
	var compilerErr *CompilerError
	if errors.As(err, &compilerErr) {
		return NewCompilerError(compilerErr)
	}
	return cuserr.WrapStdError(err, ErrCodeCompile, ErrMsgCompile)
}

// NewTemplateCompileError reports which named template failed to compile
func NewTemplateCompileError(name string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeCompile, ErrMsgTemplateCompile).
		WithMetadata(MetaKeyTemplateName, name)
}

// NewDataError creates an error for data that has no template value form
func NewDataError(msg string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeData, msg)
}

// NewConvertError wraps a failed ValueOf conversion, recording where in the
// data the unsupported value sits
func NewConvertError(cause error) error {
	err := cuserr.WrapStdError(cause, ErrCodeData, ErrMsgUnsupportedData)
	var convertErr *internal.ConvertError
	if errors.As(cause, &convertErr) {
		err = err.WithMetadata(MetaKeyPath, convertErr.Path).
			WithMetadata(MetaKeyValueType, convertErr.Type)
	}
	return err
}

// NewTemplateNotFoundError creates a template not found error
func NewTemplateNotFoundError(name string) error {
	return cuserr.NewNotFoundError(MetaKeyTemplateName, ErrMsgTemplateNotFound).
		WithMetadata(MetaKeyTemplateName, name).
		WithMetadata(MetaKeyKind, ErrKindTemplateNotFound)
}

// IsTemplateNotFoundError reports whether err is a template not found error
func IsTemplateNotFoundError(err error) bool {
	var customErr *cuserr.CustomError
	if !errors.As(err, &customErr) {
		return false
	}
	kind, ok := customErr.GetMetadata(MetaKeyKind)
	return ok && kind == ErrKindTemplateNotFound
}

// NewEmptyTemplateNameError creates an error for an empty template name
func NewEmptyTemplateNameError() error {
	return cuserr.NewValidationError(ErrCodeCompile, ErrMsgEmptyTemplateName)
}

// NewNilTemplateError creates an error for adding a nil template
func NewNilTemplateError(name string) error {
	return cuserr.NewValidationError(ErrCodeCompile, ErrMsgNilTemplate).
		WithMetadata(MetaKeyTemplateName, name)
}

// NewInvalidDelimitersError creates an error for an unusable delimiter pair
func NewInvalidDelimitersError(msg, openDelim, closeDelim string) error {
	return cuserr.NewValidationError(ErrCodeCompile, msg).
		WithMetadata(MetaKeyOpenDelim, openDelim).
		WithMetadata(MetaKeyCloseDelim, closeDelim)
}

// NewInvalidMaxDepthError creates an error for a negative depth limit
func NewInvalidMaxDepthError(depth int) error {
	return cuserr.NewValidationError(ErrCodeCompile, ErrMsgNegativeMaxDepth).
		WithMetadata(MetaKeyMaxDepth, strconv.Itoa(depth))
}

// IsSyntaxError reports whether err carries a SyntaxError
func IsSyntaxError(err error) bool {
	var syntaxErr *SyntaxError
	return errors.As(err, &syntaxErr)
}

// IsCompilerError reports whether err carries a CompilerError
func IsCompilerError(err error) bool {
	var compilerErr *CompilerError
	return errors.As(err, &compilerErr)
}
