package internal

// TokenType represents the type of a lexical token
type TokenType string

// Token type constants
const (
	TokenTypeText              TokenType = "TEXT"
	TokenTypeVariable          TokenType = "VARIABLE"
	TokenTypeUnescapedVariable TokenType = "UNESCAPED_VARIABLE"
	TokenTypeComment           TokenType = "COMMENT"
	TokenTypeOpenSection       TokenType = "OPEN_SECTION"
	TokenTypeOpenInverted      TokenType = "OPEN_INVERTED_SECTION"
	TokenTypeCloseSection      TokenType = "CLOSE_SECTION"
	TokenTypeOpenBlock         TokenType = "OPEN_BLOCK"
	TokenTypeOpenParent        TokenType = "OPEN_PARENT"
	TokenTypePartial           TokenType = "PARTIAL"
)

// NodeType identifies AST node types
type NodeType int

// Node type constants
const (
	NodeTypeText NodeType = iota
	NodeTypeVariable
	NodeTypeSection
	NodeTypePartial
	NodeTypeBlock
	NodeTypeOverride
)

// Node type string names for debugging
const (
	NodeTypeNameText     = "TEXT"
	NodeTypeNameVariable = "VARIABLE"
	NodeTypeNameSection  = "SECTION"
	NodeTypeNamePartial  = "PARTIAL"
	NodeTypeNameBlock    = "BLOCK"
	NodeTypeNameOverride = "OVERRIDE"
	NodeTypeNameUnknown  = "UNKNOWN"
)

// String returns the string representation of the node type
func (n NodeType) String() string {
	switch n {
	case NodeTypeText:
		return NodeTypeNameText
	case NodeTypeVariable:
		return NodeTypeNameVariable
	case NodeTypeSection:
		return NodeTypeNameSection
	case NodeTypePartial:
		return NodeTypeNamePartial
	case NodeTypeBlock:
		return NodeTypeNameBlock
	case NodeTypeOverride:
		return NodeTypeNameOverride
	default:
		return NodeTypeNameUnknown
	}
}

// Tag discriminator characters (first non-whitespace character inside a tag)
const (
	CharDelimiter = '='
	CharComment   = '!'
	CharSection   = '#'
	CharInverted  = '^'
	CharClose     = '/'
	CharPartial   = '>'
	CharBlock     = '$'
	CharParent    = '<'
	CharTriple    = '{'
	CharAmpersand = '&'
)

// Character sets used by the reader and tokenizer
const (
	CharSetWhitespace        = " \t"
	CharSetNewline           = "\n\r"
	CharSetWhitespaceNewline = " \t\n\r"
	StrNewline               = "\n"
	StrCRLF                  = "\r\n"
	StrDot                   = "."
	StrTripleClose           = "}"
)

// Default delimiters
const (
	StrOpenDelim  = "{{"
	StrCloseDelim = "}}"
)

// Rendering limits
const (
	// DefaultMaxDepth bounds nested partial and parent expansion
	DefaultMaxDepth = 256
)

// Display truncation for String() methods
const (
	MaxStringDisplayLength = 40
	TruncatedStringLength  = 37
	TruncationSuffix       = "..."
)

// Log message constants
const (
	LogMsgTokenizerCreated   = "tokenizer created"
	LogMsgTokenizerStart     = "starting tokenization"
	LogMsgTokenizerEnd       = "tokenization complete"
	LogMsgDelimiterChange    = "delimiters changed"
	LogMsgCompilerCreated    = "compiler created"
	LogMsgCompilerStart      = "starting compilation"
	LogMsgCompilerEnd        = "compilation complete"
	LogMsgRendererCreated    = "renderer created"
	LogMsgRenderStart        = "starting render"
	LogMsgRenderEnd          = "render complete"
	LogMsgPartialMissing     = "partial not found, rendering nothing"
	LogMsgParentMissing      = "parent template not found, rendering nothing"
	LogMsgDepthExceeded      = "maximum expansion depth reached, rendering nothing"
	LogMsgBlockOverridden    = "block resolved from override"
	LogMsgValueUnresolved    = "path did not resolve"
	LogMsgStandaloneStripped = "standalone tag stripped"
)

// Log field names
const (
	LogFieldSource     = "source_length"
	LogFieldTokens     = "token_count"
	LogFieldNodes      = "node_count"
	LogFieldOutput     = "output_length"
	LogFieldPartial    = "partial"
	LogFieldBlock      = "block"
	LogFieldParent     = "parent"
	LogFieldPath       = "path"
	LogFieldDepth      = "depth"
	LogFieldLine       = "line"
	LogFieldColumn     = "column"
	LogFieldOpenDelim  = "open_delimiter"
	LogFieldCloseDelim = "close_delimiter"
	LogFieldTokenType  = "token_type"
)

// Error message constants
const (
	ErrMsgMissingEndOfToken     = "missing end of token"
	ErrMsgInvalidDelimiters     = "invalid delimiter change"
	ErrMsgExpectingToken        = "expecting token"
	ErrMsgBadSectionIdentifier  = "bad section identifier"
	ErrMsgUnsupportedValueType  = "unsupported value type"
	ErrMsgUnsupportedMapKeyType = "unsupported map key type"
	ErrMsgInvalidNumber         = "invalid number"
	ErrMsgTrailingData          = "unexpected data after document"
)
