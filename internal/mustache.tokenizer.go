package internal

import (
	"strings"

	"go.uber.org/zap"
)

// Delimiters is the pair of strings that open and close a tag
type Delimiters struct {
	Open  string // Opening delimiter (default: "{{")
	Close string // Closing delimiter (default: "}}")
}

// DefaultDelimiters returns the standard mustache delimiters
func DefaultDelimiters() Delimiters {
	return Delimiters{
		Open:  StrOpenDelim,
		Close: StrCloseDelim,
	}
}

// Tokenizer turns template source into a flat token list. It owns the
// current delimiter pair, which a delimiter-change tag replaces for all
// tokens that follow it. A Tokenizer is good for one Tokenize call.
type Tokenizer struct {
	reader     *Reader
	delimiters Delimiters
	tokens     []Token
	logger     *zap.Logger
}

// NewTokenizer creates a tokenizer with the default delimiters
func NewTokenizer(source string, logger *zap.Logger) *Tokenizer {
	return NewTokenizerWithDelimiters(source, DefaultDelimiters(), logger)
}

// NewTokenizerWithDelimiters creates a tokenizer starting from custom delimiters
func NewTokenizerWithDelimiters(source string, delimiters Delimiters, logger *zap.Logger) *Tokenizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if delimiters.Open == "" || delimiters.Close == "" {
		delimiters = DefaultDelimiters()
	}
	logger.Debug(LogMsgTokenizerCreated, zap.Int(LogFieldSource, len(source)))
	return &Tokenizer{
		reader:     NewReader(source),
		delimiters: delimiters,
		logger:     logger,
	}
}

// Delimiters returns the delimiter pair currently in effect
func (t *Tokenizer) Delimiters() Delimiters {
	return t.delimiters
}

// Tokenize processes the source and returns the token list
func (t *Tokenizer) Tokenize() ([]Token, error) {
	t.logger.Debug(LogMsgTokenizerStart)

	for !t.reader.Done() {
		if t.reader.HasPrefix(t.delimiters.Open) {
			tok, err := t.scanTag()
			if err != nil {
				return nil, err
			}
			t.tokens = append(t.tokens, tok)
			continue
		}
		t.tokens = append(t.tokens, t.scanText())
	}

	t.logger.Debug(LogMsgTokenizerEnd, zap.Int(LogFieldTokens, len(t.tokens)))
	return t.tokens, nil
}

// scanText consumes one run of text up to the next open delimiter
func (t *Tokenizer) scanText() Token {
	pos := t.reader.Position()
	text, _ := t.reader.PopUpTo(t.delimiters.Open)
	return NewTextToken(text, pos)
}

// scanTag consumes one tag expression, starting at the open delimiter
func (t *Tokenizer) scanTag() (Token, error) {
	pos := t.reader.Position()
	leading, leadingBlank := t.reader.LeadingWhitespace()

	t.reader.Skip(t.delimiters.Open)
	t.reader.ConsumeWhile(CharSetWhitespaceNewline, -1)

	kind, ok := t.reader.PopRune()
	if !ok {
		return Token{}, newSyntaxError(ReasonMissingEndOfToken, t.reader.Position())
	}

	content, found := t.reader.PopUpTo(t.delimiters.Close)
	if !found {
		return Token{}, newSyntaxError(ReasonMissingEndOfToken, t.reader.Position())
	}
	closed := false
	if kind == CharTriple {
		// the third brace must sit directly before the close delimiter
		if strings.HasSuffix(content, StrTripleClose) {
			content = strings.TrimSuffix(content, StrTripleClose)
		} else if closed = t.reader.Skip(StrTripleClose + t.delimiters.Close); !closed {
			return Token{}, newSyntaxError(ReasonMissingEndOfToken, t.reader.Position())
		}
	}
	if !closed {
		t.reader.Skip(t.delimiters.Close)
	}

	trailing, trailingBlank := t.reader.TrailingWhitespace()
	standalone := leadingBlank && trailingBlank
	name := strings.Trim(content, CharSetWhitespaceNewline)

	switch kind {
	case CharDelimiter:
		delimiters, err := parseDelimiters(content)
		if err != nil {
			return Token{}, newSyntaxError(ReasonInvalidDelimiters, pos)
		}
		t.stripIfStandalone(standalone, leading, trailing)
		t.delimiters = delimiters
		t.logger.Debug(LogMsgDelimiterChange,
			zap.String(LogFieldOpenDelim, delimiters.Open),
			zap.String(LogFieldCloseDelim, delimiters.Close))
		return NewCommentToken(pos), nil

	case CharComment:
		t.stripIfStandalone(standalone, leading, trailing)
		return NewCommentToken(pos), nil

	case CharSection:
		t.stripIfStandalone(standalone, leading, trailing)
		return NewToken(TokenTypeOpenSection, name, pos), nil

	case CharInverted:
		t.stripIfStandalone(standalone, leading, trailing)
		return NewToken(TokenTypeOpenInverted, name, pos), nil

	case CharBlock:
		t.stripIfStandalone(standalone, leading, trailing)
		return NewToken(TokenTypeOpenBlock, name, pos), nil

	case CharParent:
		t.stripIfStandalone(standalone, leading, trailing)
		return NewToken(TokenTypeOpenParent, name, pos), nil

	case CharClose:
		t.stripIfStandalone(standalone, leading, trailing)
		return NewToken(TokenTypeCloseSection, name, pos), nil

	case CharPartial:
		t.stripIfStandalone(standalone, leading, trailing)
		indentation := ""
		if standalone {
			indentation = leading
		}
		return NewPartialToken(name, indentation, pos), nil

	case CharTriple, CharAmpersand:
		return NewToken(TokenTypeUnescapedVariable, name, pos), nil

	default:
		path := strings.Trim(string(kind)+content, CharSetWhitespaceNewline)
		return NewToken(TokenTypeVariable, path, pos), nil
	}
}

// stripIfStandalone removes the whitespace surrounding a tag that is alone
// on its line: the trailing whitespace and newline are dropped from the
// input and the leading whitespace is cut from the preceding text token.
func (t *Tokenizer) stripIfStandalone(standalone bool, leading, trailing string) {
	if !standalone {
		return
	}

	t.reader.Skip(trailing)
	t.reader.ConsumeNewline()

	if n := len(t.tokens); n > 0 && t.tokens[n-1].IsText() {
		prev := &t.tokens[n-1]
		prev.Value = strings.TrimSuffix(prev.Value, leading)
		if prev.Value == "" {
			t.tokens = t.tokens[:n-1]
		}
	}

	t.logger.Debug(LogMsgStandaloneStripped,
		zap.Int(LogFieldLine, t.reader.Line()),
		zap.Int(LogFieldColumn, t.reader.Column()))
}

// parseDelimiters reads the content of a delimiter-change tag: two
// whitespace-separated sequences, the second followed by "=".
func parseDelimiters(content string) (Delimiters, error) {
	trimmed := strings.TrimRight(content, CharSetWhitespaceNewline)
	if !strings.HasSuffix(trimmed, string(CharDelimiter)) {
		return Delimiters{}, newSyntaxError(ReasonInvalidDelimiters, Position{})
	}
	fields := strings.Fields(strings.TrimSuffix(trimmed, string(CharDelimiter)))
	if len(fields) != 2 {
		return Delimiters{}, newSyntaxError(ReasonInvalidDelimiters, Position{})
	}
	return Delimiters{Open: fields[0], Close: fields[1]}, nil
}
