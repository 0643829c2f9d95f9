package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// tokenShape drops positions so expectations stay readable
type tokenShape struct {
	Type        TokenType
	Value       string
	Indentation string
}

func shapes(tokens []Token) []tokenShape {
	out := make([]tokenShape, len(tokens))
	for i, tok := range tokens {
		out[i] = tokenShape{Type: tok.Type, Value: tok.Value, Indentation: tok.Indentation}
	}
	return out
}

func TestTokenizer_Tags(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []tokenShape
	}{
		{
			name:     "empty",
			input:    "",
			expected: []tokenShape{},
		},
		{
			name:     "plain text",
			input:    "Hello, world!",
			expected: []tokenShape{{Type: TokenTypeText, Value: "Hello, world!"}},
		},
		{
			name:  "variable",
			input: "Hello, {{name}}!",
			expected: []tokenShape{
				{Type: TokenTypeText, Value: "Hello, "},
				{Type: TokenTypeVariable, Value: "name"},
				{Type: TokenTypeText, Value: "!"},
			},
		},
		{
			name:     "variable with padding",
			input:    "{{  a.b  }}",
			expected: []tokenShape{{Type: TokenTypeVariable, Value: "a.b"}},
		},
		{
			name:     "triple mustache",
			input:    "{{{ html }}}",
			expected: []tokenShape{{Type: TokenTypeUnescapedVariable, Value: "html"}},
		},
		{
			name:     "ampersand",
			input:    "{{& html}}",
			expected: []tokenShape{{Type: TokenTypeUnescapedVariable, Value: "html"}},
		},
		{
			name:  "section",
			input: "{{#a}}x{{/a}}",
			expected: []tokenShape{
				{Type: TokenTypeOpenSection, Value: "a"},
				{Type: TokenTypeText, Value: "x"},
				{Type: TokenTypeCloseSection, Value: "a"},
			},
		},
		{
			name:  "inverted",
			input: "{{^ a }}x{{/ a }}",
			expected: []tokenShape{
				{Type: TokenTypeOpenInverted, Value: "a"},
				{Type: TokenTypeText, Value: "x"},
				{Type: TokenTypeCloseSection, Value: "a"},
			},
		},
		{
			name:  "block and parent",
			input: "{{<p}}{{$b}}x{{/b}}{{/p}}",
			expected: []tokenShape{
				{Type: TokenTypeOpenParent, Value: "p"},
				{Type: TokenTypeOpenBlock, Value: "b"},
				{Type: TokenTypeText, Value: "x"},
				{Type: TokenTypeCloseSection, Value: "b"},
				{Type: TokenTypeCloseSection, Value: "p"},
			},
		},
		{
			name:  "comment",
			input: "a{{! ignore me }}b",
			expected: []tokenShape{
				{Type: TokenTypeText, Value: "a"},
				{Type: TokenTypeComment},
				{Type: TokenTypeText, Value: "b"},
			},
		},
		{
			name:  "inline partial",
			input: "a {{>p}}",
			expected: []tokenShape{
				{Type: TokenTypeText, Value: "a "},
				{Type: TokenTypePartial, Value: "p"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := NewTokenizer(tt.input, zap.NewNop()).Tokenize()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, shapes(tokens))
		})
	}
}

func TestTokenizer_Standalone(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []tokenShape
	}{
		{
			name:  "standalone comment",
			input: "Begin.\n{{! c }}\nEnd.\n",
			expected: []tokenShape{
				{Type: TokenTypeText, Value: "Begin.\n"},
				{Type: TokenTypeComment},
				{Type: TokenTypeText, Value: "End.\n"},
			},
		},
		{
			name:  "indented section lines",
			input: "|\n  {{#a}}\nx\n  {{/a}}\n|",
			expected: []tokenShape{
				{Type: TokenTypeText, Value: "|\n"},
				{Type: TokenTypeOpenSection, Value: "a"},
				{Type: TokenTypeText, Value: "x\n"},
				{Type: TokenTypeCloseSection, Value: "a"},
				{Type: TokenTypeText, Value: "|"},
			},
		},
		{
			name:  "crlf line endings",
			input: "|\r\n{{#a}}\r\n{{/a}}\r\n|",
			expected: []tokenShape{
				{Type: TokenTypeText, Value: "|\r\n"},
				{Type: TokenTypeOpenSection, Value: "a"},
				{Type: TokenTypeCloseSection, Value: "a"},
				{Type: TokenTypeText, Value: "|"},
			},
		},
		{
			name:  "without newline at end",
			input: "|\n  {{! c }}",
			expected: []tokenShape{
				{Type: TokenTypeText, Value: "|\n"},
				{Type: TokenTypeComment},
			},
		},
		{
			name:  "inline tags are not standalone",
			input: " {{#a}}x{{/a}}\n",
			expected: []tokenShape{
				{Type: TokenTypeText, Value: " "},
				{Type: TokenTypeOpenSection, Value: "a"},
				{Type: TokenTypeText, Value: "x"},
				{Type: TokenTypeCloseSection, Value: "a"},
				{Type: TokenTypeText, Value: "\n"},
			},
		},
		{
			name:  "variables are never standalone",
			input: "  {{a}}\n",
			expected: []tokenShape{
				{Type: TokenTypeText, Value: "  "},
				{Type: TokenTypeVariable, Value: "a"},
				{Type: TokenTypeText, Value: "\n"},
			},
		},
		{
			name:  "standalone partial keeps indentation",
			input: "a\n\t {{>p}} \nb",
			expected: []tokenShape{
				{Type: TokenTypeText, Value: "a\n"},
				{Type: TokenTypePartial, Value: "p", Indentation: "\t "},
				{Type: TokenTypeText, Value: "b"},
			},
		},
		{
			name:  "inline partial has no indentation",
			input: "  {{>p}} x\n",
			expected: []tokenShape{
				{Type: TokenTypeText, Value: "  "},
				{Type: TokenTypePartial, Value: "p"},
				{Type: TokenTypeText, Value: " x\n"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := NewTokenizer(tt.input, nil).Tokenize()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, shapes(tokens))
		})
	}
}

func TestTokenizer_Delimiters(t *testing.T) {
	t.Run("change applies to following tags", func(t *testing.T) {
		tz := NewTokenizer("{{=<% %>=}}(<%x%>){{y}}", nil)
		tokens, err := tz.Tokenize()
		require.NoError(t, err)
		assert.Equal(t, []tokenShape{
			{Type: TokenTypeComment},
			{Type: TokenTypeText, Value: "("},
			{Type: TokenTypeVariable, Value: "x"},
			{Type: TokenTypeText, Value: "){{y}}"},
		}, shapes(tokens))
		assert.Equal(t, Delimiters{Open: "<%", Close: "%>"}, tz.Delimiters())
	})

	t.Run("standalone change", func(t *testing.T) {
		tokens, err := NewTokenizer("a\n  {{= | | =}}  \n|b|", nil).Tokenize()
		require.NoError(t, err)
		assert.Equal(t, []tokenShape{
			{Type: TokenTypeText, Value: "a\n"},
			{Type: TokenTypeComment},
			{Type: TokenTypeVariable, Value: "b"},
		}, shapes(tokens))
	})

	t.Run("starting delimiters", func(t *testing.T) {
		tokens, err := NewTokenizerWithDelimiters("[[x]] {{y}}", Delimiters{Open: "[[", Close: "]]"}, nil).Tokenize()
		require.NoError(t, err)
		assert.Equal(t, []tokenShape{
			{Type: TokenTypeVariable, Value: "x"},
			{Type: TokenTypeText, Value: " {{y}}"},
		}, shapes(tokens))
	})

	t.Run("empty starting delimiters fall back to defaults", func(t *testing.T) {
		tz := NewTokenizerWithDelimiters("", Delimiters{}, nil)
		assert.Equal(t, DefaultDelimiters(), tz.Delimiters())
	})

	t.Run("triple mustache after change", func(t *testing.T) {
		tokens, err := NewTokenizer("{{=<% %>=}}<%{x}%>", nil).Tokenize()
		require.NoError(t, err)
		assert.Equal(t, []tokenShape{
			{Type: TokenTypeComment},
			{Type: TokenTypeUnescapedVariable, Value: "x"},
		}, shapes(tokens))
	})
}

func TestTokenizer_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		reason SyntaxReason
		line   int
		column int
	}{
		{name: "unterminated variable", input: "Hello, \n {{location", reason: ReasonMissingEndOfToken, line: 2, column: 12},
		{name: "open delimiter at end", input: "abc{{", reason: ReasonMissingEndOfToken, line: 1, column: 6},
		{name: "unterminated triple", input: "{{{x}}", reason: ReasonMissingEndOfToken, line: 1, column: 5},
		{name: "triple missing third brace", input: "{{{a}} b", reason: ReasonMissingEndOfToken, line: 1, column: 5},
		{name: "triple missing brace before later triple", input: "{{{a}} b {{{c}}}", reason: ReasonMissingEndOfToken, line: 1, column: 5},
		{name: "triple with custom delimiters missing brace", input: "{{=<% %>=}}<%{x%>", reason: ReasonMissingEndOfToken, line: 1, column: 16},
		{name: "delimiter change without equals", input: "{{=<% %>}}", reason: ReasonInvalidDelimiters, line: 1, column: 1},
		{name: "delimiter change with one delimiter", input: "x{{=<%=}}", reason: ReasonInvalidDelimiters, line: 1, column: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTokenizer(tt.input, nil).Tokenize()
			require.Error(t, err)

			var syntaxErr *SyntaxError
			require.ErrorAs(t, err, &syntaxErr)
			assert.Equal(t, tt.reason, syntaxErr.Reason)
			assert.Equal(t, tt.line, syntaxErr.Line())
			assert.Equal(t, tt.column, syntaxErr.Column())
		})
	}
}

func TestTokenizer_Positions(t *testing.T) {
	tokens, err := NewTokenizer("ab\n{{x}}", nil).Tokenize()
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, Position{Offset: 0, Line: 1, Column: 1}, tokens[0].Position)
	assert.Equal(t, Position{Offset: 3, Line: 2, Column: 1}, tokens[1].Position)
}
