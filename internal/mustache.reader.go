package internal

import (
	"strings"
	"unicode/utf8"
)

// Reader is a cursor over template source with bounded lookahead and
// lookbehind. No operation reads past the end of input; at the end every
// operation returns an empty result instead of failing.
type Reader struct {
	source string
	pos    int // Current byte position
	line   int // Current line (1-indexed)
	column int // Current column (1-indexed, in runes)
}

// NewReader creates a reader positioned at the start of source
func NewReader(source string) *Reader {
	return &Reader{
		source: source,
		pos:    0,
		line:   1,
		column: 1,
	}
}

// Done returns true once every character has been consumed
func (r *Reader) Done() bool {
	return r.pos >= len(r.source)
}

// Line returns the 1-indexed line of the cursor
func (r *Reader) Line() int {
	return r.line
}

// Column returns the 1-indexed column of the cursor
func (r *Reader) Column() int {
	return r.column
}

// Position returns the current cursor position
func (r *Reader) Position() Position {
	return Position{
		Offset: r.pos,
		Line:   r.line,
		Column: r.column,
	}
}

// Peek returns up to n characters without advancing
func (r *Reader) Peek(n int) string {
	return r.source[r.pos:r.runeEnd(n)]
}

// Pop returns up to n characters and advances past them
func (r *Reader) Pop(n int) string {
	end := r.runeEnd(n)
	popped := r.source[r.pos:end]
	r.advanceTo(end)
	return popped
}

// PeekRune returns the next character without advancing
func (r *Reader) PeekRune() (rune, bool) {
	if r.Done() {
		return 0, false
	}
	ch, _ := utf8.DecodeRuneInString(r.source[r.pos:])
	return ch, true
}

// PopRune returns the next character and advances past it
func (r *Reader) PopRune() (rune, bool) {
	if r.Done() {
		return 0, false
	}
	ch, size := utf8.DecodeRuneInString(r.source[r.pos:])
	r.advanceTo(r.pos + size)
	return ch, true
}

// BackPeek returns up to the last n consumed characters
func (r *Reader) BackPeek(n int) string {
	start := r.pos
	for i := 0; i < n && start > 0; i++ {
		_, size := utf8.DecodeLastRuneInString(r.source[:start])
		start -= size
	}
	return r.source[start:r.pos]
}

// HasPrefix returns true if the unconsumed input starts with s
func (r *Reader) HasPrefix(s string) bool {
	return strings.HasPrefix(r.source[r.pos:], s)
}

// Skip advances past s if the unconsumed input starts with it
func (r *Reader) Skip(s string) bool {
	if !r.HasPrefix(s) {
		return false
	}
	r.advanceTo(r.pos + len(s))
	return true
}

// PeekUpTo returns everything before the next occurrence of delimiter.
// If the delimiter is not found the rest of the input is returned with false.
func (r *Reader) PeekUpTo(delimiter string) (string, bool) {
	rest := r.source[r.pos:]
	idx := strings.Index(rest, delimiter)
	if idx < 0 || delimiter == "" {
		return rest, false
	}
	return rest[:idx], true
}

// PopUpTo consumes and returns everything before the next occurrence of
// delimiter, leaving the delimiter itself unconsumed. If the delimiter is
// not found the rest of the input is consumed and returned with false.
func (r *Reader) PopUpTo(delimiter string) (string, bool) {
	popped, found := r.PeekUpTo(delimiter)
	r.advanceTo(r.pos + len(popped))
	return popped, found
}

// PopToEnd consumes and returns the rest of the input
func (r *Reader) PopToEnd() string {
	rest := r.source[r.pos:]
	r.advanceTo(len(r.source))
	return rest
}

// PeekUpToAny returns the unconsumed text before the first character
// contained in set, or the rest of the input
func (r *Reader) PeekUpToAny(set string) string {
	rest := r.source[r.pos:]
	if idx := strings.IndexAny(rest, set); idx >= 0 {
		return rest[:idx]
	}
	return rest
}

// BackPeekUpToAny returns the consumed text after the last character
// contained in set, or everything consumed so far
func (r *Reader) BackPeekUpToAny(set string) string {
	consumed := r.source[:r.pos]
	if idx := strings.LastIndexAny(consumed, set); idx >= 0 {
		return consumed[idx+1:]
	}
	return consumed
}

// ConsumeWhile skips characters while they are in set. A negative limit
// means unbounded. Returns the number of characters skipped.
func (r *Reader) ConsumeWhile(set string, limit int) int {
	count := 0
	for limit < 0 || count < limit {
		ch, ok := r.PeekRune()
		if !ok || !strings.ContainsRune(set, ch) {
			break
		}
		r.PopRune()
		count++
	}
	return count
}

// LeadingWhitespace returns the text between the previous newline (or the
// start of input) and the cursor, and whether it is whitespace only
func (r *Reader) LeadingWhitespace() (string, bool) {
	leading := r.BackPeekUpToAny(CharSetNewline)
	return leading, isWhitespaceOnly(leading)
}

// TrailingWhitespace returns the text between the cursor and the next
// newline (or the end of input), and whether it is whitespace only
func (r *Reader) TrailingWhitespace() (string, bool) {
	trailing := r.PeekUpToAny(CharSetNewline)
	return trailing, isWhitespaceOnly(trailing)
}

// ConsumeNewline skips one line separator ("\r\n" or "\n")
func (r *Reader) ConsumeNewline() bool {
	return r.Skip(StrCRLF) || r.Skip(StrNewline)
}

// runeEnd returns the byte offset n characters past the cursor
func (r *Reader) runeEnd(n int) int {
	end := r.pos
	for i := 0; i < n && end < len(r.source); i++ {
		_, size := utf8.DecodeRuneInString(r.source[end:])
		end += size
	}
	return end
}

// advanceTo moves the cursor to end, tracking line and column
func (r *Reader) advanceTo(end int) {
	for _, ch := range r.source[r.pos:end] {
		if ch == '\n' {
			r.line++
			r.column = 1
		} else {
			r.column++
		}
	}
	r.pos = end
}

// isWhitespaceOnly returns true if s holds only spaces and tabs
func isWhitespaceOnly(s string) bool {
	return strings.Trim(s, CharSetWhitespace) == ""
}
