package internal

import "unicode/utf8"

// Lexer is the lookahead cursor a scan step reads from.
//
// Advance consumes the lookahead into the current token. Skip consumes it as
// leading whitespace, which moves the token start when nothing has been
// advanced yet. MarkEnd commits the token end at the cursor; without it the
// token ends wherever the cursor stops. Rewind returns the cursor to the
// token start and drops any committed end.
type Lexer interface {
	Lookahead() rune
	Advance()
	Skip()
	MarkEnd()
	EOF() bool
	Rewind()
}

// SourceLexer implements Lexer over an in-memory source. Offsets are byte
// offsets into the source.
type SourceLexer struct {
	source   string
	start    int
	pos      int
	end      int
	marked   bool
	advanced bool
	ch       rune
	width    int
}

// NewSourceLexer creates a cursor positioned at the start of source.
func NewSourceLexer(source string) *SourceLexer {
	l := &SourceLexer{source: source}
	l.Reset(0)
	return l
}

// Reset starts a new token at offset.
func (l *SourceLexer) Reset(offset int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(l.source) {
		offset = len(l.source)
	}
	l.start = offset
	l.pos = offset
	l.end = offset
	l.marked = false
	l.advanced = false
	l.decode()
}

// Lookahead returns the rune under the cursor, or 0 at end of input.
func (l *SourceLexer) Lookahead() rune {
	return l.ch
}

// EOF reports whether the cursor is at the end of the source.
func (l *SourceLexer) EOF() bool {
	return l.pos >= len(l.source)
}

// Advance moves the cursor past the lookahead as part of the token.
func (l *SourceLexer) Advance() {
	if l.EOF() {
		return
	}
	l.pos += l.width
	l.advanced = true
	l.decode()
}

// Skip moves the cursor past the lookahead as whitespace.
func (l *SourceLexer) Skip() {
	if l.EOF() {
		return
	}
	l.pos += l.width
	if !l.advanced {
		l.start = l.pos
		l.end = l.pos
	}
	l.decode()
}

// MarkEnd commits the token end at the cursor.
func (l *SourceLexer) MarkEnd() {
	l.end = l.pos
	l.marked = true
}

// Rewind returns the cursor to the token start.
func (l *SourceLexer) Rewind() {
	l.pos = l.start
	l.end = l.start
	l.marked = false
	l.advanced = false
	l.decode()
}

// Start returns the token start offset.
func (l *SourceLexer) Start() int {
	return l.start
}

// End returns the token end offset: the committed end if MarkEnd was called,
// the cursor otherwise.
func (l *SourceLexer) End() int {
	if l.marked {
		return l.end
	}
	return l.pos
}

// Offset returns the cursor offset, which may run ahead of End.
func (l *SourceLexer) Offset() int {
	return l.pos
}

// Text returns the token text between Start and End.
func (l *SourceLexer) Text() string {
	return l.source[l.start:l.End()]
}

// Source returns the underlying source.
func (l *SourceLexer) Source() string {
	return l.source
}

func (l *SourceLexer) decode() {
	if l.pos >= len(l.source) {
		l.ch = 0
		l.width = 0
		return
	}
	l.ch, l.width = utf8.DecodeRuneInString(l.source[l.pos:])
}
