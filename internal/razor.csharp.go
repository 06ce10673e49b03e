package internal

// stringKind is the flavor of an interpolated string literal.
type stringKind uint8

const (
	stringRegular  stringKind = 1 << iota // $"..."
	stringVerbatim                        // $@"..." or @$"..."
	stringRaw                             // $"""...""" with one or more $

	// stringOpening marks a frame whose opening quote is still ahead.
	stringOpening stringKind = 0x80
)

func (k stringKind) opening() bool { return k&stringOpening != 0 }

func (k stringKind) base() stringKind { return k &^ stringOpening }

// interpolation is one open interpolated string. openBraceCount is the
// number of braces that opened the current hole, zero while in the literal
// body.
type interpolation struct {
	dollarCount    uint8
	openBraceCount uint8
	quoteCount     uint8
	kind           stringKind
}

// Persisted layout: [quoteCount][len(interpolations)][4 bytes per entry].
const (
	csharpHeaderSize        = 2
	csharpInterpolationSize = 4
	csharpMaxInterpolations = 255
	rawStringMinQuotes      = 3
)

// CSharpScanner handles the C# tokens a context-free grammar cannot:
// interpolated strings, raw string literals and the optional semicolon.
// Its persisted state is self-describing; StateSize reads the header.
type CSharpScanner struct {
	quoteCount     uint8 // delimiter length of the open raw string, 0 if none
	interpolations []interpolation
}

// NewCSharpScanner creates a scanner in its initial state.
func NewCSharpScanner() *CSharpScanner {
	return &CSharpScanner{}
}

// Close releases the scanner state.
func (s *CSharpScanner) Close() error {
	s.quoteCount = 0
	s.interpolations = nil
	return nil
}

// Serialize writes the state into buf and returns the byte count. It
// reports false and writes nothing if buf is too small.
func (s *CSharpScanner) Serialize(buf []byte) (int, bool) {
	size := csharpHeaderSize + len(s.interpolations)*csharpInterpolationSize
	if size > len(buf) {
		return 0, false
	}
	buf[0] = s.quoteCount
	buf[1] = byte(len(s.interpolations))
	off := csharpHeaderSize
	for _, in := range s.interpolations {
		buf[off] = in.dollarCount
		buf[off+1] = in.openBraceCount
		buf[off+2] = in.quoteCount
		buf[off+3] = byte(in.kind)
		off += csharpInterpolationSize
	}
	return size, true
}

// StateSize returns how many leading bytes of buf belong to this scanner.
func (s *CSharpScanner) StateSize(buf []byte) int {
	if len(buf) < csharpHeaderSize {
		return len(buf)
	}
	size := csharpHeaderSize + int(buf[1])*csharpInterpolationSize
	if size > len(buf) {
		return len(buf)
	}
	return size
}

// Deserialize restores the state written by Serialize. An empty buffer
// resets to the initial state.
func (s *CSharpScanner) Deserialize(buf []byte) {
	s.quoteCount = 0
	s.interpolations = s.interpolations[:0]
	if len(buf) < csharpHeaderSize {
		return
	}
	s.quoteCount = buf[0]
	count := int(buf[1])
	off := csharpHeaderSize
	for i := 0; i < count && off+csharpInterpolationSize <= len(buf); i++ {
		s.interpolations = append(s.interpolations, interpolation{
			dollarCount:    buf[off],
			openBraceCount: buf[off+1],
			quoteCount:     buf[off+2],
			kind:           stringKind(buf[off+3]),
		})
		off += csharpInterpolationSize
	}
}

// Depth returns the number of open interpolated strings.
func (s *CSharpScanner) Depth() int {
	return len(s.interpolations)
}

// InLiteral reports whether the cursor is inside a string literal or an
// interpolation hole, where Razor delimiters must not be recognized.
func (s *CSharpScanner) InLiteral() bool {
	return s.quoteCount > 0 || len(s.interpolations) > 0
}

// Scan recognizes one C# external token.
func (s *CSharpScanner) Scan(lx Lexer, valid ValidSymbols) (TokenKind, bool) {
	top := s.top()

	if top != nil && top.openBraceCount == 0 {
		if top.kind.opening() {
			if valid.Has(TokenInterpolationStartQuote) && lx.Lookahead() == CharDoubleQuote {
				return s.scanStartQuote(lx, top)
			}
			return 0, false
		}
		if valid.Has(TokenInterpolationOpenBrace) && lx.Lookahead() == CharOpenBrace {
			if s.scanOpenBrace(lx, top) {
				return TokenInterpolationOpenBrace, true
			}
			lx.Rewind()
		}
		return s.scanStringBody(lx, valid, top)
	}

	if s.quoteCount > 0 {
		return s.scanRawStringBody(lx, valid)
	}

	if top != nil && valid.Has(TokenInterpolationCloseBrace) && lx.Lookahead() == CharCloseBrace {
		if s.scanCloseBrace(lx, top) {
			return TokenInterpolationCloseBrace, true
		}
		lx.Rewind()
	}

	if valid.Has(TokenOptSemi) && lx.Lookahead() == CharSemicolon {
		lx.Advance()
		return TokenOptSemi, true
	}

	if valid.Has(TokenInterpolationRegularStart) || valid.Has(TokenInterpolationVerbatimStart) || valid.Has(TokenInterpolationRawStart) {
		if kind, ok := s.scanInterpolationStart(lx, valid); ok {
			return kind, true
		}
		lx.Rewind()
	}

	if valid.Has(TokenRawStringStart) && lx.Lookahead() == CharDoubleQuote {
		n := countRun(lx, CharDoubleQuote)
		if n >= rawStringMinQuotes && n <= 0xFF {
			s.quoteCount = uint8(n)
			return TokenRawStringStart, true
		}
	}

	return 0, false
}

func (s *CSharpScanner) top() *interpolation {
	if len(s.interpolations) == 0 {
		return nil
	}
	return &s.interpolations[len(s.interpolations)-1]
}

// scanInterpolationStart recognizes $, $@, @$ or $$... before the opening
// quote. The token ends before the quotes; they are read ahead only to tell
// raw strings from regular ones.
func (s *CSharpScanner) scanInterpolationStart(lx Lexer, valid ValidSymbols) (TokenKind, bool) {
	if len(s.interpolations) >= csharpMaxInterpolations {
		return 0, false
	}

	if lx.Lookahead() == CharAt {
		lx.Advance()
		if lx.Lookahead() != CharDollar {
			return 0, false
		}
		lx.Advance()
		return s.openVerbatim(lx, valid)
	}

	if lx.Lookahead() != CharDollar {
		return 0, false
	}
	dollars := countRun(lx, CharDollar)
	if dollars == 1 && lx.Lookahead() == CharAt {
		lx.Advance()
		return s.openVerbatim(lx, valid)
	}
	if dollars > 0xFF {
		return 0, false
	}

	lx.MarkEnd()
	quotes := countRun(lx, CharDoubleQuote)
	switch {
	case quotes >= rawStringMinQuotes && quotes <= 0xFF:
		if !valid.Has(TokenInterpolationRawStart) {
			return 0, false
		}
		s.push(uint8(dollars), uint8(quotes), stringRaw)
		return TokenInterpolationRawStart, true
	case quotes >= 1 && dollars == 1:
		if !valid.Has(TokenInterpolationRegularStart) {
			return 0, false
		}
		s.push(1, 1, stringRegular)
		return TokenInterpolationRegularStart, true
	}
	return 0, false
}

func (s *CSharpScanner) openVerbatim(lx Lexer, valid ValidSymbols) (TokenKind, bool) {
	if !valid.Has(TokenInterpolationVerbatimStart) || lx.Lookahead() != CharDoubleQuote {
		return 0, false
	}
	s.push(1, 1, stringVerbatim)
	return TokenInterpolationVerbatimStart, true
}

func (s *CSharpScanner) push(dollars, quotes uint8, kind stringKind) {
	s.interpolations = append(s.interpolations, interpolation{
		dollarCount: dollars,
		quoteCount:  quotes,
		kind:        kind | stringOpening,
	})
}

func (s *CSharpScanner) scanStartQuote(lx Lexer, top *interpolation) (TokenKind, bool) {
	if top.kind.base() != stringRaw {
		lx.Advance()
	} else if countRun(lx, CharDoubleQuote) != int(top.quoteCount) {
		return 0, false
	}
	top.kind = top.kind.base()
	return TokenInterpolationStartQuote, true
}

// scanOpenBrace consumes the braces that open a hole. In regular and
// verbatim strings {{ is an escaped brace, not a hole.
func (s *CSharpScanner) scanOpenBrace(lx Lexer, top *interpolation) bool {
	want := 1
	if top.kind == stringRaw {
		want = int(top.dollarCount)
	}
	for i := 0; i < want; i++ {
		if lx.Lookahead() != CharOpenBrace {
			return false
		}
		lx.Advance()
	}
	if top.kind != stringRaw && lx.Lookahead() == CharOpenBrace {
		return false
	}
	top.openBraceCount = uint8(want)
	return true
}

func (s *CSharpScanner) scanCloseBrace(lx Lexer, top *interpolation) bool {
	for i := 0; i < int(top.openBraceCount); i++ {
		if lx.Lookahead() != CharCloseBrace {
			return false
		}
		lx.Advance()
	}
	top.openBraceCount = 0
	return true
}

// atClosingQuote consumes the quotes at the cursor and reports whether they
// close the innermost string.
func atClosingQuote(lx Lexer, top *interpolation) bool {
	switch top.kind {
	case stringVerbatim:
		lx.Advance()
		return lx.Lookahead() != CharDoubleQuote
	case stringRaw:
		return countRun(lx, CharDoubleQuote) == int(top.quoteCount)
	default:
		lx.Advance()
		return true
	}
}

// scanStringBody recognizes the closing quote or a run of literal content
// in the body of the innermost interpolated string.
func (s *CSharpScanner) scanStringBody(lx Lexer, valid ValidSymbols, top *interpolation) (TokenKind, bool) {
	if lx.Lookahead() == CharDoubleQuote {
		if atClosingQuote(lx, top) {
			if !valid.Has(TokenInterpolationEndQuote) {
				return 0, false
			}
			s.interpolations = s.interpolations[:len(s.interpolations)-1]
			return TokenInterpolationEndQuote, true
		}
		lx.Rewind()
	}

	if !valid.Has(TokenInterpolationStringContent) {
		return 0, false
	}

	hasContent := false
	for !lx.EOF() {
		c := lx.Lookahead()
		switch {
		case c == CharDoubleQuote:
			switch top.kind {
			case stringVerbatim:
				lx.Advance()
				if lx.Lookahead() != CharDoubleQuote {
					return TokenInterpolationStringContent, hasContent
				}
				lx.Advance()
			case stringRaw:
				if countRun(lx, CharDoubleQuote) >= int(top.quoteCount) {
					return TokenInterpolationStringContent, hasContent
				}
			default:
				return TokenInterpolationStringContent, hasContent
			}
		case c == CharOpenBrace:
			if top.kind == stringRaw {
				if countRun(lx, CharOpenBrace) >= int(top.dollarCount) {
					return TokenInterpolationStringContent, hasContent
				}
				break
			}
			lx.Advance()
			if lx.Lookahead() != CharOpenBrace {
				return TokenInterpolationStringContent, hasContent
			}
			lx.Advance()
		case c == CharCloseBrace && top.kind != stringRaw:
			lx.Advance()
			if lx.Lookahead() == CharCloseBrace {
				lx.Advance()
			}
		case c == CharBackslash && top.kind == stringRegular:
			lx.Advance()
			if !lx.EOF() {
				lx.Advance()
			}
		case isLineTerminator(c) && top.kind == stringRegular:
			return TokenInterpolationStringContent, hasContent
		default:
			lx.Advance()
		}
		hasContent = true
		lx.MarkEnd()
	}

	return TokenInterpolationStringContent, hasContent
}

// scanRawStringBody recognizes the closing delimiter or the content of a
// plain raw string literal.
func (s *CSharpScanner) scanRawStringBody(lx Lexer, valid ValidSymbols) (TokenKind, bool) {
	hasContent := false

	if lx.Lookahead() == CharDoubleQuote {
		n := countRun(lx, CharDoubleQuote)
		if n == int(s.quoteCount) && valid.Has(TokenRawStringEnd) {
			s.quoteCount = 0
			return TokenRawStringEnd, true
		}
		if !valid.Has(TokenRawStringContent) || n == int(s.quoteCount) {
			return 0, false
		}
		hasContent = true
		lx.MarkEnd()
	}

	if !valid.Has(TokenRawStringContent) {
		return 0, false
	}

	for !lx.EOF() {
		if lx.Lookahead() == CharDoubleQuote {
			if countRun(lx, CharDoubleQuote) >= int(s.quoteCount) {
				break
			}
		} else {
			lx.Advance()
		}
		hasContent = true
		lx.MarkEnd()
	}

	return TokenRawStringContent, hasContent
}

// countRun advances over consecutive occurrences of r and returns how many.
func countRun(lx Lexer, r rune) int {
	n := 0
	for lx.Lookahead() == r && !lx.EOF() {
		lx.Advance()
		n++
	}
	return n
}
