package internal

// ScanComment consumes a // line comment (without its line terminator) or a
// /* */ block comment. An unterminated block comment runs to end of input.
func ScanComment(lx Lexer) bool {
	if lx.Lookahead() != CharSlash {
		return false
	}
	lx.Advance()

	switch lx.Lookahead() {
	case CharSlash:
		lx.Advance()
		for !lx.EOF() && !isLineTerminator(lx.Lookahead()) {
			lx.Advance()
		}
		return true

	case CharStar:
		lx.Advance()
		for !lx.EOF() {
			if lx.Lookahead() != CharStar {
				lx.Advance()
				continue
			}
			lx.Advance()
			if lx.Lookahead() == CharSlash {
				lx.Advance()
				return true
			}
		}
		return true
	}

	return false
}

// ScanPreproc consumes a # directive line including its line terminator.
func ScanPreproc(lx Lexer) bool {
	if lx.Lookahead() != CharHash {
		return false
	}
	lx.Advance()

	for !lx.EOF() && !isLineTerminator(lx.Lookahead()) {
		lx.Advance()
	}
	if !lx.EOF() && lx.Lookahead() == CharCarriageRet {
		lx.Advance()
	}
	if !lx.EOF() && lx.Lookahead() == CharNewline {
		lx.Advance()
	}
	return true
}
