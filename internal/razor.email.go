package internal

// ScanLiteralAt consumes markup text containing literal @ signs, such as
// e-mail addresses. An @ counts as literal when it sits between two word
// characters; any other @ ends the token before it. Several literal runs
// may be consumed in one call. It reports false unless at least one run was
// found.
func ScanLiteralAt(lx Lexer) bool {
	found := false
	lastWasWord := false

	for !lx.EOF() {
		c := lx.Lookahead()
		if c == CharLess || c == CharDoubleQuote || c == CharSingleQuote {
			break
		}

		if c == CharAt {
			if !lastWasWord {
				break
			}
			lx.Advance()
			if !IsWordChar(lx.Lookahead()) {
				break
			}
			found = true
			for isLiteralRunChar(lx.Lookahead()) {
				lx.Advance()
			}
			lx.MarkEnd()
			lastWasWord = false
			continue
		}

		lastWasWord = IsWordChar(c)
		lx.Advance()
		if found {
			lx.MarkEnd()
		}
	}

	return found
}

func isLiteralRunChar(r rune) bool {
	return IsWordChar(r) || r == CharDot || r == CharDash
}
