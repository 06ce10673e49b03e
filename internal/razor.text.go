package internal

import "strings"

// KeywordSet holds the continuation keywords (else, catch, finally by
// default) that markup text must not swallow at the start of a line.
type KeywordSet struct {
	words    []string
	initials map[rune]struct{}
	maxLen   int
}

// NewKeywordSet builds a set from words. Empty words, duplicates and words
// containing non-identifier characters are dropped.
func NewKeywordSet(words ...string) KeywordSet {
	ks := KeywordSet{initials: make(map[rune]struct{})}
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		if !ValidKeyword(w) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		ks.words = append(ks.words, w)
		for _, r := range w {
			ks.initials[r] = struct{}{}
			break
		}
		if n := len([]rune(w)); n > ks.maxLen {
			ks.maxLen = n
		}
	}
	return ks
}

// DefaultKeywordSet returns else, catch and finally.
func DefaultKeywordSet() KeywordSet {
	return NewKeywordSet(KeywordElse, KeywordCatch, KeywordFinally)
}

// ValidKeyword reports whether w is a non-empty run of identifier characters.
func ValidKeyword(w string) bool {
	if w == "" {
		return false
	}
	for _, r := range w {
		if !IsIdentifierChar(r) {
			return false
		}
	}
	return true
}

// Words returns the keywords in insertion order.
func (k KeywordSet) Words() []string {
	out := make([]string, len(k.words))
	copy(out, k.words)
	return out
}

// MaxLen returns the length in runes of the longest keyword.
func (k KeywordSet) MaxLen() int {
	return k.maxLen
}

func (k KeywordSet) startsKeyword(r rune) bool {
	_, ok := k.initials[r]
	return ok
}

func (k KeywordSet) contains(word string) bool {
	for _, w := range k.words {
		if w == word {
			return true
		}
	}
	return false
}

// ScanHTMLText consumes markup text, stopping before markup and expression
// delimiters and before a continuation keyword at the start of a line.
//
// matched reports whether any text was committed. keyword reports that the
// scan stopped on a keyword with nothing committed, in which case the
// keyword is left for the grammar.
func ScanHTMLText(lx Lexer, keywords KeywordSet) (matched bool, keyword bool) {
	hasContent := false
	atLineStart := true

	for !lx.EOF() {
		c := lx.Lookahead()

		if isTextTerminator(c) {
			break
		}

		if isLineTerminator(c) {
			lx.Advance()
			hasContent = true
			lx.MarkEnd()
			atLineStart = true
			continue
		}

		if atLineStart && (c == CharSpace || c == CharTab) {
			lx.Advance()
			hasContent = true
			lx.MarkEnd()
			continue
		}

		if atLineStart && keywords.startsKeyword(c) {
			lx.MarkEnd()
			if readKeyword(lx, keywords) {
				return hasContent, !hasContent
			}
			hasContent = true
			lx.MarkEnd()
			atLineStart = false
			continue
		}

		lx.Advance()
		hasContent = true
		lx.MarkEnd()
		atLineStart = false
	}

	return hasContent, false
}

// readKeyword consumes up to MaxLen identifier characters and reports
// whether they form a whole keyword.
func readKeyword(lx Lexer, keywords KeywordSet) bool {
	var sb strings.Builder
	n := 0
	for n < keywords.maxLen && IsIdentifierChar(lx.Lookahead()) {
		sb.WriteRune(lx.Lookahead())
		lx.Advance()
		n++
	}
	if IsIdentifierChar(lx.Lookahead()) {
		return false
	}
	return keywords.contains(sb.String())
}

func isTextTerminator(r rune) bool {
	switch r {
	case CharLess, CharAt, CharDot, CharOpenBracket, CharOpenParen, CharDoubleQuote, CharSingleQuote:
		return true
	}
	return false
}
