package internal

// RawElement is an element whose body is scanned as raw text up to its
// closing tag.
type RawElement struct {
	Tag  string // lower-case tag name
	Kind TokenKind
}

// RawElements lists the raw elements in scan priority order.
var RawElements = []RawElement{
	{Tag: TagScript, Kind: TokenScriptContent},
	{Tag: TagStyle, Kind: TokenStyleContent},
	{Tag: TagTitle, Kind: TokenTitleContent},
	{Tag: TagTextarea, Kind: TokenTextareaContent},
}

// RawElementByTag returns the raw element for a tag name, ignoring ASCII case.
func RawElementByTag(tag string) (RawElement, bool) {
	for _, el := range RawElements {
		if equalFoldASCII(el.Tag, tag) {
			return el, true
		}
	}
	return RawElement{}, false
}

// ScanRawText consumes element content up to, but not including, the
// closing tag </tag. It reports false when no content was committed, which
// includes the case of the closing tag sitting at the cursor.
func ScanRawText(lx Lexer, tag string) bool {
	hasContent := false

	for !lx.EOF() {
		if lx.Lookahead() != CharLess {
			lx.Advance()
			hasContent = true
			lx.MarkEnd()
			continue
		}

		// The end stays before '<' unless this turns out not to be the tag.
		lx.MarkEnd()
		lx.Advance()
		if lx.Lookahead() == CharSlash {
			lx.Advance()
			if matchTagName(lx, tag) {
				break
			}
		}

		hasContent = true
		lx.MarkEnd()
	}

	return hasContent
}

// matchTagName consumes the characters of tag while they match and reports
// whether all of them did and are followed by a non-identifier character.
func matchTagName(lx Lexer, tag string) bool {
	for i := 0; i < len(tag); i++ {
		if toLowerASCII(lx.Lookahead()) != rune(tag[i]) {
			return false
		}
		lx.Advance()
	}
	return !IsIdentifierChar(lx.Lookahead())
}

func equalFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if toLowerASCII(rune(a[i])) != toLowerASCII(rune(b[i])) {
			return false
		}
	}
	return true
}
