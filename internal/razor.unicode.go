package internal

import "unicode"

// letterTable approximates the Unicode letter categories with the blocks of
// the most common scripts. Latin-1 excludes U+00D7 and U+00F7.
var letterTable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 'A', Hi: 'Z', Stride: 1},
		{Lo: 'a', Hi: 'z', Stride: 1},
		{Lo: 0x00C0, Hi: 0x00D6, Stride: 1},
		{Lo: 0x00D8, Hi: 0x00F6, Stride: 1},
		{Lo: 0x00F8, Hi: 0x024F, Stride: 1}, // Latin-1 tail, Latin Extended-A and -B
		{Lo: 0x0370, Hi: 0x03FF, Stride: 1}, // Greek and Coptic
		{Lo: 0x0400, Hi: 0x04FF, Stride: 1}, // Cyrillic
		{Lo: 0x0590, Hi: 0x05FF, Stride: 1}, // Hebrew
		{Lo: 0x0600, Hi: 0x06FF, Stride: 1}, // Arabic
		{Lo: 0x0900, Hi: 0x097F, Stride: 1}, // Devanagari
		{Lo: 0x0E00, Hi: 0x0E7F, Stride: 1}, // Thai
		{Lo: 0x3040, Hi: 0x309F, Stride: 1}, // Hiragana
		{Lo: 0x30A0, Hi: 0x30FF, Stride: 1}, // Katakana
		{Lo: 0x4E00, Hi: 0x9FFF, Stride: 1}, // CJK Unified Ideographs
		{Lo: 0xAC00, Hi: 0xD7AF, Stride: 1}, // Hangul Syllables
	},
	LatinOffset: 4,
}

// IsLetter reports whether r is a letter in one of the covered scripts.
func IsLetter(r rune) bool {
	return unicode.Is(letterTable, r)
}

// IsDigit reports whether r is an ASCII decimal digit.
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsWordChar reports whether r is a letter or digit. Used for literal-@
// detection.
func IsWordChar(r rune) bool {
	return IsLetter(r) || IsDigit(r)
}

// IsIdentifierChar reports whether r can be part of a C# identifier.
func IsIdentifierChar(r rune) bool {
	return IsWordChar(r) || r == CharUnderscore
}

// isSpace mirrors iswspace for whitespace skipping.
func isSpace(r rune) bool {
	return unicode.IsSpace(r)
}

func isLineTerminator(r rune) bool {
	return r == CharNewline || r == CharCarriageRet
}

func toLowerASCII(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
