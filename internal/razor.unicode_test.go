package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifier(t *testing.T) {
	tests := []struct {
		name       string
		r          rune
		letter     bool
		word       bool
		identifier bool
	}{
		{"ascii lower", 'q', true, true, true},
		{"ascii upper", 'Q', true, true, true},
		{"digit", '7', false, true, true},
		{"underscore", '_', false, false, true},
		{"latin-1 letter", 'é', true, true, true},
		{"multiplication sign", '×', false, false, false},
		{"division sign", '÷', false, false, false},
		{"greek", 'λ', true, true, true},
		{"cyrillic", 'ж', true, true, true},
		{"hebrew", 'ש', true, true, true},
		{"devanagari", 'क', true, true, true},
		{"hiragana", 'あ', true, true, true},
		{"cjk", '中', true, true, true},
		{"hangul", '한', true, true, true},
		{"at sign", '@', false, false, false},
		{"dot", '.', false, false, false},
		{"space", ' ', false, false, false},
		{"emoji", '😀', false, false, false},
		{"nul", 0, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.letter, IsLetter(tt.r))
			assert.Equal(t, tt.word, IsWordChar(tt.r))
			assert.Equal(t, tt.identifier, IsIdentifierChar(tt.r))
		})
	}
}

func TestIsDigit_ASCIIOnly(t *testing.T) {
	assert.True(t, IsDigit('0'))
	assert.True(t, IsDigit('9'))
	assert.False(t, IsDigit('a'))
	assert.False(t, IsDigit('٣'))
}

func TestToLowerASCII(t *testing.T) {
	assert.Equal(t, 's', toLowerASCII('S'))
	assert.Equal(t, 's', toLowerASCII('s'))
	assert.Equal(t, 'É', toLowerASCII('É'))
}
