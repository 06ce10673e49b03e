package razor

import (
	"strings"

	"github.com/itsatony/go-razor/internal"
)

// Step describes the position a RequestPolicy chooses kinds for.
type Step struct {
	Source    string
	Offset    int
	Depth     int
	Top       ContextKind
	InLiteral bool
}

// RequestPolicy chooses the kinds requested at a step. It stands in for the
// parse table of a real grammar.
type RequestPolicy func(Step) ValidSymbols

var csharpKinds = []TokenKind{
	TokenOptSemi,
	TokenInterpolationRegularStart,
	TokenInterpolationVerbatimStart,
	TokenInterpolationRawStart,
	TokenInterpolationStartQuote,
	TokenInterpolationEndQuote,
	TokenInterpolationOpenBrace,
	TokenInterpolationCloseBrace,
	TokenInterpolationStringContent,
	TokenRawStringStart,
	TokenRawStringEnd,
	TokenRawStringContent,
}

var markupKinds = []TokenKind{
	TokenTextWithLiteralAt,
	TokenHTMLTextContent,
	TokenCodeBlockStart,
	TokenExplicitExprStart,
}

var codeKinds = append([]TokenKind{
	TokenContextClose,
	TokenComment,
	TokenPreproc,
	TokenBlockOpen,
}, csharpKinds...)

// DefaultRequestPolicy requests:
//   - only the C# kinds inside a C# string literal
//   - only the matching content kind right after a raw element open tag
//   - markup kinds in markup mode
//   - code kinds in code mode, where every { opens a nested block
func DefaultRequestPolicy(step Step) ValidSymbols {
	if step.InLiteral {
		return NewValidSymbols(csharpKinds...)
	}
	if step.Depth == 0 {
		if el, ok := openRawElement(step.Source, step.Offset); ok {
			return NewValidSymbols(el.Kind)
		}
		return NewValidSymbols(markupKinds...)
	}
	return NewValidSymbols(codeKinds...)
}

// openRawElement reports whether the source just before offset is the
// open tag of a raw element.
func openRawElement(source string, offset int) (internal.RawElement, bool) {
	if offset <= 0 || offset > len(source) || source[offset-1] != '>' {
		return internal.RawElement{}, false
	}
	lt := strings.LastIndexByte(source[:offset-1], '<')
	if lt < 0 {
		return internal.RawElement{}, false
	}
	tag := source[lt+1 : offset-1]
	if strings.HasSuffix(tag, "/") {
		return internal.RawElement{}, false
	}
	end := 0
	for end < len(tag) && internal.IsIdentifierChar(rune(tag[end])) {
		end++
	}
	return internal.RawElementByTag(tag[:end])
}

// markupTagLen returns the length of the start or end tag at offset, or 0
// when there is none. Tags belong to the grammar, not to the external
// scanner.
func markupTagLen(source string, offset int) int {
	if offset >= len(source) || source[offset] != '<' {
		return 0
	}
	i := offset + 1
	if i < len(source) && source[i] == '/' {
		i++
	}
	if i >= len(source) || !internal.IsLetter(rune(source[i])) {
		return 0
	}
	end := strings.IndexByte(source[i:], '>')
	if end < 0 {
		return 0
	}
	return i + end + 1 - offset
}
