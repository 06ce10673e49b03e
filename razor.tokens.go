package razor

import (
	"github.com/itsatony/go-cuserr"

	"github.com/itsatony/go-razor/internal"
)

// TokenKind identifies an external token. C# kinds come first; Razor kinds
// start at RazorTokenBase.
type TokenKind = internal.TokenKind

// ValidSymbols is the set of kinds the parser accepts at a position.
type ValidSymbols = internal.ValidSymbols

// Lexer is the lookahead cursor a scan step reads from.
type Lexer = internal.Lexer

// SourceLexer implements Lexer over an in-memory string.
type SourceLexer = internal.SourceLexer

// ContextKind is the kind of an open code region.
type ContextKind = internal.ContextKind

// ErrNestingTooDeep is recorded when a region cannot be opened because the
// context stack is full.
var ErrNestingTooDeep = internal.ErrNestingTooDeep

// DefaultMaxDepth is the deepest context nesting the persisted stack can
// describe.
const DefaultMaxDepth = internal.DefaultMaxDepth

// C# token kinds
const (
	TokenOptSemi                    = internal.TokenOptSemi
	TokenInterpolationRegularStart  = internal.TokenInterpolationRegularStart
	TokenInterpolationVerbatimStart = internal.TokenInterpolationVerbatimStart
	TokenInterpolationRawStart      = internal.TokenInterpolationRawStart
	TokenInterpolationStartQuote    = internal.TokenInterpolationStartQuote
	TokenInterpolationEndQuote      = internal.TokenInterpolationEndQuote
	TokenInterpolationOpenBrace     = internal.TokenInterpolationOpenBrace
	TokenInterpolationCloseBrace    = internal.TokenInterpolationCloseBrace
	TokenInterpolationStringContent = internal.TokenInterpolationStringContent
	TokenRawStringStart             = internal.TokenRawStringStart
	TokenRawStringEnd               = internal.TokenRawStringEnd
	TokenRawStringContent           = internal.TokenRawStringContent

	CSharpTokenCount = internal.CSharpTokenCount
	RazorTokenBase   = internal.RazorTokenBase
)

// Razor token kinds
const (
	TokenTextWithLiteralAt = internal.TokenTextWithLiteralAt
	TokenHTMLTextContent   = internal.TokenHTMLTextContent
	TokenCodeBlockStart    = internal.TokenCodeBlockStart
	TokenExplicitExprStart = internal.TokenExplicitExprStart
	TokenBlockOpen         = internal.TokenBlockOpen
	TokenContextClose      = internal.TokenContextClose
	TokenComment           = internal.TokenComment
	TokenPreproc           = internal.TokenPreproc
	TokenScriptContent     = internal.TokenScriptContent
	TokenStyleContent      = internal.TokenStyleContent
	TokenTitleContent      = internal.TokenTitleContent
	TokenTextareaContent   = internal.TokenTextareaContent

	TokenKindCount = internal.TokenKindCount
	TokenUnmatched = internal.TokenUnmatched
)

// Context kinds
const (
	ContextMarkup    = internal.ContextMarkup
	ContextCodeBrace = internal.ContextCodeBrace
	ContextCodeParen = internal.ContextCodeParen
)

// NewSourceLexer creates a cursor at the start of source.
func NewSourceLexer(source string) *SourceLexer {
	return internal.NewSourceLexer(source)
}

// NewValidSymbols builds a request set from kinds.
func NewValidSymbols(kinds ...TokenKind) ValidSymbols {
	return internal.NewValidSymbols(kinds...)
}

// AllSymbols requests every external kind.
func AllSymbols() ValidSymbols {
	v := make(ValidSymbols, TokenKindCount)
	for i := range v {
		v[i] = true
	}
	return v
}

// ExternalTokenNames returns the kind names in the order a grammar must
// declare its externals.
func ExternalTokenNames() []string {
	return internal.ExternalTokenNames()
}

// ParseTokenKind resolves a grammar token name.
func ParseTokenKind(name string) (TokenKind, error) {
	kind, ok := internal.LookupTokenKind(name)
	if !ok {
		return 0, cuserr.NewValidationError(ErrCodeScan, ErrMsgUnknownTokenKind).
			WithMetadata(MetaKeyTokenKind, name)
	}
	return kind, nil
}
