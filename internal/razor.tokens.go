package internal

// TokenKind identifies an external token. The embedded C# scanner owns the
// first CSharpTokenCount kinds; Razor kinds follow starting at RazorTokenBase.
// The numeric values are part of the grammar contract.
type TokenKind uint16

// C# sub-scanner token kinds
const (
	TokenOptSemi TokenKind = iota
	TokenInterpolationRegularStart
	TokenInterpolationVerbatimStart
	TokenInterpolationRawStart
	TokenInterpolationStartQuote
	TokenInterpolationEndQuote
	TokenInterpolationOpenBrace
	TokenInterpolationCloseBrace
	TokenInterpolationStringContent
	TokenRawStringStart
	TokenRawStringEnd
	TokenRawStringContent

	// CSharpTokenCount is the number of kinds owned by the C# scanner.
	CSharpTokenCount
)

// RazorTokenBase is the first Razor token kind.
const RazorTokenBase = CSharpTokenCount

// Razor token kinds
const (
	TokenTextWithLiteralAt TokenKind = RazorTokenBase + iota
	TokenHTMLTextContent
	TokenCodeBlockStart
	TokenExplicitExprStart
	TokenBlockOpen
	TokenContextClose
	TokenComment
	TokenPreproc
	TokenScriptContent
	TokenStyleContent
	TokenTitleContent
	TokenTextareaContent

	// TokenKindCount is the total number of external token kinds.
	TokenKindCount
)

// TokenUnmatched marks source spans no rule claimed. It is never produced by
// a scan call and is outside the external enumeration.
const TokenUnmatched TokenKind = 0xFFFF

// Token kind names, in enumeration order, as declared by the grammar.
var tokenKindNames = [...]string{
	"opt_semi",
	"interpolation_regular_start",
	"interpolation_verbatim_start",
	"interpolation_raw_start",
	"interpolation_start_quote",
	"interpolation_end_quote",
	"interpolation_open_brace",
	"interpolation_close_brace",
	"interpolation_string_content",
	"raw_string_start",
	"raw_string_end",
	"raw_string_content",
	"text_with_literal_at",
	"html_text_content",
	"csharp_code_block_start",
	"csharp_explicit_expr_start",
	"razor_block_open",
	"csharp_context_close",
	"csharp_comment",
	"csharp_preproc",
	"script_content",
	"style_content",
	"title_content",
	"textarea_content",
}

// Fails to compile when the name table and the enumeration drift apart.
var _ = [1]struct{}{}[len(tokenKindNames)-int(TokenKindCount)]

// TokenNameUnmatched is the display name of TokenUnmatched.
const TokenNameUnmatched = "unmatched"

// String returns the grammar name of the kind.
func (k TokenKind) String() string {
	if k == TokenUnmatched {
		return TokenNameUnmatched
	}
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return TokenNameInvalid
}

// IsRazor reports whether the kind belongs to the Razor range.
func (k TokenKind) IsRazor() bool {
	return k >= RazorTokenBase && k < TokenKindCount
}

// ExternalTokenNames returns the kind names in enumeration order.
func ExternalTokenNames() []string {
	names := make([]string, len(tokenKindNames))
	copy(names, tokenKindNames[:])
	return names
}

// LookupTokenKind resolves a grammar name to its kind.
func LookupTokenKind(name string) (TokenKind, bool) {
	for i, n := range tokenKindNames {
		if n == name {
			return TokenKind(i), true
		}
	}
	return 0, false
}

// ValidSymbols is the set of kinds the parser accepts at the current
// position, indexed by TokenKind.
type ValidSymbols []bool

// NewValidSymbols builds a set containing the given kinds.
func NewValidSymbols(kinds ...TokenKind) ValidSymbols {
	v := make(ValidSymbols, TokenKindCount)
	for _, k := range kinds {
		if k < TokenKindCount {
			v[k] = true
		}
	}
	return v
}

// Has reports whether kind is requested.
func (v ValidSymbols) Has(kind TokenKind) bool {
	return int(kind) < len(v) && v[kind]
}

// Kinds lists the requested kinds in enumeration order.
func (v ValidSymbols) Kinds() []TokenKind {
	var kinds []TokenKind
	for i, ok := range v {
		if ok {
			kinds = append(kinds, TokenKind(i))
		}
	}
	return kinds
}
