package internal

// Character constants
const (
	CharAt          = '@'
	CharLess        = '<'
	CharSlash       = '/'
	CharStar        = '*'
	CharHash        = '#'
	CharDot         = '.'
	CharDash        = '-'
	CharUnderscore  = '_'
	CharOpenBrace   = '{'
	CharCloseBrace  = '}'
	CharOpenParen   = '('
	CharCloseParen  = ')'
	CharOpenBracket = '['
	CharDoubleQuote = '"'
	CharSingleQuote = '\''
	CharBackslash   = '\\'
	CharDollar      = '$'
	CharSemicolon   = ';'
	CharNewline     = '\n'
	CharCarriageRet = '\r'
	CharSpace       = ' '
	CharTab         = '\t'
)

// Raw element tag names
const (
	TagScript   = "script"
	TagStyle    = "style"
	TagTitle    = "title"
	TagTextarea = "textarea"
)

// Default continuation keywords recognized at line start in markup text
const (
	KeywordElse    = "else"
	KeywordCatch   = "catch"
	KeywordFinally = "finally"
)

// Context kind names
const (
	ContextNameMarkup    = "markup"
	ContextNameCodeBrace = "code_brace"
	ContextNameCodeParen = "code_paren"
	ContextNameInvalid   = "invalid"
)

// TokenNameInvalid is returned by TokenKind.String for out-of-range kinds.
const TokenNameInvalid = "invalid"

// DefaultMaxDepth is the deepest context nesting the one-byte length prefix
// of the persisted stack can describe.
const DefaultMaxDepth = 255

// Error messages
const (
	ErrMsgNestingTooDeep = "context nesting too deep"
)
