package razor

import (
	"go.uber.org/zap"

	"github.com/itsatony/go-razor/internal"
)

// SubScanner is the embedded C# scanner. The Scanner only drives its
// lifecycle and never inspects its state bytes.
//
// Serialize reports false when the state does not fit buf; a zero count
// with true is a valid empty state. StateSize reports how many leading bytes
// of a persisted buffer belong to the sub-scanner, so the Razor section that
// follows can be located.
type SubScanner interface {
	Scan(lx Lexer, valid ValidSymbols) (TokenKind, bool)
	Serialize(buf []byte) (int, bool)
	Deserialize(buf []byte)
	StateSize(buf []byte) int
	Close() error
}

// literalScanner is implemented by sub-scanners that can report being
// inside a string literal or interpolation hole.
type literalScanner interface {
	InLiteral() bool
}

// Scanner is the Razor external scanner. A Scanner is not safe for
// concurrent use.
type Scanner struct {
	stack      *internal.ContextStack
	sub        SubScanner
	keywords   internal.KeywordSet
	bufferSize int
	logger     *zap.Logger
	err        error
	closed     bool
}

// New creates a Scanner in markup mode.
func New(opts ...Option) (*Scanner, error) {
	config := defaultScannerConfig()
	for _, opt := range opts {
		opt(config)
	}
	if err := config.validate(); err != nil {
		return nil, err
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}
	sub := config.sub
	if sub == nil {
		sub = internal.NewCSharpScanner()
	}

	s := &Scanner{
		stack:      internal.NewContextStack(config.maxDepth),
		sub:        sub,
		keywords:   internal.NewKeywordSet(config.keywords...),
		bufferSize: config.bufferSize,
		logger:     logger,
	}
	logger.Debug(LogMsgScannerCreated,
		zap.Int(LogFieldDepth, config.maxDepth),
		zap.Strings(LogFieldKeywords, config.keywords))
	return s, nil
}

// MustNew creates a Scanner or panics.
func MustNew(opts ...Option) *Scanner {
	s, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Close releases the sub-scanner. Close is idempotent.
func (s *Scanner) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.stack.Reset()
	s.logger.Debug(LogMsgScannerClosed)
	return s.sub.Close()
}

// Depth returns the number of open code regions.
func (s *Scanner) Depth() int {
	return s.stack.Depth()
}

// InCode reports whether the scanner is inside a code region.
func (s *Scanner) InCode() bool {
	return !s.stack.Empty()
}

// Top returns the innermost open region, or ContextMarkup.
func (s *Scanner) Top() ContextKind {
	return s.stack.Top()
}

// Contexts returns the open regions, outermost first.
func (s *Scanner) Contexts() []ContextKind {
	return s.stack.Frames()
}

// InLiteral reports whether the sub-scanner is inside a string literal.
// Sub-scanners that cannot tell report false.
func (s *Scanner) InLiteral() bool {
	if ls, ok := s.sub.(literalScanner); ok {
		return ls.InLiteral()
	}
	return false
}

// Err returns the error recorded by the last Scan call, if any. The only
// recorded error is ErrNestingTooDeep.
func (s *Scanner) Err() error {
	return s.err
}

// Capacity returns the persisted buffer capacity.
func (s *Scanner) Capacity() int {
	return s.bufferSize
}

// Scan recognizes at most one external token at the cursor. The rules run
// in a fixed order and the first success wins; between rules the cursor is
// rewound to the token start. A closed scanner never matches.
func (s *Scanner) Scan(lx Lexer, valid ValidSymbols) (TokenKind, bool) {
	s.err = nil
	if s.closed {
		return 0, false
	}
	inCode := !s.stack.Empty()

	if !inCode && valid.Has(TokenTextWithLiteralAt) {
		if internal.ScanLiteralAt(lx) {
			return TokenTextWithLiteralAt, true
		}
		lx.Rewind()
	}

	if !inCode && valid.Has(TokenHTMLTextContent) {
		matched, keyword := internal.ScanHTMLText(lx, s.keywords)
		if matched {
			return TokenHTMLTextContent, true
		}
		if keyword {
			return 0, false
		}
		lx.Rewind()
	}

	kind, ok, err := internal.ScanRegionEnter(lx, valid, s.stack)
	if err != nil {
		s.err = err
		s.logger.Warn(LogMsgNestingTooDeep, zap.Int(LogFieldDepth, s.stack.Depth()))
		return 0, false
	}
	if ok {
		s.logger.Debug(LogMsgContextPush,
			zap.Stringer(LogFieldContext, s.stack.Top()),
			zap.Int(LogFieldDepth, s.stack.Depth()))
		return kind, true
	}
	lx.Rewind()

	top := s.stack.Top()
	if kind, ok := internal.ScanRegionExit(lx, valid, s.stack); ok {
		s.logger.Debug(LogMsgContextPop,
			zap.Stringer(LogFieldContext, top),
			zap.Int(LogFieldDepth, s.stack.Depth()))
		return kind, true
	}
	lx.Rewind()

	if inCode {
		if valid.Has(TokenComment) {
			if internal.ScanComment(lx) {
				return TokenComment, true
			}
			lx.Rewind()
		}
		if valid.Has(TokenPreproc) {
			if internal.ScanPreproc(lx) {
				return TokenPreproc, true
			}
			lx.Rewind()
		}
	}

	for _, el := range internal.RawElements {
		if valid.Has(el.Kind) {
			return el.Kind, internal.ScanRawText(lx, el.Tag)
		}
	}

	return s.sub.Scan(lx, valid)
}

// Serialize writes the scanner state into buf and returns the number of
// bytes written. It returns 0 when the state does not fit the capacity,
// which is the smaller of len(buf) and the configured buffer size. A closed
// scanner writes nothing.
func (s *Scanner) Serialize(buf []byte) int {
	if s.closed {
		return 0
	}
	if len(buf) > s.bufferSize {
		buf = buf[:s.bufferSize]
	}

	n, ok := s.sub.Serialize(buf)
	frames := s.stack.Bytes()
	size := n + stackLenSize + len(frames)
	if !ok || size > len(buf) || len(frames) > DefaultMaxDepth {
		s.logger.Warn(LogMsgSerializeFailed,
			zap.Int(LogFieldSize, size),
			zap.Int(LogFieldCapacity, len(buf)),
			zap.Bool(LogFieldSubStateFits, ok))
		return 0
	}

	buf[n] = byte(len(frames))
	copy(buf[n+stackLenSize:], frames)
	return size
}

// Deserialize restores the state written by Serialize. An empty buffer
// resets the scanner to markup mode with a fresh sub-scanner state. A
// truncated stack section restores only the frames present.
func (s *Scanner) Deserialize(buf []byte) {
	s.stack.Reset()
	s.err = nil

	if len(buf) == 0 {
		s.sub.Deserialize(nil)
		return
	}

	subSize := s.sub.StateSize(buf)
	if subSize > len(buf) {
		subSize = len(buf)
	}
	s.sub.Deserialize(buf[:subSize])

	rest := buf[subSize:]
	if len(rest) < stackLenSize {
		return
	}
	count := int(rest[0])
	frames := rest[stackLenSize:]
	if count < len(frames) {
		frames = frames[:count]
	}
	s.stack.Restore(frames)

	s.logger.Debug(LogMsgStateRestored, zap.Int(LogFieldDepth, s.stack.Depth()))
}

// Snapshot returns a copy of the serialized state.
func (s *Scanner) Snapshot() ([]byte, error) {
	if s.closed {
		return nil, NewScannerClosedError()
	}
	buf := make([]byte, s.bufferSize)
	n := s.Serialize(buf)
	if n == 0 {
		return nil, NewStateTooLargeError(s.bufferSize)
	}
	return buf[:n], nil
}
