package razor

import (
	"context"
	"unicode/utf8"

	"go.uber.org/zap"
)

// Token is a scanned span of a document.
type Token struct {
	Kind  TokenKind
	Start int // byte offset, inclusive
	End   int // byte offset, exclusive
	Text  string
}

// Name returns the grammar name of the token kind.
func (t Token) Name() string {
	return t.Kind.String()
}

// TokenizeConfig controls a Tokenize walk.
type TokenizeConfig struct {
	// Policy chooses the requested kinds per step.
	// Default: DefaultRequestPolicy
	Policy RequestPolicy

	// Store receives a checkpoint every Interval tokens. Nil disables
	// checkpoints.
	Store CheckpointStore

	// Document names the source in Store. Required with Store.
	Document string

	// Interval is the number of tokens between checkpoints.
	// Default: 64
	Interval int

	// StartOffset is where the walk begins. The scanner state must be valid
	// at that offset.
	StartOffset int
}

func (c *TokenizeConfig) normalize(size int) error {
	if c.Policy == nil {
		c.Policy = DefaultRequestPolicy
	}
	if c.Interval < 0 {
		return NewInvalidOptionError(ErrMsgInvalidInterval, c.Interval)
	}
	if c.Interval == 0 {
		c.Interval = DefaultCheckpointInterval
	}
	if c.Store != nil && c.Document == "" {
		return NewCheckpointValidationError(ErrMsgEmptyDocument, "")
	}
	if c.StartOffset < 0 || c.StartOffset > size {
		return NewOffsetOutOfRangeError(c.StartOffset, size)
	}
	return nil
}

// Tokenize scans source with a new default Scanner.
func Tokenize(ctx context.Context, source string, opts ...Option) ([]Token, error) {
	s, err := New(opts...)
	if err != nil {
		return nil, err
	}
	defer s.Close()
	return s.Tokenize(ctx, source, TokenizeConfig{})
}

// Tokenize walks source from cfg.StartOffset to the end, asking the policy
// for the requested kinds at every step. Markup tags and positions no rule
// claims are merged into TokenUnmatched runs. The scanner state carries over
// from previous calls; use Deserialize or Restore to reset it.
func (s *Scanner) Tokenize(ctx context.Context, source string, cfg TokenizeConfig) ([]Token, error) {
	if s.closed {
		return nil, NewScannerClosedError()
	}
	if err := cfg.normalize(len(source)); err != nil {
		return nil, err
	}

	s.logger.Debug(LogMsgTokenizeStart,
		zap.Int(LogFieldSource, len(source)),
		zap.Int(LogFieldOffset, cfg.StartOffset))

	if cfg.Store != nil {
		if err := s.saveCheckpoint(ctx, cfg, cfg.StartOffset); err != nil {
			return nil, err
		}
	}

	lx := NewSourceLexer(source)
	var tokens []Token
	offset := cfg.StartOffset
	sinceCheckpoint := 0

	for offset < len(source) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		inLiteral := s.InLiteral()
		if s.stack.Empty() && !inLiteral {
			if n := markupTagLen(source, offset); n > 0 {
				tokens = appendUnmatched(tokens, source, offset, offset+n)
				offset += n
				continue
			}
		}

		lx.Reset(offset)
		valid := cfg.Policy(Step{
			Source:    source,
			Offset:    offset,
			Depth:     s.stack.Depth(),
			Top:       s.stack.Top(),
			InLiteral: inLiteral,
		})

		kind, ok := s.Scan(lx, valid)
		if !ok || lx.End() <= offset {
			_, width := utf8.DecodeRuneInString(source[offset:])
			tokens = appendUnmatched(tokens, source, offset, offset+width)
			offset += width
			continue
		}

		start, end := lx.Start(), lx.End()
		if start > offset {
			tokens = appendUnmatched(tokens, source, offset, start)
		}
		tokens = append(tokens, Token{Kind: kind, Start: start, End: end, Text: source[start:end]})
		offset = end

		sinceCheckpoint++
		if cfg.Store != nil && sinceCheckpoint >= cfg.Interval {
			if err := s.saveCheckpoint(ctx, cfg, offset); err != nil {
				return nil, err
			}
			sinceCheckpoint = 0
		}
	}

	s.logger.Debug(LogMsgTokenizeEnd, zap.Int(LogFieldTokens, len(tokens)))
	return tokens, nil
}

// Resume continues a walk from the nearest stored checkpoint at or before
// offset. It returns the tokens from the checkpoint to the end of source.
func (s *Scanner) Resume(ctx context.Context, source string, offset int, cfg TokenizeConfig) ([]Token, error) {
	if cfg.Store == nil || cfg.Document == "" {
		return nil, NewCheckpointValidationError(ErrMsgEmptyDocument, cfg.Document)
	}
	cp, err := cfg.Store.Nearest(ctx, cfg.Document, offset)
	if err != nil {
		return nil, err
	}
	if err := s.Restore(cp); err != nil {
		return nil, err
	}
	s.logger.Debug(LogMsgResume,
		zap.String(LogFieldDocument, cfg.Document),
		zap.Int(LogFieldOffset, cp.Offset))

	cfg.StartOffset = cp.Offset
	return s.Tokenize(ctx, source, cfg)
}

func (s *Scanner) saveCheckpoint(ctx context.Context, cfg TokenizeConfig, offset int) error {
	cp, err := s.Checkpoint(cfg.Document, offset)
	if err != nil {
		return err
	}
	if err := cfg.Store.Save(ctx, cp); err != nil {
		return err
	}
	s.logger.Debug(LogMsgCheckpointSaved,
		zap.String(LogFieldDocument, cfg.Document),
		zap.Int(LogFieldOffset, offset))
	return nil
}

func appendUnmatched(tokens []Token, source string, start, end int) []Token {
	if n := len(tokens); n > 0 && tokens[n-1].Kind == TokenUnmatched && tokens[n-1].End == start {
		tokens[n-1].End = end
		tokens[n-1].Text = source[tokens[n-1].Start:end]
		return tokens
	}
	return append(tokens, Token{Kind: TokenUnmatched, Start: start, End: end, Text: source[start:end]})
}
