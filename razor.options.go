package razor

import (
	"go.uber.org/zap"

	"github.com/itsatony/go-razor/internal"
)

// Option is a functional option for configuring the Scanner.
type Option func(*scannerConfig)

// scannerConfig holds the internal configuration for a Scanner.
type scannerConfig struct {
	keywords   []string
	maxDepth   int
	bufferSize int
	sub        SubScanner
	logger     *zap.Logger
}

// defaultScannerConfig returns the default scanner configuration.
func defaultScannerConfig() *scannerConfig {
	return &scannerConfig{
		keywords:   internal.DefaultKeywordSet().Words(),
		maxDepth:   DefaultMaxDepth,
		bufferSize: DefaultBufferSize,
		sub:        nil,
		logger:     nil,
	}
}

// WithKeywords replaces the continuation keywords that markup text stops
// before at the start of a line.
// Default: else, catch, finally
func WithKeywords(words ...string) Option {
	return func(c *scannerConfig) {
		c.keywords = append([]string(nil), words...)
	}
}

// WithMaxDepth sets the maximum nesting of code regions.
// Default: 255
func WithMaxDepth(depth int) Option {
	return func(c *scannerConfig) {
		c.maxDepth = depth
	}
}

// WithBufferSize sets the capacity of the persisted state buffer.
// Default: 1024
func WithBufferSize(size int) Option {
	return func(c *scannerConfig) {
		c.bufferSize = size
	}
}

// WithSubScanner replaces the embedded C# scanner.
// Default: the built-in C# scanner
func WithSubScanner(sub SubScanner) Option {
	return func(c *scannerConfig) {
		c.sub = sub
	}
}

// WithLogger sets the logger for the scanner.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *scannerConfig) {
		c.logger = logger
	}
}

func (c *scannerConfig) validate() error {
	if c.maxDepth < 1 || c.maxDepth > DefaultMaxDepth {
		return NewInvalidOptionError(ErrMsgInvalidMaxDepth, c.maxDepth)
	}
	// The stack length byte must always fit.
	if c.bufferSize < stackLenSize {
		return NewInvalidOptionError(ErrMsgInvalidBufferSize, c.bufferSize)
	}
	for _, w := range c.keywords {
		if !internal.ValidKeyword(w) {
			return NewInvalidKeywordError(w)
		}
	}
	return nil
}
