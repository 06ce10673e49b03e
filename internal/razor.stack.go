package internal

import "errors"

// ErrNestingTooDeep is returned by ContextStack.Push when the stack is full.
var ErrNestingTooDeep = errors.New(ErrMsgNestingTooDeep)

// ContextKind is the kind of an open code region. The values are the bytes
// written to the persisted stack.
type ContextKind byte

// Context kinds
const (
	ContextMarkup    ContextKind = 0
	ContextCodeBrace ContextKind = 1 // @{ } or a block { }
	ContextCodeParen ContextKind = 2 // @( )
)

// String returns the context name.
func (k ContextKind) String() string {
	switch k {
	case ContextMarkup:
		return ContextNameMarkup
	case ContextCodeBrace:
		return ContextNameCodeBrace
	case ContextCodeParen:
		return ContextNameCodeParen
	default:
		return ContextNameInvalid
	}
}

// Closer returns the delimiter that ends a region of this kind, or 0.
func (k ContextKind) Closer() rune {
	switch k {
	case ContextCodeBrace:
		return CharCloseBrace
	case ContextCodeParen:
		return CharCloseParen
	default:
		return 0
	}
}

// ContextStack records the nested code regions. An empty stack is markup
// mode.
type ContextStack struct {
	frames   []ContextKind
	maxDepth int
}

// NewContextStack creates an empty stack holding at most maxDepth frames.
// A non-positive maxDepth selects DefaultMaxDepth.
func NewContextStack(maxDepth int) *ContextStack {
	if maxDepth <= 0 || maxDepth > DefaultMaxDepth {
		maxDepth = DefaultMaxDepth
	}
	return &ContextStack{maxDepth: maxDepth}
}

// Push opens a region of the given kind.
func (s *ContextStack) Push(kind ContextKind) error {
	if len(s.frames) >= s.maxDepth {
		return ErrNestingTooDeep
	}
	s.frames = append(s.frames, kind)
	return nil
}

// Pop closes the innermost region. It reports false on an empty stack.
func (s *ContextStack) Pop() (ContextKind, bool) {
	if len(s.frames) == 0 {
		return ContextMarkup, false
	}
	top := s.frames[len(s.frames)-1]
	s.frames = s.frames[:len(s.frames)-1]
	return top, true
}

// Top returns the innermost region, or ContextMarkup when empty.
func (s *ContextStack) Top() ContextKind {
	if len(s.frames) == 0 {
		return ContextMarkup
	}
	return s.frames[len(s.frames)-1]
}

// Depth returns the number of open regions.
func (s *ContextStack) Depth() int {
	return len(s.frames)
}

// Empty reports markup mode.
func (s *ContextStack) Empty() bool {
	return len(s.frames) == 0
}

// MaxDepth returns the configured depth limit.
func (s *ContextStack) MaxDepth() int {
	return s.maxDepth
}

// Frames returns a copy of the frames, outermost first.
func (s *ContextStack) Frames() []ContextKind {
	out := make([]ContextKind, len(s.frames))
	copy(out, s.frames)
	return out
}

// Bytes returns the persisted form of the frames.
func (s *ContextStack) Bytes() []byte {
	out := make([]byte, len(s.frames))
	for i, f := range s.frames {
		out[i] = byte(f)
	}
	return out
}

// Restore replaces the frames with the persisted bytes, keeping at most
// MaxDepth of them. Restoring stops at the first byte that is not a code
// region kind.
func (s *ContextStack) Restore(data []byte) {
	s.frames = s.frames[:0]
	if len(data) > s.maxDepth {
		data = data[:s.maxDepth]
	}
	for _, b := range data {
		kind := ContextKind(b)
		if kind.Closer() == 0 {
			break
		}
		s.frames = append(s.frames, kind)
	}
}

// Reset empties the stack.
func (s *ContextStack) Reset() {
	s.frames = s.frames[:0]
}
