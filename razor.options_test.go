package razor

import (
	"errors"
	"testing"

	"github.com/itsatony/go-cuserr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidOptions(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		message string
		metaKey string
		meta    string
	}{
		{"zero depth", []Option{WithMaxDepth(0)}, ErrMsgInvalidMaxDepth, MetaKeyValue, "0"},
		{"depth too large", []Option{WithMaxDepth(256)}, ErrMsgInvalidMaxDepth, MetaKeyValue, "256"},
		{"zero buffer", []Option{WithBufferSize(0)}, ErrMsgInvalidBufferSize, MetaKeyValue, "0"},
		{"bad keyword", []Option{WithKeywords("else", "end if")}, ErrMsgInvalidKeyword, MetaKeyKeyword, "end if"},
		{"empty keyword", []Option{WithKeywords("")}, ErrMsgInvalidKeyword, MetaKeyKeyword, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.opts...)
			require.Error(t, err)
			assert.Nil(t, s)
			assert.Contains(t, err.Error(), tt.message)

			var customErr *cuserr.CustomError
			require.True(t, errors.As(err, &customErr))
			value, ok := customErr.GetMetadata(tt.metaKey)
			assert.True(t, ok)
			assert.Equal(t, tt.meta, value)
		})
	}
}

func TestMustNew_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustNew(WithMaxDepth(-1))
	})
}

func TestNew_ValidOptions(t *testing.T) {
	s, err := New(
		WithMaxDepth(4),
		WithBufferSize(64),
		WithKeywords("when", "otherwise"),
		WithLogger(nil),
	)
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, 64, s.Capacity())
	assert.Equal(t, []string{"when", "otherwise"}, s.keywords.Words())
	assert.Equal(t, 4, s.stack.MaxDepth())
}

func TestWithKeywords_CopiesInput(t *testing.T) {
	words := []string{"when"}
	s := MustNew(WithKeywords(words...))
	defer s.Close()

	words[0] = "changed"
	assert.Equal(t, []string{"when"}, s.keywords.Words())
}

func TestWithKeywords_Empty(t *testing.T) {
	s := MustNew(WithKeywords())
	defer s.Close()

	_, ok, _ := scanAt(s, "else x", 0, TokenHTMLTextContent)
	assert.True(t, ok, "no keywords means text runs through else")
}
