package razor

import (
	"errors"
	"testing"

	"github.com/itsatony/go-cuserr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTokenKind(t *testing.T) {
	for _, name := range ExternalTokenNames() {
		kind, err := ParseTokenKind(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, kind.String())
	}

	_, err := ParseTokenKind("no_such_token")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgUnknownTokenKind)

	var customErr *cuserr.CustomError
	require.True(t, errors.As(err, &customErr))
	value, ok := customErr.GetMetadata(MetaKeyTokenKind)
	assert.True(t, ok)
	assert.Equal(t, "no_such_token", value)
}

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
		metaKey string
		meta    string
	}{
		{"invalid option", NewInvalidOptionError(ErrMsgInvalidMaxDepth, 300), ErrMsgInvalidMaxDepth, MetaKeyValue, "300"},
		{"invalid keyword", NewInvalidKeywordError("a b"), ErrMsgInvalidKeyword, MetaKeyKeyword, "a b"},
		{"config", NewConfigError(ErrMsgConfigRead, "razor.yaml", errors.New("boom")), ErrMsgConfigRead, MetaKeyPath, "razor.yaml"},
		{"state too large", NewStateTooLargeError(16), ErrMsgStateTooLarge, MetaKeyCapacity, "16"},
		{"driver not found", NewCheckpointDriverNotFoundError("redis"), ErrMsgDriverNotFound, MetaKeyDriver, "redis"},
		{"checkpoint validation", NewCheckpointValidationError(ErrMsgNegativeOffset, "page"), ErrMsgNegativeOffset, MetaKeyDocument, "page"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, tt.err)
			assert.Contains(t, tt.err.Error(), tt.message)

			var customErr *cuserr.CustomError
			require.True(t, errors.As(tt.err, &customErr))
			value, ok := customErr.GetMetadata(tt.metaKey)
			assert.True(t, ok)
			assert.Equal(t, tt.meta, value)
		})
	}
}

func TestErrorConstructors_Messages(t *testing.T) {
	assert.Contains(t, NewScannerClosedError().Error(), ErrMsgScannerClosed)
	assert.Contains(t, NewStoreClosedError().Error(), ErrMsgStoreClosed)
	assert.Contains(t, NewOffsetOutOfRangeError(9, 3).Error(), ErrMsgOffsetOutOfRange)
	assert.Contains(t, NewCheckpointNotFoundError("page", 4).Error(), ErrMsgCheckpointNotFound)
	assert.Contains(t, NewStorageError(ErrMsgPostgresQuery, errors.New("down")).Error(), ErrMsgPostgresQuery)
}
