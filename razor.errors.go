package razor

import (
	"fmt"
	"strconv"

	"github.com/itsatony/go-cuserr"
)

// NewInvalidOptionError creates an error for an out-of-range option value
func NewInvalidOptionError(msg string, value any) error {
	return cuserr.NewValidationError(ErrCodeConfig, msg).
		WithMetadata(MetaKeyValue, fmt.Sprintf("%v", value))
}

// NewInvalidKeywordError creates an error for a keyword that is not an
// identifier
func NewInvalidKeywordError(word string) error {
	return cuserr.NewValidationError(ErrCodeConfig, ErrMsgInvalidKeyword).
		WithMetadata(MetaKeyKeyword, word)
}

// NewConfigError creates a configuration error wrapping a read or decode
// failure
func NewConfigError(msg, path string, cause error) error {
	var err *cuserr.CustomError
	if cause != nil {
		err = cuserr.WrapStdError(cause, ErrCodeConfig, msg)
	} else {
		err = cuserr.NewValidationError(ErrCodeConfig, msg)
	}
	return err.WithMetadata(MetaKeyPath, path)
}

// NewStateTooLargeError creates an error for a state that exceeds the
// buffer capacity
func NewStateTooLargeError(capacity int) error {
	return cuserr.NewValidationError(ErrCodeScan, ErrMsgStateTooLarge).
		WithMetadata(MetaKeyCapacity, strconv.Itoa(capacity))
}

// NewScannerClosedError creates an error for use after Close
func NewScannerClosedError() error {
	return cuserr.NewValidationError(ErrCodeScan, ErrMsgScannerClosed)
}

// NewOffsetOutOfRangeError creates an error for an offset outside the source
func NewOffsetOutOfRangeError(offset, size int) error {
	return cuserr.NewValidationError(ErrCodeScan, ErrMsgOffsetOutOfRange).
		WithMetadata(MetaKeyOffset, strconv.Itoa(offset)).
		WithMetadata(MetaKeySize, strconv.Itoa(size))
}

// NewCheckpointDriverNotFoundError creates an error for an unregistered
// driver name
func NewCheckpointDriverNotFoundError(name string) error {
	return cuserr.NewNotFoundError(MetaKeyDriver, ErrMsgDriverNotFound).
		WithMetadata(MetaKeyDriver, name)
}

// NewCheckpointNotFoundError creates an error for a lookup with no
// checkpoint at or before the offset
func NewCheckpointNotFoundError(document string, offset int) error {
	return cuserr.NewNotFoundError(MetaKeyCheckpoint, ErrMsgCheckpointNotFound).
		WithMetadata(MetaKeyDocument, document).
		WithMetadata(MetaKeyOffset, strconv.Itoa(offset))
}

// NewCheckpointValidationError creates an error for a malformed checkpoint
// or lookup
func NewCheckpointValidationError(msg, document string) error {
	return cuserr.NewValidationError(ErrCodeCheckpoint, msg).
		WithMetadata(MetaKeyDocument, document)
}

// NewStoreClosedError creates an error for use of a closed store
func NewStoreClosedError() error {
	return cuserr.NewValidationError(ErrCodeStorage, ErrMsgStoreClosed)
}

// NewStorageError wraps a backend failure
func NewStorageError(msg string, cause error) error {
	if cause == nil {
		return cuserr.NewInternalError(ErrCodeStorage, nil).
			WithMetadata(MetaKeyValue, msg)
	}
	return cuserr.WrapStdError(cause, ErrCodeStorage, msg)
}
