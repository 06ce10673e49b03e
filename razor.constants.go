package razor

import "time"

// Serialization limits
const (
	// DefaultBufferSize is the capacity of the persisted state buffer.
	DefaultBufferSize = 1024

	// stackLenSize is the size of the stack length prefix.
	stackLenSize = 1
)

// Checkpoint driver names
const (
	CheckpointDriverMemory   = "memory"
	CheckpointDriverPostgres = "postgres"
)

// PostgreSQL checkpoint store defaults
const (
	PostgresDefaultMaxOpenConns    = 10
	PostgresDefaultMaxIdleConns    = 2
	PostgresDefaultConnMaxLifetime = 5 * time.Minute
	PostgresDefaultConnMaxIdleTime = 5 * time.Minute
	PostgresDefaultQueryTimeout    = 30 * time.Second
	PostgresTablePrefix            = "razor_"
)

// Tokenize defaults
const (
	// DefaultCheckpointInterval is the number of tokens between checkpoints.
	DefaultCheckpointInterval = 64
)

// Error message constants
const (
	ErrMsgScannerClosed       = "scanner is closed"
	ErrMsgStateTooLarge       = "scanner state does not fit the buffer"
	ErrMsgInvalidMaxDepth     = "max depth must be between 1 and 255"
	ErrMsgInvalidBufferSize   = "buffer size too small"
	ErrMsgInvalidKeyword      = "keyword must be a non-empty identifier"
	ErrMsgNilSubScanner       = "sub-scanner cannot be nil"
	ErrMsgUnknownTokenKind    = "unknown token kind"
	ErrMsgConfigRead          = "failed to read config file"
	ErrMsgConfigParse         = "failed to parse config"
	ErrMsgInvalidInterval     = "checkpoint interval cannot be negative"
	ErrMsgNilCheckpointDriver = "checkpoint driver cannot be nil"
	ErrMsgDriverRegistered    = "checkpoint driver already registered"
	ErrMsgDriverNotFound      = "checkpoint driver not found"
	ErrMsgCheckpointNotFound  = "no checkpoint at or before offset"
	ErrMsgNilCheckpoint       = "checkpoint cannot be nil"
	ErrMsgEmptyDocument       = "document name cannot be empty"
	ErrMsgNegativeOffset      = "offset cannot be negative"
	ErrMsgStoreClosed         = "checkpoint store is closed"
	ErrMsgPostgresEmptyDSN    = "postgres connection string cannot be empty"
	ErrMsgPostgresConnect     = "failed to connect to postgres"
	ErrMsgPostgresQuery       = "postgres query failed"
	ErrMsgPostgresMigration   = "postgres migration failed"
	ErrMsgOffsetOutOfRange    = "offset out of range"
)

// Error code constants
const (
	ErrCodeScan       = "RAZOR_SCAN"
	ErrCodeConfig     = "RAZOR_CONFIG"
	ErrCodeCheckpoint = "RAZOR_CHECKPOINT"
	ErrCodeStorage    = "RAZOR_STORAGE"
)

// Error metadata keys
const (
	MetaKeyDriver     = "driver"
	MetaKeyDocument   = "document"
	MetaKeyOffset     = "offset"
	MetaKeyValue      = "value"
	MetaKeyPath       = "path"
	MetaKeyKeyword    = "keyword"
	MetaKeyTokenKind  = "token_kind"
	MetaKeySize       = "size"
	MetaKeyCapacity   = "capacity"
	MetaKeyCheckpoint = "checkpoint"
)

// Log messages
const (
	LogMsgScannerCreated  = "scanner created"
	LogMsgScannerClosed   = "scanner closed"
	LogMsgContextPush     = "context pushed"
	LogMsgContextPop      = "context popped"
	LogMsgNestingTooDeep  = "context nesting too deep, region not opened"
	LogMsgSerializeFailed = "scanner state does not fit buffer"
	LogMsgStateRestored   = "scanner state restored"
	LogMsgTokenizeStart   = "starting tokenization"
	LogMsgTokenizeEnd     = "tokenization complete"
	LogMsgCheckpointSaved = "checkpoint saved"
	LogMsgResume          = "resuming from checkpoint"
)

// Log field names
const (
	LogFieldDepth        = "depth"
	LogFieldContext      = "context"
	LogFieldOffset       = "offset"
	LogFieldSize         = "size"
	LogFieldCapacity     = "capacity"
	LogFieldSubStateFits = "sub_state_fits"
	LogFieldTokens       = "tokens"
	LogFieldSource       = "source"
	LogFieldDocument     = "document"
	LogFieldKeywords     = "keywords"
)
