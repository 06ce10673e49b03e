package main

// Command names
const (
	CmdNameTokens  = "tokens"
	CmdNameState   = "state"
	CmdNameVersion = "version"
	CmdNameHelp    = "help"
)

// Flag names - long form
const (
	FlagTemplate = "template"
	FlagOutput   = "output"
	FlagFormat   = "format"
	FlagConfig   = "config"
	FlagVerbose  = "verbose"
	FlagOffset   = "offset"
	FlagAll      = "all"
)

// Flag names - short form
const (
	FlagTemplateShort = "t"
	FlagOutputShort   = "o"
	FlagFormatShort   = "F"
	FlagConfigShort   = "c"
	FlagVerboseShort  = "v"
)

// Flag default values
const (
	FlagDefaultOutput = "-" // stdout
	FlagDefaultFormat = "text"
	FlagDefaultOffset = -1 // end of input
)

// Output formats
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
)

// Exit codes
const (
	ExitCodeSuccess         = 0
	ExitCodeError           = 1
	ExitCodeUsageError      = 2
	ExitCodeValidationError = 3
	ExitCodeInputError      = 4
)

// Input source indicators
const (
	InputSourceStdin = "-"
)

// Error messages - ALL must be constants
const (
	ErrMsgUnknownCommand     = "unknown command"
	ErrMsgMissingTemplate    = "template source required"
	ErrMsgReadFileFailed     = "failed to read file"
	ErrMsgWriteOutputFailed  = "failed to write output"
	ErrMsgInvalidFormat      = "invalid output format"
	ErrMsgInvalidOffset      = "offset outside the template"
	ErrMsgConfigFailed       = "failed to load configuration"
	ErrMsgScannerFailed      = "failed to create scanner"
	ErrMsgTokenizeFailed     = "tokenization failed"
	ErrMsgCheckpointFailed   = "failed to open checkpoint store"
	ErrMsgSnapshotFailed     = "failed to serialize scanner state"
	ErrMsgJSONMarshalFailed  = "failed to marshal JSON"
)

// Help text templates
const (
	HelpMainUsage = `go-razor - Razor template tokenizer CLI

Usage:
    razor <command> [options]

Commands:
    tokens      Tokenize a template and print the external tokens
    state       Print the serialized scanner state at an offset
    version     Show version information
    help        Show help for a command

Use "razor help <command>" for more information about a command.`

	HelpTokensUsage = `Tokenize a template and print the external tokens

Usage:
    razor tokens [options]

Options:
    -t, --template <file>   Template file (use "-" for stdin)
    -F, --format <format>   Output format: text, json (default: text)
    -c, --config <file>     YAML scanner configuration
    -o, --output <file>     Output file (default: stdout)
    --all                   Include unmatched runs
    -v, --verbose           Log scanner activity to stderr

Examples:
    razor tokens -t Index.cshtml
    razor tokens -t Index.cshtml -F json --all
    cat Index.cshtml | razor tokens -t - -c razor.yaml`

	HelpStateUsage = `Print the serialized scanner state at an offset

Usage:
    razor state [options]

Options:
    -t, --template <file>   Template file (use "-" for stdin)
    --offset <n>            Byte offset (default: end of input)
    -F, --format <format>   Output format: text, json (default: text)
    -c, --config <file>     YAML scanner configuration
    -v, --verbose           Log scanner activity to stderr

Examples:
    razor state -t Index.cshtml --offset 120
    razor state -t Index.cshtml -F json`

	HelpVersionUsage = `Show version information

Usage:
    razor version [options]

Options:
    -F, --format <format>   Output format: text, json (default: text)`

	HelpHelpUsage = `Show help for a command

Usage:
    razor help [command]

Commands:
    tokens      Show help for tokens command
    state       Show help for state command
    version     Show help for version command`
)

// Version output format templates
const (
	VersionTextTemplate = "go-razor version %s\nCommit: %s\nBranch: %s\nBuilt: %s\nGo: %s"
	VersionUnknown      = "unknown"
)

// Tokens and state output format templates
const (
	TokenTextFormat   = "%d:%d\t%s\t%q\n"
	StateTextTemplate = "offset: %d\ndepth: %d\ncontexts: %s\nin_literal: %t\nstate: %s\n"
	ContextsSeparator = ","
	ContextsNone      = "-"
)

// CLI metadata
const (
	CLIName        = "razor"
	CLIDescription = "Razor template tokenizer CLI"
)

// File permission constant
const (
	FilePermissions = 0644
)

// Format string constants
const (
	FmtErrorWithDetail = "%s: %s\n"
	FmtErrorWithCause  = "%s: %v\n"
	FmtNewline         = "\n"
)
