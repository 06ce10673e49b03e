package main

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/itsatony/go-razor"
)

// stateConfig holds parsed state command configuration
type stateConfig struct {
	templatePath string
	offset       int
	format       string
	configPath   string
	verbose      bool
}

// stateOutput represents JSON output for state
type stateOutput struct {
	Offset    int      `json:"offset"`
	Depth     int      `json:"depth"`
	Contexts  []string `json:"contexts"`
	InLiteral bool     `json:"in_literal"`
	State     string   `json:"state"`
}

func runState(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseStateFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgMissingTemplate, err)
		return ExitCodeUsageError
	}

	source, err := readInput(cfg.templatePath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
		return ExitCodeInputError
	}

	offset := cfg.offset
	if offset == FlagDefaultOffset {
		offset = len(source)
	}
	if offset < 0 || offset > len(source) {
		fmt.Fprintf(stderr, FmtErrorWithDetail, ErrMsgInvalidOffset, fmt.Sprint(cfg.offset))
		return ExitCodeUsageError
	}

	fileCfg, err := loadConfig(cfg.configPath)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgConfigFailed, err)
		return ExitCodeValidationError
	}

	logger := newLogger(cfg.verbose, stderr)
	defer func() { _ = logger.Sync() }()

	scanner, err := razor.New(append(fileCfg.Options(), razor.WithLogger(logger))...)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgScannerFailed, err)
		return ExitCodeValidationError
	}
	defer scanner.Close()

	if _, err := scanner.Tokenize(context.Background(), string(source[:offset]), razor.TokenizeConfig{}); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgTokenizeFailed, err)
		return ExitCodeError
	}

	state, err := scanner.Snapshot()
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgSnapshotFailed, err)
		return ExitCodeError
	}

	output := stateOutput{
		Offset:    offset,
		Depth:     scanner.Depth(),
		Contexts:  contextNames(scanner.Contexts()),
		InLiteral: scanner.InLiteral(),
		State:     hex.EncodeToString(state),
	}

	if cfg.format == OutputFormatJSON {
		jsonBytes, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgJSONMarshalFailed, err)
			return ExitCodeError
		}
		fmt.Fprintln(stdout, string(jsonBytes))
		return ExitCodeSuccess
	}

	contexts := ContextsNone
	if len(output.Contexts) > 0 {
		contexts = strings.Join(output.Contexts, ContextsSeparator)
	}
	fmt.Fprintf(stdout, StateTextTemplate,
		output.Offset, output.Depth, contexts, output.InLiteral, output.State)
	return ExitCodeSuccess
}

func parseStateFlags(args []string) (*stateConfig, error) {
	fs := flag.NewFlagSet(CmdNameState, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	cfg := &stateConfig{}

	fs.StringVar(&cfg.templatePath, FlagTemplate, "", "")
	fs.StringVar(&cfg.templatePath, FlagTemplateShort, "", "")
	fs.IntVar(&cfg.offset, FlagOffset, FlagDefaultOffset, "")
	fs.StringVar(&cfg.format, FlagFormat, FlagDefaultFormat, "")
	fs.StringVar(&cfg.format, FlagFormatShort, FlagDefaultFormat, "")
	fs.StringVar(&cfg.configPath, FlagConfig, "", "")
	fs.StringVar(&cfg.configPath, FlagConfigShort, "", "")
	fs.BoolVar(&cfg.verbose, FlagVerbose, false, "")
	fs.BoolVar(&cfg.verbose, FlagVerboseShort, false, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.templatePath == "" {
		return nil, errors.New(ErrMsgMissingTemplate)
	}
	if cfg.format != OutputFormatText && cfg.format != OutputFormatJSON {
		return nil, errors.New(ErrMsgInvalidFormat)
	}

	return cfg, nil
}

func contextNames(kinds []razor.ContextKind) []string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return names
}
