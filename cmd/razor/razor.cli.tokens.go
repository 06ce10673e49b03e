package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/itsatony/go-razor"
)

// tokensConfig holds parsed tokens command configuration
type tokensConfig struct {
	templatePath string
	outputPath   string
	format       string
	configPath   string
	all          bool
	verbose      bool
}

// tokenOutput represents one token in JSON output
type tokenOutput struct {
	Kind  string `json:"kind"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Text  string `json:"text"`
}

func runTokens(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseTokensFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgMissingTemplate, err)
		return ExitCodeUsageError
	}

	source, err := readInput(cfg.templatePath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
		return ExitCodeInputError
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

	store, err := fileCfg.OpenStore()
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgCheckpointFailed, err)
		return ExitCodeError
	}
	walk := razor.TokenizeConfig{Interval: fileCfg.Checkpoint.Interval}
	if store != nil {
		defer store.Close()
		walk.Store = store
		walk.Document = cfg.templatePath
	}

	tokens, err := scanner.Tokenize(context.Background(), string(source), walk)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgTokenizeFailed, err)
		return ExitCodeError
	}
	if !cfg.all {
		tokens = matchedTokens(tokens)
	}

	var out []byte
	if cfg.format == OutputFormatJSON {
		out, err = formatTokensJSON(tokens)
		if err != nil {
			fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgJSONMarshalFailed, err)
			return ExitCodeError
		}
	} else {
		out = formatTokensText(tokens)
	}

	if err := writeOutput(cfg.outputPath, out, stdout); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgWriteOutputFailed, err)
		return ExitCodeError
	}

	return ExitCodeSuccess
}

func parseTokensFlags(args []string) (*tokensConfig, error) {
	fs := flag.NewFlagSet(CmdNameTokens, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	cfg := &tokensConfig{}

	fs.StringVar(&cfg.templatePath, FlagTemplate, "", "")
	fs.StringVar(&cfg.templatePath, FlagTemplateShort, "", "")
	fs.StringVar(&cfg.outputPath, FlagOutput, FlagDefaultOutput, "")
	fs.StringVar(&cfg.outputPath, FlagOutputShort, FlagDefaultOutput, "")
	fs.StringVar(&cfg.format, FlagFormat, FlagDefaultFormat, "")
	fs.StringVar(&cfg.format, FlagFormatShort, FlagDefaultFormat, "")
	fs.StringVar(&cfg.configPath, FlagConfig, "", "")
	fs.StringVar(&cfg.configPath, FlagConfigShort, "", "")
	fs.BoolVar(&cfg.all, FlagAll, false, "")
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

func matchedTokens(tokens []razor.Token) []razor.Token {
	matched := tokens[:0:0]
	for _, tok := range tokens {
		if tok.Kind != razor.TokenUnmatched {
			matched = append(matched, tok)
		}
	}
	return matched
}

func formatTokensText(tokens []razor.Token) []byte {
	var buf bytes.Buffer
	for _, tok := range tokens {
		fmt.Fprintf(&buf, TokenTextFormat, tok.Start, tok.End, tok.Name(), tok.Text)
	}
	return buf.Bytes()
}

func formatTokensJSON(tokens []razor.Token) ([]byte, error) {
	output := make([]tokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, tokenOutput{
			Kind:  tok.Name(),
			Start: tok.Start,
			End:   tok.End,
			Text:  tok.Text,
		})
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(jsonBytes, FmtNewline...), nil
}
