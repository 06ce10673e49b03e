package razor

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tokenizeSample = "<p>Hi @(name)!</p>\n<script>let a = 1;</script>\n@{ var x = 1; }"

type kindText struct {
	kind TokenKind
	text string
}

func kindTexts(tokens []Token) []kindText {
	out := make([]kindText, len(tokens))
	for i, tok := range tokens {
		out[i] = kindText{tok.Kind, tok.Text}
	}
	return out
}

func joinTokens(tokens []Token) string {
	var sb strings.Builder
	for _, tok := range tokens {
		sb.WriteString(tok.Text)
	}
	return sb.String()
}

func TestTokenize_Document(t *testing.T) {
	tokens, err := Tokenize(context.Background(), tokenizeSample)
	require.NoError(t, err)

	expected := []kindText{
		{TokenUnmatched, "<p>"},
		{TokenHTMLTextContent, "Hi "},
		{TokenExplicitExprStart, "@("},
		{TokenUnmatched, "name"},
		{TokenContextClose, ")"},
		{TokenHTMLTextContent, "!"},
		{TokenUnmatched, "</p>"},
		{TokenHTMLTextContent, "\n"},
		{TokenUnmatched, "<script>"},
		{TokenScriptContent, "let a = 1;"},
		{TokenUnmatched, "</script>"},
		{TokenHTMLTextContent, "\n"},
		{TokenCodeBlockStart, "@{"},
		{TokenUnmatched, " var x = 1"},
		{TokenOptSemi, ";"},
		{TokenUnmatched, " "},
		{TokenContextClose, "}"},
	}
	assert.Equal(t, expected, kindTexts(tokens))
	assert.Equal(t, tokenizeSample, joinTokens(tokens))
}

func TestTokenize_Coverage(t *testing.T) {
	sources := []string{
		"",
		"Contact: user@example.com<br>",
		`@{ var s = $"a{b}c"; }`,
		"<style>p { color: red; }</style>",
		"@if (x) {\n<b>y</b>\n}\nelse {\n}",
		"@* note *@ @@ text",
		"héllo wörld @(ä)",
	}

	for _, source := range sources {
		t.Run(source, func(t *testing.T) {
			tokens, err := Tokenize(context.Background(), source)
			require.NoError(t, err)
			assert.Equal(t, source, joinTokens(tokens))

			offset := 0
			for i, tok := range tokens {
				assert.Equal(t, offset, tok.Start, "token %d starts where the previous ended", i)
				assert.Greater(t, tok.End, tok.Start)
				offset = tok.End
				if i > 0 && tok.Kind == TokenUnmatched {
					assert.NotEqual(t, TokenUnmatched, tokens[i-1].Kind, "unmatched runs are merged")
				}
			}
		})
	}
}

func TestTokenize_LiteralAt(t *testing.T) {
	tokens, err := Tokenize(context.Background(), "Contact: user@example.com<br>")
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, kindText{TokenTextWithLiteralAt, "Contact: user@example.com"}, kindTexts(tokens)[0])
	assert.Equal(t, kindText{TokenUnmatched, "<br>"}, kindTexts(tokens)[1])
}

func TestTokenize_Interpolation(t *testing.T) {
	tokens, err := Tokenize(context.Background(), `@{ var s = $"a{b}c"; }`)
	require.NoError(t, err)

	var kinds []TokenKind
	for _, tok := range tokens {
		if tok.Kind != TokenUnmatched {
			kinds = append(kinds, tok.Kind)
		}
	}
	assert.Equal(t, []TokenKind{
		TokenCodeBlockStart,
		TokenInterpolationRegularStart,
		TokenInterpolationStartQuote,
		TokenInterpolationStringContent,
		TokenInterpolationOpenBrace,
		TokenInterpolationCloseBrace,
		TokenInterpolationStringContent,
		TokenInterpolationEndQuote,
		TokenOptSemi,
		TokenContextClose,
	}, kinds)
}

func TestTokenize_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Tokenize(ctx, tokenizeSample)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTokenize_InvalidConfig(t *testing.T) {
	s := MustNew()
	defer s.Close()
	ctx := context.Background()

	_, err := s.Tokenize(ctx, "x", TokenizeConfig{Interval: -1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgInvalidInterval)

	_, err = s.Tokenize(ctx, "x", TokenizeConfig{Store: NewMemoryCheckpointStore()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgEmptyDocument)

	_, err = s.Tokenize(ctx, "x", TokenizeConfig{StartOffset: 2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgOffsetOutOfRange)

	_, err = Tokenize(ctx, "x", WithMaxDepth(0))
	assert.Error(t, err)
}

func TestTokenize_ClosedScanner(t *testing.T) {
	s := MustNew()
	require.NoError(t, s.Close())

	_, err := s.Tokenize(context.Background(), "x", TokenizeConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgScannerClosed)
}

func TestTokenize_CustomPolicy(t *testing.T) {
	s := MustNew()
	defer s.Close()

	textOnly := func(Step) ValidSymbols { return NewValidSymbols(TokenHTMLTextContent) }
	tokens, err := s.Tokenize(context.Background(), "a@b.c", TokenizeConfig{Policy: textOnly})
	require.NoError(t, err)
	assert.Equal(t, []kindText{
		{TokenHTMLTextContent, "a"},
		{TokenUnmatched, "@"},
		{TokenHTMLTextContent, "b"},
		{TokenUnmatched, "."},
		{TokenHTMLTextContent, "c"},
	}, kindTexts(tokens))
}

func TestTokenize_Checkpoints(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryCheckpointStore()
	defer store.Close()

	s := MustNew()
	defer s.Close()
	cfg := TokenizeConfig{Store: store, Document: "page.cshtml", Interval: 2}

	full, err := s.Tokenize(ctx, tokenizeSample, cfg)
	require.NoError(t, err)

	checkpoints, err := store.List(ctx, "page.cshtml")
	require.NoError(t, err)
	require.Greater(t, len(checkpoints), 2)
	assert.Equal(t, 0, checkpoints[0].Offset)
	assert.Equal(t, 0, checkpoints[0].Depth)

	for _, cp := range checkpoints[1:] {
		found := false
		for _, tok := range full {
			if tok.End == cp.Offset && tok.Kind != TokenUnmatched {
				found = true
			}
		}
		assert.True(t, found, "checkpoint at %d follows a scanned token", cp.Offset)
	}
}

func TestScanner_Resume(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryCheckpointStore()
	defer store.Close()
	cfg := TokenizeConfig{Store: store, Document: "page.cshtml", Interval: 3}

	s := MustNew()
	defer s.Close()
	full, err := s.Tokenize(ctx, tokenizeSample, cfg)
	require.NoError(t, err)

	checkpoints, err := store.List(ctx, "page.cshtml")
	require.NoError(t, err)

	for _, cp := range checkpoints {
		t.Run(fmt.Sprintf("offset %d", cp.Offset), func(t *testing.T) {
			resumer := MustNew()
			defer resumer.Close()

			resumed, err := resumer.Resume(ctx, tokenizeSample, cp.Offset, cfg)
			require.NoError(t, err)

			index := len(full)
			for i, tok := range full {
				if tok.Start == cp.Offset {
					index = i
					break
				}
			}
			if index == len(full) {
				assert.Empty(t, resumed)
				return
			}
			assert.Equal(t, full[index:], resumed)
		})
	}
}

func TestScanner_ResumeErrors(t *testing.T) {
	ctx := context.Background()
	s := MustNew()
	defer s.Close()

	_, err := s.Resume(ctx, "x", 0, TokenizeConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgEmptyDocument)

	store := NewMemoryCheckpointStore()
	defer store.Close()
	_, err = s.Resume(ctx, "x", 0, TokenizeConfig{Store: store, Document: "missing"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgCheckpointNotFound)
}
