// Package razor provides the context-sensitive external tokenizer for Razor
// templates: HTML markup with embedded C#.
//
// The Scanner is driven one token at a time by an incremental parser. At
// each step it decides whether the cursor is in markup or in code, emits the
// boundary tokens that switch between the two, and produces the tokens a
// context-free grammar cannot express: raw element content, markup text that
// stops before continuation keywords, and text containing literal @ signs.
// Everything else is delegated to an embedded C# scanner.
//
// # Basic Usage
//
// Scan a single token:
//
//	s := razor.MustNew()
//	defer s.Close()
//
//	lx := razor.NewSourceLexer("<p>a@b.com</p>")
//	lx.Reset(3)
//	kind, ok := s.Scan(lx, razor.NewValidSymbols(razor.TokenTextWithLiteralAt))
//	// kind: TokenTextWithLiteralAt, lx.Text(): "a@b.com"
//
// # Persistence
//
// The scanner state (open code regions plus the C# scanner state) survives
// between parses as an opaque byte buffer:
//
//	buf := make([]byte, razor.DefaultBufferSize)
//	n := s.Serialize(buf)
//	other := razor.MustNew()
//	other.Deserialize(buf[:n])
//
// # Whole Documents
//
// Tokenize walks a document with a request policy standing in for the
// parser, optionally saving checkpoints to a CheckpointStore:
//
//	tokens, err := razor.Tokenize(ctx, source)
//
// Checkpoint stores are opened by driver name ("memory", "postgres"):
//
//	store, err := razor.OpenCheckpointStore("postgres", dsn)
package razor
