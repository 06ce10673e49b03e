package internal

// ScanRegionEnter recognizes the tokens that open a code region: @{, @( and
// a bare { requested as a block opener after a construct header. The stack
// is pushed only when the token is committed; a full stack reports
// ErrNestingTooDeep without consuming anything.
func ScanRegionEnter(lx Lexer, valid ValidSymbols, stack *ContextStack) (TokenKind, bool, error) {
	wantBlock := valid.Has(TokenCodeBlockStart)
	wantExpr := valid.Has(TokenExplicitExprStart)

	if (wantBlock || wantExpr) && lx.Lookahead() == CharAt {
		lx.Advance()
		switch {
		case wantBlock && lx.Lookahead() == CharOpenBrace:
			return enterRegion(lx, stack, ContextCodeBrace, TokenCodeBlockStart)
		case wantExpr && lx.Lookahead() == CharOpenParen:
			return enterRegion(lx, stack, ContextCodeParen, TokenExplicitExprStart)
		}
		// A bare @ belongs to implicit expressions.
		return 0, false, nil
	}

	if valid.Has(TokenBlockOpen) {
		for isSpace(lx.Lookahead()) {
			lx.Skip()
		}
		if lx.Lookahead() == CharOpenBrace {
			return enterRegion(lx, stack, ContextCodeBrace, TokenBlockOpen)
		}
	}

	return 0, false, nil
}

func enterRegion(lx Lexer, stack *ContextStack, kind ContextKind, token TokenKind) (TokenKind, bool, error) {
	if err := stack.Push(kind); err != nil {
		return 0, false, err
	}
	lx.Advance()
	return token, true, nil
}

// ScanRegionExit recognizes the delimiter that closes the innermost code
// region. A closer that does not match the top frame is left alone.
func ScanRegionExit(lx Lexer, valid ValidSymbols, stack *ContextStack) (TokenKind, bool) {
	if !valid.Has(TokenContextClose) || stack.Empty() {
		return 0, false
	}

	for isSpace(lx.Lookahead()) {
		lx.Skip()
	}

	closer := stack.Top().Closer()
	if closer == 0 || lx.Lookahead() != closer {
		return 0, false
	}

	lx.Advance()
	stack.Pop()
	return TokenContextClose, true
}
