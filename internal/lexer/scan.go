package lexer

import (
	"hipify/internal/token"
)

func (lx *Lexer) scanIdent() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && isIdentContinue(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	return lx.tokenFrom(start, token.Ident)
}

// scanNumber consumes a C preprocessing number: digits, hex/binary
// prefixes, dots, type suffixes, and signed exponents. Precision is not
// required here; the rewriter never touches numbers, they only need to
// be skipped as one unit.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case isIdentContinue(b) || b == '.':
			lx.cursor.Bump()
		case b == '+' || b == '-':
			prev := lx.file.Content[lx.cursor.Off-1]
			if prev == 'e' || prev == 'E' || prev == 'p' || prev == 'P' {
				lx.cursor.Bump()
				continue
			}
			return lx.tokenFrom(start, token.Number)
		default:
			return lx.tokenFrom(start, token.Number)
		}
	}
	return lx.tokenFrom(start, token.Number)
}

func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening quote
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '\\' && lx.cursor.Off+1 < lx.cursor.Limit {
			lx.cursor.Bump()
			lx.cursor.Bump()
			continue
		}
		if b == '\n' {
			// C string literals cannot span lines.
			sp := lx.cursor.SpanFrom(start)
			lx.report(ReportUnterminatedString, sp, "unterminated string literal")
			return lx.tokenFrom(start, token.StringLit)
		}
		lx.cursor.Bump()
		if b == '"' {
			return lx.tokenFrom(start, token.StringLit)
		}
	}
	sp := lx.cursor.SpanFrom(start)
	lx.report(ReportUnterminatedString, sp, "unterminated string literal")
	return lx.tokenFrom(start, token.StringLit)
}

func (lx *Lexer) scanChar() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening quote
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '\\' && lx.cursor.Off+1 < lx.cursor.Limit {
			lx.cursor.Bump()
			lx.cursor.Bump()
			continue
		}
		if b == '\n' {
			sp := lx.cursor.SpanFrom(start)
			lx.report(ReportUnterminatedChar, sp, "unterminated character literal")
			return lx.tokenFrom(start, token.CharLit)
		}
		lx.cursor.Bump()
		if b == '\'' {
			return lx.tokenFrom(start, token.CharLit)
		}
	}
	sp := lx.cursor.SpanFrom(start)
	lx.report(ReportUnterminatedChar, sp, "unterminated character literal")
	return lx.tokenFrom(start, token.CharLit)
}

func (lx *Lexer) scanComment() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'
	if lx.cursor.Eat('/') {
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		return lx.tokenFrom(start, token.Comment)
	}
	lx.cursor.Bump() // '*'
	for !lx.cursor.EOF() {
		if lx.cursor.Bump() == '*' && lx.cursor.Eat('/') {
			return lx.tokenFrom(start, token.Comment)
		}
	}
	sp := lx.cursor.SpanFrom(start)
	lx.report(ReportUnterminatedComment, sp, "unterminated block comment")
	return lx.tokenFrom(start, token.Comment)
}

// scanPunct produces one token per punctuation byte. The rewriter never
// rewrites punctuation, and the structural matcher detects multi-byte
// operators (<<<, >>>) through span adjacency, so maximal munch is not
// needed.
func (lx *Lexer) scanPunct() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	return lx.tokenFrom(start, token.Punct)
}
