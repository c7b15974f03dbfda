package lexer

import (
	"hipify/internal/source"
	"hipify/internal/token"
)

// Lexer is a raw tokenizer for CUDA/C++ sources. It does not interpret
// preprocessor directives, so it also produces tokens inside
// preprocessor-disabled regions; the translation therefore reaches dead
// code too. It only tells apart the categories the rewrite engine cares
// about: identifiers, string literals, and "other stuff".
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next returns the next raw token. After EOF it always returns EOF.
func (lx *Lexer) Next() token.Token {
	lx.skipWhitespace()

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.emptySpan(),
		}
	}

	ch := lx.cursor.Peek()
	switch {
	case ch == '/' && (lx.cursor.PeekAt(1) == '/' || lx.cursor.PeekAt(1) == '*'):
		return lx.scanComment()
	case isIdentStart(ch):
		return lx.scanIdent()
	case isDec(ch) || (ch == '.' && isDec(lx.cursor.PeekAt(1))):
		return lx.scanNumber()
	case ch == '"':
		return lx.scanString()
	case ch == '\'':
		return lx.scanChar()
	default:
		return lx.scanPunct()
	}
}

// Tokens drains the lexer into a slice ending with the EOF token.
func (lx *Lexer) Tokens() []token.Token {
	toks := make([]token.Token, 0, len(lx.file.Content)/4)
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

func (lx *Lexer) skipWhitespace() {
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			lx.cursor.Bump()
		case '\\':
			// Line continuation glues preprocessor lines together; for
			// the raw pass it is whitespace.
			if lx.cursor.PeekAt(1) == '\n' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				continue
			}
			return
		default:
			return
		}
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) tokenFrom(m Mark, kind token.Kind) token.Token {
	sp := lx.cursor.SpanFrom(m)
	return token.Token{
		Kind: kind,
		Span: sp,
		Text: lx.file.Text(sp),
	}
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentContinue(b byte) bool {
	return isIdentStart(b) || isDec(b)
}

func isDec(b byte) bool {
	return b >= '0' && b <= '9'
}
