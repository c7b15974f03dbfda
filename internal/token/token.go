package token

import (
	"hipify/internal/source"
)

// Token represents a single raw source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsString reports whether the token is a double-quoted string literal.
func (t Token) IsString() bool { return t.Kind == StringLit }
