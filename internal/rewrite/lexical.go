package rewrite

import (
	"strings"

	"hipify/internal/patch"
	"hipify/internal/rules"
	"hipify/internal/source"
	"hipify/internal/token"
)

// Token is the lexical layer: identifiers are looked up in the rule
// table, string literals are scanned for embedded API names. All other
// token kinds pass through untouched.
func (e *Engine) Token(t token.Token) {
	switch t.Kind {
	case token.Ident:
		if e.inLaunchHead(t.Span) {
			// The structural layer already replaced this text wholesale.
			return
		}
		if entry, ok := e.rules.Lookup(t.Text); ok {
			e.rewriteName(entry, t.Text, t.Span)
		}
	case token.StringLit:
		e.scanLiteral(t)
	}
}

// scanLiteral rewrites API names spelled inside a string literal, the
// way error messages and profiler labels mention them. A candidate
// starts at "cu" and runs to the next whitespace byte or the end of
// the literal; only exact rule-table hits are touched.
func (e *Engine) scanLiteral(t token.Token) {
	if len(t.Text) < 2 {
		return
	}
	// Strip the surrounding quotes; offsets below are relative to the
	// literal's contents.
	inner := t.Text[1 : len(t.Text)-1]
	base := t.Span.Start + 1

	begin := 0
	for {
		idx := strings.Index(inner[begin:], "cu")
		if idx < 0 {
			return
		}
		begin += idx
		end := literalNameEnd(inner, begin)
		name := inner[begin:end]
		if entry, ok := e.rules.Lookup(name); ok {
			// Every sighting counts, but unsupported names stay put with
			// no diagnostic: a mention in a string is not a use of the
			// API.
			e.run.Increment(entry, name, e.toRoc)
			if entry.Support != rules.Unsupported {
				sp := source.Span{
					File:  t.Span.File,
					Start: base + uint32(begin),
					End:   base + uint32(end),
				}
				e.add(patch.Replacement{Span: sp, NewText: entry.Target(e.toRoc), OldText: name})
			}
		}
		begin = end + 1
		if begin >= len(inner) {
			return
		}
	}
}

// literalNameEnd finds the end of a candidate name starting at begin:
// the next space, tab or escaped newline, or the end of the literal.
func literalNameEnd(inner string, begin int) int {
	end := begin
	for end < len(inner) {
		b := inner[end]
		if b == ' ' || b == '\t' || b == '\n' {
			break
		}
		end++
	}
	return end
}
