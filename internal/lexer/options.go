package lexer

import (
	"hipify/internal/source"
)

// Reporter is a thin interface so the lexer does not depend on diag.
// The lexer only calls it; an outer layer turns the calls into
// diagnostics.
type Reporter interface {
	Report(kind string, span source.Span, msg string)
}

// Report kinds emitted by the lexer.
const (
	ReportUnterminatedString  = "unterminated-string"
	ReportUnterminatedChar    = "unterminated-char"
	ReportUnterminatedComment = "unterminated-comment"
)

type Options struct {
	Reporter Reporter // may be nil; errors are then dropped but lexing continues
}

func (lx *Lexer) report(kind string, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(kind, sp, msg)
	}
}
