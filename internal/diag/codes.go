package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo                   Code = 1000
	LexUnterminatedString     Code = 1001
	LexUnterminatedChar       Code = 1002
	LexUnterminatedComment    Code = 1003

	// Rewrite
	RewriteInfo               Code = 2000
	RewriteUnsupportedIdent   Code = 2001
	RewriteUnsupportedInclude Code = 2002
	RewriteDeprecatedIdent    Code = 2003
	RewriteOverlappingPatch   Code = 2004

	// I/O
	IOLoadFileError Code = 4001
	IOWriteError    Code = 4002
)

// ID returns a short stable identifier, e.g. "HIP2001".
func (c Code) ID() string {
	return fmt.Sprintf("HIP%04d", uint16(c))
}

func (c Code) String() string {
	switch c {
	case LexUnterminatedString:
		return "unterminated string literal"
	case LexUnterminatedChar:
		return "unterminated character literal"
	case LexUnterminatedComment:
		return "unterminated block comment"
	case RewriteUnsupportedIdent:
		return "unsupported CUDA identifier"
	case RewriteUnsupportedInclude:
		return "unsupported CUDA header"
	case RewriteDeprecatedIdent:
		return "deprecated CUDA identifier"
	case RewriteOverlappingPatch:
		return "overlapping replacement"
	case IOLoadFileError:
		return "cannot read file"
	case IOWriteError:
		return "cannot write file"
	}
	return "unknown"
}
