// Package preproc scans a source file for the preprocessor directives
// the translator reacts to. It is a textual scanner over the written
// file, so by construction it only reports directives that appear in
// the main file; directives reached through macro expansion are never
// seen, matching the contract the rewrite engine expects.
package preproc

import (
	"hipify/internal/source"
)

// Inclusion is one #include directive written in the file.
type Inclusion struct {
	// HashOff is the byte offset of the '#'.
	HashOff uint32
	// Filename is the included name without delimiters.
	Filename string
	// Angled distinguishes <...> from "...".
	Angled bool
	// FilenameSpan covers the filename including its delimiters.
	FilenameSpan source.Span
}

// PragmaOnce is a '#pragma once' directive.
type PragmaOnce struct {
	// HashOff is the byte offset of the '#'.
	HashOff uint32
	// EndOff is the offset just past the 'once' token.
	EndOff uint32
}

// Ifndef is one '#ifndef MACRO' directive.
type Ifndef struct {
	Macro string
	// AfterMacroOff is the offset just past the macro name token.
	AfterMacroOff uint32
	// MacroSpan covers the macro name.
	MacroSpan source.Span
}

// Define is one '#define' directive. Only the body span is kept: the
// range resolver uses it to tell when an expression range points into
// a macro definition.
type Define struct {
	Name     string
	BodySpan source.Span
}

// Events is everything the scanner found, in source order per kind.
type Events struct {
	Inclusions []Inclusion
	PragmaOnce *PragmaOnce
	Ifndefs    []Ifndef
	Defines    []Define
	// ControllingMacro is the include-guard macro protecting the whole
	// file, or empty when the file has no recognizable guard.
	ControllingMacro string
}
