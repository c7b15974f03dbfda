package match

import (
	"hipify/internal/source"
)

// Loc is a logical source location: the physical offset where an
// expression expands, plus enough macro metadata to decide whether
// that offset is safe to read from or write to.
type Loc struct {
	// Off is the expansion offset (where the expression appears in the
	// file after macro expansion).
	Off uint32
	// SpellingOff is where the text is actually spelled. Outside of
	// macros it equals Off.
	SpellingOff uint32
	// InMacroBody marks locations that originate from a macro body.
	InMacroBody bool
	// AtExpansionEdge marks macro-body locations sitting exactly at
	// the start or end of their expansion.
	AtExpansionEdge bool
}

// PlainLoc builds a location outside of any macro.
func PlainLoc(off uint32) Loc {
	return Loc{Off: off, SpellingOff: off}
}

// Range is a logical half-open range over one file.
type Range struct {
	File  source.FileID
	Begin Loc
	End   Loc
}

// PlainRange builds a range outside of any macro.
func PlainRange(file source.FileID, start, end uint32) Range {
	return Range{File: file, Begin: PlainLoc(start), End: PlainLoc(end)}
}

// ReadRange resolves a logical range to a physical range that is safe
// to copy text from. An endpoint inside a macro body is only safe when
// it sits at the edge of its expansion; if either endpoint is unsafe,
// both fall back to their spelling offsets so that the copied text is
// the one actually written in the macro definition.
func ReadRange(r Range) source.Span {
	beginSafe := !r.Begin.InMacroBody || r.Begin.AtExpansionEdge
	endSafe := !r.End.InMacroBody || r.End.AtExpansionEdge
	if beginSafe && endSafe {
		return source.Span{File: r.File, Start: r.Begin.Off, End: r.End.Off}
	}
	return source.Span{File: r.File, Start: r.Begin.SpellingOff, End: r.End.SpellingOff}
}

// WriteRange resolves a logical range to a physical range that is safe
// to overwrite. Only a range fully contained in a macro body resolves
// to the spelling site, so the patch updates the macro definition;
// a range that merely touches a macro uses the expansion offsets.
func WriteRange(r Range) source.Span {
	if !r.Begin.InMacroBody || !r.End.InMacroBody {
		return source.Span{File: r.File, Start: r.Begin.Off, End: r.End.Off}
	}
	return source.Span{File: r.File, Start: r.Begin.SpellingOff, End: r.End.SpellingOff}
}
