// Package patch collects text replacements against an immutable source
// file and applies them in one pass. Replacements never overlap: the
// ledger rejects a conflicting addition instead of letting two rewrite
// passes fight over the same bytes.
package patch

import (
	"fmt"
	"sort"

	"hipify/internal/source"
)

// Replacement substitutes NewText for the half-open byte span of the
// original file. An empty span is an insertion.
type Replacement struct {
	Span    source.Span
	NewText string
	// OldText, when non-empty, is verified against the original bytes
	// before application.
	OldText string
}

// Insertion builds a zero-width replacement at off.
func Insertion(file source.FileID, off uint32, text string) Replacement {
	return Replacement{
		Span:    source.Span{File: file, Start: off, End: off},
		NewText: text,
	}
}

// ConflictError reports a replacement that overlaps one already in the
// ledger.
type ConflictError struct {
	Existing Replacement
	Incoming Replacement
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("patch: replacement [%d,%d) overlaps existing [%d,%d)",
		e.Incoming.Span.Start, e.Incoming.Span.End,
		e.Existing.Span.Start, e.Existing.Span.End)
}

// Ledger accumulates replacements for one file.
type Ledger struct {
	file *source.File
	reps []Replacement
}

// NewLedger creates an empty ledger over the given file.
func NewLedger(file *source.File) *Ledger {
	return &Ledger{file: file}
}

// Add records a replacement, keeping the ledger sorted by start
// offset. It fails with a *ConflictError when the new replacement
// overlaps an existing one, and with a plain error when the span does
// not fit the file.
func (l *Ledger) Add(rep Replacement) error {
	if rep.Span.File != l.file.ID {
		return fmt.Errorf("patch: replacement targets file %d, ledger holds file %d",
			rep.Span.File, l.file.ID)
	}
	if rep.Span.End < rep.Span.Start || int(rep.Span.End) > len(l.file.Content) {
		return fmt.Errorf("patch: replacement [%d,%d) out of range (file has %d bytes)",
			rep.Span.Start, rep.Span.End, len(l.file.Content))
	}
	if rep.OldText != "" && string(l.file.Text(rep.Span)) != rep.OldText {
		return fmt.Errorf("patch: original text at [%d,%d) does not match expected content",
			rep.Span.Start, rep.Span.End)
	}
	idx := sort.Search(len(l.reps), func(i int) bool {
		if l.reps[i].Span.Start == rep.Span.Start {
			return l.reps[i].Span.End >= rep.Span.End
		}
		return l.reps[i].Span.Start > rep.Span.Start
	})
	if idx > 0 && spansConflict(l.reps[idx-1], rep) {
		return &ConflictError{Existing: l.reps[idx-1], Incoming: rep}
	}
	if idx < len(l.reps) && spansConflict(l.reps[idx], rep) {
		return &ConflictError{Existing: l.reps[idx], Incoming: rep}
	}
	l.reps = append(l.reps, Replacement{})
	copy(l.reps[idx+1:], l.reps[idx:])
	l.reps[idx] = rep
	return nil
}

// Len returns the number of recorded replacements.
func (l *Ledger) Len() int { return len(l.reps) }

// Replacements returns the recorded replacements in offset order. The
// slice is owned by the ledger.
func (l *Ledger) Replacements() []Replacement { return l.reps }

// Apply produces the rewritten file content. The original bytes are
// never modified. With an empty ledger the original content is
// returned as-is.
func (l *Ledger) Apply() []byte {
	if len(l.reps) == 0 {
		return l.file.Content
	}
	content := l.file.Content
	delta := 0
	for _, rep := range l.reps {
		delta += len(rep.NewText) - int(rep.Span.End-rep.Span.Start)
	}
	out := make([]byte, 0, len(content)+delta)
	cursor := uint32(0)
	for _, rep := range l.reps {
		out = append(out, content[cursor:rep.Span.Start]...)
		out = append(out, rep.NewText...)
		cursor = rep.Span.End
	}
	out = append(out, content[cursor:]...)
	return out
}

// spansConflict reports whether two replacements' spans overlap.
// Spans are half-open intervals [Start, End). Two insertions at the
// same offset conflict: their relative order would be ambiguous. An
// insertion conflicts with a non-empty span when its position falls
// strictly inside it; sitting on either boundary is fine.
func spansConflict(a, b Replacement) bool {
	aStart, aEnd := a.Span.Start, a.Span.End
	bStart, bEnd := b.Span.Start, b.Span.End

	if aStart == aEnd && bStart == bEnd {
		return aStart == bStart
	}
	if aStart == aEnd {
		return bStart < aStart && aStart < bEnd
	}
	if bStart == bEnd {
		return aStart < bStart && bStart < aEnd
	}
	return aStart < bEnd && bStart < aEnd
}
