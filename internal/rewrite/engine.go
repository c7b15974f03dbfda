// Package rewrite turns a tokenized CUDA source into a patch ledger
// producing the HIP (or ROC) equivalent. It runs three layers over one
// immutable file: a lexical layer over raw tokens, a structural layer
// over matched constructs, and an include layer over preprocessor
// events, finishing with end-of-file header injection.
package rewrite

import (
	"fmt"

	"hipify/internal/diag"
	"hipify/internal/match"
	"hipify/internal/patch"
	"hipify/internal/preproc"
	"hipify/internal/rules"
	"hipify/internal/source"
	"hipify/internal/stats"
	"hipify/internal/token"
)

// Options selects the output dialect and rule set for one run.
type Options struct {
	// Rules is the rule set to translate with; nil means the built-in
	// default set.
	Rules *rules.Set
	// ToRoc selects ROC output names where the rules provide them.
	ToRoc bool
	// ExtTypes allows extension builtin type names in shared-memory
	// rewrites; forwarded to the matcher by the driver.
	ExtTypes bool
}

// Sink receives the translation events for one file, in source order
// within each stream. Structural matches are delivered before the raw
// tokens so their replacements take precedence over identifier rules
// on the same text. The driver produces the streams; the Engine is the
// canonical implementation.
type Sink interface {
	// Token receives every raw token of the file.
	Token(t token.Token)
	// Match receives every structural match, ahead of the token stream.
	Match(m match.Match)
	// EndOfFile signals that all streams are exhausted.
	EndOfFile()
}

// Result is the outcome of translating one file.
type Result struct {
	// Output is the rewritten content. When nothing changed it aliases
	// the original content.
	Output []byte
	// Changed reports whether any replacement was applied.
	Changed bool
	// Report is the per-file statistics snapshot.
	Report stats.Report
}

// Engine implements Sink over one file.
type Engine struct {
	fs    *source.FileSet
	file  *source.File
	rules *rules.Set
	toRoc bool

	ledger *patch.Ledger
	run    *stats.Run
	bag    *diag.Bag
	events preproc.Events

	// insertedMain tracks primary API headers already present in the
	// output, keyed by target header name. Keying by target keeps two
	// CUDA headers that map to the same HIP header from being inserted
	// twice, and keeps distinct headers of one API family independent.
	insertedMain map[string]bool
	// mainHeaderPresent is set when the main runtime header was written
	// by the include layer or already appears in the file.
	mainHeaderPresent bool
	// launchHeads records the replaced head span of every rewritten
	// kernel launch; identifier rules are mute inside them.
	launchHeads []source.Span
}

// NewEngine builds an engine over file. The preprocessor events must
// come from the same file; the bag collects diagnostics.
func NewEngine(fs *source.FileSet, file *source.File, events preproc.Events, opts Options, bag *diag.Bag) *Engine {
	rs := opts.Rules
	if rs == nil {
		rs = rules.Default()
	}
	return &Engine{
		fs:           fs,
		file:         file,
		rules:        rs,
		toRoc:        opts.ToRoc,
		ledger:       patch.NewLedger(file),
		run:          stats.NewRun(),
		bag:          bag,
		events:       events,
		insertedMain: make(map[string]bool),
	}
}

// Run reports the statistics accumulator of this engine.
func (e *Engine) Run() *stats.Run { return e.run }

// EndOfFile processes the include directives and, when none of them
// produced the main runtime header, injects it.
func (e *Engine) EndOfFile() {
	for _, inc := range e.events.Inclusions {
		e.inclusion(inc)
	}
	e.injectMainHeader()
}

// Finalize runs EndOfFile and applies the ledger.
func (e *Engine) Finalize() Result {
	e.EndOfFile()
	changed := e.ledger.Len() > 0
	out := e.file.Content
	if changed {
		out = e.ledger.Apply()
	}
	return Result{
		Output:  out,
		Changed: changed,
		Report:  e.run.Snapshot(),
	}
}

// add records a replacement and its statistics. Overlaps produce a
// warning and are skipped; the earlier replacement wins.
func (e *Engine) add(rep patch.Replacement) bool {
	if err := e.ledger.Add(rep); err != nil {
		if _, ok := err.(*patch.ConflictError); ok {
			e.bag.Add(diag.NewWarning(diag.RewriteOverlappingPatch, rep.Span,
				"replacement overlaps an earlier one; skipped"))
			return false
		}
		e.bag.Add(diag.NewError(diag.RewriteOverlappingPatch, rep.Span, err.Error()))
		return false
	}
	start, _ := e.fs.Resolve(rep.Span)
	e.run.LineTouched(start.Line)
	e.run.BytesChanged(rep.Span.Len())
	return true
}

// rewriteName applies one name rule at the given span: supported and
// deprecated names get a patch, unsupported ones only a warning.
// Statistics count the occurrence either way.
func (e *Engine) rewriteName(entry rules.Entry, name string, sp source.Span) {
	e.run.Increment(entry, name, e.toRoc)
	switch entry.Support {
	case rules.Unsupported:
		e.bag.Add(diag.NewWarning(diag.RewriteUnsupportedIdent, sp,
			fmt.Sprintf("'%s' is unsupported in %s; left as-is", name, entry.TargetDialect(e.toRoc))))
		return
	case rules.Deprecated:
		e.bag.Add(diag.NewWarning(diag.RewriteDeprecatedIdent, sp,
			fmt.Sprintf("'%s' is deprecated; rewritten to '%s'", name, entry.Target(e.toRoc))))
	}
	e.add(patch.Replacement{Span: sp, NewText: entry.Target(e.toRoc), OldText: name})
}
