package rewrite

import (
	"fmt"

	"hipify/internal/diag"
	"hipify/internal/patch"
	"hipify/internal/preproc"
	"hipify/internal/rules"
	"hipify/internal/source"
)

const mainHeader = "hip/hip_runtime.h"

// inclusion is the include layer for one directive. Headers without a
// rule pass through; mapped headers are substituted in place, keeping
// the original delimiter style. A primary API header is written at
// most once per file: later directives mapping to the same target are
// removed.
func (e *Engine) inclusion(inc preproc.Inclusion) {
	if inc.Filename == mainHeader {
		// Already-converted files keep their single runtime include.
		e.mainHeaderPresent = true
		e.insertedMain[mainHeader] = true
		return
	}
	entry, ok := e.rules.LookupInclude(inc.Filename)
	if !ok {
		return
	}
	e.run.Increment(entry, inc.Filename, e.toRoc)

	if entry.Support == rules.Unsupported {
		e.bag.Add(diag.NewWarning(diag.RewriteUnsupportedInclude, inc.FilenameSpan,
			fmt.Sprintf("header '%s' is unsupported in %s; left as-is",
				inc.Filename, entry.TargetDialect(e.toRoc))))
		return
	}

	target := entry.Target(e.toRoc)
	if target == "" {
		e.excludeDirective(inc)
		return
	}
	if entry.Kind == rules.ConvIncludeMain {
		if e.insertedMain[target] {
			e.excludeDirective(inc)
			return
		}
		e.insertedMain[target] = true
		if target == mainHeader {
			e.mainHeaderPresent = true
		}
	}

	lq, rq := `"`, `"`
	if inc.Angled {
		lq, rq = "<", ">"
	}
	e.add(patch.Replacement{
		Span:    inc.FilenameSpan,
		NewText: lq + target + rq,
	})
}

// excludeDirective suppresses an include directive: the text from the
// '#' through the filename is replaced by nothing. Anything after the
// filename on the line, trailing comments included, stays.
func (e *Engine) excludeDirective(inc preproc.Inclusion) {
	e.add(patch.Replacement{
		Span: source.Span{File: e.file.ID, Start: inc.HashOff, End: inc.FilenameSpan.End},
	})
}
