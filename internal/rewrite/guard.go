package rewrite

import (
	"hipify/internal/patch"
)

// injectMainHeader inserts the main runtime header unless an include
// directive already produced it. Every converted file gets one copy:
// the CUDA compiler injects its runtime headers implicitly, so their
// absence from the source says nothing about whether the output needs
// the HIP one. The insertion point respects include guards: right
// after the guard directive when the file has one, otherwise before
// the first include, otherwise at the top of the file.
func (e *Engine) injectMainHeader() {
	if e.mainHeaderPresent {
		return
	}
	e.mainHeaderPresent = true

	if off, ok := e.guardEnd(); ok {
		e.add(patch.Insertion(e.file.ID, off, "\n#include <"+mainHeader+">\n"))
		return
	}
	var off uint32
	if len(e.events.Inclusions) > 0 {
		off = e.events.Inclusions[0].HashOff
	}
	e.add(patch.Insertion(e.file.ID, off, "#include <"+mainHeader+">\n"))
}

// guardEnd returns the offset just past the file's guard directive:
// the controlling-macro #ifndef or the #pragma once, whichever comes
// first when the file carries both.
func (e *Engine) guardEnd() (uint32, bool) {
	var off uint32
	found := false
	if e.events.ControllingMacro != "" {
		for _, ifn := range e.events.Ifndefs {
			if ifn.Macro == e.events.ControllingMacro {
				off = ifn.AfterMacroOff
				found = true
				break
			}
		}
	}
	if po := e.events.PragmaOnce; po != nil {
		if !found || po.EndOff < off {
			off = po.EndOff
			found = true
		}
	}
	return off, found
}
