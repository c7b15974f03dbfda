package rewrite

import (
	"strings"

	"hipify/internal/match"
	"hipify/internal/patch"
	"hipify/internal/rules"
	"hipify/internal/source"
)

// Match is the structural layer. The matcher produces matches in
// source order; launches are handled before shared-memory declarations
// and device calls at equal positions because that is the order the
// matcher emits them in.
func (e *Engine) Match(m match.Match) {
	switch m.Kind {
	case match.KindLaunch:
		e.launch(m.Launch)
	case match.KindSharedArray:
		e.sharedArray(m.Shared)
	case match.KindDeviceCall:
		e.deviceCall(m.DeviceCall)
	}
}

// launch rewrites `kern<<<grid, block[, shmem[, stream]]>>>(` into
// `hipLaunchKernelGGL(kern, dim3(grid), dim3(block), shmem, stream, `.
// Only the head is replaced; the original argument list stays, so
// identifier rewrites inside it still land.
func (e *Engine) launch(l *match.Launch) {
	var b strings.Builder
	b.WriteString("hipLaunchKernelGGL(")

	callee := e.file.Text(match.ReadRange(l.Callee))
	if l.CalleeIsTemplate {
		// Parenthesized so commas in the template argument list do not
		// split the macro arguments.
		b.WriteString("(")
		b.WriteString(callee)
		b.WriteString(")")
	} else {
		b.WriteString(callee)
	}

	b.WriteString(", dim3(")
	b.WriteString(e.configText(l.Config[0]))
	b.WriteString("), dim3(")
	b.WriteString(e.configText(l.Config[1]))
	b.WriteString("), ")
	b.WriteString(e.configText(l.Config[2]))
	b.WriteString(", ")
	b.WriteString(e.configText(l.Config[3]))
	if l.HasArgs {
		b.WriteString(", ")
	}

	head := match.WriteRange(l.Head)
	if e.add(patch.Replacement{Span: head, NewText: b.String()}) {
		e.launchHeads = append(e.launchHeads, head)
		e.run.Increment(rules.Entry{
			CudaName: "<<<...>>>",
			HipName:  "hipLaunchKernelGGL",
			Kind:     rules.ConvExecution,
			API:      rules.APIRuntime,
		}, "<<<...>>>", e.toRoc)
	}
}

// inLaunchHead reports whether sp lies inside a rewritten launch head.
// The callee and configuration text there is replaced as one unit, so
// identifier rules must not fire on the tokens it covers.
func (e *Engine) inLaunchHead(sp source.Span) bool {
	for _, h := range e.launchHeads {
		if sp.Start >= h.Start && sp.End <= h.End {
			return true
		}
	}
	return false
}

// configText renders one launch configuration argument; omitted shared
// memory and stream arguments default to 0.
func (e *Engine) configText(arg match.ConfigArg) string {
	if arg.Defaulted {
		return "0"
	}
	return e.file.Text(match.ReadRange(arg.Range))
}

// sharedArray rewrites `extern __shared__ T name[]` (up to the closing
// bracket) into `HIP_DYNAMIC_SHARED(T, name)`. A declaration whose
// element type cannot be named is left alone.
func (e *Engine) sharedArray(sh *match.SharedArray) {
	if sh.TypeName == "" {
		return
	}
	text := "HIP_DYNAMIC_SHARED(" + sh.TypeName + ", " + sh.VarName + ")"
	if e.add(patch.Replacement{Span: sh.Prefix, NewText: text}) {
		e.run.Increment(rules.Entry{
			CudaName: "extern __shared__",
			HipName:  "HIP_DYNAMIC_SHARED",
			Kind:     rules.ConvMemory,
			API:      rules.APIRuntime,
		}, "extern __shared__", e.toRoc)
	}
}

// deviceCall renames a device-intrinsic call site. Intrinsics that
// keep their name are counted but not patched; calls to functions
// defined in the file itself need no rewrite at all.
func (e *Engine) deviceCall(dc *match.DeviceCall) {
	entry, ok := e.rules.LookupDeviceFunc(dc.Name)
	if !ok {
		return
	}
	if entry.Support != rules.Unsupported && entry.Target(e.toRoc) == dc.Name {
		e.run.Increment(entry, dc.Name, e.toRoc)
		return
	}
	e.rewriteName(entry, dc.Name, dc.NameSpan)
}
