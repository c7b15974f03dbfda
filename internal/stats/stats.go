// Package stats accumulates translation statistics. Each file gets its
// own Run; process-wide Totals are merged in only when a run finishes,
// so the rewrite passes themselves never touch shared state.
package stats

import (
	"sort"
	"sync"

	"hipify/internal/rules"
)

// NameCount is the number of occurrences of one CUDA name, together
// with the rule metadata it resolved to.
type NameCount struct {
	Name    string
	Target  string
	Kind    rules.ConvKind
	API     rules.APICategory
	Support rules.SupportDegree
	Count   uint32
}

// Report is an immutable snapshot of a Run (or of merged Totals).
type Report struct {
	Names        []NameCount // sorted by Name
	Supported    uint32
	Unsupported  uint32
	LinesTouched uint32
	BytesChanged uint64
}

// Run accumulates statistics for a single file translation.
// It is not safe for concurrent use; each file owns one.
type Run struct {
	byName  map[string]*NameCount
	lines   map[uint32]struct{}
	bytes   uint64
	support uint32
	unsup   uint32
}

func NewRun() *Run {
	return &Run{
		byName: make(map[string]*NameCount),
		lines:  make(map[uint32]struct{}),
	}
}

// Increment counts one occurrence of a CUDA name resolved through
// entry. It is called whether or not the occurrence produced a patch.
func (r *Run) Increment(entry rules.Entry, name string, toRoc bool) {
	nc, ok := r.byName[name]
	if !ok {
		nc = &NameCount{
			Name:    name,
			Target:  entry.Target(toRoc),
			Kind:    entry.Kind,
			API:     entry.API,
			Support: entry.Support,
		}
		r.byName[name] = nc
	}
	nc.Count++
	if entry.Support == rules.Unsupported {
		r.unsup++
	} else {
		r.support++
	}
}

// LineTouched records that a patch landed on the given 1-based line.
func (r *Run) LineTouched(line uint32) {
	r.lines[line] = struct{}{}
}

// BytesChanged adds the length of a replaced source region.
func (r *Run) BytesChanged(n uint32) {
	r.bytes += uint64(n)
}

// Snapshot renders the run into a sorted, immutable Report.
func (r *Run) Snapshot() Report {
	names := make([]NameCount, 0, len(r.byName))
	for _, nc := range r.byName {
		names = append(names, *nc)
	}
	sort.Slice(names, func(i, j int) bool { return names[i].Name < names[j].Name })
	return Report{
		Names:        names,
		Supported:    r.support,
		Unsupported:  r.unsup,
		LinesTouched: uint32(len(r.lines)),
		BytesChanged: r.bytes,
	}
}

// Totals merges per-file reports into process-wide statistics.
// Safe for concurrent Merge calls from parallel file conversions.
type Totals struct {
	mu      sync.Mutex
	byName  map[string]*NameCount
	support uint32
	unsup   uint32
	lines   uint32
	bytes   uint64
	files   uint32
}

func NewTotals() *Totals {
	return &Totals{byName: make(map[string]*NameCount)}
}

// Merge folds one finished run into the totals.
func (t *Totals) Merge(rep Report) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, nc := range rep.Names {
		existing, ok := t.byName[nc.Name]
		if !ok {
			cp := nc
			t.byName[nc.Name] = &cp
			continue
		}
		existing.Count += nc.Count
	}
	t.support += rep.Supported
	t.unsup += rep.Unsupported
	t.lines += rep.LinesTouched
	t.bytes += rep.BytesChanged
	t.files++
}

// Files returns how many runs were merged.
func (t *Totals) Files() uint32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.files
}

// Snapshot renders the merged totals into a Report.
func (t *Totals) Snapshot() Report {
	t.mu.Lock()
	defer t.mu.Unlock()
	names := make([]NameCount, 0, len(t.byName))
	for _, nc := range t.byName {
		names = append(names, *nc)
	}
	sort.Slice(names, func(i, j int) bool { return names[i].Name < names[j].Name })
	return Report{
		Names:        names,
		Supported:    t.support,
		Unsupported:  t.unsup,
		LinesTouched: t.lines,
		BytesChanged: t.bytes,
	}
}
