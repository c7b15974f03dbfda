package rules

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
)

// SupportDegree classifies how well a CUDA name translates to the
// target dialect.
type SupportDegree uint8

const (
	// Supported entries translate cleanly.
	Supported SupportDegree = iota
	// Deprecated entries translate, but the target name is deprecated.
	Deprecated
	// Unsupported entries have no target equivalent; they produce a
	// warning and no patch.
	Unsupported
)

func (d SupportDegree) String() string {
	switch d {
	case Supported:
		return "supported"
	case Deprecated:
		return "deprecated"
	case Unsupported:
		return "unsupported"
	}
	return "unknown"
}

// APICategory identifies which CUDA API family a name belongs to.
// The include rewriter keys its per-file "already inserted" flags on it.
type APICategory uint8

const (
	APIDriver APICategory = iota
	APIRuntime
	APIBlas
	APIRand
	APIDnn
	APIFft
	APIComplex
	APISparse
)

func (a APICategory) String() string {
	switch a {
	case APIDriver:
		return "driver"
	case APIRuntime:
		return "runtime"
	case APIBlas:
		return "blas"
	case APIRand:
		return "rand"
	case APIDnn:
		return "dnn"
	case APIFft:
		return "fft"
	case APIComplex:
		return "complex"
	case APISparse:
		return "sparse"
	}
	return "unknown"
}

// ConvKind describes what sort of construct an entry rewrites.
type ConvKind uint8

const (
	// ConvIdent rewrites a plain identifier.
	ConvIdent ConvKind = iota
	// ConvIncludeMain rewrites an include of a primary API header, the
	// kind that is inserted at most once per file and category.
	ConvIncludeMain
	// ConvInclude rewrites an ordinary include.
	ConvInclude
	// ConvDevice rewrites a device-side function call.
	ConvDevice
	// ConvLiteral marks a name matched inside a string literal.
	ConvLiteral
	// ConvExecution marks a kernel launch rewrite.
	ConvExecution
	// ConvMemory marks a shared-memory declaration rewrite.
	ConvMemory
)

func (k ConvKind) String() string {
	switch k {
	case ConvIdent:
		return "identifier"
	case ConvIncludeMain:
		return "include-main"
	case ConvInclude:
		return "include"
	case ConvDevice:
		return "device-call"
	case ConvLiteral:
		return "literal"
	case ConvExecution:
		return "execution"
	case ConvMemory:
		return "memory"
	}
	return "unknown"
}

// Entry is one row of a rule table: a CUDA name and its replacements.
// HipName and RocName are the two output dialect variants; exactly one
// is active per run, selected by the translation mode.
type Entry struct {
	CudaName string
	HipName  string
	RocName  string
	Kind     ConvKind
	API      APICategory
	Support  SupportDegree
}

// Target returns the active replacement name. ROC mode falls back to
// the HIP name for entries without a ROC variant.
func (e Entry) Target(toRoc bool) string {
	if toRoc && e.RocName != "" {
		return e.RocName
	}
	return e.HipName
}

// TargetDialect names the dialect an Entry resolves to, for
// diagnostics.
func (e Entry) TargetDialect(toRoc bool) string {
	if toRoc && e.RocName != "" {
		return "ROC"
	}
	return "HIP"
}

// Set bundles the three lookup tables. It is immutable after
// construction and safe for concurrent readers.
type Set struct {
	idents      map[string]Entry
	includes    map[string]Entry
	deviceFuncs map[string]Entry
	fingerprint string
}

// Lookup finds the rule for an identifier.
func (s *Set) Lookup(name string) (Entry, bool) {
	e, ok := s.idents[name]
	return e, ok
}

// LookupInclude finds the rule for a header filename.
func (s *Set) LookupInclude(filename string) (Entry, bool) {
	e, ok := s.includes[filename]
	return e, ok
}

// LookupDeviceFunc finds the rule for a device-side function name.
func (s *Set) LookupDeviceFunc(name string) (Entry, bool) {
	e, ok := s.deviceFuncs[name]
	return e, ok
}

// IsDeviceFunc reports whether name has a device-function rule.
func (s *Set) IsDeviceFunc(name string) bool {
	_, ok := s.deviceFuncs[name]
	return ok
}

// Fingerprint is a stable hash of the whole rule set, used to key
// cached translation results.
func (s *Set) Fingerprint() string {
	return s.fingerprint
}

func newSet(idents, includes, deviceFuncs []Entry) *Set {
	s := &Set{
		idents:      make(map[string]Entry, len(idents)),
		includes:    make(map[string]Entry, len(includes)),
		deviceFuncs: make(map[string]Entry, len(deviceFuncs)),
	}
	for _, e := range idents {
		s.idents[e.CudaName] = e
	}
	for _, e := range includes {
		s.includes[e.CudaName] = e
	}
	for _, e := range deviceFuncs {
		s.deviceFuncs[e.CudaName] = e
	}
	s.fingerprint = fingerprintTables(s.idents, s.includes, s.deviceFuncs)
	return s
}

func fingerprintTables(tables ...map[string]Entry) string {
	h := sha256.New()
	for _, table := range tables {
		keys := make([]string, 0, len(table))
		for k := range table {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			e := table[k]
			fmt.Fprintf(h, "%s|%s|%s|%d|%d|%d\n", e.CudaName, e.HipName, e.RocName, e.Kind, e.API, e.Support)
		}
	}
	return hex.EncodeToString(h.Sum(nil)[:8])
}

var defaultSet = newSet(identEntries, includeEntries, deviceFuncEntries)

// Default returns the built-in rule set, constructed once per process.
func Default() *Set {
	return defaultSet
}
