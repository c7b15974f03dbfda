package diagfmt_test

import (
	"strings"
	"testing"

	"hipify/internal/diagfmt"
	"hipify/internal/rules"
	"hipify/internal/stats"
)

func TestStats_Render(t *testing.T) {
	rep := stats.Report{
		Names: []stats.NameCount{
			{Name: "cudaGraph_t", Kind: rules.ConvIdent, Support: rules.Unsupported, Count: 1},
			{Name: "cudaMalloc", Target: "hipMalloc", Kind: rules.ConvIdent, Count: 2},
		},
		Supported:    2,
		Unsupported:  1,
		LinesTouched: 3,
		BytesChanged: 42,
	}

	var out strings.Builder
	diagfmt.Stats(&out, rep, diagfmt.StatsOpts{Title: "alloc.cu"})
	got := out.String()

	if !strings.HasPrefix(got, "alloc.cu:\n") {
		t.Errorf("missing title:\n%s", got)
	}
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("line count = %d:\n%s", len(lines), got)
	}
	if !strings.Contains(lines[1], "cudaGraph_t") || !strings.Contains(lines[1], "(unsupported)") {
		t.Errorf("unsupported row = %q", lines[1])
	}
	if !strings.Contains(lines[2], "cudaMalloc") ||
		!strings.Contains(lines[2], "hipMalloc") ||
		!strings.Contains(lines[2], "[identifier]") {
		t.Errorf("supported row = %q", lines[2])
	}
	if lines[3] != "  converted refs: 2, unconvertible refs: 1" {
		t.Errorf("summary = %q", lines[3])
	}
	if lines[4] != "  lines touched: 3, bytes changed: 42" {
		t.Errorf("footprint = %q", lines[4])
	}
}

func TestStats_DefaultTitle(t *testing.T) {
	var out strings.Builder
	diagfmt.Stats(&out, stats.Report{}, diagfmt.StatsOpts{})
	if !strings.HasPrefix(out.String(), "statistics:\n") {
		t.Errorf("output = %q", out.String())
	}
}
