package diagfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"hipify/internal/rules"
	"hipify/internal/stats"
)

var (
	headColor  = color.New(color.Bold)
	okColor    = color.New(color.FgGreen)
	unsupColor = color.New(color.FgRed)
	deprColor  = color.New(color.FgYellow)
)

// StatsOpts configures statistics rendering.
type StatsOpts struct {
	Color bool
	// Title heads the block, e.g. a file path or "TOTAL".
	Title string
}

// Stats renders a translation report: one line per rewritten name,
// then the summary counters.
func Stats(w io.Writer, rep stats.Report, opts StatsOpts) {
	title := opts.Title
	if title == "" {
		title = "statistics"
	}
	if opts.Color {
		title = headColor.Sprint(title)
	}
	fmt.Fprintf(w, "%s:\n", title)

	for _, nc := range rep.Names {
		line := fmt.Sprintf("  %-36s => %-36s %4d  [%s]",
			nc.Name, targetLabel(nc), nc.Count, nc.Kind)
		if opts.Color {
			switch nc.Support {
			case rules.Unsupported:
				line = unsupColor.Sprint(line)
			case rules.Deprecated:
				line = deprColor.Sprint(line)
			}
		}
		fmt.Fprintln(w, line)
	}

	supported := fmt.Sprintf("%d", rep.Supported)
	unsupported := fmt.Sprintf("%d", rep.Unsupported)
	if opts.Color {
		supported = okColor.Sprint(supported)
		if rep.Unsupported > 0 {
			unsupported = unsupColor.Sprint(unsupported)
		}
	}
	fmt.Fprintf(w, "  converted refs: %s, unconvertible refs: %s\n", supported, unsupported)
	fmt.Fprintf(w, "  lines touched: %d, bytes changed: %d\n", rep.LinesTouched, rep.BytesChanged)
}

func targetLabel(nc stats.NameCount) string {
	if nc.Support == rules.Unsupported {
		return "(unsupported)"
	}
	return nc.Target
}
