package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"hipify/internal/diag"
	"hipify/internal/source"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan, color.Bold)
	posColor  = color.New(color.Bold)
	markColor = color.New(color.FgGreen, color.Bold)
)

// Pretty renders diagnostics for humans. The bag is expected to be
// sorted. Each diagnostic prints as
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// optionally followed by the source line with a ^~~~ underline and by
// its notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		printHeader(w, fs, d.Primary, d.Severity, d.Code.ID(), d.Message, opts)
		if opts.ShowSource {
			printSourceLine(w, fs, d.Primary, opts)
		}
		if opts.ShowNotes {
			for _, note := range d.Notes {
				printHeader(w, fs, note.Span, diag.SevInfo, "note", note.Msg, opts)
				if opts.ShowSource {
					printSourceLine(w, fs, note.Span, opts)
				}
			}
		}
	}
}

func printHeader(w io.Writer, fs *source.FileSet, sp source.Span, sev diag.Severity, code, msg string, opts PrettyOpts) {
	pos := "<input>"
	if fs != nil && int(sp.File) < fs.Len() {
		pos = formatPos(fs, sp, opts.PathMode)
	}
	sevText := sev.String()
	if opts.Color {
		pos = posColor.Sprint(pos)
		sevText = severityColor(sev).Sprint(sevText)
	}
	fmt.Fprintf(w, "%s: %s %s: %s\n", pos, sevText, code, msg)
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errColor
	case diag.SevWarning:
		return warnColor
	default:
		return infoColor
	}
}

func formatPos(fs *source.FileSet, sp source.Span, mode PathMode) string {
	f := fs.Get(sp.File)
	var path string
	switch mode {
	case PathModeAbsolute:
		path = f.FormatPath("absolute", "")
	case PathModeRelative:
		path = f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		path = f.FormatPath("basename", "")
	default:
		path = f.FormatPath("auto", fs.BaseDir())
	}
	start, _ := fs.Resolve(sp)
	if start.Line == 0 {
		return path
	}
	return fmt.Sprintf("%s:%d:%d", path, start.Line, start.Col)
}

// printSourceLine shows the first line the span touches and underlines
// the covered columns. The underline is width-aware, so tabs and wide
// runes in the prefix keep the marker aligned.
func printSourceLine(w io.Writer, fs *source.FileSet, sp source.Span, opts PrettyOpts) {
	if fs == nil || int(sp.File) >= fs.Len() || sp.Empty() {
		return
	}
	f := fs.Get(sp.File)
	start, end := fs.Resolve(sp)
	if start.Line == 0 {
		return
	}
	line := f.GetLine(start.Line)
	if line == "" {
		return
	}
	fmt.Fprintf(w, "  %s\n", strings.ReplaceAll(line, "\t", "    "))

	prefix := expandPrefix(line, int(start.Col)-1)
	markLen := 1
	if end.Line == start.Line && end.Col > start.Col {
		markLen = int(end.Col - start.Col)
	}
	marker := "^"
	if markLen > 1 {
		marker += strings.Repeat("~", markLen-1)
	}
	if opts.Color {
		marker = markColor.Sprint(marker)
	}
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", prefix), marker)
}

// expandPrefix computes the display width of the first cols bytes of
// line, expanding tabs to four columns.
func expandPrefix(line string, cols int) int {
	if cols < 0 {
		return 0
	}
	if cols > len(line) {
		cols = len(line)
	}
	width := 0
	for _, r := range line[:cols] {
		if r == '\t' {
			width += 4
			continue
		}
		width += runewidth.RuneWidth(r)
	}
	return width
}
