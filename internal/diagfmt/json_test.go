package diagfmt_test

import (
	"encoding/json"
	"strings"
	"testing"

	"hipify/internal/diag"
	"hipify/internal/diagfmt"
	"hipify/internal/source"
)

func TestJSON_Output(t *testing.T) {
	bag, fs, id := makeBag(t, "cudaThreadExit();\n")
	bag.Add(diag.NewWarning(diag.RewriteDeprecatedIdent,
		source.Span{File: id, Start: 0, End: 14}, "deprecated"))

	var out strings.Builder
	err := diagfmt.JSON(&out, bag, fs, diagfmt.JSONOpts{
		IncludePositions: true,
		PathMode:         diagfmt.PathModeBasename,
	})
	if err != nil {
		t.Fatal(err)
	}

	var decoded diagfmt.DiagnosticsOutput
	if err := json.Unmarshal([]byte(out.String()), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out.String())
	}
	if decoded.Count != 1 || len(decoded.Diagnostics) != 1 {
		t.Fatalf("decoded = %+v", decoded)
	}
	d := decoded.Diagnostics[0]
	if d.Severity != "WARNING" || d.Code != "HIP2003" || d.Message != "deprecated" {
		t.Errorf("diagnostic = %+v", d)
	}
	if d.Location.File != "kern.cu" || d.Location.StartByte != 0 || d.Location.EndByte != 14 {
		t.Errorf("location = %+v", d.Location)
	}
	if d.Location.StartLine != 1 || d.Location.StartCol != 1 {
		t.Errorf("positions = %+v", d.Location)
	}
}

func TestJSON_MaxTruncates(t *testing.T) {
	bag, fs, id := makeBag(t, "x\n")
	for i := 0; i < 5; i++ {
		bag.Add(diag.NewWarning(diag.RewriteUnsupportedIdent,
			source.Span{File: id, Start: 0, End: 1}, "m"))
	}
	output := diagfmt.BuildDiagnosticsOutput(bag, fs, diagfmt.JSONOpts{Max: 2})
	if output.Count != 2 || len(output.Diagnostics) != 2 {
		t.Errorf("output = %+v", output)
	}
	if bag.Len() != 5 {
		t.Errorf("bag truncated to %d", bag.Len())
	}
}

func TestJSON_MissingFileSet(t *testing.T) {
	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.IOWriteError, source.Span{}, "failed to write output"))
	output := diagfmt.BuildDiagnosticsOutput(bag, nil, diagfmt.JSONOpts{})
	if output.Diagnostics[0].Location.File != "<input>" {
		t.Errorf("location = %+v", output.Diagnostics[0].Location)
	}
}
