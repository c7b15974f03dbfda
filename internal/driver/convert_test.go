package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"hipify/internal/diag"
	"hipify/internal/driver"
	"hipify/internal/stats"
	"hipify/internal/token"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(content)
}

func TestConvertFile_Basic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "alloc.cu")
	writeFile(t, path, "cudaMalloc(&p, n);\n")

	res, err := driver.ConvertFile(path, driver.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Changed {
		t.Error("Changed = false")
	}
	if res.OutPath != path+".hip" {
		t.Errorf("OutPath = %q, want %q", res.OutPath, path+".hip")
	}
	want := "#include <hip/hip_runtime.h>\nhipMalloc(&p, n);\n"
	if got := readFile(t, res.OutPath); got != want {
		t.Errorf("output file:\n%s\nwant:\n%s", got, want)
	}
	if res.Bag.Len() != 0 {
		t.Errorf("diagnostics = %d", res.Bag.Len())
	}
}

func TestConvertFile_DryRun(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "alloc.cu")
	writeFile(t, path, "cudaMalloc(&p, n);\n")

	res, err := driver.ConvertFile(path, driver.Options{DryRun: true})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Changed {
		t.Error("Changed = false")
	}
	if _, err := os.Stat(res.OutPath); !os.IsNotExist(err) {
		t.Errorf("dry run wrote %q", res.OutPath)
	}
}

func TestConvertFile_InPlace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "alloc.cu")
	writeFile(t, path, "cudaFree(p);\n")

	res, err := driver.ConvertFile(path, driver.Options{InPlace: true})
	if err != nil {
		t.Fatal(err)
	}
	if res.OutPath != path {
		t.Errorf("OutPath = %q, want input path", res.OutPath)
	}
	if got := readFile(t, path); got != "#include <hip/hip_runtime.h>\nhipFree(p);\n" {
		t.Errorf("in-place content = %q", got)
	}

	// A file already in HIP form is left untouched.
	done := filepath.Join(dir, "done.cu")
	content := "#include <hip/hip_runtime.h>\nint main() { return 0; }\n"
	writeFile(t, done, content)
	res, err = driver.ConvertFile(done, driver.Options{InPlace: true})
	if err != nil {
		t.Fatal(err)
	}
	if res.Changed {
		t.Error("Changed = true for converted file")
	}
	if got := readFile(t, done); got != content {
		t.Errorf("converted file modified: %q", got)
	}
}

func TestConvertFile_CRLFRestored(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "win.cu")
	writeFile(t, path, "cudaFree(p);\r\nint x;\r\n")

	res, err := driver.ConvertFile(path, driver.Options{})
	if err != nil {
		t.Fatal(err)
	}
	want := "#include <hip/hip_runtime.h>\r\nhipFree(p);\r\nint x;\r\n"
	if got := readFile(t, res.OutPath); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestConvertFile_BOMRestored(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bom.cu")
	writeFile(t, path, "\xEF\xBB\xBFcudaFree(p);\n")

	res, err := driver.ConvertFile(path, driver.Options{})
	if err != nil {
		t.Fatal(err)
	}
	want := "\xEF\xBB\xBF#include <hip/hip_runtime.h>\nhipFree(p);\n"
	if got := readFile(t, res.OutPath); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestConvertFile_LoadError(t *testing.T) {
	res, err := driver.ConvertFile(filepath.Join(t.TempDir(), "missing.cu"), driver.Options{})
	if err == nil {
		t.Fatal("expected load error")
	}
	if res == nil || res.Bag.Len() != 1 {
		t.Fatalf("result = %+v", res)
	}
	if res.Bag.Items()[0].Code != diag.IOLoadFileError {
		t.Errorf("code = %v", res.Bag.Items()[0].Code)
	}
}

func TestConvertDir(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	srcDir := filepath.Join(dir, "src")
	writeFile(t, filepath.Join(srcDir, "a.cu"), "cudaFree(a);\n")
	writeFile(t, filepath.Join(srcDir, "sub", "b.cuh"), "cudaStream_t s;\n")
	writeFile(t, filepath.Join(srcDir, "notes.txt"), "not a source\n")

	totals := stats.NewTotals()
	res, err := driver.ConvertDir(context.Background(), srcDir, driver.Options{
		OutDir: outDir,
		Totals: totals,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Files) != 2 {
		t.Fatalf("files = %d, want 2", len(res.Files))
	}
	// ListSources sorts, so a.cu comes before sub/b.cuh.
	if filepath.Base(res.Files[0].Path) != "a.cu" {
		t.Errorf("first file = %q", res.Files[0].Path)
	}
	if got := readFile(t, filepath.Join(outDir, "a.cu")); got != "#include <hip/hip_runtime.h>\nhipFree(a);\n" {
		t.Errorf("a.cu output = %q", got)
	}
	if got := readFile(t, filepath.Join(outDir, "sub", "b.cuh")); got != "#include <hip/hip_runtime.h>\nhipStream_t s;\n" {
		t.Errorf("sub/b.cuh output = %q", got)
	}
	if res.Bag.Len() != 0 {
		t.Errorf("merged diagnostics = %d", res.Bag.Len())
	}
	if res.FileSet.Len() != 2 {
		t.Errorf("FileSet.Len = %d, want 2", res.FileSet.Len())
	}
	if totals.Files() != 2 {
		t.Errorf("totals files = %d, want 2", totals.Files())
	}
}

type recordingSink struct {
	mu     sync.Mutex
	events []driver.Event
}

func (s *recordingSink) OnEvent(evt driver.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, evt)
}

func (s *recordingSink) count(stage driver.Stage, status driver.Status) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, evt := range s.events {
		if evt.Stage == stage && evt.Status == status {
			n++
		}
	}
	return n
}

func TestConvertDir_Events(t *testing.T) {
	srcDir := t.TempDir()
	writeFile(t, filepath.Join(srcDir, "a.cu"), "cudaFree(a);\n")
	writeFile(t, filepath.Join(srcDir, "b.cu"), "cudaFree(b);\n")

	sink := &recordingSink{}
	_, err := driver.ConvertDir(context.Background(), srcDir, driver.Options{
		DryRun: true,
		Jobs:   1,
		Sink:   sink,
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := sink.count(driver.StageLoad, driver.StatusQueued); got != 2 {
		t.Errorf("queued load events = %d, want 2", got)
	}
	if got := sink.count(driver.StageApply, driver.StatusDone); got != 2 {
		t.Errorf("done apply events = %d, want 2", got)
	}
}

func TestListSources(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "z.cu"), "")
	writeFile(t, filepath.Join(dir, "a.cpp"), "")
	writeFile(t, filepath.Join(dir, "skip.o"), "")

	files, err := driver.ListSources(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 {
		t.Fatalf("files = %v", files)
	}
	if filepath.Base(files[0]) != "a.cpp" || filepath.Base(files[1]) != "z.cu" {
		t.Errorf("order = %v", files)
	}
}

func TestTokenize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "k.cu")
	writeFile(t, path, "kern<<<g, b>>>(x);\n")

	res, err := driver.Tokenize(path, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Tokens) == 0 || res.Tokens[len(res.Tokens)-1].Kind != token.EOF {
		t.Fatalf("tokens = %d", len(res.Tokens))
	}
	if res.Bag.Len() != 0 {
		t.Errorf("diagnostics = %d", res.Bag.Len())
	}
}

func TestTokenize_ReportsLexicalProblems(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.cu")
	writeFile(t, path, "const char* s = \"oops;\n")

	res, err := driver.Tokenize(path, 10)
	if err != nil {
		t.Fatal(err)
	}
	if res.Bag.Len() != 1 || res.Bag.Items()[0].Code != diag.LexUnterminatedString {
		t.Errorf("diagnostics = %+v", res.Bag.Items())
	}
}
