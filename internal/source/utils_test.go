package source_test

import (
	"testing"

	"hipify/internal/source"
)

func TestResolve_LineCol(t *testing.T) {
	fs := source.NewFileSet()
	// Offsets: line 1 is [0,12], line 2 is [13,25], line 3 is [26,31].
	id := fs.AddVirtual("pos.cu", []byte("cudaFree(a);\ncudaFree(b);\nthird\n"))

	tests := []struct {
		name string
		off  uint32
		want source.LineCol
	}{
		{"start of file", 0, source.LineCol{Line: 1, Col: 1}},
		{"last byte of line 1", 11, source.LineCol{Line: 1, Col: 12}},
		{"newline ends its line", 12, source.LineCol{Line: 1, Col: 13}},
		{"start of line 2", 13, source.LineCol{Line: 2, Col: 1}},
		{"inside line 2", 20, source.LineCol{Line: 2, Col: 8}},
		{"start of line 3", 26, source.LineCol{Line: 3, Col: 1}},
		{"final newline", 31, source.LineCol{Line: 3, Col: 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := fs.Resolve(source.Span{File: id, Start: tt.off, End: tt.off})
			if got != tt.want {
				t.Errorf("offset %d = %d:%d, want %d:%d",
					tt.off, got.Line, got.Col, tt.want.Line, tt.want.Col)
			}
		})
	}
}

func TestResolve_NoNewlines(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("one.cu", []byte("abc"))
	got, _ := fs.Resolve(source.Span{File: id, Start: 2, End: 2})
	if got != (source.LineCol{Line: 1, Col: 3}) {
		t.Errorf("got %d:%d, want 1:3", got.Line, got.Col)
	}
}

func TestGetLine(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("pos.cu", []byte("first\nsecond\nthird"))
	f := fs.Get(id)

	if got := f.GetLine(2); got != "second" {
		t.Errorf("line 2 = %q", got)
	}
	if got := f.GetLine(3); got != "third" {
		t.Errorf("line 3 = %q", got)
	}
	if got := f.GetLine(4); got != "" {
		t.Errorf("line 4 = %q", got)
	}
}

func TestDenormalizeOutput(t *testing.T) {
	crlf := source.DenormalizeOutput(source.FileNormalizedCRLF, []byte("a\nb\n"))
	if string(crlf) != "a\r\nb\r\n" {
		t.Errorf("CRLF output = %q", crlf)
	}

	bom := source.DenormalizeOutput(source.FileHadBOM, []byte("x"))
	if string(bom) != "\xEF\xBB\xBFx" {
		t.Errorf("BOM output = %q", bom)
	}

	plain := source.DenormalizeOutput(0, []byte("a\nb\n"))
	if string(plain) != "a\nb\n" {
		t.Errorf("plain output = %q", plain)
	}
}
