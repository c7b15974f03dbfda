package patch_test

import (
	"errors"
	"testing"

	"hipify/internal/patch"
	"hipify/internal/source"
)

func makeLedger(t *testing.T, input string) (*patch.Ledger, *source.File) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.cu", []byte(input))
	file := fs.Get(id)
	return patch.NewLedger(file), file
}

func span(file source.FileID, start, end uint32) source.Span {
	return source.Span{File: file, Start: start, End: end}
}

func TestLedger_ApplyOrdered(t *testing.T) {
	ledger, file := makeLedger(t, "cudaMalloc and cudaFree")

	// Add out of order; Apply must still sweep forward.
	if err := ledger.Add(patch.Replacement{Span: span(file.ID, 15, 23), NewText: "hipFree"}); err != nil {
		t.Fatal(err)
	}
	if err := ledger.Add(patch.Replacement{Span: span(file.ID, 0, 10), NewText: "hipMalloc", OldText: "cudaMalloc"}); err != nil {
		t.Fatal(err)
	}

	got := string(ledger.Apply())
	if got != "hipMalloc and hipFree" {
		t.Errorf("Apply = %q", got)
	}
	if ledger.Len() != 2 {
		t.Errorf("Len = %d, want 2", ledger.Len())
	}
	if reps := ledger.Replacements(); reps[0].Span.Start != 0 {
		t.Errorf("replacements not sorted: first starts at %d", reps[0].Span.Start)
	}
}

func TestLedger_EmptyApplyReturnsOriginal(t *testing.T) {
	ledger, _ := makeLedger(t, "unchanged")
	if got := string(ledger.Apply()); got != "unchanged" {
		t.Errorf("Apply = %q", got)
	}
}

func TestLedger_OldTextMismatch(t *testing.T) {
	ledger, file := makeLedger(t, "cudaMalloc")
	err := ledger.Add(patch.Replacement{Span: span(file.ID, 0, 10), NewText: "x", OldText: "cudaFree"})
	if err == nil {
		t.Fatal("expected mismatch error")
	}
	var conflict *patch.ConflictError
	if errors.As(err, &conflict) {
		t.Error("mismatch reported as ConflictError")
	}
}

func TestLedger_OutOfRange(t *testing.T) {
	ledger, file := makeLedger(t, "abc")
	if err := ledger.Add(patch.Replacement{Span: span(file.ID, 1, 9), NewText: "x"}); err == nil {
		t.Error("expected out-of-range error")
	}
	if err := ledger.Add(patch.Replacement{Span: span(file.ID+1, 0, 1), NewText: "x"}); err == nil {
		t.Error("expected wrong-file error")
	}
}

func TestLedger_Conflicts(t *testing.T) {
	tests := []struct {
		name     string
		first    [2]uint32
		second   [2]uint32
		conflict bool
	}{
		{"disjoint", [2]uint32{0, 3}, [2]uint32{5, 8}, false},
		{"touching boundaries", [2]uint32{0, 3}, [2]uint32{3, 6}, false},
		{"identical", [2]uint32{2, 5}, [2]uint32{2, 5}, true},
		{"partial overlap", [2]uint32{2, 6}, [2]uint32{4, 9}, true},
		{"nested", [2]uint32{1, 9}, [2]uint32{3, 5}, true},
		{"insertion inside span", [2]uint32{2, 6}, [2]uint32{4, 4}, true},
		{"insertion on start boundary", [2]uint32{2, 6}, [2]uint32{2, 2}, false},
		{"insertion on end boundary", [2]uint32{2, 6}, [2]uint32{6, 6}, false},
		{"two insertions same offset", [2]uint32{4, 4}, [2]uint32{4, 4}, true},
		{"two insertions distinct offsets", [2]uint32{4, 4}, [2]uint32{5, 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger, file := makeLedger(t, "0123456789")
			if err := ledger.Add(patch.Replacement{Span: span(file.ID, tt.first[0], tt.first[1]), NewText: "A"}); err != nil {
				t.Fatalf("first Add: %v", err)
			}
			err := ledger.Add(patch.Replacement{Span: span(file.ID, tt.second[0], tt.second[1]), NewText: "B"})
			if tt.conflict {
				var conflict *patch.ConflictError
				if !errors.As(err, &conflict) {
					t.Fatalf("Add = %v, want ConflictError", err)
				}
			} else if err != nil {
				t.Fatalf("Add = %v, want nil", err)
			}
		})
	}
}

func TestLedger_InsertionsApply(t *testing.T) {
	ledger, file := makeLedger(t, "ab")
	if err := ledger.Add(patch.Insertion(file.ID, 0, "<")); err != nil {
		t.Fatal(err)
	}
	if err := ledger.Add(patch.Insertion(file.ID, 2, ">")); err != nil {
		t.Fatal(err)
	}
	if err := ledger.Add(patch.Replacement{Span: span(file.ID, 1, 2), NewText: "B"}); err != nil {
		t.Fatal(err)
	}
	if got := string(ledger.Apply()); got != "<aB>" {
		t.Errorf("Apply = %q, want \"<aB>\"", got)
	}
}

func TestLedger_DeletionShrinks(t *testing.T) {
	ledger, file := makeLedger(t, "keep DELETE keep")
	if err := ledger.Add(patch.Replacement{Span: span(file.ID, 4, 11), NewText: ""}); err != nil {
		t.Fatal(err)
	}
	if got := string(ledger.Apply()); got != "keep keep" {
		t.Errorf("Apply = %q", got)
	}
}
