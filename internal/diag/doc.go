// Package diag carries the diagnostics produced while translating a
// file: warnings about CUDA constructs that have no HIP/ROC equivalent,
// lexical problems, and I/O failures. Each phase appends to a Bag; the
// CLI collects everything and formats it at the end.
package diag
