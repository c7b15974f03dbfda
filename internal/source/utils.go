package source

import (
	"path/filepath"
	"slices"
)

// normalizeCRLF replaces every \r\n with \n, leaving lone \r untouched.
// Returns the resulting slice and whether any replacement happened.
func normalizeCRLF(content []byte) ([]byte, bool) {
	// Fast path: no \r at all.
	if !slices.Contains(content, '\r') {
		return content, false
	}

	out := make([]byte, 0, len(content))
	changed := false

	i := 0
	for i < len(content) {
		if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			out = append(out, '\n')
			i += 2
			changed = true
		} else {
			out = append(out, content[i])
			i++
		}
	}
	return out, changed
}

func removeBOM(content []byte) ([]byte, bool) {
	if len(content) < 3 {
		return content, false
	}

	if content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return content[3:], true
	}

	return content, false
}

func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 0, len(content)/32)
	for i, b := range content {
		if b == '\n' {
			out = append(out, uint32(i))
		}
	}
	return out
}

func toLineCol(lineIdx []uint32, off uint32) LineCol {
	// Binary search: the largest lineIdx[i] strictly before off. The
	// offset sits on line hi+2 then (hi+1 newlines precede it); a
	// newline byte itself belongs to the line it terminates.
	lo, hi := 0, len(lineIdx)-1
	for lo <= hi {
		mid := (lo + hi) >> 1
		if lineIdx[mid] < off {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	if hi < 0 {
		return LineCol{Line: 1, Col: off + 1}
	}
	return LineCol{Line: uint32(hi) + 2, Col: off - lineIdx[hi]}
}

// DenormalizeOutput undoes the load-time normalizations for content
// about to be written back to disk: newlines become CRLF again when
// the input used them, and a stripped BOM is restored. Untouched
// regions of a converted file keep their original bytes this way.
func DenormalizeOutput(flags FileFlags, content []byte) []byte {
	if flags&FileNormalizedCRLF != 0 {
		out := make([]byte, 0, len(content)+len(content)/8)
		for _, b := range content {
			if b == '\n' {
				out = append(out, '\r')
			}
			out = append(out, b)
		}
		content = out
	}
	if flags&FileHadBOM != 0 {
		withBOM := make([]byte, 0, len(content)+3)
		withBOM = append(withBOM, 0xEF, 0xBB, 0xBF)
		content = append(withBOM, content...)
	}
	return content
}

func normalizePath(p string) string {
	// One canonical form for cross-platform diffs.
	return filepath.ToSlash(filepath.Clean(p))
}
