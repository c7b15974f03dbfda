package preproc

import (
	"hipify/internal/source"
)

// Scan walks the file line by line and collects directive events.
// Directives inside block comments are ignored. A '#' only introduces
// a directive when it is the first non-whitespace byte of a line.
func Scan(f *source.File) Events {
	s := scanner{file: f, content: f.Content}
	return s.scan()
}

type scanner struct {
	file    *source.File
	content []byte
	off     uint32
	events  Events

	// inBlockComment carries /* ... */ state across lines.
	inBlockComment bool
}

func (s *scanner) scan() Events {
	for int(s.off) < len(s.content) {
		lineStart := s.off
		lineEnd := s.lineEnd(lineStart)
		s.scanLine(lineStart, lineEnd)
		s.off = lineEnd + 1
	}
	s.events.ControllingMacro = s.controllingMacro()
	return s.events
}

// lineEnd returns the offset of the '\n' terminating the logical line
// starting at off, folding backslash continuations into one line.
func (s *scanner) lineEnd(off uint32) uint32 {
	i := off
	for int(i) < len(s.content) {
		if s.content[i] == '\n' {
			if i > off && s.content[i-1] == '\\' {
				i++
				continue
			}
			return i
		}
		i++
	}
	return i
}

func (s *scanner) scanLine(start, end uint32) {
	i := start
	if s.inBlockComment {
		closed, rest := skipBlockComment(s.content, i, end)
		if !closed {
			return
		}
		s.inBlockComment = false
		i = rest
	}
	i = skipHorizontalSpace(s.content, i, end)
	if i >= end || s.content[i] != '#' {
		s.trackBlockComment(i, end)
		return
	}
	hashOff := i
	i = skipHorizontalSpace(s.content, i+1, end)
	word, i := scanWord(s.content, i, end)
	switch word {
	case "include":
		s.scanInclude(hashOff, i, end)
	case "pragma":
		s.scanPragma(hashOff, i, end)
	case "ifndef":
		s.scanIfndef(i, end)
	case "define":
		s.scanDefine(i, end)
	}
	s.trackBlockComment(i, end)
}

func (s *scanner) scanInclude(hashOff, i, end uint32) {
	i = skipHorizontalSpace(s.content, i, end)
	if i >= end {
		return
	}
	var closer byte
	angled := false
	switch s.content[i] {
	case '<':
		closer = '>'
		angled = true
	case '"':
		closer = '"'
	default:
		return
	}
	nameStart := i + 1
	j := nameStart
	for j < end && s.content[j] != closer {
		j++
	}
	if j >= end {
		return
	}
	s.events.Inclusions = append(s.events.Inclusions, Inclusion{
		HashOff:  hashOff,
		Filename: string(s.content[nameStart:j]),
		Angled:   angled,
		FilenameSpan: source.Span{
			File:  s.file.ID,
			Start: i,
			End:   j + 1,
		},
	})
}

func (s *scanner) scanPragma(hashOff, i, end uint32) {
	i = skipHorizontalSpace(s.content, i, end)
	word, j := scanWord(s.content, i, end)
	if word != "once" || s.events.PragmaOnce != nil {
		return
	}
	s.events.PragmaOnce = &PragmaOnce{HashOff: hashOff, EndOff: j}
}

func (s *scanner) scanIfndef(i, end uint32) {
	i = skipHorizontalSpace(s.content, i, end)
	word, j := scanWord(s.content, i, end)
	if word == "" {
		return
	}
	s.events.Ifndefs = append(s.events.Ifndefs, Ifndef{
		Macro:         word,
		AfterMacroOff: j,
		MacroSpan:     source.Span{File: s.file.ID, Start: i, End: j},
	})
}

func (s *scanner) scanDefine(i, end uint32) {
	i = skipHorizontalSpace(s.content, i, end)
	word, j := scanWord(s.content, i, end)
	if word == "" {
		return
	}
	// Function-like macros: the parameter list belongs to the head,
	// the body starts after the closing paren.
	if j < end && s.content[j] == '(' {
		for j < end && s.content[j] != ')' {
			j++
		}
		if j < end {
			j++
		}
	}
	bodyStart := skipHorizontalSpace(s.content, j, end)
	s.events.Defines = append(s.events.Defines, Define{
		Name:     word,
		BodySpan: source.Span{File: s.file.ID, Start: bodyStart, End: end},
	})
}

// controllingMacro recognizes the classic include-guard shape: the
// file's first #ifndef immediately followed (among directives) by a
// #define of the same macro.
func (s *scanner) controllingMacro() string {
	if len(s.events.Ifndefs) == 0 || len(s.events.Defines) == 0 {
		return ""
	}
	guard := s.events.Ifndefs[0]
	for _, def := range s.events.Defines {
		if def.BodySpan.Start < guard.AfterMacroOff {
			continue
		}
		if def.Name == guard.Macro {
			return guard.Macro
		}
		// The first #define after the guard is something else: the
		// #ifndef is a conditional block, not a file guard.
		return ""
	}
	return ""
}

// trackBlockComment updates the open-comment state for the rest of the
// line after a directive (or a plain code line).
func (s *scanner) trackBlockComment(i, end uint32) {
	for i < end {
		if s.inBlockComment {
			closed, rest := skipBlockComment(s.content, i, end)
			if !closed {
				return
			}
			s.inBlockComment = false
			i = rest
			continue
		}
		if s.content[i] == '/' && i+1 < end {
			switch s.content[i+1] {
			case '/':
				return
			case '*':
				s.inBlockComment = true
				i += 2
				continue
			}
		}
		i++
	}
}

func skipBlockComment(content []byte, i, end uint32) (closed bool, rest uint32) {
	for i+1 < end {
		if content[i] == '*' && content[i+1] == '/' {
			return true, i + 2
		}
		i++
	}
	return false, end
}

func skipHorizontalSpace(content []byte, i, end uint32) uint32 {
	for i < end {
		switch content[i] {
		case ' ', '\t', '\r':
			i++
		case '\\':
			// Continuation: the folded newline acts as space.
			if i+1 < end && content[i+1] == '\n' {
				i += 2
				continue
			}
			return i
		default:
			return i
		}
	}
	return i
}

func scanWord(content []byte, i, end uint32) (string, uint32) {
	start := i
	for i < end {
		b := content[i]
		if b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9') {
			i++
			continue
		}
		break
	}
	return string(content[start:i]), i
}
