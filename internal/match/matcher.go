package match

import (
	"strings"

	"hipify/internal/source"
	"hipify/internal/token"
)

// Options configures the matcher.
type Options struct {
	// ExtTypes allows extension builtin type names (__half and
	// friends) in shared-array element types. When disabled, such a
	// type cannot be named and the declaration is left alone.
	ExtTypes bool
	// IsBuiltinDevice reports whether a name is a device function
	// declared by the runtime headers, which the matcher cannot see.
	IsBuiltinDevice func(name string) bool
}

// Scan finds all structural matches in the token stream, in source
// order. The tokens must come from the raw lexer for the same file.
//
// Every produced range is plain: the matcher works on the written
// text, so nothing it sees originates from a macro expansion.
func Scan(file *source.File, toks []token.Token, opts Options) []Match {
	m := matcher{
		file: file,
		toks: significant(toks),
		opts: opts,
	}
	m.collectLocalDeviceFuncs()
	return m.scan()
}

type matcher struct {
	file *source.File
	toks []token.Token
	opts Options

	// localDevice holds functions defined in this file with a device
	// or kernel attribute and no host attribute.
	localDevice map[string]bool
}

// significant drops comments; the matcher never needs them and
// skipping them here keeps every index adjacent.
func significant(toks []token.Token) []token.Token {
	out := make([]token.Token, 0, len(toks))
	for _, t := range toks {
		if t.Kind == token.Comment {
			continue
		}
		out = append(out, t)
	}
	return out
}

const (
	attrDevice = "__device__"
	attrGlobal = "__global__"
	attrHost   = "__host__"
	attrShared = "__shared__"
)

// collectLocalDeviceFuncs records names of functions defined in this
// file whose attribute set marks them device-side. Attributes are
// accumulated per statement: any boundary token resets them.
func (m *matcher) collectLocalDeviceFuncs() {
	m.localDevice = make(map[string]bool)
	var device, global, host bool
	reset := func() { device, global, host = false, false, false }
	for i := 0; i < len(m.toks); i++ {
		t := m.toks[i]
		switch {
		case t.Kind == token.Ident:
			switch t.Text {
			case attrDevice:
				device = true
				continue
			case attrGlobal:
				global = true
				continue
			case attrHost:
				host = true
				continue
			}
			if (device || global) && !host && i+1 < len(m.toks) &&
				m.toks[i+1].Kind == token.Punct && m.toks[i+1].Text == "(" {
				m.localDevice[t.Text] = true
			}
		case t.Kind == token.Punct:
			switch t.Text {
			case ";", "{", "}":
				reset()
			}
		}
	}
}

func (m *matcher) scan() []Match {
	var out []Match
	// skipUntil suppresses device-call matches inside an already
	// matched launch expression; its replacement covers the whole
	// range, and a nested patch would collide with it.
	var skipUntil uint32

	for i := 0; i < len(m.toks); i++ {
		if m.isTripleAngle(i, '<') {
			if launch, next := m.matchLaunch(i); launch != nil {
				out = append(out, Match{Kind: KindLaunch, Launch: launch})
				// Suppress device-call matches under the head only; the
				// argument list survives the rewrite and is scanned on.
				skipUntil = launch.Head.End.Off
				i = next
				continue
			}
		}
		if sh, next := m.matchSharedArray(i); sh != nil {
			out = append(out, Match{Kind: KindSharedArray, Shared: sh})
			i = next
			continue
		}
		if dc := m.matchDeviceCall(i, skipUntil); dc != nil {
			out = append(out, Match{Kind: KindDeviceCall, DeviceCall: dc})
		}
	}
	return out
}

// isTripleAngle reports whether toks[i..i+2] are three adjacent angle
// brackets of the given direction. The lexer emits one token per
// punctuation byte, so <<< and >>> show up as adjacent spans.
func (m *matcher) isTripleAngle(i int, b byte) bool {
	if i+2 >= len(m.toks) {
		return false
	}
	want := string(b)
	for k := 0; k < 3; k++ {
		t := m.toks[i+k]
		if t.Kind != token.Punct || t.Text != want {
			return false
		}
	}
	return m.toks[i].Span.Start+1 == m.toks[i+1].Span.Start &&
		m.toks[i+1].Span.Start+1 == m.toks[i+2].Span.Start
}

// matchLaunch parses a launch expression around the <<< at index i.
// It returns the match and the index of the argument list's '(', so
// the caller keeps scanning inside the arguments. (nil, 0) when the
// shape does not hold.
func (m *matcher) matchLaunch(i int) (*Launch, int) {
	calleeFirst, isTemplate, ok := m.calleeStart(i - 1)
	if !ok {
		return nil, 0
	}

	configs, afterCfg, ok := m.parseConfigArgs(i + 3)
	if !ok || len(configs) < 2 || len(configs) > 4 {
		return nil, 0
	}

	// The ordinary argument list follows immediately.
	if afterCfg >= len(m.toks) || !m.isPunct(afterCfg, "(") {
		return nil, 0
	}
	argsFirst, argsLast, closeParen, ok := m.parseCallArgs(afterCfg)
	if !ok {
		return nil, 0
	}

	fileID := m.file.ID
	launch := &Launch{
		Expr:             PlainRange(fileID, m.toks[calleeFirst].Span.Start, m.toks[closeParen].Span.End),
		Head:             PlainRange(fileID, m.toks[calleeFirst].Span.Start, m.toks[afterCfg].Span.End),
		Callee:           PlainRange(fileID, m.toks[calleeFirst].Span.Start, m.toks[i-1].Span.End),
		CalleeIsTemplate: isTemplate,
	}
	for k, cfg := range configs {
		launch.Config[k] = cfg
	}
	for k := len(configs); k < 4; k++ {
		launch.Config[k] = ConfigArg{Defaulted: true}
	}
	if argsFirst >= 0 {
		launch.HasArgs = true
		launch.Args = PlainRange(fileID, m.toks[argsFirst].Span.Start, m.toks[argsLast].Span.End)
	}
	return launch, afterCfg
}

// calleeStart walks backwards from the token before <<< to the first
// token of the callee expression: an identifier, optionally qualified
// with ::, optionally carrying an explicit template argument list.
func (m *matcher) calleeStart(last int) (first int, isTemplate bool, ok bool) {
	j := last
	if j < 0 {
		return 0, false, false
	}
	if m.isPunct(j, ">") {
		isTemplate = true
		depth := 1
		j--
		for j >= 0 && depth > 0 {
			switch {
			case m.isPunct(j, ">"):
				depth++
			case m.isPunct(j, "<"):
				depth--
			}
			j--
		}
		if depth != 0 {
			return 0, false, false
		}
	}
	if j < 0 || m.toks[j].Kind != token.Ident {
		return 0, false, false
	}
	// Qualified names: walk over ident::ident:: chains.
	for j >= 2 && m.isPunct(j-1, ":") && m.isPunct(j-2, ":") {
		if j-3 < 0 || m.toks[j-3].Kind != token.Ident {
			break
		}
		j -= 3
	}
	return j, isTemplate, true
}

// parseConfigArgs splits the tokens between <<< and >>> on top-level
// commas. It returns the parsed arguments and the index just past the
// closing >>>.
func (m *matcher) parseConfigArgs(start int) ([]ConfigArg, int, bool) {
	var args []ConfigArg
	depth := 0
	argFirst := -1
	argLast := -1
	flush := func() bool {
		if argFirst < 0 {
			return false
		}
		args = append(args, ConfigArg{
			Range: PlainRange(m.file.ID, m.toks[argFirst].Span.Start, m.toks[argLast].Span.End),
		})
		argFirst, argLast = -1, -1
		return true
	}
	for j := start; j < len(m.toks); j++ {
		if depth == 0 && m.isTripleAngle(j, '>') {
			if len(args) > 0 || argFirst >= 0 {
				if !flush() {
					return nil, 0, false
				}
			}
			return args, j + 3, true
		}
		t := m.toks[j]
		if t.Kind == token.Punct {
			switch t.Text {
			case "(", "[", "{":
				depth++
			case ")", "]", "}":
				depth--
			case ",":
				if depth == 0 {
					if !flush() {
						return nil, 0, false
					}
					continue
				}
			}
		}
		if argFirst < 0 {
			argFirst = j
		}
		argLast = j
	}
	return nil, 0, false
}

// parseCallArgs scans a parenthesized argument list starting at the
// '(' at index open. It returns the indices of the first and last
// argument tokens (-1 when the list is empty) and of the ')'.
func (m *matcher) parseCallArgs(open int) (argsFirst, argsLast, closeParen int, ok bool) {
	argsFirst, argsLast = -1, -1
	depth := 0
	for j := open; j < len(m.toks); j++ {
		t := m.toks[j]
		if t.Kind == token.Punct {
			switch t.Text {
			case "(", "[", "{":
				depth++
				if depth == 1 {
					continue
				}
			case ")", "]", "}":
				depth--
				if depth == 0 {
					return argsFirst, argsLast, j, true
				}
			}
		}
		if depth >= 1 {
			if argsFirst < 0 {
				argsFirst = j
			}
			argsLast = j
		}
	}
	return 0, 0, 0, false
}

// matchSharedArray recognizes: extern __shared__ T name[];
// It returns the match and the index of the closing ']'.
func (m *matcher) matchSharedArray(i int) (*SharedArray, int) {
	if m.toks[i].Kind != token.Ident || m.toks[i].Text != "extern" {
		return nil, 0
	}
	if i+1 >= len(m.toks) || m.toks[i+1].Kind != token.Ident || m.toks[i+1].Text != attrShared {
		return nil, 0
	}
	// Type tokens run until the declarator: the identifier directly
	// followed by '['.
	j := i + 2
	var typeToks []token.Token
	for ; j < len(m.toks); j++ {
		t := m.toks[j]
		if t.Kind == token.Ident && j+1 < len(m.toks) && m.isPunct(j+1, "[") {
			break
		}
		if t.Kind != token.Ident && !(t.Kind == token.Punct && t.Text == "*") {
			return nil, 0
		}
		typeToks = append(typeToks, t)
	}
	if j >= len(m.toks) || len(typeToks) == 0 {
		return nil, 0
	}
	// Incomplete array only: '[' immediately closed by ']'.
	if j+2 >= len(m.toks) || !m.isPunct(j+1, "[") || !m.isPunct(j+2, "]") {
		return nil, 0
	}
	varName := m.toks[j].Text
	typeName := resolveTypeName(typeToks, m.opts.ExtTypes)
	sh := &SharedArray{
		Prefix: source.Span{
			File:  m.file.ID,
			Start: m.toks[i].Span.Start,
			End:   m.toks[j+2].Span.End,
		},
		TypeName: typeName,
		VarName:  varName,
	}
	return sh, j + 2
}

func (m *matcher) matchDeviceCall(i int, skipUntil uint32) *DeviceCall {
	t := m.toks[i]
	if t.Kind != token.Ident || t.Span.Start < skipUntil {
		return nil
	}
	if i+1 >= len(m.toks) || !m.isPunct(i+1, "(") {
		return nil
	}
	// A preceding identifier means this is a declaration, not a call.
	if i > 0 && m.toks[i-1].Kind == token.Ident {
		return nil
	}
	known := m.localDevice[t.Text]
	if !known && m.opts.IsBuiltinDevice != nil {
		known = m.opts.IsBuiltinDevice(t.Text)
	}
	if !known {
		return nil
	}
	return &DeviceCall{Name: t.Text, NameSpan: t.Span}
}

func (m *matcher) isPunct(i int, text string) bool {
	return i >= 0 && i < len(m.toks) && m.toks[i].Kind == token.Punct && m.toks[i].Text == text
}

// builtinWords is the vocabulary of C builtin type specifiers that may
// make up a shared-array element type.
var builtinWords = map[string]bool{
	"signed": true, "unsigned": true,
	"char": true, "short": true, "int": true, "long": true,
	"float": true, "double": true, "bool": true,
}

// extTypeWords are extension builtin types, nameable only when the
// matcher runs with extension types enabled.
var extTypeWords = map[string]bool{
	"__half": true, "__half2": true,
}

// resolveTypeName turns the element-type tokens into one canonical
// spelling. Builtin specifier combinations are normalized ("unsigned"
// becomes "unsigned int"); anything else keeps its written spelling.
// An unnameable type yields the empty string.
func resolveTypeName(typeToks []token.Token, extTypes bool) string {
	words := make([]string, 0, len(typeToks))
	builtin := true
	for _, t := range typeToks {
		words = append(words, t.Text)
		if !builtinWords[t.Text] {
			builtin = false
		}
	}
	if builtin {
		return canonicalBuiltin(words)
	}
	if len(words) == 1 && extTypeWords[words[0]] {
		if !extTypes {
			return ""
		}
		return words[0]
	}
	return strings.Join(words, " ")
}

// canonicalBuiltin normalizes a builtin specifier sequence the way the
// compiler spells the canonical type.
func canonicalBuiltin(words []string) string {
	joined := strings.Join(words, " ")
	switch joined {
	case "unsigned":
		return "unsigned int"
	case "signed":
		return "int"
	case "signed int":
		return "int"
	case "unsigned long":
		return "unsigned long"
	case "long long":
		return "long long"
	case "signed char":
		return "signed char"
	}
	return joined
}
