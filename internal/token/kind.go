package token

// Kind represents the category of a raw source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident is an identifier, including keywords; the raw pass does not
	// separate them.
	Ident
	// Number is an integer or floating point literal, including C
	// suffixes (0x1fULL, 1.5f).
	Number
	// StringLit is a double-quoted string literal.
	StringLit
	// CharLit is a single-quoted character literal.
	CharLit
	// Punct covers operators and punctuation, one token per byte.
	Punct
	// Comment is a line or block comment. Comments are tokens rather
	// than trivia so that the rewrite pass can skip them explicitly.
	Comment
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case EOF:
		return "EOF"
	case Ident:
		return "Ident"
	case Number:
		return "Number"
	case StringLit:
		return "StringLit"
	case CharLit:
		return "CharLit"
	case Punct:
		return "Punct"
	case Comment:
		return "Comment"
	}
	return "Unknown"
}
