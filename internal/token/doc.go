// Package token defines the raw token vocabulary shared by the lexer
// and the rewrite engine. The tokens are deliberately coarse: the
// translator only ever needs to tell identifiers and string literals
// apart from everything else, so no attempt is made to classify C
// keywords or to distinguish operator flavours.
package token
