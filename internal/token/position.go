// Package token defines LIMEX's lexical tables: positions, the token
// category/kind taxonomy, the token tree node, and the static operator
// tables the lexer and builder both consult.
package token

import "fmt"

// Position locates a token in the original source, counted in runes (not
// bytes, not display columns) so multi-byte glyphs such as ∑ or ≤ occupy a
// single column, matching the teacher's lexer.Position convention.
type Position struct {
	Line   int
	Column int
	Offset int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
