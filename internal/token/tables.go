package token

// Op is the canonical spelling of an operator, used as the shared key
// between the lexer's longest-match scan and the builder's precedence
// climb, so both consult exactly one source of truth (spec §4.1).
type Op string

const (
	OpAssign         Op = ":="
	OpAddAssign      Op = "+="
	OpSubtractAssign Op = "-="
	OpMultiplyAssign Op = "*="
	OpDivideAssign   Op = "/="

	OpOr  Op = "||"
	OpAnd Op = "&&"

	OpEqual    Op = "=="
	OpNotEqual Op = "!="

	OpLess           Op = "<"
	OpLessOrEqual    Op = "<="
	OpGreater        Op = ">"
	OpGreaterOrEqual Op = ">="

	OpElementOf    Op = "in"
	OpNotElementOf Op = "not in"

	OpAdd      Op = "+"
	OpSubtract Op = "-"

	OpMultiply Op = "*"
	OpDivide   Op = "/"

	OpExponentiate Op = "^"

	OpNot    Op = "!"
	OpNegate Op = "-" // unary; shares spelling with OpSubtract, disambiguated by Category
	OpSquare Op = "²"
	OpCube   Op = "³"
	OpComma  Op = ","

	// Bootstrap operators synthesized by the lexer for if/then/else
	// (spec §4.2); never written directly by a user.
	OpIf   Op = "if_"
	OpThen Op = "_then_"
	OpElse Op = "_else"

	// OpTernaryQuestion and OpTernaryColon are the short ternary's own
	// spellings (spec §4.1/§4.2/§4.3): "cond ? then : else" builds the
	// same if_then_else node as the word form, alongside it rather than
	// through it.
	OpTernaryQuestion Op = "?"
	OpTernaryColon    Op = ":"
)

// Keywords map the reserved words of spec §4.1 that lex as OPERAND tokens.
var Keywords = map[string]bool{
	"true":  true,
	"false": true,
}

// TernaryWords are the three words that together bootstrap an
// if-then-else group (spec §4.2 step 6).
var TernaryWords = map[string]bool{
	"if":   true,
	"then": true,
	"else": true,
}

// PrefixOperators lists legal PREFIX operator spellings. The lexer does not
// read this table; it recognizes these spellings in its own operator scan.
var PrefixOperators = []string{"¬", "!", "-"}

// PostfixOperators lists legal POSTFIX operator spellings.
var PostfixOperators = []string{"²", "³"}

// InfixOperators lists legal INFIX operator spellings, multi-character
// spellings ahead of the shorter ones they share a leading character with
// (<=, <). The lexer does not read this table; it recognizes these
// spellings with its own two-rune and single-rune lookups.
var InfixOperators = []string{
	string(OpAssign), string(OpAddAssign), string(OpSubtractAssign), string(OpMultiplyAssign), string(OpDivideAssign),
	"≔", // alias of :=, only legal as a plain assignment, never combined with +-*/
	string(OpOr), "∨",
	string(OpAnd), "∧",
	string(OpLessOrEqual), "≤",
	string(OpGreaterOrEqual), "≥",
	string(OpEqual),
	string(OpNotEqual), "≠",
	string(OpLess),
	string(OpGreater),
	"not in", "∉",
	"in", "∈",
	string(OpAdd),
	string(OpSubtract),
	string(OpMultiply),
	string(OpDivide),
	string(OpExponentiate),
	string(OpTernaryQuestion),
	string(OpTernaryColon),
	string(OpComma),
}

// SymbolicNames maps a symbolic aggregation/function glyph to the handle
// callable name it stands for. Each entry must be immediately followed by
// "(" or "{" in the source (spec §4.1); the lexer enforces that, this
// table only records the translation.
var SymbolicNames = map[string]string{
	"∑": "sum",
	"√": "sqrt",
	"∛": "cbrt",
}

// UnicodeAliases maps a Unicode infix spelling to its ASCII canonical
// spelling, used by the builder's operator -> node-kind lookup so both
// "!=" and "≠" resolve to the same table entry.
var UnicodeAliases = map[string]Op{
	"≔":     OpAssign,
	"∨":     OpOr,
	"∧":     OpAnd,
	"≤":     OpLessOrEqual,
	"≥":     OpGreaterOrEqual,
	"≠":     OpNotEqual,
	"∉":     OpNotElementOf,
	"∈":     OpElementOf,
	"not in": OpNotElementOf,
	"in":    OpElementOf,
}

// Canonical resolves any legal infix spelling (ASCII or Unicode alias) to
// its canonical Op.
func Canonical(spelling string) Op {
	if canon, ok := UnicodeAliases[spelling]; ok {
		return canon
	}
	return Op(spelling)
}

// Precedence is the binding-power table of spec §4.1, from loosest (0) to
// tightest (5). The ternary operators sit at 0, below assignment (1);
// assignment is the loosest operator the two-stack reduction handles and is
// right-associative; comma is a separator handled outside this table.
//
// Two tiers are deliberately *tied* rather than split, per spec §4.1:
// multiply/divide/and share one tier, and add/subtract/or share the next
// looser one - "and"/"or" are not given a conventional C-style tier of
// their own. Likewise every comparison and membership operator (==, !=,
// <, <=, >, >=, in, not in) shares a single tier, so a chain like
// `0 == 1 < 2` reduces strictly left to right as `(0 == 1) < 2` rather
// than letting `<` bind tighter than `==`.
var Precedence = map[Op]int{
	OpIf:   0,
	OpThen: 0,
	OpElse: 0,

	// Never consulted by the generic two-stack reduction: like if/then/else,
	// the builder recognizes '?' and splices in the finished if_then_else
	// node itself rather than pushing it onto the operator stack.
	OpTernaryQuestion: 0,
	OpTernaryColon:    0,

	OpAssign:         1,
	OpAddAssign:      1,
	OpSubtractAssign: 1,
	OpMultiplyAssign: 1,
	OpDivideAssign:   1,

	OpEqual:          2,
	OpNotEqual:       2,
	OpLess:           2,
	OpLessOrEqual:    2,
	OpGreater:        2,
	OpGreaterOrEqual: 2,
	OpElementOf:      2,
	OpNotElementOf:   2,

	OpAdd:      3,
	OpSubtract: 3,
	OpOr:       3,

	OpMultiply: 4,
	OpDivide:   4,
	OpAnd:      4,

	OpExponentiate: 5,
}

// RightAssociative holds the operators that associate right-to-left:
// the ternary operators, assignment, and exponentiation (`2^3^2` ==
// `2^(3^2)`), per spec §8.
// Assignment's associativity only matters for how a single assignment
// binds against looser operators to its right - the builder separately
// rejects more than one assignment operator in a single expression (spec
// §4.3: legal only as the outermost operator).
var RightAssociative = map[Op]bool{
	OpIf:              true,
	OpThen:            true,
	OpElse:            true,
	OpTernaryQuestion: true,
	OpTernaryColon:    true,
	OpAssign:          true,
	OpAddAssign:      true,
	OpSubtractAssign: true,
	OpMultiplyAssign: true,
	OpDivideAssign:   true,
	OpExponentiate:   true,
}

// IsAssignment reports whether op is one of the five assignment operators.
func IsAssignment(op Op) bool {
	switch op {
	case OpAssign, OpAddAssign, OpSubtractAssign, OpMultiplyAssign, OpDivideAssign:
		return true
	default:
		return false
	}
}
