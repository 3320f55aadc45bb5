// Package ast defines LIMEX's abstract syntax tree. It uses one closed
// tagged-variant node type rather than one Go type per node kind: every
// node carries the same Kind enum plus whichever payload that kind needs
// (an inline literal value, a name-table index, or child nodes). This
// keeps pattern matching over the tree a single switch instead of a type
// switch over dozens of concrete types, and - per the accompanying design
// note - the node never stores a back-reference to its owning expression;
// name tables are passed down as plain parameters to whatever needs them
// (stringification, evaluation), which keeps the tree trivially copyable
// and avoids a reference cycle.
package ast

import "github.com/bpmn-os/limex/value"

// Kind enumerates every AST node shape LIMEX can produce.
type Kind int

const (
	KindLiteral Kind = iota
	KindVariable
	KindCollection
	KindGroup
	KindSet
	KindSequence
	KindFunctionCall
	KindAggregation
	KindIndex

	KindNegate
	KindLogicalNot
	KindSquare
	KindCube

	KindAdd
	KindSubtract
	KindMultiply
	KindDivide
	KindExponentiate

	KindLogicalAnd
	KindLogicalOr

	KindLessThan
	KindLessOrEqual
	KindGreaterThan
	KindGreaterOrEqual
	KindEqualTo
	KindNotEqualTo

	KindElementOf
	KindNotElementOf

	KindIfThenElse

	KindAssign
	KindAddAssign
	KindSubtractAssign
	KindMultiplyAssign
	KindDivideAssign
)

var kindNames = map[Kind]string{
	KindLiteral:        "literal",
	KindVariable:       "variable",
	KindCollection:     "collection",
	KindGroup:          "group",
	KindSet:            "set",
	KindSequence:       "sequence",
	KindFunctionCall:   "function_call",
	KindAggregation:    "aggregation",
	KindIndex:          "index",
	KindNegate:         "negate",
	KindLogicalNot:     "logical_not",
	KindSquare:         "square",
	KindCube:           "cube",
	KindAdd:            "add",
	KindSubtract:       "subtract",
	KindMultiply:       "multiply",
	KindDivide:         "divide",
	KindExponentiate:   "exponentiate",
	KindLogicalAnd:     "logical_and",
	KindLogicalOr:      "logical_or",
	KindLessThan:       "less_than",
	KindLessOrEqual:    "less_or_equal",
	KindGreaterThan:    "greater_than",
	KindGreaterOrEqual: "greater_or_equal",
	KindEqualTo:        "equal_to",
	KindNotEqualTo:     "not_equal_to",
	KindElementOf:      "element_of",
	KindNotElementOf:   "not_element_of",
	KindIfThenElse:     "if_then_else",
	KindAssign:         "assign",
	KindAddAssign:      "add_assign",
	KindSubtractAssign: "subtract_assign",
	KindMultiplyAssign: "multiply_assign",
	KindDivideAssign:   "divide_assign",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "internal"
}

// Node is LIMEX's single AST node shape. Literal only populates Value;
// Variable/Collection nodes only populate Index (into the owning
// Expression's variable or collection name table); an Index node populates
// Children with its Collection node and its index subtree;
// FunctionCall/Aggregation nodes populate Index (into the Handle's
// callable table) and Children (the argument subtrees); every operator
// kind populates Children with its operand subtrees (1 for unary/postfix,
// 2 for binary, 3 for if_then_else) - except KindAssign, whose single
// child is the RHS only: the LHS is rewritten out of band into the
// owning Expression's target rather than kept as a child (spec §4.3).
type Node[V value.Number[V]] struct {
	Kind     Kind
	Value    V
	Index    int
	Children []*Node[V]
}

// NameTables holds the ordered, deduplicated variable and collection
// names an Expression's AST refers to by Index. Passed as a plain
// parameter rather than stored on Node, per the package doc.
type NameTables struct {
	Variables   []string
	Collections []string
}
