package diag

import "fmt"

// Category classifies a semantic error. Every category corresponds to one
// local consistency rule checked during type inference.
type Category int

const (
	AssignToWrongType     Category = iota + 1 // left hand side of assignment incompatible with right
	UndefinedName                             // variable name not defined
	DuplicateName                             // name declared multiple times
	InvalidNegation                           // ! or - applied to an incompatible expression
	InvalidBinaryOp                           // binary operator applied to incompatible operands
	ConditionNotBool                          // if/while condition not a Bool
	UnprintableExpression                     // print of an expression without a valid type
	InvalidReturn                             // return value does not fit the enclosing scope
	InvalidCall                               // call of a non-function or with bad arguments
)

var categoryNames = map[Category]string{
	AssignToWrongType:     "ASSIGN_TO_WRONG_TYPE",
	UndefinedName:         "UNDEFINED_NAME",
	DuplicateName:         "DUPLICATE_NAME",
	InvalidNegation:       "INVALID_NEGATION",
	InvalidBinaryOp:       "INVALID_BINARY_OP",
	ConditionNotBool:      "CONDITION_NOT_BOOL",
	UnprintableExpression: "UNPRINTABLE_EXPRESSION",
	InvalidReturn:         "INVALID_RETURN",
	InvalidCall:           "INVALID_CALL",
}

// Categories lists every category in declaration order.
func Categories() []Category {
	out := make([]Category, 0, len(categoryNames))
	for c := AssignToWrongType; c <= InvalidCall; c++ {
		out = append(out, c)
	}
	return out
}

func (c Category) String() string {
	if s, ok := categoryNames[c]; ok {
		return s
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Code returns the stable catalog code for c, e.g. "NSE0002".
func (c Category) Code() string {
	return c.entry().ID
}

// Title returns the short catalog title for c.
func (c Category) Title() string {
	return c.entry().Title
}

func (c Category) entry() CodeEntry {
	return MustLookup("semantic", c.String(), fmt.Sprintf("NSE%04d", int(c)), c.String())
}

// ParseCategory maps a category name back to its value.
func ParseCategory(name string) (Category, bool) {
	for c, s := range categoryNames {
		if s == name {
			return c, true
		}
	}
	return 0, false
}
