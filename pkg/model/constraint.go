package model

import (
	"fmt"
	"slices"
)

type Operator string

const (
	OpEq Operator = "="
	OpNe Operator = "!="
	OpLt Operator = "<"
	OpLe Operator = "<="
	OpGt Operator = ">"
	OpGe Operator = ">="
)

var operators = []Operator{OpEq, OpNe, OpLt, OpLe, OpGt, OpGe}

// Constraint is a binary relational assertion between two variables. Operand
// order is preserved all the way into the emitted solver text.
type Constraint struct {
	Left     *Variable
	Operator Operator
	Right    *Variable
}

// NewConstraint builds a relational constraint. Operand types are not checked
// for comparability; an incompatible pair is left to the solver to reject.
func NewConstraint(left *Variable, operator Operator, right *Variable) (*Constraint, error) {
	if left == nil || right == nil {
		return nil, fmt.Errorf("constraint operands must not be nil")
	} else if !slices.Contains(operators, operator) {
		return nil, fmt.Errorf("%v is not a valid relational operator", operator)
	}
	return &Constraint{Left: left, Operator: operator, Right: right}, nil
}
