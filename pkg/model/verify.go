package model

import (
	"log"

	"github.com/samber/lo"
)

// Verify checks every constraint of the model against the currently assigned
// variable values. It reports false if any constraint is violated or involves
// a variable that has no value yet.
func (m *Model) Verify() bool {
	return lo.EveryBy(m.Constraints, func(constraint *Constraint) bool {
		return holds(constraint)
	})
}

func holds(constraint *Constraint) bool {
	left, right := constraint.Left.Value, constraint.Right.Value
	if left == nil || right == nil {
		return false
	}

	comparison, comparable := compare(left, right)
	switch constraint.Operator {
	case OpEq:
		return comparable && comparison == 0
	case OpNe:
		return comparable && comparison != 0
	case OpLt:
		return comparable && comparison < 0
	case OpLe:
		return comparable && comparison <= 0
	case OpGt:
		return comparable && comparison > 0
	case OpGe:
		return comparable && comparison >= 0
	}
	log.Panicf("unreachable: %v is not a valid relational operator", constraint.Operator)
	return false
}

// compare orders two scalar values. Numbers compare numerically across
// int/float, strings lexicographically, and bools with false < true; mixed
// kinds are not comparable.
func compare(left, right any) (int, bool) {
	if a, okA := asFloat(left); okA {
		b, okB := asFloat(right)
		if !okB {
			return 0, false
		}
		switch {
		case a < b:
			return -1, true
		case a > b:
			return 1, true
		}
		return 0, true
	}

	switch a := left.(type) {
	case string:
		b, ok := right.(string)
		if !ok {
			return 0, false
		}
		switch {
		case a < b:
			return -1, true
		case a > b:
			return 1, true
		}
		return 0, true
	case bool:
		b, ok := right.(bool)
		if !ok {
			return 0, false
		}
		switch {
		case !a && b:
			return -1, true
		case a && !b:
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}
