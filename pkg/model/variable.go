package model

import (
	"fmt"
)

type VarKind uint8

const (
	KindParameter VarKind = iota
	KindDecision
)

type VarType string

const (
	TypeInt    VarType = "int"
	TypeFloat  VarType = "float"
	TypeBool   VarType = "bool"
	TypeString VarType = "string"
)

// Variable is a named scalar of the model: either a fixed parameter carrying
// its value from construction, or a decision variable whose value stays nil
// until a solve assigns it.
type Variable struct {
	Name string
	Kind VarKind
	Type VarType

	// Value holds the parameter value, or the solved value of a decision
	// variable. Assigned at most once after construction.
	Value any

	// Lo and Hi are the inclusive domain bounds of a decision variable.
	Lo any
	Hi any
}

var autoNames uint64

// autoName produces a fresh identifier for variables constructed without one.
func autoName() string {
	autoNames++
	return fmt.Sprintf("v%v", autoNames)
}

// NewParameter builds a fixed variable from a caller-supplied scalar. The
// variable type is inferred from the value; an empty name is auto-generated.
func NewParameter(name string, value any) (*Variable, error) {
	varType, err := typeOf(value)
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = autoName()
	}
	return &Variable{
		Name:  name,
		Kind:  KindParameter,
		Type:  varType,
		Value: value,
	}, nil
}

// NewDecision builds an unknown over the inclusive integer range lo..hi. The
// bounds are not checked for ordering; an empty range is left to the solver.
func NewDecision(name string, lo, hi int) *Variable {
	if name == "" {
		name = autoName()
	}
	return &Variable{
		Name: name,
		Kind: KindDecision,
		Type: TypeInt,
		Lo:   lo,
		Hi:   hi,
	}
}

// NewDecisionFloat builds an unknown over the inclusive float range lo..hi.
func NewDecisionFloat(name string, lo, hi float64) *Variable {
	if name == "" {
		name = autoName()
	}
	return &Variable{
		Name: name,
		Kind: KindDecision,
		Type: TypeFloat,
		Lo:   lo,
		Hi:   hi,
	}
}

func typeOf(value any) (VarType, error) {
	switch value.(type) {
	case int, int64:
		return TypeInt, nil
	case float32, float64:
		return TypeFloat, nil
	case bool:
		return TypeBool, nil
	case string:
		return TypeString, nil
	default:
		return "", fmt.Errorf("unsupported parameter value %v of type %T", value, value)
	}
}
