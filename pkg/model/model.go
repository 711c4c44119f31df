package model

import (
	"fmt"
)

type Objective string

const (
	Satisfy  Objective = "satisfy"
	Maximize Objective = "maximize"
	Minimize Objective = "minimize"
)

// Model aggregates the parameters, decision variables and constraints of a
// single solve. It holds shared references to caller-owned variables and is a
// read-only view for serialization; only a successful solve writes back into
// the decision variables.
type Model struct {
	Parameters  []*Variable
	Decisions   []*Variable
	Constraints []*Constraint

	Objective Objective
	// ObjectiveExpr is the expression extremized by maximize/minimize.
	// Ignored for satisfy.
	ObjectiveExpr string

	index map[string]*Variable
}

func NewModel() *Model {
	return &Model{
		Objective: Satisfy,
		index:     map[string]*Variable{},
	}
}

func (m *Model) AddParameter(variable *Variable) error {
	if variable.Kind != KindParameter {
		return fmt.Errorf("%v is not a parameter", variable.Name)
	} else if err := m.register(variable); err != nil {
		return err
	}
	m.Parameters = append(m.Parameters, variable)
	return nil
}

func (m *Model) AddDecision(variable *Variable) error {
	if variable.Kind != KindDecision {
		return fmt.Errorf("%v is not a decision variable", variable.Name)
	} else if err := m.register(variable); err != nil {
		return err
	}
	m.Decisions = append(m.Decisions, variable)
	return nil
}

// AddConstraint registers a constraint whose operands must already belong to
// the model.
func (m *Model) AddConstraint(constraint *Constraint) error {
	for _, operand := range []*Variable{constraint.Left, constraint.Right} {
		if registered, ok := m.index[operand.Name]; !ok || registered != operand {
			return fmt.Errorf("constraint operand %v is not a variable of this model", operand.Name)
		}
	}
	m.Constraints = append(m.Constraints, constraint)
	return nil
}

// Lookup resolves a variable of the model by name.
func (m *Model) Lookup(name string) (*Variable, bool) {
	variable, ok := m.index[name]
	return variable, ok
}

// Variable names are the identity solved values are matched back on, hence
// collisions are rejected at construction time.
func (m *Model) register(variable *Variable) error {
	if _, ok := m.index[variable.Name]; ok {
		return fmt.Errorf("a variable named %v already belongs to the model", variable.Name)
	}
	m.index[variable.Name] = variable
	return nil
}
