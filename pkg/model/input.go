package model

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
)

type ParameterInput struct {
	Name  string
	Value any
}

type DecisionInput struct {
	Name string
	Type string
	Lo   any
	Hi   any
}

type ConstraintInput struct {
	Left     string
	Operator string
	Right    string
}

type ModelInput struct {
	Parameters    []ParameterInput
	Decisions     []DecisionInput
	Constraints   []ConstraintInput
	Objective     string
	ObjectiveExpr string `mapstructure:"objectiveExpr"`
}

func InputFromJson(file string) (ModelInput, error) {
	bytes, _ := os.ReadFile(file)
	var inputJson map[string]any
	err := json.Unmarshal(bytes, &inputJson)
	if err != nil {
		return ModelInput{}, err
	}

	var input ModelInput
	mapstructure.Decode(inputJson, &input)

	return input, nil
}

// ToModel assembles a validated Model from the decoded input.
func (input ModelInput) ToModel() (*Model, error) {
	m := NewModel()

	for _, parameter := range input.Parameters {
		variable, err := NewParameter(parameter.Name, normalizeScalar(parameter.Value))
		if err != nil {
			return nil, err
		}
		if err := m.AddParameter(variable); err != nil {
			return nil, err
		}
	}

	for _, decision := range input.Decisions {
		var variable *Variable
		switch decision.Type {
		case "", string(TypeInt):
			lo, okLo := asFloat(decision.Lo)
			hi, okHi := asFloat(decision.Hi)
			if !okLo || !okHi {
				return nil, fmt.Errorf("decision variable %v has a non-numeric domain", decision.Name)
			}
			variable = NewDecision(decision.Name, int(lo), int(hi))
		case string(TypeFloat):
			lo, okLo := asFloat(decision.Lo)
			hi, okHi := asFloat(decision.Hi)
			if !okLo || !okHi {
				return nil, fmt.Errorf("decision variable %v has a non-numeric domain", decision.Name)
			}
			variable = NewDecisionFloat(decision.Name, lo, hi)
		default:
			return nil, fmt.Errorf("%v is not a valid decision variable type", decision.Type)
		}
		if err := m.AddDecision(variable); err != nil {
			return nil, err
		}
	}

	for _, constraint := range input.Constraints {
		left, ok := m.Lookup(constraint.Left)
		if !ok {
			return nil, fmt.Errorf("constraint refers to unknown variable %v", constraint.Left)
		}
		right, ok := m.Lookup(constraint.Right)
		if !ok {
			return nil, fmt.Errorf("constraint refers to unknown variable %v", constraint.Right)
		}
		relation, err := NewConstraint(left, Operator(constraint.Operator), right)
		if err != nil {
			return nil, err
		}
		if err := m.AddConstraint(relation); err != nil {
			return nil, err
		}
	}

	switch input.Objective {
	case "", string(Satisfy):
		m.Objective = Satisfy
	case string(Maximize), string(Minimize):
		m.Objective = Objective(input.Objective)
		if input.ObjectiveExpr == "" {
			return nil, fmt.Errorf("objective %v requires an objective expression", input.Objective)
		}
		m.ObjectiveExpr = input.ObjectiveExpr
	default:
		return nil, fmt.Errorf("%v is not a valid objective", input.Objective)
	}

	return m, nil
}

// JSON numbers decode as float64; integral ones are meant as ints.
func normalizeScalar(value any) any {
	if v, ok := value.(float64); ok && v == float64(int(v)) {
		return int(v)
	}
	return value
}
