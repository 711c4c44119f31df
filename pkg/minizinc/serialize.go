package minizinc

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/limaJavier/mznbridge/pkg/model"
)

// Serialize transforms the model entities into MiniZinc source text. The
// three sections and their internal ordering are a contract with the solver's
// text format: parameters first, then decision variable declarations, then
// constraints, each preserving input order. Two calls over identically
// ordered lists produce byte-identical text.
//
// No solve item or output directive is emitted here; the invocation step owns
// those. Variable names are emitted verbatim, with no reserved-word escaping.
func Serialize(parameters, decisions []*model.Variable, constraints []*model.Constraint) string {
	var builder strings.Builder
	for _, parameter := range parameters {
		fmt.Fprintf(&builder, "%v: %v = %v;\n", parameter.Type, parameter.Name, literal(parameter.Value))
	}
	for _, decision := range decisions {
		fmt.Fprintf(&builder, "var %v..%v: %v;\n", literal(decision.Lo), literal(decision.Hi), decision.Name)
	}
	for _, constraint := range constraints {
		fmt.Fprintf(&builder, "constraint %v %v %v;\n", constraint.Left.Name, constraint.Operator, constraint.Right.Name)
	}
	return builder.String()
}

// literal renders a scalar exactly: floats keep their shortest round-tripping
// form with no rounding, strings are quoted.
func literal(value any) string {
	switch v := value.(type) {
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case string:
		return strconv.Quote(v)
	}
	log.Panicf("cannot serialize value %v of type %T", value, value)
	return ""
}
