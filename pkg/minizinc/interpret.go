package minizinc

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/limaJavier/mznbridge/pkg/model"
	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

// interpret derives the satisfiability verdict from the solver's output
// artifact and, on success, writes the solved values back onto the model's
// decision variables.
//
// The structured path strips the solution/status separator lines minizinc
// frames its output with and parses the rest as a flat JSON document of
// variable name to scalar value. When that fails, the first line of the raw
// artifact is tested for the UNSAT marker. A missing or empty artifact never
// panics; output matching neither shape yields ErrInconclusive.
func interpret(outputFile string, m *model.Model) (bool, error) {
	raw, err := os.ReadFile(outputFile)
	if err != nil {
		raw = nil // A missing artifact falls through to the line check
	}
	lines := strings.Split(string(raw), "\n")

	document := strings.Join(lo.Filter(lines, func(line string, _ int) bool {
		trimmed := strings.TrimSpace(line)
		return trimmed != "" && !strings.HasPrefix(trimmed, "---") && !strings.HasPrefix(trimmed, "===")
	}), "\n")

	var solution map[string]any
	if err := json.Unmarshal([]byte(document), &solution); err == nil {
		assign(solution, m)
		return true, nil
	}

	if strings.Contains(lines[0], "UNSAT") {
		return false, nil
	}
	return false, ErrInconclusive
}

// assign binds each solution entry to the decision variable of the same name.
// Entries without a matching decision variable (such as minizinc's own
// "_objective") are ignored; variables absent from the document stay unset.
func assign(solution map[string]any, m *model.Model) {
	for name, value := range solution {
		variable, ok := m.Lookup(name)
		if !ok || variable.Kind != model.KindDecision {
			continue
		}
		coerced, err := coerce(value, variable.Type)
		if err != nil {
			continue
		}
		variable.Value = coerced
	}
}

// coerce fits a decoded JSON scalar onto the variable's declared type.
func coerce(value any, varType model.VarType) (any, error) {
	switch varType {
	case model.TypeInt:
		var out int
		err := decodeWeakly(value, &out)
		return out, err
	case model.TypeFloat:
		var out float64
		err := decodeWeakly(value, &out)
		return out, err
	case model.TypeBool:
		var out bool
		err := decodeWeakly(value, &out)
		return out, err
	default:
		var out string
		err := decodeWeakly(value, &out)
		return out, err
	}
}

func decodeWeakly(value, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(value)
}
