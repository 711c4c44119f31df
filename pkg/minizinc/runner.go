package minizinc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/limaJavier/mznbridge/pkg/model"
	"github.com/mitchellh/mapstructure"
)

var ConfigPath = "../../config.json"

// Runner invokes the minizinc executable on serialized models. It carries the
// executable location explicitly instead of reading process-wide state.
type Runner struct {
	executable string
}

func NewRunner(executable string) (*Runner, error) {
	if executable == "" {
		return nil, ErrNoExecutable
	}
	return &Runner{executable: executable}, nil
}

// RunnerFromConfig resolves the executable from the "minizincPath" entry of
// the config.json file.
func RunnerFromConfig() (*Runner, error) {
	bytes, _ := os.ReadFile(ConfigPath)
	var configJson map[string]any
	if err := json.Unmarshal(bytes, &configJson); err != nil {
		return nil, fmt.Errorf("cannot read config file %v: %w", ConfigPath, err)
	}

	var config map[string]string
	mapstructure.Decode(configJson, &config)

	return NewRunner(config["minizincPath"])
}

// Evaluate serializes the model, runs the selected backend on it and maps the
// result back onto the model's decision variables. It returns the
// satisfiability verdict; on true every decision variable named in the
// solver's solution document carries its solved value.
//
// The call is synchronous and blocks until the solver terminates; there is no
// timeout. Each invocation works in its own temporary directory, so
// concurrent or repeated calls cannot race on the handoff files.
func (runner *Runner) Evaluate(m *model.Model, backend Backend) (bool, error) {
	source := Serialize(m.Parameters, m.Decisions, m.Constraints) + solveItem(m)

	dir, err := os.MkdirTemp("", "mznbridge-*")
	if err != nil {
		return false, fmt.Errorf("failed to create working directory: %w", err)
	}
	defer os.RemoveAll(dir) // Ensure the handoff files are removed after execution

	modelFile := filepath.Join(dir, "model.mzn")
	outputFile := filepath.Join(dir, "solution.json")
	if err := os.WriteFile(modelFile, []byte(source), 0o644); err != nil {
		return false, fmt.Errorf("failed to write model file: %w", err)
	}

	args := []string{modelFile, "-o", outputFile, "--solver", backend.Name, "--output-mode", "json"}
	for key, value := range backend.Options {
		args = append(args, "--"+key, value)
	}

	cmd := exec.Command(runner.executable, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	// Branch on process state before touching the output, so a crashed or
	// missing solver is never mistaken for an unsatisfiable model.
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return false, &SolverError{ExitCode: exitErr.ExitCode(), Stderr: stderr.String()}
		}
		return false, fmt.Errorf("an error occurred during minizinc execution: %w", err)
	}

	return interpret(outputFile, m)
}

// solveItem emits the solve goal the serializer deliberately leaves out.
func solveItem(m *model.Model) string {
	switch m.Objective {
	case model.Maximize, model.Minimize:
		return fmt.Sprintf("solve %v %v;\n", m.Objective, m.ObjectiveExpr)
	default:
		return "solve satisfy;\n"
	}
}
