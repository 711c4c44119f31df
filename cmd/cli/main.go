package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/limaJavier/mznbridge/pkg/minizinc"
	"github.com/limaJavier/mznbridge/pkg/model"
	"github.com/samber/lo"
)

var (
	validSolvers = []string{"gecode", "chuffed", "cbc", "or-tools"}
	backends     = map[string]func() minizinc.Backend{
		"gecode":   minizinc.NewGecodeBackend,
		"chuffed":  minizinc.NewChuffedBackend,
		"cbc":      minizinc.NewCbcBackend,
		"or-tools": minizinc.NewOrtoolsBackend,
	}
)

func main() {
	// Define arguments
	solverPtr := flag.String("solver", "gecode", "Solver backend to use. Allowed values are: \"gecode\", \"chuffed\", \"cbc\", \"or-tools\", where \"gecode\" is the default")
	minizincPtr := flag.String("minizinc", "", "Path to the minizinc executable; if empty, it'll be read from the config.json next to the binary")
	filePathPtr := flag.String("file", "", "Path to the model input file")
	outFilePathPtr := flag.String("out", "", "Path to the file where the assignment will be written; if empty, it'll be written into the Standard Output")
	flag.Parse()
	solverStr := strings.ToLower(*solverPtr)
	filePath := *filePathPtr
	outFile := *outFilePathPtr

	// Validate arguments
	if !slices.Contains(validSolvers, solverStr) {
		log.Fatalf("%v is not a valid solver", solverStr)
	} else if filePath == "" {
		log.Fatal("an input file must be specified")
	}

	// Extract input
	input, err := model.InputFromJson(filePath)
	if err != nil {
		log.Fatalf("cannot parse input file: %v", err)
	}
	m, err := input.ToModel()
	if err != nil {
		log.Fatalf("cannot assemble model: %v", err)
	}

	// Initialize runner
	runner, err := newRunner(*minizincPtr)
	if err != nil {
		log.Fatalf("cannot configure minizinc: %v", err)
	}

	// Evaluate model
	sat, err := runner.Evaluate(m, backends[solverStr]())
	if err != nil {
		log.Fatalf("an error occurred during evaluation: %v", err)
	} else if !sat {
		fmt.Println("Not satisfiable")
		os.Exit(20)
	}

	// Verify assignment correctness
	if !m.Verify() {
		log.Fatal("Verification failed")
	}

	// Build output from assignment
	assignment := strings.Join(lo.Map(m.Decisions, func(decision *model.Variable, _ int) string {
		return fmt.Sprintf("%v = %v", decision.Name, decision.Value)
	}), "\n") + "\n"

	// Verify outfile is empty, if so then write the results to the Standard Output
	if outFile == "" {
		fmt.Print(assignment)
	} else {
		err := os.WriteFile(outFile, []byte(assignment), 0666)
		if err != nil {
			log.Fatalf("an error occurred while writing to the output file: %v", err)
		}
	}
}

func newRunner(executable string) (*minizinc.Runner, error) {
	if executable != "" {
		return minizinc.NewRunner(executable)
	}

	execPath, err := os.Executable()
	if err != nil {
		log.Fatalf("cannot determine executable path: %v", err)
	}
	minizinc.ConfigPath = path.Join(path.Dir(execPath), "config.json")
	return minizinc.RunnerFromConfig()
}
